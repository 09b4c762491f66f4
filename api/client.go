// Package api is the request construction and dispatch layer shared by every
// chain façade.
//
// Files:
//
//	config.go   - EndpointConfig, blockchain and network constants
//	path.go     - four slot path templates and BuildPath
//	query.go    - query parameter allow-lists and EncodeQuery
//	base.go     - Client, the HTTP dispatcher
//	endpoint.go - Endpoint, the validate -> build -> dispatch pipeline
//	types.go    - Method and Response
//	errors.go   - Error, the one error type callers handle
//
// Usage:
//
//	cfg, err := api.NewEndpointConfig(key, api.Bitcoin, api.Mainnet)
//	client := api.NewClient(cfg)
//	addresses := bitcoin.NewAddressService(client)
//	resp, err := addresses.GetAddressInfo(ctx, "1A2b3C")
package api
