// Package ethereum exposes the address, token and transaction endpoints of the
// Ethereum family (eth, etc).
package ethereum

import (
	"context"

	"github.com/chinmay1088/cryptoapis/api"
)

var bcPath = api.MustTemplate("/%s/bc/%s/%s/%s")

const addressSegment = "address"

// AddressService queries addresses and generates addresses and accounts
type AddressService struct {
	endpoint api.Endpoint
}

// NewAddressService creates an AddressService issuing calls through r
func NewAddressService(r api.Requester) *AddressService {
	return &AddressService{endpoint: api.NewEndpoint(r, bcPath)}
}

// GetAddressInfo fetches the balance and transaction count of address
func (s *AddressService) GetAddressInfo(ctx context.Context, address string) (*api.Response, error) {
	if err := ValidateAddress(address); err != nil {
		return nil, err
	}
	return s.endpoint.Get(ctx, addressSegment+"/"+address, "", nil, nil)
}

// GenerateAddress asks the API for a new key pair and address
func (s *AddressService) GenerateAddress(ctx context.Context) (*api.Response, error) {
	return s.endpoint.Post(ctx, addressSegment, "", nil)
}

// GenerateAccount creates a keystore account protected by password
func (s *AddressService) GenerateAccount(ctx context.Context, password string) (*api.Response, error) {
	if password == "" {
		return nil, api.InvalidParameterError("password cannot be empty")
	}
	return s.endpoint.Post(ctx, "account", "", Account{Password: password})
}

// GetTransactions lists the transactions of address
func (s *AddressService) GetTransactions(ctx context.Context, address string, params map[string]string) (*api.Response, error) {
	if err := ValidateAddress(address); err != nil {
		return nil, err
	}
	return s.endpoint.Get(ctx, addressSegment+"/"+address, "/transactions", api.Pagination, params)
}

// GetNonce returns the next nonce of address
func (s *AddressService) GetNonce(ctx context.Context, address string) (*api.Response, error) {
	if err := ValidateAddress(address); err != nil {
		return nil, err
	}
	return s.endpoint.Get(ctx, addressSegment+"/"+address, "/nonce", nil, nil)
}
