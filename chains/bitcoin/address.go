// Package bitcoin exposes the address and transaction endpoints of the
// Bitcoin family (btc, ltc, bch, doge, dash).
package bitcoin

import (
	"context"
	"net/url"
	"strings"

	"github.com/chinmay1088/cryptoapis/api"
)

var addressPath = api.MustTemplate("/%s/bc/%s/%s/address%s")

// AddressService queries and generates addresses
type AddressService struct {
	endpoint api.Endpoint
}

// NewAddressService creates an AddressService issuing calls through r
func NewAddressService(r api.Requester) *AddressService {
	return &AddressService{endpoint: api.NewEndpoint(r, addressPath)}
}

// GetAddressInfo fetches balance and transaction counts for address
func (s *AddressService) GetAddressInfo(ctx context.Context, address string) (*api.Response, error) {
	element, err := addressElement(address)
	if err != nil {
		return nil, err
	}
	return s.endpoint.Get(ctx, element, "", nil, nil)
}

// GetMultisigAddressInfo lists the multisig addresses address takes part in
func (s *AddressService) GetMultisigAddressInfo(ctx context.Context, address string, params map[string]string) (*api.Response, error) {
	element, err := addressElement(address)
	if err != nil {
		return nil, err
	}
	return s.endpoint.Get(ctx, element, "/multisig", api.Pagination, params)
}

// GenerateAddress asks the API for a new key pair and address
func (s *AddressService) GenerateAddress(ctx context.Context) (*api.Response, error) {
	return s.endpoint.Post(ctx, "", "", nil)
}

// GetTransactions lists the transactions of address
func (s *AddressService) GetTransactions(ctx context.Context, address string, params map[string]string) (*api.Response, error) {
	element, err := addressElement(address)
	if err != nil {
		return nil, err
	}
	return s.endpoint.Get(ctx, element, "/transactions", api.Pagination, params)
}

func addressElement(address string) (string, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return "", api.InvalidParameterError("address cannot be empty")
	}
	return "/" + url.PathEscape(address), nil
}
