package ethereum

import (
	"context"

	"github.com/chinmay1088/cryptoapis/api"
)

var tokensPath = api.MustTemplate("/%s/bc/%s/%s/tokens/%s")

// TokenService queries ERC-20 tokens and transfers them
type TokenService struct {
	endpoint api.Endpoint
}

// NewTokenService creates a TokenService issuing calls through r
func NewTokenService(r api.Requester) *TokenService {
	return &TokenService{endpoint: api.NewEndpoint(r, tokensPath)}
}

// GetAll lists every token contract known to the API
func (s *TokenService) GetAll(ctx context.Context, params map[string]string) (*api.Response, error) {
	return s.endpoint.Get(ctx, "all", "", api.Pagination, params)
}

// GetByAddress lists the tokens held by address
func (s *TokenService) GetByAddress(ctx context.Context, address string) (*api.Response, error) {
	if err := ValidateAddress(address); err != nil {
		return nil, err
	}
	return s.endpoint.Get(ctx, addressSegment+"/"+address, "", nil, nil)
}

// GetTransfersByAddress lists the token transfers of address
func (s *TokenService) GetTransfersByAddress(ctx context.Context, address string, params map[string]string) (*api.Response, error) {
	if err := ValidateAddress(address); err != nil {
		return nil, err
	}
	return s.endpoint.Get(ctx, addressSegment+"/"+address, "/transfers", api.Pagination, params)
}

// GetBalance returns the balance address holds of the token at contract
func (s *TokenService) GetBalance(ctx context.Context, address, contract string) (*api.Response, error) {
	if err := ValidateAddress(address); err != nil {
		return nil, err
	}
	if err := ValidateAddress(contract); err != nil {
		return nil, err
	}
	return s.endpoint.Get(ctx, address+"/"+contract, "/balance", nil, nil)
}

// Transfer moves tokens from one address to another
func (s *TokenService) Transfer(ctx context.Context, transfer TokenTransfer) (*api.Response, error) {
	if err := transfer.Validate(); err != nil {
		return nil, err
	}
	return s.endpoint.Post(ctx, "transfer", "", transfer)
}
