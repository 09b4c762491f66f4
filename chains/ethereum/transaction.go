package ethereum

import (
	"context"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/chinmay1088/cryptoapis/api"
)

var txsPath = api.MustTemplate("/%s/bc/%s/%s/txs/%s")

// TransactionService looks up and broadcasts transactions
type TransactionService struct {
	endpoint api.Endpoint
}

// NewTransactionService creates a TransactionService issuing calls through r
func NewTransactionService(r api.Requester) *TransactionService {
	return &TransactionService{endpoint: api.NewEndpoint(r, txsPath)}
}

// GetByHash fetches one transaction
func (s *TransactionService) GetByHash(ctx context.Context, hash string) (*api.Response, error) {
	if err := ValidateHash(hash); err != nil {
		return nil, err
	}
	return s.endpoint.Get(ctx, "hash/"+hash, "", nil, nil)
}

// Push broadcasts a locally signed transaction
func (s *TransactionService) Push(ctx context.Context, tx *types.Transaction) (*api.Response, error) {
	if tx == nil {
		return nil, api.InvalidParameterError("transaction cannot be nil")
	}
	v, r, sig := tx.RawSignatureValues()
	if v == nil || r == nil || sig == nil || r.Sign() == 0 || sig.Sign() == 0 {
		return nil, api.InvalidParameterError("transaction %s is not signed", tx.Hash().Hex())
	}

	raw, err := tx.MarshalBinary()
	if err != nil {
		return nil, &api.Error{Kind: api.KindInvalidParameter, Message: "failed to encode transaction", Err: err}
	}
	return s.endpoint.Post(ctx, "push", "", RawTransaction{Hex: hexutil.Encode(raw)})
}

// PushRaw broadcasts a 0x prefixed RLP encoded transaction after decoding it locally.
func (s *TransactionService) PushRaw(ctx context.Context, rawHex string) (*api.Response, error) {
	raw, err := hexutil.Decode(rawHex)
	if err != nil {
		return nil, api.InvalidParameterError("invalid transaction hex: %v", err)
	}
	tx := new(types.Transaction)
	if err := tx.UnmarshalBinary(raw); err != nil {
		return nil, api.InvalidParameterError("transaction does not decode: %v", err)
	}
	return s.Push(ctx, tx)
}
