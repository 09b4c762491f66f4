package bitcoin

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/chinmay1088/cryptoapis/api"
)

var txsPath = api.MustTemplate("/%s/bc/%s/%s/txs/%s")

// TransactionService queries, builds, signs and broadcasts transactions
type TransactionService struct {
	endpoint api.Endpoint
	cfg      api.EndpointConfig
}

// NewTransactionService creates a TransactionService issuing calls through r
func NewTransactionService(r api.Requester) *TransactionService {
	return &TransactionService{
		endpoint: api.NewEndpoint(r, txsPath),
		cfg:      r.Config(),
	}
}

// GetByHash fetches one transaction by id
func (s *TransactionService) GetByHash(ctx context.Context, txid string) (*api.Response, error) {
	if _, err := ParseTxID(txid); err != nil {
		return nil, err
	}
	return s.endpoint.Get(ctx, "txid/"+txid, "", nil, nil)
}

// GetByBlockHash lists the transactions of the block with the given hash
func (s *TransactionService) GetByBlockHash(ctx context.Context, blockHash string, params map[string]string) (*api.Response, error) {
	blockHash = strings.TrimSpace(blockHash)
	if blockHash == "" {
		return nil, api.InvalidParameterError("block hash cannot be empty")
	}
	return s.endpoint.Get(ctx, "block/"+url.PathEscape(blockHash), "", api.Pagination, params)
}

// GetByBlockHeight lists the transactions of the block at height
func (s *TransactionService) GetByBlockHeight(ctx context.Context, height int64, params map[string]string) (*api.Response, error) {
	if height < 0 {
		return nil, api.InvalidParameterError("block height cannot be negative, got %d", height)
	}
	return s.endpoint.Get(ctx, "block/"+strconv.FormatInt(height, 10), "", api.Pagination, params)
}

// GetUnconfirmed lists mempool transactions
func (s *TransactionService) GetUnconfirmed(ctx context.Context, params map[string]string) (*api.Response, error) {
	return s.endpoint.Get(ctx, "unconfirmed", "", api.Pagination, params)
}

// Decode asks the API to decode a raw transaction
func (s *TransactionService) Decode(ctx context.Context, rawHex string) (*api.Response, error) {
	rawHex = strings.TrimSpace(rawHex)
	if rawHex == "" {
		return nil, api.InvalidParameterError("transaction hex cannot be empty")
	}
	return s.endpoint.Post(ctx, "decode", "", Hex{Hex: rawHex})
}

// Create builds an unsigned transaction server side. Only the hex is returned,
// nothing is broadcast.
func (s *TransactionService) Create(ctx context.Context, tx CreateTransaction) (*api.Response, error) {
	if err := s.validate(tx); err != nil {
		return nil, err
	}
	return s.endpoint.Post(ctx, "create", "", tx)
}

// Sign signs rawHex with the given private keys
func (s *TransactionService) Sign(ctx context.Context, rawHex string, wifs []string) (*api.Response, error) {
	rawHex = strings.TrimSpace(rawHex)
	if rawHex == "" {
		return nil, api.InvalidParameterError("transaction hex cannot be empty")
	}
	if err := validateWIFs(wifs); err != nil {
		return nil, err
	}
	return s.endpoint.Post(ctx, "sign", "", SignRequest{Hex: rawHex, WIFs: wifs})
}

// Send broadcasts a signed transaction. The hex is decoded locally first so a
// malformed transaction never leaves the process.
func (s *TransactionService) Send(ctx context.Context, rawHex string) (*api.Response, error) {
	rawHex = strings.TrimSpace(rawHex)
	if _, err := ParseRawTx(rawHex); err != nil {
		return nil, err
	}
	return s.endpoint.Post(ctx, "send", "", Hex{Hex: rawHex})
}

// New creates, signs and sends a transaction in one call
func (s *TransactionService) New(ctx context.Context, tx CreateTransaction, wifs []string) (*api.Response, error) {
	if err := s.validate(tx); err != nil {
		return nil, err
	}
	if err := validateWIFs(wifs); err != nil {
		return nil, err
	}
	return s.endpoint.Post(ctx, "new", "", CompleteTransaction{CreateTx: tx, WIFs: wifs})
}

// NewWithHDWallet creates, signs and sends a transaction funded by a stored HD wallet
func (s *TransactionService) NewWithHDWallet(ctx context.Context, tx HDWalletTransaction) (*api.Response, error) {
	if err := tx.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkAddresses(CreateTransaction{Inputs: tx.Inputs, Outputs: tx.Outputs, Fee: tx.Fee}.addresses()); err != nil {
		return nil, err
	}
	return s.endpoint.Post(ctx, "hdwallet", "", tx)
}

// Size estimates the size in bytes of a transaction, with or without a fee output
func (s *TransactionService) Size(ctx context.Context, tx TransactionSize) (*api.Response, error) {
	if len(tx.Inputs) == 0 || len(tx.Outputs) == 0 {
		return nil, api.InvalidParameterError("transaction needs at least one input and one output")
	}
	return s.endpoint.Post(ctx, "size", "", tx)
}

// GetFees returns the current fee recommendations
func (s *TransactionService) GetFees(ctx context.Context) (*api.Response, error) {
	return s.endpoint.Get(ctx, "fee", "", nil, nil)
}

// Refund sends back the funds of an unspent transaction, minus fee
func (s *TransactionService) Refund(ctx context.Context, txid, wif string, fee Amount) (*api.Response, error) {
	if _, err := ParseTxID(txid); err != nil {
		return nil, err
	}
	if err := ValidateWIF(wif); err != nil {
		return nil, err
	}
	if !fee.IsPositive() {
		return nil, api.InvalidParameterError("refund fee must be positive")
	}
	return s.endpoint.Post(ctx, "refund", "", RefundTransaction{TxID: txid, WIF: wif, Fee: fee})
}

func (s *TransactionService) validate(tx CreateTransaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	return s.checkAddresses(tx.addresses())
}

// checkAddresses decodes every address locally. btcd only knows Bitcoin's
// parameters, so the other chains are left to the server.
func (s *TransactionService) checkAddresses(addresses []string) error {
	if s.cfg.Blockchain() != api.Bitcoin {
		return nil
	}
	for _, a := range addresses {
		if _, err := ParseAddress(a, s.cfg.Network()); err != nil {
			return err
		}
	}
	return nil
}

func validateWIFs(wifs []string) error {
	if len(wifs) == 0 {
		return api.InvalidParameterError("at least one wif is required")
	}
	for _, w := range wifs {
		if err := ValidateWIF(w); err != nil {
			return err
		}
	}
	return nil
}
