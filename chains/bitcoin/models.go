package bitcoin

import (
	"github.com/shopspring/decimal"

	"github.com/chinmay1088/cryptoapis/api"
)

// Amount is a coin value. It is sent as a bare JSON number so no precision is lost
// to float formatting.
type Amount struct {
	decimal.Decimal
}

// NewAmount parses a decimal string such as "0.00023141"
func NewAmount(value string) (Amount, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Amount{}, api.InvalidParameterError("invalid amount %q: %v", value, err)
	}
	return Amount{d}, nil
}

// MustAmount is NewAmount for literals
func MustAmount(value string) Amount {
	a, err := NewAmount(value)
	if err != nil {
		panic(err)
	}
	return a
}

// MarshalJSON writes the amount unquoted
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

// Input is an address funding a transaction
type Input struct {
	Address string `json:"address"`
	Value   Amount `json:"value"`
}

// Output is an address receiving funds
type Output struct {
	Address string `json:"address"`
	Value   Amount `json:"value"`
}

// Fee is the fee paid by a transaction. Address, when set, names the paying input.
type Fee struct {
	Address string `json:"address,omitempty"`
	Value   Amount `json:"value"`
}

// CreateTransaction is the body of txs/create, and the createTx part of txs/new.
type CreateTransaction struct {
	Inputs   []Input  `json:"inputs"`
	Outputs  []Output `json:"outputs"`
	Fee      Fee      `json:"fee"`
	Locktime *uint32  `json:"locktime,omitempty"`
}

// NewCreateTransaction validates and builds a CreateTransaction
func NewCreateTransaction(inputs []Input, outputs []Output, fee Fee, locktime *uint32) (CreateTransaction, error) {
	tx := CreateTransaction{Inputs: inputs, Outputs: outputs, Fee: fee, Locktime: locktime}
	if err := tx.Validate(); err != nil {
		return CreateTransaction{}, err
	}
	return tx, nil
}

// Validate checks the shape of the transaction
func (tx CreateTransaction) Validate() error {
	if len(tx.Inputs) == 0 {
		return api.InvalidParameterError("transaction needs at least one input")
	}
	if len(tx.Outputs) == 0 {
		return api.InvalidParameterError("transaction needs at least one output")
	}
	for i, in := range tx.Inputs {
		if in.Address == "" {
			return api.InvalidParameterError("input %d has no address", i)
		}
		if !in.Value.IsPositive() {
			return api.InvalidParameterError("input %d value must be positive", i)
		}
	}
	for i, out := range tx.Outputs {
		if out.Address == "" {
			return api.InvalidParameterError("output %d has no address", i)
		}
		if !out.Value.IsPositive() {
			return api.InvalidParameterError("output %d value must be positive", i)
		}
	}
	if tx.Fee.Value.IsNegative() {
		return api.InvalidParameterError("fee cannot be negative")
	}
	return nil
}

func (tx CreateTransaction) addresses() []string {
	out := make([]string, 0, len(tx.Inputs)+len(tx.Outputs)+1)
	for _, in := range tx.Inputs {
		out = append(out, in.Address)
	}
	for _, o := range tx.Outputs {
		out = append(out, o.Address)
	}
	if tx.Fee.Address != "" {
		out = append(out, tx.Fee.Address)
	}
	return out
}

// Hex wraps a raw transaction for decode and send
type Hex struct {
	Hex string `json:"hex"`
}

// SignRequest is the body of txs/sign
type SignRequest struct {
	Hex  string   `json:"hex"`
	WIFs []string `json:"wifs"`
}

// CompleteTransaction is the body of txs/new: create, sign and send in one call
type CompleteTransaction struct {
	CreateTx CreateTransaction `json:"createTx"`
	WIFs     []string          `json:"wifs"`
}

// HDWalletTransaction is the body of txs/hdwallet
type HDWalletTransaction struct {
	WalletName string   `json:"walletName"`
	Password   string   `json:"password"`
	Inputs     []Input  `json:"inputs"`
	Outputs    []Output `json:"outputs"`
	Fee        Fee      `json:"fee"`
	Locktime   *uint32  `json:"locktime,omitempty"`
}

// Validate checks the wallet credentials and the transaction shape
func (tx HDWalletTransaction) Validate() error {
	if tx.WalletName == "" {
		return api.InvalidParameterError("wallet name cannot be empty")
	}
	if tx.Password == "" {
		return api.InvalidParameterError("wallet password cannot be empty")
	}
	return CreateTransaction{Inputs: tx.Inputs, Outputs: tx.Outputs, Fee: tx.Fee}.Validate()
}

// TransactionSize is the body of txs/size. Fee is optional.
type TransactionSize struct {
	Inputs   []Input  `json:"inputs"`
	Outputs  []Output `json:"outputs"`
	Fee      *Fee     `json:"fee,omitempty"`
	Locktime *uint32  `json:"locktime,omitempty"`
}

// RefundTransaction is the body of txs/refund
type RefundTransaction struct {
	TxID string `json:"txid"`
	WIF  string `json:"wif"`
	Fee  Amount `json:"fee"`
}
