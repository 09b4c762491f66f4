package ethereum

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/shopspring/decimal"

	"github.com/chinmay1088/cryptoapis/api"
)

// Account is the body of the account endpoint: the password that will
// protect the generated keystore.
type Account struct {
	Password string `json:"password"`
}

// TokenTransfer is the body of tokens/transfer. The sender is authorized either by
// the password of a keystore held by the API or by a raw private key, never both.
type TokenTransfer struct {
	FromAddress string          `json:"fromAddress"`
	ToAddress   string          `json:"toAddress"`
	Contract    string          `json:"contract"`
	Password    string          `json:"password,omitempty"`
	PrivateKey  string          `json:"privateKey,omitempty"`
	GasPrice    int64           `json:"gasPrice"`
	GasLimit    uint64          `json:"gasLimit"`
	Token       decimal.Decimal `json:"token"`
}

// Validate checks addresses, credentials and amounts
func (t TokenTransfer) Validate() error {
	for _, f := range []struct{ name, addr string }{
		{"from address", t.FromAddress},
		{"to address", t.ToAddress},
		{"contract", t.Contract},
	} {
		if !common.IsHexAddress(f.addr) {
			return api.InvalidParameterError("invalid %s %q", f.name, f.addr)
		}
	}
	if (t.Password == "") == (t.PrivateKey == "") {
		return api.InvalidParameterError("exactly one of password or private key is required")
	}
	if t.GasPrice <= 0 {
		return api.InvalidParameterError("gas price must be positive")
	}
	if t.GasLimit == 0 {
		return api.InvalidParameterError("gas limit must be positive")
	}
	if !t.Token.IsPositive() {
		return api.InvalidParameterError("token amount must be positive")
	}
	return nil
}

// RawTransaction wraps a 0x prefixed, RLP encoded signed transaction
type RawTransaction struct {
	Hex string `json:"hex"`
}

// ValidateAddress checks that address is a 20 byte hex address
func ValidateAddress(address string) error {
	if !common.IsHexAddress(address) {
		return api.InvalidParameterError("invalid ethereum address %q", address)
	}
	return nil
}

// ValidateHash checks that hash is a 0x prefixed 32 byte hex string
func ValidateHash(hash string) error {
	b, err := hexutil.Decode(strings.TrimSpace(hash))
	if err != nil {
		return api.InvalidParameterError("invalid hash %q: %v", hash, err)
	}
	if len(b) != common.HashLength {
		return api.InvalidParameterError("hash must be %d bytes, got %d", common.HashLength, len(b))
	}
	return nil
}
