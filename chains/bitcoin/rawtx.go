package bitcoin

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"

	"github.com/chinmay1088/cryptoapis/api"
)

// RawTx is a locally assembled unsigned transaction, handy for feeding
// Decode, Sign and Send with a well formed hex.
type RawTx struct {
	Version  int32
	Inputs   []*wire.TxIn
	Outputs  []*wire.TxOut
	LockTime uint32
}

// NewRawTx creates a new empty transaction
func NewRawTx() *RawTx {
	return &RawTx{
		Version:  2,
		Inputs:   make([]*wire.TxIn, 0),
		Outputs:  make([]*wire.TxOut, 0),
		LockTime: 0,
	}
}

// AddInput spends output vout of txid
func (tx *RawTx) AddInput(txid string, vout uint32) error {
	prevHash, err := ParseTxID(txid)
	if err != nil {
		return err
	}
	tx.Inputs = append(tx.Inputs, wire.NewTxIn(wire.NewOutPoint(prevHash, vout), nil, nil))
	return nil
}

// AddOutput pays value satoshis to address
func (tx *RawTx) AddOutput(value int64, address btcutil.Address) error {
	if value <= 0 {
		return fmt.Errorf("output value must be positive, got %d", value)
	}
	script, err := txscript.PayToAddrScript(address)
	if err != nil {
		return fmt.Errorf("failed to create output script: %w", err)
	}
	tx.Outputs = append(tx.Outputs, wire.NewTxOut(value, script))
	return nil
}

// Serialize serializes the transaction to hex
func (tx *RawTx) Serialize() (string, error) {
	if len(tx.Inputs) == 0 {
		return "", fmt.Errorf("transaction has no inputs")
	}
	return SerializeRawTx(tx.toWireTx())
}

// toWireTx converts to wire.MsgTx
func (tx *RawTx) toWireTx() *wire.MsgTx {
	wireTx := wire.NewMsgTx(tx.Version)
	for _, input := range tx.Inputs {
		wireTx.AddTxIn(input)
	}
	for _, output := range tx.Outputs {
		wireTx.AddTxOut(output)
	}
	wireTx.LockTime = tx.LockTime
	return wireTx
}

// SerializeRawTx hex encodes a wire transaction.
func SerializeRawTx(msg *wire.MsgTx) (string, error) {
	var buf bytes.Buffer
	if err := msg.Serialize(&buf); err != nil {
		return "", fmt.Errorf("failed to serialize transaction: %w", err)
	}
	return hex.EncodeToString(buf.Bytes()), nil
}

// ParseRawTx decodes a hex encoded transaction. Trailing bytes are rejected.
func ParseRawTx(rawHex string) (*wire.MsgTx, error) {
	raw, err := hex.DecodeString(strings.TrimSpace(rawHex))
	if err != nil {
		return nil, api.InvalidParameterError("transaction hex is not valid hex: %v", err)
	}
	if len(raw) == 0 {
		return nil, api.InvalidParameterError("transaction hex cannot be empty")
	}

	msg := wire.NewMsgTx(wire.TxVersion)
	r := bytes.NewReader(raw)
	if err := msg.Deserialize(r); err != nil {
		return nil, api.InvalidParameterError("transaction hex does not decode: %v", err)
	}
	if r.Len() != 0 {
		return nil, api.InvalidParameterError("transaction hex has %d trailing bytes", r.Len())
	}
	return msg, nil
}

// ParseTxID validates a 64 character transaction id.
func ParseTxID(txid string) (*chainhash.Hash, error) {
	if len(txid) != chainhash.MaxHashStringSize {
		return nil, api.InvalidParameterError("transaction id must be %d hex characters, got %d",
			chainhash.MaxHashStringSize, len(txid))
	}
	h, err := chainhash.NewHashFromStr(txid)
	if err != nil {
		return nil, api.InvalidParameterError("invalid transaction id %q: %v", txid, err)
	}
	return h, nil
}

// chainParams maps an API network to btcd parameters. Only Bitcoin has them.
func chainParams(network string) *chaincfg.Params {
	if network == api.Mainnet {
		return &chaincfg.MainNetParams
	}
	return &chaincfg.TestNet3Params
}

// ParseAddress parses a Bitcoin address for the given network
func ParseAddress(address, network string) (btcutil.Address, error) {
	params := chainParams(network)
	addr, err := btcutil.DecodeAddress(address, params)
	if err != nil {
		return nil, api.InvalidParameterError("invalid bitcoin address %q: %v", address, err)
	}
	if !addr.IsForNet(params) {
		return nil, api.InvalidParameterError("address %q is not for %s", address, network)
	}
	return addr, nil
}

// ValidateWIF checks that wif is a well formed private key in wallet import format.
func ValidateWIF(wif string) error {
	if _, err := btcutil.DecodeWIF(wif); err != nil {
		return api.InvalidParameterError("invalid wif: %v", err)
	}
	return nil
}
