package bitcoin_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chinmay1088/cryptoapis/api"
	"github.com/chinmay1088/cryptoapis/chains/bitcoin"
)

func TestRawTx_SerializeParse(t *testing.T) {
	rawHex := sampleRawTx(t)

	msg, err := bitcoin.ParseRawTx(rawHex)
	require.NoError(t, err)
	require.Len(t, msg.TxIn, 1)
	require.Len(t, msg.TxOut, 1)
	assert.Equal(t, genesisTxID, msg.TxIn[0].PreviousOutPoint.Hash.String())
	assert.Equal(t, int64(5000), msg.TxOut[0].Value)

	again, err := bitcoin.SerializeRawTx(msg)
	require.NoError(t, err)
	assert.Equal(t, rawHex, again)
}

func TestRawTx_Errors(t *testing.T) {
	raw := bitcoin.NewRawTx()
	_, err := raw.Serialize()
	assert.Error(t, err)

	assert.Error(t, raw.AddInput("xyz", 0))

	addr, err := bitcoin.ParseAddress(genesisAddress, api.Mainnet)
	require.NoError(t, err)
	assert.Error(t, raw.AddOutput(0, addr))

	_, err = bitcoin.ParseRawTx(sampleRawTx(t) + "00")
	assert.True(t, api.IsKind(err, api.KindInvalidParameter))
}

func TestParseAddress(t *testing.T) {
	_, err := bitcoin.ParseAddress(genesisAddress, api.Mainnet)
	assert.NoError(t, err)

	_, err = bitcoin.ParseAddress(genesisAddress, api.Testnet)
	assert.True(t, api.IsKind(err, api.KindInvalidParameter))

	_, err = bitcoin.ParseAddress("1A2b3C", api.Mainnet)
	assert.True(t, api.IsKind(err, api.KindInvalidParameter))
}

func TestValidateWIF(t *testing.T) {
	assert.NoError(t, bitcoin.ValidateWIF(exampleWIF))
	assert.True(t, api.IsKind(bitcoin.ValidateWIF("5HueCGU8rMjxEXxiPuD5BDku4MkFqeZyd4dZ1jvhTVqvbTLvyTX"), api.KindInvalidParameter))
}

func TestAmount_JSON(t *testing.T) {
	b, err := json.Marshal(bitcoin.Fee{Value: bitcoin.MustAmount("0.00023141")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":0.00023141}`, string(b))

	var fee bitcoin.Fee
	require.NoError(t, json.Unmarshal([]byte(`{"address":"x","value":1.25}`), &fee))
	assert.Equal(t, "1.25", fee.Value.String())

	_, err = bitcoin.NewAmount("1,5")
	assert.True(t, api.IsKind(err, api.KindInvalidParameter))
}

func TestCreateTransaction_Validate(t *testing.T) {
	one := bitcoin.MustAmount("1")

	tests := []struct {
		name    string
		tx      bitcoin.CreateTransaction
		wantErr bool
	}{
		{
			name: "valid",
			tx: bitcoin.CreateTransaction{
				Inputs:  []bitcoin.Input{{Address: "a", Value: one}},
				Outputs: []bitcoin.Output{{Address: "b", Value: one}},
			},
		},
		{name: "no inputs", tx: bitcoin.CreateTransaction{Outputs: []bitcoin.Output{{Address: "b", Value: one}}}, wantErr: true},
		{name: "no outputs", tx: bitcoin.CreateTransaction{Inputs: []bitcoin.Input{{Address: "a", Value: one}}}, wantErr: true},
		{
			name: "zero input value",
			tx: bitcoin.CreateTransaction{
				Inputs:  []bitcoin.Input{{Address: "a"}},
				Outputs: []bitcoin.Output{{Address: "b", Value: one}},
			},
			wantErr: true,
		},
		{
			name: "missing output address",
			tx: bitcoin.CreateTransaction{
				Inputs:  []bitcoin.Input{{Address: "a", Value: one}},
				Outputs: []bitcoin.Output{{Value: one}},
			},
			wantErr: true,
		},
		{
			name: "negative fee",
			tx: bitcoin.CreateTransaction{
				Inputs:  []bitcoin.Input{{Address: "a", Value: one}},
				Outputs: []bitcoin.Output{{Address: "b", Value: one}},
				Fee:     bitcoin.Fee{Value: bitcoin.MustAmount("-1")},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tx.Validate()
			if tt.wantErr {
				assert.True(t, api.IsKind(err, api.KindInvalidParameter))
				return
			}
			assert.NoError(t, err)
		})
	}
}
