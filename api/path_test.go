package api_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chinmay1088/cryptoapis/api"
)

func mustConfig(t *testing.T, blockchain api.Blockchain, network string, opts ...api.ConfigOption) api.EndpointConfig {
	t.Helper()
	cfg, err := api.NewEndpointConfig("test-key", blockchain, network, opts...)
	require.NoError(t, err)
	return cfg
}

func TestNewTemplate(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		wantErr bool
	}{
		{name: "address template", pattern: "/%s/bc/%s/%s/address%s"},
		{name: "txs template", pattern: "/%s/bc/%s/%s/txs/%s"},
		{name: "three slots", pattern: "/%s/bc/%s/%s/address", wantErr: true},
		{name: "five slots", pattern: "/%s/bc/%s/%s/%s/%s", wantErr: true},
		{name: "other verb", pattern: "/%s/bc/%s/%d/%s", wantErr: true},
		{name: "relative", pattern: "%s/bc/%s/%s/%s", wantErr: true},
		{name: "empty", pattern: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := api.NewTemplate(tt.pattern)
			if tt.wantErr {
				assert.True(t, api.IsKind(err, api.KindTemplate))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.pattern, tmpl.String())
		})
	}
}

func TestMustTemplate_Panics(t *testing.T) {
	assert.Panics(t, func() { api.MustTemplate("/%s/bc") })
}

func TestBuildPath(t *testing.T) {
	cfg := mustConfig(t, api.Bitcoin, api.Mainnet)
	addressTmpl := api.MustTemplate("/%s/bc/%s/%s/address%s")
	txsTmpl := api.MustTemplate("/%s/bc/%s/%s/txs/%s")

	tests := []struct {
		name    string
		tmpl    api.Template
		element string
		tail    string
		query   string
		want    string
	}{
		{
			name:    "element only",
			tmpl:    addressTmpl,
			element: "/1A2b3C",
			want:    "/v1/bc/btc/mainnet/address/1A2b3C",
		},
		{
			name:    "tail is appended without separator",
			tmpl:    addressTmpl,
			element: "/1A2b3C",
			tail:    "/transactions",
			want:    "/v1/bc/btc/mainnet/address/1A2b3C/transactions",
		},
		{
			name:    "query goes last",
			tmpl:    addressTmpl,
			element: "/1A2b3C",
			tail:    "/transactions",
			query:   "?limit=5",
			want:    "/v1/bc/btc/mainnet/address/1A2b3C/transactions?limit=5",
		},
		{
			name: "empty element",
			tmpl: addressTmpl,
			want: "/v1/bc/btc/mainnet/address",
		},
		{
			name:    "txs element",
			tmpl:    txsTmpl,
			element: "txid/abc",
			want:    "/v1/bc/btc/mainnet/txs/txid/abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := api.BuildPath(tt.tmpl, cfg, tt.element, tt.tail, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildPath_Deterministic(t *testing.T) {
	cfg := mustConfig(t, api.Ethereum, api.Ropsten)
	tmpl := api.MustTemplate("/%s/bc/%s/%s/tokens/%s")

	first, err := api.BuildPath(tmpl, cfg, "address/0xabc", "/transfers", "?limit=1")
	require.NoError(t, err)
	second, err := api.BuildPath(tmpl, cfg, "address/0xabc", "/transfers", "?limit=1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "/v1/bc/eth/ropsten/tokens/address/0xabc/transfers?limit=1", first)
}

func TestBuildPath_UnresolvedSlots(t *testing.T) {
	tmpl := api.MustTemplate("/%s/bc/%s/%s/address%s")

	_, err := api.BuildPath(tmpl, api.EndpointConfig{}, "/addr", "", "")
	assert.True(t, api.IsKind(err, api.KindTemplate))

	_, err = api.BuildPath(api.Template{}, mustConfig(t, api.Bitcoin, api.Mainnet), "", "", "")
	assert.True(t, api.IsKind(err, api.KindTemplate))
}
