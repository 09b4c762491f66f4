package api_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chinmay1088/cryptoapis/api"
)

func TestNewEndpointConfig(t *testing.T) {
	tests := []struct {
		name       string
		apiKey     string
		blockchain api.Blockchain
		network    string
		opts       []api.ConfigOption
		wantErr    bool
	}{
		{name: "bitcoin mainnet", apiKey: "key", blockchain: api.Bitcoin, network: api.Mainnet},
		{name: "dogecoin testnet", apiKey: "key", blockchain: api.Dogecoin, network: api.Testnet},
		{name: "ethereum rinkeby", apiKey: "key", blockchain: api.Ethereum, network: api.Rinkeby},
		{name: "etc morden", apiKey: "key", blockchain: api.EthereumClassic, network: api.Morden},
		{name: "network is normalized", apiKey: "key", blockchain: api.Bitcoin, network: " MAINNET "},
		{name: "empty api key", apiKey: "  ", blockchain: api.Bitcoin, network: api.Mainnet, wantErr: true},
		{name: "unknown blockchain", apiKey: "key", blockchain: "xrp", network: api.Mainnet, wantErr: true},
		{name: "network of another family", apiKey: "key", blockchain: api.Bitcoin, network: api.Ropsten, wantErr: true},
		{name: "empty network", apiKey: "key", blockchain: api.Ethereum, network: "", wantErr: true},
		{
			name: "empty version", apiKey: "key", blockchain: api.Bitcoin, network: api.Mainnet,
			opts: []api.ConfigOption{api.WithVersion("")}, wantErr: true,
		},
		{
			name: "relative host", apiKey: "key", blockchain: api.Bitcoin, network: api.Mainnet,
			opts: []api.ConfigOption{api.WithHost("api.cryptoapis.io")}, wantErr: true,
		},
		{
			name: "negative timeout", apiKey: "key", blockchain: api.Bitcoin, network: api.Mainnet,
			opts: []api.ConfigOption{api.WithTimeout(-time.Second)}, wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := api.NewEndpointConfig(tt.apiKey, tt.blockchain, tt.network, tt.opts...)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, api.IsKind(err, api.KindInvalidParameter))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.blockchain, cfg.Blockchain())
		})
	}
}

func TestNewEndpointConfig_Defaults(t *testing.T) {
	cfg, err := api.NewEndpointConfig("key", api.Bitcoin, api.Mainnet)
	require.NoError(t, err)

	assert.Equal(t, "key", cfg.APIKey())
	assert.Equal(t, api.VersionV1, cfg.Version())
	assert.Equal(t, api.DefaultHost, cfg.Host())
	assert.Equal(t, api.Mainnet, cfg.Network())
	assert.Zero(t, cfg.Timeout())
	assert.False(t, cfg.IsTestnet())
}

func TestNewEndpointConfig_Options(t *testing.T) {
	cfg, err := api.NewEndpointConfig("key", api.Ethereum, api.Ropsten,
		api.WithVersion("v2"),
		api.WithHost("http://localhost:8080/"),
		api.WithTimeout(5*time.Second),
	)
	require.NoError(t, err)

	assert.Equal(t, "v2", cfg.Version())
	assert.Equal(t, "http://localhost:8080", cfg.Host())
	assert.Equal(t, 5*time.Second, cfg.Timeout())
	assert.True(t, cfg.IsTestnet())
}

func TestBlockchainFamilies(t *testing.T) {
	for _, b := range api.Blockchains() {
		assert.NotEqual(t, b.IsBitcoinBased(), b.IsEthereumBased(), "blockchain %s", b)
		assert.NotEmpty(t, b.Networks())
		assert.True(t, b.SupportsNetwork(api.Mainnet))
	}

	assert.ElementsMatch(t, []string{api.Mainnet, api.Ropsten, api.Rinkeby}, api.Ethereum.Networks())
}

func TestParseBlockchain(t *testing.T) {
	b, err := api.ParseBlockchain(" LTC ")
	require.NoError(t, err)
	assert.Equal(t, api.Litecoin, b)

	_, err = api.ParseBlockchain("sol")
	assert.True(t, api.IsKind(err, api.KindInvalidParameter))
}
