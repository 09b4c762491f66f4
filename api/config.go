package api

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// API defaults
const (
	VersionV1   = "v1"
	DefaultHost = "https://api.cryptoapis.io"
	Latest      = "latest"
)

// Blockchain is the symbol the API uses for a chain in request paths.
type Blockchain string

// supported blockchains
const (
	Bitcoin         Blockchain = "btc"
	Ethereum        Blockchain = "eth"
	Litecoin        Blockchain = "ltc"
	BitcoinCash     Blockchain = "bch"
	Dogecoin        Blockchain = "doge"
	Dash            Blockchain = "dash"
	EthereumClassic Blockchain = "etc"
)

// network type constants
const (
	// btc, ltc, bch, doge, dash
	Mainnet = "mainnet"
	Testnet = "testnet"

	// eth
	Ropsten = "ropsten"
	Rinkeby = "rinkeby"

	// etc
	Morden = "morden"
)

var blockchainNetworks = map[Blockchain][]string{
	Bitcoin:         {Mainnet, Testnet},
	Litecoin:        {Mainnet, Testnet},
	BitcoinCash:     {Mainnet, Testnet},
	Dogecoin:        {Mainnet, Testnet},
	Dash:            {Mainnet, Testnet},
	Ethereum:        {Mainnet, Ropsten, Rinkeby},
	EthereumClassic: {Mainnet, Morden},
}

// Blockchains returns every supported blockchain symbol.
func Blockchains() []Blockchain {
	return []Blockchain{Bitcoin, Ethereum, Litecoin, BitcoinCash, Dogecoin, Dash, EthereumClassic}
}

// ParseBlockchain maps a symbol (case-insensitive) to a supported Blockchain.
func ParseBlockchain(symbol string) (Blockchain, error) {
	b := Blockchain(strings.ToLower(strings.TrimSpace(symbol)))
	if !b.Valid() {
		return "", newError(KindInvalidParameter, fmt.Sprintf("unsupported blockchain: %q", symbol))
	}
	return b, nil
}

// Valid reports whether b is one of the supported symbols.
func (b Blockchain) Valid() bool {
	_, ok := blockchainNetworks[b]
	return ok
}

// IsBitcoinBased returns true for the UTXO chains served by the bitcoin façades
func (b Blockchain) IsBitcoinBased() bool {
	switch b {
	case Bitcoin, Litecoin, BitcoinCash, Dogecoin, Dash:
		return true
	}
	return false
}

// IsEthereumBased returns true for eth and etc
func (b Blockchain) IsEthereumBased() bool {
	return b == Ethereum || b == EthereumClassic
}

// Networks returns the networks the API exposes for b.
func (b Blockchain) Networks() []string {
	nets := blockchainNetworks[b]
	out := make([]string, len(nets))
	copy(out, nets)
	return out
}

// SupportsNetwork reports whether network is valid for b.
func (b Blockchain) SupportsNetwork(network string) bool {
	for _, n := range blockchainNetworks[b] {
		if n == network {
			return true
		}
	}
	return false
}

func (b Blockchain) String() string {
	return string(b)
}

// EndpointConfig holds everything needed to address the API. It is immutable once
// built and may be shared by any number of concurrent calls.
type EndpointConfig struct {
	apiKey     string
	blockchain Blockchain
	network    string
	version    string
	host       string
	timeout    time.Duration
}

// ConfigOption customises an EndpointConfig at construction time.
type ConfigOption func(*EndpointConfig)

// WithVersion overrides the API version (default v1).
func WithVersion(version string) ConfigOption {
	return func(c *EndpointConfig) {
		c.version = version
	}
}

// WithHost overrides the base host (default https://api.cryptoapis.io).
func WithHost(host string) ConfigOption {
	return func(c *EndpointConfig) {
		c.host = strings.TrimRight(host, "/")
	}
}

// WithTimeout sets the timeout of the HTTP client built by NewClient.
// Zero keeps the transport default.
func WithTimeout(d time.Duration) ConfigOption {
	return func(c *EndpointConfig) {
		c.timeout = d
	}
}

// NewEndpointConfig validates and builds a configuration.
func NewEndpointConfig(apiKey string, blockchain Blockchain, network string, opts ...ConfigOption) (EndpointConfig, error) {
	cfg := EndpointConfig{
		apiKey:     strings.TrimSpace(apiKey),
		blockchain: blockchain,
		network:    strings.ToLower(strings.TrimSpace(network)),
		version:    VersionV1,
		host:       DefaultHost,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.validate(); err != nil {
		return EndpointConfig{}, err
	}
	return cfg, nil
}

func (c EndpointConfig) validate() error {
	if c.apiKey == "" {
		return newError(KindInvalidParameter, "api key cannot be empty")
	}
	if !c.blockchain.Valid() {
		return newError(KindInvalidParameter, fmt.Sprintf("unsupported blockchain: %q", c.blockchain))
	}
	if !c.blockchain.SupportsNetwork(c.network) {
		return newError(KindInvalidParameter, fmt.Sprintf("invalid network %q for %s, use one of: %s",
			c.network, c.blockchain, strings.Join(c.blockchain.Networks(), ", ")))
	}
	if c.version == "" {
		return newError(KindInvalidParameter, "api version cannot be empty")
	}
	u, err := url.Parse(c.host)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return newError(KindInvalidParameter, fmt.Sprintf("invalid host: %q", c.host))
	}
	if c.timeout < 0 {
		return newError(KindInvalidParameter, "timeout cannot be negative")
	}
	return nil
}

// APIKey returns the key sent with every request
func (c EndpointConfig) APIKey() string { return c.apiKey }

// Blockchain returns the configured chain symbol
func (c EndpointConfig) Blockchain() Blockchain { return c.blockchain }

// Network returns the configured network
func (c EndpointConfig) Network() string { return c.network }

// Version returns the API version
func (c EndpointConfig) Version() string { return c.version }

// Host returns the base host without a trailing slash
func (c EndpointConfig) Host() string { return c.host }

// Timeout returns the HTTP timeout, zero when unset
func (c EndpointConfig) Timeout() time.Duration { return c.timeout }

// IsTestnet returns true if the config targets anything but mainnet
func (c EndpointConfig) IsTestnet() bool {
	return c.network != Mainnet
}
