package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/chinmay1088/cryptoapis/api"
	"github.com/chinmay1088/cryptoapis/config"
)

var (
	version = "1.0.0"

	// loaded by PersistentPreRunE
	settings     *config.Config
	settingsPath string
)

// persistent flags
var (
	configFlag     string
	apiKeyFlag     string
	chainFlag      string
	networkFlag    string
	apiVersionFlag string
	hostFlag       string
	timeoutFlag    int
	verboseFlag    bool
	quietFlag      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cryptoapis",
	Short: "Command-line client for the Crypto APIs REST service",
	Long: `cryptoapis queries and drives the Crypto APIs REST service for
Bitcoin-like chains (btc, ltc, bch, doge, dash) and Ethereum-like chains
(eth, etc). Every command prints the JSON payload of the response.

Configuration is read from ~/.cryptoapis/config.yml, the CRYPTOAPIS_*
environment variables and the global flags, in increasing order of priority.

Examples:
  cryptoapis address info 1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa
  cryptoapis tx fees --chain ltc
  cryptoapis token balance 0x71c7... 0xdac1... --chain eth
  cryptoapis network testnet        # Persist the network
  cryptoapis address txs 1A1z... --param limit=5`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFlag, "config", "", "config file (default ~/.cryptoapis/config.yml)")
	flags.StringVar(&apiKeyFlag, "api-key", "", "API key, overrides "+config.APIKeyEnv)
	flags.StringVar(&chainFlag, "chain", "", "blockchain symbol: "+blockchainList())
	flags.StringVar(&networkFlag, "network", "", "network of the chain, e.g. mainnet, testnet, ropsten")
	flags.StringVar(&apiVersionFlag, "version", "", "API version used in request paths")
	flags.StringVar(&hostFlag, "host", "", "API host")
	flags.IntVar(&timeoutFlag, "timeout", 0, "request timeout in seconds")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "verbose output")
	flags.BoolVarP(&quietFlag, "quiet", "q", false, "suppress output")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// loadSettings reads the config file and applies the global flags on top of it.
func loadSettings(cmd *cobra.Command, _ []string) error {
	path := configFlag
	if path == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = defaultPath
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("api-key") {
		cfg.APIKey = apiKeyFlag
	}
	if flags.Changed("chain") {
		cfg.Blockchain = strings.ToLower(chainFlag)
	}
	if flags.Changed("network") {
		cfg.Network = strings.ToLower(networkFlag)
	}
	if flags.Changed("version") {
		cfg.Version = apiVersionFlag
	}
	if flags.Changed("host") {
		cfg.Host = hostFlag
	}
	if flags.Changed("timeout") {
		cfg.TimeoutSeconds = timeoutFlag
	}

	if err := setLogLevel(cfg.Log.Level); err != nil {
		return err
	}

	settings = cfg
	settingsPath = path
	return nil
}

func setLogLevel(configured string) error {
	switch {
	case verboseFlag:
		logrus.SetLevel(logrus.DebugLevel)
	case quietFlag:
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		level, err := logrus.ParseLevel(configured)
		if err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}
		logrus.SetLevel(level)
	}
	return nil
}

// newClient builds an API client from the loaded settings
func newClient() (*api.Client, error) {
	cfg, err := settings.EndpointConfig()
	if err != nil {
		return nil, err
	}
	return api.NewClient(cfg), nil
}

func blockchainList() string {
	symbols := make([]string, 0, len(api.Blockchains()))
	for _, b := range api.Blockchains() {
		symbols = append(symbols, b.String())
	}
	return strings.Join(symbols, ", ")
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "cryptoapis v%s (API %s)\n", version, settings.Version)
	},
}
