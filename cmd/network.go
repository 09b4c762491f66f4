package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/chinmay1088/cryptoapis/api"
	"github.com/chinmay1088/cryptoapis/config"
)

var networkCmd = &cobra.Command{
	Use:   "network [name]",
	Short: "Show or change the configured chain and network",
	Long: `Show the configured chain and network, or persist a new network to the
config file. Combine with --chain to switch chains at the same time.

Examples:
  cryptoapis network                       # Show current network
  cryptoapis network testnet               # Switch to testnet
  cryptoapis network ropsten --chain eth   # Switch to eth ropsten`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNetwork,
}

func runNetwork(cmd *cobra.Command, args []string) error {
	blockchain, err := api.ParseBlockchain(settings.Blockchain)
	if err != nil {
		return err
	}

	// If no arguments provided, show current network
	if len(args) == 0 {
		showCurrentNetwork(cmd, blockchain)
		return nil
	}

	network := strings.ToLower(args[0])
	if !blockchain.SupportsNetwork(network) {
		return fmt.Errorf("invalid network %s for %s. Use one of: %s",
			network, blockchain, strings.Join(blockchain.Networks(), ", "))
	}

	// only the chain and network are persisted, never flag or env values
	fileCfg, err := config.LoadFile(settingsPath)
	if err != nil {
		return err
	}
	fileCfg.Blockchain = blockchain.String()
	fileCfg.Network = network
	if err := fileCfg.Save(settingsPath); err != nil {
		return err
	}
	settings.Blockchain = fileCfg.Blockchain
	settings.Network = network

	fmt.Fprintf(cmd.OutOrStdout(), "Switched to %s %s\n", strings.ToUpper(blockchain.String()), networkLabel(network))
	return nil
}

func showCurrentNetwork(cmd *cobra.Command, blockchain api.Blockchain) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Current network: %s %s\n", strings.ToUpper(blockchain.String()), networkLabel(settings.Network))
	fmt.Fprintf(out, "Host: %s/%s\n", strings.TrimSuffix(settings.Host, "/"), settings.Version)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Available networks:")
	for _, b := range api.Blockchains() {
		fmt.Fprintf(out, "   - %s: %s\n", b, strings.Join(b.Networks(), ", "))
	}
}

func networkLabel(network string) string {
	if network == api.Mainnet {
		return color.GreenString(network)
	}
	return color.YellowString(network)
}

func init() {
	rootCmd.AddCommand(networkCmd)
}
