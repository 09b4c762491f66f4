package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chinmay1088/cryptoapis/api"
	"github.com/chinmay1088/cryptoapis/chains/bitcoin"
	"github.com/chinmay1088/cryptoapis/chains/ethereum"
)

var addressParams map[string]string

var addressCmd = &cobra.Command{
	Use:   "address",
	Short: "Query and generate addresses",
	Long: `Query and generate addresses on the configured chain.

Examples:
  cryptoapis address info 1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa
  cryptoapis address txs 0x71c7... --chain eth --param limit=10
  cryptoapis address new --chain doge --network testnet
  cryptoapis address multisig 3J98t1WpEZ73CNmQviecrnyiWrnqRhWNLy
  cryptoapis address nonce 0x71c7... --chain eth`,
}

var addressInfoCmd = &cobra.Command{
	Use:   "info <address>",
	Short: "Show balance and details of an address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withChain(cmd, "address info",
			func(ctx context.Context, c *api.Client) (*api.Response, error) {
				return bitcoin.NewAddressService(c).GetAddressInfo(ctx, args[0])
			},
			func(ctx context.Context, c *api.Client) (*api.Response, error) {
				return ethereum.NewAddressService(c).GetAddressInfo(ctx, args[0])
			})
	},
}

var addressTxsCmd = &cobra.Command{
	Use:   "txs <address>",
	Short: "List the transactions of an address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withChain(cmd, "address transactions",
			func(ctx context.Context, c *api.Client) (*api.Response, error) {
				return bitcoin.NewAddressService(c).GetTransactions(ctx, args[0], addressParams)
			},
			func(ctx context.Context, c *api.Client) (*api.Response, error) {
				return ethereum.NewAddressService(c).GetTransactions(ctx, args[0], addressParams)
			})
	},
}

var addressNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Generate a new address and its keys",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withChain(cmd, "generate address",
			func(ctx context.Context, c *api.Client) (*api.Response, error) {
				return bitcoin.NewAddressService(c).GenerateAddress(ctx)
			},
			func(ctx context.Context, c *api.Client) (*api.Response, error) {
				return ethereum.NewAddressService(c).GenerateAddress(ctx)
			})
	},
}

var addressMultisigCmd = &cobra.Command{
	Use:   "multisig <address>",
	Short: "Show the multisig addresses an address takes part in",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withChain(cmd, "multisig address info",
			func(ctx context.Context, c *api.Client) (*api.Response, error) {
				return bitcoin.NewAddressService(c).GetMultisigAddressInfo(ctx, args[0], addressParams)
			}, nil)
	},
}

var addressNonceCmd = &cobra.Command{
	Use:   "nonce <address>",
	Short: "Show the next nonce of an address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withChain(cmd, "address nonce", nil,
			func(ctx context.Context, c *api.Client) (*api.Response, error) {
				return ethereum.NewAddressService(c).GetNonce(ctx, args[0])
			})
	},
}

type call func(ctx context.Context, c *api.Client) (*api.Response, error)

// withChain runs the call matching the family of the configured chain. A nil
// call means the command does not exist for that family.
func withChain(cmd *cobra.Command, description string, bitcoinLike, ethereumLike call) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	chain := client.Config().Blockchain()
	var fn call
	switch {
	case chain.IsBitcoinBased():
		fn = bitcoinLike
	case chain.IsEthereumBased():
		fn = ethereumLike
	}
	if fn == nil {
		return fmt.Errorf("%s is not available for %s", description, chain)
	}

	return request(cmd, description, func(ctx context.Context) (*api.Response, error) {
		return fn(ctx, client)
	})
}

func init() {
	for _, c := range []*cobra.Command{addressTxsCmd, addressMultisigCmd} {
		c.Flags().StringToStringVar(&addressParams, "param", nil, "query parameter key=value (index, limit, offset)")
	}

	addressCmd.AddCommand(addressInfoCmd, addressTxsCmd, addressNewCmd, addressMultisigCmd, addressNonceCmd)
	rootCmd.AddCommand(addressCmd)
}
