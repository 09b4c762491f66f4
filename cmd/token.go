package cmd

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/chinmay1088/cryptoapis/api"
	"github.com/chinmay1088/cryptoapis/chains/ethereum"
)

// token flags
var (
	tokenParams     map[string]string
	tokenFrom       string
	tokenTo         string
	tokenContract   string
	tokenAmount     string
	tokenGasPrice   int64
	tokenGasLimit   uint64
	tokenPrivateKey string
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Query and transfer ERC-20 tokens",
	Long: `Query and transfer ERC-20 tokens on eth and etc.

Examples:
  cryptoapis token list --chain eth --param limit=50
  cryptoapis token address 0x71c7... --chain eth
  cryptoapis token balance 0x71c7... 0xdac1... --chain eth
  cryptoapis token transfer --from 0x71c7... --to 0xbbbb... --contract 0xdac1... \
      --amount 115.221 --gas-price 11500000000 --gas-limit 60000 --chain eth`,
}

var tokenListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every token known to the API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withChain(cmd, "list tokens", nil,
			func(ctx context.Context, c *api.Client) (*api.Response, error) {
				return ethereum.NewTokenService(c).GetAll(ctx, tokenParams)
			})
	},
}

var tokenAddressCmd = &cobra.Command{
	Use:   "address <address>",
	Short: "List the tokens held by an address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withChain(cmd, "address tokens", nil,
			func(ctx context.Context, c *api.Client) (*api.Response, error) {
				return ethereum.NewTokenService(c).GetByAddress(ctx, args[0])
			})
	},
}

var tokenTransfersCmd = &cobra.Command{
	Use:   "transfers <address>",
	Short: "List the token transfers of an address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withChain(cmd, "token transfers", nil,
			func(ctx context.Context, c *api.Client) (*api.Response, error) {
				return ethereum.NewTokenService(c).GetTransfersByAddress(ctx, args[0], tokenParams)
			})
	},
}

var tokenBalanceCmd = &cobra.Command{
	Use:   "balance <address> <contract>",
	Short: "Show the token balance of an address",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withChain(cmd, "token balance", nil,
			func(ctx context.Context, c *api.Client) (*api.Response, error) {
				return ethereum.NewTokenService(c).GetBalance(ctx, args[0], args[1])
			})
	},
}

var tokenTransferCmd = &cobra.Command{
	Use:   "transfer",
	Short: "Transfer tokens between addresses",
	Long: `Transfer tokens between addresses. Without --private-key the password
of the sender's keystore held by the API is prompted for.`,
	Args: cobra.NoArgs,
	RunE: runTokenTransfer,
}

func runTokenTransfer(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	chain := client.Config().Blockchain()
	if !chain.IsEthereumBased() {
		return fmt.Errorf("token transfer is not available for %s", chain)
	}

	amount, err := decimal.NewFromString(tokenAmount)
	if err != nil {
		return api.InvalidParameterError("invalid token amount %q: %v", tokenAmount, err)
	}

	transfer := ethereum.TokenTransfer{
		FromAddress: tokenFrom,
		ToAddress:   tokenTo,
		Contract:    tokenContract,
		PrivateKey:  tokenPrivateKey,
		GasPrice:    tokenGasPrice,
		GasLimit:    tokenGasLimit,
		Token:       amount,
	}
	if transfer.PrivateKey == "" {
		password, err := readPassword(cmd, "Enter keystore password: ", false)
		if err != nil {
			return err
		}
		transfer.Password = password
	}

	return request(cmd, "token transfer", func(ctx context.Context) (*api.Response, error) {
		return ethereum.NewTokenService(client).Transfer(ctx, transfer)
	})
}

func init() {
	for _, c := range []*cobra.Command{tokenListCmd, tokenTransfersCmd} {
		c.Flags().StringToStringVar(&tokenParams, "param", nil, "query parameter key=value (index, limit, offset)")
	}

	flags := tokenTransferCmd.Flags()
	flags.StringVar(&tokenFrom, "from", "", "sender address")
	flags.StringVar(&tokenTo, "to", "", "receiver address")
	flags.StringVar(&tokenContract, "contract", "", "token contract address")
	flags.StringVar(&tokenAmount, "amount", "", "amount of tokens")
	flags.Int64Var(&tokenGasPrice, "gas-price", 0, "gas price in wei")
	flags.Uint64Var(&tokenGasLimit, "gas-limit", 0, "gas limit")
	flags.StringVar(&tokenPrivateKey, "private-key", "", "sender private key, instead of the keystore password")
	for _, name := range []string{"from", "to", "contract", "amount"} {
		_ = tokenTransferCmd.MarkFlagRequired(name)
	}

	tokenCmd.AddCommand(tokenListCmd, tokenAddressCmd, tokenTransfersCmd, tokenBalanceCmd, tokenTransferCmd)
	rootCmd.AddCommand(tokenCmd)
}
