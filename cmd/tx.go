package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chinmay1088/cryptoapis/api"
	"github.com/chinmay1088/cryptoapis/chains/bitcoin"
	"github.com/chinmay1088/cryptoapis/chains/ethereum"
)

// tx flags
var (
	txParams  map[string]string
	txWIFs    []string
	txInputs  []string
	txOutputs []string
	txFee     string
)

var txCmd = &cobra.Command{
	Use:     "tx",
	Aliases: []string{"transaction"},
	Short:   "Look up, build and broadcast transactions",
	Long: `Look up, build and broadcast transactions on the configured chain.

Examples:
  cryptoapis tx get 4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b
  cryptoapis tx block 100000 --param limit=5
  cryptoapis tx fees --chain ltc
  cryptoapis tx size --input 1A1z...=0.001 --output 1Bvb...=0.0009
  cryptoapis tx sign 0100... --wif 5Hue...
  cryptoapis tx send 0xf86b... --chain eth`,
}

var txGetCmd = &cobra.Command{
	Use:   "get <hash>",
	Short: "Show a transaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withChain(cmd, "get transaction",
			func(ctx context.Context, c *api.Client) (*api.Response, error) {
				return bitcoin.NewTransactionService(c).GetByHash(ctx, args[0])
			},
			func(ctx context.Context, c *api.Client) (*api.Response, error) {
				return ethereum.NewTransactionService(c).GetByHash(ctx, args[0])
			})
	},
}

var txBlockCmd = &cobra.Command{
	Use:   "block <hash|height>",
	Short: "List the transactions of a block",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withChain(cmd, "block transactions",
			func(ctx context.Context, c *api.Client) (*api.Response, error) {
				svc := bitcoin.NewTransactionService(c)
				if height, ok := parseHeight(args[0]); ok {
					return svc.GetByBlockHeight(ctx, height, txParams)
				}
				return svc.GetByBlockHash(ctx, args[0], txParams)
			}, nil)
	},
}

var txUnconfirmedCmd = &cobra.Command{
	Use:   "unconfirmed",
	Short: "List unconfirmed transactions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withChain(cmd, "unconfirmed transactions",
			func(ctx context.Context, c *api.Client) (*api.Response, error) {
				return bitcoin.NewTransactionService(c).GetUnconfirmed(ctx, txParams)
			}, nil)
	},
}

var txDecodeCmd = &cobra.Command{
	Use:   "decode <hex>",
	Short: "Decode a raw transaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withChain(cmd, "decode transaction",
			func(ctx context.Context, c *api.Client) (*api.Response, error) {
				return bitcoin.NewTransactionService(c).Decode(ctx, args[0])
			}, nil)
	},
}

var txSendCmd = &cobra.Command{
	Use:   "send <hex>",
	Short: "Broadcast a signed raw transaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withChain(cmd, "send transaction",
			func(ctx context.Context, c *api.Client) (*api.Response, error) {
				return bitcoin.NewTransactionService(c).Send(ctx, args[0])
			},
			func(ctx context.Context, c *api.Client) (*api.Response, error) {
				return ethereum.NewTransactionService(c).PushRaw(ctx, args[0])
			})
	},
}

var txSignCmd = &cobra.Command{
	Use:   "sign <hex>",
	Short: "Sign a raw transaction with one or more WIF keys",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withChain(cmd, "sign transaction",
			func(ctx context.Context, c *api.Client) (*api.Response, error) {
				return bitcoin.NewTransactionService(c).Sign(ctx, args[0], txWIFs)
			}, nil)
	},
}

var txCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Build an unsigned transaction",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tx, err := createTransactionFromFlags()
		if err != nil {
			return err
		}
		return withChain(cmd, "create transaction",
			func(ctx context.Context, c *api.Client) (*api.Response, error) {
				return bitcoin.NewTransactionService(c).Create(ctx, tx)
			}, nil)
	},
}

var txNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Create, sign and broadcast a transaction in one call",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tx, err := createTransactionFromFlags()
		if err != nil {
			return err
		}
		return withChain(cmd, "new transaction",
			func(ctx context.Context, c *api.Client) (*api.Response, error) {
				return bitcoin.NewTransactionService(c).New(ctx, tx, txWIFs)
			}, nil)
	},
}

var txSizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Estimate the size of a transaction in bytes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		inputs, outputs, err := transfersFromFlags()
		if err != nil {
			return err
		}
		size := bitcoin.TransactionSize{Inputs: inputs, Outputs: outputs}
		if txFee != "" {
			value, err := bitcoin.NewAmount(txFee)
			if err != nil {
				return err
			}
			size.Fee = &bitcoin.Fee{Value: value}
		}
		return withChain(cmd, "transaction size",
			func(ctx context.Context, c *api.Client) (*api.Response, error) {
				return bitcoin.NewTransactionService(c).Size(ctx, size)
			}, nil)
	},
}

var txFeesCmd = &cobra.Command{
	Use:   "fees",
	Short: "Show the current fee recommendations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withChain(cmd, "transaction fees",
			func(ctx context.Context, c *api.Client) (*api.Response, error) {
				return bitcoin.NewTransactionService(c).GetFees(ctx)
			}, nil)
	},
}

var txRefundCmd = &cobra.Command{
	Use:   "refund <txid>",
	Short: "Send back the funds of an unspent transaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(txWIFs) != 1 {
			return fmt.Errorf("refund needs exactly one --wif")
		}
		fee, err := bitcoin.NewAmount(txFee)
		if err != nil {
			return err
		}
		return withChain(cmd, "refund transaction",
			func(ctx context.Context, c *api.Client) (*api.Response, error) {
				return bitcoin.NewTransactionService(c).Refund(ctx, args[0], txWIFs[0], fee)
			}, nil)
	},
}

// transfersFromFlags turns --input and --output pairs into models
func transfersFromFlags() ([]bitcoin.Input, []bitcoin.Output, error) {
	inputs := make([]bitcoin.Input, 0, len(txInputs))
	for _, pair := range txInputs {
		address, value, err := splitPair(pair)
		if err != nil {
			return nil, nil, err
		}
		amount, err := bitcoin.NewAmount(value)
		if err != nil {
			return nil, nil, err
		}
		inputs = append(inputs, bitcoin.Input{Address: address, Value: amount})
	}

	outputs := make([]bitcoin.Output, 0, len(txOutputs))
	for _, pair := range txOutputs {
		address, value, err := splitPair(pair)
		if err != nil {
			return nil, nil, err
		}
		amount, err := bitcoin.NewAmount(value)
		if err != nil {
			return nil, nil, err
		}
		outputs = append(outputs, bitcoin.Output{Address: address, Value: amount})
	}
	return inputs, outputs, nil
}

func createTransactionFromFlags() (bitcoin.CreateTransaction, error) {
	inputs, outputs, err := transfersFromFlags()
	if err != nil {
		return bitcoin.CreateTransaction{}, err
	}
	fee, err := bitcoin.NewAmount(txFee)
	if err != nil {
		return bitcoin.CreateTransaction{}, err
	}
	return bitcoin.NewCreateTransaction(inputs, outputs, bitcoin.Fee{Value: fee}, nil)
}

func init() {
	for _, c := range []*cobra.Command{txBlockCmd, txUnconfirmedCmd} {
		c.Flags().StringToStringVar(&txParams, "param", nil, "query parameter key=value (index, limit, offset)")
	}
	for _, c := range []*cobra.Command{txSignCmd, txNewCmd, txRefundCmd} {
		c.Flags().StringArrayVar(&txWIFs, "wif", nil, "private key in wallet import format, repeatable")
	}
	for _, c := range []*cobra.Command{txCreateCmd, txNewCmd, txSizeCmd} {
		c.Flags().StringArrayVar(&txInputs, "input", nil, "input as address=value, repeatable")
		c.Flags().StringArrayVar(&txOutputs, "output", nil, "output as address=value, repeatable")
	}
	for _, c := range []*cobra.Command{txCreateCmd, txNewCmd, txSizeCmd, txRefundCmd} {
		c.Flags().StringVar(&txFee, "fee", "", "fee in coins")
	}

	txCmd.AddCommand(txGetCmd, txBlockCmd, txUnconfirmedCmd, txDecodeCmd, txSendCmd, txSignCmd,
		txCreateCmd, txNewCmd, txSizeCmd, txFeesCmd, txRefundCmd)
	rootCmd.AddCommand(txCmd)
}
