package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/chinmay1088/cryptoapis/api"
	"github.com/chinmay1088/cryptoapis/chains/ethereum"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage keystore accounts held by the API",
}

var accountNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Generate an account protected by a password",
	Long: `Generate an Ethereum account whose keystore file is kept by the API.
The password is prompted for and never echoed.

Examples:
  cryptoapis account new --chain eth --network ropsten`,
	Args: cobra.NoArgs,
	RunE: runAccountNew,
}

func runAccountNew(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	if !client.Config().Blockchain().IsEthereumBased() {
		return api.InvalidParameterError("accounts are only available for eth and etc")
	}

	password, err := readPassword(cmd, "Enter keystore password: ", true)
	if err != nil {
		return err
	}

	return request(cmd, "generate account", func(ctx context.Context) (*api.Response, error) {
		return ethereum.NewAddressService(client).GenerateAccount(ctx, password)
	})
}

func init() {
	accountCmd.AddCommand(accountNewCmd)
	rootCmd.AddCommand(accountCmd)
}
