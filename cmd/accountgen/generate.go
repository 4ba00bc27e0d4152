package main

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dvrvsimi/solana-accountgen/pkg/accountgen"
	"github.com/dvrvsimi/solana-accountgen/pkg/solana"
)

var (
	generateBalance    uint64
	generateOwner      string
	generateExecutable bool
	generateDataHex    string
	generateDataB64    string
	generateFormat     string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a single account",
	Long: `Generate an account with the given balance, owner and data, and
print it in the requested output format.`,
	RunE: runGenerate,
}

func init() {
	initConfig()

	generateCmd.Flags().Uint64VarP(&generateBalance, "balance", "b", 0, "account balance in lamports")
	generateCmd.Flags().StringVarP(&generateOwner, "owner", "o", "", "account owner as a base58 public key")
	generateCmd.Flags().BoolVarP(&generateExecutable, "executable", "e", false, "mark the account executable")
	generateCmd.Flags().StringVarP(&generateDataHex, "data", "d", "", "account data as a hex string")
	generateCmd.Flags().StringVar(&generateDataB64, "data-base64", "", "account data as a base64 string")
	generateCmd.Flags().StringVarP(&generateFormat, "format", "f", viper.GetString("format"), "output format (json or base64)")

	cobra.CheckErr(generateCmd.MarkFlagRequired("owner"))

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	owner, err := solana.PublicKeyFromBase58(generateOwner)
	if err != nil {
		return errors.Wrap(err, "invalid --owner")
	}

	builder := accountgen.NewAccountBuilder().
		WithBalance(generateBalance).
		WithOwner(owner).
		WithExecutable(generateExecutable)

	if generateDataHex != "" && generateDataB64 != "" {
		return errors.New("--data and --data-base64 are mutually exclusive")
	}
	if generateDataHex != "" {
		data, err := hex.DecodeString(generateDataHex)
		if err != nil {
			return errors.Wrap(err, "invalid --data")
		}
		builder.WithRawData(data)
	}
	if generateDataB64 != "" {
		data, err := base64.StdEncoding.DecodeString(generateDataB64)
		if err != nil {
			return errors.Wrap(err, "invalid --data-base64")
		}
		builder.WithRawData(data)
	}

	account, err := builder.Build()
	if err != nil {
		return err
	}

	rendered, err := renderAccount(account, generateFormat)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return nil
}

func renderAccount(account solana.Account, format string) (string, error) {
	switch format {
	case "json":
		marshalled, err := json.MarshalIndent(account, "", "  ")
		if err != nil {
			return "", errors.Wrap(err, "error rendering account as json")
		}
		return string(marshalled), nil
	case "base64":
		marshalled, err := json.Marshal(account)
		if err != nil {
			return "", errors.Wrap(err, "error rendering account as json")
		}
		return base64.StdEncoding.EncodeToString(marshalled), nil
	default:
		return "", errors.Errorf("unsupported format: %s", format)
	}
}
