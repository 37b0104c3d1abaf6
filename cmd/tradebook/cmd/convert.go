package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/journal"
	"github.com/rustyeddy/tradebook/sheet"
)

var convertCmd = &cobra.Command{
	Use:   "convert <in> <out>",
	Short: "Convert a ledger file between storage formats",
	Long: `Convert a ledger file between xlsx, csv and sqlite storage.

The target format follows the output file's extension. The file is
decoded and re-encoded on the way through, so summary rows are
regenerated from the trades rather than copied.

Examples:
  tradebook convert journal.xlsx journal.csv
  tradebook convert journal.csv journal.db`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

var convertSheet string

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&convertSheet, "sheet", "s", "Trading Journal", "sheet label for xlsx output")
}

func runConvert(cmd *cobra.Command, args []string) error {
	in, out := args[0], args[1]

	src, err := sheet.ForPath(in)
	if err != nil {
		return err
	}
	dst, err := sheet.ForPath(out)
	if err != nil {
		return err
	}

	_, rows, err := src.Read(in)
	if err != nil {
		return fmt.Errorf("read %s: %w", in, err)
	}

	codec := journal.NewSerializer()
	ledger := codec.Decode(rows)
	encoded := codec.Encode(ledger.Trades, ledger.StartingBalanceCrypto, ledger.StartingBalanceForex)

	if err := dst.Write(out, journal.Columns(), encoded, convertSheet); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	fmt.Printf("converted %s -> %s (%d trades)\n", in, out, len(ledger.Trades))
	return nil
}
