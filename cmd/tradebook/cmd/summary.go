package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/journal"
	"github.com/rustyeddy/tradebook/sheet"
)

var summaryCmd = &cobra.Command{
	Use:   "summary <file>",
	Short: "Print portfolio summaries for a ledger file",
	Args:  cobra.ExactArgs(1),
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	path := args[0]

	engine, err := sheet.ForPath(path)
	if err != nil {
		return err
	}
	_, rows, err := engine.Read(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	ledger := journal.NewSerializer().Decode(rows)
	summaries := journal.GenerateSummaries(ledger.Trades,
		ledger.StartingBalanceCrypto, ledger.StartingBalanceForex)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "PORTFOLIO\tP&L\tDETAILS\n")
	for _, row := range summaries {
		fmt.Fprintf(tw, "%s\t%s\t%s\n",
			row[journal.ColType], row[journal.ColProfitLoss], row[journal.ColNotes])
	}
	return tw.Flush()
}
