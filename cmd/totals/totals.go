// Package totals implements re-aggregation of an existing combined set.
package totals

import (
	"fmt"

	"awiese/finance-master/cmd/root"
	"awiese/finance-master/internal/aggregate"
	"awiese/finance-master/internal/csvio"

	"github.com/spf13/cobra"
)

var (
	inputFile  string
	outputFile string

	// Cmd is the totals command.
	Cmd = &cobra.Command{
		Use:   "totals",
		Short: "Re-aggregate a combined transaction CSV into a totals view",
		Long: `Reads a previously written combined transaction set and recomputes the
totals view. Run this after a batch of manual reclassifications.`,
		RunE: runTotals,
	}
)

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Combined transaction CSV")
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "Totals.csv", "Totals CSV to write")
	_ = Cmd.MarkFlagRequired("input")
}

func runTotals(cmd *cobra.Command, args []string) error {
	transactions, err := csvio.ReadTransactions(inputFile)
	if err != nil {
		return err
	}

	aggregator := aggregate.New(root.Log)
	rows, err := aggregator.Totals(transactions)
	if err != nil {
		return fmt.Errorf("aggregating %s: %w", inputFile, err)
	}

	return csvio.WriteTotals(rows, outputFile)
}
