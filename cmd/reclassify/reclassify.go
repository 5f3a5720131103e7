// Package reclassify implements the manual-override boundary for the
// external review workflow.
package reclassify

import (
	"fmt"

	"awiese/finance-master/cmd/root"
	"awiese/finance-master/internal/csvio"
	"awiese/finance-master/internal/reclassify"
	"awiese/finance-master/internal/rules"

	"github.com/spf13/cobra"
)

var (
	combinedFile string
	txID         string
	category     string
	listOnly     bool

	// Cmd is the reclassify command.
	Cmd = &cobra.Command{
		Use:   "reclassify",
		Short: "Apply a manual category override to a combined set",
		Long: `Moves a transaction out of "Uncategorized" into an explicit category.
The new category must exist in the current rule set. Use --list to show the
transactions still uncategorized. Re-run 'totals' afterwards to refresh the
totals view.`,
		RunE: runReclassify,
	}
)

func init() {
	Cmd.Flags().StringVarP(&combinedFile, "file", "f", "", "Combined transaction CSV")
	Cmd.Flags().StringVar(&txID, "id", "", "Transaction identifier")
	Cmd.Flags().StringVarP(&category, "category", "c", "", "Category to assign")
	Cmd.Flags().BoolVar(&listOnly, "list", false, "List uncategorized transactions and exit")
	_ = Cmd.MarkFlagRequired("file")
}

func runReclassify(cmd *cobra.Command, args []string) error {
	transactions, err := csvio.ReadTransactions(combinedFile)
	if err != nil {
		return err
	}

	if listOnly {
		for _, tx := range reclassify.Uncategorized(transactions) {
			fmt.Printf("%s\t%s\t%s\n", tx.ID, tx.Date, tx.Description)
		}
		return nil
	}

	if txID == "" || category == "" {
		return fmt.Errorf("--id and --category are required unless --list is given")
	}

	store := rules.NewStore(root.RulesPath(), root.Log)
	ruleSet, err := store.Load()
	if err != nil {
		return fmt.Errorf("loading rules: %w", err)
	}

	reclassifier := reclassify.New(root.Log)
	updated, all, err := reclassifier.Reclassify(transactions, txID, category, ruleSet)
	if err != nil {
		return err
	}

	if err := csvio.WriteTransactions(all, combinedFile); err != nil {
		return err
	}

	fmt.Printf("%s -> %s\n", updated.Description, updated.Category)
	return nil
}
