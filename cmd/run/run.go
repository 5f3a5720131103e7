// Package run implements the batch pipeline command.
package run

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"awiese/finance-master/cmd/root"
	"awiese/finance-master/internal/csvio"
	"awiese/finance-master/internal/logging"
	"awiese/finance-master/internal/models"
	"awiese/finance-master/internal/pipeline"
	"awiese/finance-master/internal/rules"

	"github.com/spf13/cobra"
)

var (
	inputDir  string
	outputDir string
	separate  bool

	// Cmd is the run command.
	Cmd = &cobra.Command{
		Use:   "run",
		Short: "Process all exports in the input folder",
		Long: `Reads every CSV export in the input folder, normalizes, categorizes,
clusters and filters the transactions, and writes the combined transaction
set plus the totals view to the output folder.`,
		RunE: runBatch,
	}
)

func init() {
	Cmd.Flags().StringVarP(&inputDir, "input", "i", "", "Input folder (default from config)")
	Cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output folder (default from config)")
	Cmd.Flags().BoolVar(&separate, "separate", false, "Write one cleaned CSV per input file instead of a combined set")
}

func runBatch(cmd *cobra.Command, args []string) error {
	if inputDir == "" {
		inputDir = root.Cfg.Folders.Input
	}
	if outputDir == "" {
		outputDir = root.Cfg.Folders.Output
	}

	store := rules.NewStore(root.RulesPath(), root.Log)
	ruleSet, err := store.Load()
	if err != nil {
		return fmt.Errorf("loading rules: %w", err)
	}

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return fmt.Errorf("reading input folder: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			continue
		}
		files = append(files, filepath.Join(inputDir, entry.Name()))
	}
	sort.Strings(files)
	if len(files) == 0 {
		return fmt.Errorf("no CSV exports found in %s", inputDir)
	}

	tables := make([]csvio.RawTable, 0, len(files))
	for _, file := range files {
		table, err := csvio.ReadRawTable(file)
		if err != nil {
			return err
		}
		tables = append(tables, table)
	}

	p := pipeline.New(root.Cfg, root.Log)

	if separate {
		return runSeparate(p, tables, ruleSet)
	}

	combined, totals, err := p.Run(tables, ruleSet)
	if err != nil {
		return err
	}

	combinedFile := filepath.Join(outputDir, "combined_output.csv")
	if err := csvio.WriteTransactions(combined, combinedFile); err != nil {
		return err
	}

	totalsFile := filepath.Join(outputDir, "Totals.csv")
	if err := csvio.WriteTotals(totals, totalsFile); err != nil {
		return err
	}

	root.Log.Info("Batch run complete",
		logging.Field{Key: logging.FieldCount, Value: len(combined)},
		logging.Field{Key: logging.FieldOutputFile, Value: combinedFile})
	return nil
}

// runSeparate writes one cleaned CSV per input table. The totals view still
// covers the concatenation of all tables.
func runSeparate(p *pipeline.Pipeline, tables []csvio.RawTable, ruleSet []models.CategoryRule) error {
	combined := []models.Transaction{}
	for _, table := range tables {
		transactions, err := p.ProcessTable(table, ruleSet)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(table.Source, filepath.Ext(table.Source))
		outFile := filepath.Join(outputDir, fmt.Sprintf("cleaned_%s.csv", name))
		if err := csvio.WriteTransactions(transactions, outFile); err != nil {
			return err
		}
		combined = append(combined, transactions...)
	}

	totals, err := p.Totals(combined)
	if err != nil {
		return err
	}
	return csvio.WriteTotals(totals, filepath.Join(outputDir, "Totals.csv"))
}
