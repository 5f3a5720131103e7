// Package csvio reads raw export tables and writes the pipeline's outputs.
//
// The raw reader is header-indexed rather than struct-bound because exports
// carry an arbitrary leading identifier column plus unknown passthrough
// columns; the structured totals view goes through gocsv.
package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"awiese/finance-master/internal/logging"
	"awiese/finance-master/internal/models"

	"github.com/gocarina/gocsv"
)

var log = logging.GetLogger()

// SetLogger allows setting a configured logger. A nil logger is ignored.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// RawTable is an already-parsed tabular record set: named columns and string
// cells, exactly as the export delivered them.
type RawTable struct {
	Source  string
	Headers []string
	Rows    [][]string
}

// ReadRawTable reads a CSV export into a RawTable without interpreting any
// cell. Short rows are padded so every row has one cell per header.
func ReadRawTable(filePath string) (RawTable, error) {
	log.Debug("Reading raw table", logging.Field{Key: logging.FieldFile, Value: filePath})

	file, err := os.Open(filePath)
	if err != nil {
		return RawTable{}, fmt.Errorf("error opening input file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return RawTable{}, fmt.Errorf("error reading CSV data: %w", err)
	}
	if len(records) == 0 {
		return RawTable{}, fmt.Errorf("input file %s is empty", filePath)
	}

	headers := records[0]
	rows := make([][]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make([]string, len(headers))
		copy(row, record)
		rows = append(rows, row)
	}

	log.Debug("Read raw table",
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(rows)})

	return RawTable{Source: filepath.Base(filePath), Headers: headers, Rows: rows}, nil
}

// transactionHeaders returns the canonical output columns followed by the
// sorted union of passthrough columns present in the set.
func transactionHeaders(transactions []models.Transaction) []string {
	headers := []string{
		models.ColumnDate,
		models.ColumnDescription,
		models.ColumnValueDate,
		models.ColumnOutflow,
		models.ColumnInflow,
		models.ColumnCategory,
		models.ColumnID,
	}

	extraSet := map[string]struct{}{}
	for _, tx := range transactions {
		for key := range tx.Extras {
			extraSet[key] = struct{}{}
		}
	}
	extras := make([]string, 0, len(extraSet))
	for key := range extraSet {
		extras = append(extras, key)
	}
	sort.Strings(extras)

	return append(headers, extras...)
}

// WriteTransactions writes the combined transaction set to a CSV file,
// canonical columns first and passthrough columns after them.
func WriteTransactions(transactions []models.Transaction, csvFile string) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	log.Info("Writing transactions to CSV file",
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})

	if err := os.MkdirAll(filepath.Dir(csvFile), models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	headers := transactionHeaders(transactions)
	writer := csv.NewWriter(file)

	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("error writing CSV header: %w", err)
	}
	for _, tx := range transactions {
		record := make([]string, len(headers))
		for i, header := range headers {
			switch header {
			case models.ColumnDate:
				record[i] = tx.Date
			case models.ColumnDescription:
				record[i] = tx.Description
			case models.ColumnValueDate:
				record[i] = tx.ValueDate
			case models.ColumnOutflow:
				record[i] = tx.Outflow.StringFixed(2)
			case models.ColumnInflow:
				record[i] = tx.Inflow.StringFixed(2)
			case models.ColumnCategory:
				record[i] = tx.Category
			case models.ColumnID:
				record[i] = tx.ID
			default:
				record[i] = tx.Extras[header]
			}
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("error flushing CSV data: %w", err)
	}
	return nil
}

// ReadTransactions reads a combined transaction set back from a CSV file
// written by WriteTransactions, restoring passthrough columns into Extras.
func ReadTransactions(csvFile string) ([]models.Transaction, error) {
	table, err := ReadRawTable(csvFile)
	if err != nil {
		return nil, err
	}

	canonical := map[string]struct{}{
		models.ColumnDate: {}, models.ColumnDescription: {}, models.ColumnValueDate: {},
		models.ColumnOutflow: {}, models.ColumnInflow: {}, models.ColumnCategory: {}, models.ColumnID: {},
	}

	index := map[string]int{}
	for i, header := range table.Headers {
		index[header] = i
	}
	for _, required := range []string{models.ColumnDescription, models.ColumnOutflow, models.ColumnInflow, models.ColumnCategory, models.ColumnID} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("combined CSV %s is missing column %q", csvFile, required)
		}
	}

	cell := func(row []string, column string) string {
		if i, ok := index[column]; ok && i < len(row) {
			return row[i]
		}
		return ""
	}

	transactions := make([]models.Transaction, 0, len(table.Rows))
	for _, row := range table.Rows {
		tx := models.Transaction{
			ID:          cell(row, models.ColumnID),
			Date:        cell(row, models.ColumnDate),
			ValueDate:   cell(row, models.ColumnValueDate),
			Description: cell(row, models.ColumnDescription),
			Outflow:     models.CoerceAmount(cell(row, models.ColumnOutflow)),
			Inflow:      models.CoerceAmount(cell(row, models.ColumnInflow)),
			Category:    cell(row, models.ColumnCategory),
		}
		for i, header := range table.Headers {
			if _, ok := canonical[header]; ok {
				continue
			}
			if i < len(row) {
				if tx.Extras == nil {
					tx.Extras = map[string]string{}
				}
				tx.Extras[header] = row[i]
			}
		}
		transactions = append(transactions, tx)
	}

	return transactions, nil
}

// WriteTotals writes the totals view to a CSV file.
func WriteTotals(totals []models.TotalsRow, csvFile string) error {
	if totals == nil {
		return fmt.Errorf("cannot write nil totals to CSV")
	}

	log.Info("Writing totals to CSV file",
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(totals)})

	if err := os.MkdirAll(filepath.Dir(csvFile), models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := gocsv.MarshalFile(&totals, file); err != nil {
		return fmt.Errorf("error writing totals CSV: %w", err)
	}
	return nil
}

// ReadTotals reads a totals view back from a CSV file.
func ReadTotals(csvFile string) ([]models.TotalsRow, error) {
	file, err := os.Open(csvFile)
	if err != nil {
		return nil, fmt.Errorf("error opening totals CSV: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	var totals []models.TotalsRow
	if err := gocsv.UnmarshalFile(file, &totals); err != nil {
		return nil, fmt.Errorf("error parsing totals CSV: %w", err)
	}
	return totals, nil
}
