// Package normalize turns raw export tables into canonical transactions.
package normalize

import (
	"strings"

	"awiese/finance-master/internal/csvio"
	"awiese/finance-master/internal/logging"
	"awiese/finance-master/internal/models"
	"awiese/finance-master/internal/pipelineerror"
)

// Columns names the export columns the normalizer maps onto the canonical
// transaction schema. Description, Outflow and Inflow are required; Date and
// ValueDate are carried through when present.
type Columns struct {
	Date        string
	ValueDate   string
	Description string
	Outflow     string
	Inflow      string
}

// DefaultColumns returns the column names of the bank's standard export.
func DefaultColumns() Columns {
	return Columns{
		Date:        models.ColumnDate,
		ValueDate:   models.ColumnValueDate,
		Description: models.ColumnDescription,
		Outflow:     models.ColumnOutflow,
		Inflow:      models.ColumnInflow,
	}
}

// Normalizer trims and type-coerces raw tables into canonical transactions.
type Normalizer struct {
	columns Columns
	logger  logging.Logger
}

// New creates a Normalizer for the given column names.
func New(columns Columns, logger logging.Logger) *Normalizer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Normalizer{columns: columns, logger: logger}
}

// Normalize produces canonical transactions from a raw table.
//
// The first column is dropped as a non-semantic row identifier from the
// source export. Header names and every cell are trimmed. Outflow and inflow
// coerce to zero when unparsable, so a row is never dropped for a bad
// amount. Columns outside the canonical schema pass through in Extras.
// Returns a SchemaError when the description, outflow or inflow column is
// absent after normalization.
func (n *Normalizer) Normalize(table csvio.RawTable) ([]models.Transaction, error) {
	headers := make([]string, len(table.Headers))
	for i, header := range table.Headers {
		headers[i] = strings.TrimSpace(header)
	}
	if len(headers) > 0 {
		headers = headers[1:]
	}

	index := map[string]int{}
	for i, header := range headers {
		if _, exists := index[header]; !exists {
			index[header] = i
		}
	}

	var missing []string
	for _, required := range []string{n.columns.Description, n.columns.Outflow, n.columns.Inflow} {
		if _, ok := index[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, &pipelineerror.SchemaError{Source: table.Source, Missing: missing}
	}

	canonical := map[int]struct{}{}
	for _, name := range []string{n.columns.Date, n.columns.ValueDate, n.columns.Description, n.columns.Outflow, n.columns.Inflow} {
		if i, ok := index[name]; ok {
			canonical[i] = struct{}{}
		}
	}

	cell := func(row []string, column string) string {
		i, ok := index[column]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	transactions := make([]models.Transaction, 0, len(table.Rows))
	for _, raw := range table.Rows {
		row := raw
		if len(row) > 0 {
			row = row[1:]
		}

		tx := models.Transaction{
			ID:          models.NewID(),
			Date:        cell(row, n.columns.Date),
			ValueDate:   cell(row, n.columns.ValueDate),
			Description: cell(row, n.columns.Description),
			Outflow:     models.CoerceAmount(cell(row, n.columns.Outflow)),
			Inflow:      models.CoerceAmount(cell(row, n.columns.Inflow)),
		}

		for i, header := range headers {
			if _, ok := canonical[i]; ok || header == "" {
				continue
			}
			if i < len(row) {
				if tx.Extras == nil {
					tx.Extras = map[string]string{}
				}
				tx.Extras[header] = strings.TrimSpace(row[i])
			}
		}

		transactions = append(transactions, tx)
	}

	n.logger.Debug("Normalized raw table",
		logging.Field{Key: logging.FieldFile, Value: table.Source},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})

	return transactions, nil
}
