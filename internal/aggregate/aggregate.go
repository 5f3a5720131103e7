// Package aggregate builds the totals view from a filtered transaction set.
package aggregate

import (
	"sort"

	"awiese/finance-master/internal/logging"
	"awiese/finance-master/internal/models"
	"awiese/finance-master/internal/pipelineerror"

	"github.com/shopspring/decimal"
)

// Aggregator sums outflow and inflow per category.
type Aggregator struct {
	logger logging.Logger
}

// New creates an Aggregator.
func New(logger logging.Logger) *Aggregator {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Aggregator{logger: logger}
}

// Totals groups transactions by category, summing outflow and inflow
// independently, one row per category sorted lexicographically, plus a
// trailing grand-total row labeled models.TotalsRowLabel.
//
// The input must be at the transaction level and fully categorized; a nil
// set or a transaction without a category fails with MissingColumnsError
// rather than producing a partial totals view.
func (a *Aggregator) Totals(transactions []models.Transaction) ([]models.TotalsRow, error) {
	if transactions == nil {
		return nil, &pipelineerror.MissingColumnsError{Reason: "transaction set is nil"}
	}
	for _, tx := range transactions {
		if tx.Category == "" {
			return nil, &pipelineerror.MissingColumnsError{Reason: "transaction set has not been categorized"}
		}
	}

	type sums struct {
		outflow decimal.Decimal
		inflow  decimal.Decimal
	}
	perCategory := map[string]*sums{}
	for _, tx := range transactions {
		s, ok := perCategory[tx.Category]
		if !ok {
			s = &sums{outflow: decimal.Zero, inflow: decimal.Zero}
			perCategory[tx.Category] = s
		}
		s.outflow = s.outflow.Add(tx.Outflow)
		s.inflow = s.inflow.Add(tx.Inflow)
	}

	categories := make([]string, 0, len(perCategory))
	for name := range perCategory {
		categories = append(categories, name)
	}
	sort.Strings(categories)

	rows := make([]models.TotalsRow, 0, len(categories)+1)
	totalOutflow := decimal.Zero
	totalInflow := decimal.Zero
	for _, name := range categories {
		s := perCategory[name]
		rows = append(rows, models.TotalsRow{Category: name, Outflow: s.outflow, Inflow: s.inflow})
		totalOutflow = totalOutflow.Add(s.outflow)
		totalInflow = totalInflow.Add(s.inflow)
	}
	rows = append(rows, models.TotalsRow{
		Category: models.TotalsRowLabel,
		Outflow:  totalOutflow,
		Inflow:   totalInflow,
	})

	a.logger.Debug("Aggregated totals",
		logging.Field{Key: "categories", Value: len(categories)},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})

	return rows, nil
}
