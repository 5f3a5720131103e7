// Package filter removes transactions in excluded categories, such as
// internal account-to-account transfers that would double-count money
// movement.
package filter

import (
	"awiese/finance-master/internal/logging"
	"awiese/finance-master/internal/models"
)

// Filter drops transactions whose category is in the excluded set. It runs
// after categorization and clustering, before aggregation only.
type Filter struct {
	excluded map[string]struct{}
	logger   logging.Logger
}

// New creates a Filter for the given excluded category names.
func New(excludedCategories []string, logger logging.Logger) *Filter {
	if logger == nil {
		logger = logging.GetLogger()
	}
	excluded := make(map[string]struct{}, len(excludedCategories))
	for _, name := range excludedCategories {
		excluded[name] = struct{}{}
	}
	return &Filter{excluded: excluded, logger: logger}
}

// Apply returns the transactions whose category is not excluded.
func (f *Filter) Apply(transactions []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if _, drop := f.excluded[tx.Category]; drop {
			continue
		}
		out = append(out, tx.Clone())
	}

	if dropped := len(transactions) - len(out); dropped > 0 {
		f.logger.Debug("Filtered excluded categories",
			logging.Field{Key: "dropped", Value: dropped},
			logging.Field{Key: logging.FieldCount, Value: len(out)})
	}
	return out
}
