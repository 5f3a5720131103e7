// Package reclassify applies manual category overrides from the external
// review tool to a previously persisted combined transaction set.
package reclassify

import (
	"awiese/finance-master/internal/logging"
	"awiese/finance-master/internal/models"
	"awiese/finance-master/internal/pipelineerror"
)

// Reclassifier moves a transaction into an explicit category after a run.
type Reclassifier struct {
	logger logging.Logger
}

// New creates a Reclassifier.
func New(logger logging.Logger) *Reclassifier {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Reclassifier{logger: logger}
}

// Reclassify sets the category of the transaction with the given id and
// returns the updated transaction plus a copy of the set with the change
// applied. The new category must be a name in the current rule set
// (InvalidCategoryError otherwise); an unknown id fails with
// TransactionNotFoundError. Neither the Categorizer nor the NameClusterer is
// re-run; callers re-run the Aggregator to refresh totals.
func (r *Reclassifier) Reclassify(transactions []models.Transaction, id, newCategory string, ruleSet []models.CategoryRule) (models.Transaction, []models.Transaction, error) {
	if !models.HasRule(ruleSet, newCategory) {
		return models.Transaction{}, nil, &pipelineerror.InvalidCategoryError{Category: newCategory}
	}

	out := models.CloneAll(transactions)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		r.logger.Info("Reclassified transaction",
			logging.Field{Key: logging.FieldTransactionID, Value: id},
			logging.Field{Key: "from", Value: out[i].Category},
			logging.Field{Key: logging.FieldCategory, Value: newCategory})
		out[i].Category = newCategory
		return out[i].Clone(), out, nil
	}

	return models.Transaction{}, nil, &pipelineerror.TransactionNotFoundError{ID: id}
}

// Uncategorized returns the transactions still carrying the Uncategorized
// label, in input order. The review tool lists these for manual assignment.
func Uncategorized(transactions []models.Transaction) []models.Transaction {
	var out []models.Transaction
	for _, tx := range transactions {
		if tx.Category == models.CategoryUncategorized {
			out = append(out, tx.Clone())
		}
	}
	return out
}
