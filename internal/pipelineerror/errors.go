// Package pipelineerror defines the typed failures the pipeline can surface.
// The CLI layer is responsible for presenting them; the core only needs to
// return a value sufficient to distinguish the kinds below.
package pipelineerror

import (
	"fmt"
	"strings"
)

// SchemaError reports required columns missing from an input table after
// normalization. A run that hits this aborts without partial output.
type SchemaError struct {
	Source  string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema error in %s: missing required columns: %s",
		e.Source, strings.Join(e.Missing, ", "))
}

// MissingColumnsError reports that aggregation preconditions are unmet,
// e.g. a transaction set that never went through categorization.
// Aggregation never produces a partial or zeroed totals view.
type MissingColumnsError struct {
	Reason string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("cannot aggregate: %s", e.Reason)
}

// InvalidCategoryError reports a reclassification to a category name that is
// not part of the current rule set.
type InvalidCategoryError struct {
	Category string
}

func (e *InvalidCategoryError) Error() string {
	return fmt.Sprintf("unknown category %q: not in the current rule set", e.Category)
}

// TransactionNotFoundError reports a reclassification against an identifier
// that does not exist in the combined transaction set.
type TransactionNotFoundError struct {
	ID string
}

func (e *TransactionNotFoundError) Error() string {
	return fmt.Sprintf("transaction %q not found", e.ID)
}
