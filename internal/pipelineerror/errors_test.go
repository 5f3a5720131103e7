package pipelineerror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemaError(t *testing.T) {
	err := &SchemaError{Source: "march.csv", Missing: []string{"Forklaring", "Ut fra konto"}}
	assert.Contains(t, err.Error(), "march.csv")
	assert.Contains(t, err.Error(), "Forklaring, Ut fra konto")

	var schemaErr *SchemaError
	assert.True(t, errors.As(err, &schemaErr))
}

func TestMissingColumnsError(t *testing.T) {
	err := &MissingColumnsError{Reason: "transaction set is nil"}
	assert.Contains(t, err.Error(), "cannot aggregate")
	assert.Contains(t, err.Error(), "transaction set is nil")
}

func TestInvalidCategoryError(t *testing.T) {
	err := &InvalidCategoryError{Category: "Travel"}
	assert.Contains(t, err.Error(), `"Travel"`)
}

func TestTransactionNotFoundError(t *testing.T) {
	err := &TransactionNotFoundError{ID: "abc-123"}
	assert.Contains(t, err.Error(), "abc-123")
}
