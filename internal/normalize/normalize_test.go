package normalize

import (
	"errors"
	"testing"

	"awiese/finance-master/internal/csvio"
	"awiese/finance-master/internal/logging"
	"awiese/finance-master/internal/models"
	"awiese/finance-master/internal/pipelineerror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable() csvio.RawTable {
	return csvio.RawTable{
		Source:  "kontoutskrift.csv",
		Headers: []string{"Idx", " Dato ", "Forklaring", "Rentedato", " Ut fra konto", "Inn på konto "},
		Rows: [][]string{
			{"1", "02.01.2025", "  Rema 1000  ", "03.01.2025", "120", "0"},
			{"2", "05.01.2025", "Salary", "05.01.2025", "", "32000,50"},
		},
	}
}

func TestNormalizeCanonicalSchema(t *testing.T) {
	normalizer := New(DefaultColumns(), &logging.MockLogger{})

	transactions, err := normalizer.Normalize(testTable())
	require.NoError(t, err)
	require.Len(t, transactions, 2)

	assert.Equal(t, "Rema 1000", transactions[0].Description, "cell text should be trimmed")
	assert.Equal(t, "02.01.2025", transactions[0].Date)
	assert.Equal(t, "03.01.2025", transactions[0].ValueDate)
	assert.True(t, transactions[0].Outflow.Equal(decimal.NewFromInt(120)))
	assert.True(t, transactions[0].Inflow.IsZero())

	assert.True(t, transactions[1].Inflow.Equal(decimal.RequireFromString("32000.5")))
	assert.NotEmpty(t, transactions[0].ID)
	assert.NotEqual(t, transactions[0].ID, transactions[1].ID)
}

func TestNormalizeDropsLeadingIdentifierColumn(t *testing.T) {
	normalizer := New(DefaultColumns(), &logging.MockLogger{})

	transactions, err := normalizer.Normalize(testTable())
	require.NoError(t, err)

	for _, tx := range transactions {
		assert.NotContains(t, tx.Extras, "Idx", "the leading identifier column must be dropped")
	}
}

func TestNormalizeMalformedAmountCoercesToZero(t *testing.T) {
	table := csvio.RawTable{
		Source:  "dirty.csv",
		Headers: []string{"Idx", "Forklaring", "Ut fra konto", "Inn på konto"},
		Rows: [][]string{
			{"1", "Broken export row", "N/A", "???"},
		},
	}
	normalizer := New(DefaultColumns(), &logging.MockLogger{})

	transactions, err := normalizer.Normalize(table)
	require.NoError(t, err, "a malformed amount must never drop the row or fail the run")
	require.Len(t, transactions, 1)
	assert.True(t, transactions[0].Outflow.IsZero())
	assert.True(t, transactions[0].Inflow.IsZero())
}

func TestNormalizePassthroughColumns(t *testing.T) {
	table := csvio.RawTable{
		Source:  "extra.csv",
		Headers: []string{"Idx", "Forklaring", "Ut fra konto", "Inn på konto", "Arkivref"},
		Rows: [][]string{
			{"1", "Rema 1000", "120", "0", "  A-42 "},
		},
	}
	normalizer := New(DefaultColumns(), &logging.MockLogger{})

	transactions, err := normalizer.Normalize(table)
	require.NoError(t, err)
	assert.Equal(t, "A-42", transactions[0].Extras["Arkivref"], "unknown columns pass through, trimmed")
}

func TestNormalizeMissingRequiredColumns(t *testing.T) {
	table := csvio.RawTable{
		Source:  "bad.csv",
		Headers: []string{"Idx", "Dato", "Forklaring"},
		Rows:    [][]string{{"1", "02.01.2025", "Rema 1000"}},
	}
	normalizer := New(DefaultColumns(), &logging.MockLogger{})

	_, err := normalizer.Normalize(table)
	require.Error(t, err)

	var schemaErr *pipelineerror.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.ElementsMatch(t, []string{models.ColumnOutflow, models.ColumnInflow}, schemaErr.Missing)
}

func TestNormalizeShortRowsPadded(t *testing.T) {
	table := csvio.RawTable{
		Source:  "short.csv",
		Headers: []string{"Idx", "Forklaring", "Ut fra konto", "Inn på konto"},
		Rows: [][]string{
			{"1", "Rema 1000"},
		},
	}
	normalizer := New(DefaultColumns(), &logging.MockLogger{})

	transactions, err := normalizer.Normalize(table)
	require.NoError(t, err)
	assert.True(t, transactions[0].Outflow.IsZero())
	assert.True(t, transactions[0].Inflow.IsZero())
}
