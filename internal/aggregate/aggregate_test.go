package aggregate

import (
	"errors"
	"testing"

	"awiese/finance-master/internal/logging"
	"awiese/finance-master/internal/models"
	"awiese/finance-master/internal/pipelineerror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestTotalsSumsPerCategory(t *testing.T) {
	aggregator := New(&logging.MockLogger{})

	rows, err := aggregator.Totals([]models.Transaction{
		{Category: "Groceries", Outflow: amount("120"), Inflow: amount("0")},
		{Category: "Groceries", Outflow: amount("80"), Inflow: amount("0")},
		{Category: "Salary", Outflow: amount("0"), Inflow: amount("32000.50")},
	})
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Groceries", rows[0].Category)
	assert.True(t, rows[0].Outflow.Equal(amount("200")))
	assert.True(t, rows[0].Inflow.IsZero())

	assert.Equal(t, "Salary", rows[1].Category)
	assert.True(t, rows[1].Inflow.Equal(amount("32000.50")))
}

func TestTotalsRowsSortedWithTrailingTotal(t *testing.T) {
	aggregator := New(&logging.MockLogger{})

	rows, err := aggregator.Totals([]models.Transaction{
		{Category: "Salary", Inflow: amount("100")},
		{Category: "Groceries", Outflow: amount("50")},
		{Category: "Housing", Outflow: amount("9000")},
	})
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, "Groceries", rows[0].Category)
	assert.Equal(t, "Housing", rows[1].Category)
	assert.Equal(t, "Salary", rows[2].Category)

	total := rows[len(rows)-1]
	assert.Equal(t, models.TotalsRowLabel, total.Category)
	assert.True(t, total.Outflow.Equal(amount("9050")))
	assert.True(t, total.Inflow.Equal(amount("100")))
}

func TestTotalsGrandTotalEqualsColumnSums(t *testing.T) {
	aggregator := New(&logging.MockLogger{})

	rows, err := aggregator.Totals([]models.Transaction{
		{Category: "A", Outflow: amount("1.10"), Inflow: amount("2.20")},
		{Category: "B", Outflow: amount("3.30"), Inflow: amount("4.40")},
		{Category: "A", Outflow: amount("5.50")},
	})
	require.NoError(t, err)

	sumOut, sumIn := decimal.Zero, decimal.Zero
	for _, row := range rows[:len(rows)-1] {
		sumOut = sumOut.Add(row.Outflow)
		sumIn = sumIn.Add(row.Inflow)
	}
	total := rows[len(rows)-1]
	assert.True(t, total.Outflow.Equal(sumOut))
	assert.True(t, total.Inflow.Equal(sumIn))
}

func TestTotalsEmptySet(t *testing.T) {
	aggregator := New(&logging.MockLogger{})

	rows, err := aggregator.Totals([]models.Transaction{})
	require.NoError(t, err)
	require.Len(t, rows, 1, "an empty set still yields the grand-total row")
	assert.Equal(t, models.TotalsRowLabel, rows[0].Category)
	assert.True(t, rows[0].Outflow.IsZero())
	assert.True(t, rows[0].Inflow.IsZero())
}

func TestTotalsNilSet(t *testing.T) {
	aggregator := New(&logging.MockLogger{})

	_, err := aggregator.Totals(nil)
	var missingErr *pipelineerror.MissingColumnsError
	require.True(t, errors.As(err, &missingErr))
}

func TestTotalsUncategorizedInputRejected(t *testing.T) {
	aggregator := New(&logging.MockLogger{})

	_, err := aggregator.Totals([]models.Transaction{
		{Category: "Groceries", Outflow: amount("120")},
		{Description: "never categorized"},
	})
	var missingErr *pipelineerror.MissingColumnsError
	require.True(t, errors.As(err, &missingErr),
		"a transaction without a category means the set skipped categorization")
}
