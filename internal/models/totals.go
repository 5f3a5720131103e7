package models

import "github.com/shopspring/decimal"

// TotalsRow is one line of the totals view: per-category outflow and inflow
// sums. Outflow and inflow are separate sums, never netted. The view carries
// one trailing row with Category == TotalsRowLabel holding grand totals.
type TotalsRow struct {
	Category string          `csv:"Category"`
	Outflow  decimal.Decimal `csv:"Ut fra konto"`
	Inflow   decimal.Decimal `csv:"Inn på konto"`
}
