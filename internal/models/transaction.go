// Package models provides the data structures shared across the pipeline.
package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is one bank-statement line in canonical form. Date fields are
// kept as the export's strings; the pipeline never interprets them. Outflow
// and Inflow are non-negative; exactly one is typically non-zero, but both
// are always present and default to zero when the export value is unparsable.
type Transaction struct {
	ID          string            `csv:"ID"`
	Date        string            `csv:"Dato"`
	ValueDate   string            `csv:"Rentedato"`
	Description string            `csv:"Forklaring"`
	Outflow     decimal.Decimal   `csv:"Ut fra konto"`
	Inflow      decimal.Decimal   `csv:"Inn på konto"`
	Category    string            `csv:"Category"`
	Extras      map[string]string `csv:"-"` // passthrough columns from the source export
}

// NewID returns a fresh transaction identifier.
func NewID() string {
	return uuid.New().String()
}

// Clone returns a deep copy of the transaction, including the Extras map.
func (t Transaction) Clone() Transaction {
	out := t
	if t.Extras != nil {
		out.Extras = make(map[string]string, len(t.Extras))
		for k, v := range t.Extras {
			out.Extras[k] = v
		}
	}
	return out
}

// CloneAll returns a deep copy of a transaction set. Pipeline stages operate
// on copies so each stage is a pure transformation of its input.
func CloneAll(txs []Transaction) []Transaction {
	if txs == nil {
		return nil
	}
	out := make([]Transaction, len(txs))
	for i, tx := range txs {
		out[i] = tx.Clone()
	}
	return out
}

// CoerceAmount converts an export cell to a decimal amount. Malformed values
// coerce to zero instead of failing so a row is never dropped for a bad
// amount. Handles comma decimal separators, currency markers and common
// thousand separators.
func CoerceAmount(raw string) decimal.Decimal {
	amount := strings.TrimSpace(raw)
	amount = strings.ReplaceAll(amount, " ", "")
	amount = strings.ReplaceAll(amount, " ", "")
	amount = strings.ReplaceAll(amount, "kr", "")
	amount = strings.ReplaceAll(amount, "NOK", "")
	amount = strings.ReplaceAll(amount, "'", "")

	// Norwegian exports use comma as the decimal separator and period as
	// the thousand separator when both are present.
	if strings.Contains(amount, ",") {
		amount = strings.ReplaceAll(amount, ".", "")
		amount = strings.ReplaceAll(amount, ",", ".")
	}

	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero
	}
	return dec
}
