package models

// Categories
const (
	CategoryUncategorized    = "Uncategorized"
	CategoryInternalTransfer = "Kontooverføringer"
)

// TotalsRowLabel is the category label of the synthesized grand-total row.
const TotalsRowLabel = "Total"

// Canonical column names of the bank export.
const (
	ColumnDate        = "Dato"
	ColumnDescription = "Forklaring"
	ColumnValueDate   = "Rentedato"
	ColumnOutflow     = "Ut fra konto"
	ColumnInflow      = "Inn på konto"
	ColumnCategory    = "Category"
	ColumnID          = "ID"
)

// File permissions
const (
	PermissionConfigFile = 0600
	PermissionDirectory  = 0750
	PermissionOutputFile = 0644
)
