package entity

import "github.com/shopspring/decimal"

// LineItem is one billable row of an estimate.
//
// UnitPrice is the price per unit; the line total (Quantity × UnitPrice) is
// always derived, never stored, so the two can never drift apart.
type LineItem struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

// NewLineItem returns a line item with the form defaults: quantity 1,
// unit price 0, empty name.
func NewLineItem() LineItem {
	return LineItem{Quantity: 1, UnitPrice: decimal.Zero}
}

// LineTotal is Quantity × UnitPrice at full precision.
func (li LineItem) LineTotal() decimal.Decimal {
	return decimal.NewFromInt(int64(li.Quantity)).Mul(li.UnitPrice)
}
