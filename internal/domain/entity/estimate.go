package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ISODate is the wire format for the draft date (HTML date-input format).
const ISODate = "2006-01-02"

// EstimateDraft is the mutable, in-progress estimate owned by the builder.
// All money figures are flat currency amounts, never percentage rates.
//
// Discount and Tax are intentionally not validated for sign or for exceeding
// the subtotal; a discount larger than subtotal+tax legally produces a
// negative final total.
type EstimateDraft struct {
	EstimateNo      string
	Date            string // ISO YYYY-MM-DD
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	Items           []LineItem // order is row order in the rendered document
	Discount        decimal.Decimal
	Tax             decimal.Decimal
}

// NewEstimateDraft creates a draft with form defaults: today's date, one
// empty line item, and an auto-generated estimate number of the form
// EST-YYYYMMDD-001. The number is generated exactly once, at creation; it is
// user-editable afterward and never regenerated.
func NewEstimateDraft(now time.Time) *EstimateDraft {
	return &EstimateDraft{
		EstimateNo: fmt.Sprintf("EST-%s-001", now.Format("20060102")),
		Date:       now.Format(ISODate),
		Items:      []LineItem{NewLineItem()},
		Discount:   decimal.Zero,
		Tax:        decimal.Zero,
	}
}

// AddItem appends a new line item with defaults to the end of the sequence.
func (d *EstimateDraft) AddItem() {
	d.Items = append(d.Items, NewLineItem())
}

// RemoveItem removes the item at index. The collection always retains at
// least one item: removing the last remaining item is a silent no-op, as is
// an out-of-range index.
func (d *EstimateDraft) RemoveItem(index int) {
	if len(d.Items) <= 1 || index < 0 || index >= len(d.Items) {
		return
	}
	d.Items = append(d.Items[:index], d.Items[index+1:]...)
}

// Subtotal is Σ(quantity × unit price) over all items, at full precision.
func (d *EstimateDraft) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range d.Items {
		sum = sum.Add(item.LineTotal())
	}
	return sum
}

// FinalTotal is subtotal − discount + tax. Not floored at zero.
func (d *EstimateDraft) FinalTotal() decimal.Decimal {
	return d.Subtotal().Sub(d.Discount).Add(d.Tax)
}
