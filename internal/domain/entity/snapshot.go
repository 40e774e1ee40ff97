package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DisplayDate is the date format printed on the document (day/month/year).
const DisplayDate = "02/01/2006"

// SnapshotItem is a rendered table row. Unlike the draft's LineItem it
// carries the pre-multiplied LineTotal, not the unit price.
type SnapshotItem struct {
	Name      string
	Quantity  int
	LineTotal decimal.Decimal
}

// EstimateSnapshot is the immutable, validated projection of a draft that the
// renderer consumes. It is created once per successful generate action and
// discarded after rendering.
type EstimateSnapshot struct {
	EstimateNo      string
	Date            string // DD/MM/YYYY
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	Items           []SnapshotItem
	Discount        decimal.Decimal
	Tax             decimal.Decimal
	Subtotal        decimal.Decimal
	FinalTotal      decimal.Decimal
}

// Snapshot freezes a validated draft. The caller must have run Validate
// first; an unparseable date here means the draft never went through it.
func (d *EstimateDraft) Snapshot() (*EstimateSnapshot, error) {
	date, err := time.Parse(ISODate, d.Date)
	if err != nil {
		return nil, err
	}

	items := make([]SnapshotItem, 0, len(d.Items))
	for _, item := range d.Items {
		items = append(items, SnapshotItem{
			Name:      item.Name,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal(),
		})
	}

	return &EstimateSnapshot{
		EstimateNo:      d.EstimateNo,
		Date:            date.Format(DisplayDate),
		CustomerName:    d.CustomerName,
		CustomerPhone:   d.CustomerPhone,
		CustomerAddress: d.CustomerAddress,
		Items:           items,
		Discount:        d.Discount,
		Tax:             d.Tax,
		Subtotal:        d.Subtotal(),
		FinalTotal:      d.FinalTotal(),
	}, nil
}

// Filename is the deterministic download name:
// Estimate_{estimateNo}_{date with slashes replaced by dashes}.pdf
func (s *EstimateSnapshot) Filename() string {
	return "Estimate_" + s.EstimateNo + "_" + strings.ReplaceAll(s.Date, "/", "-") + ".pdf"
}
