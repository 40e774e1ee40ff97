// Package pdf implements the printable estimate document using Maroto v2.
//
// A4 page layout, top to bottom:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: company name + address  │  ESTIMATE n° + date │ ◻  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BILL TO: name / phone / wrapped address                    │
//	│  TABLE: S.No | Item Name | Quantity | Amount (striped)      │
//	│  TOTALS: Subtotal / Discount / Tax / FINAL AMOUNT           │
//	│  TERMS: fixed boilerplate                                   │
//	│  SIGNATURES: client ________   authorized ________          │
//	└─────────────────────────────────────────────────────────────┘
//
// The ◻ slot is the optional branding badge. Its column is always reserved,
// so a missing badge never shifts the surrounding content. Layout is
// deterministic for a given snapshot and badge availability.
package pdf

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/remodj/billing-api/internal/domain/entity"
	"github.com/remodj/billing-api/pkg/money"
)

// ── Company identity (static, not user-editable) ──────────────────────────────

const (
	companyName      = "REMO DJ SOUND & EVENTS"
	companyAddress   = "2/35, Main Road, G.Ariyur"
	companyCity      = "Thirukovilur, Kallakurichi"
	companyPin       = "Pin - 605 751"
	companyPhone     = "+91 74022 41381 / +91 85081 21111"
	companyInstagram = "@dj_remo_official"
)

// Address wraps at this many characters, matching the fixed column width of
// the customer block. The wrapped line count drives the block's height.
const addressWrapWidth = 45

// ── Color palette ─────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 138, Green: 43, Blue: 226} // purple
	colorGray    = &props.Color{Red: 128, Green: 128, Blue: 128}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorStripe  = &props.Color{Red: 245, Green: 245, Blue: 245}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implements estimate.EstimatePDFGenerator using Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator builds the generator.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateEstimatePDF renders the snapshot and returns the PDF bytes. badge
// may be nil or undecodable; the document is produced regardless, with the
// badge slot left empty.
func (g *MarotoPDFGenerator) GenerateEstimatePDF(
	_ context.Context,
	snap *entity.EstimateSnapshot,
	badge []byte,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Estimate "+snap.EstimateNo, true).
		WithAuthor(companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(snap, badge))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(snap))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(snap.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(snap))
	m.AddRows(termsRow())
	for _, r := range signatureRows() {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Sections ──────────────────────────────────────────────────────────────────

// headerRow: company identity (left), estimate metadata (right), badge slot
// (far right, fixed, reserved even when empty).
func headerRow(snap *entity.EstimateSnapshot, badge []byte) core.Row {
	addressLines := []string{
		companyAddress,
		companyCity,
		companyPin,
		"Phone: " + companyPhone,
		"Instagram: " + companyInstagram,
	}

	companyCol := col.New(7).Add(
		text.New(companyName, props.Text{
			Style: fontstyle.Bold, Size: 15, Color: colorPrimary, Top: 1,
		}),
	)
	for i, l := range addressLines {
		companyCol.Add(text.New(l, props.Text{
			Size: 8, Color: colorGray, Top: 10 + float64(i)*4.5,
		}))
	}

	metaCol := col.New(3).Add(
		text.New("ESTIMATE", props.Text{
			Style: fontstyle.Bold, Size: 13, Align: align.Right, Top: 1,
		}),
		text.New("Estimate No.: "+snap.EstimateNo, props.Text{
			Size: 8, Align: align.Right, Top: 10, Color: colorGray,
		}),
		text.New("Date: "+snap.Date, props.Text{
			Size: 8, Align: align.Right, Top: 14.5, Color: colorGray,
		}),
	)

	return row.New(34).Add(companyCol, metaCol, badgeCol(badge))
}

// badgeCol returns the reserved badge column. An absent or undecodable image
// leaves the column empty; other content never shifts to compensate.
func badgeCol(badge []byte) core.Col {
	c := col.New(2)
	if len(badge) == 0 {
		return c
	}
	var ext extension.Type
	switch http.DetectContentType(badge) {
	case "image/png":
		ext = extension.Png
	case "image/jpeg":
		ext = extension.Jpg
	default:
		return c
	}
	return c.Add(image.NewFromBytes(badge, ext, props.Rect{
		Center:  true,
		Percent: 85,
	}))
}

// customerRow: "Bill To:" block. Its height grows with the wrapped address,
// which is what pushes the table down — the layout is content-height-aware.
func customerRow(snap *entity.EstimateSnapshot) core.Row {
	addressLines := wrapText(snap.CustomerAddress, addressWrapWidth)

	c := col.New(12).Add(
		text.New("Bill To:", props.Text{
			Style: fontstyle.Bold, Size: 11, Top: 2,
		}),
		text.New(snap.CustomerName, props.Text{Size: 9, Top: 9}),
		text.New("Phone: "+snap.CustomerPhone, props.Text{Size: 9, Top: 14}),
	)
	for i, l := range addressLines {
		c.Add(text.New(l, props.Text{
			Size: 9, Top: 19 + float64(i)*4.5,
		}))
	}

	height := 22 + float64(len(addressLines))*4.5
	return row.New(height).Add(c)
}

// tableHeaderRow: purple header with white bold labels.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a,
			Color: colorWhite, Top: 1.5, Left: 1, Right: 1,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		h("S.No", 1, align.Center),
		h("Item Name", 7, align.Left),
		h("Quantity", 2, align.Center),
		h("Amount", 2, align.Right),
	)
}

// tableItemRows: one row per item, in draft order, with alternating fill.
// Amount is the line total (quantity × unit price), already pre-multiplied in
// the snapshot.
func tableItemRows(items []entity.SnapshotItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for i, item := range items {
		r := row.New(7).Add(
			col.New(1).Add(text.New(
				strconv.Itoa(i+1),
				props.Text{Size: 8, Align: align.Center, Top: 1.5},
			)),
			col.New(7).Add(text.New(
				item.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1.5, Left: 1},
			)),
			col.New(2).Add(text.New(
				strconv.Itoa(item.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1.5},
			)),
			col.New(2).Add(text.New(
				money.Format(item.LineTotal),
				props.Text{Size: 8, Align: align.Right, Top: 1.5, Right: 1},
			)),
		)
		if i%2 == 1 {
			r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		result = append(result, r)
	}
	return result
}

// totalsRow: right-aligned Subtotal / Discount / Tax / Final Amount, in that
// order, with the final amount emphasized.
func totalsRow(snap *entity.EstimateSnapshot) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Size: 9, Align: align.Right, Top: top, Right: 2,
		})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Top: top, Right: 1})
	}
	grandLabel := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 12, Align: align.Right,
			Color: colorPrimary, Top: top, Right: 2,
		})
	}
	grandValue := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 12, Align: align.Right,
			Color: colorPrimary, Top: top, Right: 1,
		})
	}

	return row.New(30).Add(
		col.New(5),
		col.New(4).Add(
			label("Subtotal:", 2),
			label("Discount:", 8),
			label("Tax:", 14),
			grandLabel("Final Amount:", 21),
		),
		col.New(3).Add(
			value(money.Format(snap.Subtotal), 2),
			value(money.Format(snap.Discount), 8),
			value(money.Format(snap.Tax), 14),
			grandValue(money.Format(snap.FinalTotal), 21),
		),
	)
}

// termsRow: fixed boilerplate, never derived from input.
func termsRow() core.Row {
	terms := []string{
		"• This is an estimate and subject to change based on final requirements.",
		"• Payment terms as agreed upon.",
		"• Valid for 30 days from the date of issue.",
	}
	c := col.New(12).Add(
		text.New("Terms and Conditions:", props.Text{
			Size: 8, Color: colorGray, Top: 4,
		}),
	)
	for i, t := range terms {
		c.Add(text.New(t, props.Text{
			Size: 8, Color: colorGray, Top: 9 + float64(i)*4,
		}))
	}
	return row.New(24).Add(c)
}

// signatureRows: two labeled blank lines, the final element of the document.
func signatureRows() []core.Row {
	return []core.Row{
		row.New(14).Add(
			col.New(5).Add(text.New("Client Signature:", props.Text{Size: 9, Top: 8})),
			col.New(2),
			col.New(5).Add(text.New("Authorized Signature:", props.Text{Size: 9, Top: 8})),
		),
		row.New(4).Add(
			line.NewCol(4, props.Line{Color: colorGray, Thickness: 0.5}),
			col.New(2),
			line.NewCol(4, props.Line{Color: colorGray, Thickness: 0.5}),
			col.New(2),
		),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

// wrapText word-wraps s to lines of at most width characters. Words longer
// than the width are hard-split.
func wrapText(s string, width int) []string {
	var lines []string
	var current string

	flush := func() {
		if current != "" {
			lines = append(lines, current)
			current = ""
		}
	}

	for _, word := range strings.Fields(s) {
		for len(word) > width {
			flush()
			lines = append(lines, word[:width])
			word = word[width:]
		}
		switch {
		case current == "":
			current = word
		case len(current)+1+len(word) <= width:
			current += " " + word
		default:
			flush()
			current = word
		}
	}
	flush()

	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}
