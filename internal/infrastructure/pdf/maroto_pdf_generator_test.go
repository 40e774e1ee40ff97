package pdf

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remodj/billing-api/internal/domain/entity"
)

func sampleSnapshot() *entity.EstimateSnapshot {
	items := []entity.SnapshotItem{
		{Name: "DJ Set", Quantity: 1, LineTotal: decimal.NewFromInt(20000)},
		{Name: "Lights", Quantity: 3, LineTotal: decimal.NewFromInt(4500)},
	}
	return &entity.EstimateSnapshot{
		EstimateNo:      "EST-20240115-001",
		Date:            "15/01/2024",
		CustomerName:    "Arun Kumar",
		CustomerPhone:   "+91 98765 43210",
		CustomerAddress: "12 Beach Road, White Town, Pondicherry 605001",
		Items:           items,
		Discount:        decimal.NewFromInt(2000),
		Tax:             decimal.NewFromInt(1125),
		Subtotal:        decimal.NewFromInt(24500),
		FinalTotal:      decimal.NewFromInt(23625),
	}
}

func TestGenerateEstimatePDF_WithoutBadge(t *testing.T) {
	g := NewMarotoPDFGenerator()

	pdf, err := g.GenerateEstimatePDF(context.Background(), sampleSnapshot(), nil)

	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

// Undecodable badge bytes are skipped, never fatal: the document still
// renders with the badge slot empty.
func TestGenerateEstimatePDF_GarbageBadgeIsSkipped(t *testing.T) {
	g := NewMarotoPDFGenerator()

	pdf, err := g.GenerateEstimatePDF(context.Background(), sampleSnapshot(), []byte("not an image"))

	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestGenerateEstimatePDF_ManyItemsAndLongAddress(t *testing.T) {
	snap := sampleSnapshot()
	snap.CustomerAddress = "Door No 14, Second Cross Street, Near Government Higher Secondary School, Thirukovilur Taluk, Kallakurichi District, Tamil Nadu 605751"
	for i := 0; i < 40; i++ {
		snap.Items = append(snap.Items, entity.SnapshotItem{
			Name: "Extra speaker set", Quantity: 2, LineTotal: decimal.NewFromInt(900),
		})
	}
	g := NewMarotoPDFGenerator()

	pdf, err := g.GenerateEstimatePDF(context.Background(), snap, nil)

	require.NoError(t, err)
	assert.NotEmpty(t, pdf, "long documents paginate instead of failing")
}

// ── wrapText ──────────────────────────────────────────────────────────────────

func TestWrapText_ShortLineUnchanged(t *testing.T) {
	assert.Equal(t, []string{"12 Beach Road"}, wrapText("12 Beach Road", 45))
}

func TestWrapText_BreaksOnWordBoundaries(t *testing.T) {
	lines := wrapText("one two three four five", 9)

	assert.Equal(t, []string{"one two", "three", "four five"}, lines)
	for _, l := range lines {
		assert.LessOrEqual(t, len(l), 9)
	}
}

func TestWrapText_HardSplitsOversizedWords(t *testing.T) {
	lines := wrapText("abcdefghij", 4)

	assert.Equal(t, []string{"abcd", "efgh", "ij"}, lines)
}

func TestWrapText_EmptyInputYieldsOneEmptyLine(t *testing.T) {
	assert.Equal(t, []string{""}, wrapText("", 45))
	assert.Equal(t, []string{""}, wrapText("   ", 45))
}

func TestWrapText_CollapsesInternalWhitespace(t *testing.T) {
	assert.Equal(t, []string{"a b c"}, wrapText("a   b \t c", 45))
}
