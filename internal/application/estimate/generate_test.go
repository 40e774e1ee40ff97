package estimate_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remodj/billing-api/internal/application/estimate"
	"github.com/remodj/billing-api/internal/domain"
	"github.com/remodj/billing-api/internal/domain/entity"
	"github.com/remodj/billing-api/pkg/logger"
)

// stubGenerator records what it was asked to render.
type stubGenerator struct {
	snap  *entity.EstimateSnapshot
	badge []byte
	calls int
	err   error
}

func (s *stubGenerator) GenerateEstimatePDF(_ context.Context, snap *entity.EstimateSnapshot, badge []byte) ([]byte, error) {
	s.calls++
	s.snap = snap
	s.badge = badge
	if s.err != nil {
		return nil, s.err
	}
	return []byte("%PDF-stub"), nil
}

// stubBadge returns fixed bytes or an error.
type stubBadge struct {
	data []byte
	err  error
}

func (s *stubBadge) Fetch(context.Context) ([]byte, error) { return s.data, s.err }

// slowBadge blocks until its context is cancelled.
type slowBadge struct{}

func (slowBadge) Fetch(ctx context.Context) ([]byte, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

func newFilledDraft(t *testing.T, uc *estimate.BuilderUseCase) string {
	t.Helper()
	id, _ := uc.CreateDraft()
	require.NoError(t, uc.SetHeaderField(id, string(entity.FieldCustomerName), "Arun Kumar"))
	require.NoError(t, uc.SetHeaderField(id, string(entity.FieldCustomerPhone), "+91 98765 43210"))
	require.NoError(t, uc.SetHeaderField(id, string(entity.FieldCustomerAddress), "12 Beach Road, Pondicherry"))
	require.NoError(t, uc.UpdateItem(id, 0, estimate.ItemFieldName, "DJ Set"))
	require.NoError(t, uc.UpdateItem(id, 0, estimate.ItemFieldUnitPrice, "20000"))
	return id
}

func TestGenerate_HappyPath(t *testing.T) {
	builder := estimate.NewBuilderUseCase(fixedClock)
	gen := &stubGenerator{}
	uc := estimate.NewGenerateUseCase(builder, gen, nil, time.Second, testLogger())
	id := newFilledDraft(t, builder)

	pdf, filename, err := uc.GenerateEstimatePDF(context.Background(), id)

	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "Estimate_EST-20240115-001_15-01-2024.pdf", filename)
	require.NotNil(t, gen.snap)
	assert.Equal(t, "15/01/2024", gen.snap.Date)
	assert.Equal(t, "20000.00", gen.snap.Subtotal.StringFixed(2))
	assert.Nil(t, gen.badge, "no badge source configured")
}

func TestGenerate_UnknownDraft(t *testing.T) {
	builder := estimate.NewBuilderUseCase(fixedClock)
	gen := &stubGenerator{}
	uc := estimate.NewGenerateUseCase(builder, gen, nil, time.Second, testLogger())

	_, _, err := uc.GenerateEstimatePDF(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, gen.calls)
}

// An invalid draft aborts before snapshot and render, and the error carries
// the complete field map, not just the first violation.
func TestGenerate_InvalidDraftNeverReachesRenderer(t *testing.T) {
	builder := estimate.NewBuilderUseCase(fixedClock)
	gen := &stubGenerator{}
	uc := estimate.NewGenerateUseCase(builder, gen, nil, time.Second, testLogger())
	id, _ := builder.CreateDraft() // empty customer block, empty item name

	_, _, err := uc.GenerateEstimatePDF(context.Background(), id)

	var verr *entity.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, entity.FieldCustomerName)
	assert.Contains(t, verr.Fields, entity.FieldCustomerPhone)
	assert.Contains(t, verr.Fields, entity.FieldCustomerAddress)
	assert.Contains(t, verr.Fields, entity.ItemName(0))
	assert.Zero(t, gen.calls, "renderer must not run for an invalid draft")
}

func TestGenerate_BadgePassedToRenderer(t *testing.T) {
	builder := estimate.NewBuilderUseCase(fixedClock)
	gen := &stubGenerator{}
	badge := &stubBadge{data: []byte{0x89, 'P', 'N', 'G'}}
	uc := estimate.NewGenerateUseCase(builder, gen, badge, time.Second, testLogger())
	id := newFilledDraft(t, builder)

	_, _, err := uc.GenerateEstimatePDF(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, badge.data, gen.badge)
}

// A failing badge fetch degrades to a badge-less document instead of
// aborting the export.
func TestGenerate_BadgeFailureDoesNotAbort(t *testing.T) {
	builder := estimate.NewBuilderUseCase(fixedClock)
	gen := &stubGenerator{}
	badge := &stubBadge{err: errors.New("dns failure")}
	uc := estimate.NewGenerateUseCase(builder, gen, badge, time.Second, testLogger())
	id := newFilledDraft(t, builder)

	pdf, _, err := uc.GenerateEstimatePDF(context.Background(), id)

	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Nil(t, gen.badge)
}

// The badge fetch is bounded by its own timeout; a hanging source cannot
// stall the export.
func TestGenerate_BadgeFetchIsBounded(t *testing.T) {
	builder := estimate.NewBuilderUseCase(fixedClock)
	gen := &stubGenerator{}
	uc := estimate.NewGenerateUseCase(builder, gen, slowBadge{}, 20*time.Millisecond, testLogger())
	id := newFilledDraft(t, builder)

	start := time.Now()
	_, _, err := uc.GenerateEstimatePDF(context.Background(), id)

	require.NoError(t, err)
	assert.Less(t, time.Since(start), time.Second)
	assert.Nil(t, gen.badge)
}

func TestGenerate_RendererErrorPropagates(t *testing.T) {
	builder := estimate.NewBuilderUseCase(fixedClock)
	gen := &stubGenerator{err: errors.New("font missing")}
	uc := estimate.NewGenerateUseCase(builder, gen, nil, time.Second, testLogger())
	id := newFilledDraft(t, builder)

	_, _, err := uc.GenerateEstimatePDF(context.Background(), id)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "render")
}
