package estimate

import (
	"context"
	"fmt"
	"time"

	"github.com/remodj/billing-api/internal/domain/entity"
	"github.com/remodj/billing-api/pkg/logger"
)

// GenerateUseCase turns a draft into a downloadable PDF: validate, freeze a
// snapshot, fetch the optional badge with bounded effort, render.
type GenerateUseCase struct {
	builder      *BuilderUseCase
	generator    EstimatePDFGenerator
	badge        BadgeSource // nil disables the badge
	badgeTimeout time.Duration
	log          *logger.Logger
}

// NewGenerateUseCase builds the use case. badge may be nil.
func NewGenerateUseCase(
	builder *BuilderUseCase,
	generator EstimatePDFGenerator,
	badge BadgeSource,
	badgeTimeout time.Duration,
	log *logger.Logger,
) *GenerateUseCase {
	return &GenerateUseCase{
		builder:      builder,
		generator:    generator,
		badge:        badge,
		badgeTimeout: badgeTimeout,
		log:          log,
	}
}

// GenerateEstimatePDF validates the draft and renders it.
//
// Returns:
//   - (pdfBytes, filename, nil) on success.
//   - domain.ErrNotFound if the draft does not exist.
//   - *entity.ValidationError carrying the complete field→message map if the
//     draft is invalid; no snapshot is built and nothing is rendered.
func (uc *GenerateUseCase) GenerateEstimatePDF(
	ctx context.Context,
	draftID string,
) (pdfBytes []byte, filename string, err error) {
	// ── 1. Load draft ─────────────────────────────────────────────────────────
	draft, err := uc.builder.Get(draftID)
	if err != nil {
		return nil, "", err
	}

	// ── 2. Validate; an invalid draft never reaches the renderer ──────────────
	if errs := draft.Validate(); len(errs) > 0 {
		return nil, "", &entity.ValidationError{Fields: errs}
	}

	// ── 3. Freeze the immutable snapshot ──────────────────────────────────────
	snap, err := draft.Snapshot()
	if err != nil {
		return nil, "", fmt.Errorf("estimate: snapshot: %w", err)
	}

	// ── 4. Optional badge, bounded effort; failure only drops the badge ───────
	var badge []byte
	if uc.badge != nil {
		fetchCtx, cancel := context.WithTimeout(ctx, uc.badgeTimeout)
		badge, err = uc.badge.Fetch(fetchCtx)
		cancel()
		if err != nil {
			uc.log.Warn().Err(err).Msg("badge unavailable, rendering without it")
			badge = nil
		}
	}

	// ── 5. Render ─────────────────────────────────────────────────────────────
	pdfBytes, err = uc.generator.GenerateEstimatePDF(ctx, snap, badge)
	if err != nil {
		return nil, "", fmt.Errorf("estimate: render: %w", err)
	}

	return pdfBytes, snap.Filename(), nil
}
