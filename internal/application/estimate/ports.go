package estimate

import (
	"context"

	"github.com/remodj/billing-api/internal/domain/entity"
)

// EstimatePDFGenerator renders a validated snapshot into PDF bytes. badge is
// the optional branding image (nil when unavailable); implementations must
// produce a complete document either way.
type EstimatePDFGenerator interface {
	GenerateEstimatePDF(ctx context.Context, snap *entity.EstimateSnapshot, badge []byte) ([]byte, error)
}

// BadgeSource fetches the optional branding badge image. Implementations
// should honor ctx cancellation; callers bound the fetch with a timeout and
// treat any error as "no badge".
type BadgeSource interface {
	Fetch(ctx context.Context) ([]byte, error)
}
