package reports

import (
	"context"
)

// Repository defines report data access.
type Repository interface {
	// Revenue runs the per-article aggregation for one page.
	Revenue(ctx context.Context, filter RevenueFilter) (RevenuePage, error)
}
