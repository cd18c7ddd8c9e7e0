package grpc

import (
	"context"
	"time"

	"github.com/naturecounter/insights-server/internal/service"
)

// Cacher defines the interface for cache operations.
type Cacher interface {
	Close() error
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

// ReportService is the pipeline surface the handlers depend on.
type ReportService interface {
	Authenticate(ctx context.Context, email string) (service.Identity, error)
	GetSummary(ctx context.Context, identity service.Identity, criteria service.FilterCriteria) (service.Summary, error)
	GetPeriodRollup(ctx context.Context, identity service.Identity, criteria service.FilterCriteria, period service.Period) ([]service.PeriodBucket, error)
	GetIndicatorBreakdown(ctx context.Context, identity service.Identity, criteria service.FilterCriteria, period service.Period) ([]service.IndicatorBucket, error)
	ListFacetValues(ctx context.Context, identity service.Identity, facet string) ([]string, error)
}
