package mocks

import (
	"context"
	"errors"

	"github.com/naturecounter/insights-server/internal/service"
)

// MockReportService is a mock implementation of the ReportService interface
// for testing the handler layer. It uses function-based mocking for flexibility.
type MockReportService struct {
	AuthenticateFunc          func(ctx context.Context, email string) (service.Identity, error)
	GetSummaryFunc            func(ctx context.Context, identity service.Identity, criteria service.FilterCriteria) (service.Summary, error)
	GetPeriodRollupFunc       func(ctx context.Context, identity service.Identity, criteria service.FilterCriteria, period service.Period) ([]service.PeriodBucket, error)
	GetIndicatorBreakdownFunc func(ctx context.Context, identity service.Identity, criteria service.FilterCriteria, period service.Period) ([]service.IndicatorBucket, error)
	ListFacetValuesFunc       func(ctx context.Context, identity service.Identity, facet string) ([]string, error)
}

// Authenticate implements the ReportService interface
func (m *MockReportService) Authenticate(ctx context.Context, email string) (service.Identity, error) {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, email)
	}
	return service.Identity{}, errors.New("AuthenticateFunc not implemented")
}

// GetSummary implements the ReportService interface
func (m *MockReportService) GetSummary(ctx context.Context, identity service.Identity, criteria service.FilterCriteria) (service.Summary, error) {
	if m.GetSummaryFunc != nil {
		return m.GetSummaryFunc(ctx, identity, criteria)
	}
	return service.Summary{}, errors.New("GetSummaryFunc not implemented")
}

// GetPeriodRollup implements the ReportService interface
func (m *MockReportService) GetPeriodRollup(ctx context.Context, identity service.Identity, criteria service.FilterCriteria, period service.Period) ([]service.PeriodBucket, error) {
	if m.GetPeriodRollupFunc != nil {
		return m.GetPeriodRollupFunc(ctx, identity, criteria, period)
	}
	return nil, errors.New("GetPeriodRollupFunc not implemented")
}

// GetIndicatorBreakdown implements the ReportService interface
func (m *MockReportService) GetIndicatorBreakdown(ctx context.Context, identity service.Identity, criteria service.FilterCriteria, period service.Period) ([]service.IndicatorBucket, error) {
	if m.GetIndicatorBreakdownFunc != nil {
		return m.GetIndicatorBreakdownFunc(ctx, identity, criteria, period)
	}
	return nil, errors.New("GetIndicatorBreakdownFunc not implemented")
}

// ListFacetValues implements the ReportService interface
func (m *MockReportService) ListFacetValues(ctx context.Context, identity service.Identity, facet string) ([]string, error) {
	if m.ListFacetValuesFunc != nil {
		return m.ListFacetValuesFunc(ctx, identity, facet)
	}
	return nil, errors.New("ListFacetValuesFunc not implemented")
}
