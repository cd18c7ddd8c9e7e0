package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/naturecounter/insights-server/internal/repository/models"
)

const (
	dbTimeout   = 1 * time.Second
	loadTimeout = 15 * time.Second
)

// Facet names accepted by ListFacetValues.
const (
	FacetIndicator = "indicator"
	FacetEmail     = "email"
)

var (
	ErrDataUnavailable = errors.New("source data unavailable")
	ErrAccessDenied    = errors.New("access denied")
	ErrNoUserData      = errors.New("no data for user")
	ErrNoFilteredData  = errors.New("no data for filters")
	ErrStorageFailure  = errors.New("storage failure")
	ErrUnknownFacet    = errors.New("unknown facet")
)

// ReportService runs the dashboard pipeline: authenticate, load, restrict,
// narrow, aggregate. Each call re-executes the full pipeline; nothing is
// shared between requests beyond the injected collaborators.
type ReportService struct {
	datasets    DatasetRepository
	permissions PermissionRepository
	logger      *zap.Logger
}

// NewReportService creates a new ReportService instance.
func NewReportService(datasets DatasetRepository, permissions PermissionRepository, logger *zap.Logger) *ReportService {
	if datasets == nil {
		panic("datasets must not be nil")
	}
	if permissions == nil {
		panic("permissions must not be nil")
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}
	return &ReportService{
		datasets:    datasets,
		permissions: permissions,
		logger:      logger,
	}
}

// Authenticate resolves an identity from the permission list. The email is
// trimmed and lowercased before lookup; unknown emails are denied.
func (s *ReportService) Authenticate(ctx context.Context, email string) (Identity, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return Identity{}, ErrAccessDenied
	}

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	permission, found, err := s.permissions.FindByEmail(dbCtx, normalized)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	if !found {
		s.logger.Info("login rejected", zap.String("email", normalized))
		return Identity{}, ErrAccessDenied
	}

	role := RoleUser
	if permission.Role == string(RoleAdmin) {
		role = RoleAdmin
	}

	s.logger.Info("login accepted",
		zap.String("email", normalized),
		zap.String("role", string(role)))

	return Identity{Email: normalized, Role: role}, nil
}

// GetSummary returns the headline metrics for the caller-visible, filtered
// dataset.
func (s *ReportService) GetSummary(ctx context.Context, identity Identity, criteria FilterCriteria) (Summary, error) {
	dataset, err := s.loadFiltered(ctx, identity, criteria)
	if err != nil {
		return Summary{}, err
	}

	summary := Summarize(dataset)

	s.logger.Info("computed summary",
		zap.String("email", identity.Email),
		zap.Int("rows", len(dataset)),
		zap.Int("unique_sessions", summary.TotalUniqueSessions))

	return summary, nil
}

// GetPeriodRollup returns per-bucket unique session counts and mean
// ratings, sorted chronologically.
func (s *ReportService) GetPeriodRollup(ctx context.Context, identity Identity, criteria FilterCriteria, period Period) ([]PeriodBucket, error) {
	dataset, err := s.loadFiltered(ctx, identity, criteria)
	if err != nil {
		return nil, err
	}

	grouped := GroupByPeriod(dataset, period)

	buckets := make([]PeriodBucket, 0, len(grouped))
	for label, stats := range grouped {
		buckets = append(buckets, PeriodBucket{
			Period:         label,
			UniqueSessions: stats.UniqueSessions,
			MeanRating:     stats.MeanRating,
		})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Period < buckets[j].Period
	})
	return buckets, nil
}

// GetIndicatorBreakdown returns per-(bucket, indicator) aggregates, sorted
// by bucket then indicator.
func (s *ReportService) GetIndicatorBreakdown(ctx context.Context, identity Identity, criteria FilterCriteria, period Period) ([]IndicatorBucket, error) {
	dataset, err := s.loadFiltered(ctx, identity, criteria)
	if err != nil {
		return nil, err
	}

	grouped := GroupByPeriodIndicator(dataset, period)

	buckets := make([]IndicatorBucket, 0, len(grouped))
	for key, stats := range grouped {
		buckets = append(buckets, IndicatorBucket{
			Period:         key.Period,
			Indicator:      key.Indicator,
			UniqueSessions: stats.UniqueSessions,
			PositiveMean:   stats.PositiveMean,
			NegativeMean:   stats.NegativeMean,
		})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Period != buckets[j].Period {
			return buckets[i].Period < buckets[j].Period
		}
		return buckets[i].Indicator < buckets[j].Indicator
	})
	return buckets, nil
}

// ListFacetValues returns the distinct non-null values of a facet over the
// caller-visible dataset, sorted, for the filter multiselects.
func (s *ReportService) ListFacetValues(ctx context.Context, identity Identity, facet string) ([]string, error) {
	if facet != FacetIndicator && facet != FacetEmail {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFacet, facet)
	}

	dataset, err := s.loadRestricted(ctx, identity)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, row := range dataset {
		value := row.Indicator
		if facet == FacetEmail {
			value = row.UserEmail
		}
		if value != "" {
			seen[value] = struct{}{}
		}
	}

	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values, nil
}

// loadRestricted loads the dataset and applies the access filter. An empty
// source is reported as unavailable, which presentation phrases differently
// from an empty access-filter result.
func (s *ReportService) loadRestricted(ctx context.Context, identity Identity) (models.Dataset, error) {
	loadCtx, cancel := context.WithTimeout(ctx, loadTimeout)
	defer cancel()

	dataset, err := s.datasets.Load(loadCtx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	if len(dataset) == 0 {
		return nil, ErrDataUnavailable
	}

	restricted := Restrict(dataset, identity)
	if len(restricted) == 0 {
		return nil, ErrNoUserData
	}
	return restricted, nil
}

// loadFiltered runs loadRestricted and then the range and facet filter.
func (s *ReportService) loadFiltered(ctx context.Context, identity Identity, criteria FilterCriteria) (models.Dataset, error) {
	restricted, err := s.loadRestricted(ctx, identity)
	if err != nil {
		return nil, err
	}

	narrowed := Narrow(restricted, criteria)
	if len(narrowed) == 0 {
		return nil, ErrNoFilteredData
	}
	return narrowed, nil
}
