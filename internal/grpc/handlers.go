package grpc

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	pb "github.com/naturecounter/insights-server/api/v1"
	"github.com/naturecounter/insights-server/internal/service"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	defaultCacheDuration = 10 * time.Minute
	defaultGRPCTimeout   = 30 * time.Second

	dateLayout = "2006-01-02"
)

type CacheKeyType string

const (
	cacheKeyRatingSummary      CacheKeyType = "grpc:rating_summary"
	cacheKeySessionRollup      CacheKeyType = "grpc:session_rollup"
	cacheKeyIndicatorBreakdown CacheKeyType = "grpc:indicator_breakdown"
	cacheKeyFacetValues        CacheKeyType = "grpc:facet_values"
)

type GRPCHandlers struct {
	pb.UnimplementedDashboardAnalyticsServer
	reports  ReportService
	cache    Cacher
	logger   *zap.Logger
	sfGroup  singleflight.Group
	cacheTTL time.Duration
}

// NewGRPCHandlers initializes the gRPC handlers.
func NewGRPCHandlers(reports ReportService, cache Cacher, logger *zap.Logger, ttl time.Duration) *GRPCHandlers {
	if reports == nil {
		panic("nil ReportService provided to NewGRPCHandlers")
	}
	if ttl <= 0 {
		ttl = defaultCacheDuration
	}
	return &GRPCHandlers{
		reports:  reports,
		cache:    cache,
		logger:   logger.Named("grpc-handler"),
		cacheTTL: ttl,
	}
}

// parseFilter validates the shared report filter and converts it into
// pipeline criteria. A window with start after end is NOT rejected here:
// by contract it narrows to an empty dataset, which presentation reports
// as "no data for the selected filters".
func (s *GRPCHandlers) parseFilter(filter *pb.ReportFilter) (email string, criteria service.FilterCriteria, err error) {
	if filter == nil {
		err = status.Error(codes.InvalidArgument, "filter is required")
		return
	}
	if filter.Email == "" {
		err = status.Error(codes.InvalidArgument, "email is required")
		return
	}

	start, parseErr := time.ParseInLocation(dateLayout, filter.StartDate, time.UTC)
	if parseErr != nil {
		err = status.Errorf(codes.InvalidArgument, "start_date must be formatted %s", dateLayout)
		return
	}
	end, parseErr := time.ParseInLocation(dateLayout, filter.EndDate, time.UTC)
	if parseErr != nil {
		err = status.Errorf(codes.InvalidArgument, "end_date must be formatted %s", dateLayout)
		return
	}

	email = filter.Email
	criteria = service.FilterCriteria{
		Start:      start,
		End:        end,
		Indicators: filter.Indicators,
		Emails:     filter.Emails,
	}
	return
}

func facetKeyPart(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	sorted := make([]string, len(values))
	copy(sorted, values)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}

func normalizeKey(prefix CacheKeyType, email string, criteria service.FilterCriteria, extra ...string) string {
	parts := []string{
		string(prefix),
		strings.ToLower(strings.TrimSpace(email)),
		criteria.Start.Format(dateLayout),
		criteria.End.Format(dateLayout),
		facetKeyPart(criteria.Indicators),
		facetKeyPart(criteria.Emails),
	}
	parts = append(parts, extra...)
	return strings.Join(parts, ":")
}

func (s *GRPCHandlers) handleError(ctx context.Context, op string, err error) error {
	switch ctx.Err() {
	case context.Canceled:
		s.logger.Warn("request canceled", zap.String("op", op))
		return status.Error(codes.Canceled, "request canceled")
	case context.DeadlineExceeded:
		s.logger.Warn("request timeout", zap.String("op", op))
		return status.Error(codes.DeadlineExceeded, "request timed out")
	}

	switch {
	case errors.Is(err, service.ErrAccessDenied):
		s.logger.Info("access denied", zap.String("op", op))
		return status.Error(codes.PermissionDenied, "email not found, access denied")
	case errors.Is(err, service.ErrDataUnavailable):
		s.logger.Error("source data unavailable", zap.String("op", op), zap.Error(err))
		return status.Error(codes.Unavailable, "source data unavailable")
	case errors.Is(err, service.ErrNoUserData):
		s.logger.Info("no data for user", zap.String("op", op))
		return status.Error(codes.NotFound, "no data found for this user")
	case errors.Is(err, service.ErrNoFilteredData):
		s.logger.Info("no data for filters", zap.String("op", op))
		return status.Error(codes.NotFound, "no data found for the selected filters")
	case errors.Is(err, service.ErrUnknownFacet):
		return status.Error(codes.InvalidArgument, "facet must be indicator or email")
	case errors.Is(err, service.ErrStorageFailure):
		s.logger.Error("storage failure", zap.String("op", op), zap.Error(err))
		return status.Error(codes.Internal, "database error")
	default:
		s.logger.Error("unexpected error", zap.String("op", op), zap.Error(err))
		return status.Errorf(codes.Internal, "%s failed: %v", op, err)
	}
}

func (s *GRPCHandlers) Authenticate(ctx context.Context, req *pb.AuthenticateRequest) (*pb.AuthenticateResponse, error) {
	if req.GetEmail() == "" {
		return nil, status.Error(codes.InvalidArgument, "email is required")
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	identity, err := s.reports.Authenticate(ctx, req.Email)
	if err != nil {
		return nil, s.handleError(ctx, "Authenticate", err)
	}

	return &pb.AuthenticateResponse{
		Email: identity.Email,
		Role:  string(identity.Role),
	}, nil
}

func (s *GRPCHandlers) GetRatingSummary(ctx context.Context, req *pb.SummaryRequest) (*pb.SummaryResponse, error) {
	email, criteria, err := s.parseFilter(req.GetFilter())
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	identity, err := s.reports.Authenticate(ctx, email)
	if err != nil {
		return nil, s.handleError(ctx, "GetRatingSummary", err)
	}

	cacheKey := normalizeKey(cacheKeyRatingSummary, identity.Email, criteria)

	summary, err := FindAndCache(ctx, s.cache, &s.sfGroup, cacheKey, s.cacheTTL, s.logger, func(fetchCtx context.Context) (service.Summary, error) {
		return s.reports.GetSummary(fetchCtx, identity, criteria)
	})
	if err != nil {
		return nil, s.handleError(ctx, "GetRatingSummary", err)
	}

	return &pb.SummaryResponse{
		TotalUniqueSessions: int64(summary.TotalUniqueSessions),
		PositiveMean:        roundPtr(summary.PositiveMean),
		NegativeMean:        roundPtr(summary.NegativeMean),
		CombinedMean:        roundPtr(summary.CombinedMean),
	}, nil
}

func (s *GRPCHandlers) GetSessionRollup(ctx context.Context, req *pb.RollupRequest) (*pb.RollupResponse, error) {
	email, criteria, err := s.parseFilter(req.GetFilter())
	if err != nil {
		return nil, err
	}
	period, err := service.ParsePeriod(req.GetPeriod())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "period must be one of day, week, month, year")
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	identity, err := s.reports.Authenticate(ctx, email)
	if err != nil {
		return nil, s.handleError(ctx, "GetSessionRollup", err)
	}

	cacheKey := normalizeKey(cacheKeySessionRollup, identity.Email, criteria, string(period))

	buckets, err := FindAndCache(ctx, s.cache, &s.sfGroup, cacheKey, s.cacheTTL, s.logger, func(fetchCtx context.Context) ([]service.PeriodBucket, error) {
		return s.reports.GetPeriodRollup(fetchCtx, identity, criteria, period)
	})
	if err != nil {
		return nil, s.handleError(ctx, "GetSessionRollup", err)
	}

	return &pb.RollupResponse{Buckets: s.mapToProtoPeriodBuckets(buckets)}, nil
}

func (s *GRPCHandlers) GetIndicatorBreakdown(ctx context.Context, req *pb.BreakdownRequest) (*pb.BreakdownResponse, error) {
	email, criteria, err := s.parseFilter(req.GetFilter())
	if err != nil {
		return nil, err
	}
	period, err := service.ParsePeriod(req.GetPeriod())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "period must be one of day, week, month, year")
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	identity, err := s.reports.Authenticate(ctx, email)
	if err != nil {
		return nil, s.handleError(ctx, "GetIndicatorBreakdown", err)
	}

	cacheKey := normalizeKey(cacheKeyIndicatorBreakdown, identity.Email, criteria, string(period))

	buckets, err := FindAndCache(ctx, s.cache, &s.sfGroup, cacheKey, s.cacheTTL, s.logger, func(fetchCtx context.Context) ([]service.IndicatorBucket, error) {
		return s.reports.GetIndicatorBreakdown(fetchCtx, identity, criteria, period)
	})
	if err != nil {
		return nil, s.handleError(ctx, "GetIndicatorBreakdown", err)
	}

	return &pb.BreakdownResponse{Buckets: s.mapToProtoIndicatorBuckets(buckets)}, nil
}

func (s *GRPCHandlers) ListFacetValues(ctx context.Context, req *pb.FacetValuesRequest) (*pb.FacetValuesResponse, error) {
	if req.GetEmail() == "" {
		return nil, status.Error(codes.InvalidArgument, "email is required")
	}
	if req.GetFacet() == "" {
		return nil, status.Error(codes.InvalidArgument, "facet is required")
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	identity, err := s.reports.Authenticate(ctx, req.Email)
	if err != nil {
		return nil, s.handleError(ctx, "ListFacetValues", err)
	}

	cacheKey := fmt.Sprintf("%s:%s:%s", cacheKeyFacetValues, identity.Email, req.Facet)

	values, err := FindAndCache(ctx, s.cache, &s.sfGroup, cacheKey, s.cacheTTL, s.logger, func(fetchCtx context.Context) ([]string, error) {
		return s.reports.ListFacetValues(fetchCtx, identity, req.Facet)
	})
	if err != nil {
		return nil, s.handleError(ctx, "ListFacetValues", err)
	}

	return &pb.FacetValuesResponse{Values: values}, nil
}

func (s *GRPCHandlers) mapToProtoPeriodBuckets(buckets []service.PeriodBucket) []*pb.PeriodBucket {
	out := make([]*pb.PeriodBucket, len(buckets))
	for i, b := range buckets {
		out[i] = &pb.PeriodBucket{
			Period:         b.Period,
			UniqueSessions: int64(b.UniqueSessions),
			MeanRating:     roundPtr(b.MeanRating),
		}
	}
	return out
}

func (s *GRPCHandlers) mapToProtoIndicatorBuckets(buckets []service.IndicatorBucket) []*pb.IndicatorBucket {
	out := make([]*pb.IndicatorBucket, len(buckets))
	for i, b := range buckets {
		out[i] = &pb.IndicatorBucket{
			Period:         b.Period,
			Indicator:      b.Indicator,
			UniqueSessions: int64(b.UniqueSessions),
			PositiveMean:   roundPtr(b.PositiveMean),
			NegativeMean:   roundPtr(b.NegativeMean),
		}
	}
	return out
}

// roundPtr applies the two-decimal presentation rounding, preserving the
// no-data sentinel.
func roundPtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	rounded := service.Round2(*v)
	return &rounded
}
