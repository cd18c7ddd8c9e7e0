package service

import (
	"context"
	"errors"
	"testing"

	"github.com/naturecounter/insights-server/internal/repository/models"
	"github.com/naturecounter/insights-server/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func fixtureDataset() models.Dataset {
	return models.Dataset{
		row(tsAt("2025-03-01 09:00"), "ana@example.org", "A", "Joy", ratingOf(3)),
		row(tsAt("2025-03-01 10:00"), "ana@example.org", "B", "Calm", ratingOf(-2)),
		row(tsAt("2025-03-02 11:00"), "ana@example.org", "C", "Joy", ratingOf(5)),
		row(tsAt("2025-03-02 12:00"), "ben@example.org", "D", "Joy", ratingOf(1)),
	}
}

func fixtureRepos(dataset models.Dataset) (*mocks.MockDatasetRepository, *mocks.MockPermissionRepository) {
	datasets := &mocks.MockDatasetRepository{
		LoadFunc: func(ctx context.Context) (models.Dataset, error) {
			return dataset, nil
		},
	}
	permissions := &mocks.MockPermissionRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (models.Permission, bool, error) {
			switch email {
			case "root@example.org":
				return models.Permission{Email: email, Role: "admin"}, true, nil
			case "ana@example.org":
				return models.Permission{Email: email, Role: "user"}, true, nil
			default:
				return models.Permission{}, false, nil
			}
		},
	}
	return datasets, permissions
}

func marchWindow() FilterCriteria {
	return FilterCriteria{Start: *tsAt("2025-03-01 00:00"), End: *tsAt("2025-03-31 23:59")}
}

func TestNewReportService(t *testing.T) {
	datasets, permissions := fixtureRepos(nil)

	t.Run("valid parameters", func(t *testing.T) {
		svc := NewReportService(datasets, permissions, zap.NewNop())

		assert.NotNil(t, svc)
	})

	t.Run("nil dataset repository panics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewReportService(nil, permissions, zap.NewNop())
		})
	})

	t.Run("nil permission repository panics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewReportService(datasets, nil, zap.NewNop())
		})
	})

	t.Run("nil logger gets default", func(t *testing.T) {
		svc := NewReportService(datasets, permissions, nil)

		assert.NotNil(t, svc.logger)
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	datasets, permissions := fixtureRepos(fixtureDataset())
	svc := NewReportService(datasets, permissions, zap.NewNop())

	t.Run("normalizes email before lookup", func(t *testing.T) {
		identity, err := svc.Authenticate(ctx, "  Ana@Example.ORG ")

		require.NoError(t, err)
		assert.Equal(t, "ana@example.org", identity.Email)
		assert.Equal(t, RoleUser, identity.Role)
	})

	t.Run("admin role from the permission list", func(t *testing.T) {
		identity, err := svc.Authenticate(ctx, "root@example.org")

		require.NoError(t, err)
		assert.Equal(t, RoleAdmin, identity.Role)
	})

	t.Run("unknown email denied", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "stranger@example.org")

		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("empty email denied without lookup", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "   ")

		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("storage error surfaces as storage failure", func(t *testing.T) {
		broken := &mocks.MockPermissionRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (models.Permission, bool, error) {
				return models.Permission{}, false, errors.New("disk on fire")
			},
		}
		svc := NewReportService(datasets, broken, zap.NewNop())

		_, err := svc.Authenticate(ctx, "ana@example.org")

		assert.ErrorIs(t, err, ErrStorageFailure)
	})
}

func TestGetSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("admin summary over the full dataset", func(t *testing.T) {
		datasets, permissions := fixtureRepos(fixtureDataset())
		svc := NewReportService(datasets, permissions, zap.NewNop())

		summary, err := svc.GetSummary(ctx, Identity{Email: "root@example.org", Role: RoleAdmin}, marchWindow())

		require.NoError(t, err)
		assert.Equal(t, 4, summary.TotalUniqueSessions)
		require.NotNil(t, summary.PositiveMean)
		assert.InDelta(t, 3.0, *summary.PositiveMean, 1e-9)
		require.NotNil(t, summary.NegativeMean)
		assert.InDelta(t, -2.0, *summary.NegativeMean, 1e-9)
		require.NotNil(t, summary.CombinedMean)
		assert.InDelta(t, 1.75, *summary.CombinedMean, 1e-9)
	})

	t.Run("user summary restricted to own rows", func(t *testing.T) {
		datasets, permissions := fixtureRepos(fixtureDataset())
		svc := NewReportService(datasets, permissions, zap.NewNop())

		summary, err := svc.GetSummary(ctx, Identity{Email: "ana@example.org", Role: RoleUser}, marchWindow())

		require.NoError(t, err)
		assert.Equal(t, 3, summary.TotalUniqueSessions)
	})

	t.Run("means stay unrounded in the service layer", func(t *testing.T) {
		dataset := models.Dataset{
			row(tsAt("2025-03-01 09:00"), "ana@example.org", "A", "Joy", ratingOf(1)),
			row(tsAt("2025-03-01 10:00"), "ana@example.org", "B", "Joy", ratingOf(1)),
			row(tsAt("2025-03-01 11:00"), "ana@example.org", "C", "Joy", ratingOf(3)),
		}
		datasets, permissions := fixtureRepos(dataset)
		svc := NewReportService(datasets, permissions, zap.NewNop())

		summary, err := svc.GetSummary(ctx, Identity{Email: "root@example.org", Role: RoleAdmin}, marchWindow())

		require.NoError(t, err)
		require.NotNil(t, summary.CombinedMean)
		assert.InDelta(t, 5.0/3.0, *summary.CombinedMean, 1e-12)
	})

	t.Run("load failure reported as unavailable", func(t *testing.T) {
		datasets := &mocks.MockDatasetRepository{
			LoadFunc: func(ctx context.Context) (models.Dataset, error) {
				return nil, errors.New("sheet api down")
			},
		}
		_, permissions := fixtureRepos(nil)
		svc := NewReportService(datasets, permissions, zap.NewNop())

		_, err := svc.GetSummary(ctx, Identity{Email: "root@example.org", Role: RoleAdmin}, marchWindow())

		assert.ErrorIs(t, err, ErrDataUnavailable)
	})

	t.Run("empty source reported as unavailable", func(t *testing.T) {
		datasets, permissions := fixtureRepos(models.Dataset{})
		svc := NewReportService(datasets, permissions, zap.NewNop())

		_, err := svc.GetSummary(ctx, Identity{Email: "root@example.org", Role: RoleAdmin}, marchWindow())

		assert.ErrorIs(t, err, ErrDataUnavailable)
	})

	t.Run("user with no rows gets the user-specific error", func(t *testing.T) {
		datasets, permissions := fixtureRepos(fixtureDataset())
		svc := NewReportService(datasets, permissions, zap.NewNop())

		_, err := svc.GetSummary(ctx, Identity{Email: "carl@example.org", Role: RoleUser}, marchWindow())

		assert.ErrorIs(t, err, ErrNoUserData)
	})

	t.Run("window outside the data gets the filter-specific error", func(t *testing.T) {
		datasets, permissions := fixtureRepos(fixtureDataset())
		svc := NewReportService(datasets, permissions, zap.NewNop())

		criteria := FilterCriteria{Start: *tsAt("2030-01-01 00:00"), End: *tsAt("2030-12-31 00:00")}
		_, err := svc.GetSummary(ctx, Identity{Email: "root@example.org", Role: RoleAdmin}, criteria)

		assert.ErrorIs(t, err, ErrNoFilteredData)
	})
}

func TestGetPeriodRollup(t *testing.T) {
	ctx := context.Background()
	datasets, permissions := fixtureRepos(fixtureDataset())
	svc := NewReportService(datasets, permissions, zap.NewNop())

	buckets, err := svc.GetPeriodRollup(ctx, Identity{Email: "root@example.org", Role: RoleAdmin}, marchWindow(), PeriodDay)

	require.NoError(t, err)
	require.Len(t, buckets, 2)
	assert.Equal(t, "2025-03-01", buckets[0].Period)
	assert.Equal(t, "2025-03-02", buckets[1].Period)
	assert.Equal(t, 2, buckets[0].UniqueSessions)
	assert.Equal(t, 2, buckets[1].UniqueSessions)
}

func TestGetIndicatorBreakdown(t *testing.T) {
	ctx := context.Background()
	datasets, permissions := fixtureRepos(fixtureDataset())
	svc := NewReportService(datasets, permissions, zap.NewNop())

	buckets, err := svc.GetIndicatorBreakdown(ctx, Identity{Email: "root@example.org", Role: RoleAdmin}, marchWindow(), PeriodDay)

	require.NoError(t, err)
	require.Len(t, buckets, 3)
	assert.Equal(t, "2025-03-01", buckets[0].Period)
	assert.Equal(t, "Calm", buckets[0].Indicator)
	assert.Equal(t, "2025-03-01", buckets[1].Period)
	assert.Equal(t, "Joy", buckets[1].Indicator)
	assert.Equal(t, "2025-03-02", buckets[2].Period)
	assert.Equal(t, "Joy", buckets[2].Indicator)
}

func TestListFacetValues(t *testing.T) {
	ctx := context.Background()
	datasets, permissions := fixtureRepos(fixtureDataset())
	svc := NewReportService(datasets, permissions, zap.NewNop())

	t.Run("distinct sorted indicators", func(t *testing.T) {
		values, err := svc.ListFacetValues(ctx, Identity{Email: "root@example.org", Role: RoleAdmin}, FacetIndicator)

		require.NoError(t, err)
		assert.Equal(t, []string{"Calm", "Joy"}, values)
	})

	t.Run("email facet reflects the visible dataset only", func(t *testing.T) {
		values, err := svc.ListFacetValues(ctx, Identity{Email: "ana@example.org", Role: RoleUser}, FacetEmail)

		require.NoError(t, err)
		assert.Equal(t, []string{"ana@example.org"}, values)
	})

	t.Run("unknown facet rejected", func(t *testing.T) {
		_, err := svc.ListFacetValues(ctx, Identity{Email: "root@example.org", Role: RoleAdmin}, "color")

		assert.ErrorIs(t, err, ErrUnknownFacet)
	})
}
