package service

import (
	"context"

	"github.com/naturecounter/insights-server/internal/repository/models"
)

// DatasetRepository produces the raw observation dataset from a source
// spreadsheet (local file or remote worksheet). The source's own
// timeout/retry policy lives behind this boundary; the pipeline does not
// retry.
type DatasetRepository interface {
	Load(ctx context.Context) (models.Dataset, error)
}

// PermissionRepository resolves dashboard access entries.
type PermissionRepository interface {
	FindByEmail(ctx context.Context, email string) (models.Permission, bool, error)
}
