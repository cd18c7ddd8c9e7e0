package mocks

import (
	"context"
	"errors"

	"github.com/naturecounter/insights-server/internal/repository/models"
)

// MockDatasetRepository is a mock implementation of the DatasetRepository
// interface for testing the service layer.
type MockDatasetRepository struct {
	LoadFunc func(ctx context.Context) (models.Dataset, error)
}

// Load implements the DatasetRepository interface
func (m *MockDatasetRepository) Load(ctx context.Context) (models.Dataset, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	return nil, errors.New("LoadFunc not implemented")
}

// MockPermissionRepository is a mock implementation of the PermissionRepository
// interface for testing the service layer.
type MockPermissionRepository struct {
	FindByEmailFunc func(ctx context.Context, email string) (models.Permission, bool, error)
}

// FindByEmail implements the PermissionRepository interface
func (m *MockPermissionRepository) FindByEmail(ctx context.Context, email string) (models.Permission, bool, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return models.Permission{}, false, errors.New("FindByEmailFunc not implemented")
}
