package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/naturecounter/insights-server/internal/repository/models"
)

// CSVDatasetRepository loads observations from a local spreadsheet export.
type CSVDatasetRepository struct {
	path string
}

func NewCSVDatasetRepository(path string) *CSVDatasetRepository {
	return &CSVDatasetRepository{path: path}
}

// Load reads the whole file into a Dataset. The first record is the header;
// fully blank records are dropped.
func (r *CSVDatasetRepository) Load(ctx context.Context) (models.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open dataset file %q: %w", r.path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse dataset file %q: %w", r.path, err)
	}
	if len(records) == 0 {
		return models.Dataset{}, nil
	}

	return recordsToDataset(records[0], records[1:]), nil
}
