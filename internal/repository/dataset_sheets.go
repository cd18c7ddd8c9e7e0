package repository

import (
	"context"
	"fmt"
	"strconv"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/naturecounter/insights-server/internal/repository/models"
)

// SheetsDatasetRepository loads observations from a Google Sheets worksheet
// using a service account credentials file.
type SheetsDatasetRepository struct {
	service       *sheets.Service
	spreadsheetID string
	worksheet     string
}

func NewSheetsDatasetRepository(ctx context.Context, credentialsFile, spreadsheetID, worksheet string) (*SheetsDatasetRepository, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet id is required")
	}
	if worksheet == "" {
		return nil, fmt.Errorf("worksheet name is required")
	}

	service, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create sheets client: %w", err)
	}

	return &SheetsDatasetRepository{
		service:       service,
		spreadsheetID: spreadsheetID,
		worksheet:     worksheet,
	}, nil
}

// Load fetches the whole worksheet. The first row is the header; fully
// blank rows are dropped.
func (r *SheetsDatasetRepository) Load(ctx context.Context) (models.Dataset, error) {
	resp, err := r.service.Spreadsheets.Values.Get(r.spreadsheetID, r.worksheet).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("fetch worksheet %q: %w", r.worksheet, err)
	}
	if len(resp.Values) == 0 {
		return models.Dataset{}, nil
	}

	header := stringCells(resp.Values[0])
	records := make([][]string, 0, len(resp.Values)-1)
	for _, row := range resp.Values[1:] {
		records = append(records, stringCells(row))
	}

	return recordsToDataset(header, records), nil
}

func stringCells(row []interface{}) []string {
	out := make([]string, len(row))
	for i, v := range row {
		switch c := v.(type) {
		case string:
			out[i] = c
		case float64:
			out[i] = strconv.FormatFloat(c, 'f', -1, 64)
		case bool:
			out[i] = strconv.FormatBool(c)
		case nil:
			out[i] = ""
		default:
			out[i] = fmt.Sprint(c)
		}
	}
	return out
}
