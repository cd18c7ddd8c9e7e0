package repository_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naturecounter/insights-server/internal/repository"
)

func writeTestCSV(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "observations.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCSVDatasetRepositoryLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("parses a well-formed export", func(t *testing.T) {
		path := writeTestCSV(t, `Timestamp,User email,Session id,Indicator,Rating
2025-03-01 09:15:00,ana@example.org,s1,Joy,3
2025-03-02 10:00:00,ben@example.org,s2,Calm,-2
`)

		dataset, err := repository.NewCSVDatasetRepository(path).Load(ctx)

		require.NoError(t, err)
		require.Len(t, dataset, 2)
		require.NotNil(t, dataset[0].Timestamp)
		assert.Equal(t, "ana@example.org", dataset[0].UserEmail)
		assert.Equal(t, "s1", dataset[0].SessionID)
		assert.Equal(t, "Joy", dataset[0].Indicator)
		require.NotNil(t, dataset[0].Rating)
		assert.Equal(t, 3.0, *dataset[0].Rating)
	})

	t.Run("drops fully blank records", func(t *testing.T) {
		path := writeTestCSV(t, `Timestamp,User email,Session id,Indicator,Rating
2025-03-01 09:15:00,ana@example.org,s1,Joy,3
,,,,
2025-03-02 10:00:00,ben@example.org,s2,Calm,4
`)

		dataset, err := repository.NewCSVDatasetRepository(path).Load(ctx)

		require.NoError(t, err)
		assert.Len(t, dataset, 2)
	})

	t.Run("bad cells become missing values, not errors", func(t *testing.T) {
		path := writeTestCSV(t, `Timestamp,User email,Session id,Indicator,Rating
not-a-date,ana@example.org,s1,Joy,high
2025-03-01 09:15:00,ana@example.org,s2,Calm,
`)

		dataset, err := repository.NewCSVDatasetRepository(path).Load(ctx)

		require.NoError(t, err)
		require.Len(t, dataset, 2)
		assert.Nil(t, dataset[0].Timestamp)
		assert.Nil(t, dataset[0].Rating)
		assert.NotNil(t, dataset[1].Timestamp)
		assert.Nil(t, dataset[1].Rating)
	})

	t.Run("legacy session column name", func(t *testing.T) {
		path := writeTestCSV(t, `Timestamp,User email,sess6digit,Indicator,Rating
2025-03-01 09:15:00,ana@example.org,123456,Joy,2
`)

		dataset, err := repository.NewCSVDatasetRepository(path).Load(ctx)

		require.NoError(t, err)
		require.Len(t, dataset, 1)
		assert.Equal(t, "123456", dataset[0].SessionID)
	})

	t.Run("ragged rows are tolerated", func(t *testing.T) {
		path := writeTestCSV(t, `Timestamp,User email,Session id,Indicator,Rating
2025-03-01 09:15:00,ana@example.org,s1
2025-03-02 10:00:00,ben@example.org,s2,Calm,4
`)

		dataset, err := repository.NewCSVDatasetRepository(path).Load(ctx)

		require.NoError(t, err)
		require.Len(t, dataset, 2)
		assert.Empty(t, dataset[0].Indicator)
		assert.Nil(t, dataset[0].Rating)
	})

	t.Run("missing file reported as an error", func(t *testing.T) {
		_, err := repository.NewCSVDatasetRepository("/nonexistent/observations.csv").Load(ctx)

		assert.Error(t, err)
	})

	t.Run("empty file yields an empty dataset", func(t *testing.T) {
		path := writeTestCSV(t, "")

		dataset, err := repository.NewCSVDatasetRepository(path).Load(ctx)

		require.NoError(t, err)
		assert.Empty(t, dataset)
	})
}
