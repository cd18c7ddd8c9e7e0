// Command permissions-import loads the access list from a CSV file into the
// permission store. Expected columns: email, role. Re-running replaces the
// role of existing entries. Cached reports are flushed afterwards so a
// revoked user cannot keep reading cached responses.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"
	"github.com/naturecounter/insights-server/internal/config"
	"github.com/naturecounter/insights-server/internal/repository"
	"github.com/naturecounter/insights-server/internal/repository/models"
	"github.com/naturecounter/insights-server/pkg/cache"
	dbbuilder "github.com/naturecounter/insights-server/pkg/database"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load(".env")

	filePath := flag.String("file", "./data/permissions.csv", "path to the permissions CSV")
	skipFlush := flag.Bool("skip-cache-flush", false, "do not flush cached reports after importing")
	flag.Parse()

	cfg := config.LoadFromEnv()

	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	entries, err := readPermissionsCSV(*filePath)
	if err != nil {
		logger.Fatal("Failed to read permissions file", zap.String("file", *filePath), zap.Error(err))
	}
	if len(entries) == 0 {
		logger.Fatal("Permissions file contains no entries", zap.String("file", *filePath))
	}

	dbPool, err := dbbuilder.New(
		dbbuilder.WithDriver(cfg.DBDriver),
		dbbuilder.WithDataSource(cfg.DBPath),
	)
	if err != nil {
		logger.Fatal("Database init failed", zap.Error(err))
	}
	defer dbPool.Close()

	repo := repository.NewPermissionRepository(dbPool)
	if err := repo.EnsureSchema(ctx); err != nil {
		logger.Fatal("Schema init failed", zap.Error(err))
	}

	for _, p := range entries {
		if err := repo.Upsert(ctx, p); err != nil {
			logger.Fatal("Upsert failed", zap.String("email", p.Email), zap.Error(err))
		}
	}
	logger.Info("Permissions imported", zap.Int("count", len(entries)), zap.String("db", cfg.DBPath))

	if *skipFlush {
		return
	}

	cacheClient, err := cache.New(ctx, cache.WithAddress(cfg.RedisAddr))
	if err != nil {
		logger.Warn("Cache unavailable, skipping report flush", zap.Error(err))
		return
	}
	defer cacheClient.Close()

	if err := cacheClient.DeleteByPrefix(ctx, "grpc:"); err != nil {
		logger.Warn("Cache flush failed", zap.Error(err))
		return
	}
	logger.Info("Cached reports flushed")
}

// readPermissionsCSV parses the access list. A header row with an email
// column is detected and skipped; emails are normalized the same way login
// normalizes them. Blank roles default to user.
func readPermissionsCSV(path string) ([]models.Permission, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	var entries []models.Permission
	for i, record := range records {
		if len(record) == 0 {
			continue
		}

		email := strings.ToLower(strings.TrimSpace(record[0]))
		if email == "" {
			continue
		}
		if i == 0 && email == "email" {
			continue
		}

		role := ""
		if len(record) > 1 {
			role = strings.ToLower(strings.TrimSpace(record[1]))
		}
		if role == "" {
			role = "user"
		}

		entries = append(entries, models.Permission{Email: email, Role: role})
	}

	return entries, nil
}
