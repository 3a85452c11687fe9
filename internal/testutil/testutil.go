// Package testutil provides test utilities and helpers.
package testutil

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"genderdecoder/internal/coder"
	"genderdecoder/internal/db"
	"genderdecoder/internal/models"
)

// Coder returns a Coder built from the built-in word lists.
func Coder(t *testing.T) *coder.Coder {
	t.Helper()
	c, err := coder.Default()
	if err != nil {
		t.Fatalf("failed to build coder: %v", err)
	}
	return c
}

// TestDB creates a test database connection and returns a cleanup function.
// The test is skipped unless TEST_DATABASE_URL is set.
func TestDB(t *testing.T) (*db.DB, func()) {
	t.Helper()

	connString := os.Getenv("TEST_DATABASE_URL")
	if connString == "" {
		t.Skip("Skipping integration test: TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	database, err := db.New(ctx, connString)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// Run migrations
	if err := database.RunMigrations(connString); err != nil {
		database.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}
	cleanupTestData(ctx, database.Pool)

	cleanup := func() {
		cleanupTestData(ctx, database.Pool)
		database.Close()
	}

	return database, cleanup
}

// cleanupTestData removes all test data from the database.
func cleanupTestData(ctx context.Context, pool *pgxpool.Pool) {
	pool.Exec(ctx, "DELETE FROM job_ads")
}

// CreateTestJobAd stores an analysis of text recorded under the given
// lexicon version and returns it.
func CreateTestJobAd(t *testing.T, database *db.DB, c *coder.Coder, text, version string) *models.JobAd {
	t.Helper()

	ad := models.NewJobAd(c.Analyse(text), version)
	if err := database.CreateJobAd(context.Background(), ad); err != nil {
		t.Fatalf("failed to create test job ad: %v", err)
	}

	return ad
}
