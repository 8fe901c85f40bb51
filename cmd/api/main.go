package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/rosN100/lohono-fizzy-search/internal/config"
	"github.com/rosN100/lohono-fizzy-search/internal/dataset"
	"github.com/rosN100/lohono-fizzy-search/internal/db"
	"github.com/rosN100/lohono-fizzy-search/internal/router"
	"github.com/rosN100/lohono-fizzy-search/internal/search"
	"github.com/rosN100/lohono-fizzy-search/internal/storage"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	sourceKind := config.Get("DATASET_SOURCE", "csv")

	var required []string
	switch sourceKind {
	case "csv":
		// DATASET_CSV_PATH has a default, nothing is required.
	case "postgres":
		required = []string{"DATABASE_URL"}
	case "r2":
		required = []string{
			"R2_ENDPOINT",
			"R2_ACCESS_KEY",
			"R2_SECRET_KEY",
			"R2_BUCKET_NAME",
			"DATASET_OBJECT_KEY",
		}
	default:
		log.Fatalf("❌ Unknown DATASET_SOURCE: %s", sourceKind)
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DATASET ─────────────────────────
	ctx := context.Background()

	var source dataset.Source
	switch sourceKind {
	case "csv":
		source = &dataset.CSVSource{
			Path: config.Get("DATASET_CSV_PATH", "data/availability.csv"),
		}
	case "postgres":
		pool := db.ConnectPostgres()
		defer pool.Close()
		source = &dataset.PostgresSource{Pool: pool}
	case "r2":
		r2, err := storage.NewR2Client(ctx)
		if err != nil {
			log.Fatal("❌ R2 init failed:", err)
		}
		source = &dataset.R2Source{
			Client: r2,
			Key:    os.Getenv("DATASET_OBJECT_KEY"),
		}
	}

	snapshot, err := source.Load(ctx)
	if err != nil {
		log.Fatal("❌ Dataset load failed:", err)
	}
	log.Printf("[DATASET] Snapshot ready: %d rows, %d distinct properties",
		snapshot.Len(), len(snapshot.Identifiers()))

	// ───────────────────────── SERVICES ─────────────────────────
	matcher := search.NewMatcher(config.GetInt("MATCH_THRESHOLD", search.DefaultThreshold))
	searchService := search.NewService(snapshot, matcher)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.New(searchService)

	port := config.Get("PORT", "8080")
	log.Printf("Server running on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
