package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates the availability table if it does not exist. The
// table is read-only for this service; rows are loaded out of band.
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	availabilitySQL := `
		CREATE TABLE IF NOT EXISTS property_availability (
			id SERIAL PRIMARY KEY,
			identifier VARCHAR(255) NOT NULL,
			date DATE NOT NULL,
			price NUMERIC(12,2) NOT NULL CHECK (price >= 0),
			status VARCHAR(50) NOT NULL,
			UNIQUE (identifier, date)
		)
	`
	if _, err := db.Exec(ctx, availabilitySQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
