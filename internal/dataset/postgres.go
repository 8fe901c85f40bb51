package dataset

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSource loads the availability table from the
// property_availability table.
type PostgresSource struct {
	Pool *pgxpool.Pool
}

func (s *PostgresSource) Load(ctx context.Context) (*Snapshot, error) {
	rows, err := s.Pool.Query(ctx, `
		SELECT identifier, date, price, status
		FROM property_availability
		ORDER BY identifier, date
	`)
	if err != nil {
		return nil, fmt.Errorf("dataset: query availability: %w", err)
	}
	defer rows.Close()

	var records []Record
	dropped := 0

	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.Identifier, &r.Date, &r.Price, &r.Status); err != nil {
			dropped++
			log.Printf("[DATASET] Dropping unscannable row: %v", err)
			continue
		}
		if r.Identifier == "" || r.Price < 0 {
			dropped++
			continue
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("dataset: iterate availability: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("dataset: no valid rows (%d dropped)", dropped)
	}

	log.Printf("[DATASET] Loaded %d rows from Postgres (dropped %d)", len(records), dropped)
	return NewSnapshot(records), nil
}
