package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/rosN100/lohono-fizzy-search/internal/dates"
	"github.com/rosN100/lohono-fizzy-search/internal/storage"
)

// priceRegexp captures the numeric part of a price cell, tolerating
// currency symbols and thousands separators.
var priceRegexp = regexp.MustCompile(`-?[\d,]+(?:\.\d+)?`)

// CSVSource loads the availability table from a local CSV file.
type CSVSource struct {
	Path string
}

func (s *CSVSource) Load(ctx context.Context) (*Snapshot, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %q: %w", s.Path, err)
	}
	defer f.Close()

	log.Printf("[DATASET] Loading CSV from %s", s.Path)
	return ParseCSV(f)
}

// R2Source loads the same CSV format from an S3-compatible bucket.
type R2Source struct {
	Client *storage.R2Client
	Key    string
}

func (s *R2Source) Load(ctx context.Context) (*Snapshot, error) {
	body, err := s.Client.Download(ctx, s.Key)
	if err != nil {
		return nil, fmt.Errorf("dataset: download %q: %w", s.Key, err)
	}
	defer body.Close()

	log.Printf("[DATASET] Loading CSV object %s", s.Key)
	return ParseCSV(body)
}

// ParseCSV reads an availability table with at least the columns
// identifier, date, listing price and status (header names matched
// case-insensitively, spacing ignored). Malformed rows are dropped with a
// log line; the load only fails when no valid rows survive.
func ParseCSV(r io.Reader) (*Snapshot, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("dataset: read header: %w", err)
	}

	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var records []Record
	dropped := 0
	line := 1

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			dropped++
			log.Printf("[DATASET] Dropping unreadable row %d: %v", line, err)
			continue
		}

		rec, err := parseRow(row, cols)
		if err != nil {
			dropped++
			log.Printf("[DATASET] Dropping row %d: %v", line, err)
			continue
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("dataset: no valid rows (%d dropped)", dropped)
	}

	log.Printf("[DATASET] Parsed %d rows (dropped %d)", len(records), dropped)
	return NewSnapshot(records), nil
}

type columns struct {
	identifier int
	date       int
	price      int
	status     int
}

func mapColumns(header []string) (columns, error) {
	cols := columns{identifier: -1, date: -1, price: -1, status: -1}
	for i, name := range header {
		switch strings.ToLower(strings.Join(strings.Fields(name), " ")) {
		case "identifier", "property", "property name":
			cols.identifier = i
		case "date":
			cols.date = i
		case "listing price", "price":
			cols.price = i
		case "status":
			cols.status = i
		}
	}
	if cols.identifier < 0 || cols.date < 0 || cols.price < 0 || cols.status < 0 {
		return cols, fmt.Errorf("dataset: header missing required columns, got %v", header)
	}
	return cols, nil
}

func parseRow(row []string, cols columns) (Record, error) {
	max := cols.identifier
	for _, i := range []int{cols.date, cols.price, cols.status} {
		if i > max {
			max = i
		}
	}
	if len(row) <= max {
		return Record{}, fmt.Errorf("short row (%d fields)", len(row))
	}

	identifier := strings.TrimSpace(row[cols.identifier])
	if identifier == "" {
		return Record{}, fmt.Errorf("empty identifier")
	}

	date, err := dates.Normalize(row[cols.date])
	if err != nil {
		return Record{}, fmt.Errorf("bad date %q", row[cols.date])
	}

	price, err := parsePrice(row[cols.price])
	if err != nil {
		return Record{}, err
	}

	return Record{
		Identifier: identifier,
		Date:       date,
		Price:      price,
		Status:     strings.TrimSpace(row[cols.status]),
	}, nil
}

func parsePrice(raw string) (float64, error) {
	match := priceRegexp.FindString(strings.ReplaceAll(raw, ",", ""))
	if match == "" {
		return 0, fmt.Errorf("bad price %q", raw)
	}
	price, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, fmt.Errorf("bad price %q", raw)
	}
	if price < 0 {
		return 0, fmt.Errorf("negative price %q", raw)
	}
	return price, nil
}
