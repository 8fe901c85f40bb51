package dataset

import (
	"log"
	"sort"
	"strings"
	"time"

	"github.com/rosN100/lohono-fizzy-search/internal/dates"
)

// Record is one availability row: a property on a date at a price.
// Status is an externally defined label and is passed through untouched.
type Record struct {
	Identifier string
	Date       time.Time
	Price      float64
	Status     string
}

// Snapshot is the immutable in-memory view of the availability table.
// It is built once at startup and only ever read after that, so it is
// safe to share across concurrent requests without locking.
type Snapshot struct {
	byKey       map[string]Record
	identifiers []string
}

// NewSnapshot indexes records by (identifier, date). The first row for a
// key wins; later duplicates are dropped, since the loader contract only
// promises a duplicate-tolerant table.
func NewSnapshot(records []Record) *Snapshot {
	byKey := make(map[string]Record, len(records))
	seen := make(map[string]struct{})
	var ids []string
	dropped := 0

	for _, r := range records {
		k := key(r.Identifier, r.Date)
		if _, dup := byKey[k]; dup {
			dropped++
			continue
		}
		byKey[k] = r

		if _, ok := seen[r.Identifier]; !ok {
			seen[r.Identifier] = struct{}{}
			ids = append(ids, r.Identifier)
		}
	}
	sort.Strings(ids)

	if dropped > 0 {
		log.Printf("[DATASET] Dropped %d duplicate (identifier, date) rows", dropped)
	}

	return &Snapshot{byKey: byKey, identifiers: ids}
}

// Lookup returns the record for a property on a date, if one exists.
func (s *Snapshot) Lookup(identifier string, date time.Time) (Record, bool) {
	r, ok := s.byKey[key(identifier, date)]
	return r, ok
}

// Identifiers returns the distinct property identifiers in lexicographic
// order. The slice is a copy; callers may not mutate the snapshot.
func (s *Snapshot) Identifiers() []string {
	out := make([]string, len(s.identifiers))
	copy(out, s.identifiers)
	return out
}

// Len reports the number of indexed rows.
func (s *Snapshot) Len() int {
	return len(s.byKey)
}

// Families returns up to limit distinct leading name tokens, in
// lexicographic order. Used to suggest known property groups when a
// search comes back empty.
func (s *Snapshot) Families(limit int) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, id := range s.identifiers {
		fields := strings.Fields(id)
		if len(fields) == 0 {
			continue
		}
		f := fields[0]
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
		if len(out) == limit {
			break
		}
	}
	return out
}

func key(identifier string, date time.Time) string {
	return identifier + "|" + date.Format(dates.Layout)
}
