package search

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rosN100/lohono-fizzy-search/internal/dataset"
	"github.com/rosN100/lohono-fizzy-search/internal/dates"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// fixtureSnapshot holds five Aurelia villas and Villa Siena with rows on
// 2025-10-01, and Monforte Retreat with a row only on 2025-10-02.
func fixtureSnapshot() *dataset.Snapshot {
	oct1 := day(2025, time.October, 1)
	oct2 := day(2025, time.October, 2)

	return dataset.NewSnapshot([]dataset.Record{
		{Identifier: "Aurelia Villa C", Date: oct1, Price: 20000, Status: "available"},
		{Identifier: "Aurelia Villa D", Date: oct1, Price: 22000, Status: "unavailable"},
		{Identifier: "Aurelia Villa E", Date: oct1, Price: 24000, Status: "available"},
		{Identifier: "Aurelia Villa F", Date: oct1, Price: 26000, Status: "available"},
		{Identifier: "Aurelia Villa G", Date: oct1, Price: 28000, Status: "available"},
		{Identifier: "Villa Siena", Date: oct1, Price: 31000, Status: "available"},
		{Identifier: "Monforte Retreat", Date: oct2, Price: 18000, Status: "available"},
	})
}

func newTestService() *Service {
	return NewService(fixtureSnapshot(), NewMatcher(DefaultThreshold))
}

func TestSearchAureliaScenario(t *testing.T) {
	svc := newTestService()

	res, err := svc.Search("Aurelia", "2025-10-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !res.Found {
		t.Error("expected found=true")
	}
	if res.TotalFound != 5 {
		t.Errorf("total_found = %d; want 5", res.TotalFound)
	}
	if res.AvailableCount != 5 {
		t.Errorf("available_count = %d; want 5", res.AvailableCount)
	}
	if res.CheckDate == nil || *res.CheckDate != "2025-10-01" {
		t.Errorf("check_date = %v; want 2025-10-01", res.CheckDate)
	}
	if res.PriceRange == nil {
		t.Fatal("expected price_range to be populated")
	}
	if res.PriceRange.Min != 20000 || res.PriceRange.Max != 28000 {
		t.Errorf("price_range = %+v; want min 20000 max 28000", res.PriceRange)
	}
	if len(res.Properties) != 5 {
		t.Fatalf("properties length = %d; want 5", len(res.Properties))
	}
	for _, p := range res.Properties {
		if p.Price == nil {
			t.Errorf("property %q has nil price", p.Name)
		}
	}
}

// The typo query must produce the same property set as the correct
// spelling.
func TestSearchTypoMatchesSameSet(t *testing.T) {
	svc := newTestService()

	correct, err := svc.Search("Aurelia", "2025-10-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	typo, err := svc.Search("Aurilia", "2025-10-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if typo.TotalFound != correct.TotalFound {
		t.Errorf("total_found = %d; want %d", typo.TotalFound, correct.TotalFound)
	}
	for i, p := range typo.Properties {
		if p.Name != correct.Properties[i].Name {
			t.Errorf("property %d = %q; want %q", i, p.Name, correct.Properties[i].Name)
		}
	}
}

func TestSearchNoMatch(t *testing.T) {
	svc := newTestService()

	res, err := svc.Search("NonExistentVilla", "2025-10-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Found {
		t.Error("expected found=false")
	}
	if res.TotalFound != 0 || res.AvailableCount != 0 {
		t.Errorf("counts = %d/%d; want 0/0", res.TotalFound, res.AvailableCount)
	}
	if len(res.Properties) != 0 {
		t.Errorf("properties = %v; want empty", res.Properties)
	}
	if res.PriceRange != nil {
		t.Errorf("price_range = %+v; want nil", res.PriceRange)
	}
	// The summary suggests known property families from the snapshot.
	if !strings.Contains(res.Summary, "Aurelia") {
		t.Errorf("summary %q does not suggest known families", res.Summary)
	}
}

// A name match with no row on the requested date counts toward
// total_found but not available_count.
func TestSearchNoAvailabilityForDate(t *testing.T) {
	svc := newTestService()

	res, err := svc.Search("Monforte", "2025-10-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !res.Found {
		t.Error("expected found=true: the name matched even without data")
	}
	if res.TotalFound != 1 {
		t.Errorf("total_found = %d; want 1", res.TotalFound)
	}
	if res.AvailableCount != 0 {
		t.Errorf("available_count = %d; want 0", res.AvailableCount)
	}
	if res.PriceRange != nil {
		t.Errorf("price_range = %+v; want nil", res.PriceRange)
	}
	if len(res.Properties) != 1 {
		t.Fatalf("properties length = %d; want 1", len(res.Properties))
	}
	p := res.Properties[0]
	if p.Status != StatusNoData || p.Price != nil {
		t.Errorf("property = %+v; want status %q with nil price", p, StatusNoData)
	}
}

func TestSearchCountInvariants(t *testing.T) {
	svc := newTestService()

	for _, term := range []string{"Aurelia", "Villa", "Monforte", "Siena Villa", "NonExistentVilla"} {
		res, err := svc.Search(term, "2025-10-01")
		if err != nil {
			t.Fatalf("Search(%q) error: %v", term, err)
		}

		if res.TotalFound < res.AvailableCount {
			t.Errorf("term %q: total_found %d < available_count %d",
				term, res.TotalFound, res.AvailableCount)
		}
		if res.Found != (res.TotalFound > 0) {
			t.Errorf("term %q: found=%v inconsistent with total_found=%d",
				term, res.Found, res.TotalFound)
		}

		if res.PriceRange != nil {
			if res.PriceRange.Min > res.PriceRange.Max {
				t.Errorf("term %q: price range min %v > max %v",
					term, res.PriceRange.Min, res.PriceRange.Max)
			}
			prices := make(map[float64]struct{})
			for _, p := range res.Properties {
				if p.Price != nil {
					prices[*p.Price] = struct{}{}
				}
			}
			if _, ok := prices[res.PriceRange.Min]; !ok {
				t.Errorf("term %q: min %v not drawn from properties", term, res.PriceRange.Min)
			}
			if _, ok := prices[res.PriceRange.Max]; !ok {
				t.Errorf("term %q: max %v not drawn from properties", term, res.PriceRange.Max)
			}
		}
	}
}

// Identical inputs must produce bit-identical results.
func TestSearchDeterministic(t *testing.T) {
	svc := newTestService()

	first, err := svc.Search("Aurelia", "2025-10-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Search("Aurelia", "2025-10-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if !bytes.Equal(a, b) {
		t.Errorf("repeated search disagreed:\n%s\n%s", a, b)
	}
}

// Different date phrasings of the same day give the same result.
func TestSearchDatePhrasingsAgree(t *testing.T) {
	svc := newTestService()

	iso, err := svc.Search("Aurelia", "2025-10-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	spoken, err := svc.Search("Aurelia", "1st Oct 2025")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a, _ := json.Marshal(iso)
	b, _ := json.Marshal(spoken)
	if !bytes.Equal(a, b) {
		t.Errorf("date phrasings disagreed:\n%s\n%s", a, b)
	}
}

func TestSearchInvalidDate(t *testing.T) {
	svc := newTestService()

	_, err := svc.Search("Aurelia", "invalid-date")
	if err == nil {
		t.Fatal("expected error for invalid date")
	}

	var invalid *dates.InvalidDateError
	if !errors.As(err, &invalid) {
		t.Fatalf("error type = %T; want *dates.InvalidDateError", err)
	}
	if invalid.Input != "invalid-date" {
		t.Errorf("error input = %q; want the raw string", invalid.Input)
	}
}

func TestInvalidDateResultShape(t *testing.T) {
	res := InvalidDateResult("Aurelia", "gibberish")

	if res.Found {
		t.Error("expected found=false")
	}
	if res.CheckDate != nil {
		t.Errorf("check_date = %v; want nil", res.CheckDate)
	}
	if !strings.Contains(res.Summary, "gibberish") || !strings.Contains(res.Summary, "2025-09-09") {
		t.Errorf("summary %q should name the bad input and an accepted format", res.Summary)
	}

	// The summary is the parser's own message, not a second copy of it.
	want := (&dates.InvalidDateError{Input: "gibberish"}).Error()
	if res.Summary != want {
		t.Errorf("summary = %q; want the parser message %q", res.Summary, want)
	}
}
