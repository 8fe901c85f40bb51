package search

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/rosN100/lohono-fizzy-search/internal/dataset"
	"github.com/rosN100/lohono-fizzy-search/internal/dates"
)

// Service runs the search pipeline: normalize the date, fuzzy-match the
// term, aggregate per-date availability. Each call builds its result on
// local state only; the snapshot is shared read-only.
type Service struct {
	snap    *dataset.Snapshot
	matcher *Matcher
}

func NewService(snap *dataset.Snapshot, matcher *Matcher) *Service {
	return &Service{
		snap:    snap,
		matcher: matcher,
	}
}

// Search resolves a property-name phrase and a free-form date string
// into a Result. The only failure mode is an unparseable date
// (*dates.InvalidDateError); an empty match set is a normal outcome.
func (s *Service) Search(term, rawDate string) (*Result, error) {
	date, err := dates.Normalize(rawDate)
	if err != nil {
		return nil, err
	}

	candidates := s.matcher.Match(term, s.snap.Identifiers())
	return s.aggregate(term, date, candidates), nil
}

func (s *Service) aggregate(term string, date time.Time, candidates []Candidate) *Result {
	canonical := date.Format(dates.Layout)
	res := &Result{
		SearchTerm: term,
		CheckDate:  &canonical,
		Properties: []PropertyResult{},
	}

	var prices []float64
	for _, cand := range candidates {
		rec, ok := s.snap.Lookup(cand.Identifier, date)
		if !ok {
			// Name matched but no row for this date. Counted in
			// TotalFound, excluded from AvailableCount and pricing.
			res.Properties = append(res.Properties, PropertyResult{
				Name:   cand.Identifier,
				Status: StatusNoData,
			})
			continue
		}

		price := rec.Price
		res.Properties = append(res.Properties, PropertyResult{
			Name:   cand.Identifier,
			Price:  &price,
			Status: rec.Status,
		})
		prices = append(prices, rec.Price)
		res.AvailableCount++
	}

	res.TotalFound = len(candidates)
	res.Found = res.TotalFound > 0

	if len(prices) > 0 {
		pr := &PriceRange{Min: prices[0], Max: prices[0]}
		for _, p := range prices {
			if p < pr.Min {
				pr.Min = p
			}
			if p > pr.Max {
				pr.Max = p
			}
		}
		res.PriceRange = pr
	}

	res.Summary = s.summarize(term, date, res)

	log.Printf("[SEARCH] term=%q date=%s total=%d available=%d",
		term, canonical, res.TotalFound, res.AvailableCount)
	return res
}

func (s *Service) summarize(term string, date time.Time, r *Result) string {
	longDate := date.Format("January 2, 2006")

	switch {
	case r.TotalFound == 0:
		families := s.snap.Families(3)
		if len(families) == 0 {
			return fmt.Sprintf("No properties found matching '%s'.", term)
		}
		return fmt.Sprintf("No properties found matching '%s'. Try searching for %s.",
			term, quoteList(families))

	case r.AvailableCount == 0:
		return fmt.Sprintf("Found %d properties matching '%s', but none have availability data on %s.",
			r.TotalFound, term, longDate)

	default:
		summary := fmt.Sprintf("Found %d properties matching '%s' on %s.",
			r.TotalFound, term, longDate)
		if r.PriceRange != nil {
			summary += fmt.Sprintf(" Prices range from %.0f to %.0f per night.",
				r.PriceRange.Min, r.PriceRange.Max)
		}
		summary += fmt.Sprintf(" %d of them have availability data for that date.", r.AvailableCount)
		return summary
	}
}

// quoteList renders names as a spoken-friendly list: 'A', 'B', or 'C'.
func quoteList(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "'" + n + "'"
	}
	if len(quoted) == 1 {
		return quoted[0]
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}

// NegativeResult builds a well-formed found:false result around a
// spoken-friendly summary. Used at the transport boundary so callers
// always receive a readable Result, never a bare error payload.
func NegativeResult(term, summary string) *Result {
	return &Result{
		SearchTerm: term,
		Properties: []PropertyResult{},
		Summary:    summary,
	}
}

// InvalidDateResult converts a rejected date input into the
// caller-facing negative result mandated for unparseable dates. The
// summary is the parser's own message so the two never drift apart.
func InvalidDateResult(term, rawDate string) *Result {
	err := &dates.InvalidDateError{Input: strings.TrimSpace(rawDate)}
	return NegativeResult(term, err.Error())
}
