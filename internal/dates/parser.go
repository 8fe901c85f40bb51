package dates

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Layout is the canonical YYYY-MM-DD form used everywhere downstream.
const Layout = "2006-01-02"

// maxYear guards against garbage inputs parsing into a far-future date.
// minYear catches parsers that default a missing year to zero.
const (
	maxYear = 2035
	minYear = 2000
)

// InvalidDateError is returned when no supported grammar can interpret
// the input. The message names accepted formats so a voice agent can read
// it back to the caller verbatim.
type InvalidDateError struct {
	Input string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf(
		"Invalid date format: '%s'. Please use formats like '2025-09-09', '9th Sept 2025', or 'September 9'.",
		e.Input,
	)
}

var (
	// ordinalRe matches day ordinals such as "9th" or "1st".
	ordinalRe = regexp.MustCompile(`(?i)\b(\d{1,2})(st|nd|rd|th)\b`)
	// septRe normalizes the four-letter "Sept" abbreviation, which many
	// callers say out loud but most parsers do not accept.
	septRe = regexp.MustCompile(`(?i)\bsept\b`)
)

// Layouts tried for month+day inputs with no year. The current year is
// inferred for these; there is deliberately no roll-forward to the next
// occurrence when the resulting date is already past.
var noYearLayouts = []string{
	"January 2",
	"Jan 2",
	"2 January",
	"2 Jan",
}

// Normalize converts a free-form date string into a calendar date at
// midnight UTC. Grammars are tried in a fixed priority order: strict ISO,
// then month+day with the current year inferred, then general parsing
// with day-before-month disambiguation. Pure function of its input aside
// from the current-year anchor.
func Normalize(input string) (time.Time, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return time.Time{}, &InvalidDateError{Input: input}
	}

	// ISO dates pass through untouched.
	if t, err := time.ParseInLocation(Layout, s, time.UTC); err == nil {
		return validate(t, input)
	}

	cleaned := preprocess(s)

	// Month+day with no year must be caught before the general parser,
	// which would otherwise accept them with a zero year.
	for _, layout := range noYearLayouts {
		if t, err := time.ParseInLocation(layout, titleCase(cleaned), time.UTC); err == nil {
			now := time.Now().UTC()
			return time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}

	// Ambiguous numeric dates resolve day-first: "9/10/2025" is 9 October.
	if t, err := dateparse.ParseIn(cleaned, time.UTC, dateparse.PreferMonthFirst(false)); err == nil {
		return validate(midnight(t), input)
	}

	return time.Time{}, &InvalidDateError{Input: input}
}

// IsCanonical reports whether the input is already a strict YYYY-MM-DD
// date, with no normalization applied.
func IsCanonical(s string) bool {
	_, err := time.ParseInLocation(Layout, s, time.UTC)
	return err == nil
}

// preprocess rewrites spoken-language quirks into parser-friendly form:
// "9th Sept 2025" becomes "9 Sep 2025".
func preprocess(s string) string {
	s = ordinalRe.ReplaceAllString(s, "$1")
	s = septRe.ReplaceAllString(s, "Sep")
	return strings.Join(strings.Fields(s), " ")
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func validate(t time.Time, input string) (time.Time, error) {
	if t.Year() < minYear || t.Year() > maxYear {
		return time.Time{}, &InvalidDateError{Input: input}
	}
	return t, nil
}

// titleCase uppercases the first letter of each word so month names match
// time.Parse layouts regardless of how the caller typed them.
func titleCase(s string) string {
	fields := strings.Fields(s)
	for i, f := range fields {
		fields[i] = strings.ToUpper(f[:1]) + strings.ToLower(f[1:])
	}
	return strings.Join(fields, " ")
}
