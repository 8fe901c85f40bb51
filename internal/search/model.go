package search

// StatusNoData marks a matched property with no record on the requested
// date. It is this service's own label, distinct from the dataset's
// status values.
const StatusNoData = "no_data"

// PropertyResult is one matched property on the requested date.
type PropertyResult struct {
	Name   string   `json:"name"`
	Price  *float64 `json:"price"`
	Status string   `json:"status"`
}

// PriceRange spans the priced rows included in a result.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Result is the full search outcome handed to the transport layer.
// TotalFound counts distinct name matches; AvailableCount counts matches
// that have a record on the requested date, regardless of status.
type Result struct {
	Found          bool             `json:"found"`
	SearchTerm     string           `json:"search_term"`
	CheckDate      *string          `json:"check_date"`
	TotalFound     int              `json:"total_found"`
	AvailableCount int              `json:"available_count"`
	Properties     []PropertyResult `json:"properties"`
	PriceRange     *PriceRange      `json:"price_range"`
	Summary        string           `json:"summary"`
}
