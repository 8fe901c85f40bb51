package search

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rosN100/lohono-fizzy-search/internal/dates"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /api/v1/properties/search
// --------------------------------------------------
func (h *Handler) SearchProperties(c *gin.Context) {
	term := strings.TrimSpace(c.Query("property_name"))
	rawDate := strings.TrimSpace(c.Query("check_date"))

	if term == "" || rawDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "property_name and check_date are required"})
		return
	}

	result, err := h.service.Search(term, rawDate)
	if err != nil {
		// An unparseable date is a negative result, not a fault.
		var invalid *dates.InvalidDateError
		if errors.As(err, &invalid) {
			c.JSON(http.StatusOK, InvalidDateResult(term, rawDate))
			return
		}
		c.JSON(http.StatusOK, NegativeResult(term, "Error processing request: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, result)
}

// --------------------------------------------------
// GET /debug/date
// --------------------------------------------------
func (h *Handler) DebugDate(c *gin.Context) {
	input := c.Query("date_input")

	parsed, err := dates.Normalize(input)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"input": input, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"input":           input,
		"parsed":          parsed.Format(dates.Layout),
		"is_valid_format": dates.IsCanonical(input),
	})
}
