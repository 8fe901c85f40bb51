package webhook

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rosN100/lohono-fizzy-search/internal/dates"
	"github.com/rosN100/lohono-fizzy-search/internal/search"
)

type Handler struct {
	service *search.Service
}

func NewHandler(service *search.Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /api/v1/webhook/vapi
// --------------------------------------------------
// Every outcome, including bad dates, returns a 200 envelope with a
// spoken-friendly summary so the voice agent always has something to
// read back.
func (h *Handler) HandleVapi(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	term := strings.TrimSpace(req.Parameters.PropertyName)
	if term == "" {
		c.JSON(http.StatusOK, envelope(req.ToolCallID,
			search.NegativeResult(term, "Missing property name. Please tell me which property to check."),
		))
		return
	}

	result, err := h.service.Search(term, req.Parameters.CheckDate)
	if err != nil {
		var invalid *dates.InvalidDateError
		if errors.As(err, &invalid) {
			log.Printf("[WEBHOOK] Invalid date %q (toolCallId=%s)",
				req.Parameters.CheckDate, req.ToolCallID)
			c.JSON(http.StatusOK, envelope(req.ToolCallID,
				search.InvalidDateResult(term, req.Parameters.CheckDate),
			))
			return
		}

		log.Printf("[WEBHOOK] Search failed: %v (toolCallId=%s)", err, req.ToolCallID)
		c.JSON(http.StatusOK, envelope(req.ToolCallID,
			search.NegativeResult(term, "Error processing request: "+err.Error()),
		))
		return
	}

	c.JSON(http.StatusOK, envelope(req.ToolCallID, result))
}
