package handler

import (
	"math"
	"net/http"
	"time"

	"github.com/brunosilvadev/rinha-2025/internal/adapter/http/dto"
	"github.com/brunosilvadev/rinha-2025/internal/core/domain"
	"github.com/brunosilvadev/rinha-2025/internal/core/ports"
	"github.com/brunosilvadev/rinha-2025/pkg/apperror"
	"github.com/brunosilvadev/rinha-2025/pkg/response"

	"github.com/gin-gonic/gin"
)

// SummaryHandler handles the dispatch totals endpoints.
type SummaryHandler struct {
	summarySvc ports.SummaryService
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summarySvc ports.SummaryService) *SummaryHandler {
	return &SummaryHandler{summarySvc: summarySvc}
}

// GetSummary handles GET /payments-summary. The from/to instants are
// validated when present; malformed values or an inverted range fail the
// request even though the totals themselves are global.
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	from, err := parseInstant(c.Query("from"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidTimeRange())
		return
	}
	to, err := parseInstant(c.Query("to"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidTimeRange())
		return
	}
	if from != nil && to != nil && from.After(*to) {
		response.Error(c, apperror.ErrInvalidTimeRange())
		return
	}

	summary, err := h.summarySvc.Summary(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, toSummaryResponse(summary))
}

// ResetSummary handles DELETE /payments-summary.
func (h *SummaryHandler) ResetSummary(c *gin.Context) {
	if err := h.summarySvc.Reset(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

func parseInstant(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// toSummaryResponse converts domain.Summary to its wire shape. Amounts are
// rounded to two decimals so counter arithmetic never leaks float dust.
func toSummaryResponse(s *domain.Summary) dto.SummaryResponse {
	return dto.SummaryResponse{
		Default:  toProcessorTotals(s.Default),
		Fallback: toProcessorTotals(s.Fallback),
	}
}

func toProcessorTotals(ps domain.ProcessorSummary) dto.ProcessorTotals {
	return dto.ProcessorTotals{
		TotalRequests: ps.TotalRequests,
		TotalAmount:   math.Round(ps.TotalAmount*100) / 100,
	}
}
