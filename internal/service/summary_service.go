package service

import (
	"context"
	"fmt"
	"time"

	"github.com/brunosilvadev/rinha-2025/internal/core/domain"
	"github.com/brunosilvadev/rinha-2025/internal/core/ports"

	"github.com/rs/zerolog"
)

// SummaryServiceImpl implements ports.SummaryService on top of the shared
// counter store.
type SummaryServiceImpl struct {
	store ports.SummaryStore
	log   zerolog.Logger
}

// NewSummaryService creates a new SummaryServiceImpl.
func NewSummaryService(store ports.SummaryStore, log zerolog.Logger) *SummaryServiceImpl {
	return &SummaryServiceImpl{store: store, log: log}
}

// Summary returns the totals per processor. The counters are process-wide
// accumulators, so the from/to window does not narrow the result; callers get
// the same global totals regardless of range. The range is still validated at
// the edge so a malformed query fails loudly instead of silently returning
// everything.
func (s *SummaryServiceImpl) Summary(ctx context.Context, from, to *time.Time) (*domain.Summary, error) {
	summary, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading payment summary: %w", err)
	}
	if from != nil || to != nil {
		s.log.Debug().Msg("summary window ignored, totals are global")
	}
	return summary, nil
}

// Reset clears the counters for both processors. Used between load rounds.
func (s *SummaryServiceImpl) Reset(ctx context.Context) error {
	if err := s.store.Reset(ctx); err != nil {
		return fmt.Errorf("resetting payment summary: %w", err)
	}
	return nil
}
