package service

import (
	"context"
	"time"

	"github.com/motorline/dealerdesk-api/internal/domain/repository"
	"github.com/motorline/dealerdesk-api/pkg/apperror"
)

// DashboardService computes the per-mode collection rollup shown on the
// landing dashboard.
type DashboardService struct {
	collectionRepo repository.CollectionRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(collectionRepo repository.CollectionRepository) *DashboardService {
	return &DashboardService{collectionRepo: collectionRepo}
}

// DashboardStats is the dashboard response payload
type DashboardStats struct {
	From       time.Time                  `json:"from"`
	To         time.Time                  `json:"to"`
	Modes      []repository.ModeAggregate `json:"modes"`
	TotalCount int64                      `json:"total_count"`
}

// NormalizeRange widens a day range to full-day bounds: from is floored to
// 00:00:00.000 and to is pushed to 23:59:59.999 of its day, so a same-day
// range still covers the whole day.
func NormalizeRange(from, to time.Time) (time.Time, time.Time) {
	loc := from.Location()
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, loc)
	end := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 999000000, to.Location())
	return start, end
}

// GetStats aggregates non-deleted sales collections per payment mode over
// the normalized inclusive range, one grouped query plus a total count.
func (s *DashboardService) GetStats(ctx context.Context, from, to time.Time) (*DashboardStats, error) {
	if to.Before(from) {
		return nil, apperror.NewBadRequestError("Range end must not precede range start")
	}

	start, end := NormalizeRange(from, to)

	modes, err := s.collectionRepo.AggregateByMode(ctx, start, end)
	if err != nil {
		return nil, err
	}

	total, err := s.collectionRepo.CountInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		From:       start,
		To:         end,
		Modes:      modes,
		TotalCount: total,
	}, nil
}
