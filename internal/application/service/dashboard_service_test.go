package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motorline/dealerdesk-api/internal/domain/entity"
	"github.com/motorline/dealerdesk-api/pkg/apperror"
)

func TestNormalizeRangeWidensToFullDays(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	from := time.Date(2026, 8, 10, 14, 25, 13, 0, loc)
	to := time.Date(2026, 8, 12, 9, 5, 0, 0, loc)

	start, end := NormalizeRange(from, to)

	assert.Equal(t, time.Date(2026, 8, 10, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2026, 8, 12, 23, 59, 59, 999000000, loc), end)
}

func TestNormalizeRangeSameDayCoversWholeDay(t *testing.T) {
	day := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)

	start, end := NormalizeRange(day, day)

	assert.Equal(t, time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 8, 10, 23, 59, 59, 999000000, time.UTC), end)
	assert.True(t, end.After(start))
}

func TestGetStatsRejectsInvertedRange(t *testing.T) {
	svc := NewDashboardService(newFakeCollectionRepo())

	from := time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, -1)

	_, err := svc.GetStats(context.Background(), from, to)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestGetStatsAggregatesPerMode(t *testing.T) {
	repo := newFakeCollectionRepo()
	repo.modeNames[1] = "Cash"
	repo.modeNames[2] = "UPI"
	svc := NewDashboardService(repo)
	ctx := context.Background()

	day := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	seed := []entity.PaymentCollection{
		{ReceiptNo: "RV0001", Date: day.Add(9 * time.Hour), Amount: 1000, CustomerID: 1, PaymentModeID: 1},
		{ReceiptNo: "RV0002", Date: day.Add(11 * time.Hour), Amount: 500, CustomerID: 1, PaymentModeID: 2},
		{ReceiptNo: "RV0003", Date: day.Add(16 * time.Hour), Amount: 250, CustomerID: 1, PaymentModeID: 1},
		// Outside the range, must not be counted.
		{ReceiptNo: "RV0004", Date: day.AddDate(0, 0, 3), Amount: 9999, CustomerID: 1, PaymentModeID: 1},
	}
	for i := range seed {
		require.NoError(t, repo.Create(ctx, &seed[i]))
	}

	// Soft-deleted entries are excluded from the rollup.
	require.NoError(t, repo.SoftDelete(ctx, seed[1].ID, nil))

	stats, err := svc.GetStats(ctx, day.Add(10*time.Hour), day.Add(20*time.Hour))
	require.NoError(t, err)

	assert.Equal(t, day, stats.From, "range start is floored to midnight")
	assert.Equal(t, day.Add(24*time.Hour-time.Millisecond), stats.To)
	assert.Equal(t, int64(2), stats.TotalCount)
	require.Len(t, stats.Modes, 1)
	assert.Equal(t, "Cash", stats.Modes[0].Mode)
	assert.Equal(t, 1250.0, stats.Modes[0].Amount)
	assert.Equal(t, int64(2), stats.Modes[0].Count)

	assert.Equal(t, stats.From, repo.lastAggFrom, "normalized bounds reach the query")
	assert.Equal(t, stats.To, repo.lastAggTo)
}
