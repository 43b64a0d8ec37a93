package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrice_FutureWithDiscount(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	start := now.Add(48 * time.Hour)
	end := start.Add(2 * time.Hour)

	discount, total, err := Price(start, end, decimal.NewFromInt(100), decimal.NewFromInt(10), now)

	require.NoError(t, err)
	assert.Equal(t, "10", discount.String())
	assert.Equal(t, "180.00", total.StringFixed(2))
}

func TestPrice_StartedReservationDropsDiscount(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	start := now.Add(-time.Hour)
	end := start.Add(2 * time.Hour)

	discount, total, err := Price(start, end, decimal.NewFromInt(100), decimal.NewFromInt(10), now)

	require.NoError(t, err)
	assert.True(t, discount.IsZero())
	assert.Equal(t, "200.00", total.StringFixed(2))
}

func TestPrice_StartEqualsNowDropsDiscount(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	discount, total, err := Price(now, now.Add(time.Hour), decimal.NewFromInt(50), decimal.NewFromInt(5), now)

	require.NoError(t, err)
	assert.True(t, discount.IsZero())
	assert.Equal(t, "50.00", total.StringFixed(2))
}

func TestPrice_FractionalHours(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	start := now.Add(24 * time.Hour)
	end := start.Add(90 * time.Minute)

	_, total, err := Price(start, end, decimal.NewFromInt(100), decimal.Zero, now)

	require.NoError(t, err)
	assert.Equal(t, "150.00", total.StringFixed(2))
}

func TestPrice_DiscountAboveMaxIgnored(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	start := now.Add(24 * time.Hour)
	end := start.Add(time.Hour)

	discount, total, err := Price(start, end, decimal.NewFromInt(100), decimal.NewFromInt(31), now)

	require.NoError(t, err)
	assert.True(t, discount.IsZero())
	assert.Equal(t, "100.00", total.StringFixed(2))
}

func TestPrice_MaxDiscountHonored(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	start := now.Add(24 * time.Hour)
	end := start.Add(time.Hour)

	discount, total, err := Price(start, end, decimal.NewFromInt(100), decimal.NewFromInt(30), now)

	require.NoError(t, err)
	assert.Equal(t, "30", discount.String())
	assert.Equal(t, "70.00", total.StringFixed(2))
}

func TestPrice_TotalNeverExceedsGross(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	start := now.Add(24 * time.Hour)
	end := start.Add(3 * time.Hour)
	rate := decimal.RequireFromString("33.33")

	_, gross, err := Price(start, end, rate, decimal.Zero, now)
	require.NoError(t, err)

	for d := 1; d <= 30; d++ {
		_, total, err := Price(start, end, rate, decimal.NewFromInt(int64(d)), now)
		require.NoError(t, err)
		assert.True(t, total.LessThanOrEqual(gross), "discount %d", d)
	}
}

func TestPrice_InvalidInterval(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	start := now.Add(time.Hour)

	_, _, err := Price(start, start, decimal.NewFromInt(100), decimal.Zero, now)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPrice_RoundsOnceAtTheEnd(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	start := now.Add(24 * time.Hour)
	end := start.Add(time.Hour)

	// 99.99 * 0.85 = 84.9915, rounded once to 84.99.
	_, total, err := Price(start, end, decimal.RequireFromString("99.99"), decimal.NewFromInt(15), now)

	require.NoError(t, err)
	assert.Equal(t, "84.99", total.StringFixed(2))
}
