package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AbnerMSaconi/GerenciadorReservas/internal/domain"
	"github.com/AbnerMSaconi/GerenciadorReservas/internal/service/ports"
)

const (
	// Windows longer than this are bucketed by month instead of day.
	monthlyBucketThreshold = 60 * 24 * time.Hour

	// Default chart window around now when the caller gives none.
	defaultSeriesSpan = 15 * 24 * time.Hour

	dayLabelFormat   = "02/01"
	monthLabelFormat = "01/2006"
)

type ReportService struct {
	reservationRepo ports.ReservationRepo
	clock           domain.Clock
}

func NewReportService(reservationRepo ports.ReservationRepo, clock domain.Clock) *ReportService {
	return &ReportService{
		reservationRepo: reservationRepo,
		clock:           clock,
	}
}

// Summary aggregates the (optionally window-restricted) collection into the
// dashboard figures: active count, realized vs projected revenue and total
// booked hours.
func (s *ReportService) Summary(ctx context.Context, from, to *time.Time) (*domain.Summary, error) {
	rows, err := s.reservationRepo.ListForReport(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("list for report: %w", err)
	}

	return Summarize(rows, s.clock.Now()), nil
}

// TimeSeries buckets reservations by start date for charting. Windows over
// 60 days use calendar-month buckets, shorter ones calendar days.
func (s *ReportService) TimeSeries(ctx context.Context, from, to *time.Time) ([]domain.TimeSeriesBucket, error) {
	now := s.clock.Now()
	if from == nil {
		f := now.Add(-defaultSeriesSpan)
		from = &f
	}
	if to == nil {
		t := now.Add(defaultSeriesSpan)
		to = &t
	}

	rows, err := s.reservationRepo.ListForReport(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("list for report: %w", err)
	}

	return BuildTimeSeries(rows, *from, *to), nil
}

// Summarize is the pure aggregation over report rows at the given instant.
func Summarize(rows []domain.ReportRow, now time.Time) *domain.Summary {
	sum := &domain.Summary{
		RealizedRevenue:  decimal.Zero,
		ProjectedRevenue: decimal.Zero,
	}

	hours := decimal.Zero
	for _, row := range rows {
		if row.EndAt.After(now) {
			sum.Active++
		}
		if row.PaymentStatus == domain.PaymentPaid {
			sum.RealizedRevenue = sum.RealizedRevenue.Add(row.Total)
		} else {
			sum.ProjectedRevenue = sum.ProjectedRevenue.Add(row.Total)
		}
		hours = hours.Add(decimal.NewFromFloat(row.EndAt.Sub(row.StartAt).Hours()))
	}
	sum.TotalHours = hours.Round(1)

	return sum
}

// BuildTimeSeries groups rows by start date into chronological buckets.
func BuildTimeSeries(rows []domain.ReportRow, from, to time.Time) []domain.TimeSeriesBucket {
	monthly := to.Sub(from) > monthlyBucketThreshold

	type bucket struct {
		at      time.Time
		count   int
		revenue decimal.Decimal
	}
	buckets := make(map[string]*bucket)

	for _, row := range rows {
		at := row.StartAt.UTC()
		var key time.Time
		var label string
		if monthly {
			key = time.Date(at.Year(), at.Month(), 1, 0, 0, 0, 0, time.UTC)
			label = key.Format(monthLabelFormat)
		} else {
			key = time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, time.UTC)
			label = key.Format(dayLabelFormat)
		}

		b, ok := buckets[label]
		if !ok {
			b = &bucket{at: key, revenue: decimal.Zero}
			buckets[label] = b
		}
		b.count++
		b.revenue = b.revenue.Add(row.Total)
	}

	ordered := make([]*bucket, 0, len(buckets))
	labels := make(map[*bucket]string, len(buckets))
	for label, b := range buckets {
		ordered = append(ordered, b)
		labels[b] = label
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].at.Before(ordered[j].at) })

	series := make([]domain.TimeSeriesBucket, 0, len(ordered))
	for _, b := range ordered {
		series = append(series, domain.TimeSeriesBucket{
			Label:   labels[b],
			Count:   b.count,
			Revenue: b.revenue,
		})
	}

	return series
}
