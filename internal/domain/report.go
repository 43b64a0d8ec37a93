package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportRow is the narrow projection the aggregator works on.
type ReportRow struct {
	StartAt       time.Time
	EndAt         time.Time
	Total         decimal.Decimal
	PaymentStatus PaymentStatus
}

// Summary is the dashboard aggregate over a reservation collection.
type Summary struct {
	Active           int             `json:"active"`
	RealizedRevenue  decimal.Decimal `json:"realized_revenue"`
	ProjectedRevenue decimal.Decimal `json:"projected_revenue"`
	TotalHours       decimal.Decimal `json:"total_hours"`
}

// TimeSeriesBucket is one chart point: reservations grouped by start date
// into a day or month bucket.
type TimeSeriesBucket struct {
	Label   string          `json:"label"`
	Count   int             `json:"count"`
	Revenue decimal.Decimal `json:"revenue"`
}
