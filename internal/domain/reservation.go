package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// ReservationStatus is derived from the reservation interval and the current
// instant, never stored.
type ReservationStatus string

const (
	StatusClosed       ReservationStatus = "closed"
	StatusOngoing      ReservationStatus = "ongoing"
	StatusUpcomingSoon ReservationStatus = "upcoming_soon"
	StatusUpcoming     ReservationStatus = "upcoming"
)

// UpcomingSoonWindow separates imminent reservations from normal future ones.
const UpcomingSoonWindow = 24 * time.Hour

type Reservation struct {
	ID             string          `json:"id"`
	ClientID       string          `json:"client_id"`
	ClientName     string          `json:"client_name"`
	RoomID         string          `json:"room_id"`
	RoomName       string          `json:"room_name"`
	Title          string          `json:"title"`
	Responsible    string          `json:"responsible"`
	StartAt        time.Time       `json:"start_at"`
	EndAt          time.Time       `json:"end_at"`
	Participants   int             `json:"participants"`
	HourlyRate     decimal.Decimal `json:"hourly_rate"`
	Discount       decimal.Decimal `json:"discount"`
	Total          decimal.Decimal `json:"total"`
	PaymentStatus  PaymentStatus   `json:"payment_status"`
	ReminderSentAt *time.Time      `json:"reminder_sent_at,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Status classifies the reservation relative to now. See Classify.
func (r *Reservation) Status(now time.Time) ReservationStatus {
	return Classify(r.StartAt, r.EndAt, now)
}

// Classify derives the lifecycle state of an interval at the given instant.
// The branches are evaluated in order: a reservation whose start equals now
// is already ongoing, not upcoming.
func Classify(startAt, endAt, now time.Time) ReservationStatus {
	if endAt.Before(now) {
		return StatusClosed
	}
	if !startAt.After(now) {
		return StatusOngoing
	}
	if startAt.Sub(now) < UpcomingSoonWindow {
		return StatusUpcomingSoon
	}
	return StatusUpcoming
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Intervals that merely touch at an endpoint do
// not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

type CreateReservationInput struct {
	ClientID     string
	RoomID       string
	Title        string
	Responsible  string
	StartAt      time.Time
	EndAt        time.Time
	Participants int
	HourlyRate   decimal.Decimal
	Discount     decimal.Decimal
}

// UpdateReservationInput replaces the editable fields of a reservation.
// Discount and payment status are deliberately absent: they have their own
// mutation paths.
type UpdateReservationInput struct {
	ClientID     string
	RoomID       string
	Title        string
	Responsible  string
	StartAt      time.Time
	EndAt        time.Time
	Participants int
	HourlyRate   decimal.Decimal
}

// ReservationPage is the envelope for paginated listings.
type ReservationPage struct {
	Items      []*Reservation
	TotalCount int
	TotalPages int
	Page       int
	PageSize   int
}
