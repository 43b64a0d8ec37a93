package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Room is the overlap-checking partition: no two reservations in the same
// room may intersect. HourlyRate is the prefill rate for new reservations.
type Room struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	CreatedAt  time.Time       `json:"created_at"`
}

type CreateRoomInput struct {
	Name       string
	HourlyRate decimal.Decimal
}
