package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  ReservationStatus
	}{
		{
			name:  "ended in the past",
			start: now.Add(-3 * time.Hour),
			end:   now.Add(-time.Hour),
			want:  StatusClosed,
		},
		{
			name:  "in progress",
			start: now.Add(-time.Hour),
			end:   now.Add(time.Hour),
			want:  StatusOngoing,
		},
		{
			name:  "starts exactly now",
			start: now,
			end:   now.Add(time.Hour),
			want:  StatusOngoing,
		},
		{
			name:  "ends exactly now",
			start: now.Add(-time.Hour),
			end:   now,
			want:  StatusOngoing,
		},
		{
			name:  "starts within a day",
			start: now.Add(23 * time.Hour),
			end:   now.Add(25 * time.Hour),
			want:  StatusUpcomingSoon,
		},
		{
			name:  "starts in exactly one day",
			start: now.Add(24 * time.Hour),
			end:   now.Add(26 * time.Hour),
			want:  StatusUpcoming,
		},
		{
			name:  "starts next week",
			start: now.Add(7 * 24 * time.Hour),
			end:   now.Add(7*24*time.Hour + 2*time.Hour),
			want:  StatusUpcoming,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.start, tt.end, now))
		})
	}
}

func TestReservation_Status(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	r := &Reservation{
		StartAt: now.Add(-time.Hour),
		EndAt:   now.Add(time.Hour),
	}

	assert.Equal(t, StatusOngoing, r.Status(now))
	assert.Equal(t, StatusClosed, r.Status(now.Add(3*time.Hour)))
	assert.Equal(t, StatusUpcomingSoon, r.Status(now.Add(-2*time.Hour)))
}

func TestOverlaps(t *testing.T) {
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time { return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute) }

	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{"partial overlap", at(9, 0), at(10, 0), at(9, 30), at(10, 30), true},
		{"contained", at(9, 0), at(12, 0), at(10, 0), at(11, 0), true},
		{"identical", at(9, 0), at(10, 0), at(9, 0), at(10, 0), true},
		{"touching endpoints", at(9, 0), at(10, 0), at(10, 0), at(11, 0), false},
		{"disjoint", at(9, 0), at(10, 0), at(14, 0), at(15, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// symmetric
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}
