package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/AbnerMSaconi/GerenciadorReservas/internal/domain"
)

// ReminderSender flags reservations entering the imminent window and
// notifies their clients.
type ReminderSender interface {
	RemindUpcoming(ctx context.Context) ([]*domain.Reservation, error)
}

type Scheduler struct {
	reservationService ReminderSender
	interval           time.Duration
	logger             logger.Logger
}

func New(
	reservationService ReminderSender,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reservationService: reservationService,
		interval:           interval,
		logger:             logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("reminder scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("reminder scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	due, err := s.reservationService.RemindUpcoming(ctx)
	if err != nil {
		s.logger.Error("failed to send reservation reminders",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, r := range due {
		s.logger.Info("reservation reminder sent",
			logger.String("reservation_id", r.ID),
			logger.String("client_id", r.ClientID),
			logger.String("room_id", r.RoomID),
		)
	}
}
