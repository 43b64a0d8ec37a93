package ports

import (
	"context"

	"github.com/AbnerMSaconi/GerenciadorReservas/internal/domain"
)

type ReminderNotifier interface {
	NotifyUpcomingReservation(ctx context.Context, client *domain.Client, r *domain.Reservation)
}
