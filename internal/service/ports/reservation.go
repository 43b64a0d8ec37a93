package ports

import (
	"context"
	"time"

	"github.com/AbnerMSaconi/GerenciadorReservas/internal/domain"
)

// ReservationFilter narrows a listing. Status filters are evaluated against
// the instant passed to List; zero values mean "no filter".
type ReservationFilter struct {
	Status   domain.ReservationStatus
	From     *time.Time
	To       *time.Time
	Page     int
	PageSize int
}

type ReservationRepo interface {
	// Create admits the reservation inside one transaction: it locks the
	// room row, re-checks for overlaps against current state and inserts.
	Create(ctx context.Context, r *domain.Reservation) error
	// Update follows the same admission transaction, excluding the edited
	// reservation from the overlap check. expectedUpdatedAt guards against
	// concurrent writers.
	Update(ctx context.Context, r *domain.Reservation, expectedUpdatedAt time.Time) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	List(ctx context.Context, f ReservationFilter, now time.Time) ([]*domain.Reservation, int, error)
	UpdateDiscount(ctx context.Context, r *domain.Reservation, expectedUpdatedAt time.Time) error
	UpdatePayment(ctx context.Context, r *domain.Reservation, expectedUpdatedAt time.Time) error
	Delete(ctx context.Context, id string) error
	ExistsByClient(ctx context.Context, clientID string) (bool, error)
	ListForReport(ctx context.Context, from, to *time.Time) ([]domain.ReportRow, error)
	// MarkDueReminders atomically flags reservations starting within the
	// window that were not reminded yet and returns them.
	MarkDueReminders(ctx context.Context, now time.Time, window time.Duration) ([]*domain.Reservation, error)
}
