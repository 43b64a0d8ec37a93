package ports

import (
	"context"

	"github.com/AbnerMSaconi/GerenciadorReservas/internal/domain"
)

type RoomRepo interface {
	Create(ctx context.Context, r *domain.Room) error
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	List(ctx context.Context) ([]*domain.Room, error)
}
