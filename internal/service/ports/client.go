package ports

import (
	"context"

	"github.com/AbnerMSaconi/GerenciadorReservas/internal/domain"
)

type ClientRepo interface {
	Create(ctx context.Context, c *domain.Client) error
	Update(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	Delete(ctx context.Context, id string) error
}
