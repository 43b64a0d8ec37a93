package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/AbnerMSaconi/GerenciadorReservas/internal/domain"
	"github.com/AbnerMSaconi/GerenciadorReservas/internal/service/ports"
)

type RoomService struct {
	repo  ports.RoomRepo
	clock domain.Clock
}

func NewRoomService(repo ports.RoomRepo, clock domain.Clock) *RoomService {
	return &RoomService{repo: repo, clock: clock}
}

func (s *RoomService) Create(ctx context.Context, input domain.CreateRoomInput) (*domain.Room, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if !input.HourlyRate.IsPositive() || input.HourlyRate.GreaterThan(maxHourlyRate) {
		return nil, fmt.Errorf("%w: hourly_rate must be between 0.01 and 9999.99", domain.ErrValidation)
	}

	room := &domain.Room{
		ID:         uuid.New().String(),
		Name:       input.Name,
		HourlyRate: input.HourlyRate,
		CreatedAt:  s.clock.Now(),
	}

	if err := s.repo.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}

	return room, nil
}

func (s *RoomService) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *RoomService) List(ctx context.Context) ([]*domain.Room, error) {
	return s.repo.List(ctx)
}
