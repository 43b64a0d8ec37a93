package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/AbnerMSaconi/GerenciadorReservas/internal/domain"
	"github.com/AbnerMSaconi/GerenciadorReservas/internal/service/ports"
)

type ClientService struct {
	clientRepo      ports.ClientRepo
	reservationRepo ports.ReservationRepo
	clock           domain.Clock
}

func NewClientService(clientRepo ports.ClientRepo, reservationRepo ports.ReservationRepo, clock domain.Clock) *ClientService {
	return &ClientService{
		clientRepo:      clientRepo,
		reservationRepo: reservationRepo,
		clock:           clock,
	}
}

func (s *ClientService) Create(ctx context.Context, input domain.ClientInput) (*domain.Client, error) {
	input = trimClientInput(input)
	if err := validateClientInput(input); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	client := &domain.Client{
		ID:             uuid.New().String(),
		Name:           input.Name,
		TaxID:          input.TaxID,
		Phone:          input.Phone,
		Email:          input.Email,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	return client, nil
}

func (s *ClientService) Update(ctx context.Context, id string, input domain.ClientInput) (*domain.Client, error) {
	input = trimClientInput(input)
	if err := validateClientInput(input); err != nil {
		return nil, err
	}

	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}

	client.Name = input.Name
	client.TaxID = input.TaxID
	client.Phone = input.Phone
	client.Email = input.Email
	client.TelegramChatID = input.TelegramChatID
	client.UpdatedAt = s.clock.Now()

	if err = s.clientRepo.Update(ctx, client); err != nil {
		return nil, fmt.Errorf("update client: %w", err)
	}

	return client, nil
}

// Delete refuses to remove a client that still has reservations. Reservations
// themselves delete unconditionally; only the client side is guarded.
func (s *ClientService) Delete(ctx context.Context, id string) error {
	if _, err := s.clientRepo.GetByID(ctx, id); err != nil {
		return fmt.Errorf("get client: %w", err)
	}

	has, err := s.reservationRepo.ExistsByClient(ctx, id)
	if err != nil {
		return fmt.Errorf("check reservations: %w", err)
	}
	if has {
		return domain.ErrClientHasReservations
	}

	if err = s.clientRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete client: %w", err)
	}

	return nil
}

func (s *ClientService) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	return s.clientRepo.GetByID(ctx, id)
}

func (s *ClientService) List(ctx context.Context) ([]*domain.Client, error) {
	return s.clientRepo.List(ctx)
}

func trimClientInput(input domain.ClientInput) domain.ClientInput {
	input.Name = strings.TrimSpace(input.Name)
	input.TaxID = trimPtr(input.TaxID)
	input.Phone = trimPtr(input.Phone)
	input.Email = trimPtr(input.Email)
	return input
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func validateClientInput(input domain.ClientInput) error {
	if l := len([]rune(input.Name)); l < 3 || l > 100 {
		return fmt.Errorf("%w: name must be between 3 and 100 characters", domain.ErrValidation)
	}
	if input.Email != nil {
		if _, err := mail.ParseAddress(*input.Email); err != nil {
			return fmt.Errorf("%w: invalid email", domain.ErrValidation)
		}
	}
	return nil
}
