package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/logger"

	"github.com/AbnerMSaconi/GerenciadorReservas/internal/domain"
	"github.com/AbnerMSaconi/GerenciadorReservas/internal/service/ports"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

var maxHourlyRate = decimal.RequireFromString("9999.99")

type ReservationService struct {
	reservationRepo ports.ReservationRepo
	clientRepo      ports.ClientRepo
	roomRepo        ports.RoomRepo
	notifier        ports.ReminderNotifier
	clock           domain.Clock
	logger          logger.Logger
}

func NewReservationService(
	reservationRepo ports.ReservationRepo,
	clientRepo ports.ClientRepo,
	roomRepo ports.RoomRepo,
	notifier ports.ReminderNotifier,
	clock domain.Clock,
	logger logger.Logger,
) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		clientRepo:      clientRepo,
		roomRepo:        roomRepo,
		notifier:        notifier,
		clock:           clock,
		logger:          logger,
	}
}

// Create admits a new reservation: field validation, foreign-key resolution,
// pricing, then the conflict-checked insert. The overlap check runs inside
// the repository transaction so two concurrent creates for the same room
// cannot both pass it.
func (s *ReservationService) Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Responsible = strings.TrimSpace(input.Responsible)

	if err := validateReservationFields(input.Title, input.Responsible, input.StartAt, input.EndAt, input.Participants, input.HourlyRate); err != nil {
		return nil, err
	}
	if input.Discount.IsNegative() || input.Discount.GreaterThan(domain.MaxDiscount) {
		return nil, fmt.Errorf("%w: discount must be between 0 and 30", domain.ErrValidation)
	}

	client, err := s.clientRepo.GetByID(ctx, input.ClientID)
	if err != nil {
		return nil, fmt.Errorf("check client: %w", err)
	}
	room, err := s.roomRepo.GetByID(ctx, input.RoomID)
	if err != nil {
		return nil, fmt.Errorf("check room: %w", err)
	}

	now := s.clock.Now()
	discount, total, err := domain.Price(input.StartAt, input.EndAt, input.HourlyRate, input.Discount, now)
	if err != nil {
		return nil, err
	}

	r := &domain.Reservation{
		ID:            uuid.New().String(),
		ClientID:      client.ID,
		ClientName:    client.Name,
		RoomID:        room.ID,
		RoomName:      room.Name,
		Title:         input.Title,
		Responsible:   input.Responsible,
		StartAt:       input.StartAt.UTC(),
		EndAt:         input.EndAt.UTC(),
		Participants:  input.Participants,
		HourlyRate:    input.HourlyRate,
		Discount:      discount,
		Total:         total,
		PaymentStatus: domain.PaymentPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err = s.reservationRepo.Create(ctx, r); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.logger.Info("reservation created",
		logger.String("reservation_id", r.ID),
		logger.String("room_id", r.RoomID),
		logger.String("client_id", r.ClientID),
		logger.String("total", r.Total.StringFixed(2)),
	)

	return r, nil
}

// Update replaces the editable fields and re-prices the reservation with its
// current discount. Payment status and discount are untouched by this path.
func (s *ReservationService) Update(ctx context.Context, id string, input domain.UpdateReservationInput) (*domain.Reservation, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Responsible = strings.TrimSpace(input.Responsible)

	if err := validateReservationFields(input.Title, input.Responsible, input.StartAt, input.EndAt, input.Participants, input.HourlyRate); err != nil {
		return nil, err
	}

	r, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	client, err := s.clientRepo.GetByID(ctx, input.ClientID)
	if err != nil {
		return nil, fmt.Errorf("check client: %w", err)
	}
	room, err := s.roomRepo.GetByID(ctx, input.RoomID)
	if err != nil {
		return nil, fmt.Errorf("check room: %w", err)
	}

	expectedUpdatedAt := r.UpdatedAt
	now := s.clock.Now()

	r.ClientID = client.ID
	r.ClientName = client.Name
	r.RoomID = room.ID
	r.RoomName = room.Name
	r.Title = input.Title
	r.Responsible = input.Responsible
	r.StartAt = input.StartAt.UTC()
	r.EndAt = input.EndAt.UTC()
	r.Participants = input.Participants
	r.HourlyRate = input.HourlyRate

	r.Discount, r.Total, err = domain.Price(r.StartAt, r.EndAt, r.HourlyRate, r.Discount, now)
	if err != nil {
		return nil, err
	}
	r.UpdatedAt = now

	if err = s.reservationRepo.Update(ctx, r, expectedUpdatedAt); err != nil {
		return nil, fmt.Errorf("update reservation: %w", err)
	}

	s.logger.Info("reservation updated",
		logger.String("reservation_id", r.ID),
		logger.String("room_id", r.RoomID),
		logger.String("total", r.Total.StringFixed(2)),
	)

	return r, nil
}

// PatchDiscount changes only the discount, restricted to reservations that
// have not started yet, and re-prices the total.
func (s *ReservationService) PatchDiscount(ctx context.Context, id string, discount decimal.Decimal) (*domain.Reservation, error) {
	if discount.IsNegative() || discount.GreaterThan(domain.MaxDiscount) {
		return nil, fmt.Errorf("%w: discount must be between 0 and 30", domain.ErrValidation)
	}

	r, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	now := s.clock.Now()
	switch r.Status(now) {
	case domain.StatusClosed, domain.StatusOngoing:
		return nil, domain.ErrInvalidState
	}

	expectedUpdatedAt := r.UpdatedAt
	r.Discount, r.Total, err = domain.Price(r.StartAt, r.EndAt, r.HourlyRate, discount, now)
	if err != nil {
		return nil, err
	}
	r.UpdatedAt = now

	if err = s.reservationRepo.UpdateDiscount(ctx, r, expectedUpdatedAt); err != nil {
		return nil, fmt.Errorf("update discount: %w", err)
	}

	s.logger.Info("discount updated",
		logger.String("reservation_id", r.ID),
		logger.String("discount", r.Discount.StringFixed(2)),
		logger.String("total", r.Total.StringFixed(2)),
	)

	return r, nil
}

// TogglePayment flips paid/pending. Pricing is not recomputed: payment status
// is orthogonal to the billed amount.
func (s *ReservationService) TogglePayment(ctx context.Context, id string) (*domain.Reservation, error) {
	r, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	expectedUpdatedAt := r.UpdatedAt
	if r.PaymentStatus == domain.PaymentPaid {
		r.PaymentStatus = domain.PaymentPending
	} else {
		r.PaymentStatus = domain.PaymentPaid
	}
	r.UpdatedAt = s.clock.Now()

	if err = s.reservationRepo.UpdatePayment(ctx, r, expectedUpdatedAt); err != nil {
		return nil, fmt.Errorf("update payment: %w", err)
	}

	s.logger.Info("payment status toggled",
		logger.String("reservation_id", r.ID),
		logger.String("payment_status", string(r.PaymentStatus)),
	)

	return r, nil
}

func (s *ReservationService) Delete(ctx context.Context, id string) error {
	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}

	s.logger.Info("reservation deleted", logger.String("reservation_id", id))
	return nil
}

func (s *ReservationService) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.reservationRepo.GetByID(ctx, id)
}

func (s *ReservationService) List(ctx context.Context, f ports.ReservationFilter) (*domain.ReservationPage, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = defaultPageSize
	}
	if f.PageSize > maxPageSize {
		f.PageSize = maxPageSize
	}

	items, total, err := s.reservationRepo.List(ctx, f, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	totalPages := (total + f.PageSize - 1) / f.PageSize

	return &domain.ReservationPage{
		Items:      items,
		TotalCount: total,
		TotalPages: totalPages,
		Page:       f.Page,
		PageSize:   f.PageSize,
	}, nil
}

// RemindUpcoming flags reservations entering the imminent window and notifies
// their clients. Called periodically by the scheduler.
func (s *ReservationService) RemindUpcoming(ctx context.Context) ([]*domain.Reservation, error) {
	now := s.clock.Now()
	due, err := s.reservationRepo.MarkDueReminders(ctx, now, domain.UpcomingSoonWindow)
	if err != nil {
		return nil, fmt.Errorf("mark due reminders: %w", err)
	}

	if len(due) > 0 {
		s.logger.Info("reservation reminders due", logger.Int("count", len(due)))
		go s.notifyDue(context.WithoutCancel(ctx), due)
	}

	return due, nil
}

func (s *ReservationService) notifyDue(ctx context.Context, due []*domain.Reservation) {
	for _, r := range due {
		client, err := s.clientRepo.GetByID(ctx, r.ClientID)
		if err != nil {
			s.logger.Error("failed to get client for reminder",
				logger.String("client_id", r.ClientID),
			)
			continue
		}
		s.notifier.NotifyUpcomingReservation(ctx, client, r)
	}
}

func validateReservationFields(title, responsible string, startAt, endAt time.Time, participants int, hourlyRate decimal.Decimal) error {
	if l := len([]rune(title)); l < 3 || l > 150 {
		return fmt.Errorf("%w: title must be between 3 and 150 characters", domain.ErrValidation)
	}
	if l := len([]rune(responsible)); l < 1 || l > 100 {
		return fmt.Errorf("%w: responsible must be between 1 and 100 characters", domain.ErrValidation)
	}
	if participants < 1 || participants > 100 {
		return fmt.Errorf("%w: participants must be between 1 and 100", domain.ErrValidation)
	}
	if !hourlyRate.IsPositive() || hourlyRate.GreaterThan(maxHourlyRate) {
		return fmt.Errorf("%w: hourly_rate must be between 0.01 and 9999.99", domain.ErrValidation)
	}
	if !endAt.After(startAt) {
		return fmt.Errorf("%w: end must be after start", domain.ErrValidation)
	}
	return nil
}
