package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/AbnerMSaconi/GerenciadorReservas/internal/domain"
	"github.com/AbnerMSaconi/GerenciadorReservas/internal/service/ports"
	"github.com/AbnerMSaconi/GerenciadorReservas/internal/service/ports/mocks"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newReservationService(t *testing.T) (*ReservationService, *mocks.MockReservationRepo, *mocks.MockClientRepo, *mocks.MockRoomRepo, *mocks.MockReminderNotifier) {
	t.Helper()
	reservationRepo := mocks.NewMockReservationRepo(t)
	clientRepo := mocks.NewMockClientRepo(t)
	roomRepo := mocks.NewMockRoomRepo(t)
	notifier := mocks.NewMockReminderNotifier(t)

	svc := NewReservationService(reservationRepo, clientRepo, roomRepo, notifier, fixedClock{testNow}, newTestLogger(t))
	return svc, reservationRepo, clientRepo, roomRepo, notifier
}

func validCreateInput() domain.CreateReservationInput {
	return domain.CreateReservationInput{
		ClientID:     "c1",
		RoomID:       "r1",
		Title:        "Quarterly planning",
		Responsible:  "Ana",
		StartAt:      testNow.Add(48 * time.Hour),
		EndAt:        testNow.Add(50 * time.Hour),
		Participants: 8,
		HourlyRate:   decimal.NewFromInt(100),
		Discount:     decimal.NewFromInt(10),
	}
}

func TestReservationService_Create_Success(t *testing.T) {
	svc, reservationRepo, clientRepo, roomRepo, _ := newReservationService(t)

	clientRepo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Client{ID: "c1", Name: "Acme"}, nil)
	roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Room{ID: "r1", Name: "Aurora"}, nil)
	reservationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	r, err := svc.Create(context.Background(), validCreateInput())

	require.NoError(t, err)
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "Acme", r.ClientName)
	assert.Equal(t, "Aurora", r.RoomName)
	assert.Equal(t, domain.PaymentPending, r.PaymentStatus)
	assert.Equal(t, "180.00", r.Total.StringFixed(2))
	assert.Equal(t, "10", r.Discount.String())
}

func TestReservationService_Create_TrimsFields(t *testing.T) {
	svc, reservationRepo, clientRepo, roomRepo, _ := newReservationService(t)

	clientRepo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Client{ID: "c1", Name: "Acme"}, nil)
	roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Room{ID: "r1", Name: "Aurora"}, nil)
	reservationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	input := validCreateInput()
	input.Title = "  Quarterly planning  "
	input.Responsible = " Ana "

	r, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "Quarterly planning", r.Title)
	assert.Equal(t, "Ana", r.Responsible)
}

func TestReservationService_Create_TitleTooShort(t *testing.T) {
	svc, _, _, _, _ := newReservationService(t)

	input := validCreateInput()
	input.Title = "ab"

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_Create_InvalidInterval(t *testing.T) {
	svc, _, _, _, _ := newReservationService(t)

	input := validCreateInput()
	input.EndAt = input.StartAt

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_Create_DiscountOutOfRange(t *testing.T) {
	svc, _, _, _, _ := newReservationService(t)

	input := validCreateInput()
	input.Discount = decimal.NewFromInt(31)

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_Create_ClientNotFound(t *testing.T) {
	svc, _, clientRepo, _, _ := newReservationService(t)

	clientRepo.EXPECT().GetByID(mock.Anything, "c1").Return(nil, domain.ErrClientNotFound)

	_, err := svc.Create(context.Background(), validCreateInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}

func TestReservationService_Create_RoomNotFound(t *testing.T) {
	svc, _, clientRepo, roomRepo, _ := newReservationService(t)

	clientRepo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Client{ID: "c1", Name: "Acme"}, nil)
	roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(nil, domain.ErrRoomNotFound)

	_, err := svc.Create(context.Background(), validCreateInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestReservationService_Create_SchedulingConflict(t *testing.T) {
	svc, reservationRepo, clientRepo, roomRepo, _ := newReservationService(t)

	clientRepo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Client{ID: "c1", Name: "Acme"}, nil)
	roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Room{ID: "r1", Name: "Aurora"}, nil)
	reservationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrSchedulingConflict)

	_, err := svc.Create(context.Background(), validCreateInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSchedulingConflict)
}

func TestReservationService_Create_PastStartDropsDiscount(t *testing.T) {
	svc, reservationRepo, clientRepo, roomRepo, _ := newReservationService(t)

	clientRepo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Client{ID: "c1", Name: "Acme"}, nil)
	roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Room{ID: "r1", Name: "Aurora"}, nil)
	reservationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	input := validCreateInput()
	input.StartAt = testNow.Add(-time.Hour)
	input.EndAt = testNow.Add(time.Hour)

	r, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.True(t, r.Discount.IsZero())
	assert.Equal(t, "200.00", r.Total.StringFixed(2))
}

func TestReservationService_Update_Success(t *testing.T) {
	svc, reservationRepo, clientRepo, roomRepo, _ := newReservationService(t)

	updatedAt := testNow.Add(-time.Hour)
	existing := &domain.Reservation{
		ID:            "res1",
		ClientID:      "c1",
		RoomID:        "r1",
		Title:         "Old title",
		Responsible:   "Ana",
		StartAt:       testNow.Add(48 * time.Hour),
		EndAt:         testNow.Add(50 * time.Hour),
		Participants:  8,
		HourlyRate:    decimal.NewFromInt(100),
		Discount:      decimal.NewFromInt(10),
		Total:         decimal.RequireFromString("180.00"),
		PaymentStatus: domain.PaymentPending,
		UpdatedAt:     updatedAt,
	}

	reservationRepo.EXPECT().GetByID(mock.Anything, "res1").Return(existing, nil)
	clientRepo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Client{ID: "c1", Name: "Acme"}, nil)
	roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Room{ID: "r1", Name: "Aurora"}, nil)
	reservationRepo.EXPECT().Update(mock.Anything, mock.Anything, updatedAt).Return(nil)

	input := domain.UpdateReservationInput{
		ClientID:     "c1",
		RoomID:       "r1",
		Title:        "New title",
		Responsible:  "Ana",
		StartAt:      testNow.Add(72 * time.Hour),
		EndAt:        testNow.Add(75 * time.Hour),
		Participants: 10,
		HourlyRate:   decimal.NewFromInt(100),
	}

	r, err := svc.Update(context.Background(), "res1", input)

	require.NoError(t, err)
	assert.Equal(t, "New title", r.Title)
	// discount survives the update and reprices against the new interval
	assert.Equal(t, "10", r.Discount.String())
	assert.Equal(t, "270.00", r.Total.StringFixed(2))
	assert.Equal(t, testNow, r.UpdatedAt)
}

func TestReservationService_Update_NotFound(t *testing.T) {
	svc, reservationRepo, _, _, _ := newReservationService(t)

	reservationRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrReservationNotFound)

	input := domain.UpdateReservationInput{
		ClientID:     "c1",
		RoomID:       "r1",
		Title:        "New title",
		Responsible:  "Ana",
		StartAt:      testNow.Add(72 * time.Hour),
		EndAt:        testNow.Add(75 * time.Hour),
		Participants: 10,
		HourlyRate:   decimal.NewFromInt(100),
	}

	_, err := svc.Update(context.Background(), "missing", input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestReservationService_Update_ConcurrencyConflict(t *testing.T) {
	svc, reservationRepo, clientRepo, roomRepo, _ := newReservationService(t)

	existing := &domain.Reservation{
		ID:         "res1",
		ClientID:   "c1",
		RoomID:     "r1",
		HourlyRate: decimal.NewFromInt(100),
		UpdatedAt:  testNow.Add(-time.Hour),
	}

	reservationRepo.EXPECT().GetByID(mock.Anything, "res1").Return(existing, nil)
	clientRepo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Client{ID: "c1", Name: "Acme"}, nil)
	roomRepo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Room{ID: "r1", Name: "Aurora"}, nil)
	reservationRepo.EXPECT().Update(mock.Anything, mock.Anything, mock.Anything).Return(domain.ErrConcurrencyConflict)

	input := domain.UpdateReservationInput{
		ClientID:     "c1",
		RoomID:       "r1",
		Title:        "New title",
		Responsible:  "Ana",
		StartAt:      testNow.Add(72 * time.Hour),
		EndAt:        testNow.Add(75 * time.Hour),
		Participants: 10,
		HourlyRate:   decimal.NewFromInt(100),
	}

	_, err := svc.Update(context.Background(), "res1", input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConcurrencyConflict)
}

func TestReservationService_PatchDiscount_Success(t *testing.T) {
	svc, reservationRepo, _, _, _ := newReservationService(t)

	updatedAt := testNow.Add(-time.Hour)
	existing := &domain.Reservation{
		ID:         "res1",
		StartAt:    testNow.Add(48 * time.Hour),
		EndAt:      testNow.Add(50 * time.Hour),
		HourlyRate: decimal.NewFromInt(100),
		Discount:   decimal.Zero,
		Total:      decimal.RequireFromString("200.00"),
		UpdatedAt:  updatedAt,
	}

	reservationRepo.EXPECT().GetByID(mock.Anything, "res1").Return(existing, nil)
	reservationRepo.EXPECT().UpdateDiscount(mock.Anything, mock.Anything, updatedAt).Return(nil)

	r, err := svc.PatchDiscount(context.Background(), "res1", decimal.NewFromInt(15))

	require.NoError(t, err)
	assert.Equal(t, "15", r.Discount.String())
	assert.Equal(t, "170.00", r.Total.StringFixed(2))
}

func TestReservationService_PatchDiscount_OngoingRejected(t *testing.T) {
	svc, reservationRepo, _, _, _ := newReservationService(t)

	existing := &domain.Reservation{
		ID:         "res1",
		StartAt:    testNow.Add(-time.Hour),
		EndAt:      testNow.Add(time.Hour),
		HourlyRate: decimal.NewFromInt(100),
	}

	reservationRepo.EXPECT().GetByID(mock.Anything, "res1").Return(existing, nil)

	_, err := svc.PatchDiscount(context.Background(), "res1", decimal.NewFromInt(10))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestReservationService_PatchDiscount_ClosedRejected(t *testing.T) {
	svc, reservationRepo, _, _, _ := newReservationService(t)

	existing := &domain.Reservation{
		ID:         "res1",
		StartAt:    testNow.Add(-3 * time.Hour),
		EndAt:      testNow.Add(-time.Hour),
		HourlyRate: decimal.NewFromInt(100),
	}

	reservationRepo.EXPECT().GetByID(mock.Anything, "res1").Return(existing, nil)

	_, err := svc.PatchDiscount(context.Background(), "res1", decimal.NewFromInt(10))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestReservationService_PatchDiscount_OutOfRange(t *testing.T) {
	svc, _, _, _, _ := newReservationService(t)

	_, err := svc.PatchDiscount(context.Background(), "res1", decimal.NewFromInt(-1))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_TogglePayment_PendingToPaid(t *testing.T) {
	svc, reservationRepo, _, _, _ := newReservationService(t)

	updatedAt := testNow.Add(-time.Hour)
	existing := &domain.Reservation{
		ID:            "res1",
		PaymentStatus: domain.PaymentPending,
		Total:         decimal.RequireFromString("200.00"),
		UpdatedAt:     updatedAt,
	}

	reservationRepo.EXPECT().GetByID(mock.Anything, "res1").Return(existing, nil)
	reservationRepo.EXPECT().UpdatePayment(mock.Anything, mock.Anything, updatedAt).Return(nil)

	r, err := svc.TogglePayment(context.Background(), "res1")

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, r.PaymentStatus)
	// total is untouched by the payment toggle
	assert.Equal(t, "200.00", r.Total.StringFixed(2))
}

func TestReservationService_TogglePayment_PaidToPending(t *testing.T) {
	svc, reservationRepo, _, _, _ := newReservationService(t)

	existing := &domain.Reservation{
		ID:            "res1",
		PaymentStatus: domain.PaymentPaid,
		UpdatedAt:     testNow.Add(-time.Hour),
	}

	reservationRepo.EXPECT().GetByID(mock.Anything, "res1").Return(existing, nil)
	reservationRepo.EXPECT().UpdatePayment(mock.Anything, mock.Anything, mock.Anything).Return(nil)

	r, err := svc.TogglePayment(context.Background(), "res1")

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPending, r.PaymentStatus)
}

func TestReservationService_Delete_Success(t *testing.T) {
	svc, reservationRepo, _, _, _ := newReservationService(t)

	reservationRepo.EXPECT().Delete(mock.Anything, "res1").Return(nil)

	err := svc.Delete(context.Background(), "res1")

	require.NoError(t, err)
}

func TestReservationService_Delete_NotFound(t *testing.T) {
	svc, reservationRepo, _, _, _ := newReservationService(t)

	reservationRepo.EXPECT().Delete(mock.Anything, "missing").Return(domain.ErrReservationNotFound)

	err := svc.Delete(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestReservationService_List_NormalizesPaging(t *testing.T) {
	svc, reservationRepo, _, _, _ := newReservationService(t)

	expected := ports.ReservationFilter{Page: 1, PageSize: defaultPageSize}
	reservationRepo.EXPECT().List(mock.Anything, expected, testNow).Return([]*domain.Reservation{{ID: "res1"}}, 25, nil)

	page, err := svc.List(context.Background(), ports.ReservationFilter{Page: 0, PageSize: 0})

	require.NoError(t, err)
	assert.Equal(t, 25, page.TotalCount)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 1, page.Page)
	assert.Len(t, page.Items, 1)
}

func TestReservationService_List_CapsPageSize(t *testing.T) {
	svc, reservationRepo, _, _, _ := newReservationService(t)

	expected := ports.ReservationFilter{Page: 2, PageSize: maxPageSize}
	reservationRepo.EXPECT().List(mock.Anything, expected, testNow).Return(nil, 0, nil)

	page, err := svc.List(context.Background(), ports.ReservationFilter{Page: 2, PageSize: 500})

	require.NoError(t, err)
	assert.Equal(t, maxPageSize, page.PageSize)
	assert.Equal(t, 0, page.TotalPages)
}

func TestReservationService_List_RepoError(t *testing.T) {
	svc, reservationRepo, _, _, _ := newReservationService(t)

	reservationRepo.EXPECT().List(mock.Anything, mock.Anything, mock.Anything).Return(nil, 0, errors.New("db error"))

	_, err := svc.List(context.Background(), ports.ReservationFilter{})

	require.Error(t, err)
}

func TestReservationService_RemindUpcoming_NotifiesClients(t *testing.T) {
	svc, reservationRepo, clientRepo, _, notifier := newReservationService(t)

	due := []*domain.Reservation{
		{ID: "res1", ClientID: "c1", RoomID: "r1"},
		{ID: "res2", ClientID: "c2", RoomID: "r1"},
	}
	client1 := &domain.Client{ID: "c1", Name: "Acme"}
	client2 := &domain.Client{ID: "c2", Name: "Globex"}

	reservationRepo.EXPECT().MarkDueReminders(mock.Anything, testNow, domain.UpcomingSoonWindow).Return(due, nil)
	clientRepo.EXPECT().GetByID(mock.Anything, "c1").Return(client1, nil)
	clientRepo.EXPECT().GetByID(mock.Anything, "c2").Return(client2, nil)
	notifier.EXPECT().NotifyUpcomingReservation(mock.Anything, client1, due[0]).Return()
	notifier.EXPECT().NotifyUpcomingReservation(mock.Anything, client2, due[1]).Return()

	result, err := svc.RemindUpcoming(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReservationService_RemindUpcoming_NoneDue(t *testing.T) {
	svc, reservationRepo, _, _, _ := newReservationService(t)

	reservationRepo.EXPECT().MarkDueReminders(mock.Anything, testNow, domain.UpcomingSoonWindow).Return(nil, nil)

	result, err := svc.RemindUpcoming(context.Background())

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestReservationService_RemindUpcoming_RepoError(t *testing.T) {
	svc, reservationRepo, _, _, _ := newReservationService(t)

	reservationRepo.EXPECT().MarkDueReminders(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.RemindUpcoming(context.Background())

	require.Error(t, err)
}
