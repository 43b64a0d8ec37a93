package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/ginext"

	"github.com/AbnerMSaconi/GerenciadorReservas/internal/domain"
	"github.com/AbnerMSaconi/GerenciadorReservas/internal/handler/dto"
	"github.com/AbnerMSaconi/GerenciadorReservas/internal/service/ports"
)

type ReservationSvc interface {
	Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error)
	Update(ctx context.Context, id string, input domain.UpdateReservationInput) (*domain.Reservation, error)
	PatchDiscount(ctx context.Context, id string, discount decimal.Decimal) (*domain.Reservation, error)
	TogglePayment(ctx context.Context, id string) (*domain.Reservation, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	List(ctx context.Context, f ports.ReservationFilter) (*domain.ReservationPage, error)
}

type ReportSvc interface {
	Summary(ctx context.Context, from, to *time.Time) (*domain.Summary, error)
	TimeSeries(ctx context.Context, from, to *time.Time) ([]domain.TimeSeriesBucket, error)
}

type ClientSvc interface {
	Create(ctx context.Context, input domain.ClientInput) (*domain.Client, error)
	Update(ctx context.Context, id string, input domain.ClientInput) (*domain.Client, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
}

type RoomSvc interface {
	Create(ctx context.Context, input domain.CreateRoomInput) (*domain.Room, error)
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	List(ctx context.Context) ([]*domain.Room, error)
}

type Handler struct {
	reservationService ReservationSvc
	reportService      ReportSvc
	clientService      ClientSvc
	roomService        RoomSvc
	clock              domain.Clock
}

func NewHandler(
	reservationService ReservationSvc,
	reportService ReportSvc,
	clientService ClientSvc,
	roomService RoomSvc,
	clock domain.Clock,
) *Handler {
	return &Handler{
		reservationService: reservationService,
		reportService:      reportService,
		clientService:      clientService,
		roomService:        roomService,
		clock:              clock,
	}
}

// Reservations

func (h *Handler) ListReservations(c *ginext.Context) {
	f := ports.ReservationFilter{
		Status: domain.ReservationStatus(c.Query("status")),
	}

	var ok bool
	if f.Page, ok = intQuery(c, "page", 1); !ok {
		return
	}
	if f.PageSize, ok = intQuery(c, "page_size", 10); !ok {
		return
	}
	if f.From, ok = timeQuery(c, "from"); !ok {
		return
	}
	if f.To, ok = timeQuery(c, "to"); !ok {
		return
	}

	page, err := h.reservationService.List(c.Request.Context(), f)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationPageResponse(page, h.clock.Now()))
}

func (h *Handler) CreateReservation(c *ginext.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startAt, endAt, ok := parseInterval(c, req.StartAt, req.EndAt)
	if !ok {
		return
	}

	input := domain.CreateReservationInput{
		ClientID:     req.ClientID,
		RoomID:       req.RoomID,
		Title:        req.Title,
		Responsible:  req.Responsible,
		StartAt:      startAt,
		EndAt:        endAt,
		Participants: req.Participants,
		HourlyRate:   req.HourlyRate,
		Discount:     req.Discount,
	}

	r, err := h.reservationService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(r, h.clock.Now()))
}

func (h *Handler) GetReservation(c *ginext.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	r, err := h.reservationService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(r, h.clock.Now()))
}

func (h *Handler) UpdateReservation(c *ginext.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req dto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if req.ID != "" && req.ID != id {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "body id does not match path id"})
		return
	}

	startAt, endAt, ok := parseInterval(c, req.StartAt, req.EndAt)
	if !ok {
		return
	}

	input := domain.UpdateReservationInput{
		ClientID:     req.ClientID,
		RoomID:       req.RoomID,
		Title:        req.Title,
		Responsible:  req.Responsible,
		StartAt:      startAt,
		EndAt:        endAt,
		Participants: req.Participants,
		HourlyRate:   req.HourlyRate,
	}

	r, err := h.reservationService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(r, h.clock.Now()))
}

func (h *Handler) PatchReservationDiscount(c *ginext.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req dto.PatchDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	r, err := h.reservationService.PatchDiscount(c.Request.Context(), id, req.Discount)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DiscountResponse{
		ID:       r.ID,
		Discount: r.Discount.StringFixed(2),
		Total:    r.Total.StringFixed(2),
	})
}

func (h *Handler) ToggleReservationPayment(c *ginext.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	r, err := h.reservationService.TogglePayment(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PaymentResponse{
		ID:            r.ID,
		PaymentStatus: string(r.PaymentStatus),
		Total:         r.Total.StringFixed(2),
	})
}

func (h *Handler) DeleteReservation(c *ginext.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.reservationService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Reports

func (h *Handler) GetSummary(c *ginext.Context) {
	from, ok := timeQuery(c, "from")
	if !ok {
		return
	}
	to, ok := timeQuery(c, "to")
	if !ok {
		return
	}

	summary, err := h.reportService.Summary(c.Request.Context(), from, to)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}

func (h *Handler) GetTimeSeries(c *ginext.Context) {
	from, ok := timeQuery(c, "from")
	if !ok {
		return
	}
	to, ok := timeQuery(c, "to")
	if !ok {
		return
	}

	series, err := h.reportService.TimeSeries(c.Request.Context(), from, to)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTimeSeriesResponse(series))
}

// Clients

func (h *Handler) CreateClient(c *ginext.Context) {
	var req dto.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	client, err := h.clientService.Create(c.Request.Context(), clientInput(req))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToClientResponse(client))
}

func (h *Handler) UpdateClient(c *ginext.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req dto.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	client, err := h.clientService.Update(c.Request.Context(), id, clientInput(req))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

func (h *Handler) DeleteClient(c *ginext.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.clientService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) GetClient(c *ginext.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	client, err := h.clientService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

func (h *Handler) ListClients(c *ginext.Context) {
	clients, err := h.clientService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ClientResponse, 0, len(clients))
	for _, client := range clients {
		resp = append(resp, dto.ToClientResponse(client))
	}

	c.JSON(http.StatusOK, resp)
}

// Rooms

func (h *Handler) CreateRoom(c *ginext.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	room, err := h.roomService.Create(c.Request.Context(), domain.CreateRoomInput{
		Name:       req.Name,
		HourlyRate: req.HourlyRate,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRoomResponse(room))
}

func (h *Handler) GetRoom(c *ginext.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	room, err := h.roomService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}

func (h *Handler) ListRooms(c *ginext.Context) {
	rooms, err := h.roomService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		resp = append(resp, dto.ToRoomResponse(room))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrReservationNotFound),
		errors.Is(err, domain.ErrClientNotFound),
		errors.Is(err, domain.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSchedulingConflict),
		errors.Is(err, domain.ErrConcurrencyConflict),
		errors.Is(err, domain.ErrInvalidState),
		errors.Is(err, domain.ErrClientHasReservations):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func clientInput(req dto.ClientRequest) domain.ClientInput {
	return domain.ClientInput{
		Name:           req.Name,
		TaxID:          req.TaxID,
		Phone:          req.Phone,
		Email:          req.Email,
		TelegramChatID: req.TelegramChatID,
	}
}

func idParam(c *ginext.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid id"})
		return "", false
	}
	return id, true
}

func intQuery(c *ginext.Context, name string, def int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return v, true
}

// timeQuery accepts RFC3339 or a plain date.
func timeQuery(c *ginext.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		t, err = time.Parse("2006-01-02", raw)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name + ", expected RFC3339 or YYYY-MM-DD"})
		return nil, false
	}

	t = t.UTC()
	return &t, true
}

func parseInterval(c *ginext.Context, start, end string) (time.Time, time.Time, bool) {
	startAt, err := time.Parse(time.RFC3339, start)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_at format, expected RFC3339"})
		return time.Time{}, time.Time{}, false
	}

	endAt, err := time.Parse(time.RFC3339, end)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_at format, expected RFC3339"})
		return time.Time{}, time.Time{}, false
	}

	return startAt, endAt, true
}
