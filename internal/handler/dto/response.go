package dto

import (
	"time"

	"github.com/AbnerMSaconi/GerenciadorReservas/internal/domain"
)

type ReservationResponse struct {
	ID             string `json:"id"`
	ClientID       string `json:"client_id"`
	ClientName     string `json:"client_name"`
	RoomID         string `json:"room_id"`
	RoomName       string `json:"room_name"`
	Title          string `json:"title"`
	Responsible    string `json:"responsible"`
	StartAt        string `json:"start_at"`
	EndAt          string `json:"end_at"`
	Participants   int    `json:"participants"`
	HourlyRate     string `json:"hourly_rate"`
	Discount       string `json:"discount"`
	Total          string `json:"total"`
	PaymentStatus  string `json:"payment_status"`
	ComputedStatus string `json:"computed_status"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

type ReservationPageResponse struct {
	Items      []ReservationResponse `json:"items"`
	TotalCount int                   `json:"total_count"`
	TotalPages int                   `json:"total_pages"`
	Page       int                   `json:"page"`
	PageSize   int                   `json:"page_size"`
}

type DiscountResponse struct {
	ID       string `json:"id"`
	Discount string `json:"discount"`
	Total    string `json:"total"`
}

type PaymentResponse struct {
	ID            string `json:"id"`
	PaymentStatus string `json:"payment_status"`
	Total         string `json:"total"`
}

type SummaryResponse struct {
	Active           int    `json:"active"`
	RealizedRevenue  string `json:"realized_revenue"`
	ProjectedRevenue string `json:"projected_revenue"`
	TotalHours       string `json:"total_hours"`
}

type TimeSeriesBucketResponse struct {
	Label   string `json:"label"`
	Count   int    `json:"count"`
	Revenue string `json:"revenue"`
}

type ClientResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	TaxID          *string `json:"tax_id,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	Email          *string `json:"email,omitempty"`
	TelegramChatID *int64  `json:"telegram_chat_id,omitempty"`
	CreatedAt      string  `json:"created_at"`
}

type RoomResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	HourlyRate string `json:"hourly_rate"`
	CreatedAt  string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// ToReservationResponse renders money with two decimals and attaches the
// status computed at now.
func ToReservationResponse(r *domain.Reservation, now time.Time) ReservationResponse {
	return ReservationResponse{
		ID:             r.ID,
		ClientID:       r.ClientID,
		ClientName:     r.ClientName,
		RoomID:         r.RoomID,
		RoomName:       r.RoomName,
		Title:          r.Title,
		Responsible:    r.Responsible,
		StartAt:        r.StartAt.Format(time.RFC3339),
		EndAt:          r.EndAt.Format(time.RFC3339),
		Participants:   r.Participants,
		HourlyRate:     r.HourlyRate.StringFixed(2),
		Discount:       r.Discount.StringFixed(2),
		Total:          r.Total.StringFixed(2),
		PaymentStatus:  string(r.PaymentStatus),
		ComputedStatus: string(r.Status(now)),
		CreatedAt:      r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      r.UpdatedAt.Format(time.RFC3339),
	}
}

func ToReservationPageResponse(p *domain.ReservationPage, now time.Time) ReservationPageResponse {
	items := make([]ReservationResponse, 0, len(p.Items))
	for _, r := range p.Items {
		items = append(items, ToReservationResponse(r, now))
	}

	return ReservationPageResponse{
		Items:      items,
		TotalCount: p.TotalCount,
		TotalPages: p.TotalPages,
		Page:       p.Page,
		PageSize:   p.PageSize,
	}
}

func ToSummaryResponse(s *domain.Summary) SummaryResponse {
	return SummaryResponse{
		Active:           s.Active,
		RealizedRevenue:  s.RealizedRevenue.StringFixed(2),
		ProjectedRevenue: s.ProjectedRevenue.StringFixed(2),
		TotalHours:       s.TotalHours.StringFixed(1),
	}
}

func ToTimeSeriesResponse(buckets []domain.TimeSeriesBucket) []TimeSeriesBucketResponse {
	res := make([]TimeSeriesBucketResponse, 0, len(buckets))
	for _, b := range buckets {
		res = append(res, TimeSeriesBucketResponse{
			Label:   b.Label,
			Count:   b.Count,
			Revenue: b.Revenue.StringFixed(2),
		})
	}
	return res
}

func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ID:             c.ID,
		Name:           c.Name,
		TaxID:          c.TaxID,
		Phone:          c.Phone,
		Email:          c.Email,
		TelegramChatID: c.TelegramChatID,
		CreatedAt:      c.CreatedAt.Format(time.RFC3339),
	}
}

func ToRoomResponse(r *domain.Room) RoomResponse {
	return RoomResponse{
		ID:         r.ID,
		Name:       r.Name,
		HourlyRate: r.HourlyRate.StringFixed(2),
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
	}
}
