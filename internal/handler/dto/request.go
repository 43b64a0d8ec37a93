package dto

import "github.com/shopspring/decimal"

type CreateReservationRequest struct {
	ClientID     string          `json:"client_id" binding:"required,uuid"`
	RoomID       string          `json:"room_id" binding:"required,uuid"`
	Title        string          `json:"title" binding:"required"`
	Responsible  string          `json:"responsible" binding:"required"`
	StartAt      string          `json:"start_at" binding:"required"`
	EndAt        string          `json:"end_at" binding:"required"`
	Participants int             `json:"participants" binding:"required,min=1,max=100"`
	HourlyRate   decimal.Decimal `json:"hourly_rate" binding:"required"`
	Discount     decimal.Decimal `json:"discount"`
}

// UpdateReservationRequest carries no discount or payment status: those have
// dedicated endpoints. ID, when present, must match the path id.
type UpdateReservationRequest struct {
	ID           string          `json:"id"`
	ClientID     string          `json:"client_id" binding:"required,uuid"`
	RoomID       string          `json:"room_id" binding:"required,uuid"`
	Title        string          `json:"title" binding:"required"`
	Responsible  string          `json:"responsible" binding:"required"`
	StartAt      string          `json:"start_at" binding:"required"`
	EndAt        string          `json:"end_at" binding:"required"`
	Participants int             `json:"participants" binding:"required,min=1,max=100"`
	HourlyRate   decimal.Decimal `json:"hourly_rate" binding:"required"`
}

type PatchDiscountRequest struct {
	Discount decimal.Decimal `json:"discount"`
}

type ClientRequest struct {
	Name           string  `json:"name" binding:"required"`
	TaxID          *string `json:"tax_id"`
	Phone          *string `json:"phone"`
	Email          *string `json:"email"`
	TelegramChatID *int64  `json:"telegram_chat_id"`
}

type CreateRoomRequest struct {
	Name       string          `json:"name" binding:"required"`
	HourlyRate decimal.Decimal `json:"hourly_rate" binding:"required"`
}
