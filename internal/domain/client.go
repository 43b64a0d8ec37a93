package domain

import "time"

type Client struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	TaxID          *string   `json:"tax_id,omitempty"`
	Phone          *string   `json:"phone,omitempty"`
	Email          *string   `json:"email,omitempty"`
	TelegramChatID *int64    `json:"telegram_chat_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type ClientInput struct {
	Name           string
	TaxID          *string
	Phone          *string
	Email          *string
	TelegramChatID *int64
}
