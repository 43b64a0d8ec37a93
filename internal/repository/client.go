package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/AbnerMSaconi/GerenciadorReservas/internal/domain"
)

type ClientRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewClientRepo(db *dbpg.DB) *ClientRepository {
	return &ClientRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	query := `INSERT INTO clients (id, name, tax_id, phone, email, telegram_chat_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		c.ID, c.Name, c.TaxID, c.Phone, c.Email, c.TelegramChatID, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}

	return nil
}

func (r *ClientRepository) Update(ctx context.Context, c *domain.Client) error {
	query := `UPDATE clients
			  SET name = $2, tax_id = $3, phone = $4, email = $5, telegram_chat_id = $6, updated_at = $7
			  WHERE id = $1`
	result, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		c.ID, c.Name, c.TaxID, c.Phone, c.Email, c.TelegramChatID, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrClientNotFound
	}

	return nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	query := `SELECT id, name, tax_id, phone, email, telegram_chat_id, created_at, updated_at
			  FROM clients
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}

	var c domain.Client
	if err = row.Scan(&c.ID, &c.Name, &c.TaxID, &c.Phone, &c.Email, &c.TelegramChatID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("scan client: %w", err)
	}

	return &c, nil
}

func (r *ClientRepository) List(ctx context.Context) ([]*domain.Client, error) {
	query := `SELECT id, name, tax_id, phone, email, telegram_chat_id, created_at, updated_at
			  FROM clients
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var res []*domain.Client
	for rows.Next() {
		var c domain.Client
		if err = rows.Scan(&c.ID, &c.Name, &c.TaxID, &c.Phone, &c.Email, &c.TelegramChatID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}

func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrClientNotFound
	}

	return nil
}
