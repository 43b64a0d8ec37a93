package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/AbnerMSaconi/GerenciadorReservas/internal/domain"
	"github.com/AbnerMSaconi/GerenciadorReservas/internal/service/ports"
)

// pgExclusionViolation is raised by the gist constraint on
// (room_id, tstzrange(start_at, end_at)) when a racing writer slips past the
// in-transaction overlap check.
const pgExclusionViolation = "23P01"

const reservationColumns = `r.id, r.client_id, c.name, r.room_id, rm.name,
			  r.title, r.responsible, r.start_at, r.end_at, r.participants,
			  r.hourly_rate, r.discount, r.total, r.payment_status,
			  r.reminder_sent_at, r.created_at, r.updated_at`

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = checkOverlap(ctx, tx, res.RoomID, res.ID, res.StartAt, res.EndAt); err != nil {
		return err
	}

	query := `INSERT INTO reservations
			  (id, client_id, room_id, title, responsible, start_at, end_at,
			   participants, hourly_rate, discount, total, payment_status,
			   created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err = tx.ExecContext(
		ctx, query,
		res.ID, res.ClientID, res.RoomID, res.Title, res.Responsible,
		res.StartAt, res.EndAt, res.Participants, res.HourlyRate,
		res.Discount, res.Total, res.PaymentStatus,
		res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgExclusionViolation {
			return domain.ErrSchedulingConflict
		}
		return fmt.Errorf("insert reservation: %w", err)
	}

	return tx.Commit()
}

func (r *ReservationRepository) Update(ctx context.Context, res *domain.Reservation, expectedUpdatedAt time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = checkOverlap(ctx, tx, res.RoomID, res.ID, res.StartAt, res.EndAt); err != nil {
		return err
	}

	query := `UPDATE reservations
			  SET client_id = $2, room_id = $3, title = $4, responsible = $5,
			      start_at = $6, end_at = $7, participants = $8,
			      hourly_rate = $9, discount = $10, total = $11, updated_at = $12
			  WHERE id = $1 AND updated_at = $13`
	result, err := tx.ExecContext(
		ctx, query,
		res.ID, res.ClientID, res.RoomID, res.Title, res.Responsible,
		res.StartAt, res.EndAt, res.Participants, res.HourlyRate,
		res.Discount, res.Total, res.UpdatedAt, expectedUpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgExclusionViolation {
			return domain.ErrSchedulingConflict
		}
		return fmt.Errorf("update reservation: %w", err)
	}

	if err = requireRowAffected(ctx, tx, result, res.ID); err != nil {
		return err
	}

	return tx.Commit()
}

// checkOverlap locks the room row to serialize same-room admissions, then
// runs the half-open overlap test against the current state. Touching
// endpoints do not conflict; the edited reservation is excluded by id.
func checkOverlap(ctx context.Context, tx *sql.Tx, roomID, excludeID string, startAt, endAt time.Time) error {
	var lockedID string
	lockQuery := `SELECT id FROM rooms WHERE id = $1 FOR UPDATE`
	if err := tx.QueryRowContext(ctx, lockQuery, roomID).Scan(&lockedID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrRoomNotFound
		}
		return fmt.Errorf("lock room: %w", err)
	}

	var conflict bool
	overlapQuery := `SELECT EXISTS (
					   SELECT 1 FROM reservations
					   WHERE room_id = $1 AND id <> $2
					     AND start_at < $4 AND end_at > $3
					 )`
	if err := tx.QueryRowContext(ctx, overlapQuery, roomID, excludeID, startAt, endAt).Scan(&conflict); err != nil {
		return fmt.Errorf("check overlap: %w", err)
	}
	if conflict {
		return domain.ErrSchedulingConflict
	}

	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations r
			  JOIN clients c ON c.id = r.client_id
			  JOIN rooms rm ON rm.id = r.room_id
			  WHERE r.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	res, err := scanReservation(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	return res, nil
}

func (r *ReservationRepository) List(ctx context.Context, f ports.ReservationFilter, now time.Time) ([]*domain.Reservation, int, error) {
	where, args := buildListFilter(f, now)

	countQuery := `SELECT COUNT(*) FROM reservations r` + where
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, countQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("count reservations: %w", err)
	}
	var total int
	if err = row.Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("scan count: %w", err)
	}

	limitArg := len(args) + 1
	offsetArg := len(args) + 2
	args = append(args, f.PageSize, (f.Page-1)*f.PageSize)

	query := `SELECT ` + reservationColumns + `
			  FROM reservations r
			  JOIN clients c ON c.id = r.client_id
			  JOIN rooms rm ON rm.id = r.room_id` + where + `
			  ORDER BY r.start_at
			  LIMIT $` + strconv.Itoa(limitArg) + ` OFFSET $` + strconv.Itoa(offsetArg)

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	var res []*domain.Reservation
	for rows.Next() {
		item, err := scanReservation(rows.Scan)
		if err != nil {
			return nil, 0, fmt.Errorf("scan reservation: %w", err)
		}
		res = append(res, item)
	}

	return res, total, rows.Err()
}

func buildListFilter(f ports.ReservationFilter, now time.Time) (string, []any) {
	var conds []string
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if f.From != nil {
		conds = append(conds, "r.start_at >= "+arg(*f.From))
	}
	if f.To != nil {
		conds = append(conds, "r.end_at <= "+arg(*f.To))
	}

	switch f.Status {
	case domain.StatusClosed:
		conds = append(conds, "r.end_at < "+arg(now))
	case domain.StatusOngoing:
		p := arg(now)
		conds = append(conds, "r.start_at <= "+p, "r.end_at >= "+p)
	case domain.StatusUpcomingSoon:
		p := arg(now)
		limit := arg(now.Add(domain.UpcomingSoonWindow))
		conds = append(conds, "r.start_at > "+p, "r.start_at <= "+limit)
	case domain.StatusUpcoming:
		conds = append(conds, "r.start_at > "+arg(now.Add(domain.UpcomingSoonWindow)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *ReservationRepository) UpdateDiscount(ctx context.Context, res *domain.Reservation, expectedUpdatedAt time.Time) error {
	query := `UPDATE reservations
			  SET discount = $2, total = $3, updated_at = $4
			  WHERE id = $1 AND updated_at = $5`
	result, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		res.ID, res.Discount, res.Total, res.UpdatedAt, expectedUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update discount: %w", err)
	}

	return r.requireRowAffectedRetry(ctx, result, res.ID)
}

func (r *ReservationRepository) UpdatePayment(ctx context.Context, res *domain.Reservation, expectedUpdatedAt time.Time) error {
	query := `UPDATE reservations
			  SET payment_status = $2, updated_at = $3
			  WHERE id = $1 AND updated_at = $4`
	result, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		res.ID, res.PaymentStatus, res.UpdatedAt, expectedUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}

	return r.requireRowAffectedRetry(ctx, result, res.ID)
}

func (r *ReservationRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrReservationNotFound
	}

	return nil
}

func (r *ReservationRepository) ExistsByClient(ctx context.Context, clientID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM reservations WHERE client_id = $1)`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, clientID)
	if err != nil {
		return false, fmt.Errorf("check client reservations: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan exists: %w", err)
	}

	return exists, nil
}

func (r *ReservationRepository) ListForReport(ctx context.Context, from, to *time.Time) ([]domain.ReportRow, error) {
	var conds []string
	var args []any
	if from != nil {
		args = append(args, *from)
		conds = append(conds, "start_at >= $"+strconv.Itoa(len(args)))
	}
	if to != nil {
		args = append(args, *to)
		conds = append(conds, "start_at <= $"+strconv.Itoa(len(args)))
	}

	query := `SELECT start_at, end_at, total, payment_status FROM reservations`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list for report: %w", err)
	}
	defer rows.Close()

	var res []domain.ReportRow
	for rows.Next() {
		var row domain.ReportRow
		if err = rows.Scan(&row.StartAt, &row.EndAt, &row.Total, &row.PaymentStatus); err != nil {
			return nil, fmt.Errorf("scan report row: %w", err)
		}
		res = append(res, row)
	}

	return res, rows.Err()
}

func (r *ReservationRepository) MarkDueReminders(ctx context.Context, now time.Time, window time.Duration) ([]*domain.Reservation, error) {
	query := `UPDATE reservations r
			  SET reminder_sent_at = $1, updated_at = $1
			  FROM clients c, rooms rm
			  WHERE c.id = r.client_id AND rm.id = r.room_id
			    AND r.start_at > $1 AND r.start_at <= $2
			    AND r.reminder_sent_at IS NULL
			  RETURNING ` + reservationColumns

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, now, now.Add(window))
	if err != nil {
		return nil, fmt.Errorf("mark due reminders: %w", err)
	}
	defer rows.Close()

	var res []*domain.Reservation
	for rows.Next() {
		item, err := scanReservation(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan reminder: %w", err)
		}
		res = append(res, item)
	}

	return res, rows.Err()
}

func scanReservation(scan func(dest ...any) error) (*domain.Reservation, error) {
	var res domain.Reservation
	err := scan(
		&res.ID, &res.ClientID, &res.ClientName, &res.RoomID, &res.RoomName,
		&res.Title, &res.Responsible, &res.StartAt, &res.EndAt, &res.Participants,
		&res.HourlyRate, &res.Discount, &res.Total, &res.PaymentStatus,
		&res.ReminderSentAt, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// requireRowAffected distinguishes a vanished row from a stale version when
// a guarded update matched nothing.
func requireRowAffected(ctx context.Context, tx *sql.Tx, result sql.Result, id string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows > 0 {
		return nil
	}

	var exists bool
	if err = tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM reservations WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("check reservation: %w", err)
	}
	if !exists {
		return domain.ErrReservationNotFound
	}
	return domain.ErrConcurrencyConflict
}

func (r *ReservationRepository) requireRowAffectedRetry(ctx context.Context, result sql.Result, id string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows > 0 {
		return nil
	}

	exists, err := r.existsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrReservationNotFound
	}
	return domain.ErrConcurrencyConflict
}

func (r *ReservationRepository) existsByID(ctx context.Context, id string) (bool, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT EXISTS (SELECT 1 FROM reservations WHERE id = $1)`, id)
	if err != nil {
		return false, fmt.Errorf("check reservation: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan exists: %w", err)
	}
	return exists, nil
}
