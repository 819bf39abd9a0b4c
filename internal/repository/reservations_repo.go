package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/fairwaylabs/teetime/internal/domain"
)

// ReservationsRepository handles reservation persistence.
type ReservationsRepository struct {
	db *sql.DB
}

// NewReservationsRepository creates a new reservations repository.
func NewReservationsRepository(db *sql.DB) *ReservationsRepository {
	return &ReservationsRepository{db: db}
}

// Create creates a new reservation.
func (r *ReservationsRepository) Create(ctx context.Context, res *domain.Reservation) error {
	return r.CreateTx(ctx, r.db, res)
}

// CreateTx creates a new reservation within a transaction.
func (r *ReservationsRepository) CreateTx(ctx context.Context, q Querier, res *domain.Reservation) error {
	query := `
		INSERT INTO reservations (id, tenant_id, user_id, staff_id, menu_id, starts_at, ends_at, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := q.ExecContext(ctx, query,
		res.ID, res.TenantID, res.UserID, res.StaffID, res.MenuID,
		res.StartsAt, res.EndsAt, res.Status, res.Notes, res.CreatedAt, res.UpdatedAt,
	)
	return err
}

// GetByID retrieves a reservation by ID within a tenant.
func (r *ReservationsRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Reservation, error) {
	query := `
		SELECT id, tenant_id, user_id, staff_id, menu_id, starts_at, ends_at, status, notes, created_at, updated_at
		FROM reservations
		WHERE tenant_id = $1 AND id = $2
	`
	res := &domain.Reservation{}
	err := r.db.QueryRowContext(ctx, query, tenantID, id).Scan(
		&res.ID, &res.TenantID, &res.UserID, &res.StaffID, &res.MenuID,
		&res.StartsAt, &res.EndsAt, &res.Status, &res.Notes, &res.CreatedAt, &res.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrReservationNotFound
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

// ListByRange lists reservations of a tenant starting within [from, to).
// Cancelled reservations are included; callers filter by status if needed.
func (r *ReservationsRepository) ListByRange(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]*domain.Reservation, error) {
	query := `
		SELECT id, tenant_id, user_id, staff_id, menu_id, starts_at, ends_at, status, notes, created_at, updated_at
		FROM reservations
		WHERE tenant_id = $1 AND starts_at >= $2 AND starts_at < $3
		ORDER BY starts_at
	`
	rows, err := r.db.QueryContext(ctx, query, tenantID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*domain.Reservation
	for rows.Next() {
		res := &domain.Reservation{}
		if err := rows.Scan(
			&res.ID, &res.TenantID, &res.UserID, &res.StaffID, &res.MenuID,
			&res.StartsAt, &res.EndsAt, &res.Status, &res.Notes, &res.CreatedAt, &res.UpdatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, res)
	}
	return list, rows.Err()
}

// Update updates a reservation's slot, assignment, status, and notes.
func (r *ReservationsRepository) Update(ctx context.Context, res *domain.Reservation) error {
	query := `
		UPDATE reservations
		SET staff_id = $3, menu_id = $4, starts_at = $5, ends_at = $6, status = $7, notes = $8, updated_at = NOW()
		WHERE tenant_id = $1 AND id = $2
	`
	result, err := r.db.ExecContext(ctx, query,
		res.TenantID, res.ID, res.StaffID, res.MenuID, res.StartsAt, res.EndsAt, res.Status, res.Notes,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrReservationNotFound
	}
	return nil
}

// Cancel marks a reservation cancelled within a tenant.
func (r *ReservationsRepository) Cancel(ctx context.Context, tenantID, id uuid.UUID) error {
	query := `
		UPDATE reservations
		SET status = $3, updated_at = NOW()
		WHERE tenant_id = $1 AND id = $2
	`
	result, err := r.db.ExecContext(ctx, query, tenantID, id, domain.ReservationCancelled)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrReservationNotFound
	}
	return nil
}
