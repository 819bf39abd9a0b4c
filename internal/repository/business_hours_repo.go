package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/fairwaylabs/teetime/internal/domain"
)

// BusinessHoursRepository handles opening-hours persistence.
type BusinessHoursRepository struct {
	db *sql.DB
}

// NewBusinessHoursRepository creates a new business hours repository.
func NewBusinessHoursRepository(db *sql.DB) *BusinessHoursRepository {
	return &BusinessHoursRepository{db: db}
}

// Upsert inserts or replaces the hours for one weekday of a tenant.
func (r *BusinessHoursRepository) Upsert(ctx context.Context, h *domain.BusinessHour) error {
	query := `
		INSERT INTO business_hours (id, tenant_id, day_of_week, open_time, close_time, is_closed)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (tenant_id, day_of_week)
		DO UPDATE SET open_time = $4, close_time = $5, is_closed = $6
	`
	_, err := r.db.ExecContext(ctx, query,
		h.ID, h.TenantID, h.DayOfWeek, h.OpenTime, h.CloseTime, h.IsClosed,
	)
	return err
}

// GetForWeekday retrieves the hours for one weekday of a tenant.
func (r *BusinessHoursRepository) GetForWeekday(ctx context.Context, tenantID uuid.UUID, dayOfWeek int) (*domain.BusinessHour, error) {
	query := `
		SELECT id, tenant_id, day_of_week, open_time, close_time, is_closed
		FROM business_hours
		WHERE tenant_id = $1 AND day_of_week = $2
	`
	h := &domain.BusinessHour{}
	err := r.db.QueryRowContext(ctx, query, tenantID, dayOfWeek).Scan(
		&h.ID, &h.TenantID, &h.DayOfWeek, &h.OpenTime, &h.CloseTime, &h.IsClosed,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrBusinessHourNotFound
	}
	if err != nil {
		return nil, err
	}
	return h, nil
}

// ListByTenant lists all configured weekdays of a tenant.
func (r *BusinessHoursRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*domain.BusinessHour, error) {
	query := `
		SELECT id, tenant_id, day_of_week, open_time, close_time, is_closed
		FROM business_hours
		WHERE tenant_id = $1
		ORDER BY day_of_week
	`
	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*domain.BusinessHour
	for rows.Next() {
		h := &domain.BusinessHour{}
		if err := rows.Scan(&h.ID, &h.TenantID, &h.DayOfWeek, &h.OpenTime, &h.CloseTime, &h.IsClosed); err != nil {
			return nil, err
		}
		list = append(list, h)
	}
	return list, rows.Err()
}

// Delete removes the hours for one weekday of a tenant.
func (r *BusinessHoursRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM business_hours WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrBusinessHourNotFound
	}
	return nil
}
