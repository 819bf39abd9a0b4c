package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/fairwaylabs/teetime/internal/domain"
)

// StaffRepository handles instructor persistence.
type StaffRepository struct {
	db *sql.DB
}

// NewStaffRepository creates a new staff repository.
func NewStaffRepository(db *sql.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

// Create creates a new staff member.
func (r *StaffRepository) Create(ctx context.Context, s *domain.Staff) error {
	query := `
		INSERT INTO staff (id, tenant_id, name, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.TenantID, s.Name, s.IsActive, s.CreatedAt, s.UpdatedAt,
	)
	return err
}

// GetByID retrieves a staff member by ID within a tenant.
func (r *StaffRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Staff, error) {
	query := `
		SELECT id, tenant_id, name, is_active, created_at, updated_at
		FROM staff
		WHERE tenant_id = $1 AND id = $2
	`
	s := &domain.Staff{}
	err := r.db.QueryRowContext(ctx, query, tenantID, id).Scan(
		&s.ID, &s.TenantID, &s.Name, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrStaffNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ListByTenant lists all staff of a tenant.
func (r *StaffRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*domain.Staff, error) {
	query := `
		SELECT id, tenant_id, name, is_active, created_at, updated_at
		FROM staff
		WHERE tenant_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*domain.Staff
	for rows.Next() {
		s := &domain.Staff{}
		if err := rows.Scan(&s.ID, &s.TenantID, &s.Name, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Update updates a staff member within a tenant.
func (r *StaffRepository) Update(ctx context.Context, s *domain.Staff) error {
	query := `
		UPDATE staff
		SET name = $3, is_active = $4, updated_at = NOW()
		WHERE tenant_id = $1 AND id = $2
	`
	result, err := r.db.ExecContext(ctx, query, s.TenantID, s.ID, s.Name, s.IsActive)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrStaffNotFound
	}
	return nil
}

// Delete removes a staff member within a tenant.
func (r *StaffRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM staff WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrStaffNotFound
	}
	return nil
}
