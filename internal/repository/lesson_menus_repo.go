package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/fairwaylabs/teetime/internal/domain"
)

// LessonMenusRepository handles lesson menu persistence.
type LessonMenusRepository struct {
	db *sql.DB
}

// NewLessonMenusRepository creates a new lesson menus repository.
func NewLessonMenusRepository(db *sql.DB) *LessonMenusRepository {
	return &LessonMenusRepository{db: db}
}

// Create creates a new lesson menu.
func (r *LessonMenusRepository) Create(ctx context.Context, m *domain.LessonMenu) error {
	query := `
		INSERT INTO lesson_menus (id, tenant_id, name, duration_minutes, price_yen, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.TenantID, m.Name, m.DurationMinutes, m.PriceYen, m.IsActive, m.CreatedAt, m.UpdatedAt,
	)
	return err
}

// GetByID retrieves a lesson menu by ID within a tenant.
func (r *LessonMenusRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.LessonMenu, error) {
	query := `
		SELECT id, tenant_id, name, duration_minutes, price_yen, is_active, created_at, updated_at
		FROM lesson_menus
		WHERE tenant_id = $1 AND id = $2
	`
	m := &domain.LessonMenu{}
	err := r.db.QueryRowContext(ctx, query, tenantID, id).Scan(
		&m.ID, &m.TenantID, &m.Name, &m.DurationMinutes, &m.PriceYen, &m.IsActive, &m.CreatedAt, &m.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrMenuNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

// ListByTenant lists lesson menus of a tenant. When activeOnly is set,
// inactive menus are excluded (public listing).
func (r *LessonMenusRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID, activeOnly bool) ([]*domain.LessonMenu, error) {
	query := `
		SELECT id, tenant_id, name, duration_minutes, price_yen, is_active, created_at, updated_at
		FROM lesson_menus
		WHERE tenant_id = $1 AND ($2 = FALSE OR is_active = TRUE)
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, tenantID, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*domain.LessonMenu
	for rows.Next() {
		m := &domain.LessonMenu{}
		if err := rows.Scan(&m.ID, &m.TenantID, &m.Name, &m.DurationMinutes, &m.PriceYen, &m.IsActive, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// Update updates a lesson menu within a tenant.
func (r *LessonMenusRepository) Update(ctx context.Context, m *domain.LessonMenu) error {
	query := `
		UPDATE lesson_menus
		SET name = $3, duration_minutes = $4, price_yen = $5, is_active = $6, updated_at = NOW()
		WHERE tenant_id = $1 AND id = $2
	`
	result, err := r.db.ExecContext(ctx, query,
		m.TenantID, m.ID, m.Name, m.DurationMinutes, m.PriceYen, m.IsActive,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrMenuNotFound
	}
	return nil
}

// Delete removes a lesson menu within a tenant.
func (r *LessonMenusRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM lesson_menus WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrMenuNotFound
	}
	return nil
}
