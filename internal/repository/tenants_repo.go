package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/fairwaylabs/teetime/internal/domain"
)

// TenantsRepository handles tenant data persistence.
type TenantsRepository struct {
	db *sql.DB
}

// NewTenantsRepository creates a new tenants repository.
func NewTenantsRepository(db *sql.DB) *TenantsRepository {
	return &TenantsRepository{db: db}
}

// Create creates a new tenant.
func (r *TenantsRepository) Create(ctx context.Context, tenant *domain.Tenant) error {
	return r.CreateTx(ctx, r.db, tenant)
}

// CreateTx creates a new tenant within a transaction.
func (r *TenantsRepository) CreateTx(ctx context.Context, q Querier, tenant *domain.Tenant) error {
	query := `
		INSERT INTO tenants (id, name, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := q.ExecContext(ctx, query,
		tenant.ID,
		tenant.Name,
		tenant.IsActive,
		tenant.CreatedAt,
		tenant.UpdatedAt,
	)
	return err
}

// GetActiveByID retrieves an active tenant by ID. Inactive tenants are
// treated as nonexistent.
func (r *TenantsRepository) GetActiveByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	query := `
		SELECT id, name, is_active, created_at, updated_at
		FROM tenants
		WHERE id = $1 AND is_active = TRUE
	`

	var tenant domain.Tenant
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&tenant.ID,
		&tenant.Name,
		&tenant.IsActive,
		&tenant.CreatedAt,
		&tenant.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTenantNotFound
		}
		return nil, err
	}

	return &tenant, nil
}

// GetByID retrieves a tenant by ID regardless of active state.
func (r *TenantsRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	query := `
		SELECT id, name, is_active, created_at, updated_at
		FROM tenants
		WHERE id = $1
	`

	var tenant domain.Tenant
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&tenant.ID,
		&tenant.Name,
		&tenant.IsActive,
		&tenant.CreatedAt,
		&tenant.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTenantNotFound
		}
		return nil, err
	}

	return &tenant, nil
}

// Update updates a tenant's name.
func (r *TenantsRepository) Update(ctx context.Context, tenant *domain.Tenant) error {
	query := `
		UPDATE tenants
		SET name = $1, updated_at = NOW()
		WHERE id = $2 AND is_active = TRUE
	`
	result, err := r.db.ExecContext(ctx, query, tenant.Name, tenant.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrTenantNotFound
	}

	return nil
}

// Deactivate soft-deletes a tenant by clearing its active flag.
// Referencing rows are left in place.
func (r *TenantsRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE tenants
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND is_active = TRUE
	`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrTenantNotFound
	}

	return nil
}
