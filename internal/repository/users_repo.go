package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/fairwaylabs/teetime/internal/domain"
)

// UsersRepository handles user persistence.
type UsersRepository struct {
	db *sql.DB
}

// NewUsersRepository creates a new users repository.
func NewUsersRepository(db *sql.DB) *UsersRepository {
	return &UsersRepository{db: db}
}

// Create creates a new user.
func (r *UsersRepository) Create(ctx context.Context, user *domain.User) error {
	return r.CreateTx(ctx, r.db, user)
}

// CreateTx creates a new user within a transaction.
func (r *UsersRepository) CreateTx(ctx context.Context, q Querier, user *domain.User) error {
	query := `
		INSERT INTO users (id, tenant_id, provider_id, name, email, phone, is_admin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := q.ExecContext(ctx, query,
		user.ID, user.TenantID, user.ProviderID, user.Name, user.Email,
		user.Phone, user.IsAdmin, user.CreatedAt, user.UpdatedAt,
	)
	return err
}

// GetByID retrieves a user by ID within a tenant.
func (r *UsersRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.User, error) {
	query := `
		SELECT id, tenant_id, provider_id, name, email, phone, is_admin, created_at, updated_at
		FROM users
		WHERE tenant_id = $1 AND id = $2
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, tenantID, id))
}

// GetByProviderID retrieves a user by external identity key within a tenant.
func (r *UsersRepository) GetByProviderID(ctx context.Context, tenantID uuid.UUID, providerID string) (*domain.User, error) {
	query := `
		SELECT id, tenant_id, provider_id, name, email, phone, is_admin, created_at, updated_at
		FROM users
		WHERE tenant_id = $1 AND provider_id = $2
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, tenantID, providerID))
}

// GetAdminByProviderID retrieves an administrator by external identity key.
// This is the single cross-tenant read in the system: it runs at login time,
// before the acting tenant is known, and binds the identity to its tenant.
func (r *UsersRepository) GetAdminByProviderID(ctx context.Context, providerID string) (*domain.User, error) {
	query := `
		SELECT id, tenant_id, provider_id, name, email, phone, is_admin, created_at, updated_at
		FROM users
		WHERE provider_id = $1 AND is_admin = TRUE
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, providerID))
}

// ListByTenant lists all users of a tenant.
func (r *UsersRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*domain.User, error) {
	query := `
		SELECT id, tenant_id, provider_id, name, email, phone, is_admin, created_at, updated_at
		FROM users
		WHERE tenant_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		user := &domain.User{}
		if err := rows.Scan(
			&user.ID, &user.TenantID, &user.ProviderID, &user.Name, &user.Email,
			&user.Phone, &user.IsAdmin, &user.CreatedAt, &user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// Update updates a user within a tenant.
func (r *UsersRepository) Update(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET name = $3, email = $4, phone = $5, updated_at = NOW()
		WHERE tenant_id = $1 AND id = $2
	`
	result, err := r.db.ExecContext(ctx, query,
		user.TenantID, user.ID, user.Name, user.Email, user.Phone,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Delete removes a user within a tenant.
func (r *UsersRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM users WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UsersRepository) scanOne(row *sql.Row) (*domain.User, error) {
	user := &domain.User{}
	err := row.Scan(
		&user.ID, &user.TenantID, &user.ProviderID, &user.Name, &user.Email,
		&user.Phone, &user.IsAdmin, &user.CreatedAt, &user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
