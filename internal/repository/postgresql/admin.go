package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/openleave/leave-backend-go/internal/domain/admin"
	"github.com/openleave/leave-backend-go/internal/pkg/database"
)

type adminRepositoryImpl struct {
	db *database.DB
}

func NewAdminRepository(db *database.DB) admin.AdminRepository {
	return &adminRepositoryImpl{db: db}
}

const adminColumns = `
	a.id, a.username, a.password_hash, a.name, a.email, a.role,
	a.is_active, a.last_login, a.created_at, a.updated_at
`

func scanAdmin(row pgx.Row) (*admin.Admin, error) {
	var a admin.Admin
	err := row.Scan(
		&a.ID, &a.Username, &a.PasswordHash, &a.Name, &a.Email, &a.Role,
		&a.IsActive, &a.LastLogin, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, admin.ErrAdminNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *adminRepositoryImpl) GetByUsername(ctx context.Context, username string) (*admin.Admin, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + adminColumns + `
		FROM admins a
		WHERE a.username = $1
	`
	return scanAdmin(q.QueryRow(ctx, query, username))
}

func (r *adminRepositoryImpl) GetByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + adminColumns + `
		FROM admins a
		WHERE a.email = $1
	`
	return scanAdmin(q.QueryRow(ctx, query, email))
}

func (r *adminRepositoryImpl) UpdateLastLogin(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE admins
		SET last_login = NOW(), updated_at = NOW()
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return admin.ErrAdminNotFound
	}
	return nil
}
