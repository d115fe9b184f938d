package admin

import "context"

type AdminRepository interface {
	GetByUsername(ctx context.Context, username string) (*Admin, error)
	GetByEmail(ctx context.Context, email string) (*Admin, error)
	UpdateLastLogin(ctx context.Context, id string) error
}
