package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/openleave/leave-backend-go/internal/domain/master/halfday"
	"github.com/openleave/leave-backend-go/internal/pkg/database"
)

type halfDayOptionRepositoryImpl struct {
	db *database.DB
}

func NewHalfDayOptionRepository(db *database.DB) halfday.HalfDayOptionRepository {
	return &halfDayOptionRepositoryImpl{db: db}
}

func scanHalfDayOption(row pgx.Row) (*halfday.HalfDayOption, error) {
	var o halfday.HalfDayOption
	err := row.Scan(
		&o.ID, &o.Code, &o.Label, &o.IsActive, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, halfday.ErrOptionNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *halfDayOptionRepositoryImpl) Create(ctx context.Context, opt *halfday.HalfDayOption) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO half_day_options (
			id, code, label, is_active, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	return q.QueryRow(ctx, query,
		opt.Code, opt.Label, opt.IsActive,
	).Scan(&opt.ID, &opt.CreatedAt, &opt.UpdatedAt)
}

func (r *halfDayOptionRepositoryImpl) GetByID(ctx context.Context, id string) (*halfday.HalfDayOption, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, label, is_active, created_at, updated_at
		FROM half_day_options
		WHERE id = $1
	`
	return scanHalfDayOption(q.QueryRow(ctx, query, id))
}

func (r *halfDayOptionRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]halfday.HalfDayOption, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, label, is_active, created_at, updated_at
		FROM half_day_options
	`
	if activeOnly {
		query += " WHERE is_active = true"
	}
	query += " ORDER BY code ASC"

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var options []halfday.HalfDayOption
	for rows.Next() {
		var o halfday.HalfDayOption
		err := rows.Scan(
			&o.ID, &o.Code, &o.Label, &o.IsActive, &o.CreatedAt, &o.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		options = append(options, o)
	}

	return options, rows.Err()
}

func (r *halfDayOptionRepositoryImpl) Update(ctx context.Context, opt *halfday.HalfDayOption) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE half_day_options
		SET label = $2, is_active = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query, opt.ID, opt.Label, opt.IsActive).Scan(&opt.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return halfday.ErrOptionNotFound
		}
		return err
	}
	return nil
}

func (r *halfDayOptionRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM half_day_options
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return halfday.ErrOptionNotFound
	}
	return nil
}

func (r *halfDayOptionRepositoryImpl) ExistsByCode(ctx context.Context, code string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM half_day_options WHERE code = $1)`
	err := q.QueryRow(ctx, query, code).Scan(&exists)
	return exists, err
}
