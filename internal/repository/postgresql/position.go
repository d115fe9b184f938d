package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/openleave/leave-backend-go/internal/domain/master/position"
	"github.com/openleave/leave-backend-go/internal/pkg/database"
)

type positionRepositoryImpl struct {
	db *database.DB
}

func NewPositionRepository(db *database.DB) position.PositionRepository {
	return &positionRepositoryImpl{db: db}
}

func scanPosition(row pgx.Row) (*position.Position, error) {
	var p position.Position
	err := row.Scan(
		&p.ID, &p.Name, &p.Code, &p.Description,
		&p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, position.ErrPositionNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *positionRepositoryImpl) Create(ctx context.Context, pos *position.Position) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO positions (
			id, name, code, description, is_active, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	return q.QueryRow(ctx, query,
		pos.Name, pos.Code, pos.Description, pos.IsActive,
	).Scan(&pos.ID, &pos.CreatedAt, &pos.UpdatedAt)
}

func (r *positionRepositoryImpl) GetByID(ctx context.Context, id string) (*position.Position, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, code, description, is_active, created_at, updated_at
		FROM positions
		WHERE id = $1
	`
	return scanPosition(q.QueryRow(ctx, query, id))
}

func (r *positionRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]position.Position, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, code, description, is_active, created_at, updated_at
		FROM positions
	`
	if activeOnly {
		query += " WHERE is_active = true"
	}
	query += " ORDER BY name ASC"

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var positions []position.Position
	for rows.Next() {
		var p position.Position
		err := rows.Scan(
			&p.ID, &p.Name, &p.Code, &p.Description,
			&p.IsActive, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		positions = append(positions, p)
	}

	return positions, rows.Err()
}

func (r *positionRepositoryImpl) Update(ctx context.Context, pos *position.Position) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE positions
		SET name = $2, description = $3, is_active = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		pos.ID, pos.Name, pos.Description, pos.IsActive,
	).Scan(&pos.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return position.ErrPositionNotFound
		}
		return err
	}
	return nil
}

func (r *positionRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM positions
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return position.ErrPositionNotFound
	}
	return nil
}

func (r *positionRepositoryImpl) ExistsByName(ctx context.Context, name string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM positions WHERE name = $1)`
	err := q.QueryRow(ctx, query, name).Scan(&exists)
	return exists, err
}

func (r *positionRepositoryImpl) ExistsByCode(ctx context.Context, code string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM positions WHERE code = $1)`
	err := q.QueryRow(ctx, query, code).Scan(&exists)
	return exists, err
}
