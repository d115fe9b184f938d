package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/openleave/leave-backend-go/internal/domain/master/department"
	"github.com/openleave/leave-backend-go/internal/pkg/database"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

func scanDepartment(row pgx.Row) (*department.Department, error) {
	var d department.Department
	err := row.Scan(
		&d.ID, &d.Name, &d.Code, &d.Description,
		&d.IsActive, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, department.ErrDepartmentNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *departmentRepositoryImpl) Create(ctx context.Context, dept *department.Department) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (
			id, name, code, description, is_active, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	return q.QueryRow(ctx, query,
		dept.Name, dept.Code, dept.Description, dept.IsActive,
	).Scan(&dept.ID, &dept.CreatedAt, &dept.UpdatedAt)
}

func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (*department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, code, description, is_active, created_at, updated_at
		FROM departments
		WHERE id = $1
	`
	return scanDepartment(q.QueryRow(ctx, query, id))
}

func (r *departmentRepositoryImpl) GetByName(ctx context.Context, name string) (*department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, code, description, is_active, created_at, updated_at
		FROM departments
		WHERE name = $1
	`
	return scanDepartment(q.QueryRow(ctx, query, name))
}

func (r *departmentRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, code, description, is_active, created_at, updated_at
		FROM departments
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

	var departments []department.Department
	for rows.Next() {
		var d department.Department
		err := rows.Scan(
			&d.ID, &d.Name, &d.Code, &d.Description,
			&d.IsActive, &d.CreatedAt, &d.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}

	return departments, rows.Err()
}

func (r *departmentRepositoryImpl) Update(ctx context.Context, dept *department.Department) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE departments
		SET name = $2, description = $3, is_active = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		dept.ID, dept.Name, dept.Description, dept.IsActive,
	).Scan(&dept.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return department.ErrDepartmentNotFound
		}
		return err
	}
	return nil
}

func (r *departmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM departments
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return department.ErrDepartmentNotFound
	}
	return nil
}

func (r *departmentRepositoryImpl) ExistsByName(ctx context.Context, name string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM departments WHERE name = $1)`
	err := q.QueryRow(ctx, query, name).Scan(&exists)
	return exists, err
}

func (r *departmentRepositoryImpl) ExistsByCode(ctx context.Context, code string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM departments WHERE code = $1)`
	err := q.QueryRow(ctx, query, code).Scan(&exists)
	return exists, err
}
