package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/openleave/leave-backend-go/internal/domain/employee"
	"github.com/openleave/leave-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.employee_id, e.name, e.department, e.position,
	e.email, e.phone, e.status, e.join_date, e.created_at, e.updated_at
`

func scanEmployee(row pgx.Row) (*employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.EmployeeID, &e.Name, &e.Department, &e.Position,
		&e.Email, &e.Phone, &e.Status, &e.JoinDate, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, emp *employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, employee_id, name, department, position,
			email, phone, status, join_date,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4,
			$5, $6, $7, $8,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	return q.QueryRow(ctx, query,
		emp.EmployeeID, emp.Name, emp.Department, emp.Position,
		emp.Email, emp.Phone, emp.Status, emp.JoinDate,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		WHERE e.id = $1
	`
	return scanEmployee(q.QueryRow(ctx, query, id))
}

func (r *employeeRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		WHERE e.employee_id = $1
	`
	return scanEmployee(q.QueryRow(ctx, query, employeeID))
}

func (r *employeeRepositoryImpl) GetActiveByEmployeeID(ctx context.Context, employeeID string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		WHERE e.employee_id = $1 AND e.status = 'active'
	`
	return scanEmployee(q.QueryRow(ctx, query, employeeID))
}

func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	// Build WHERE clause
	whereClause := "WHERE 1=1"
	args := []interface{}{}
	argIndex := 1

	if filter.Department != nil {
		whereClause += fmt.Sprintf(" AND e.department = $%d", argIndex)
		args = append(args, *filter.Department)
		argIndex++
	}

	if filter.Status != nil {
		whereClause += fmt.Sprintf(" AND e.status = $%d", argIndex)
		args = append(args, *filter.Status)
		argIndex++
	}

	if filter.Search != nil {
		whereClause += fmt.Sprintf(" AND (e.name ILIKE $%d OR e.employee_id ILIKE $%d)", argIndex, argIndex)
		args = append(args, "%"+*filter.Search+"%")
		argIndex++
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM employees e
		%s
		ORDER BY e.name ASC
	`, employeeColumns, whereClause)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		err := rows.Scan(
			&e.ID, &e.EmployeeID, &e.Name, &e.Department, &e.Position,
			&e.Email, &e.Phone, &e.Status, &e.JoinDate, &e.CreatedAt, &e.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, emp *employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET name = $2, department = $3, position = $4,
			email = $5, phone = $6, status = $7,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.ID, emp.Name, emp.Department, emp.Position,
		emp.Email, emp.Phone, emp.Status,
	).Scan(&emp.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return err
	}
	return nil
}

func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM employees
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM employees WHERE employee_id = $1)`
	err := q.QueryRow(ctx, query, employeeID).Scan(&exists)
	return exists, err
}

func (r *employeeRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM employees WHERE email = $1)`
	err := q.QueryRow(ctx, query, email).Scan(&exists)
	return exists, err
}

func (r *employeeRepositoryImpl) CountByDepartment(ctx context.Context, department string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	query := `SELECT COUNT(*) FROM employees WHERE department = $1`
	err := q.QueryRow(ctx, query, department).Scan(&count)
	return count, err
}

func (r *employeeRepositoryImpl) CountByPosition(ctx context.Context, position string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	query := `SELECT COUNT(*) FROM employees WHERE position = $1`
	err := q.QueryRow(ctx, query, position).Scan(&count)
	return count, err
}
