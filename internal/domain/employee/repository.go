package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, emp *Employee) error
	GetByID(ctx context.Context, id string) (*Employee, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (*Employee, error)
	GetActiveByEmployeeID(ctx context.Context, employeeID string) (*Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, error)
	Update(ctx context.Context, emp *Employee) error
	Delete(ctx context.Context, id string) error
	ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	CountByDepartment(ctx context.Context, department string) (int, error)
	CountByPosition(ctx context.Context, position string) (int, error)
}

type EmployeeFilter struct {
	Department *string
	Status     *string
	Search     *string
}
