package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/openleave/leave-backend-go/internal/domain/employee"
	"github.com/openleave/leave-backend-go/internal/pkg/database"
	"github.com/openleave/leave-backend-go/internal/repository/postgresql"
)

type EmployeeService interface {
	Create(ctx context.Context, req employee.CreateEmployeeRequest) (*employee.Employee, error)
	Get(ctx context.Context, id string) (*employee.Employee, error)
	List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error)
	ListByDepartment(ctx context.Context, department string) ([]employee.Employee, error)
	Update(ctx context.Context, req employee.UpdateEmployeeRequest) (*employee.Employee, error)
	Delete(ctx context.Context, id string) error
}

type employeeServiceImpl struct {
	repo employee.EmployeeRepository
	db   *database.DB
}

func NewEmployeeService(repo employee.EmployeeRepository, db *database.DB) EmployeeService {
	return &employeeServiceImpl{repo: repo, db: db}
}

func (s *employeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (*employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	joinDate := time.Now()
	if req.JoinDate != nil {
		joinDate, _ = time.Parse("2006-01-02", *req.JoinDate)
	}

	emp := &employee.Employee{
		EmployeeID: req.EmployeeID,
		Name:       req.Name,
		Department: req.Department,
		Position:   req.Position,
		Email:      req.Email,
		Phone:      req.Phone,
		Status:     employee.StatusActive,
		JoinDate:   joinDate,
	}

	// Uniqueness checks and the insert run in one transaction.
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)

		exists, err := s.repo.ExistsByEmployeeID(txCtx, req.EmployeeID)
		if err != nil {
			return fmt.Errorf("check employee id: %w", err)
		}
		if exists {
			return employee.ErrEmployeeIDExists
		}

		exists, err = s.repo.ExistsByEmail(txCtx, req.Email)
		if err != nil {
			return fmt.Errorf("check email: %w", err)
		}
		if exists {
			return employee.ErrEmailExists
		}

		return s.repo.Create(txCtx, emp)
	})
	if err != nil {
		return nil, err
	}

	return emp, nil
}

func (s *employeeServiceImpl) Get(ctx context.Context, id string) (*employee.Employee, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *employeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	return s.repo.List(ctx, filter)
}

func (s *employeeServiceImpl) ListByDepartment(ctx context.Context, department string) ([]employee.Employee, error) {
	return s.repo.List(ctx, employee.EmployeeFilter{Department: &department})
}

func (s *employeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (*employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Email != emp.Email {
		exists, err := s.repo.ExistsByEmail(ctx, req.Email)
		if err != nil {
			return nil, fmt.Errorf("check email: %w", err)
		}
		if exists {
			return nil, employee.ErrEmailExists
		}
	}

	emp.Name = req.Name
	emp.Department = req.Department
	emp.Position = req.Position
	emp.Email = req.Email
	emp.Phone = req.Phone
	if req.Status != nil {
		emp.Status = employee.EmployeeStatus(*req.Status)
	}

	if err := s.repo.Update(ctx, emp); err != nil {
		return nil, fmt.Errorf("update employee: %w", err)
	}

	return emp, nil
}

func (s *employeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
