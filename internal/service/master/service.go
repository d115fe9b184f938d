package master

import (
	"context"
	"fmt"
	"strings"

	"github.com/openleave/leave-backend-go/internal/domain/employee"
	"github.com/openleave/leave-backend-go/internal/domain/master/department"
	"github.com/openleave/leave-backend-go/internal/domain/master/halfday"
	"github.com/openleave/leave-backend-go/internal/domain/master/position"
)

// MasterService manages the lookup data behind the employee and leave forms:
// departments, positions, half-day slot options.
type MasterService interface {
	CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (*department.Department, error)
	GetDepartment(ctx context.Context, id string) (*department.Department, error)
	ListDepartments(ctx context.Context, activeOnly bool) ([]department.Department, error)
	UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) (*department.Department, error)
	DeleteDepartment(ctx context.Context, id string) error

	CreatePosition(ctx context.Context, req position.CreatePositionRequest) (*position.Position, error)
	GetPosition(ctx context.Context, id string) (*position.Position, error)
	ListPositions(ctx context.Context, activeOnly bool) ([]position.Position, error)
	UpdatePosition(ctx context.Context, req position.UpdatePositionRequest) (*position.Position, error)
	DeletePosition(ctx context.Context, id string) error

	CreateHalfDayOption(ctx context.Context, req halfday.CreateHalfDayOptionRequest) (*halfday.HalfDayOption, error)
	ListHalfDayOptions(ctx context.Context, activeOnly bool) ([]halfday.HalfDayOption, error)
	UpdateHalfDayOption(ctx context.Context, req halfday.UpdateHalfDayOptionRequest) (*halfday.HalfDayOption, error)
	DeleteHalfDayOption(ctx context.Context, id string) error
}

type masterServiceImpl struct {
	departmentRepo department.DepartmentRepository
	positionRepo   position.PositionRepository
	halfDayRepo    halfday.HalfDayOptionRepository
	employeeRepo   employee.EmployeeRepository
}

func NewMasterService(
	departmentRepo department.DepartmentRepository,
	positionRepo position.PositionRepository,
	halfDayRepo halfday.HalfDayOptionRepository,
	employeeRepo employee.EmployeeRepository,
) MasterService {
	return &masterServiceImpl{
		departmentRepo: departmentRepo,
		positionRepo:   positionRepo,
		halfDayRepo:    halfDayRepo,
		employeeRepo:   employeeRepo,
	}
}

func (s *masterServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (*department.Department, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	code := strings.ToUpper(req.Code)

	exists, err := s.departmentRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("check department name: %w", err)
	}
	if exists {
		return nil, department.ErrNameExists
	}

	exists, err = s.departmentRepo.ExistsByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("check department code: %w", err)
	}
	if exists {
		return nil, department.ErrCodeExists
	}

	dept := &department.Department{
		Name:        req.Name,
		Code:        code,
		Description: req.Description,
		IsActive:    true,
	}
	if err := s.departmentRepo.Create(ctx, dept); err != nil {
		return nil, fmt.Errorf("create department: %w", err)
	}
	return dept, nil
}

func (s *masterServiceImpl) GetDepartment(ctx context.Context, id string) (*department.Department, error) {
	return s.departmentRepo.GetByID(ctx, id)
}

func (s *masterServiceImpl) ListDepartments(ctx context.Context, activeOnly bool) ([]department.Department, error) {
	return s.departmentRepo.List(ctx, activeOnly)
}

func (s *masterServiceImpl) UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) (*department.Department, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	dept, err := s.departmentRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != dept.Name {
		exists, err := s.departmentRepo.ExistsByName(ctx, req.Name)
		if err != nil {
			return nil, fmt.Errorf("check department name: %w", err)
		}
		if exists {
			return nil, department.ErrNameExists
		}
	}

	dept.Name = req.Name
	dept.Description = req.Description
	if req.IsActive != nil {
		dept.IsActive = *req.IsActive
	}

	if err := s.departmentRepo.Update(ctx, dept); err != nil {
		return nil, fmt.Errorf("update department: %w", err)
	}
	return dept, nil
}

func (s *masterServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	dept, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.employeeRepo.CountByDepartment(ctx, dept.Name)
	if err != nil {
		return fmt.Errorf("count department employees: %w", err)
	}
	if count > 0 {
		return department.ErrDepartmentInUse
	}

	return s.departmentRepo.Delete(ctx, id)
}

func (s *masterServiceImpl) CreatePosition(ctx context.Context, req position.CreatePositionRequest) (*position.Position, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	code := strings.ToUpper(req.Code)

	exists, err := s.positionRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("check position name: %w", err)
	}
	if exists {
		return nil, position.ErrNameExists
	}

	exists, err = s.positionRepo.ExistsByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("check position code: %w", err)
	}
	if exists {
		return nil, position.ErrCodeExists
	}

	pos := &position.Position{
		Name:        req.Name,
		Code:        code,
		Description: req.Description,
		IsActive:    true,
	}
	if err := s.positionRepo.Create(ctx, pos); err != nil {
		return nil, fmt.Errorf("create position: %w", err)
	}
	return pos, nil
}

func (s *masterServiceImpl) GetPosition(ctx context.Context, id string) (*position.Position, error) {
	return s.positionRepo.GetByID(ctx, id)
}

func (s *masterServiceImpl) ListPositions(ctx context.Context, activeOnly bool) ([]position.Position, error) {
	return s.positionRepo.List(ctx, activeOnly)
}

func (s *masterServiceImpl) UpdatePosition(ctx context.Context, req position.UpdatePositionRequest) (*position.Position, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	pos, err := s.positionRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != pos.Name {
		exists, err := s.positionRepo.ExistsByName(ctx, req.Name)
		if err != nil {
			return nil, fmt.Errorf("check position name: %w", err)
		}
		if exists {
			return nil, position.ErrNameExists
		}
	}

	pos.Name = req.Name
	pos.Description = req.Description
	if req.IsActive != nil {
		pos.IsActive = *req.IsActive
	}

	if err := s.positionRepo.Update(ctx, pos); err != nil {
		return nil, fmt.Errorf("update position: %w", err)
	}
	return pos, nil
}

func (s *masterServiceImpl) DeletePosition(ctx context.Context, id string) error {
	pos, err := s.positionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.employeeRepo.CountByPosition(ctx, pos.Name)
	if err != nil {
		return fmt.Errorf("count position employees: %w", err)
	}
	if count > 0 {
		return position.ErrPositionInUse
	}

	return s.positionRepo.Delete(ctx, id)
}

func (s *masterServiceImpl) CreateHalfDayOption(ctx context.Context, req halfday.CreateHalfDayOptionRequest) (*halfday.HalfDayOption, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.halfDayRepo.ExistsByCode(ctx, req.Code)
	if err != nil {
		return nil, fmt.Errorf("check half day option code: %w", err)
	}
	if exists {
		return nil, halfday.ErrCodeExists
	}

	opt := &halfday.HalfDayOption{
		Code:     req.Code,
		Label:    req.Label,
		IsActive: true,
	}
	if err := s.halfDayRepo.Create(ctx, opt); err != nil {
		return nil, fmt.Errorf("create half day option: %w", err)
	}
	return opt, nil
}

func (s *masterServiceImpl) ListHalfDayOptions(ctx context.Context, activeOnly bool) ([]halfday.HalfDayOption, error) {
	return s.halfDayRepo.List(ctx, activeOnly)
}

func (s *masterServiceImpl) UpdateHalfDayOption(ctx context.Context, req halfday.UpdateHalfDayOptionRequest) (*halfday.HalfDayOption, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	opt, err := s.halfDayRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	opt.Label = req.Label
	if req.IsActive != nil {
		opt.IsActive = *req.IsActive
	}

	if err := s.halfDayRepo.Update(ctx, opt); err != nil {
		return nil, fmt.Errorf("update half day option: %w", err)
	}
	return opt, nil
}

func (s *masterServiceImpl) DeleteHalfDayOption(ctx context.Context, id string) error {
	return s.halfDayRepo.Delete(ctx, id)
}
