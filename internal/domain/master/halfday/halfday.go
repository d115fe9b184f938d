package halfday

import (
	"context"
	"errors"
	"time"

	"github.com/openleave/leave-backend-go/internal/pkg/validator"
)

// HalfDayOption describes a selectable half-day slot, e.g. morning or
// afternoon, offered to employees filing half-day leave.
type HalfDayOption struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Label     string    `json:"label"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

var validCodes = []string{"morning", "afternoon", "evening"}

var (
	ErrOptionNotFound = errors.New("half day option not found")
	ErrCodeExists     = errors.New("half day option code already exists")
)

type CreateHalfDayOptionRequest struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

func (r *CreateHalfDayOptionRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Code, validCodes) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code must be morning, afternoon or evening",
		})
	}
	if validator.IsEmpty(r.Label) {
		errs = append(errs, validator.ValidationError{
			Field:   "label",
			Message: "label is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateHalfDayOptionRequest struct {
	ID       string `json:"-"`
	Label    string `json:"label"`
	IsActive *bool  `json:"isActive,omitempty"`
}

func (r *UpdateHalfDayOptionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if validator.IsEmpty(r.Label) {
		errs = append(errs, validator.ValidationError{
			Field:   "label",
			Message: "label is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HalfDayOptionRepository interface {
	Create(ctx context.Context, opt *HalfDayOption) error
	GetByID(ctx context.Context, id string) (*HalfDayOption, error)
	List(ctx context.Context, activeOnly bool) ([]HalfDayOption, error)
	Update(ctx context.Context, opt *HalfDayOption) error
	Delete(ctx context.Context, id string) error
	ExistsByCode(ctx context.Context, code string) (bool, error)
}
