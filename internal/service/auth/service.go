package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/openleave/leave-backend-go/internal/domain/admin"
	"github.com/openleave/leave-backend-go/internal/domain/auth"
	"github.com/openleave/leave-backend-go/internal/domain/employee"
	"github.com/openleave/leave-backend-go/internal/pkg/jwt"
	"github.com/openleave/leave-backend-go/internal/pkg/oauth"
)

type AuthService interface {
	AdminLogin(ctx context.Context, req auth.AdminLoginRequest) (*auth.AdminLoginResponse, error)
	EmployeeLogin(ctx context.Context, req auth.EmployeeLoginRequest) (*auth.EmployeeLoginResponse, error)
	GoogleLoginURL(userAgent string) (string, error)
	GoogleCallback(ctx context.Context, code string) (*auth.AdminLoginResponse, error)
}

type authServiceImpl struct {
	adminRepo    admin.AdminRepository
	employeeRepo employee.EmployeeRepository
	jwtService   jwt.Service
	google       oauth.GoogleService
}

// NewAuthService wires the login flows. google may be nil when SSO is not
// configured; the SSO endpoints then answer with ErrSSONotConfigured.
func NewAuthService(
	adminRepo admin.AdminRepository,
	employeeRepo employee.EmployeeRepository,
	jwtService jwt.Service,
	google oauth.GoogleService,
) AuthService {
	return &authServiceImpl{
		adminRepo:    adminRepo,
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
		google:       google,
	}
}

func (s *authServiceImpl) AdminLogin(ctx context.Context, req auth.AdminLoginRequest) (*auth.AdminLoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	acct, err := s.adminRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, admin.ErrAdminNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup admin: %w", err)
	}
	if !acct.IsActive {
		return nil, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(req.Password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAdminToken(acct.ID, acct.Username, acct.Role)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	// Best effort; a failed timestamp write must not block the login.
	_ = s.adminRepo.UpdateLastLogin(ctx, acct.ID)

	return &auth.AdminLoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Admin:     *acct,
	}, nil
}

func (s *authServiceImpl) EmployeeLogin(ctx context.Context, req auth.EmployeeLoginRequest) (*auth.EmployeeLoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.employeeRepo.GetActiveByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, auth.ErrEmployeeCodeUnknown
		}
		return nil, fmt.Errorf("lookup employee: %w", err)
	}

	token, expiresAt, err := s.jwtService.GenerateEmployeeToken(emp.ID, emp.EmployeeID, emp.Name, emp.Department)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &auth.EmployeeLoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Employee:  *emp,
	}, nil
}

func (s *authServiceImpl) GoogleLoginURL(userAgent string) (string, error) {
	if s.google == nil {
		return "", auth.ErrSSONotConfigured
	}
	return s.google.LoginURL(userAgent), nil
}

func (s *authServiceImpl) GoogleCallback(ctx context.Context, code string) (*auth.AdminLoginResponse, error) {
	if s.google == nil {
		return nil, auth.ErrSSONotConfigured
	}

	profile, err := s.google.Authenticate(ctx, code)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}
	if !profile.VerifiedEmail {
		return nil, auth.ErrSSOEmailNotAdmin
	}

	acct, err := s.adminRepo.GetByEmail(ctx, profile.Email)
	if err != nil {
		if errors.Is(err, admin.ErrAdminNotFound) {
			return nil, auth.ErrSSOEmailNotAdmin
		}
		return nil, fmt.Errorf("lookup admin: %w", err)
	}
	if !acct.IsActive {
		return nil, auth.ErrSSOEmailNotAdmin
	}

	accessToken, expiresAt, err := s.jwtService.GenerateAdminToken(acct.ID, acct.Username, acct.Role)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	_ = s.adminRepo.UpdateLastLogin(ctx, acct.ID)

	return &auth.AdminLoginResponse{
		Token:     accessToken,
		ExpiresAt: expiresAt,
		Admin:     *acct,
	}, nil
}
