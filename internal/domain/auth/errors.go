package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrEmployeeCodeUnknown = errors.New("employee code does not exist")
	ErrInvalidToken        = errors.New("invalid or missing token")
	ErrSSONotConfigured    = errors.New("google sso is not configured")
	ErrSSOEmailNotAdmin    = errors.New("google account is not linked to an admin")
)
