package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type Service interface {
	GenerateAdminToken(adminID string, username string, role string) (token string, expiresAt int64, err error)
	GenerateEmployeeToken(employeeID string, code string, name string, department string) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey      string
	expirationTime string
	tokenAuth      *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, expirationTime string) Service {
	return &JWTService{
		secretKey:      secretKey,
		expirationTime: expirationTime,
		tokenAuth:      jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// GenerateAdminToken issues an access token for an administrator account.
func (j *JWTService) GenerateAdminToken(adminID string, username string, role string) (string, int64, error) {
	expDuration, err := time.ParseDuration(j.expirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt := time.Now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"admin_id": adminID,
		"username": username,
		"role":     role,
		"type":     "access",
		"exp":      expiresAt,
	})
	return tokenString, expiresAt, err
}

// GenerateEmployeeToken issues an access token for an employee identified by
// their business code. Name and department ride along so handlers can build
// snapshots without an extra lookup.
func (j *JWTService) GenerateEmployeeToken(employeeID string, code string, name string, department string) (string, int64, error) {
	expDuration, err := time.ParseDuration(j.expirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt := time.Now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"id":          employeeID,
		"employee_id": code,
		"name":        name,
		"department":  department,
		"role":        "employee",
		"type":        "access",
		"exp":         expiresAt,
	})
	return tokenString, expiresAt, err
}
