package service

import (
	"net/mail"
	"time"

	"go.uber.org/zap"

	"go-enterprise-ops/internal/apperr"
	"go-enterprise-ops/internal/model"
	"go-enterprise-ops/internal/repository"
	"go-enterprise-ops/pkg/jwt"
)

// invalidCredentials is shared by every sign-in failure mode so responses
// carry no user-existence oracle.
const invalidCredentials = "Invalid credentials"

type AuthService interface {
	SignIn(email, password string) (*SignInResponse, error)
	SignOut(token string) error
}

type SignInResponse struct {
	Employee  model.EmployeeResponse `json:"employee"`
	Token     string                 `json:"token"`
	ExpiresAt time.Time              `json:"expires_at"`
}

type authService struct {
	employeeRepo repository.EmployeeRepository
	blacklist    *TokenBlacklist
	log          *zap.SugaredLogger
}

func NewAuthService(employeeRepo repository.EmployeeRepository, blacklist *TokenBlacklist, log *zap.SugaredLogger) AuthService {
	return &authService{
		employeeRepo: employeeRepo,
		blacklist:    blacklist,
		log:          log,
	}
}

func (s *authService) SignIn(email, password string) (*SignInResponse, error) {
	if email == "" || password == "" {
		return nil, apperr.BadRequest("Email and password are required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, apperr.BadRequest("Please provide a valid email address")
	}

	employee, err := s.employeeRepo.FindActiveByEmail(email)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		s.log.Warnw("failed sign-in attempt", "email", email)
		return nil, apperr.Unauthorized(invalidCredentials)
	}

	if !employee.CheckPassword(password) {
		s.log.Warnw("invalid password", "employee_id", employee.EmployeeID)
		return nil, apperr.Unauthorized(invalidCredentials)
	}

	token, expiresAt, err := jwt.GenerateToken(employee.EmployeeID, employee.Role, employee.Status)
	if err != nil {
		return nil, err
	}

	s.log.Infow("employee signed in", "employee_id", employee.EmployeeID)
	return &SignInResponse{
		Employee:  employee.ToResponse(),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// SignOut revokes the token for exactly its remaining lifetime. The expiry is
// read without signature verification; a token that fails to even decode is
// rejected.
func (s *authService) SignOut(token string) error {
	expiresAt, err := jwt.DecodeExpiry(token)
	if err != nil {
		return apperr.Unauthorized("Invalid token")
	}

	if ttl := time.Until(expiresAt); ttl > 0 {
		s.blacklist.Revoke(token, ttl)
	}
	return nil
}
