package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tracklite/task-tracker-api/internal/auth"
	"github.com/tracklite/task-tracker-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthService handles authentication related business logic.
type AuthService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenIssuer
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, tokens *auth.TokenIssuer) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// LoginResult is a signed token together with the identity it encodes.
type LoginResult struct {
	Token string
	User  auth.Claims
}

// Login verifies credentials and issues a caller token. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (*LoginResult, error) {
	record, err := s.userRepo.FindByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(record.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	claims := auth.Claims{
		UserID:       record.ID,
		Role:         record.Role,
		EmployeeID:   record.EmployeeID,
		Email:        record.Email,
		EmployeeName: record.EmployeeName,
	}

	token, err := s.tokens.Issue(claims)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &LoginResult{
		Token: token,
		User:  claims,
	}, nil
}

// VerifyToken validates a bearer token and returns its claims.
func (s *AuthService) VerifyToken(token string) (*auth.Claims, error) {
	return s.tokens.Verify(token)
}
