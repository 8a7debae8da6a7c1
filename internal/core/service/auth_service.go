package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mercadillo/storefront/internal/core/domain"
	"github.com/mercadillo/storefront/internal/core/ports"
	"github.com/mercadillo/storefront/internal/core/token"
)

// enumerationGuard is a throwaway bcrypt digest compared against when the
// username does not exist, so unknown users cost roughly the same as a wrong
// password and the response time does not leak which one it was.
var enumerationGuard = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// AuthService implements registration and login.
type AuthService struct {
	users  ports.UserRepository
	tokens *token.Issuer
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens *token.Issuer, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, logger: logger}
}

// Register hashes the password and persists a new account. A username
// collision surfaces as domain.ErrDuplicateUser; the plaintext password is
// never stored or logged.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Username == "" || input.Password == "" {
		return nil, domain.ErrMissingCredentials
	}
	if !domain.ValidRole(input.Role) {
		return nil, &domain.ValidationError{Fields: []string{"rol must be admin or standard"}}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		DisplayName:  input.DisplayName,
		Email:        input.Email,
		Age:          input.Age,
		Role:         input.Role,
		AvatarRef:    input.AvatarRef,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Str("role", created.Role).Msg("user registered")
	return created, nil
}

// Login verifies the credentials and mints a session token. Unknown username
// and wrong password both come back as domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrMissingCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(enumerationGuard, []byte(password))
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("username", user.Username).Msg("login succeeded")
	return signed, user, nil
}
