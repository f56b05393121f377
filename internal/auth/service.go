// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agrovia/farmconnect/internal/core"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserTypeMismatch   = errors.New("user type mismatch")
	ErrEmailExists        = errors.New("email already exists")
)

type UserInfo struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	UserType     string
	Phone        string
	Location     string
	CreatedAt    time.Time
}

type CreateUserParams struct {
	Email        string
	PasswordHash string
	Name         string
	UserType     string
	Phone        string
	Location     string
}

type UserProvider interface {
	GetByEmail(ctx context.Context, email string) (*UserInfo, error)
	GetByID(ctx context.Context, id string) (*UserInfo, error)
	Create(ctx context.Context, params CreateUserParams) (*UserInfo, error)
	UpdateLastLogin(ctx context.Context, userID string) error
}

type Service struct {
	jwt          *JWTManager
	userProvider UserProvider
	tokenExpire  time.Duration
}

func NewService(
	jwt *JWTManager,
	userProvider UserProvider,
	tokenExpire time.Duration,
) *Service {
	return &Service{
		jwt:          jwt,
		userProvider: userProvider,
		tokenExpire:  tokenExpire,
	}
}

// Register hashes the password and inserts the account. Duplicate
// detection relies on the store's unique constraint rather than a
// read-then-write check, so concurrent registrations cannot race past
// each other.
func (s *Service) Register(
	ctx context.Context,
	req RegisterRequest,
) (*AuthResponse, error) {
	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.userProvider.Create(ctx, CreateUserParams{
		Email:        req.Email,
		PasswordHash: passwordHash,
		Name:         req.Name,
		UserType:     req.UserType,
		Phone:        req.Phone,
		Location:     req.Location,
	})
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return s.createAuthResponse(user)
}

// Login verifies credentials in constant time. A missing account still
// runs a full hash verification against a dummy hash so that response
// timing does not reveal whether the email exists.
func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
) (*AuthResponse, error) {
	user, err := s.userProvider.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // timing attack prevention - always verify to prevent enumeration
			_, _ = core.VerifyPasswordTimingSafe(req.Password, nil)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	valid, err := core.VerifyPasswordTimingSafe(req.Password, &user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return nil, ErrInvalidCredentials
	}

	if req.UserType != "" && req.UserType != user.UserType {
		return nil, ErrUserTypeMismatch
	}

	//nolint:errcheck // best-effort last login tracking
	_ = s.userProvider.UpdateLastLogin(ctx, user.ID)

	return s.createAuthResponse(user)
}

func (s *Service) GetCurrentUser(
	ctx context.Context,
	userID string,
) (*UserResponse, error) {
	user, err := s.userProvider.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *Service) createAuthResponse(user *UserInfo) (*AuthResponse, error) {
	token, err := s.jwt.CreateToken(user.ID, user.UserType)
	if err != nil {
		return nil, fmt.Errorf("create token: %w", err)
	}

	return &AuthResponse{
		User: toUserResponse(user),
		Token: TokenResponse{
			Token:     token,
			TokenType: "Bearer",
			ExpiresIn: int(s.tokenExpire / time.Second),
			ExpiresAt: time.Now().Add(s.tokenExpire),
		},
	}, nil
}

func toUserResponse(user *UserInfo) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		UserType:  user.UserType,
		Phone:     user.Phone,
		Location:  user.Location,
		CreatedAt: user.CreatedAt,
	}
}
