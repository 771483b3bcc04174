package service

import (
	"context"
	"errors"
	"fmt"

	"snipr-be/internal/apperrors"
	"snipr-be/internal/hash"
	"snipr-be/internal/jwt"
	"snipr-be/internal/models"
	"snipr-be/internal/repository"
)

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Signup(ctx context.Context, req *models.SignupRequest) (*models.SignupResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	ResolveIdentity(ctx context.Context, token string) (*models.Identity, error)
}

type authService struct {
	userRepo   repository.UserRepository
	hasher     hash.PasswordHasher
	jwtService *jwt.JWTService
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, hasher hash.PasswordHasher, jwtService *jwt.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		hasher:     hasher,
		jwtService: jwtService,
	}
}

// Signup creates a new user account and logs it in. The existence check
// is only an early exit; two concurrent signups with the same email race
// past it and the second one fails on the store's unique constraint.
func (s *authService) Signup(ctx context.Context, req *models.SignupRequest) (*models.SignupResponse, error) {
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrEmailTaken
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Create(ctx, req.Email, passwordHash, req.FirstName, req.LastName)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailTaken) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.SignupResponse{
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		AccessToken: token,
	}, nil
}

// Login authenticates a user and returns a fresh token. Unknown email
// and wrong password report the same error so callers cannot tell which
// one happened.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !s.hasher.Check(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.LoginResponse{
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		AccessToken: token,
	}, nil
}

// ResolveIdentity validates a bearer token and re-fetches the user from
// the store, so a token for a user that no longer exists is rejected.
// Returns a sanitized identity with the password hash stripped.
func (s *authService) ResolveIdentity(ctx context.Context, token string) (*models.Identity, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, apperrors.ErrUnauthenticated
	}

	user, err := s.userRepo.FindByEmail(ctx, claims.Email)
	if err != nil {
		return nil, apperrors.ErrUnauthenticated
	}

	return &models.Identity{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}, nil
}
