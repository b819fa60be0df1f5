package services

import (
	"context"
	"errors"

	"aw-society/internal/adapters/persistence/models"
	"aw-society/internal/adapters/persistence/repositories"
	"aw-society/internal/config"
	"aw-society/internal/core/domain"
	"aw-society/internal/pkg/jwt"
	"aw-society/internal/pkg/password"
)

// AuthService handles login. The core trusts this layer to have authorised
// the caller; it carries no financial logic.
type AuthService struct {
	memberRepo repositories.MemberRepository
	cfg        *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(memberRepo repositories.MemberRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		memberRepo: memberRepo,
		cfg:        cfg,
	}
}

// LoginOutput represents a successful login
type LoginOutput struct {
	AccessToken string                 `json:"access_token"`
	Member      *models.MemberResponse `json:"member"`
}

// Login verifies credentials and issues an access token
func (s *AuthService) Login(ctx context.Context, email, pass string) (*LoginOutput, error) {
	member, err := s.memberRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(pass, member.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.GenerateAccessToken(
		member.ID,
		member.RegNo,
		member.Email,
		member.Role,
		s.cfg.JWT.Secret,
		s.cfg.JWT.AccessTokenMins,
	)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		AccessToken: token,
		Member:      member.ToResponse(),
	}, nil
}
