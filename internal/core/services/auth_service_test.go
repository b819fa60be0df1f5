package services

import (
	"context"
	"errors"
	"testing"

	"aw-society/internal/adapters/persistence/models"
	"aw-society/internal/config"
	"aw-society/internal/core/domain"
	"aw-society/internal/pkg/jwt"
	"aw-society/internal/pkg/password"
)

func newAuthFixture(t *testing.T) (*AuthService, *fakeMemberRepo, *config.Config) {
	t.Helper()
	members := newFakeMemberRepo()
	cfg := &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", AccessTokenMins: 15},
	}

	hashed, err := password.Hash("correct-horse")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	m := models.NewMember(domain.RoleMember)
	m.RegNo = "AS-00001"
	m.Name = "Asha Verma"
	m.Email = "asha@example.com"
	m.Password = hashed
	members.add(m)

	return NewAuthService(members, cfg), members, cfg
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	svc, _, cfg := newAuthFixture(t)

	out, err := svc.Login(context.Background(), "asha@example.com", "correct-horse")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if out.AccessToken == "" {
		t.Fatal("empty access token")
	}
	if out.Member == nil || out.Member.Email != "asha@example.com" {
		t.Fatalf("member payload = %+v", out.Member)
	}

	claims, err := jwt.ValidateAccessToken(out.AccessToken, cfg.JWT.Secret)
	if err != nil {
		t.Fatalf("token does not validate: %v", err)
	}
	if claims.Email != "asha@example.com" || claims.Role != string(domain.RoleMember) {
		t.Errorf("claims = %+v", claims)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), "asha@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want invalid credentials", err)
	}
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	// Unknown email and wrong password must be indistinguishable.
	_, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want invalid credentials", err)
	}
}
