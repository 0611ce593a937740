package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/passform/passform-go/internal/crypto"
	"github.com/passform/passform-go/internal/model"
)

func newTestAuthService() *AuthService {
	return NewAuthService(
		newMemUserStore(),
		crypto.NewHasher(crypto.HashParams{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}),
		crypto.NewTokenIssuer("test-secret", time.Hour),
	)
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     model.CredentialsRequest
		wantErr error
	}{
		{"empty email", model.CredentialsRequest{Password: "password123"}, ErrEmailRequired},
		{"bad email", model.CredentialsRequest{Email: "not-an-email", Password: "password123"}, ErrEmailInvalid},
		{"empty password", model.CredentialsRequest{Email: "test@example.com"}, ErrPasswordRequired},
	}

	svc := newTestAuthService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Register(context.Background(), tt.req); !errors.Is(err, tt.wantErr) {
				t.Errorf("Register() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	reg, err := svc.Register(ctx, model.CredentialsRequest{Email: " Ada@Example.com ", Password: "hunter22"})
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	if reg.Token == "" || reg.User.Email != "ada@example.com" {
		t.Fatalf("unexpected register response: %+v", reg)
	}

	login, err := svc.Login(ctx, model.CredentialsRequest{Email: "ada@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}
	if login.User.ID != reg.User.ID {
		t.Errorf("Login() user id = %d, want %d", login.User.ID, reg.User.ID)
	}

	me, err := svc.GetUser(ctx, reg.User.ID)
	if err != nil || me.Email != "ada@example.com" {
		t.Errorf("GetUser() = %+v, %v", me, err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()
	req := model.CredentialsRequest{Email: "dup@example.com", Password: "pw"}

	if _, err := svc.Register(ctx, req); err != nil {
		t.Fatalf("first Register() unexpected error: %v", err)
	}
	if _, err := svc.Register(ctx, req); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("second Register() error = %v, want ErrEmailTaken", err)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()
	svc.Register(ctx, model.CredentialsRequest{Email: "a@example.com", Password: "right"})

	tests := []model.CredentialsRequest{
		{Email: "a@example.com", Password: "wrong"},
		{Email: "nobody@example.com", Password: "right"},
	}
	for _, req := range tests {
		if _, err := svc.Login(ctx, req); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Login(%s) error = %v, want ErrInvalidCredentials", req.Email, err)
		}
	}
}
