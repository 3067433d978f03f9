package services

import (
	"context"
	"errors"
	"testing"

	errs "github.com/Lalo789/weddingplan/internal/pkg/errors"
	"github.com/Lalo789/weddingplan/internal/types"
)

func TestRegisterCreatesClient(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.auth.Register(ctx, RegisterInput{
		Username: "alice",
		Email:    "  Alice@Example.COM ",
		Password: "secret123",
		FullName: "Alice Cooper",
		Phone:    "5512345678",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Role != types.RoleClient {
		t.Fatalf("role: want=%q got=%q", types.RoleClient, user.Role)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("email not normalized: got=%q", user.Email)
	}
	if !user.Active {
		t.Fatal("new account must be active")
	}
	if user.PasswordHash == "secret123" || user.PasswordHash == "" {
		t.Fatal("password must be stored hashed")
	}
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	base := RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
		FullName: "Alice Cooper",
	}
	tests := []struct {
		name   string
		mutate func(in *RegisterInput)
		field  string
	}{
		{name: "username too short", mutate: func(in *RegisterInput) { in.Username = "al" }, field: "username"},
		{name: "bad email", mutate: func(in *RegisterInput) { in.Email = "not-an-email" }, field: "email"},
		{name: "short password", mutate: func(in *RegisterInput) { in.Password = "12345" }, field: "password"},
		{name: "short full name", mutate: func(in *RegisterInput) { in.FullName = "Al" }, field: "full_name"},
		{name: "short phone", mutate: func(in *RegisterInput) { in.Phone = "123" }, field: "phone"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := base
			tc.mutate(&in)
			_, err := env.auth.Register(ctx, in)
			var verr *errs.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("want validation error, got=%v", err)
			}
			if verr.Field != tc.field {
				t.Fatalf("field: want=%q got=%q", tc.field, verr.Field)
			}
		})
	}
}

func TestRegisterDuplicates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.registerClient(t, "alice")

	_, err := env.auth.Register(ctx, RegisterInput{
		Username: "alice",
		Email:    "other@example.com",
		Password: "secret123",
		FullName: "Second Alice",
	})
	if !errors.Is(err, errs.ErrDuplicateUsername) {
		t.Fatalf("duplicate username: want=ErrDuplicateUsername got=%v", err)
	}

	_, err = env.auth.Register(ctx, RegisterInput{
		Username: "alice2",
		Email:    "ALICE@example.com",
		Password: "secret123",
		FullName: "Second Alice",
	})
	if !errors.Is(err, errs.ErrDuplicateEmail) {
		t.Fatalf("duplicate email: want=ErrDuplicateEmail got=%v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.registerClient(t, "alice")

	got, err := env.auth.Authenticate(ctx, "alice", "secret123")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if got.ID != alice.ID {
		t.Fatalf("user id: want=%s got=%s", alice.ID, got.ID)
	}

	if _, err := env.auth.Authenticate(ctx, "alice", "wrong-password"); !errors.Is(err, errs.ErrInvalidCredentials) {
		t.Fatalf("wrong password: want=ErrInvalidCredentials got=%v", err)
	}
	if _, err := env.auth.Authenticate(ctx, "nobody", "secret123"); !errors.Is(err, errs.ErrInvalidCredentials) {
		t.Fatalf("unknown user: want=ErrInvalidCredentials got=%v", err)
	}
}

func TestAuthenticateDisabledAccount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.registerClient(t, "alice")
	admin := env.createAdmin(t, "admin")

	if _, err := env.account.ToggleActive(ctx, admin, alice.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if _, err := env.auth.Authenticate(ctx, "alice", "secret123"); !errors.Is(err, errs.ErrAccountDisabled) {
		t.Fatalf("disabled account: want=ErrAccountDisabled got=%v", err)
	}
	// Wrong password on a disabled account still reads as bad credentials:
	// the password check runs first.
	if _, err := env.auth.Authenticate(ctx, "alice", "wrong-password"); !errors.Is(err, errs.ErrInvalidCredentials) {
		t.Fatalf("disabled + wrong password: want=ErrInvalidCredentials got=%v", err)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	alice := env.registerClient(t, "alice")

	token, err := env.auth.IssueToken(alice)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	userID, err := env.auth.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if userID != alice.ID {
		t.Fatalf("subject: want=%s got=%s", alice.ID, userID)
	}

	if _, err := env.auth.ParseToken("not-a-token"); !errors.Is(err, errs.ErrInvalidCredentials) {
		t.Fatalf("garbage token: want=ErrInvalidCredentials got=%v", err)
	}
}

func TestUsernameAvailable(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.registerClient(t, "alice")

	tests := []struct {
		name     string
		username string
		want     bool
	}{
		{name: "free", username: "bob", want: true},
		{name: "taken", username: "alice", want: false},
		{name: "too short", username: "ab", want: false},
		{name: "empty", username: "  ", want: false},
		{name: "case sensitive", username: "Alice", want: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ok, reason, err := env.auth.UsernameAvailable(ctx, tc.username)
			if err != nil {
				t.Fatalf("availability: %v", err)
			}
			if ok != tc.want {
				t.Fatalf("available: want=%v got=%v (%s)", tc.want, ok, reason)
			}
			if reason == "" {
				t.Fatal("reason must not be empty")
			}
		})
	}
}

func TestEmailAvailable(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.registerClient(t, "alice")

	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{name: "free", email: "bob@example.com", want: true},
		{name: "taken", email: "alice@example.com", want: false},
		{name: "taken other case", email: "ALICE@Example.com", want: false},
		{name: "invalid", email: "nope", want: false},
		{name: "empty", email: "", want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ok, reason, err := env.auth.EmailAvailable(ctx, tc.email)
			if err != nil {
				t.Fatalf("availability: %v", err)
			}
			if ok != tc.want {
				t.Fatalf("available: want=%v got=%v (%s)", tc.want, ok, reason)
			}
		})
	}
}
