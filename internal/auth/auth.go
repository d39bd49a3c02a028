package auth

import (
	"context"
	"fmt"

	"acme_dashboard/internal/repository"
	"acme_dashboard/internal/utils"
)

// ErrorType discriminates sign-in failure kinds reported by a provider.
type ErrorType string

const (
	// TypeCredentialsSignin means the supplied credentials were not
	// recognized: unknown email or wrong password.
	TypeCredentialsSignin ErrorType = "CredentialsSignin"
	// TypeCallbackRoute covers sign-in flow failures that are not
	// credential problems.
	TypeCallbackRoute ErrorType = "CallbackRouteError"
)

// Error is a typed sign-in failure. Infrastructure failures (storage,
// connectivity) are NOT wrapped in it; they pass through as plain errors
// so callers cannot mistake them for bad credentials.
type Error struct {
	Type ErrorType
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth error (%s): %v", e.Type, e.Err)
	}
	return fmt.Sprintf("auth error (%s)", e.Type)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Provider performs a credential sign-in against a named provider and
// returns a session token on success.
type Provider interface {
	SignIn(ctx context.Context, provider string, form map[string]string) (string, error)
}

// CredentialsProvider checks an email/password pair against the user
// store and mints a session token.
type CredentialsProvider struct {
	users   repository.UserRepository
	jwtUtil *utils.JWTUtil
}

// NewCredentialsProvider creates a CredentialsProvider
func NewCredentialsProvider(users repository.UserRepository, jwtUtil *utils.JWTUtil) *CredentialsProvider {
	return &CredentialsProvider{users: users, jwtUtil: jwtUtil}
}

// SignIn looks the user up by email and compares the password hash. An
// unknown email and a wrong password are indistinguishable to the caller.
func (p *CredentialsProvider) SignIn(ctx context.Context, provider string, form map[string]string) (string, error) {
	if provider != "credentials" {
		return "", &Error{Type: TypeCallbackRoute, Err: fmt.Errorf("unknown provider %q", provider)}
	}

	email := form["email"]
	password := form["password"]
	if email == "" || password == "" {
		return "", &Error{Type: TypeCredentialsSignin}
	}

	user, err := p.users.FindByEmail(ctx, email)
	if err != nil {
		// Storage failure, not an authentication failure. Propagate as-is.
		return "", fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return "", &Error{Type: TypeCredentialsSignin}
	}

	token, err := p.jwtUtil.GenerateToken(user.Email, user.Profile)
	if err != nil {
		return "", &Error{Type: TypeCallbackRoute, Err: err}
	}
	return token, nil
}
