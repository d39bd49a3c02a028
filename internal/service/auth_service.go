package service

import (
	"context"
	"errors"

	"acme_dashboard/internal/auth"
)

// AuthService turns provider sign-in failures into the two user-facing
// messages the login form renders. Anything that is not a recognized
// authentication failure propagates to the caller untouched.
type AuthService interface {
	Authenticate(ctx context.Context, prevMessage string, form map[string]string) (token, message string, err error)
}

type authService struct {
	provider auth.Provider
}

// NewAuthService creates a new AuthService
func NewAuthService(provider auth.Provider) AuthService {
	return &authService{provider: provider}
}

// Authenticate delegates to the credentials provider. On success it
// returns the session token and an empty message. On an authentication
// failure it returns the mapped message; infrastructure failures are
// re-raised, never swallowed into a message.
func (s *authService) Authenticate(ctx context.Context, prevMessage string, form map[string]string) (string, string, error) {
	token, err := s.provider.SignIn(ctx, "credentials", form)
	if err != nil {
		var authErr *auth.Error
		if errors.As(err, &authErr) {
			switch authErr.Type {
			case auth.TypeCredentialsSignin:
				return "", "Invalid credentials.", nil
			default:
				return "", "Something went wrong.", nil
			}
		}
		return "", "", err
	}
	return token, "", nil
}
