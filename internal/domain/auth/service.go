package auth

import (
	"context"

	"github.com/staffhub-dev/hrm-backend-go/internal/domain/access"
)

type AuthService interface {
	// Login exchanges an employee email and password for access and refresh
	// tokens plus the employee profile.
	Login(ctx context.Context, loginReq LoginRequest, sessionTrackReq SessionTrackingRequest) (TokenResponse, error)

	// RefreshToken rotates the access token for a valid, unrevoked refresh
	// token.
	RefreshToken(ctx context.Context, refreshToken string) (TokenResponse, error)

	// Logout revokes the refresh token.
	Logout(ctx context.Context, refreshToken string) error

	// ChangePassword replaces the caller's password after verifying the
	// current one.
	ChangePassword(ctx context.Context, identity access.Identity, req ChangePasswordRequest) error
}
