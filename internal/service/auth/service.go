package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub-dev/hrm-backend-go/internal/domain/access"
	"github.com/staffhub-dev/hrm-backend-go/internal/domain/auth"
	"github.com/staffhub-dev/hrm-backend-go/internal/domain/employee"
	"github.com/staffhub-dev/hrm-backend-go/internal/domain/user"
	"github.com/staffhub-dev/hrm-backend-go/internal/pkg/database"
	"github.com/staffhub-dev/hrm-backend-go/internal/pkg/jwt"
	"github.com/staffhub-dev/hrm-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db           *database.DB
	userRepo     user.UserRepository
	employeeRepo employee.EmployeeRepository
	tokenRepo    postgresql.RefreshTokenRepository
	jwt.Service
}

func NewAuthService(db *database.DB, userRepository user.UserRepository, employeeRepository employee.EmployeeRepository, jwtService jwt.Service, tokenRepository postgresql.RefreshTokenRepository) auth.AuthService {
	return &AuthServiceImpl{
		db:           db,
		userRepo:     userRepository,
		employeeRepo: employeeRepository,
		tokenRepo:    tokenRepository,
		Service:      jwtService,
	}
}

// identityFor builds the claims carried by an access token. Both privilege
// flags travel separately; the policy layer reconciles them per request.
func identityFor(u user.User, emp *employee.Employee) access.Identity {
	identity := access.Identity{
		UserID:      u.ID,
		Email:       u.Email,
		IsSuperuser: u.IsSuperuser,
	}
	if emp != nil {
		identity.EmployeeID = &emp.ID
		identity.EmployeeIsAdmin = emp.IsAdmin
		identity.Role = string(emp.Role)
	}
	return identity
}

// Login implements auth.AuthService. The three failure modes are reported
// distinctly: unknown email, employee without a linked user record, and a
// wrong password.
func (a *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse

	employeeData, err := a.employeeRepo.GetByEmail(ctx, loginReq.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.TokenResponse{}, auth.ErrEmployeeNotFound
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	if employeeData.UserID == nil {
		return auth.TokenResponse{}, auth.ErrEmployeeNotLinked
	}

	userData, err := a.userRepo.GetByID(ctx, *employeeData.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrEmployeeNotLinked
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	if userData.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(loginReq.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	identity := identityFor(userData, &employeeData)

	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := postgresql.WithTx(ctx, tx)

		tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(identity)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(userData.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		if err := a.tokenRepo.Create(txCtx, userData.ID, tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, sessionTrackReq); err != nil {
			return fmt.Errorf("failed to save refresh token to database: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	profile := employee.ToEmployeeResponse(employeeData)
	tokenResponse.User = &profile

	return tokenResponse, nil
}

// RefreshToken implements auth.AuthService. The presented token is rotated:
// the old one is revoked and a fresh pair is issued in the same transaction.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse

	userID, err := a.Service.ValidateRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	revoked, err := a.tokenRepo.IsRevoked(ctx, refreshToken)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if revoked {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	userData, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	// A superuser may have no employee record; everyone else does.
	var employeePtr *employee.Employee
	employeeData, err := a.employeeRepo.GetByUserID(ctx, userData.ID)
	switch {
	case err == nil:
		employeePtr = &employeeData
	case errors.Is(err, employee.ErrEmployeeNotFound):
	default:
		return auth.TokenResponse{}, fmt.Errorf("failed to get employee by user id: %w", err)
	}

	identity := identityFor(userData, employeePtr)

	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := postgresql.WithTx(ctx, tx)

		if err := a.tokenRepo.Revoke(txCtx, refreshToken); err != nil {
			return fmt.Errorf("failed to revoke refresh token: %w", err)
		}

		tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(identity)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(userData.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		if err := a.tokenRepo.Create(txCtx, userData.ID, tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, auth.SessionTrackingRequest{}); err != nil {
			return fmt.Errorf("failed to save refresh token to database: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return tokenResponse, nil
}

// ChangePassword implements auth.AuthService. The current password must
// verify before the new one is stored.
func (a *AuthServiceImpl) ChangePassword(ctx context.Context, identity access.Identity, req auth.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	userData, err := a.userRepo.GetByID(ctx, identity.UserID)
	if err != nil {
		return err
	}

	if userData.PasswordHash == nil {
		return auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return auth.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := a.userRepo.UpdatePassword(ctx, userData.ID, string(hash)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// Logout implements auth.AuthService. Revoking an already revoked or unknown
// token is a no-op.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if _, err := a.Service.ValidateRefreshToken(refreshToken); err != nil {
		return auth.ErrInvalidToken
	}

	if err := a.tokenRepo.Revoke(ctx, refreshToken); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}
