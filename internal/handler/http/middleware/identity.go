package middleware

import (
	"context"

	"github.com/go-chi/jwtauth/v5"
	"github.com/staffhub-dev/hrm-backend-go/internal/domain/access"
	"github.com/staffhub-dev/hrm-backend-go/internal/domain/auth"
)

// IdentityFromContext rebuilds the caller identity from verified access token
// claims. Both privilege flags are read independently; reconciling them is
// the policy layer's job, not the token's.
func IdentityFromContext(ctx context.Context) (access.Identity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return access.Identity{}, auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return access.Identity{}, auth.ErrInvalidToken
	}

	identity := access.Identity{UserID: userID}

	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	if isSuperuser, ok := claims["is_superuser"].(bool); ok {
		identity.IsSuperuser = isSuperuser
	}
	if isAdmin, ok := claims["is_admin"].(bool); ok {
		identity.EmployeeIsAdmin = isAdmin
	}
	if role, ok := claims["role"].(string); ok {
		identity.Role = role
	}
	if employeeID, ok := claims["employee_id"].(string); ok && employeeID != "" {
		identity.EmployeeID = &employeeID
	}

	return identity, nil
}
