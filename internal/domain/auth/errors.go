package auth

import "errors"

var (
	// Login failures are deliberately distinguished: unknown email, employee
	// without an identity record, and wrong password are three different
	// conditions.
	ErrEmployeeNotFound    = errors.New("no employee registered with this email")
	ErrEmployeeNotLinked   = errors.New("employee is not linked to a user account")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrRefreshTokenRevoked = errors.New("refresh token has been revoked")
)
