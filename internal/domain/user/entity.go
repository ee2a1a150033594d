package user

import "time"

// User is the identity record an Employee may be linked to. It exists purely
// for credential verification and token issuance; all HR data hangs off the
// Employee.
type User struct {
	ID           string
	Email        string
	PasswordHash *string
	IsSuperuser  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
