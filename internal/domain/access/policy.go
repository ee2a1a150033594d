package access

// Identity describes the authenticated caller as carried in access token
// claims. EmployeeID is nil for identities that were never linked to an
// employee record.
type Identity struct {
	UserID          string
	Email           string
	IsSuperuser     bool
	EmployeeID      *string
	EmployeeIsAdmin bool
	Role            string
}

// IsPrivileged reconciles the two independent privilege grants (platform
// superuser and employee admin flag) into a single predicate. Both flags must
// be consulted; they are not canonicalized in storage.
func (i Identity) IsPrivileged() bool {
	return i.IsSuperuser || i.EmployeeIsAdmin
}

// Scope is the row-visibility filter computed for one request. Exactly one of
// three states holds: all rows, rows owned by EmployeeID, or no rows at all.
type Scope struct {
	All        bool
	EmployeeID string
}

// ScopeFor computes the visibility scope for employee-owned collections
// (employees, attendance, leaves, payroll). Privileged callers see
// everything; linked callers see their own rows; everyone else sees nothing.
func ScopeFor(i Identity) Scope {
	if i.IsPrivileged() {
		return Scope{All: true}
	}
	if i.EmployeeID != nil && *i.EmployeeID != "" {
		return Scope{EmployeeID: *i.EmployeeID}
	}
	return Scope{}
}

// IsEmpty reports whether the scope admits no rows. List endpoints short-circuit
// to an empty collection; single-record endpoints report not found.
func (s Scope) IsEmpty() bool {
	return !s.All && s.EmployeeID == ""
}

// Owns reports whether a row owned by employeeID falls inside the scope.
func (s Scope) Owns(employeeID string) bool {
	if s.All {
		return true
	}
	return s.EmployeeID != "" && s.EmployeeID == employeeID
}
