package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestIsPrivileged(t *testing.T) {
	cases := []struct {
		name     string
		identity Identity
		want     bool
	}{
		{"superuser only", Identity{IsSuperuser: true}, true},
		{"employee admin only", Identity{EmployeeIsAdmin: true, EmployeeID: strPtr("e1")}, true},
		{"both flags", Identity{IsSuperuser: true, EmployeeIsAdmin: true}, true},
		{"plain employee", Identity{EmployeeID: strPtr("e1")}, false},
		{"no employee, no flags", Identity{}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.identity.IsPrivileged())
		})
	}
}

func TestScopeFor_Privileged(t *testing.T) {
	scope := ScopeFor(Identity{IsSuperuser: true})
	assert.True(t, scope.All)
	assert.False(t, scope.IsEmpty())
	assert.True(t, scope.Owns("any-employee"))

	// Employee admin flag grants the same scope even without superuser
	scope = ScopeFor(Identity{EmployeeID: strPtr("e7"), EmployeeIsAdmin: true})
	assert.True(t, scope.All)
	assert.True(t, scope.Owns("other-employee"))
}

func TestScopeFor_LinkedEmployee(t *testing.T) {
	scope := ScopeFor(Identity{EmployeeID: strPtr("e7")})
	assert.False(t, scope.All)
	assert.False(t, scope.IsEmpty())
	assert.Equal(t, "e7", scope.EmployeeID)
	assert.True(t, scope.Owns("e7"))
	assert.False(t, scope.Owns("e8"))
}

func TestScopeFor_UnlinkedCaller(t *testing.T) {
	// No linked employee and no privilege: fails open to nothing, not to error
	scope := ScopeFor(Identity{UserID: "u1"})
	assert.True(t, scope.IsEmpty())
	assert.False(t, scope.Owns("e7"))

	// Empty-string employee id behaves the same as nil
	scope = ScopeFor(Identity{UserID: "u1", EmployeeID: strPtr("")})
	assert.True(t, scope.IsEmpty())
}
