package employee

import (
	"context"
	"testing"

	"github.com/staffhub-dev/hrm-backend-go/internal/domain/access"
	"github.com/staffhub-dev/hrm-backend-go/internal/domain/employee"
	"github.com/staffhub-dev/hrm-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEmployeeRepo captures the row passed to Create so tests can inspect
// what the service actually stores.
type stubEmployeeRepo struct {
	employee.EmployeeRepository
	created     *employee.Employee
	createCalls int
}

func (s *stubEmployeeRepo) ExistsByCodeOrEmail(ctx context.Context, employeeCode, email string) (bool, bool, error) {
	return false, false, nil
}

func (s *stubEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	s.createCalls++
	newEmployee.ID = "emp-1"
	s.created = &newEmployee
	return newEmployee, nil
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id string, scope access.Scope) (employee.Employee, error) {
	return *s.created, nil
}

func createRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		EmployeeCode: "EMP-001",
		FirstName:    "Ana",
		LastName:     "Silva",
		Email:        "ana.silva@example.com",
	}
}

func TestCreateDefaultsRole(t *testing.T) {
	repo := &stubEmployeeRepo{}
	svc := NewEmployeeService(nil, repo, nil)
	admin := access.Identity{UserID: "u1", IsSuperuser: true}

	resp, err := svc.Create(context.Background(), admin, createRequest())
	require.NoError(t, err)
	require.NotNil(t, repo.created)

	// An omitted role never reaches storage as an empty string.
	assert.Equal(t, employee.RoleEmployee, repo.created.Role)
	assert.Equal(t, employee.RoleEmployee, resp.Role)
}

func TestCreateKeepsExplicitRole(t *testing.T) {
	repo := &stubEmployeeRepo{}
	svc := NewEmployeeService(nil, repo, nil)
	admin := access.Identity{UserID: "u1", IsSuperuser: true}

	req := createRequest()
	req.Role = string(employee.RoleManager)

	_, err := svc.Create(context.Background(), admin, req)
	require.NoError(t, err)
	assert.Equal(t, employee.RoleManager, repo.created.Role)
}

func TestCreateRequiresPrivilege(t *testing.T) {
	repo := &stubEmployeeRepo{}
	svc := NewEmployeeService(nil, repo, nil)
	linked := "e1"
	caller := access.Identity{UserID: "u1", EmployeeID: &linked}

	_, err := svc.Create(context.Background(), caller, createRequest())
	assert.ErrorIs(t, err, user.ErrAdminPrivilegeRequired)
	assert.Zero(t, repo.createCalls)
}

// stubUserRepo answers the email pre-check without a database.
type stubUserRepo struct {
	user.UserRepository
	existing *user.User
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	if s.existing != nil && s.existing.Email == email {
		return *s.existing, nil
	}
	return user.User{}, user.ErrUserNotFound
}

func TestCreateWithPasswordRejectsTakenEmail(t *testing.T) {
	repo := &stubEmployeeRepo{}
	users := &stubUserRepo{existing: &user.User{ID: "u9", Email: "ana.silva@example.com"}}
	svc := NewEmployeeService(nil, repo, users)
	admin := access.Identity{UserID: "u1", IsSuperuser: true}

	req := createRequest()
	password := "correct-horse"
	req.Password = &password

	_, err := svc.Create(context.Background(), admin, req)
	assert.ErrorIs(t, err, user.ErrUserEmailExists)
	assert.Zero(t, repo.createCalls)
}
