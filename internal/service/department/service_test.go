package department

import (
	"context"
	"testing"

	"github.com/staffhub-dev/hrm-backend-go/internal/domain/access"
	"github.com/staffhub-dev/hrm-backend-go/internal/domain/department"
	"github.com/staffhub-dev/hrm-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDepartmentRepo struct {
	department.DepartmentRepository
	createCalls int
	deleteCalls int
}

func (s *stubDepartmentRepo) Create(ctx context.Context, dept department.Department) (department.Department, error) {
	s.createCalls++
	dept.ID = "dep-1"
	return dept, nil
}

func (s *stubDepartmentRepo) Delete(ctx context.Context, id string) error {
	s.deleteCalls++
	return nil
}

func TestDepartmentMutationsRequirePrivilege(t *testing.T) {
	repo := &stubDepartmentRepo{}
	svc := NewDepartmentService(repo)
	plain := access.Identity{UserID: "u1"}

	_, err := svc.Create(context.Background(), plain, department.CreateDepartmentRequest{Name: "Engineering"})
	assert.ErrorIs(t, err, user.ErrAdminPrivilegeRequired)

	err = svc.Delete(context.Background(), plain, "dep-1")
	assert.ErrorIs(t, err, user.ErrAdminPrivilegeRequired)

	assert.Zero(t, repo.createCalls)
	assert.Zero(t, repo.deleteCalls)
}

func TestDepartmentCreatePrivileged(t *testing.T) {
	repo := &stubDepartmentRepo{}
	svc := NewDepartmentService(repo)
	admin := access.Identity{UserID: "u1", IsSuperuser: true}

	resp, err := svc.Create(context.Background(), admin, department.CreateDepartmentRequest{Name: "Engineering"})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.createCalls)
	assert.Equal(t, "dep-1", resp.ID)
	assert.Equal(t, "Engineering", resp.Name)
}
