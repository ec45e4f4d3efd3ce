package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tracklite/task-tracker-api/internal/models"
	"github.com/tracklite/task-tracker-api/internal/repository"
)

func uint64Ptr(v uint64) *uint64 {
	return &v
}

func TestScopeTaskFilter_AdminPassesThrough(t *testing.T) {
	status := models.TaskStatusCompleted
	requested := repository.TaskFilter{
		Status:     &status,
		EmployeeID: uint64Ptr(7),
	}

	caller := Caller{UserID: 1, Role: models.RoleAdmin}

	effective, err := ScopeTaskFilter(caller, requested)
	assert.NoError(t, err)
	assert.Equal(t, requested, effective)
}

func TestScopeTaskFilter_AdminWithoutFilterSeesAll(t *testing.T) {
	caller := Caller{UserID: 1, Role: models.RoleAdmin}

	effective, err := ScopeTaskFilter(caller, repository.TaskFilter{})
	assert.NoError(t, err)
	assert.Nil(t, effective.Status)
	assert.Nil(t, effective.EmployeeID)
}

func TestScopeTaskFilter_EmployeeIsPinnedToOwnProfile(t *testing.T) {
	caller := Caller{UserID: 2, Role: models.RoleEmployee, EmployeeID: uint64Ptr(3)}

	// A client-supplied employee filter must never widen the scope.
	requested := repository.TaskFilter{EmployeeID: uint64Ptr(99)}

	effective, err := ScopeTaskFilter(caller, requested)
	assert.NoError(t, err)
	assert.Equal(t, uint64(3), *effective.EmployeeID)
}

func TestScopeTaskFilter_EmployeeKeepsStatusFilter(t *testing.T) {
	status := models.TaskStatusPending
	caller := Caller{UserID: 2, Role: models.RoleEmployee, EmployeeID: uint64Ptr(3)}

	effective, err := ScopeTaskFilter(caller, repository.TaskFilter{Status: &status})
	assert.NoError(t, err)
	assert.Equal(t, status, *effective.Status)
	assert.Equal(t, uint64(3), *effective.EmployeeID)
}

func TestScopeTaskFilter_EmployeeIDZeroIsValid(t *testing.T) {
	// Zero is a legitimate id and must not be confused with "absent".
	caller := Caller{UserID: 2, Role: models.RoleEmployee, EmployeeID: uint64Ptr(0)}

	effective, err := ScopeTaskFilter(caller, repository.TaskFilter{})
	assert.NoError(t, err)
	assert.NotNil(t, effective.EmployeeID)
	assert.Equal(t, uint64(0), *effective.EmployeeID)
}

func TestScopeTaskFilter_EmployeeWithoutProfileIsRejected(t *testing.T) {
	caller := Caller{UserID: 2, Role: models.RoleEmployee}

	_, err := ScopeTaskFilter(caller, repository.TaskFilter{})
	assert.ErrorIs(t, err, ErrMissingEmployeeLink)
}

func TestScopeEmployeeFilter_EmployeeSeesOnlySelf(t *testing.T) {
	caller := Caller{UserID: 2, Role: models.RoleEmployee, EmployeeID: uint64Ptr(5)}

	effective, err := ScopeEmployeeFilter(caller, repository.EmployeeFilter{})
	assert.NoError(t, err)
	assert.Equal(t, uint64(5), *effective.EmployeeID)
}

func TestScopeEmployeeFilter_EmployeeWithoutProfileIsRejected(t *testing.T) {
	caller := Caller{UserID: 2, Role: models.RoleEmployee}

	_, err := ScopeEmployeeFilter(caller, repository.EmployeeFilter{})
	assert.ErrorIs(t, err, ErrMissingEmployeeLink)
}

func TestSummaryScope(t *testing.T) {
	adminScope, err := SummaryScope(Caller{UserID: 1, Role: models.RoleAdmin})
	assert.NoError(t, err)
	assert.Nil(t, adminScope)

	employeeScope, err := SummaryScope(Caller{UserID: 2, Role: models.RoleEmployee, EmployeeID: uint64Ptr(4)})
	assert.NoError(t, err)
	assert.Equal(t, uint64(4), *employeeScope)

	_, err = SummaryScope(Caller{UserID: 3, Role: models.RoleEmployee})
	assert.ErrorIs(t, err, ErrMissingEmployeeLink)
}
