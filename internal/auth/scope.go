// Package auth holds the caller identity and the scope derivation rules
// applied to every task and employee read.
package auth

import (
	"errors"

	"github.com/tracklite/task-tracker-api/internal/models"
	"github.com/tracklite/task-tracker-api/internal/repository"
)

// ErrMissingEmployeeLink is returned when an employee-role caller has no
// associated employee profile. Such an account is a data-integrity
// violation and must be rejected rather than silently granted full access.
var ErrMissingEmployeeLink = errors.New("employee account has no linked employee profile")

// Caller is the authenticated identity attached to a request.
type Caller struct {
	UserID     uint64
	Role       models.UserRole
	EmployeeID *uint64
}

// ScopeTaskFilter derives the effective task filter for a caller.
//
// Employee-role callers always have the employee constraint pinned to
// their own profile, overriding anything the client supplied. Admin
// filters pass through unchanged.
func ScopeTaskFilter(caller Caller, requested repository.TaskFilter) (repository.TaskFilter, error) {
	if caller.Role != models.RoleEmployee {
		return requested, nil
	}
	if caller.EmployeeID == nil {
		return repository.TaskFilter{}, ErrMissingEmployeeLink
	}
	requested.EmployeeID = caller.EmployeeID
	return requested, nil
}

// ScopeEmployeeFilter derives the effective employee filter for a caller.
// Employees see only their own record; admins see whatever they asked for.
func ScopeEmployeeFilter(caller Caller, requested repository.EmployeeFilter) (repository.EmployeeFilter, error) {
	if caller.Role != models.RoleEmployee {
		return requested, nil
	}
	if caller.EmployeeID == nil {
		return repository.EmployeeFilter{}, ErrMissingEmployeeLink
	}
	requested.EmployeeID = caller.EmployeeID
	return requested, nil
}

// SummaryScope derives the aggregation scope for dashboard queries: nil
// (organization-wide) for admins, the caller's own employee id otherwise.
func SummaryScope(caller Caller) (*uint64, error) {
	if caller.Role != models.RoleEmployee {
		return nil, nil
	}
	if caller.EmployeeID == nil {
		return nil, ErrMissingEmployeeLink
	}
	return caller.EmployeeID, nil
}
