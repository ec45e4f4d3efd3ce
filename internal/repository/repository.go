package repository

import (
	"time"

	"github.com/tracklite/task-tracker-api/internal/models"
)

// TaskFilter holds filtering options for listing tasks. Both constraints
// are conjunctive when present.
type TaskFilter struct {
	Status     *models.TaskStatus
	EmployeeID *uint64
}

// EmployeeFilter restricts the employee list, at most to a single record.
type EmployeeFilter struct {
	EmployeeID *uint64
}

// TaskRecord is a task row shaped for presentation: EmployeeName is the
// joined display field and is nil for unassigned tasks or dangling
// employee references.
type TaskRecord struct {
	ID           uint64              `json:"id"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Status       models.TaskStatus   `json:"status"`
	Priority     models.TaskPriority `json:"priority"`
	DueDate      *time.Time          `json:"dueDate"`
	EmployeeID   *uint64             `json:"employeeId"`
	EmployeeName *string             `json:"employeeName"`
}

// TaskSummary is the status rollup over a task scope. The counts always
// satisfy Total == Completed + InProgress + Pending.
type TaskSummary struct {
	Total          int64 `json:"total"`
	Completed      int64 `json:"completed"`
	InProgress     int64 `json:"inProgress"`
	Pending        int64 `json:"pending"`
	CompletionRate int   `json:"completionRate"`
}

// EmployeeTaskSummary is the per-employee completed/total rollup.
// Employees with no tasks appear with zero counts.
type EmployeeTaskSummary struct {
	ID             uint64 `json:"id"`
	Name           string `json:"name"`
	TotalTasks     int64  `json:"totalTasks"`
	CompletedTasks int64  `json:"completedTasks"`
}

// CredentialRecord is a login lookup row with the joined employee name.
type CredentialRecord struct {
	ID           uint64
	Email        string
	PasswordHash string
	Role         models.UserRole
	EmployeeID   *uint64
	EmployeeName *string
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// List retrieves tasks matching the filter, ordered by due date
	// (nulls last) and then by id
	List(filter TaskFilter) ([]TaskRecord, error)

	// FindByID finds a task by ID with the joined employee name
	FindByID(id uint64) (*TaskRecord, error)

	// Create inserts a new task
	Create(task *models.Task) error

	// Update applies the given columns to a task row
	Update(id uint64, columns map[string]interface{}) error

	// Delete removes a task, reporting whether a row existed
	Delete(id uint64) (bool, error)

	// Summary computes the status rollup, optionally scoped to one employee
	Summary(employeeID *uint64) (*TaskSummary, error)
}

// EmployeeRepository defines the interface for employee data access
type EmployeeRepository interface {
	// List retrieves employees matching the filter, ordered by name
	List(filter EmployeeFilter) ([]models.Employee, error)

	// FindByID finds an employee by ID
	FindByID(id uint64) (*models.Employee, error)

	// Create inserts a new employee
	Create(employee *models.Employee) error

	// Update applies the given columns to an employee row
	Update(id uint64, columns map[string]interface{}) error

	// Delete removes an employee, reporting whether a row existed.
	// Referencing tasks are left untouched.
	Delete(id uint64) (bool, error)

	// TaskSummary computes per-employee task rollups via an outer join,
	// optionally scoped to one employee
	TaskSummary(employeeID *uint64) ([]EmployeeTaskSummary, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// FindByEmail looks up login credentials with the joined employee name
	FindByEmail(email string) (*CredentialRecord, error)

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// Create inserts a new user
	Create(user *models.User) error
}
