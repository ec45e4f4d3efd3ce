package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tracklite/task-tracker-api/internal/auth"
	"github.com/tracklite/task-tracker-api/internal/models"
	"github.com/tracklite/task-tracker-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
)

// EmployeeService handles employee business logic
type EmployeeService struct {
	employeeRepo repository.EmployeeRepository
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(employeeRepo repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo}
}

// EmployeePayload is an optional-field employee payload; nil means the
// field was absent from the request.
type EmployeePayload struct {
	Name       *string
	Role       *string
	Department *string
	Email      *string
}

func validateEmployeePayload(p EmployeePayload) []string {
	var violations []string
	if p.Name == nil || strings.TrimSpace(*p.Name) == "" {
		violations = append(violations, "name is required")
	}
	if p.Role == nil || strings.TrimSpace(*p.Role) == "" {
		violations = append(violations, "role is required")
	}
	if p.Department == nil || strings.TrimSpace(*p.Department) == "" {
		violations = append(violations, "department is required")
	}
	if p.Email == nil || strings.TrimSpace(*p.Email) == "" {
		violations = append(violations, "email is required")
	}
	return violations
}

// ListEmployees returns employees visible to the caller: whatever the
// filter asks for when called by an admin, only the caller's own record
// for employee accounts.
func (s *EmployeeService) ListEmployees(caller auth.Caller, requested repository.EmployeeFilter) ([]models.Employee, error) {
	scoped, err := auth.ScopeEmployeeFilter(caller, requested)
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.List(scoped)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// CreateEmployee validates the payload and inserts the employee.
func (s *EmployeeService) CreateEmployee(p EmployeePayload) (*models.Employee, error) {
	if violations := validateEmployeePayload(p); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	employee := models.Employee{
		Name:       *p.Name,
		Role:       *p.Role,
		Department: *p.Department,
		Email:      *p.Email,
	}
	if err := s.employeeRepo.Create(&employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	return &employee, nil
}

// UpdateEmployee applies only the fields present in the payload.
func (s *EmployeeService) UpdateEmployee(id uint64, p EmployeePayload) (*models.Employee, error) {
	if _, err := s.employeeRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}

	columns := map[string]interface{}{}
	if p.Name != nil {
		columns["name"] = *p.Name
	}
	if p.Role != nil {
		columns["role"] = *p.Role
	}
	if p.Department != nil {
		columns["department"] = *p.Department
	}
	if p.Email != nil {
		columns["email"] = *p.Email
	}

	if err := s.employeeRepo.Update(id, columns); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	employee, err := s.employeeRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload employee: %w", err)
	}
	return employee, nil
}

// DeleteEmployee removes an employee, reporting whether a row existed.
// Tasks assigned to the employee are intentionally left untouched.
func (s *EmployeeService) DeleteEmployee(id uint64) (bool, error) {
	deleted, err := s.employeeRepo.Delete(id)
	if err != nil {
		return false, fmt.Errorf("failed to delete employee: %w", err)
	}
	return deleted, nil
}
