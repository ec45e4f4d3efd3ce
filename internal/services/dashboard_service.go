package services

import (
	"fmt"

	"github.com/tracklite/task-tracker-api/internal/auth"
	"github.com/tracklite/task-tracker-api/internal/repository"
)

// DashboardService composes the task and employee rollups.
type DashboardService struct {
	taskRepo     repository.TaskRepository
	employeeRepo repository.EmployeeRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(taskRepo repository.TaskRepository, employeeRepo repository.EmployeeRepository) *DashboardService {
	return &DashboardService{
		taskRepo:     taskRepo,
		employeeRepo: employeeRepo,
	}
}

// Overview holds the dashboard aggregates.
type Overview struct {
	Stats     *repository.TaskSummary
	Employees []repository.EmployeeTaskSummary
}

// Overview computes both summaries under the caller's scope. An employee
// caller never sees organization-wide totals; both rollups are pinned to
// their own profile.
func (s *DashboardService) Overview(caller auth.Caller) (*Overview, error) {
	scope, err := auth.SummaryScope(caller)
	if err != nil {
		return nil, err
	}

	stats, err := s.taskRepo.Summary(scope)
	if err != nil {
		return nil, fmt.Errorf("failed to compute task summary: %w", err)
	}

	employees, err := s.employeeRepo.TaskSummary(scope)
	if err != nil {
		return nil, fmt.Errorf("failed to compute employee task summary: %w", err)
	}

	return &Overview{
		Stats:     stats,
		Employees: employees,
	}, nil
}
