package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tracklite/task-tracker-api/internal/auth"
	"github.com/tracklite/task-tracker-api/internal/models"
	"github.com/tracklite/task-tracker-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound = errors.New("task not found")
)

// TaskService handles task business logic
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// TaskPayload is an explicit optional-field task payload: a nil field was
// absent from the request, a Set flag with a nil value means an explicit
// null. Invalid flags mark fields that arrived with an unusable type and
// are folded into the aggregated validation result.
type TaskPayload struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *string

	DueDate        *time.Time
	DueDateSet     bool
	DueDateInvalid bool

	EmployeeID        *uint64
	EmployeeIDSet     bool
	EmployeeIDInvalid bool
}

func validateTaskPayload(p TaskPayload, isUpdate bool) []string {
	var violations []string

	if !isUpdate || p.Title != nil {
		if p.Title == nil || strings.TrimSpace(*p.Title) == "" {
			violations = append(violations, "title is required")
		}
	}
	if p.Status != nil && !models.TaskStatus(*p.Status).IsValid() {
		violations = append(violations, fmt.Sprintf("status must be one of %s", joinStatuses()))
	}
	if p.Priority != nil && !models.TaskPriority(*p.Priority).IsValid() {
		violations = append(violations, fmt.Sprintf("priority must be one of %s", joinPriorities()))
	}
	if p.EmployeeIDInvalid {
		violations = append(violations, "employeeId must be numeric")
	}
	if p.DueDateInvalid {
		violations = append(violations, "dueDate must be a valid date")
	}

	return violations
}

func joinStatuses() string {
	parts := make([]string, len(models.TaskStatuses))
	for i, s := range models.TaskStatuses {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}

func joinPriorities() string {
	parts := make([]string, len(models.TaskPriorities))
	for i, p := range models.TaskPriorities {
		parts[i] = string(p)
	}
	return strings.Join(parts, ", ")
}

// ListTasks returns tasks visible to the caller. The caller's role decides
// the effective filter; client-supplied constraints never widen it.
func (s *TaskService) ListTasks(caller auth.Caller, requested repository.TaskFilter) ([]repository.TaskRecord, error) {
	scoped, err := auth.ScopeTaskFilter(caller, requested)
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.List(scoped)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// GetTask returns a single task with its joined employee name.
func (s *TaskService) GetTask(id uint64) (*repository.TaskRecord, error) {
	record, err := s.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return record, nil
}

// CreateTask validates the payload, applies defaults and inserts the task.
func (s *TaskService) CreateTask(p TaskPayload) (*repository.TaskRecord, error) {
	if violations := validateTaskPayload(p, false); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	task := models.Task{
		Title:      *p.Title,
		Status:     models.TaskStatusPending,
		Priority:   models.TaskPriorityMedium,
		DueDate:    p.DueDate,
		EmployeeID: p.EmployeeID,
	}
	if p.Description != nil {
		task.Description = *p.Description
	}
	if p.Status != nil {
		task.Status = models.TaskStatus(*p.Status)
	}
	if p.Priority != nil {
		task.Priority = models.TaskPriority(*p.Priority)
	}

	if err := s.taskRepo.Create(&task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	record, err := s.taskRepo.FindByID(task.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload task: %w", err)
	}
	return record, nil
}

// UpdateTask applies only the fields present in the payload. Absent fields
// keep their prior value; an invalid payload never touches the row.
func (s *TaskService) UpdateTask(id uint64, p TaskPayload) (*repository.TaskRecord, error) {
	if violations := validateTaskPayload(p, true); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	if _, err := s.taskRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	columns := map[string]interface{}{}
	if p.Title != nil {
		columns["title"] = *p.Title
	}
	if p.Description != nil {
		columns["description"] = *p.Description
	}
	if p.Status != nil {
		columns["status"] = *p.Status
	}
	if p.Priority != nil {
		columns["priority"] = *p.Priority
	}
	if p.DueDateSet {
		columns["due_date"] = p.DueDate
	}
	if p.EmployeeIDSet {
		columns["employee_id"] = p.EmployeeID
	}

	if err := s.taskRepo.Update(id, columns); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	record, err := s.taskRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload task: %w", err)
	}
	return record, nil
}

// DeleteTask removes a task, reporting whether a row existed.
func (s *TaskService) DeleteTask(id uint64) (bool, error) {
	deleted, err := s.taskRepo.Delete(id)
	if err != nil {
		return false, fmt.Errorf("failed to delete task: %w", err)
	}
	return deleted, nil
}
