package repository

import (
	"math"

	"github.com/tracklite/task-tracker-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

const taskSelect = "tasks.id, tasks.title, tasks.description, tasks.status, tasks.priority, " +
	"tasks.due_date, tasks.employee_id, employees.name AS employee_name"

func (r *GormTaskRepository) baseQuery() *gorm.DB {
	return r.db.Model(&models.Task{}).
		Select(taskSelect).
		Joins("LEFT JOIN employees ON employees.id = tasks.employee_id")
}

// List retrieves tasks matching the filter. Tasks with a due date come
// first in ascending order, tasks without one last, ties broken by id.
func (r *GormTaskRepository) List(filter TaskFilter) ([]TaskRecord, error) {
	query := r.baseQuery()

	if filter.Status != nil {
		query = query.Where("tasks.status = ?", *filter.Status)
	}
	if filter.EmployeeID != nil {
		query = query.Where("tasks.employee_id = ?", *filter.EmployeeID)
	}

	var records []TaskRecord
	err := query.
		Order("CASE WHEN tasks.due_date IS NULL THEN 1 ELSE 0 END, tasks.due_date ASC, tasks.id ASC").
		Scan(&records).Error
	if err != nil {
		return nil, err
	}

	if records == nil {
		records = []TaskRecord{}
	}
	return records, nil
}

// FindByID finds a task by ID with the joined employee name
func (r *GormTaskRepository) FindByID(id uint64) (*TaskRecord, error) {
	var record TaskRecord
	if err := r.baseQuery().Where("tasks.id = ?", id).Take(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// Create inserts a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// Update applies the given columns to a task row
func (r *GormTaskRepository) Update(id uint64, columns map[string]interface{}) error {
	if len(columns) == 0 {
		return nil
	}
	return r.db.Model(&models.Task{}).Where("id = ?", id).Updates(columns).Error
}

// Delete removes a task, reporting whether a row existed
func (r *GormTaskRepository) Delete(id uint64) (bool, error) {
	result := r.db.Delete(&models.Task{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Summary computes the status rollup over the scoped task set.
func (r *GormTaskRepository) Summary(employeeID *uint64) (*TaskSummary, error) {
	query := r.db.Model(&models.Task{}).Select(
		"COUNT(*) AS total, "+
			"COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS completed, "+
			"COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS in_progress, "+
			"COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS pending",
		models.TaskStatusCompleted, models.TaskStatusInProgress, models.TaskStatusPending,
	)
	if employeeID != nil {
		query = query.Where("employee_id = ?", *employeeID)
	}

	var summary TaskSummary
	if err := query.Scan(&summary).Error; err != nil {
		return nil, err
	}

	if summary.Total > 0 {
		summary.CompletionRate = int(math.Round(float64(summary.Completed) / float64(summary.Total) * 100))
	}
	return &summary, nil
}
