package repository

import (
	"github.com/tracklite/task-tracker-api/internal/models"
	"gorm.io/gorm"
)

// GormEmployeeRepository is a GORM implementation of EmployeeRepository
type GormEmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new EmployeeRepository
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// List retrieves employees matching the filter, ordered alphabetically
func (r *GormEmployeeRepository) List(filter EmployeeFilter) ([]models.Employee, error) {
	query := r.db.Model(&models.Employee{})
	if filter.EmployeeID != nil {
		query = query.Where("id = ?", *filter.EmployeeID)
	}

	var employees []models.Employee
	if err := query.Order("name ASC").Find(&employees).Error; err != nil {
		return nil, err
	}

	if employees == nil {
		employees = []models.Employee{}
	}
	return employees, nil
}

// FindByID finds an employee by ID
func (r *GormEmployeeRepository) FindByID(id uint64) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.First(&employee, id).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

// Create inserts a new employee
func (r *GormEmployeeRepository) Create(employee *models.Employee) error {
	return r.db.Create(employee).Error
}

// Update applies the given columns to an employee row
func (r *GormEmployeeRepository) Update(id uint64, columns map[string]interface{}) error {
	if len(columns) == 0 {
		return nil
	}
	return r.db.Model(&models.Employee{}).Where("id = ?", id).Updates(columns).Error
}

// Delete removes an employee. Tasks referencing the employee keep their
// employee_id; the reference simply stops resolving at read time.
func (r *GormEmployeeRepository) Delete(id uint64) (bool, error) {
	result := r.db.Delete(&models.Employee{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// TaskSummary computes completed/total rollups per employee. The outer
// join keeps zero-task employees in the result with zero counts.
func (r *GormEmployeeRepository) TaskSummary(employeeID *uint64) ([]EmployeeTaskSummary, error) {
	query := r.db.Model(&models.Employee{}).
		Select(
			"employees.id, employees.name, COUNT(tasks.id) AS total_tasks, "+
				"COALESCE(SUM(CASE WHEN tasks.status = ? THEN 1 ELSE 0 END), 0) AS completed_tasks",
			models.TaskStatusCompleted,
		).
		Joins("LEFT JOIN tasks ON tasks.employee_id = employees.id").
		Group("employees.id, employees.name").
		Order("employees.name ASC")

	if employeeID != nil {
		query = query.Where("employees.id = ?", *employeeID)
	}

	var summaries []EmployeeTaskSummary
	if err := query.Scan(&summaries).Error; err != nil {
		return nil, err
	}

	if summaries == nil {
		summaries = []EmployeeTaskSummary{}
	}
	return summaries, nil
}
