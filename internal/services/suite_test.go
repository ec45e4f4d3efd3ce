package services

import (
	"testing"
	"time"

	"github.com/tracklite/task-tracker-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Shared fixtures for the service test suites.

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Employee{}, &models.Task{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func closeTestDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}

func seedEmployee(db *gorm.DB, name string) *models.Employee {
	employee := &models.Employee{
		Name:       name,
		Role:       "Engineer",
		Department: "Platform",
		Email:      name + "@example.com",
	}
	db.Create(employee)
	return employee
}

func seedTask(db *gorm.DB, title string, status models.TaskStatus, employeeID *uint64, dueDate *time.Time) *models.Task {
	task := &models.Task{
		Title:      title,
		Status:     status,
		Priority:   models.TaskPriorityMedium,
		EmployeeID: employeeID,
		DueDate:    dueDate,
	}
	db.Create(task)
	return task
}

func strPtr(s string) *string {
	return &s
}

func uint64Ptr(v uint64) *uint64 {
	return &v
}

func timePtr(t time.Time) *time.Time {
	return &t
}
