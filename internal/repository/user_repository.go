package repository

import (
	"github.com/tracklite/task-tracker-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// FindByEmail looks up login credentials with the joined employee name
func (r *GormUserRepository) FindByEmail(email string) (*CredentialRecord, error) {
	var record CredentialRecord
	err := r.db.Model(&models.User{}).
		Select("users.id, users.email, users.password_hash, users.role, users.employee_id, "+
			"employees.name AS employee_name").
		Joins("LEFT JOIN employees ON employees.id = users.employee_id").
		Where("users.email = ?", email).
		Take(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}
