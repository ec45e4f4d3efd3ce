package dto

import (
	"github.com/tracklite/task-tracker-api/internal/auth"
	"github.com/tracklite/task-tracker-api/internal/models"
)

// UserDTO is the caller identity as exposed in login responses.
type UserDTO struct {
	ID           uint64          `json:"id"`
	Role         models.UserRole `json:"role"`
	EmployeeID   *uint64         `json:"employeeId"`
	Email        string          `json:"email"`
	EmployeeName *string         `json:"employeeName"`
}

// LoginResponseDTO is the login payload: a bearer token plus the identity
// it encodes.
type LoginResponseDTO struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// ToUserDTO converts token claims to a UserDTO
func ToUserDTO(claims auth.Claims) UserDTO {
	return UserDTO{
		ID:           claims.UserID,
		Role:         claims.Role,
		EmployeeID:   claims.EmployeeID,
		Email:        claims.Email,
		EmployeeName: claims.EmployeeName,
	}
}
