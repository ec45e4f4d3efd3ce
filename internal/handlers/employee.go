package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/tracklite/task-tracker-api/internal/errors"
	"github.com/tracklite/task-tracker-api/internal/middleware"
	"github.com/tracklite/task-tracker-api/internal/repository"
	"github.com/tracklite/task-tracker-api/internal/services"
)

type EmployeeHandler struct {
	employeeService *services.EmployeeService
}

func NewEmployeeHandler(employeeService *services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
	}
}

// ListEmployees returns employees visible to the caller: the roster
// (optionally narrowed by employeeId) for admins, only the caller's own
// record for employee accounts.
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	claims, exists := middleware.GetCaller(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var filter repository.EmployeeFilter
	if employeeIDStr := c.Query("employeeId"); employeeIDStr != "" {
		employeeID, err := strconv.ParseUint(employeeIDStr, 10, 64)
		if err != nil {
			apierrors.ValidationFailed(c, []string{"employeeId must be numeric"})
			return
		}
		filter.EmployeeID = &employeeID
	}

	employees, err := h.employeeService.ListEmployees(claims.Caller(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": employees})
}

// CreateEmployee creates a new employee profile. Admin only.
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	employee, err := h.employeeService.CreateEmployee(employeePayloadFromJSON(raw))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": employee})
}

// UpdateEmployee partially updates an employee profile. Admin only.
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid employee id")
		return
	}

	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	employee, err := h.employeeService.UpdateEmployee(id, employeePayloadFromJSON(raw))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": employee})
}

// DeleteEmployee removes an employee profile. Admin only. Tasks assigned
// to the employee are left in place as unassigned.
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid employee id")
		return
	}

	deleted, err := h.employeeService.DeleteEmployee(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !deleted {
		apierrors.NotFound(c, "Employee not found")
		return
	}

	c.Status(http.StatusNoContent)
}

func employeePayloadFromJSON(raw map[string]any) services.EmployeePayload {
	var p services.EmployeePayload

	if v, ok := raw["name"]; ok {
		if s, ok := v.(string); ok {
			p.Name = &s
		}
	}
	if v, ok := raw["role"]; ok {
		if s, ok := v.(string); ok {
			p.Role = &s
		}
	}
	if v, ok := raw["department"]; ok {
		if s, ok := v.(string); ok {
			p.Department = &s
		}
	}
	if v, ok := raw["email"]; ok {
		if s, ok := v.(string); ok {
			p.Email = &s
		}
	}

	return p
}
