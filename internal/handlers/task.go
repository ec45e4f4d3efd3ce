package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	apierrors "github.com/tracklite/task-tracker-api/internal/errors"
	"github.com/tracklite/task-tracker-api/internal/middleware"
	"github.com/tracklite/task-tracker-api/internal/models"
	"github.com/tracklite/task-tracker-api/internal/repository"
	"github.com/tracklite/task-tracker-api/internal/services"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks returns tasks visible to the caller, optionally filtered by
// status and employee. Employee callers have the employee filter forced to
// their own profile regardless of the query string.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	claims, exists := middleware.GetCaller(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var filter repository.TaskFilter
	if status := c.Query("status"); status != "" {
		taskStatus := models.TaskStatus(status)
		filter.Status = &taskStatus
	}
	if employeeIDStr := c.Query("employeeId"); employeeIDStr != "" {
		employeeID, err := strconv.ParseUint(employeeIDStr, 10, 64)
		if err != nil {
			apierrors.ValidationFailed(c, []string{"employeeId must be numeric"})
			return
		}
		filter.EmployeeID = &employeeID
	}

	tasks, err := h.taskService.ListTasks(claims.Caller(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": tasks})
}

// CreateTask creates a new task. Admin only.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.CreateTask(taskPayloadFromJSON(raw))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": task})
}

// UpdateTask partially updates a task: only fields present in the request
// body are modified. Admin only.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid task id")
		return
	}

	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.UpdateTask(id, taskPayloadFromJSON(raw))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": task})
}

// DeleteTask deletes a task. Admin only.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid task id")
		return
	}

	deleted, err := h.taskService.DeleteTask(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !deleted {
		apierrors.NotFound(c, "Task not found")
		return
	}

	c.Status(http.StatusNoContent)
}

// taskPayloadFromJSON maps a raw JSON object onto the explicit
// optional-field payload, so that absent keys, explicit nulls and invalid
// types are all distinguishable downstream.
func taskPayloadFromJSON(raw map[string]any) services.TaskPayload {
	var p services.TaskPayload

	if v, ok := raw["title"]; ok {
		if s, ok := v.(string); ok {
			p.Title = &s
		}
	}
	if v, ok := raw["description"]; ok {
		if s, ok := v.(string); ok {
			p.Description = &s
		}
	}
	if v, ok := raw["status"]; ok && v != nil {
		s := stringify(v)
		p.Status = &s
	}
	if v, ok := raw["priority"]; ok && v != nil {
		s := stringify(v)
		p.Priority = &s
	}

	if v, ok := raw["dueDate"]; ok {
		p.DueDateSet = true
		if v != nil {
			if s, ok := v.(string); ok {
				if parsed, err := parseDueDate(s); err == nil {
					p.DueDate = parsed
				} else {
					p.DueDateInvalid = true
				}
			} else {
				p.DueDateInvalid = true
			}
		}
	}

	if v, ok := raw["employeeId"]; ok {
		p.EmployeeIDSet = true
		if v != nil {
			if id, ok := parseEmployeeID(v); ok {
				p.EmployeeID = &id
			} else {
				p.EmployeeIDInvalid = true
			}
		}
	}

	return p
}

// parseEmployeeID accepts JSON numbers and numeric strings. Zero is a
// legitimate id; only genuinely non-numeric input is rejected.
func parseEmployeeID(v any) (uint64, bool) {
	switch value := v.(type) {
	case float64:
		if value < 0 || value != float64(uint64(value)) {
			return 0, false
		}
		return uint64(value), true
	case string:
		id, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return 0, false
		}
		return id, true
	default:
		return 0, false
	}
}

func parseDueDate(s string) (*time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if parsed, err := time.Parse(layout, s); err == nil {
			return &parsed, nil
		}
	}
	return nil, fmt.Errorf("unrecognised date %q", s)
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
