package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/tracklite/task-tracker-api/internal/models"
	"github.com/tracklite/task-tracker-api/internal/repository"
	"github.com/tracklite/task-tracker-api/internal/services"
	"gorm.io/gorm"
)

type TaskHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *TaskHandler
}

func (suite *TaskHandlerTestSuite) SetupTest() {
	suite.db = openTestDB(suite.T())
	suite.handler = NewTaskHandler(services.NewTaskService(repository.NewTaskRepository(suite.db)))
}

func (suite *TaskHandlerTestSuite) TearDownTest() {
	closeTestDB(suite.db)
}

func (suite *TaskHandlerTestSuite) createTestEmployee(name string) *models.Employee {
	employee := &models.Employee{
		Name:       name,
		Role:       "Engineer",
		Department: "Platform",
		Email:      name + "@example.com",
	}
	suite.db.Create(employee)
	return employee
}

func (suite *TaskHandlerTestSuite) createTestTask(title string, status models.TaskStatus, employeeID *uint64) *models.Task {
	task := &models.Task{
		Title:      title,
		Status:     status,
		Priority:   models.TaskPriorityMedium,
		EmployeeID: employeeID,
	}
	suite.db.Create(task)
	return task
}

// TestListTasks_EmployeeScopeForced an employee asking for someone else's
// tasks gets their own anyway
func (suite *TaskHandlerTestSuite) TestListTasks_EmployeeScopeForced() {
	mine := suite.createTestEmployee("Avery Chen")
	other := suite.createTestEmployee("Blake Osei")
	suite.createTestTask("Mine", models.TaskStatusPending, &mine.ID)
	suite.createTestTask("Not mine", models.TaskStatusPending, &other.ID)

	c, w := newCallerContext("GET", "/tasks", nil, employeeClaims(mine.ID))
	c.Request.URL.RawQuery = fmt.Sprintf("employeeId=%d", other.ID)

	suite.handler.ListTasks(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response struct {
		Data []repository.TaskRecord `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().Len(response.Data, 1)
	assert.Equal(suite.T(), "Mine", response.Data[0].Title)
	assert.Equal(suite.T(), mine.ID, *response.Data[0].EmployeeID)
}

// TestListTasks_AdminFiltersConjunctive status and employeeId both apply
func (suite *TaskHandlerTestSuite) TestListTasks_AdminFiltersConjunctive() {
	employee := suite.createTestEmployee("Avery Chen")
	suite.createTestTask("Match", models.TaskStatusCompleted, &employee.ID)
	suite.createTestTask("Wrong status", models.TaskStatusPending, &employee.ID)
	suite.createTestTask("Unassigned", models.TaskStatusCompleted, nil)

	c, w := newCallerContext("GET", "/tasks", nil, adminClaims())
	c.Request.URL.RawQuery = fmt.Sprintf("status=completed&employeeId=%d", employee.ID)

	suite.handler.ListTasks(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response struct {
		Data []repository.TaskRecord `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().Len(response.Data, 1)
	assert.Equal(suite.T(), "Match", response.Data[0].Title)
}

// TestListTasks_Unauthenticated
func (suite *TaskHandlerTestSuite) TestListTasks_Unauthenticated() {
	c, w := newCallerContext("GET", "/tasks", nil, nil)

	suite.handler.ListTasks(c)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

// TestCreateTask_Success
func (suite *TaskHandlerTestSuite) TestCreateTask_Success() {
	employee := suite.createTestEmployee("Avery Chen")

	body, _ := json.Marshal(map[string]any{
		"title":      "New Task",
		"priority":   "high",
		"dueDate":    "2026-03-15",
		"employeeId": employee.ID,
	})
	c, w := newCallerContext("POST", "/tasks", body, adminClaims())

	suite.handler.CreateTask(c)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response struct {
		Data repository.TaskRecord `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), "New Task", response.Data.Title)
	assert.Equal(suite.T(), models.TaskStatusPending, response.Data.Status)
	assert.Equal(suite.T(), models.TaskPriorityHigh, response.Data.Priority)
	suite.Require().NotNil(response.Data.EmployeeName)
	assert.Equal(suite.T(), "Avery Chen", *response.Data.EmployeeName)
}

// TestCreateTask_ValidationErrors the response carries every violation
func (suite *TaskHandlerTestSuite) TestCreateTask_ValidationErrors() {
	body, _ := json.Marshal(map[string]any{
		"title":      "",
		"status":     "archived",
		"employeeId": "abc",
	})
	c, w := newCallerContext("POST", "/tasks", body, adminClaims())

	suite.handler.CreateTask(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var response struct {
		Code   string   `json:"code"`
		Errors []string `json:"errors"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), "VALIDATION_FAILED", response.Code)
	assert.Contains(suite.T(), response.Errors, "title is required")
	assert.Contains(suite.T(), response.Errors, "status must be one of pending, in_progress, completed")
	assert.Contains(suite.T(), response.Errors, "employeeId must be numeric")
}

// TestUpdateTask_InvalidEnumDoesNotMutate
func (suite *TaskHandlerTestSuite) TestUpdateTask_InvalidEnumDoesNotMutate() {
	task := suite.createTestTask("Keep me", models.TaskStatusPending, nil)

	body, _ := json.Marshal(map[string]any{"status": "archived"})
	c, w := newCallerContext("PUT", "/tasks/1", body, adminClaims())
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprint(task.ID)}}

	suite.handler.UpdateTask(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var reloaded models.Task
	suite.db.First(&reloaded, task.ID)
	assert.Equal(suite.T(), models.TaskStatusPending, reloaded.Status)
}

// TestUpdateTask_NotFound a missing id is a 404, not a fault
func (suite *TaskHandlerTestSuite) TestUpdateTask_NotFound() {
	body, _ := json.Marshal(map[string]any{"title": "x"})
	c, w := newCallerContext("PUT", "/tasks/9999", body, adminClaims())
	c.Params = gin.Params{{Key: "id", Value: "9999"}}

	suite.handler.UpdateTask(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestUpdateTask_PartialUpdate only sent fields change
func (suite *TaskHandlerTestSuite) TestUpdateTask_PartialUpdate() {
	employee := suite.createTestEmployee("Avery Chen")
	task := suite.createTestTask("Keep title", models.TaskStatusPending, &employee.ID)

	body, _ := json.Marshal(map[string]any{"status": "completed"})
	c, w := newCallerContext("PUT", "/tasks/1", body, adminClaims())
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprint(task.ID)}}

	suite.handler.UpdateTask(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response struct {
		Data repository.TaskRecord `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), "Keep title", response.Data.Title)
	assert.Equal(suite.T(), models.TaskStatusCompleted, response.Data.Status)
	assert.Equal(suite.T(), employee.ID, *response.Data.EmployeeID)
}

// TestUpdateTask_ExplicitNullUnassigns
func (suite *TaskHandlerTestSuite) TestUpdateTask_ExplicitNullUnassigns() {
	employee := suite.createTestEmployee("Avery Chen")
	task := suite.createTestTask("Assigned", models.TaskStatusPending, &employee.ID)

	c, w := newCallerContext("PUT", "/tasks/1", []byte(`{"employeeId": null}`), adminClaims())
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprint(task.ID)}}

	suite.handler.UpdateTask(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response struct {
		Data repository.TaskRecord `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Nil(suite.T(), response.Data.EmployeeID)
}

// TestDeleteTask 204 on the first delete, 404 on the second
func (suite *TaskHandlerTestSuite) TestDeleteTask() {
	task := suite.createTestTask("Doomed", models.TaskStatusPending, nil)

	c, w := newCallerContext("DELETE", "/tasks/1", nil, adminClaims())
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprint(task.ID)}}
	suite.handler.DeleteTask(c)
	c.Writer.WriteHeaderNow()
	assert.Equal(suite.T(), http.StatusNoContent, w.Code)

	c, w = newCallerContext("DELETE", "/tasks/1", nil, adminClaims())
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprint(task.ID)}}
	suite.handler.DeleteTask(c)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}
