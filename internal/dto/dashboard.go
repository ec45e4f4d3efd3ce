package dto

import (
	"github.com/tracklite/task-tracker-api/internal/repository"
	"github.com/tracklite/task-tracker-api/internal/services"
)

// DashboardDTO is the dashboard payload: the status rollup plus the
// per-employee completed/total rollups, both under the caller's scope.
type DashboardDTO struct {
	Stats     *repository.TaskSummary          `json:"stats"`
	Employees []repository.EmployeeTaskSummary `json:"employees"`
}

// ToDashboardDTO converts a dashboard overview to its response shape
func ToDashboardDTO(overview *services.Overview) DashboardDTO {
	return DashboardDTO{
		Stats:     overview.Stats,
		Employees: overview.Employees,
	}
}
