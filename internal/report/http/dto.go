package http

import (
	"github.com/teamsched/scheduler-backend/internal/pkg/request"
	"github.com/teamsched/scheduler-backend/internal/report"
)

type ReportQuery struct {
	request.DateRangeQuery
	Format string `form:"format" binding:"omitempty,oneof=json csv xlsx"`
}

func (q *ReportQuery) format() report.Format {
	if q.Format == "" {
		return report.FormatJSON
	}
	return report.Format(q.Format)
}

type UtilizationResponse struct {
	ResourceID         string  `json:"resource_id"`
	ResourceName       string  `json:"resource_name"`
	DepartmentName     *string `json:"department_name"`
	CapacityHours      float64 `json:"capacity_hours"`
	BookedHours        float64 `json:"booked_hours"`
	LeaveHours         float64 `json:"leave_hours"`
	UtilizationPercent int64   `json:"utilization_percent"`
	WorkingDays        int     `json:"working_days"`
}

func NewUtilizationResponse(r report.UtilizationRow) UtilizationResponse {
	return UtilizationResponse{
		ResourceID:         r.ResourceID,
		ResourceName:       r.ResourceName,
		DepartmentName:     r.DepartmentName,
		CapacityHours:      r.CapacityHours.InexactFloat64(),
		BookedHours:        r.BookedHours.InexactFloat64(),
		LeaveHours:         r.LeaveHours.InexactFloat64(),
		UtilizationPercent: r.UtilizationPercent,
		WorkingDays:        r.WorkingDays,
	}
}

type ProjectReportResponse struct {
	ProjectID         string   `json:"project_id"`
	ProjectName       string   `json:"project_name"`
	ClientName        string   `json:"client_name"`
	Color             string   `json:"color"`
	BudgetHours       *float64 `json:"budget_hours"`
	BookedHours       float64  `json:"booked_hours"`
	BudgetUsedPercent *int64   `json:"budget_used_percent"`
	ResourceCount     int      `json:"resource_count"`
}

func NewProjectReportResponse(r report.ProjectRow) ProjectReportResponse {
	return ProjectReportResponse{
		ProjectID:         r.ProjectID,
		ProjectName:       r.ProjectName,
		ClientName:        r.ClientName,
		Color:             r.Color,
		BudgetHours:       r.BudgetHours,
		BookedHours:       r.BookedHours.InexactFloat64(),
		BudgetUsedPercent: r.BudgetUsedPercent,
		ResourceCount:     r.ResourceCount,
	}
}
