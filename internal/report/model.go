package report

import (
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/teamsched/scheduler-backend/internal/pkg/apperror"
)

var ErrUnsupportedFormat = apperror.New(http.StatusBadRequest, "format must be json, csv or xlsx")

// Format selects the report encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// UtilizationRow summarizes one active resource over the report window.
// CapacityHours is the total across all working days, not the daily figure.
type UtilizationRow struct {
	ResourceID         string
	ResourceName       string
	DepartmentName     *string
	CapacityHours      decimal.Decimal
	BookedHours        decimal.Decimal
	LeaveHours         decimal.Decimal
	UtilizationPercent int64
	WorkingDays        int
}

// ProjectRow summarizes booked hours of one active project over the report window.
type ProjectRow struct {
	ProjectID         string
	ProjectName       string
	ClientName        string
	Color             string
	BudgetHours       *float64
	BookedHours       decimal.Decimal
	BudgetUsedPercent *int64
	ResourceCount     int
}

var hundred = decimal.NewFromInt(100)

// percent returns part/whole*100 rounded half away from zero.
func percent(part, whole decimal.Decimal) int64 {
	return part.Mul(hundred).Div(whole).Round(0).IntPart()
}
