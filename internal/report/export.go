package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

var (
	utilizationHeader = []string{
		"resource_id", "resource_name", "department_name", "capacity_hours",
		"booked_hours", "leave_hours", "utilization_percent", "working_days",
	}
	projectHeader = []string{
		"project_id", "project_name", "client_name", "color", "budget_hours",
		"booked_hours", "budget_used_percent", "resource_count",
	}
)

// table is a report flattened to cells, header first.
type table struct {
	sheet string
	rows  [][]any
}

func hoursCell(d decimal.Decimal) any {
	return d.InexactFloat64()
}

func header(cols []string) []any {
	row := make([]any, len(cols))
	for i, c := range cols {
		row[i] = c
	}
	return row
}

func utilizationTable(rows []UtilizationRow) table {
	t := table{sheet: "Utilization", rows: [][]any{header(utilizationHeader)}}
	for _, r := range rows {
		var dept any
		if r.DepartmentName != nil {
			dept = *r.DepartmentName
		}
		t.rows = append(t.rows, []any{
			r.ResourceID, r.ResourceName, dept, hoursCell(r.CapacityHours),
			hoursCell(r.BookedHours), hoursCell(r.LeaveHours), r.UtilizationPercent, r.WorkingDays,
		})
	}
	return t
}

func projectTable(rows []ProjectRow) table {
	t := table{sheet: "Projects", rows: [][]any{header(projectHeader)}}
	for _, r := range rows {
		var budget, used any
		if r.BudgetHours != nil {
			budget = *r.BudgetHours
		}
		if r.BudgetUsedPercent != nil {
			used = *r.BudgetUsedPercent
		}
		t.rows = append(t.rows, []any{
			r.ProjectID, r.ProjectName, r.ClientName, r.Color, budget,
			hoursCell(r.BookedHours), used, r.ResourceCount,
		})
	}
	return t
}

func csvCell(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func (t table) csv() ([]byte, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range t.rows {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = csvCell(v)
		}
		if err := writer.Write(record); err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return nil, err
	}
	return b.Bytes(), nil
}

func (t table) xlsx() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(t.sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	for r, row := range t.rows {
		for c, v := range row {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(t.sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	if len(t.rows) > 0 {
		last, _ := excelize.ColumnNumberToName(len(t.rows[0]))
		if err := f.SetCellStyle(t.sheet, "A1", last+"1", headerStyle); err != nil {
			return nil, err
		}
		if err := f.SetColWidth(t.sheet, "A", last, 20); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		log.Errorf("Error writing xlsx: %v", err)
		return nil, err
	}
	return buf.Bytes(), nil
}

func (t table) render(format Format) ([]byte, error) {
	switch format {
	case FormatCSV:
		return t.csv()
	case FormatXLSX:
		return t.xlsx()
	default:
		return nil, ErrUnsupportedFormat
	}
}

// RenderUtilization encodes the utilization report as CSV or XLSX.
func RenderUtilization(rows []UtilizationRow, format Format) ([]byte, error) {
	return utilizationTable(rows).render(format)
}

// RenderProjects encodes the project report as CSV or XLSX.
func RenderProjects(rows []ProjectRow, format Format) ([]byte, error) {
	return projectTable(rows).render(format)
}

// ContentType returns the MIME type and file extension for an export format.
func ContentType(format Format) (string, string) {
	switch format {
	case FormatCSV:
		return "text/csv; charset=utf-8", "csv"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "xlsx"
	default:
		return "application/json; charset=utf-8", "json"
	}
}
