package report

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleUtilization() []UtilizationRow {
	dept := "Engineering"
	return []UtilizationRow{
		{
			ResourceID:         "r1",
			ResourceName:       "Ann Test",
			DepartmentName:     &dept,
			CapacityHours:      decimal.NewFromInt(40),
			BookedHours:        decimal.NewFromFloat(30.5),
			LeaveHours:         decimal.Zero,
			UtilizationPercent: 76,
			WorkingDays:        5,
		},
		{
			ResourceID:    "r2",
			ResourceName:  "Bob, Jr.",
			CapacityHours: decimal.NewFromFloat(37.5),
			BookedHours:   decimal.Zero,
			LeaveHours:    decimal.NewFromInt(8),
			WorkingDays:   5,
		},
	}
}

func TestRenderUtilization_CSV(t *testing.T) {
	data, err := RenderUtilization(sampleUtilization(), FormatCSV)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, utilizationHeader, records[0])
	assert.Equal(t, []string{"r1", "Ann Test", "Engineering", "40", "30.5", "0", "76", "5"}, records[1])
	assert.Equal(t, []string{"r2", "Bob, Jr.", "", "37.5", "0", "8", "0", "5"}, records[2])
}

func TestRenderProjects_CSV(t *testing.T) {
	budget := 60.0
	pct := int64(50)
	rows := []ProjectRow{
		{ProjectID: "p1", ProjectName: "Apollo", ClientName: "Acme", Color: "#8B5CF6", BudgetHours: &budget, BookedHours: decimal.NewFromInt(30), BudgetUsedPercent: &pct, ResourceCount: 2},
		{ProjectID: "p2", ProjectName: "Hermes", Color: "#000000", BookedHours: decimal.Zero},
	}

	data, err := RenderProjects(rows, FormatCSV)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, projectHeader, records[0])
	assert.Equal(t, []string{"p1", "Apollo", "Acme", "#8B5CF6", "60", "30", "50", "2"}, records[1])
	assert.Equal(t, []string{"p2", "Hermes", "", "#000000", "", "0", "", "0"}, records[2])
}

func TestRenderUtilization_XLSX(t *testing.T) {
	data, err := RenderUtilization(sampleUtilization(), FormatXLSX)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Utilization"}, f.GetSheetList())

	rows, err := f.GetRows("Utilization")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, utilizationHeader, rows[0])
	assert.Equal(t, "Ann Test", rows[1][1])
	assert.Equal(t, "30.5", rows[1][4])
	assert.Equal(t, "", rows[2][2])
}

func TestRender_UnsupportedFormat(t *testing.T) {
	_, err := RenderProjects(nil, FormatJSON)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestContentType(t *testing.T) {
	ct, ext := ContentType(FormatXLSX)
	assert.Equal(t, "xlsx", ext)
	assert.Contains(t, ct, "spreadsheetml")

	ct, ext = ContentType(FormatCSV)
	assert.Equal(t, "csv", ext)
	assert.Contains(t, ct, "text/csv")
}
