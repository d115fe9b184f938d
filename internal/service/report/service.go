package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/openleave/leave-backend-go/internal/domain/leave"
	leavesvc "github.com/openleave/leave-backend-go/internal/service/leave"
)

type ReportService interface {
	StatisticsPDF(stats []leave.EmployeeStatistic, period *leavesvc.Period) ([]byte, error)
}

type reportServiceImpl struct{}

func NewReportService() ReportService {
	return &reportServiceImpl{}
}

// StatisticsPDF renders the per-employee leave rollup as an A4 table. A nil
// period means the rollup is unrestricted.
func (s *reportServiceImpl) StatisticsPDF(stats []leave.EmployeeStatistic, period *leavesvc.Period) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Leave Statistics")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	periodLine := "Period: all time"
	if period != nil {
		periodLine = fmt.Sprintf("Period: %s to %s",
			period.Start.Format("2006-01-02"), period.End.Format("2006-01-02"))
	}
	pdf.Cell(0, 8, periodLine)
	pdf.Ln(10)

	headers := []struct {
		label string
		width float64
	}{
		{"Employee ID", 35},
		{"Name", 60},
		{"Department", 45},
		{"Total Days", 30},
		{"Total Hours", 30},
		{"Full", 25},
		{"Half", 25},
		{"Hourly", 25},
	}

	pdf.SetFont("Helvetica", "B", 10)
	for _, h := range headers {
		pdf.CellFormat(h.width, 8, h.label, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range stats {
		pdf.CellFormat(35, 7, row.EmployeeID, "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, row.EmployeeName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 7, row.Department, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%.1f", row.TotalDays), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%.1f", row.TotalHours), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 7, fmt.Sprintf("%.1f", row.FullDays), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 7, fmt.Sprintf("%.1f", row.HalfDays), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 7, fmt.Sprintf("%.1f", row.HourlyLeaves), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	if len(stats) == 0 {
		pdf.Ln(4)
		pdf.Cell(0, 8, "No leave recorded in this period.")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render statistics pdf: %w", err)
	}
	return buf.Bytes(), nil
}
