package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"churchattendance/internal/domain"
)

const attendanceSheet = "Attendance"

var attendanceHeader = []string{
	"Code", "Guardian First Name", "Guardian Last Name", "Telephone",
	"Child First Name", "Child Last Name", "Age", "Service Day", "Time", "Attended", "Registered At",
}

// AttendanceWorkbook writes attendance rows to a single-sheet xlsx file.
type AttendanceWorkbook struct{}

// NewAttendanceWorkbook returns an AttendanceExporter producing xlsx.
func NewAttendanceWorkbook() *AttendanceWorkbook { return &AttendanceWorkbook{} }

var _ domain.AttendanceExporter = (*AttendanceWorkbook)(nil)

func (AttendanceWorkbook) Write(w io.Writer, records []*domain.AttendanceRecord) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", attendanceSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	for col, h := range attendanceHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(attendanceSheet, cell, h); err != nil {
			return fmt.Errorf("set cell %s: %w", cell, err)
		}
	}
	lastCol, err := excelize.ColumnNumberToName(len(attendanceHeader))
	if err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	_ = f.SetCellStyle(attendanceSheet, "A1", lastCol+"1", bold)
	_ = f.AutoFilter(attendanceSheet, "A1:"+lastCol+"1", nil)

	for i, rec := range records {
		row := []any{
			rec.AttendanceCode,
			rec.GuardianFirstName,
			rec.GuardianLastName,
			rec.GuardianTelephone,
			rec.ChildFirstName,
			rec.ChildLastName,
			rec.ChildAge,
			rec.ScheduleDay,
			rec.PreferredTime,
			yesNo(rec.HasAttended),
			rec.CreatedAt.Format("2006-01-02 15:04"),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(attendanceSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %s: %w", strconv.Itoa(i+2), err)
		}
	}
	_ = f.SetColWidth(attendanceSheet, "A", lastCol, 18)

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
