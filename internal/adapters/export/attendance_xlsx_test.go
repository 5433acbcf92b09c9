package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"churchattendance/internal/domain"
)

func TestAttendanceWorkbook_Write(t *testing.T) {
	records := []*domain.AttendanceRecord{
		{
			AttendanceCode:    123456,
			GuardianFirstName: "Jane",
			GuardianLastName:  "Doe",
			GuardianTelephone: "5551234",
			ChildFirstName:    "Sam",
			ChildLastName:     "Doe",
			ChildAge:          8,
			ScheduleDay:       "2026-10-18",
			PreferredTime:     "9:00am",
			HasAttended:       true,
			CreatedAt:         time.Date(2026, 10, 18, 8, 30, 0, 0, time.UTC),
		},
		{
			AttendanceCode: 654321,
			ChildFirstName: "Lia",
			PreferredTime:  "11:00am",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewAttendanceWorkbook().Write(&buf, records))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(attendanceSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, attendanceHeader, rows[0])
	assert.Equal(t, "123456", rows[1][0])
	assert.Equal(t, "Sam", rows[1][4])
	assert.Equal(t, "8", rows[1][6])
	assert.Equal(t, "Yes", rows[1][9])
	assert.Equal(t, "2026-10-18 08:30", rows[1][10])
	assert.Equal(t, "Lia", rows[2][4])
	assert.Equal(t, "No", rows[2][9])
}

func TestAttendanceWorkbook_Write_empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewAttendanceWorkbook().Write(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(attendanceSheet)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
