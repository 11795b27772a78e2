package roster

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// row собирает строку графика: смены по дням и пять служебных колонок
func row(shifts []string, level, position, name, id string) string {
	cols := append([]string{}, shifts...)
	cols = append(cols, level, position, name, id, id)
	return strings.Join(cols, "\t")
}

func TestParseSchedule(t *testing.T) {
	text := row([]string{"D8", "", "LN10", "N12"}, "L2", "Nurse", "Alice", "E1") + "\n" +
		row([]string{"C", "D11"}, "L1", "Tech", "Bob", "E2")

	schedules := ParseSchedule(text, "2024-05")
	require.Len(t, schedules, 2)

	alice := schedules[0]
	assert.Equal(t, Employee{ID: "E1", Name: "Alice", Position: "Nurse", Level: "L2", EmployeeNumber: "E1"}, alice.Employee)
	require.Len(t, alice.Days, 4)
	assert.Equal(t, DayEntry{Shift: ShiftD8, Date: "2024-05-01"}, alice.Days[0])
	assert.Equal(t, DayEntry{Shift: ShiftOff, Date: "2024-05-02", IsOffDay: true}, alice.Days[1])
	assert.Equal(t, "2024-05-04", alice.Days[3].Date)
	assert.Equal(t, 30, alice.WorkingHours)
	assert.Equal(t, TargetHours, alice.RequiredHours)
	assert.Equal(t, 30-TargetHours, alice.Overtime)

	bob := schedules[1]
	assert.Equal(t, "E2", bob.Employee.EmployeeNumber)
	assert.Equal(t, 19, bob.WorkingHours)
}

func TestParseScheduleShortRows(t *testing.T) {
	text := "a\tb\tc\td\n" +
		"L1\tTech\tBob\tE2\tE2\n" +
		"\n"

	schedules := ParseSchedule(text, "2024-05")
	require.Len(t, schedules, 1)
	assert.Empty(t, schedules[0].Days)
	assert.Equal(t, "E2", schedules[0].Employee.ID)
	assert.Equal(t, 0, schedules[0].WorkingHours)
	assert.Equal(t, -TargetHours, schedules[0].Overtime)
}

func TestParseScheduleTrimsCells(t *testing.T) {
	text := " D12 \t \tL1\tTech\tBob\tE2\tE2\r\n"

	schedules := ParseSchedule(text, "2024-06")
	require.Len(t, schedules, 1)
	require.Len(t, schedules[0].Days, 2)
	assert.Equal(t, ShiftD12, schedules[0].Days[0].Shift)
	assert.True(t, schedules[0].Days[1].IsOffDay)
	assert.Equal(t, "E2", schedules[0].Employee.EmployeeNumber)
}

func TestParseScheduleEmptyInput(t *testing.T) {
	assert.Empty(t, ParseSchedule("", "2024-05"))
	assert.Empty(t, ParseSchedule("   \n  ", "2024-05"))
}

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2024-02")
	require.NoError(t, err)
	assert.Equal(t, 2024, m.Year())
	assert.Equal(t, 2, int(m.Month()))

	for _, bad := range []string{"", "2024", "2024-13", "05-2024", "2024/05"} {
		_, err := ParseMonth(bad)
		assert.Error(t, err, "month %q", bad)
	}
}

func TestParseScheduleKeepsLeadingOffDays(t *testing.T) {
	shifts := make([]string, MonthLength)
	shifts[2] = "D12"
	text := "\n" + row(shifts, "L1", "Nurse", "Alice", "E1") + "\n" +
		row(shifts, "L1", "Nurse", "Bob", "E2") + "\n\n"

	schedules := ParseSchedule(text, "2024-05")
	require.Len(t, schedules, 2)

	for _, s := range schedules {
		require.Len(t, s.Days, MonthLength, s.Employee.Name)
		assert.True(t, s.Days[0].IsOffDay, s.Employee.Name)
		assert.True(t, s.Days[1].IsOffDay, s.Employee.Name)
		assert.Equal(t, DayEntry{Shift: ShiftD12, Date: "2024-05-03"}, s.Days[2], s.Employee.Name)
		assert.Equal(t, "2024-05-31", s.Days[MonthLength-1].Date, s.Employee.Name)
		assert.Equal(t, 12, s.WorkingHours, s.Employee.Name)
	}
	assert.Equal(t, schedules[0].Days, schedules[1].Days)
}
