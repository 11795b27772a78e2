package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fullMonth возвращает 31 смену, по умолчанию выходные
func fullMonth(overrides map[int]string) []string {
	shifts := make([]string, MonthLength)
	for day, code := range overrides {
		shifts[day-1] = code
	}
	return shifts
}

func parseOne(t *testing.T, shifts []string, month string) EmployeeSchedule {
	t.Helper()
	schedules := ParseSchedule(row(shifts, "L1", "Nurse", "Alice", "E1"), month)
	require.Len(t, schedules, 1)
	return schedules[0]
}

func TestAdjustNoMatchingVacationsReturnsInput(t *testing.T) {
	schedule := parseOne(t, fullMonth(map[int]string{1: "D8", 2: "D12"}), "2024-05")

	assert.Equal(t, schedule, AdjustForVacations(schedule, nil, "2024-05"))
	assert.Equal(t, schedule, AdjustForVacations(schedule, []VacationEntry{
		{EmployeeID: "E2", StartDate: "2024-05-01", EndDate: "2024-05-31"},
	}, "2024-05"))
}

func TestAdjustWholeMonthReplacesLastDay(t *testing.T) {
	schedule := parseOne(t, fullMonth(map[int]string{31: "D12"}), "2024-05")
	require.Equal(t, 12, schedule.WorkingHours)

	adjusted := AdjustForVacations(schedule, []VacationEntry{
		{EmployeeID: "E1", EmployeeName: "Alice", Type: "Annual", StartDate: "2024-05-01", EndDate: "2024-05-31"},
	}, "2024-05")

	last := adjusted.Days[MonthLength-1]
	assert.Equal(t, ShiftVacation, last.Shift)
	assert.True(t, last.IsVacation)
	require.NotNil(t, last.OriginalHours)
	require.NotNil(t, last.HoursDifference)
	assert.Equal(t, 12, *last.OriginalHours)
	assert.Equal(t, 4, *last.HoursDifference)
	assert.Equal(t, 8, last.Hours())

	// остальные 30 дней были выходными и ушли в отпуск
	assert.Equal(t, 8, adjusted.WorkingHours)
	assert.Equal(t, TargetHours-30*VacationHours, adjusted.RequiredHours)
	assert.Equal(t, adjusted.WorkingHours-adjusted.RequiredHours, adjusted.Overtime)

	// исходный график не изменился
	assert.Equal(t, ShiftD12, schedule.Days[MonthLength-1].Shift)
	assert.False(t, schedule.Days[MonthLength-1].IsVacation)
}

func TestAdjustOffDayLowersRequiredHours(t *testing.T) {
	schedule := parseOne(t, fullMonth(map[int]string{14: "D10", 16: "D10"}), "2024-05")

	adjusted := AdjustForVacations(schedule, []VacationEntry{
		{EmployeeID: "E1", StartDate: "2024-05-15", EndDate: "2024-05-15"},
	}, "2024-05")

	day := adjusted.Days[14]
	assert.Equal(t, ShiftVacation, day.Shift)
	assert.True(t, day.IsVacation)
	assert.Equal(t, 0, *day.OriginalHours)
	assert.Equal(t, 0, *day.HoursDifference)
	assert.Equal(t, 0, day.Hours())

	assert.Equal(t, 20, adjusted.WorkingHours)
	assert.Equal(t, 184, adjusted.RequiredHours)
	assert.Equal(t, 20-184, adjusted.Overtime)
	assert.Equal(t, 1, adjusted.VacationDays())
}

func TestAdjustInclusiveEndpoints(t *testing.T) {
	schedule := parseOne(t, fullMonth(map[int]string{9: "D8", 10: "D8", 11: "D8", 12: "D8", 13: "D8"}), "2024-05")

	adjusted := AdjustForVacations(schedule, []VacationEntry{
		{EmployeeID: "E1", StartDate: "2024-05-10", EndDate: "2024-05-12"},
	}, "2024-05")

	assert.False(t, adjusted.Days[8].IsVacation)
	assert.True(t, adjusted.Days[9].IsVacation)
	assert.True(t, adjusted.Days[10].IsVacation)
	assert.True(t, adjusted.Days[11].IsVacation)
	assert.False(t, adjusted.Days[12].IsVacation)
	assert.Equal(t, 0, *adjusted.Days[9].HoursDifference)
	assert.Equal(t, 40, adjusted.WorkingHours)
	assert.Equal(t, TargetHours, adjusted.RequiredHours)
}

func TestAdjustUsesPositionFromEnd(t *testing.T) {
	// 30 дней в графике: первая ячейка считается 2-м числом, последняя 31-м
	shifts := make([]string, 30)
	shifts[0] = "N11"
	schedule := parseOne(t, shifts, "2024-05")

	adjusted := AdjustForVacations(schedule, []VacationEntry{
		{EmployeeID: "E1", StartDate: "2024-05-02", EndDate: "2024-05-02"},
	}, "2024-05")

	assert.True(t, adjusted.Days[0].IsVacation)
	assert.Equal(t, 11, *adjusted.Days[0].OriginalHours)
	assert.Equal(t, 3, *adjusted.Days[0].HoursDifference)
	// дата дня не переписывается
	assert.Equal(t, "2024-05-01", adjusted.Days[0].Date)
	assert.Equal(t, 8, adjusted.WorkingHours)
}

func TestAdjustSkipsDaysMissingFromCalendar(t *testing.T) {
	// в апреле нет 31-го числа, последняя ячейка не трогается
	schedule := parseOne(t, fullMonth(map[int]string{30: "D8", 31: "D8"}), "2024-04")

	adjusted := AdjustForVacations(schedule, []VacationEntry{
		{EmployeeID: "E1", StartDate: "2024-04-01", EndDate: "2024-05-31"},
	}, "2024-04")

	assert.True(t, adjusted.Days[29].IsVacation)
	assert.False(t, adjusted.Days[30].IsVacation)
	assert.Equal(t, ShiftD8, adjusted.Days[30].Shift)
}

func TestAdjustFirstIntervalWins(t *testing.T) {
	schedule := parseOne(t, fullMonth(map[int]string{5: "D12"}), "2024-05")

	adjusted := AdjustForVacations(schedule, []VacationEntry{
		{EmployeeID: "E1", Type: "Annual", StartDate: "2024-05-05", EndDate: "2024-05-05"},
		{EmployeeID: "E1", Type: "Sick", StartDate: "2024-05-01", EndDate: "2024-05-07"},
	}, "2024-05")

	// 5-е число заменено один раз, несмотря на второе пересечение
	assert.Equal(t, 12, *adjusted.Days[4].OriginalHours)
	assert.Equal(t, 7, adjusted.VacationDays())
}

func TestAdjustInvalidDatesNeverMatch(t *testing.T) {
	schedule := parseOne(t, fullMonth(map[int]string{1: "D8"}), "2024-05")

	adjusted := AdjustForVacations(schedule, []VacationEntry{
		{EmployeeID: "E1", StartDate: "2024-5-1", EndDate: "2024-05-31"},
		{EmployeeID: "E1", StartDate: "garbage", EndDate: "garbage"},
	}, "2024-05")

	assert.Zero(t, adjusted.VacationDays())
	assert.Equal(t, schedule.WorkingHours, adjusted.WorkingHours)
	assert.Equal(t, schedule.RequiredHours, adjusted.RequiredHours)
}

func TestAdjustOtherMonthIgnored(t *testing.T) {
	schedule := parseOne(t, fullMonth(map[int]string{1: "D8"}), "2024-05")

	adjusted := AdjustForVacations(schedule, []VacationEntry{
		{EmployeeID: "E1", StartDate: "2024-06-01", EndDate: "2024-06-30"},
	}, "2024-05")

	assert.Zero(t, adjusted.VacationDays())
}

func TestAdjustTwiceCountsVacationAsEightHours(t *testing.T) {
	schedule := parseOne(t, fullMonth(map[int]string{3: "D12"}), "2024-05")
	vacations := []VacationEntry{{EmployeeID: "E1", StartDate: "2024-05-02", EndDate: "2024-05-03"}}

	once := AdjustForVacations(schedule, vacations, "2024-05")
	assert.Equal(t, 8, once.WorkingHours)
	assert.Equal(t, TargetHours-8, once.RequiredHours)

	twice := AdjustForVacations(once, vacations, "2024-05")
	assert.Equal(t, 8, *twice.Days[1].OriginalHours)
	assert.Equal(t, 8, *twice.Days[2].OriginalHours)
	assert.Equal(t, 0, *twice.Days[2].HoursDifference)
	assert.Equal(t, 16, twice.WorkingHours)
	assert.Equal(t, TargetHours, twice.RequiredHours)
}

func TestAdjustAll(t *testing.T) {
	text := row(fullMonth(map[int]string{1: "D8"}), "L1", "Nurse", "Alice", "E1") + "\n" +
		row(fullMonth(map[int]string{1: "D8"}), "L1", "Nurse", "Bob", "E2")
	schedules := ParseSchedule(text, "2024-05")

	updated := AdjustAll(schedules, []VacationEntry{
		{EmployeeID: "E2", StartDate: "2024-05-01", EndDate: "2024-05-01"},
	}, "2024-05")

	require.Len(t, updated, 2)
	assert.Equal(t, schedules[0], updated[0])
	assert.True(t, updated[1].Days[0].IsVacation)
	assert.False(t, schedules[1].Days[0].IsVacation)
}
