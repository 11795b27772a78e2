package roster

import (
	"fmt"
	"time"
)

const (
	// TargetHours - месячная норма часов. Используется и парсером, и фильтром недоработки.
	TargetHours = 192
	// VacationHours - сколько часов засчитывается за день отпуска
	VacationHours = 8
	// MonthLength - фиксированная длина месяца при восстановлении дат
	MonthLength = 31

	// MinColumns - служебные колонки в конце строки графика
	MinColumns = 5

	monthLayout = "2006-01"
	dateLayout  = "2006-01-02"
)

type Employee struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Position       string `json:"position"`
	Level          string `json:"level"`
	EmployeeNumber string `json:"employeeNumber"`
}

// DayEntry - один календарный день сотрудника
type DayEntry struct {
	Shift    ShiftCode `json:"shift"`
	Date     string    `json:"date"`
	IsOffDay bool      `json:"isOffDay"`

	// Заполняются только корректировкой отпусков
	IsVacation      bool `json:"isVacation,omitempty"`
	OriginalHours   *int `json:"originalHours,omitempty"`
	HoursDifference *int `json:"hoursDifference,omitempty"`
}

// Hours возвращает часы, которые день дает в итог месяца
func (d DayEntry) Hours() int {
	if d.IsVacation {
		if d.OriginalHours == nil || *d.OriginalHours == 0 {
			return 0
		}
		return VacationHours
	}
	return HoursFor(d.Shift)
}

// vacationOnOffDay - отпуск, выпавший на выходной
func (d DayEntry) vacationOnOffDay() bool {
	return d.IsVacation && (d.OriginalHours == nil || *d.OriginalHours == 0)
}

// EmployeeSchedule - график сотрудника за месяц
type EmployeeSchedule struct {
	Employee      Employee   `json:"employee"`
	Days          []DayEntry `json:"schedules"`
	WorkingHours  int        `json:"workingHours"`
	RequiredHours int        `json:"requiredHours"`
	Overtime      int        `json:"overtime"`
}

// MissingHours проверяет, не добрал ли сотрудник месячную норму
func (s EmployeeSchedule) MissingHours() bool {
	return s.WorkingHours < TargetHours
}

// VacationDays считает дни, замененные отпуском
func (s EmployeeSchedule) VacationDays() int {
	count := 0
	for _, day := range s.Days {
		if day.IsVacation {
			count++
		}
	}
	return count
}

type VacationEntry struct {
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Type         string `json:"type"`
}

// Summarize пересчитывает все три итога графика сразу.
// Отдельно итоги не обновляются нигде.
func Summarize(employee Employee, days []DayEntry) EmployeeSchedule {
	working := 0
	vacationOnOffDays := 0
	for _, day := range days {
		working += day.Hours()
		if day.vacationOnOffDay() {
			vacationOnOffDays++
		}
	}

	required := TargetHours - VacationHours*vacationOnOffDays

	return EmployeeSchedule{
		Employee:      employee,
		Days:          days,
		WorkingHours:  working,
		RequiredHours: required,
		Overtime:      working - required,
	}
}

// ParseMonth проверяет строку месяца формата YYYY-MM
func ParseMonth(month string) (time.Time, error) {
	t, err := time.Parse(monthLayout, month)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q, expected YYYY-MM", month)
	}
	return t, nil
}

// dayDate собирает дату дня месяца в формате YYYY-MM-DD
func dayDate(month string, day int) string {
	return fmt.Sprintf("%s-%02d", month, day)
}

// parseDate разбирает календарную дату. Несуществующие даты (31 апреля) считаются ошибкой.
func parseDate(value string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
