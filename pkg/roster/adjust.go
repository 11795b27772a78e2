package roster

import "time"

// interval - отпуск с уже разобранными датами
type interval struct {
	start time.Time
	end   time.Time
}

func (iv interval) contains(date time.Time) bool {
	return !date.Before(iv.start) && !date.After(iv.end)
}

// AdjustForVacations накладывает отпуска сотрудника на его график за месяц
// и пересчитывает итоги. Исходный график не изменяется.
//
// Дата дня восстанавливается по позиции с конца: последний день графика
// всегда 31-е число. Дни вне месяца и несуществующие даты не трогаются.
func AdjustForVacations(schedule EmployeeSchedule, vacations []VacationEntry, month string) EmployeeSchedule {
	employeeVacations := make([]VacationEntry, 0)
	for _, v := range vacations {
		if v.EmployeeID == schedule.Employee.EmployeeNumber {
			employeeVacations = append(employeeVacations, v)
		}
	}

	if len(employeeVacations) == 0 {
		return schedule
	}

	target, err := ParseMonth(month)
	if err != nil {
		target = time.Time{}
	}

	// Отпуск с кривыми датами не совпадает ни с одним днем
	intervals := make([]interval, 0, len(employeeVacations))
	for _, v := range employeeVacations {
		start, okStart := parseDate(v.StartDate)
		end, okEnd := parseDate(v.EndDate)
		if !okStart || !okEnd {
			continue
		}
		intervals = append(intervals, interval{start: start, end: end})
	}

	n := len(schedule.Days)
	days := make([]DayEntry, n)

	for i, entry := range schedule.Days {
		days[i] = entry

		fromEnd := n - 1 - i
		date, ok := parseDate(dayDate(month, MonthLength-fromEnd))
		if !ok || target.IsZero() || date.Year() != target.Year() || date.Month() != target.Month() {
			continue
		}

		for _, iv := range intervals {
			if iv.contains(date) {
				days[i] = markVacation(entry)
				break
			}
		}
	}

	return Summarize(schedule.Employee, days)
}

// markVacation заменяет смену отпуском и запоминает потерянные часы
func markVacation(entry DayEntry) DayEntry {
	original := 0
	difference := 0
	if !entry.Shift.IsOff() {
		original = HoursFor(entry.Shift)
		if original > VacationHours {
			difference = original - VacationHours
		}
	}

	entry.Shift = ShiftVacation
	entry.IsVacation = true
	entry.OriginalHours = &original
	entry.HoursDifference = &difference
	return entry
}

// AdjustAll применяет отпуска ко всем графикам месяца
func AdjustAll(schedules []EmployeeSchedule, vacations []VacationEntry, month string) []EmployeeSchedule {
	updated := make([]EmployeeSchedule, len(schedules))
	for i, s := range schedules {
		updated[i] = AdjustForVacations(s, vacations, month)
	}
	return updated
}
