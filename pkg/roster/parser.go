package roster

import "strings"

// ParseSchedule разбирает вставленный текст графика за месяц.
//
// Каждая строка - колонки через таб: смены по дням с 1-го числа, затем
// уровень, должность, имя, табельный номер и его дубль. Строки короче
// MinColumns колонок молча пропускаются, пустые строки тоже.
// Ведущие табы не срезаются: пустая ячейка в начале строки - выходной 1-го числа.
func ParseSchedule(text, month string) []EmployeeSchedule {
	rows := strings.Split(text, "\n")
	schedules := []EmployeeSchedule{}

	for _, row := range rows {
		if strings.TrimSpace(row) == "" {
			continue
		}

		columns := strings.Split(row, "\t")
		for i := range columns {
			columns[i] = strings.TrimSpace(columns[i])
		}

		if len(columns) < MinColumns {
			continue
		}

		schedules = append(schedules, parseRow(columns, month))
	}

	return schedules
}

func parseRow(columns []string, month string) EmployeeSchedule {
	n := len(columns)

	employee := Employee{
		ID:             columns[n-2],
		Name:           columns[n-3],
		Position:       columns[n-4],
		Level:          columns[n-5],
		EmployeeNumber: columns[n-2],
	}

	shifts := columns[:n-MinColumns]
	days := make([]DayEntry, 0, len(shifts))
	for i, token := range shifts {
		days = append(days, DayEntry{
			Shift:    ParseCode(token),
			Date:     dayDate(month, i+1),
			IsOffDay: IsOffDay(token),
		})
	}

	return Summarize(employee, days)
}
