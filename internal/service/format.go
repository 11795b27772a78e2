package service

import (
	"fmt"
	"strings"

	"shift-schedule-bot/internal/models"
	"shift-schedule-bot/pkg/roster"
)

func formatOvertime(overtime int) string {
	if overtime >= 0 {
		return fmt.Sprintf("+%d", overtime)
	}
	return fmt.Sprintf("%d", overtime)
}

// FormatReport форматирует сводку по сотрудникам за месяц
func FormatReport(month string, schedules []roster.EmployeeSchedule) string {
	if len(schedules) == 0 {
		return fmt.Sprintf("📭 За %s нет графиков по выбранному фильтру", month)
	}

	var result strings.Builder
	result.WriteString(fmt.Sprintf("📅 График за %s\n", month))
	result.WriteString(fmt.Sprintf("Норма: %dч\n\n", roster.TargetHours))

	for i, schedule := range schedules {
		marker := "✅"
		if schedule.MissingHours() {
			marker = "⚠️"
		}

		result.WriteString(fmt.Sprintf(
			"%d. %s %s %s - %dч / %dч (%s)",
			i+1,
			marker,
			schedule.Employee.EmployeeNumber,
			schedule.Employee.Name,
			schedule.WorkingHours,
			schedule.RequiredHours,
			formatOvertime(schedule.Overtime),
		))

		if days := schedule.VacationDays(); days > 0 {
			result.WriteString(fmt.Sprintf(" 🏖️ %d", days))
		}
		result.WriteString("\n")
	}

	return result.String()
}

// FormatEmployee форматирует график сотрудника по дням
func FormatEmployee(schedule *roster.EmployeeSchedule) string {
	if schedule == nil {
		return "❌ Сотрудник не найден"
	}

	var result strings.Builder
	e := schedule.Employee
	result.WriteString(fmt.Sprintf("👤 %s (%s)\n", e.Name, e.EmployeeNumber))
	result.WriteString(fmt.Sprintf("💼 %s, уровень %s\n\n", e.Position, e.Level))

	for i, day := range schedule.Days {
		result.WriteString(fmt.Sprintf("%02d ", i+1))

		switch {
		case day.IsVacation:
			original := 0
			if day.OriginalHours != nil {
				original = *day.OriginalHours
			}
			result.WriteString(fmt.Sprintf("🏖️ %s (было %dч", day.Shift, original))
			if day.HoursDifference != nil && *day.HoursDifference > 0 {
				result.WriteString(fmt.Sprintf(", не покрыто %dч", *day.HoursDifference))
			}
			result.WriteString(")")
		case day.Shift.IsOff():
			result.WriteString("-")
		case !day.Shift.Known():
			result.WriteString(fmt.Sprintf("%s ❓", day.Shift))
		default:
			result.WriteString(fmt.Sprintf("%s (%dч)", day.Shift, roster.HoursFor(day.Shift)))
		}
		result.WriteString("\n")
	}

	result.WriteString(fmt.Sprintf(
		"\n⏰ Отработано: %dч\n📊 Норма: %dч\n📈 Разница: %s",
		schedule.WorkingHours,
		schedule.RequiredHours,
		formatOvertime(schedule.Overtime),
	))

	return result.String()
}

// FormatMonthList форматирует список сохраненных месяцев
func FormatMonthList(snapshots []*models.MonthlySchedule) string {
	if len(snapshots) == 0 {
		return "📭 Сохраненных графиков пока нет"
	}

	var result strings.Builder
	result.WriteString("📋 Сохраненные графики:\n\n")

	for i, snapshot := range snapshots {
		result.WriteString(fmt.Sprintf(
			"%d. %s - сотрудников: %d, не добрали норму: %d (обновлен %s)\n",
			i+1,
			snapshot.Month,
			snapshot.EmployeeCount(),
			snapshot.MissingHoursCount(),
			snapshot.UpdatedAt.Format("02.01.2006 15:04"),
		))
	}

	return result.String()
}
