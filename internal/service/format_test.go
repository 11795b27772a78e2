package service

import (
	"testing"
	"time"

	"shift-schedule-bot/internal/models"
	"shift-schedule-bot/pkg/roster"

	"github.com/stretchr/testify/assert"
)

func TestFormatReport(t *testing.T) {
	schedules := roster.ParseSchedule(
		monthRow(fullTimeShifts(), "Alice", "E1")+"\n"+monthRow(map[int]string{1: "D8"}, "Bob", "E2"),
		"2024-05")

	report := FormatReport("2024-05", schedules)
	assert.Contains(t, report, "📅 График за 2024-05")
	assert.Contains(t, report, "1. ✅ E1 Alice - 192ч / 192ч (+0)")
	assert.Contains(t, report, "2. ⚠️ E2 Bob - 8ч / 192ч (-184)")

	assert.Contains(t, FormatReport("2024-05", nil), "нет графиков")
}

func TestFormatEmployee(t *testing.T) {
	schedules := roster.ParseSchedule("D12\t\tXX\tL3\tMedic\tAlice\tE1\tE1", "2024-05")
	adjusted := roster.AdjustForVacations(schedules[0], []roster.VacationEntry{
		{EmployeeID: "E1", StartDate: "2024-05-29", EndDate: "2024-05-29"},
	}, "2024-05")

	text := FormatEmployee(&adjusted)
	assert.Contains(t, text, "👤 Alice (E1)")
	assert.Contains(t, text, "01 🏖️ V (было 12ч, не покрыто 4ч)")
	assert.Contains(t, text, "02 -")
	assert.Contains(t, text, "03 XX ❓")
	assert.Contains(t, text, "📈 Разница: -184")

	assert.Equal(t, "❌ Сотрудник не найден", FormatEmployee(nil))
}

func TestFormatMonthList(t *testing.T) {
	assert.Contains(t, FormatMonthList(nil), "пока нет")

	snapshot := &models.MonthlySchedule{
		Month:     "2024-05",
		Schedules: roster.ParseSchedule(monthRow(map[int]string{1: "D8"}, "Bob", "E2"), "2024-05"),
		UpdatedAt: time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC),
	}
	text := FormatMonthList([]*models.MonthlySchedule{snapshot})
	assert.Contains(t, text, "1. 2024-05 - сотрудников: 1, не добрали норму: 1 (обновлен 01.06.2024 10:30)")
}
