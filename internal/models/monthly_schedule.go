package models

import (
	"time"

	"shift-schedule-bot/pkg/roster"

	"gorm.io/gorm"
)

// MonthlySchedule - снимок графиков всех сотрудников за месяц.
// Ключ - строка месяца YYYY-MM, запись перезаписывается целиком.
type MonthlySchedule struct {
	ID        uint                      `gorm:"primarykey" json:"id"`
	Month     string                    `gorm:"type:varchar(7);not null;uniqueIndex" json:"month"`
	Year      int                       `gorm:"not null;index" json:"year"`
	MonthNum  int                       `gorm:"column:month_num;not null;check:month_num >= 1 AND month_num <= 12" json:"month_num"`
	Schedules []roster.EmployeeSchedule `gorm:"serializer:json;type:text" json:"schedules"`
	CreatedAt time.Time                 `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time                 `gorm:"autoUpdateTime" json:"updated_at"`
}

func (MonthlySchedule) TableName() string {
	return "monthly_schedules"
}

// BeforeSave хук заполняет год и месяц из ключа
func (ms *MonthlySchedule) BeforeSave(tx *gorm.DB) error {
	t, err := roster.ParseMonth(ms.Month)
	if err != nil {
		return err
	}
	ms.Year = t.Year()
	ms.MonthNum = int(t.Month())
	return nil
}

// IsValid проверяет валидность данных
func (ms *MonthlySchedule) IsValid() bool {
	if _, err := roster.ParseMonth(ms.Month); err != nil {
		return false
	}
	return true
}

// EmployeeCount возвращает количество сотрудников в снимке
func (ms *MonthlySchedule) EmployeeCount() int {
	return len(ms.Schedules)
}

// MissingHoursCount считает сотрудников, не добравших норму
func (ms *MonthlySchedule) MissingHoursCount() int {
	count := 0
	for _, s := range ms.Schedules {
		if s.MissingHours() {
			count++
		}
	}
	return count
}
