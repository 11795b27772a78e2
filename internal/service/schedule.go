package service

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"shift-schedule-bot/internal/models"
	"shift-schedule-bot/internal/repository"
	"shift-schedule-bot/pkg/roster"
	"shift-schedule-bot/pkg/sheet"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidMonth      = errors.New("некорректный месяц, используйте формат YYYY-MM")
	ErrNoScheduleRows    = errors.New("не найдено ни одной корректной строки графика")
	ErrNoVacationEntries = errors.New("не найдено ни одной корректной записи об отпуске, проверьте формат")
	ErrMonthNotFound     = repository.ErrMonthNotFound
)

type ScheduleService struct {
	repo   repository.MonthlyScheduleRepository
	logger *logrus.Logger
}

func NewScheduleService(repo repository.MonthlyScheduleRepository, logger *logrus.Logger) *ScheduleService {
	if logger == nil {
		logger = logrus.New()
	}
	return &ScheduleService{
		repo:   repo,
		logger: logger,
	}
}

// Filter - фильтр отображения графиков
type Filter struct {
	EmployeeID  string // подстрока табельного номера
	MissingOnly bool   // только не добравшие норму
}

// VacationResult - итог применения отпусков
type VacationResult struct {
	Schedules []roster.EmployeeSchedule
	Entries   int // разобрано записей об отпуске
	Changed   int // графиков, которые изменились
}

func validateMonth(month string) error {
	if _, err := roster.ParseMonth(month); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidMonth, month)
	}
	return nil
}

// ImportSchedule разбирает текст графика и сохраняет его как снимок месяца
func (s *ScheduleService) ImportSchedule(month, text string) ([]roster.EmployeeSchedule, error) {
	if err := validateMonth(month); err != nil {
		s.logger.WithField("month", month).Warn("Invalid month for schedule import")
		return nil, err
	}

	schedules := roster.ParseSchedule(text, month)
	if len(schedules) == 0 {
		s.logger.WithField("month", month).Warn("No valid schedule rows in input")
		return nil, ErrNoScheduleRows
	}

	if _, err := s.repo.Save(month, schedules); err != nil {
		s.logger.WithError(err).Error("Failed to save imported schedule")
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"month":     month,
		"employees": len(schedules),
	}).Info("Schedule imported")

	return schedules, nil
}

// ImportFile читает загруженный CSV/XLSX и импортирует его
func (s *ScheduleService) ImportFile(month string, reader io.Reader, filename string) ([]roster.EmployeeSchedule, error) {
	text, err := sheet.ReadText(reader, filename)
	if err != nil {
		s.logger.WithError(err).WithField("file", filename).Warn("Failed to read uploaded schedule")
		return nil, err
	}
	return s.ImportSchedule(month, text)
}

// ApplyVacations накладывает выгрузку отпусков на сохраненный график месяца
func (s *ScheduleService) ApplyVacations(month, text string) (*VacationResult, error) {
	if err := validateMonth(month); err != nil {
		return nil, err
	}

	vacations := roster.ParseVacations(text)
	s.logger.WithFields(logrus.Fields{
		"month":   month,
		"entries": len(vacations),
	}).Debug("Parsed vacation input")

	if len(vacations) == 0 {
		s.logger.WithField("month", month).Warn("No valid vacation entries in input")
		return nil, ErrNoVacationEntries
	}

	snapshot, err := s.repo.GetByMonth(month)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, ErrMonthNotFound
	}

	updated := roster.AdjustAll(snapshot.Schedules, vacations, month)

	changed := 0
	for i := range updated {
		if updated[i].VacationDays() != snapshot.Schedules[i].VacationDays() ||
			updated[i].WorkingHours != snapshot.Schedules[i].WorkingHours ||
			updated[i].RequiredHours != snapshot.Schedules[i].RequiredHours {
			changed++
		}
		s.logger.WithFields(logrus.Fields{
			"employee":       updated[i].Employee.EmployeeNumber,
			"working_hours":  updated[i].WorkingHours,
			"required_hours": updated[i].RequiredHours,
		}).Debug("Schedule adjusted for vacations")
	}

	if _, err := s.repo.Save(month, updated); err != nil {
		s.logger.WithError(err).Error("Failed to save schedule after vacation update")
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"month":   month,
		"entries": len(vacations),
		"changed": changed,
	}).Info("Vacations applied")

	return &VacationResult{
		Schedules: updated,
		Entries:   len(vacations),
		Changed:   changed,
	}, nil
}

// GetMonth возвращает сохраненные графики месяца
func (s *ScheduleService) GetMonth(month string) ([]roster.EmployeeSchedule, error) {
	if err := validateMonth(month); err != nil {
		return nil, err
	}

	s.logger.WithField("month", month).Debug("Loading monthly schedule")
	snapshot, err := s.repo.GetByMonth(month)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, ErrMonthNotFound
	}
	return snapshot.Schedules, nil
}

// GetEmployee возвращает график одного сотрудника по точному табельному номеру
func (s *ScheduleService) GetEmployee(month, employeeNumber string) (*roster.EmployeeSchedule, error) {
	schedules, err := s.GetMonth(month)
	if err != nil {
		return nil, err
	}
	for i := range schedules {
		if schedules[i].Employee.EmployeeNumber == employeeNumber {
			return &schedules[i], nil
		}
	}
	return nil, nil
}

// ListMonths возвращает сохраненные месяцы
func (s *ScheduleService) ListMonths() ([]*models.MonthlySchedule, error) {
	s.logger.Debug("Listing saved months")
	return s.repo.GetAll()
}

// DeleteMonth удаляет снимок месяца
func (s *ScheduleService) DeleteMonth(month string) error {
	if err := validateMonth(month); err != nil {
		return err
	}
	s.logger.WithField("month", month).Info("Deleting saved month")
	return s.repo.Delete(month)
}

// FilterSchedules отбирает графики по номеру сотрудника и недоработке
func FilterSchedules(schedules []roster.EmployeeSchedule, filter Filter) []roster.EmployeeSchedule {
	result := []roster.EmployeeSchedule{}
	for _, schedule := range schedules {
		if filter.EmployeeID != "" && !strings.Contains(schedule.Employee.EmployeeNumber, filter.EmployeeID) {
			continue
		}
		if filter.MissingOnly && !schedule.MissingHours() {
			continue
		}
		result = append(result, schedule)
	}
	return result
}
