package repository

import (
	"errors"
	"time"

	"shift-schedule-bot/internal/models"
	"shift-schedule-bot/pkg/roster"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrMonthNotFound = errors.New("график за этот месяц не найден")

type MonthlyScheduleRepository interface {
	Save(month string, schedules []roster.EmployeeSchedule) (*models.MonthlySchedule, error)
	GetByMonth(month string) (*models.MonthlySchedule, error)
	GetAll() ([]*models.MonthlySchedule, error)
	ListMonths() ([]string, error)
	Delete(month string) error
	Exists(month string) (bool, error)
}

type GormMonthlyScheduleRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormMonthlyScheduleRepository(db *gorm.DB, logger *logrus.Logger) (*GormMonthlyScheduleRepository, error) {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	// Автомиграция
	if err := db.AutoMigrate(&models.MonthlySchedule{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate monthly_schedules table")
		return nil, err
	}

	logger.Info("Monthly schedule repository initialized")

	return &GormMonthlyScheduleRepository{
		db:     db,
		logger: logger,
	}, nil
}

// Save сохраняет снимок месяца, перезаписывая предыдущий с тем же ключом
func (r *GormMonthlyScheduleRepository) Save(month string, schedules []roster.EmployeeSchedule) (*models.MonthlySchedule, error) {
	r.logger.WithFields(logrus.Fields{
		"month":     month,
		"employees": len(schedules),
	}).Info("Saving monthly schedule")

	snapshot := &models.MonthlySchedule{Month: month}
	if !snapshot.IsValid() {
		r.logger.WithField("month", month).Warn("Invalid month for monthly schedule")
		return nil, errors.New("некорректный месяц, ожидается YYYY-MM")
	}

	existing, err := r.GetByMonth(month)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		existing.Schedules = schedules
		existing.UpdatedAt = time.Now()

		if err := r.db.Save(existing).Error; err != nil {
			r.logger.WithError(err).Error("Failed to overwrite monthly schedule")
			return nil, err
		}

		r.logger.WithFields(logrus.Fields{
			"id":    existing.ID,
			"month": month,
		}).Info("Monthly schedule overwritten")
		return existing, nil
	}

	snapshot.Schedules = schedules
	if err := r.db.Create(snapshot).Error; err != nil {
		r.logger.WithError(err).Error("Failed to create monthly schedule")
		return nil, err
	}

	r.logger.WithFields(logrus.Fields{
		"id":    snapshot.ID,
		"month": month,
	}).Info("Monthly schedule created")

	return snapshot, nil
}

func (r *GormMonthlyScheduleRepository) GetByMonth(month string) (*models.MonthlySchedule, error) {
	var snapshot models.MonthlySchedule
	result := r.db.Where("month = ?", month).First(&snapshot)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		r.logger.WithField("month", month).Debug("Monthly schedule not found")
		return nil, nil
	}

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get monthly schedule")
		return nil, result.Error
	}

	return &snapshot, nil
}

func (r *GormMonthlyScheduleRepository) GetAll() ([]*models.MonthlySchedule, error) {
	var snapshots []*models.MonthlySchedule
	result := r.db.Order("month ASC").Find(&snapshots)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get monthly schedules")
		return nil, result.Error
	}

	r.logger.WithField("count", len(snapshots)).Debug("Retrieved monthly schedules")
	return snapshots, nil
}

// ListMonths возвращает ключи сохраненных месяцев без самих графиков
func (r *GormMonthlyScheduleRepository) ListMonths() ([]string, error) {
	var months []string
	result := r.db.Model(&models.MonthlySchedule{}).Order("month ASC").Pluck("month", &months)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to list saved months")
		return nil, result.Error
	}

	return months, nil
}

func (r *GormMonthlyScheduleRepository) Delete(month string) error {
	r.logger.WithField("month", month).Info("Deleting monthly schedule")

	result := r.db.Where("month = ?", month).Delete(&models.MonthlySchedule{})
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to delete monthly schedule")
		return result.Error
	}

	if result.RowsAffected == 0 {
		r.logger.WithField("month", month).Warn("Monthly schedule not found for deletion")
		return ErrMonthNotFound
	}

	r.logger.WithField("month", month).Info("Monthly schedule deleted successfully")
	return nil
}

func (r *GormMonthlyScheduleRepository) Exists(month string) (bool, error) {
	var count int64
	result := r.db.Model(&models.MonthlySchedule{}).
		Where("month = ?", month).
		Count(&count)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to check monthly schedule existence")
		return false, result.Error
	}

	exists := count > 0
	r.logger.WithFields(logrus.Fields{
		"month":  month,
		"exists": exists,
	}).Debug("Checked monthly schedule existence")

	return exists, nil
}
