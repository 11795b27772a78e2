package handler

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"shift-schedule-bot/internal/service"
	"shift-schedule-bot/pkg/roster"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

var uploadExtensions = map[string]bool{
	".csv":  true,
	".tsv":  true,
	".txt":  true,
	".xlsx": true,
	".xlsm": true,
}

// startImport переводит чат в режим ввода графика
func (h *Handler) startImport(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	if !h.requireAdmin(chatID, "import") {
		return
	}

	month, ok := h.requireMonth(chatID)
	if !ok {
		return
	}

	h.state(chatID).input = stateAwaitSchedule
	h.reply(chatID, fmt.Sprintf(`📥 Загрузка графика за %s

Вставьте строки графика (колонки через таб) или пришлите файл .csv / .xlsx.
Сохраненный график за этот месяц будет перезаписан.

/cancel - отменить`, month))
}

// startVacations переводит чат в режим ввода отпусков
func (h *Handler) startVacations(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	if !h.requireAdmin(chatID, "vacations") {
		return
	}

	month, ok := h.requireMonth(chatID)
	if !ok {
		return
	}

	h.state(chatID).input = stateAwaitVacations
	h.reply(chatID, fmt.Sprintf(`🏖️ Обновление отпусков за %s

Вставьте выгрузку отпусков. Каждая запись - 7 строк:
тип, табельный номер, имя, -, дата начала (YYYY/MM/DD), -, дата окончания (YYYY/MM/DD)

/cancel - отменить`, month))
}

func (h *Handler) receiveSchedule(message *tgbotapi.Message, state *chatState) {
	chatID := message.Chat.ID

	var (
		schedules []roster.EmployeeSchedule
		err       error
	)
	if message.Document != nil {
		schedules, err = h.importDocument(state.month, message.Document)
	} else {
		schedules, err = h.scheduleService.ImportSchedule(state.month, message.Text)
	}

	if err != nil {
		h.replyInputError(chatID, err)
		return
	}

	state.input = ""
	h.logger.WithFields(logrus.Fields{
		"chat_id":   chatID,
		"month":     state.month,
		"employees": len(schedules),
	}).Info("Schedule imported from chat")

	h.reply(chatID, fmt.Sprintf(
		"✅ График за %s сохранен. Сотрудников: %d, не добрали норму: %d\n\n/show - посмотреть сводку",
		state.month,
		len(schedules),
		len(service.FilterSchedules(schedules, service.Filter{MissingOnly: true})),
	))
}

func (h *Handler) importDocument(month string, doc *tgbotapi.Document) ([]roster.EmployeeSchedule, error) {
	ext := strings.ToLower(filepath.Ext(doc.FileName))
	if !uploadExtensions[ext] {
		return nil, fmt.Errorf("формат %q не поддерживается, пришлите .csv или .xlsx", ext)
	}

	body, err := h.files.DownloadFile(doc.FileID)
	if err != nil {
		h.logger.WithError(err).WithField("file", doc.FileName).Error("Failed to download document")
		return nil, fmt.Errorf("не удалось скачать файл: %w", err)
	}
	defer body.Close()

	return h.scheduleService.ImportFile(month, body, doc.FileName)
}

func (h *Handler) receiveVacations(message *tgbotapi.Message, state *chatState) {
	chatID := message.Chat.ID

	if strings.TrimSpace(message.Text) == "" {
		h.reply(chatID, "❌ Пришлите выгрузку отпусков текстом или /cancel")
		return
	}

	result, err := h.scheduleService.ApplyVacations(state.month, message.Text)
	if err != nil {
		h.replyInputError(chatID, err)
		return
	}

	state.input = ""
	h.reply(chatID, fmt.Sprintf(
		"✅ Отпуска обновлены!\n\n📄 Записей: %d\n👥 Изменено графиков: %d\n\n/show - посмотреть сводку",
		result.Entries,
		result.Changed,
	))
}

// replyInputError сообщает об ошибке ввода; режим ввода остается включенным
func (h *Handler) replyInputError(chatID int64, err error) {
	switch {
	case errors.Is(err, service.ErrNoScheduleRows),
		errors.Is(err, service.ErrNoVacationEntries):
		h.reply(chatID, "❌ "+err.Error()+"\nПопробуйте еще раз или /cancel")
	case errors.Is(err, service.ErrMonthNotFound):
		h.state(chatID).input = ""
		h.reply(chatID, "❌ "+err.Error()+". Сначала загрузите график: /import")
	default:
		h.logger.WithError(err).WithField("chat_id", chatID).Error("Failed to process input")
		h.reply(chatID, "❌ Ошибка обработки: "+err.Error())
	}
}
