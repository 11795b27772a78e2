package handler

import (
	"errors"
	"fmt"

	"shift-schedule-bot/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (h *Handler) showMonths(message *tgbotapi.Message) {
	snapshots, err := h.scheduleService.ListMonths()
	if err != nil {
		h.logger.WithError(err).Error("Failed to list months")
		h.reply(message.Chat.ID, "❌ Ошибка получения списка: "+err.Error())
		return
	}

	h.reply(message.Chat.ID, service.FormatMonthList(snapshots))
}

// loadMonth выбирает сохраненный месяц и сразу показывает его
func (h *Handler) loadMonth(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	if args == "" {
		h.reply(chatID, "📅 Формат: /load YYYY-MM\nСписок месяцев: /months")
		return
	}

	schedules, err := h.scheduleService.GetMonth(args)
	if err != nil {
		h.replyLookupError(chatID, err)
		return
	}

	state := h.state(chatID)
	state.month = args
	state.input = ""

	h.reply(chatID, service.FormatReport(args, schedules))
}

func (h *Handler) deleteMonth(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	if !h.requireAdmin(chatID, "deletemonth") {
		return
	}

	if args == "" {
		h.reply(chatID, "🗑️ Формат: /deletemonth YYYY-MM")
		return
	}

	if err := h.scheduleService.DeleteMonth(args); err != nil {
		h.replyLookupError(chatID, err)
		return
	}

	if state := h.state(chatID); state.month == args {
		state.month = ""
		state.input = ""
	}

	h.reply(chatID, fmt.Sprintf("✅ График за %s удален", args))
}

func (h *Handler) showReport(message *tgbotapi.Message, employeeID string, missingOnly bool) {
	chatID := message.Chat.ID

	month, ok := h.requireMonth(chatID)
	if !ok {
		return
	}

	schedules, err := h.scheduleService.GetMonth(month)
	if err != nil {
		h.replyLookupError(chatID, err)
		return
	}

	filtered := service.FilterSchedules(schedules, service.Filter{
		EmployeeID:  employeeID,
		MissingOnly: missingOnly,
	})

	h.reply(chatID, service.FormatReport(month, filtered))
}

func (h *Handler) showEmployee(message *tgbotapi.Message, employeeNumber string) {
	chatID := message.Chat.ID

	if employeeNumber == "" {
		h.reply(chatID, "👤 Формат: /employee табельный_номер")
		return
	}

	month, ok := h.requireMonth(chatID)
	if !ok {
		return
	}

	schedule, err := h.scheduleService.GetEmployee(month, employeeNumber)
	if err != nil {
		h.replyLookupError(chatID, err)
		return
	}

	h.reply(chatID, service.FormatEmployee(schedule))
}

func (h *Handler) replyLookupError(chatID int64, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidMonth):
		h.reply(chatID, "❌ Неверный формат месяца. Используйте YYYY-MM")
	case errors.Is(err, service.ErrMonthNotFound):
		h.reply(chatID, "📭 "+err.Error()+"\nСписок месяцев: /months")
	default:
		h.logger.WithError(err).WithField("chat_id", chatID).Error("Failed to load schedules")
		h.reply(chatID, "❌ Ошибка: "+err.Error())
	}
}
