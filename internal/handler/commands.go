package handler

import (
	"fmt"
	"strings"

	"shift-schedule-bot/pkg/roster"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

const helpText = `📋 Доступные команды:

📅 Месяц:
/month YYYY-MM - Выбрать месяц для работы
    Пример: /month 2024-05
/months - Сохраненные месяцы
/load YYYY-MM - Открыть сохраненный месяц
/deletemonth YYYY-MM - Удалить сохраненный месяц

📥 Загрузка данных:
/import - Загрузить график (вставьте строки с табами или пришлите .csv/.xlsx)
/vacations - Загрузить отпуска (блоки по 7 строк)
/cancel - Отменить ввод

📊 Просмотр:
/show [номер] - Сводка за месяц, можно отфильтровать по табельному номеру
/missing - Только сотрудники, не добравшие норму
/employee номер - График сотрудника по дням

💡 Формат графика:
смены по дням с 1-го числа, затем уровень, должность, имя, табельный номер, табельный номер.
Коды смен: D8 D10 D11 D12 N8 N10 N11 N12 LN10 LN11 V C, пустая ячейка - выходной.`

func (h *Handler) handleCommand(message *tgbotapi.Message) {
	command := message.Command()
	args := strings.TrimSpace(message.CommandArguments())

	switch command {
	case "start", "help":
		h.reply(message.Chat.ID, helpText)
	case "month":
		h.selectMonth(message, args)
	case "cancel":
		h.cancelInput(message)

	// Загрузка (админы)
	case "import":
		h.startImport(message)
	case "vacations":
		h.startVacations(message)
	case "deletemonth":
		h.deleteMonth(message, args)

	// Просмотр (все)
	case "months":
		h.showMonths(message)
	case "load":
		h.loadMonth(message, args)
	case "show":
		h.showReport(message, args, false)
	case "missing":
		h.showReport(message, "", true)
	case "employee":
		h.showEmployee(message, args)

	default:
		h.reply(message.Chat.ID, "❌ Неизвестная команда. Используйте /help для списка команд.")
	}
}

func (h *Handler) selectMonth(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	if args == "" {
		current := h.state(chatID).month
		if current == "" {
			current = "не выбран"
		}
		h.reply(chatID, fmt.Sprintf("📅 Текущий месяц: %s\nФормат: /month YYYY-MM", current))
		return
	}

	if _, err := roster.ParseMonth(args); err != nil {
		h.reply(chatID, "❌ Неверный формат месяца. Используйте YYYY-MM, например /month 2024-05")
		return
	}

	state := h.state(chatID)
	state.month = args
	state.input = ""
	h.reply(chatID, fmt.Sprintf("✅ Выбран месяц %s", args))
}

func (h *Handler) cancelInput(message *tgbotapi.Message) {
	state := h.state(message.Chat.ID)
	if state.input == "" {
		h.reply(message.Chat.ID, "ℹ️ Нечего отменять.")
		return
	}
	state.input = ""
	h.reply(message.Chat.ID, "❌ Ввод отменен.")
}

// requireMonth возвращает выбранный месяц или просит его выбрать
func (h *Handler) requireMonth(chatID int64) (string, bool) {
	month := h.state(chatID).month
	if month == "" {
		h.reply(chatID, "📅 Сначала выберите месяц: /month YYYY-MM")
		return "", false
	}
	return month, true
}

// requireAdmin проверяет права на изменение графиков
func (h *Handler) requireAdmin(chatID int64, command string) bool {
	if h.config.IsAdmin(chatID) {
		return true
	}
	h.logger.WithFields(logrus.Fields{
		"chat_id": chatID,
		"command": command,
	}).Warn("Unauthorized access to command")
	h.reply(chatID, "❌ Доступ запрещен. Эта команда только для администраторов.")
	return false
}
