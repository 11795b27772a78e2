package handler

import (
	"io"
	"strings"

	"shift-schedule-bot/internal/config"
	"shift-schedule-bot/internal/service"
	"shift-schedule-bot/pkg/telegram"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// Sender - часть tgbotapi.BotAPI, которой пользуется обработчик
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// FileDownloader скачивает документы, присланные в чат
type FileDownloader interface {
	DownloadFile(fileID string) (io.ReadCloser, error)
}

// Состояния ввода
const (
	stateAwaitSchedule  = "await_schedule"
	stateAwaitVacations = "await_vacations"
)

// chatState - выбранный месяц и режим ввода чата
type chatState struct {
	month string
	input string
}

type Handler struct {
	bot             Sender
	files           FileDownloader
	scheduleService *service.ScheduleService
	chats           map[int64]*chatState
	config          *config.BotConfig
	logger          *logrus.Logger
}

func NewHandler(
	client *telegram.Client,
	scheduleService *service.ScheduleService,
	cfg *config.BotConfig,
	logger *logrus.Logger,
) *Handler {
	return newHandler(client.Bot, client, scheduleService, cfg, logger)
}

func newHandler(
	bot Sender,
	files FileDownloader,
	scheduleService *service.ScheduleService,
	cfg *config.BotConfig,
	logger *logrus.Logger,
) *Handler {
	if logger == nil {
		logger = logrus.New()
	}
	return &Handler{
		bot:             bot,
		files:           files,
		scheduleService: scheduleService,
		chats:           make(map[int64]*chatState),
		config:          cfg,
		logger:          logger,
	}
}

// HandleUpdates обрабатывает обновления последовательно, поэтому
// состояние чатов не требует блокировок
func (h *Handler) HandleUpdates(updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		if update.Message == nil {
			continue
		}

		h.handleMessage(update.Message)
	}
}

func (h *Handler) handleMessage(message *tgbotapi.Message) {
	userName := ""
	if message.From != nil {
		userName = message.From.UserName
	}
	h.logger.WithFields(logrus.Fields{
		"chat_id": message.Chat.ID,
		"user":    userName,
	}).Debug("Incoming message")

	if message.IsCommand() {
		h.handleCommand(message)
		return
	}

	state := h.state(message.Chat.ID)
	switch state.input {
	case stateAwaitSchedule:
		h.receiveSchedule(message, state)
		return
	case stateAwaitVacations:
		h.receiveVacations(message, state)
		return
	}

	h.reply(message.Chat.ID, "🤔 Не понимаю. Используйте /help для списка команд.")
}

func (h *Handler) state(chatID int64) *chatState {
	state, exists := h.chats[chatID]
	if !exists {
		state = &chatState{}
		h.chats[chatID] = state
	}
	return state
}

// reply отправляет текст, разбивая длинные сообщения по строкам
func (h *Handler) reply(chatID int64, text string) {
	for _, part := range splitMessage(text, telegram.MaxMessageLength) {
		msg := tgbotapi.NewMessage(chatID, part)
		if _, err := h.bot.Send(msg); err != nil {
			h.logger.WithError(err).WithField("chat_id", chatID).Error("Failed to send message")
		}
	}
}

func splitMessage(text string, limit int) []string {
	if len([]rune(text)) <= limit {
		return []string{text}
	}

	var parts []string
	var current strings.Builder
	currentLen := 0

	for _, line := range strings.SplitAfter(text, "\n") {
		lineLen := len([]rune(line))
		if currentLen+lineLen > limit && currentLen > 0 {
			parts = append(parts, current.String())
			current.Reset()
			currentLen = 0
		}

		// строка длиннее лимита режется по символам
		for lineLen > limit {
			runes := []rune(line)
			parts = append(parts, string(runes[:limit]))
			line = string(runes[limit:])
			lineLen -= limit
		}

		current.WriteString(line)
		currentLen += lineLen
	}

	if currentLen > 0 {
		parts = append(parts, current.String())
	}
	return parts
}
