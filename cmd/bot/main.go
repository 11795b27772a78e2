package main

import (
	"os"
	"os/signal"
	"syscall"

	"shift-schedule-bot/internal/config"
	"shift-schedule-bot/internal/handler"
	"shift-schedule-bot/internal/repository"
	"shift-schedule-bot/internal/service"
	"shift-schedule-bot/pkg/telegram"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	logrus.Info("Initializing config...")
	cfg := config.GetBotConfig()
	logrus.SetLevel(cfg.LogLevel)
	logrus.Info("Config initialized...")

	logger := cfg.NewLogger()

	// Инициализируем SQLite базу данных
	db, err := gorm.Open(sqlite.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		logrus.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatal("Failed to get database instance:", err)
	}

	scheduleRepo, err := repository.NewGormMonthlyScheduleRepository(db, logger)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create monthly schedule repository")
	}

	scheduleService := service.NewScheduleService(scheduleRepo, logger)

	client, err := telegram.NewClient(cfg.TelegramToken, cfg.TelegramDebug)
	if err != nil {
		logrus.Fatal("Failed to create Telegram client:", err)
	}

	logrus.Infof("Authorized on account %s", client.Bot.Self.UserName)
	if cfg.BaseAdminChatID != 0 {
		logrus.Infof("Schedule changes restricted to chat ID: %d", cfg.BaseAdminChatID)
	}

	botHandler := handler.NewHandler(client, scheduleService, cfg, logger)

	updates := client.Bot.GetUpdatesChan(client.UpdateConfig)

	// Обработка сигналов для graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go botHandler.HandleUpdates(updates)

	logrus.Info("Bot started. Press Ctrl+C to stop.")
	<-stop

	client.Bot.StopReceivingUpdates()

	if err := sqlDB.Close(); err != nil {
		logrus.Infof("Error closing database: %v", err)
	}

	logrus.Info("Bot stopped gracefully")
}
