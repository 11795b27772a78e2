package config

import (
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type BotConfig struct {
	TelegramToken   string
	TelegramDebug   bool
	BaseAdminChatID int64
	DatabaseURL     string
	LogLevel        logrus.Level
}

var instance *BotConfig
var once sync.Once

// GetBotConfig загружает конфиг бота. Без токена бот не стартует.
func GetBotConfig() *BotConfig {
	once.Do(func() {
		instance = LoadConfig()

		if instance.TelegramToken == "" {
			logrus.Fatal("could not get bot token")
		}
	})

	return instance
}

// LoadConfig читает .env (если есть) и переменные окружения.
// Используется и ботом, и CLI, которому токен не нужен.
func LoadConfig() *BotConfig {
	if err := godotenv.Load(); err != nil {
		logrus.Debugf("no .env file loaded: %s", err.Error())
	}

	cfg := &BotConfig{
		TelegramToken:   getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramDebug:   getEnvAsBool("TELEGRAM_DEBUG", false),
		BaseAdminChatID: getEnvAsInt("BASE_ADMIN_CHAT_ID", 0),
		DatabaseURL:     getEnv("DATABASE_URL", "schedules.db"),
		LogLevel:        logrus.InfoLevel,
	}

	if level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		cfg.LogLevel = level
	} else {
		logrus.Warnf("unknown LOG_LEVEL, using info: %v", err)
	}

	return cfg
}

// IsAdmin проверяет право менять графики. Если админ не задан, можно всем.
func (c *BotConfig) IsAdmin(chatID int64) bool {
	return c.BaseAdminChatID == 0 || c.BaseAdminChatID == chatID
}

// NewLogger создает логгер с форматом, общим для всех слоев
func (c *BotConfig) NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	logger.SetLevel(c.LogLevel)
	return logger
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}

func getEnvAsBool(name string, defaultVal bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}

	return defaultVal
}

func getEnvAsInt(name string, defaultVal int64) int64 {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseInt(valStr, 10, 64); err == nil {
		return val
	}

	return defaultVal
}
