package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"shift-schedule-bot/internal/config"
	"shift-schedule-bot/internal/repository"
	"shift-schedule-bot/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// cli держит общее состояние команд: путь к базе и сервис
type cli struct {
	dbPath  string
	verbose bool
	svc     *service.ScheduleService
	close   func() error
}

func newRootCmd(cfg *config.BotConfig) *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "roster",
		Short:         "Import shift schedules and apply vacation exports",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.open(cfg, cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if c.close == nil {
				return nil
			}
			return c.close()
		},
	}

	root.PersistentFlags().StringVar(&c.dbPath, "db", cfg.DatabaseURL, "sqlite database file")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newImportCmd(c),
		newVacationsCmd(c),
		newReportCmd(c),
		newMonthsCmd(c),
		newDeleteCmd(c),
	)
	return root
}

func (c *cli) open(cfg *config.BotConfig, logOut io.Writer) error {
	logger := cfg.NewLogger()
	logger.SetOutput(logOut)
	if c.verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	db, err := gorm.Open(sqlite.Open(c.dbPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return fmt.Errorf("open database %s: %w", c.dbPath, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("database handle: %w", err)
	}

	repo, err := repository.NewGormMonthlyScheduleRepository(db, logger)
	if err != nil {
		_ = sqlDB.Close()
		return fmt.Errorf("init repository: %w", err)
	}

	c.svc = service.NewScheduleService(repo, logger)
	c.close = sqlDB.Close
	return nil
}

// openInput открывает файл или stdin, если путь "-"
func openInput(cmd *cobra.Command, path string) (io.ReadCloser, string, error) {
	if path == "-" {
		return io.NopCloser(cmd.InOrStdin()), "stdin.txt", nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	return f, filepath.Base(path), nil
}

func requireMonthFlag(cmd *cobra.Command, month *string) {
	cmd.Flags().StringVarP(month, "month", "m", "", "month in YYYY-MM format")
	_ = cmd.MarkFlagRequired("month")
}
