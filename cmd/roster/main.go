package main

import (
	"fmt"
	"os"

	"shift-schedule-bot/internal/config"
)

func main() {
	if err := newRootCmd(config.LoadConfig()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
