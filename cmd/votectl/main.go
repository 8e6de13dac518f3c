package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"event-voting-backend/cmd/votectl/commands"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	commands.GetRootCmd().AddCommand(commands.NewMigrateCommand())
	commands.GetRootCmd().AddCommand(commands.NewDBCheckCommand())
	commands.GetRootCmd().AddCommand(commands.NewSeedCommand())
	commands.GetRootCmd().AddCommand(commands.NewCleanupCommand())
	commands.GetRootCmd().AddCommand(commands.NewQRCommand())
	commands.GetRootCmd().AddCommand(commands.NewVotesCommand())
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := commands.GetRootCmd().ExecuteContext(ctx); err != nil {
		logrus.WithError(err).Error("Command failed")
		stop()
		os.Exit(1)
	}
}
