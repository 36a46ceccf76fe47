package main

import (
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"

	"github.com/HannahRenyAlex/simple-banking-app/internal/cli"
	"github.com/HannahRenyAlex/simple-banking-app/internal/config"
	"github.com/HannahRenyAlex/simple-banking-app/internal/ledger"
	"github.com/HannahRenyAlex/simple-banking-app/internal/ledger/account"
	"github.com/HannahRenyAlex/simple-banking-app/internal/ledger/transaction"
	"github.com/HannahRenyAlex/simple-banking-app/internal/store"
)

func main() {
	cfg := config.Load("ledger.yaml")
	logger := setupLogger(cfg.Log)

	accounts := account.NewService(store.NewAccountFile(cfg.Storage.AccountsFile, logger))
	transactions := transaction.NewLog(store.NewTransactionFile(cfg.Storage.TransactionsFile, logger))

	menu := cli.NewMenu(ledger.New(accounts, transactions), os.Stdin, os.Stdout, cfg.Currency.Symbol)
	if err := menu.Run(); err != nil {
		logger.Error("persistence unusable, aborting", "error", err)
		os.Exit(1)
	}
}

func setupLogger(cfg config.Log) *slog.Logger {
	level, err := charmlog.ParseLevel(cfg.Level)
	if err != nil {
		level = charmlog.InfoLevel
	}
	handler := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05",
		Level:           level,
		Prefix:          "ledger",
	})

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
