package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/h1mzy0ti/Expense-Tracker-API/internal/config"
	"github.com/h1mzy0ti/Expense-Tracker-API/internal/database"
	"github.com/h1mzy0ti/Expense-Tracker-API/internal/logging"
	"github.com/h1mzy0ti/Expense-Tracker-API/internal/router"
)

func main() {
	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Log.Level)

	// init database
	db, err := database.Init(cfg.Database)
	if err != nil {
		slog.Error("init database", "error", err)
		os.Exit(1)
	}

	// run migrations
	if err := database.AutoMigrate(db); err != nil {
		slog.Error("migrate database", "error", err)
		os.Exit(1)
	}

	// setup router
	r := router.SetupRouter(cfg, db)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	slog.Info("server listening", "addr", addr)
	if err := r.Run(addr); err != nil {
		slog.Error("run server", "error", err)
		os.Exit(1)
	}
}
