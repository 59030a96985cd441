package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/dkarpov/hirehub/internal/auth"
	"github.com/dkarpov/hirehub/internal/config"
	"github.com/dkarpov/hirehub/internal/database"
	"github.com/dkarpov/hirehub/internal/handlers"
	"github.com/dkarpov/hirehub/internal/router"
	"github.com/dkarpov/hirehub/internal/services"
	"github.com/dkarpov/hirehub/internal/uploads"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("loading config: ", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("building logger: ", err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal("database", zap.Error(err))
	}
	logger.Info("database connection established")

	store := uploads.NewStore(cfg.UploadDir)

	accountService := services.NewAccountService(db, logger)
	jobService := services.NewJobService(db, logger)
	applicationService := services.NewApplicationService(db, logger)

	r := router.New(router.Deps{
		Store:        auth.NewStore(cfg.SessionSecret),
		Logger:       logger,
		AllowOrigins: cfg.AllowOrigins,

		Accounts:     handlers.NewAccountHandler(accountService, store),
		Jobs:         handlers.NewJobHandler(jobService),
		Applications: handlers.NewApplicationHandler(applicationService, store),
	})

	logger.Info("server starting", zap.String("addr", cfg.Addr))
	if err := r.Run(cfg.Addr); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
