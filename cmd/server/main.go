package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"product-service/internal/config"
	"product-service/internal/database"
	"product-service/internal/logger"
	"product-service/internal/server"
)

func main() {
	cfg := config.Load()
	log.Logger = logger.New(cfg.Debug)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("could not connect to the database")
	}

	app := server.New(db)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info().Msg("shutting down")
		_ = app.Shutdown()
	}()

	log.Info().Str("port", cfg.HTTPPort).Msg("server listening")
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal().Err(err).Msg("server stopped unexpectedly")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
