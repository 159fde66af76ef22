// Package main NPI Calculator API
// @title NPI Calculator API
// @version 1.0
// @description An HTTP service evaluating Reverse Polish Notation expressions with persisted history
// @contact.name API Support
// @contact.email nicolas.bogalheiro@gmail.com
// @license.name MIT License
// @license.url https://opensource.org/licenses/MIT
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/nbogalheiro/npi-calculator/docs"
	"github.com/nbogalheiro/npi-calculator/internal/router"
	"github.com/nbogalheiro/npi-calculator/internal/server"
	"github.com/nbogalheiro/npi-calculator/internal/storage/factory"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration", "error", err)
		os.Exit(1)
	}

	e := echo.New()
	e.HideBanner = true

	store, err := factory.NewStore(context.Background(), storageCfg)
	if err != nil {
		slog.Error("Failed to create storage", "error", err)
		os.Exit(1)
	}

	s := server.NewServer(e, sCfg, store.Health)

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "NPI Calculator API is running")
	})
	s.Echo.GET("/swagger/*", echoSwagger.WrapHandler)

	calcRouter := router.NewCalculatorRouter(s.Echo, store.Storer, store.Reader)
	calcRouter.Bind()

	slog.Info("Starting NPI Calculator API", "port", sCfg.Port, "storage", storageCfg.Type)

	if err := s.Start(); err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}
