package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/rs/cors"

	"dream-journal/cmd/api/auth"
	"dream-journal/cmd/api/router"
	"dream-journal/config"
	"dream-journal/db"
	_ "dream-journal/docs" // swag generated package
	"dream-journal/internal/logger"
)

// @title           Dream Journal API
// @version         1.0
// @description     Dream journal with AI-generated insights and a public feed
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.Init(cfg.Logging.Level)

	jwtManager, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		logger.Log.Error(err)
		os.Exit(1)
	}

	client, database, err := db.Connect(context.Background(), cfg.Mongo)
	if err != nil {
		logger.Log.Errorf("failed to initialize MongoDB: %v", err)
		os.Exit(1)
	}
	defer client.Disconnect(context.Background())

	r := router.New(cfg, database, jwtManager)

	// CORS sits in front of the engine so preflight requests for every route
	// are answered, mirroring the frontend origin allowlist.
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Log.Infof("server listening on %s", addr)
	if err := http.ListenAndServe(addr, corsHandler); err != nil && err != http.ErrServerClosed {
		logger.Log.Error(err)
		os.Exit(1)
	}
}
