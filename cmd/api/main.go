package main

import (
	"os"

	"github.com/studybuddy/backend/internal/pkg/logger"
	"github.com/studybuddy/backend/internal/server"
)

// @title StudyBuddy API
// @version 1.0
// @description REST API for the StudyBuddy study partner matching platform

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:4000
// @BasePath /
// @schemes http

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
