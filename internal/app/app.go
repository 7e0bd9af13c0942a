package app

import (
	"io"
	"log/slog"

	"github.com/vk/paramgrid/paramfile"
	"github.com/vk/paramgrid/provenance"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	loader *paramfile.Loader
	repo   provenance.Repository
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger. Results are written
// to outW, diagnostics to errW. A nil repo falls back to the go-git backed
// repository, which is the production collaborator.
func NewApp(outW, errW io.Writer, appConfig *Config, loader *paramfile.Loader, repo provenance.Repository) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	if repo == nil {
		repo = provenance.NewGitRepository()
	}

	return &App{
		outW:   outW,
		logger: logger,
		loader: loader,
		repo:   repo,
	}
}
