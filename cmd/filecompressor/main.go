package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/filecompressor/internal/archive"
	"github.com/dmitrijs2005/filecompressor/internal/config"
	"github.com/dmitrijs2005/filecompressor/internal/controller"
	"github.com/dmitrijs2005/filecompressor/internal/format"
	"github.com/dmitrijs2005/filecompressor/internal/logging"
	"github.com/dmitrijs2005/filecompressor/internal/ui"
)

func main() {
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	})))

	registry := format.New()
	archiver := archive.NewArchiver()

	window := ui.New(cfg, registry, logger)
	ctrl := controller.New(registry, archiver, window, logger)

	window.SetOnFileSelected(func(path string) {
		ctrl.ProcessFile(context.Background(), path)
	})

	window.Run()
}
