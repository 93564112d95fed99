package main

import (
	"log/slog"
	"os"

	"gpirscli/internal/app"
)

func main() {
	application, err := app.NewApplication()
	if err != nil {
		slog.Error("Failed to initialize application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		slog.Error("Application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
