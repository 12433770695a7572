package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"LocalSketch/internal/ui"
)

func main() {
	verbose := flag.Bool("v", false, "log debug output")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	logger.Info("starting local sketch")
	if err := ui.RunApp(logger); err != nil {
		log.Fatalf("local sketch: %v", err)
	}
}
