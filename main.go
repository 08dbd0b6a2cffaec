package main

import (
	"log"

	"SketchBoard/internal/config"
	"SketchBoard/internal/ui"

	"fyne.io/fyne/v2/app"
)

const appID = "io.sketchboard.app"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	a := app.NewWithID(appID)
	cfg, err := config.Load(a.Preferences())
	if err != nil {
		log.Printf("[CONFIG] ignoring bad preferences: %v", err)
	}
	log.Printf("[CONFIG] canvas %dx%d, tool %s, color %s",
		cfg.Width, cfg.Height, cfg.Tool, config.FormatColor(cfg.Color))

	ui.RunApp(a, cfg)
}
