// Package config loads startup settings from the app preferences.
package config

import (
	"errors"
	"fmt"
	"image/color"

	"SketchBoard/internal/state"

	"fyne.io/fyne/v2"
)

const (
	KeyCanvasWidth  = "canvas.width"
	KeyCanvasHeight = "canvas.height"
	KeyStrokeColor  = "stroke.color"
	KeyInitialTool  = "tool.initial"
)

// ErrInvalidTool is returned for an unknown tool name.
var ErrInvalidTool = errors.New("invalid tool")

// Config holds everything main needs to build the board.
type Config struct {
	Width  int
	Height int
	Color  color.NRGBA
	Tool   state.ToolMode
}

// Default is an 800x600 canvas with a black brush.
func Default() Config {
	return Config{
		Width:  800,
		Height: 600,
		Color:  color.NRGBA{A: 0xff},
		Tool:   state.Brush,
	}
}

// Load overlays stored preferences on the defaults. Bad values keep the
// default for that field; the returned error joins every problem found.
func Load(p fyne.Preferences) (Config, error) {
	cfg := Default()
	if p == nil {
		return cfg, nil
	}
	if w := p.IntWithFallback(KeyCanvasWidth, cfg.Width); w > 0 {
		cfg.Width = w
	}
	if h := p.IntWithFallback(KeyCanvasHeight, cfg.Height); h > 0 {
		cfg.Height = h
	}

	var errs []error
	if s := p.String(KeyStrokeColor); s != "" {
		c, err := ParseColor(s)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", KeyStrokeColor, err))
		} else {
			cfg.Color = c
		}
	}
	if s := p.String(KeyInitialTool); s != "" {
		m, ok := state.ParseToolMode(s)
		if !ok {
			errs = append(errs, fmt.Errorf("%s %q: %w", KeyInitialTool, s, ErrInvalidTool))
		} else {
			cfg.Tool = m
		}
	}
	return cfg, errors.Join(errs...)
}

// SaveColor remembers the last chosen stroke colour.
func SaveColor(p fyne.Preferences, c color.Color) {
	if p == nil || c == nil {
		return
	}
	p.SetString(KeyStrokeColor, FormatColor(c))
}
