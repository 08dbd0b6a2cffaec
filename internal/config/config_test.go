package config

import (
	"image/color"
	"testing"

	"SketchBoard/internal/state"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	p := test.NewTempApp(t).Preferences()
	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	p := test.NewTempApp(t).Preferences()
	p.SetInt(KeyCanvasWidth, 320)
	p.SetInt(KeyCanvasHeight, 200)
	p.SetString(KeyStrokeColor, "#ff8000")
	p.SetString(KeyInitialTool, "eraser")

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 320, cfg.Width)
	assert.Equal(t, 200, cfg.Height)
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0x80, A: 0xff}, cfg.Color)
	assert.Equal(t, state.Eraser, cfg.Tool)
}

func TestLoadInvalidValuesKeepDefaults(t *testing.T) {
	p := test.NewTempApp(t).Preferences()
	p.SetInt(KeyCanvasWidth, -5)
	p.SetInt(KeyCanvasHeight, 0)
	p.SetString(KeyStrokeColor, "not-a-colour")
	p.SetString(KeyInitialTool, "spray")

	cfg, err := Load(p)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidColor)
	assert.ErrorIs(t, err, ErrInvalidTool)
	assert.Equal(t, Default(), cfg)
}

func TestSaveColorRoundTrip(t *testing.T) {
	p := test.NewTempApp(t).Preferences()
	c := color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff}
	SaveColor(p, c)
	assert.Equal(t, "#123456", p.String(KeyStrokeColor))

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, c, cfg.Color)

	SaveColor(p, nil)
	assert.Equal(t, "#123456", p.String(KeyStrokeColor))
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#000000", color.NRGBA{A: 0xff}},
		{"#fff", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{"#FF000080", color.NRGBA{R: 0xff, A: 0x80}},
		{" red ", color.NRGBA{R: 0xff, A: 0xff}},
		{"CornflowerBlue", color.NRGBA{R: 0x64, G: 0x95, B: 0xed, A: 0xff}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "#", "#12", "#12345", "#gggggg", "blurple", "000000"} {
		_, err := ParseColor(bad)
		assert.ErrorIs(t, err, ErrInvalidColor, bad)
	}
}

func TestFormatColor(t *testing.T) {
	assert.Equal(t, "#000000", FormatColor(color.Black))
	assert.Equal(t, "#ff000080", FormatColor(color.NRGBA{R: 0xff, A: 0x80}))
	assert.Equal(t, "#00ff00", FormatColor(color.RGBA{G: 0xff, A: 0xff}))
}
