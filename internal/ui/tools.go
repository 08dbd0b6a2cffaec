package ui

import (
	"image/color"
	"log"

	"SketchBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// palette is the row of quick colours next to the custom picker.
var palette = []color.Color{
	color.NRGBA{A: 255},
	color.NRGBA{R: 255, A: 255},         // Red
	color.NRGBA{G: 255, A: 255},         // Green
	color.NRGBA{B: 255, A: 255},         // Blue
	color.NRGBA{R: 255, G: 255, A: 255}, // Yellow
}

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	rect     *canvas.Rectangle
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	rect := canvas.NewRectangle(c)
	rect.SetMinSize(fyne.NewSize(32, 32))
	s := &colorSwatch{rect: rect, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) Color() color.Color { return s.rect.FillColor }

func (s *colorSwatch) SetColor(c color.Color) {
	s.rect.FillColor = c
	s.rect.Refresh()
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(s.rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.rect.FillColor)
	}
}

func toolIcon(m state.ToolMode) fyne.Resource {
	switch m {
	case state.Eraser:
		return theme.ContentClearIcon()
	case state.Rectangle:
		return theme.CheckButtonIcon()
	case state.Ellipse:
		return theme.RadioButtonIcon()
	case state.Line:
		return theme.ContentRemoveIcon()
	}
	return theme.DocumentCreateIcon()
}

var toolLabels = map[state.ToolMode]string{
	state.Brush:     "Brush",
	state.Eraser:    "Eraser",
	state.Rectangle: "Rectangle",
	state.Ellipse:   "Ellipse",
	state.Line:      "Line",
}

// Toolbar holds the tool buttons, colour controls and the clear button.
// The active tool's button is drawn with high importance.
type Toolbar struct {
	controller *state.Controller
	board      *BoardWidget
	window     fyne.Window

	buttons map[state.ToolMode]*widget.Button
	current *colorSwatch
	clear   *widget.Button
	content fyne.CanvasObject

	// OnColorChosen runs after the stroke colour changed from the UI.
	OnColorChosen func(color.Color)
}

// NewToolbar builds the toolbar for a board. window parents the colour
// picker dialog and may be nil, in which case the picker is unavailable.
func NewToolbar(c *state.Controller, board *BoardWidget, window fyne.Window) *Toolbar {
	t := &Toolbar{
		controller: c,
		board:      board,
		window:     window,
		buttons:    make(map[state.ToolMode]*widget.Button, len(state.Modes)),
	}

	tools := container.NewHBox()
	for _, m := range state.Modes {
		mode := m
		btn := widget.NewButtonWithIcon(toolLabels[mode], toolIcon(mode), func() {
			t.controller.SelectMode(mode)
		})
		t.buttons[mode] = btn
		tools.Add(btn)
	}

	colorBox := container.NewHBox()
	for _, pc := range palette {
		colorBox.Add(newColorSwatch(pc, t.chooseColor))
	}
	t.current = newColorSwatch(c.Color(), func(color.Color) { t.showPicker() })
	pick := widget.NewButtonWithIcon("", theme.ColorPaletteIcon(), t.showPicker)

	t.clear = widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), func() {
		log.Println("[UI] clear requested")
		t.board.Clear()
	})

	t.content = container.NewHBox(
		widget.NewLabel("Tool:"),
		tools,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		t.current,
		pick,
		colorBox,
		widget.NewSeparator(),
		t.clear,
		layout.NewSpacer(),
	)
	t.setActive(c.Mode())
	return t
}

// Content returns the toolbar's canvas object.
func (t *Toolbar) Content() fyne.CanvasObject { return t.content }

func (t *Toolbar) setActive(m state.ToolMode) {
	for mode, btn := range t.buttons {
		want := widget.MediumImportance
		if mode == m {
			want = widget.HighImportance
		}
		if btn.Importance != want {
			btn.Importance = want
			btn.Refresh()
		}
	}
}

// Active returns the tool whose button carries the active marker.
func (t *Toolbar) Active() (state.ToolMode, bool) {
	for mode, btn := range t.buttons {
		if btn.Importance == widget.HighImportance {
			return mode, true
		}
	}
	return state.Brush, false
}

func (t *Toolbar) chooseColor(c color.Color) {
	t.controller.SetColor(c)
	t.current.SetColor(c)
	log.Printf("[UI] color changed to %v", c)
	if t.OnColorChosen != nil {
		t.OnColorChosen(c)
	}
}

func (t *Toolbar) showPicker() {
	if t.window == nil {
		return
	}
	picker := dialog.NewColorPicker("Stroke color", "Pick a color", func(c color.Color) {
		t.chooseColor(c)
	}, t.window)
	picker.Advanced = true
	picker.SetColor(t.controller.Color())
	picker.Show()
}

// toolbarChrome forwards controller side effects to the widgets. Either
// side may still be nil while the editor is being assembled.
type toolbarChrome struct {
	board   *BoardWidget
	toolbar *Toolbar
}

var _ state.Chrome = (*toolbarChrome)(nil)

func (c *toolbarChrome) SetActiveTool(m state.ToolMode) {
	if c.toolbar != nil {
		c.toolbar.setActive(m)
	}
}

func (c *toolbarChrome) SetCursor(cur state.Cursor) {
	if c.board != nil {
		c.board.setCursor(cur)
	}
}
