package ui

import (
	"image/color"

	"SketchBoard/internal/config"
	"SketchBoard/internal/raster"
	"SketchBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

const windowTitle = "SketchBoard"

// Editor is one drawing surface with its controller and widgets.
type Editor struct {
	Surface    *raster.Surface
	Controller *state.Controller
	Board      *BoardWidget
	Toolbar    *Toolbar
	Content    fyne.CanvasObject
}

// NewEditor builds surface -> controller -> widgets from cfg. Colour
// changes made in the toolbar are remembered in prefs when it is non-nil.
func NewEditor(cfg config.Config, prefs fyne.Preferences, window fyne.Window) *Editor {
	surface := raster.New(cfg.Width, cfg.Height)
	chrome := &toolbarChrome{}
	ctrl := state.NewController(surface, chrome)
	ctrl.SetColor(cfg.Color)

	board := NewBoardWidget(ctrl, surface, nil)
	chrome.board = board
	toolbar := NewToolbar(ctrl, board, window)
	chrome.toolbar = toolbar
	toolbar.OnColorChosen = func(c color.Color) {
		config.SaveColor(prefs, c)
	}
	ctrl.SelectMode(cfg.Tool)

	return &Editor{
		Surface:    surface,
		Controller: ctrl,
		Board:      board,
		Toolbar:    toolbar,
		Content:    container.NewBorder(toolbar.Content(), nil, nil, nil, container.NewScroll(board)),
	}
}

// RunApp opens the main window and blocks until it is closed.
func RunApp(a fyne.App, cfg config.Config) {
	myWindow := a.NewWindow(windowTitle)
	editor := NewEditor(cfg, a.Preferences(), myWindow)
	myWindow.SetContent(editor.Content)
	myWindow.Resize(fyne.NewSize(float32(cfg.Width)+40, float32(cfg.Height)+100))
	myWindow.ShowAndRun()
}
