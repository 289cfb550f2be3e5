package ui

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
)

const (
	//Every popup is dismissed automatically after this period.
	DEFAULT_POPUP_DURATION = time.Millisecond * 2000
)

var (
	MAIN_WINDOW_SIZE = fyne.NewSize(400, 300)

	POPUP_SIZE = fyne.NewSize(300, 100)
)

// Background of the main window by game phase.
var (
	INDICATOR_IDLE = color.Color(color.Transparent)

	INDICATOR_COUNTING = color.Color(color.White)

	INDICATOR_COMPLETED = color.Color(color.NRGBA{R: 0, G: 255, B: 0, A: 255})
)
