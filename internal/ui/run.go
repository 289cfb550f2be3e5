package ui

import (
	"context"
	"embed"
	"fmt"
	"reflex/internal/app"
	"sync"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/lang"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

//go:embed translation
var translations embed.FS

type Options struct {
	AppID string

	// Real clock if nil.
	Clock clockwork.Clock
}

// Shows the main window and blocks until it is closed.
// If the window can't be shown, the error is displayed as fatal and returned.
func Run(game app.Game, options Options) error {
	if options.Clock == nil {
		options.Clock = clockwork.NewRealClock()
	}

	fyneApp := fyneapp.NewWithID(options.AppID)

	err := lang.AddTranslationsFS(translations, "translation")

	if err != nil {
		err = fmt.Errorf("load translations: %w", err)

		showFatal(fyneApp, err, options.Clock, fyneApp.Quit)

		return err
	}

	wg := &sync.WaitGroup{}

	defer wg.Wait()

	ctx, cancel := context.WithCancel(context.Background())

	defer cancel()

	mainWindow := fyneApp.NewWindow(lang.L("Reflex"))

	mainWindow.Resize(MAIN_WINDOW_SIZE)
	mainWindow.SetFixedSize(true)

	openGame(ctx, wg, mainWindow, game, options.Clock, DEFAULT_POPUP_DURATION)

	log.Info().Str("app_id", options.AppID).Msg("main window opened")

	mainWindow.ShowAndRun()

	return nil
}

// Best-effort: shows "Fatal Error: ..." in its own application for
// DEFAULT_POPUP_DURATION. Never panics. Must not be called after Run
// was started, the process has one application.
func ShowFatal(appID string, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("fatal error can't be displayed")
		}
	}()

	fyneApp := fyneapp.NewWithID(appID)

	showFatal(fyneApp, err, clockwork.NewRealClock(), fyneApp.Quit)
}

func newFatalWindow(fyneApp fyne.App, err error) fyne.Window {
	text := widget.NewLabelWithStyle(fatalText(err), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	text.Wrapping = fyne.TextWrapWord

	window := fyneApp.NewWindow(lang.L("Message"))

	window.SetContent(
		container.NewVBox(
			layout.NewSpacer(),
			text,
			layout.NewSpacer(),
		),
	)
	window.Resize(POPUP_SIZE)
	window.SetFixedSize(true)

	return window
}

// Shows the fatal error window, quit is called on the UI thread
// after DEFAULT_POPUP_DURATION.
func showFatal(fyneApp fyne.App, err error, clock clockwork.Clock, quit func()) {
	window := newFatalWindow(fyneApp, err)

	go func() {
		<-clock.After(DEFAULT_POPUP_DURATION)

		fyne.Do(quit)
	}()

	window.ShowAndRun()
}
