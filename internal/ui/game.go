package ui

import (
	"context"
	"fmt"
	"image/color"
	"reflex/internal/app"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/lang"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

type enableAble interface {
	Enable()
	Disable()
}

func setEnabled(widget enableAble, flag bool) {
	if flag {
		widget.Enable()
	} else {
		widget.Disable()
	}
}

type gameScreen struct {
	menu

	startStop, randomize *widget.Button

	// Window background, reflects the game phase.
	indicator *canvas.Rectangle

	popupDuration time.Duration

	// The last shown popup, it is hidden when the next one is shown.
	popup *popup
}

// Converts errors and panics of a button handler into an error popup,
// so the event loop is never broken by a handler.
func (m *gameScreen) guard(handler func() error) {
	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%v", r)
			}
		}()

		return handler()
	}()

	if err != nil {
		m.showError(err)
	}
}

func (m *gameScreen) showError(err error) {
	log.Error().Err(err).Msg("action failed")

	if m.ctx.Err() != nil {
		return
	}

	popupErr := m.showPopup(errText(err), theme.ErrorIcon())

	if popupErr != nil {
		log.Error().Err(popupErr).Msg("error can't be displayed")
	}
}

func (m *gameScreen) showPopup(message string, icon fyne.Resource) error {
	if m.popup != nil {
		m.popup.Hide()
	}

	p, err := newPopup(message, icon, m.mainWindow.Canvas())

	if err != nil {
		return err
	}

	m.popup = p

	p.Show()

	m.After(m.popupDuration, p.Hide)

	return nil
}

func (m *gameScreen) randomizeTapped() {
	m.guard(func() error {
		outcome, err := m.game.Randomize()

		if err != nil {
			return err
		}

		m.update()

		return m.showPopup(outcome.Message, nil)
	})
}

func (m *gameScreen) startStopTapped() {
	m.guard(func() error {
		outcome, err := m.game.StartStop()

		m.update()

		if err != nil {
			return err
		}

		log.Debug().
			Stringer("outcome", outcome.Kind).
			Stringer("round_id", outcome.RoundID).
			Float64("difference", outcome.Difference).
			Msg("start/stop")

		if outcome.Message == "" {
			return nil
		}

		return m.showPopup(outcome.Message, nil)
	})
}

// Called by the game in its own goroutine.
func (m *gameScreen) countdownCompleted() {
	if m.ctx.Err() != nil {
		return
	}

	fyne.Do(m.update)
}

// Applies the game phase to the widgets.
func (m *gameScreen) update() {
	var (
		phase     = m.game.Phase()
		label     string
		indicator color.Color
	)

	switch phase {
	case app.PhaseCounting:
		label = lang.L("Stop")
		indicator = INDICATOR_COUNTING
	case app.PhaseCompleted:
		label = lang.L("Stop")
		indicator = INDICATOR_COMPLETED
	default:
		label = lang.L("Start")
		indicator = INDICATOR_IDLE
	}

	if m.startStop.Text != label {
		m.startStop.SetText(label)
	}

	if m.indicator.FillColor != indicator {
		m.indicator.FillColor = indicator
		m.indicator.Refresh()
	}

	setEnabled(m.randomize, phase == app.PhaseIdle)
}

func newGameScreen(
	ctx context.Context,
	wg *sync.WaitGroup,
	mainWindow fyne.Window,
	game app.Game,
	clock clockwork.Clock,
	popupDuration time.Duration,
) *gameScreen {
	m := &gameScreen{
		menu: menu{
			ctx:        ctx,
			game:       game,
			mainWindow: mainWindow,
			wg:         wg,
			clock:      clock,
		},
		startStop:     widget.NewButton(lang.L("Start"), nil),
		randomize:     widget.NewButton(lang.L("Randomize"), nil),
		indicator:     canvas.NewRectangle(INDICATOR_IDLE),
		popupDuration: popupDuration,
	}

	m.startStop.Importance = widget.HighImportance

	m.startStop.OnTapped = m.startStopTapped
	m.randomize.OnTapped = m.randomizeTapped

	game.OnCountdownCompleted(m.countdownCompleted)

	m.update()

	return m
}

func (m *gameScreen) content() fyne.CanvasObject {
	return container.NewStack(
		m.indicator,
		container.NewBorder(
			nil,
			container.NewHBox(
				layout.NewSpacer(),
				m.randomize,
			),
			nil,
			nil,
			container.NewCenter(
				m.startStop,
			),
		),
	)
}

// Opens the game form in the main window.
func openGame(
	ctx context.Context,
	wg *sync.WaitGroup,
	mainWindow fyne.Window,
	game app.Game,
	clock clockwork.Clock,
	popupDuration time.Duration,
) *gameScreen {
	m := newGameScreen(ctx, wg, mainWindow, game, clock, popupDuration)

	mainWindow.SetContent(m.content())

	return m
}
