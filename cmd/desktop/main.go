package main

import (
	"fmt"
	"os"
	"reflex/internal/app"
	"reflex/internal/app/reflex"
	"reflex/internal/config"
	"reflex/internal/random"
	"reflex/internal/ui"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type runner struct {
	runUI func(app.Game, ui.Options) error

	// Shows the error before the UI is started.
	showFatal func(appID string, err error)
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	r := runner{
		runUI:     ui.Run,
		showFatal: ui.ShowFatal,
	}

	os.Exit(r.run())
}

// The rules of the game are fixed.
func newSession() (*reflex.Session, error) {
	return reflex.New(clockwork.NewRealClock(), random.NewEntropy(nil), reflex.DefaultOptions())
}

// Returns the exit code.
func (r runner) run() (code int) {
	appID := config.DEFAULT_APP_ID
	uiStarted := false

	defer func() {
		if rec := recover(); rec != nil {
			err := fmt.Errorf("panic: %v", rec)

			if uiStarted {
				//the application has been run, a second one can't be created
				log.Error().Err(err).Msg("fatal error")

				code = 1
			} else {
				code = r.fatal(appID, err)
			}
		}
	}()

	cfg, err := config.Parse()

	if err != nil {
		return r.fatal(appID, err)
	}

	appID = cfg.AppID

	zerolog.SetGlobalLevel(cfg.Level)

	session, err := newSession()

	if err != nil {
		return r.fatal(appID, err)
	}

	defer session.Close()

	uiStarted = true

	err = r.runUI(session, ui.Options{AppID: appID})

	if err != nil {
		//the error has been displayed by ui.Run
		log.Error().Err(err).Msg("fatal error")

		return 1
	}

	return 0
}

// Reports the error, returns the exit code.
func (r runner) fatal(appID string, err error) int {
	log.Error().Err(err).Msg("fatal error")

	r.showFatal(appID, err)

	return 1
}
