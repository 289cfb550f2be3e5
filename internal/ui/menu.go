package ui

import (
	"context"
	"reflex/internal/app"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"github.com/jonboulle/clockwork"
)

type menu struct {
	ctx        context.Context
	game       app.Game
	mainWindow fyne.Window
	wg         *sync.WaitGroup
	clock      clockwork.Clock
}

// Calls Async func in a new goroutine and inUIGoroutine as fyne.Do() argument.
// inUIGoroutine func will be called only if context haven't been cancelled.
// Uses wg to control exiting of new goroutine.
func (m *menu) Async(async func(context.Context), inUIGouroutine func()) {
	m.wg.Add(1)

	go func() {
		defer m.wg.Done()

		async(m.ctx)

		if m.ctx.Err() == nil {
			fyne.Do(inUIGouroutine)
		}
	}()
}

// Calls inUIGoroutine after delay by the menu clock, unless the context is cancelled earlier.
func (m *menu) After(delay time.Duration, inUIGouroutine func()) {
	m.Async(
		func(ctx context.Context) {
			select {
			case <-ctx.Done():
			case <-m.clock.After(delay):
			}
		},
		inUIGouroutine,
	)
}
