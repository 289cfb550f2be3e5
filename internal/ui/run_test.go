package ui

import (
	"context"
	"errors"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/lang"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fatalLabel(t *testing.T, window fyne.Window) *widget.Label {
	t.Helper()

	content, ok := window.Content().(*fyne.Container)
	require.True(t, ok)
	require.Len(t, content.Objects, 3)

	label, ok := content.Objects[1].(*widget.Label)
	require.True(t, ok)

	return label
}

func TestFatalText(t *testing.T) {
	assert.Equal(t, "Fatal Error: boom", fatalText(errors.New("boom")))
}

func TestFatalWindow(t *testing.T) {
	fyneApp := test.NewTempApp(t)

	window := newFatalWindow(fyneApp, errors.New("boom"))
	t.Cleanup(window.Close)

	assert.Equal(t, lang.L("Message"), window.Title())
	assert.Equal(t, "Fatal Error: boom", fatalLabel(t, window).Text)
	assert.True(t, fatalLabel(t, window).TextStyle.Bold)
}

func TestShowFatalQuitsAfterPopupDuration(t *testing.T) {
	fyneApp := test.NewTempApp(t)
	clock := clockwork.NewFakeClock()
	quit := make(chan struct{})

	showFatal(fyneApp, errors.New("boom"), clock, func() {
		close(quit)
	})

	windows := fyneApp.Driver().AllWindows()
	require.NotEmpty(t, windows)

	window := windows[len(windows)-1]
	t.Cleanup(window.Close)

	assert.Equal(t, "Fatal Error: boom", fatalLabel(t, window).Text)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, clock.BlockUntilContext(ctx, 1))

	clock.Advance(DEFAULT_POPUP_DURATION - time.Millisecond)

	select {
	case <-quit:
		t.Fatal("quit before the popup duration")
	case <-time.After(50 * time.Millisecond):
	}

	clock.Advance(time.Millisecond)

	select {
	case <-quit:
	case <-time.After(5 * time.Second):
		t.Fatal("application wasn't quit")
	}
}
