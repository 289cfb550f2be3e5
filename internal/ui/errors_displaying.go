package ui

import (
	"errors"
	"reflex/internal/app"

	"fyne.io/fyne/v2/lang"
)

const (
	ERROR_PREFIX       = "Error: "
	FATAL_ERROR_PREFIX = "Fatal Error: "
)

func identifyTranslateErr(err error) string {
	if errors.Is(err, app.ErrRoundInProgress) {
		return lang.L("Finish the current round first")
	}

	return ""
}

func errText(err error) string {
	translatedErrText := identifyTranslateErr(err)

	if translatedErrText == "" {
		return ERROR_PREFIX + err.Error()
	}

	return ERROR_PREFIX + translatedErrText
}

func fatalText(err error) string {
	return FATAL_ERROR_PREFIX + err.Error()
}
