package ui

import (
	"fmt"
	"reflex/internal/app"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// A fixed size modal window with a centered bold message.
// While it is shown, the window under it doesn't respond to the user.
type popup struct {
	*widget.PopUp

	text *widget.Label
}

// icon can be nil.
func newPopup(message string, icon fyne.Resource, canvas fyne.Canvas) (res *popup, err error) {
	if canvas == nil {
		return nil, fmt.Errorf("%w: no canvas to show %q", app.ErrPopupDisplay, message)
	}

	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = fmt.Errorf("%w: %v", app.ErrPopupDisplay, r)
		}
	}()

	text := widget.NewLabelWithStyle(message, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	text.Wrapping = fyne.TextWrapWord

	var body fyne.CanvasObject = text

	if icon != nil {
		body = container.NewBorder(nil, nil, widget.NewIcon(icon), nil, text)
	}

	pop := widget.NewModalPopUp(
		container.NewVBox(
			layout.NewSpacer(),
			body,
			layout.NewSpacer(),
		),
		canvas,
	)

	pop.Resize(POPUP_SIZE)

	return &popup{
		PopUp: pop,
		text:  text,
	}, nil
}

func (p *popup) Message() string {
	return p.text.Text
}
