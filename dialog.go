package main

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/gotk3/gotk3/gtk"
	"github.com/sirupsen/logrus"
	"github.com/stewi1014/glflame/flame"
	"github.com/stewi1014/glflame/programs"
)

func CatchPanicToContext(ctxCancel context.CancelCauseFunc) {
	if v := recover(); v != nil {
		err, ok := v.(error)
		if !ok {
			err = fmt.Errorf("panic: %v", v)
		}
		err = fmt.Errorf("%w\n%v", err, string(debug.Stack()))
		if ctxCancel != nil {
			ctxCancel(err)
		}
	}
}

func errorTitle(err error) string {
	var shaderErr *programs.ShaderError
	switch {
	case errors.Is(err, flame.ErrSurfaceUnavailable):
		return "No drawing surface is available"
	case errors.As(err, &shaderErr):
		return fmt.Sprintf("The %v shader could not be built", shaderErr.Program)
	case errors.Is(err, flame.ErrInvalidConfig):
		return "The flame settings are invalid"
	}
	return "GLFlame failed to start"
}

// ShowErrorDialog blocks until the user closes a dialog describing err.
// Without a display it only logs.
func ShowErrorDialog(err error) {
	if initErr := gtk.InitCheck(nil); initErr != nil {
		logrus.WithError(initErr).Warn("cannot show error dialog")
		return
	}

	NewErrorDialog(nil, err)
}

func NewErrorDialog(
	parent gtk.IWindow,
	err error,
) {
	dialog := gtk.MessageDialogNew(
		parent,
		gtk.DIALOG_DESTROY_WITH_PARENT|gtk.DIALOG_MODAL,
		gtk.MESSAGE_ERROR,
		gtk.BUTTONS_CLOSE,
		"%s",
		errorTitle(err),
	)
	dialog.FormatSecondaryText("%s", err.Error())
	dialog.SetTitle("GLFlame")

	messageArea, err := dialog.GetMessageArea()
	if err != nil {
		logrus.Warn(err)

	} else {
		messageArea.GetChildren().Foreach(func(item interface{}) {
			if widget, ok := item.(*gtk.Widget); ok {
				l, err := gtk.WidgetToLabel(widget)
				if err != nil {
					return
				}

				l.SetSelectable(true)
			}
		})
	}

	dialog.SetKeepAbove(true)
	dialog.Run()
	dialog.Destroy()
}
