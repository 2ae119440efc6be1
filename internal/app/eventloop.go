package app

import (
	"time"

	"github.com/IVSoftware/debug-slow-flow/internal/backend"
	"github.com/IVSoftware/debug-slow-flow/internal/ui"
)

// startInputPolling starts a goroutine that polls the backend for input
// and forwards it to the returned channel.
//
// PollEvent is blocking; the backend.Shutdown() call in Run unblocks it,
// after which PollEvent yields EventNone and the goroutine exits.
func (app *Application) startInputPolling() <-chan backend.Event {
	input := make(chan backend.Event, 100)

	go func() {
		defer close(input)

		for app.running.Load() {
			ev := app.backend.PollEvent()
			if ev.Type == backend.EventNone {
				return
			}

			// May have been signalled during the blocking poll.
			if !app.running.Load() {
				return
			}

			select {
			case input <- ev:
			case <-app.done:
				return
			default:
				// Buffer full; drop rather than block the poller.
			}
		}
	}()

	return input
}

// eventLoop runs until shutdown or an error. Besides backend input it
// drains the window loop's task queue, which is where deferred click
// deliveries run, and repaints on a frame ticker.
func (app *Application) eventLoop(input <-chan backend.Event) error {
	fps := app.cfg.UI.FPS
	if fps <= 0 {
		fps = 30
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case <-app.done:
			return nil

		case ev, ok := <-input:
			if !ok {
				return nil
			}
			if err := app.handleBackendEvent(ev); err != nil {
				return err
			}

		case <-app.loop.WakeChan():
			app.loop.RunPending()

		case <-ticker.C:
			app.render()
		}
	}
}

// handleBackendEvent translates one terminal event into the toolkit's
// dispatch chain.
func (app *Application) handleBackendEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventInterrupt:
		return ErrQuit

	case backend.EventResize:
		app.win.SetBounds(ui.Rect{Width: ev.Width, Height: ev.Height})
		app.form.Layout(app.win.Bounds())
		app.render()

	case backend.EventKey:
		return app.handleKey(ev)

	case backend.EventMouse:
		app.handleMouse(ev)
	}
	return nil
}

// handleKey routes keyboard input. While a message box is up every key
// goes to the window, which uses it to dismiss; quit keys are only
// honored outside of that.
func (app *Application) handleKey(ev backend.Event) error {
	if !app.win.ModalVisible() {
		switch {
		case ev.Key == backend.KeyCtrlC, ev.Key == backend.KeyEscape:
			return ErrQuit
		case ev.Key == backend.KeyRune && ev.Rune == 'q':
			return ErrQuit
		}
	}

	app.loop.Dispatch(&ui.Message{
		Kind:   ui.KindKeyDown,
		Target: app.win.Handle(),
		Key:    ev.Key,
		Rune:   ev.Rune,
		Mod:    ev.Mod,
		Time:   time.Now(),
	})
	return nil
}

// handleMouse hit-tests the pointer position and dispatches the message
// addressed to the widget under it. The target travels as a handle:
// anything between here and delivery may dispose the widget, and a dead
// handle simply fails to resolve.
func (app *Application) handleMouse(ev backend.Event) {
	kind := ui.MouseMessageKind(ev.Button, ev.Action)
	if kind == ui.KindNone {
		return
	}

	target := ui.InvalidHandle
	pos := ui.Point{X: ev.X, Y: ev.Y}
	if w := app.win.WidgetAt(pos); w != nil {
		target = w.Handle()
	}

	delta := 0
	if kind == ui.KindWheel {
		if ev.Button == backend.WheelUp {
			delta = -1
		} else {
			delta = 1
		}
	}

	app.loop.Dispatch(&ui.Message{
		Kind:   kind,
		Target: target,
		Pos:    pos,
		Mod:    ev.Mod,
		Delta:  delta,
		Time:   time.Now(),
	})
}

// layout sizes the window to the backend and lays out the form.
func (app *Application) layout() {
	w, h := app.backend.Size()
	app.win.SetBounds(ui.Rect{Width: w, Height: h})
	app.form.Layout(app.win.Bounds())
}

// render repaints the whole window.
func (app *Application) render() {
	app.backend.Clear()
	app.win.Paint(app.backend)
	app.backend.Show()
}
