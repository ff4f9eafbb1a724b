package ui

import (
	"bufio"
	"fmt"
	"os"
)

// Run starts the main event loop for the application.
// This is the heart of libui - a single blocking loop.
// It returns when the app's Quit reports true or an input device closes.
func Run(app App) error {
	log := app.logger()

	// Initialize draw environment
	ctx, err := NewDrawContext()
	if err != nil {
		return fmt.Errorf("init draw: %w", err)
	}
	defer ctx.Close()

	// Open input devices
	mouse, err := os.Open("/dev/mouse")
	if err != nil {
		return fmt.Errorf("open mouse: %w", err)
	}
	defer mouse.Close()

	kbd, err := os.Open("/dev/cons")
	if err != nil {
		return fmt.Errorf("open cons: %w", err)
	}
	defer kbd.Close()

	// Set console to raw mode
	consctl, err := os.OpenFile("/dev/consctl", os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("open consctl: %w", err)
	}
	defer consctl.Close()
	if _, err := consctl.Write([]byte("rawon")); err != nil {
		return fmt.Errorf("set raw mode: %w", err)
	}

	// Initialize state
	model := app.Model
	view := ViewState{}
	view.Width, view.Height = ctx.Bounds()

	// The app lays itself out from a resize before the first draw.
	model = app.Reduce(model, Event{Kind: "resize", Data: Resize{Width: view.Width, Height: view.Height}})
	redraw(app, model, ctx)

	events := make(chan Event, 10)
	done := make(chan error, 2)

	// Mouse reader goroutine
	go func() {
		buf := make([]byte, mouseMsgLen)
		for {
			n, err := mouse.Read(buf)
			if err != nil {
				done <- fmt.Errorf("read mouse: %w", err)
				return
			}
			switch {
			case n > 0 && buf[0] == 'r':
				if err := ctx.Reattach(); err != nil {
					log.Warn("reattach after resize", "err", err)
					continue
				}
				w, h := ctx.Bounds()
				events <- Event{Kind: "resize", Data: Resize{Width: w, Height: h}}
			default:
				if m, ok := parseMouse(buf[:n]); ok {
					events <- Event{Kind: "mouse", Data: m}
				}
			}
		}
	}()

	// Keyboard reader goroutine
	go func() {
		reader := bufio.NewReader(kbd)
		for {
			r, _, err := reader.ReadRune()
			if err != nil {
				done <- fmt.Errorf("read keyboard: %w", err)
				return
			}
			events <- Event{Kind: "key", Data: Key{Rune: r}}
		}
	}()

	// Main event loop - single blocking loop
	for {
		var ev Event
		select {
		case ev = <-events:
		case err := <-done:
			return err
		}

		// Handle view-local state updates
		switch ev.Kind {
		case "resize":
			r := ev.Data.(Resize)
			view.Width = r.Width
			view.Height = r.Height
		case "mouse":
			m := ev.Data.(Mouse)
			m.Prev = view.Buttons
			view.Buttons = m.Buttons
			ev.Data = m
		}

		// Run reducer
		model = app.Reduce(model, ev)
		if app.Quit != nil && app.Quit(model) {
			return nil
		}

		redraw(app, model, ctx)
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("draw: %w", err)
		}
	}
}

func redraw(app App, model any, ctx *DrawContext) {
	ctx.Clear()
	app.Draw(model, ctx)
	ctx.Flush()
}
