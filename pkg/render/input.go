// pkg/render/input.go
package render

import (
	"context"
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-asteroids/pkg/engine"
)

// ErrQuit is returned by PollInput when the player asks to leave.
var ErrQuit = errors.New("quit requested")

// KeyCommand maps a key press to a simulation command. Terminals report no
// key releases, so the engine is switched on and off by separate keys.
func KeyCommand(ev *tcell.EventKey) (engine.Command, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return engine.CommandStartPropulsion, true
	case tcell.KeyDown:
		return engine.CommandStopPropulsion, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return engine.CommandStartPropulsion, true
		case 's', 'S', ' ':
			return engine.CommandStopPropulsion, true
		}
	}
	return 0, false
}

// IsQuitKey reports whether the key ends the session.
func IsQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// PollInput reads screen events and forwards key commands until the player
// quits (ErrQuit), the screen is finalised, or ctx is done. An interrupt
// event wakes the loop so it can observe cancellation; see Interrupt.
func PollInput(ctx context.Context, screen tcell.Screen, commands chan<- engine.Command) error {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if IsQuitKey(ev) {
				return ErrQuit
			}
			cmd, ok := KeyCommand(ev)
			if !ok {
				continue
			}
			select {
			case commands <- cmd:
			case <-ctx.Done():
				return nil
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

// Interrupt wakes a PollInput call blocked on screen.
func Interrupt(screen tcell.Screen) error {
	return screen.PostEvent(tcell.NewEventInterrupt(nil))
}
