// pkg/engine/loop.go
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrUnknownCommand is returned by Apply for a command it does not handle.
var ErrUnknownCommand = errors.New("unknown command")

// Command is an input intent delivered to a running simulation.
type Command int

const (
	CommandStartPropulsion Command = iota + 1
	CommandStopPropulsion
)

// String returns the command name used in logs
func (c Command) String() string {
	switch c {
	case CommandStartPropulsion:
		return "start_propulsion"
	case CommandStopPropulsion:
		return "stop_propulsion"
	default:
		return "unknown"
	}
}

// Apply executes a command against the simulation.
func (s *Simulation) Apply(cmd Command) error {
	switch cmd {
	case CommandStartPropulsion:
		s.StartPropulsion()
	case CommandStopPropulsion:
		s.StopPropulsion()
	default:
		return fmt.Errorf("%w: %d", ErrUnknownCommand, int(cmd))
	}
	return nil
}

// Run drives the simulation at the configured tick rate until ctx is done.
// Commands are applied between ticks; onFrame, if set, receives a snapshot
// after every tick. A closed commands channel stops command delivery but
// not the loop. Run returns nil on cancellation and ctx.Err() for any other
// context error such as a deadline.
func (s *Simulation) Run(ctx context.Context, commands <-chan Command, onFrame func(*State)) error {
	rate := s.config.Runtime.TickRate
	deltaTime := 1.0 / float64(rate)

	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info(ctx, "simulation loop stopped", "tick", s.tick, "score", s.score)
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()

		case cmd, ok := <-commands:
			if !ok {
				commands = nil
				continue
			}
			if err := s.Apply(cmd); err != nil {
				s.logger.Warn(ctx, "ignored command", "command", cmd.String(), "error", err.Error())
			}

		case <-ticker.C:
			if err := s.Advance(deltaTime); err != nil {
				return err
			}
			if onFrame != nil {
				onFrame(s.Snapshot())
			}
		}
	}
}
