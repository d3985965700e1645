// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
)

// Button names registered by SetupInputBindings
const (
	ButtonThrust = "thrust"
	ButtonQuit   = "quit"
)

// Propeller is the command surface the input system drives
type Propeller interface {
	StartPropulsion()
	StopPropulsion()
}

// InputSystem keeps the engine on while the thrust button is held.
type InputSystem struct {
	target Propeller
	held   bool
}

// NewInputSystem creates a new input system
func NewInputSystem(target Propeller) *InputSystem {
	return &InputSystem{target: target}
}

// Remove satisfies the ecs.System interface
func (is *InputSystem) Remove(ecs.BasicEntity) {}

// Update reads the keyboard once per frame
func (is *InputSystem) Update(float32) {
	if engo.Input.Button(ButtonQuit).JustPressed() {
		engo.Exit()
		return
	}
	is.apply(engo.Input.Button(ButtonThrust).Down())
}

// apply forwards a change of the thrust button to the target.
func (is *InputSystem) apply(held bool) {
	if held == is.held {
		return
	}
	is.held = held
	if held {
		is.target.StartPropulsion()
	} else {
		is.target.StopPropulsion()
	}
}

// SetupInputBindings sets up the key bindings for the game
func SetupInputBindings() {
	engo.Input.RegisterButton(ButtonThrust, engo.KeyW, engo.KeyArrowUp)
	engo.Input.RegisterButton(ButtonQuit, engo.KeyEscape, engo.KeyQ)
}
