// pkg/render/sound.go
package render

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/opd-ai/go-asteroids/pkg/event"
)

const sampleRate = beep.SampleRate(48000)

// ThrusterSound plays an engine rumble while the craft's engine is on. It
// follows PropulsionStarted and PropulsionStopped events.
type ThrusterSound struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	engine      *beep.Ctrl
	initialized bool
	subs        []*event.Subscription
}

// NewThrusterSound creates a sound player. Nothing is heard until
// Initialize opens the speaker.
func NewThrusterSound() *ThrusterSound {
	return &ThrusterSound{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts streaming the mixer.
func (t *ThrusterSound) Initialize() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(t.mixer)
	t.initialized = true
	return nil
}

// Attach subscribes the player to the engine events on bus.
func (t *ThrusterSound) Attach(bus *event.Bus) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.subs = append(t.subs,
		bus.Subscribe(event.PropulsionStarted, func(event.Event) { t.Start() }),
		bus.Subscribe(event.PropulsionStopped, func(event.Event) { t.Stop() }),
	)
}

// Start begins the engine rumble unless it is already playing.
func (t *ThrusterSound) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lockSpeaker()
	defer t.unlockSpeaker()

	if t.engine != nil && !t.engine.Paused {
		return
	}
	if t.engine != nil {
		t.engine.Paused = false
		return
	}
	t.engine = &beep.Ctrl{Streamer: NewRumbleGenerator(sampleRate), Paused: false}
	t.mixer.Add(t.engine)
}

// Stop pauses the engine rumble.
func (t *ThrusterSound) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lockSpeaker()
	defer t.unlockSpeaker()

	if t.engine != nil {
		t.engine.Paused = true
	}
}

// lockSpeaker guards streamer changes against the audio goroutine once the
// speaker is running. t.mu must be held.
func (t *ThrusterSound) lockSpeaker() {
	if t.initialized {
		speaker.Lock()
	}
}

func (t *ThrusterSound) unlockSpeaker() {
	if t.initialized {
		speaker.Unlock()
	}
}

// Playing reports whether the rumble is audible.
func (t *ThrusterSound) Playing() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.engine != nil && !t.engine.Paused
}

// Close unsubscribes from the bus and silences the mixer.
func (t *ThrusterSound) Close() {
	t.mu.Lock()
	subs := t.subs
	t.subs = nil
	t.mu.Unlock()

	for _, sub := range subs {
		sub.Cancel()
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.initialized {
		speaker.Clear()
	}
	t.mixer.Clear()
	t.engine = nil
	t.initialized = false
}

// RumbleGenerator produces an endless low engine drone
type RumbleGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewRumbleGenerator creates a rumble generator
func NewRumbleGenerator(sr beep.SampleRate) *RumbleGenerator {
	return &RumbleGenerator{sr: sr}
}

func (g *RumbleGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Two detuned low tones beating against each other, with a slow wobble
		wobble := 1 + 0.1*math.Sin(2*math.Pi*6*t)
		sample := 0.5*math.Sin(2*math.Pi*55*t) + 0.3*math.Sin(2*math.Pi*57.5*t)
		sample *= wobble

		// Fade in over the first 50ms
		envelope := math.Min(t/0.05, 1.0)
		sample *= envelope * 0.2

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *RumbleGenerator) Err() error {
	return nil
}
