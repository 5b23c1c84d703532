package keybind

import "github.com/dshills/keybind/key"

// KeyEvent is the raw keyboard event a host environment delivers. Key
// returns the host's key identifier ("s", "Enter", "F5"); the manager
// normalizes it to lower case before matching. Modifiers carries the
// ctrl/shift/alt/meta flags asserted while the key went down.
//
// PreventDefault and StopPropagation suppress the host's default handling
// and halt further dispatch; hosts without those semantics implement them
// as no-ops.
type KeyEvent interface {
	Key() string
	Modifiers() key.Modifier
	PreventDefault()
	StopPropagation()
}

// Sink receives the manager's inbound event surface. The Manager itself
// implements Sink; hosts push events into whatever Sink they were attached
// with.
type Sink interface {
	// KeyDown delivers a key press.
	KeyDown(KeyEvent)

	// KeyUp delivers a key release.
	KeyUp(KeyEvent)

	// Blur signals focus loss; the manager resets pressed-key state
	// since releases may have been missed.
	Blur()
}

// Host is an input environment the manager can attach to. Platform
// returns a descriptive identification string, read once at attach time
// to classify the host as Mac-family or other. Attach starts delivering
// events to the sink and returns a function that stops delivery.
type Host interface {
	Platform() string
	Attach(Sink) (detach func())
}

// BasicEvent is a plain KeyEvent for hosts without default-action
// semantics and for tests. Suppressed and Stopped record whether the
// corresponding calls were made.
type BasicEvent struct {
	Name       string
	Mods       key.Modifier
	Suppressed bool
	Stopped    bool
}

// Key returns the event's key identifier.
func (e *BasicEvent) Key() string { return e.Name }

// Modifiers returns the modifier flags held during the event.
func (e *BasicEvent) Modifiers() key.Modifier { return e.Mods }

// PreventDefault records the suppression request.
func (e *BasicEvent) PreventDefault() { e.Suppressed = true }

// StopPropagation records the halt request.
func (e *BasicEvent) StopPropagation() { e.Stopped = true }
