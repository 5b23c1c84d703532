// Package tcellhost adapts a tcell terminal screen into a keybind host
// environment.
//
// Terminals only report key presses, never releases, so the manager's
// key-up surface is never exercised here; pressed-key state is maintained
// by the manager's post-trigger clearing and by Blur on focus loss.
// Terminals also have no default key action, so suppression calls are
// no-ops.
package tcellhost

import (
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keybind"
	"github.com/dshills/keybind/key"
)

// Host feeds key events from a tcell screen into an attached sink.
type Host struct {
	screen tcell.Screen
}

// New creates a host around an initialized tcell screen. The caller keeps
// ownership of the screen and is responsible for Fini.
func New(screen tcell.Screen) *Host {
	return &Host{screen: screen}
}

// Platform returns the running OS name as the host identification string.
func (h *Host) Platform() string {
	return runtime.GOOS
}

// Attach starts pumping screen events to the sink from a background
// goroutine. Focus-loss events become Blur; everything that is not a key
// or focus event is ignored. The returned function stops the pump.
func (h *Host) Attach(sink keybind.Sink) (detach func()) {
	quit := make(chan struct{})
	events := make(chan tcell.Event, 16)

	h.screen.EnableFocus()
	go h.screen.ChannelEvents(events, quit)

	go func() {
		for ev := range events {
			switch tev := ev.(type) {
			case *tcell.EventKey:
				sink.KeyDown(Translate(tev))
			case *tcell.EventFocus:
				if !tev.Focused {
					sink.Blur()
				}
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(quit) })
	}
}

// Event is a translated tcell key event. Suppression is a no-op: a
// terminal key press has no default action to cancel.
type Event struct {
	tev  *tcell.EventKey
	name string
	mods key.Modifier
}

// Key returns the normalized key name.
func (e *Event) Key() string { return e.name }

// Modifiers returns the modifier flags held during the event.
func (e *Event) Modifiers() key.Modifier { return e.mods }

// PreventDefault is a no-op for terminal input.
func (e *Event) PreventDefault() {}

// StopPropagation is a no-op for terminal input.
func (e *Event) StopPropagation() {}

// Raw returns the underlying tcell event.
func (e *Event) Raw() *tcell.EventKey { return e.tev }

// Translate converts a tcell key event into a keybind key event.
// Applications running their own tcell event loop can call this directly
// and hand the result to Manager.KeyDown.
func Translate(tev *tcell.EventKey) *Event {
	name, mods := normalize(tev)
	return &Event{tev: tev, name: name, mods: mods}
}

// normalize derives the key name and modifier set. Terminals encode
// Ctrl+letter as a control character, so those are folded back into the
// letter plus an explicit Ctrl flag.
func normalize(tev *tcell.EventKey) (string, key.Modifier) {
	var mods key.Modifier
	tm := tev.Modifiers()
	if tm&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if tm&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if tm&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if tm&tcell.ModMeta != 0 {
		mods = mods.With(key.ModMeta)
	}

	k := tev.Key()
	switch k {
	case tcell.KeyRune:
		r := tev.Rune()
		if r == ' ' {
			return "space", mods
		}
		return strings.ToLower(string(r)), mods
	case tcell.KeyEnter:
		return "enter", mods
	case tcell.KeyTab:
		return "tab", mods
	case tcell.KeyEscape:
		return "escape", mods
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "backspace", mods
	case tcell.KeyDelete:
		return "delete", mods
	case tcell.KeyInsert:
		return "insert", mods
	case tcell.KeyHome:
		return "home", mods
	case tcell.KeyEnd:
		return "end", mods
	case tcell.KeyPgUp:
		return "pageup", mods
	case tcell.KeyPgDn:
		return "pagedown", mods
	case tcell.KeyUp:
		return "up", mods
	case tcell.KeyDown:
		return "down", mods
	case tcell.KeyLeft:
		return "left", mods
	case tcell.KeyRight:
		return "right", mods
	}

	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return fmt.Sprintf("f%d", int(k-tcell.KeyF1)+1), mods
	}

	// Remaining control characters fold back to letter + Ctrl.
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		letter := rune('a' + (k - tcell.KeyCtrlA))
		return string(letter), mods.With(key.ModCtrl)
	}

	return strings.ToLower(tcell.KeyNames[k]), mods
}
