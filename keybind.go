package keybind

import (
	"sort"
	"time"
)

// GlobalScope is the sentinel scope meaning "always eligible". A shortcut
// with an empty Scope or Scope == GlobalScope fires regardless of the
// manager's current scope.
const GlobalScope = "global"

// Shortcut describes one registered shortcut. Identity is ID; registering
// a second definition with the same ID replaces the first entirely.
//
// The zero values of Disabled and PassThrough give the common behavior: a
// freshly declared shortcut is enabled and suppresses the host's default
// handling when it fires.
type Shortcut struct {
	// ID uniquely identifies the shortcut in the table.
	ID string

	// Name is a short human-readable title for display.
	Name string

	// Description documents what the shortcut does.
	Description string

	// Keys is the combination spec, e.g. "mod+shift+z".
	Keys string

	// Disabled excludes the shortcut from matching without removing it.
	Disabled bool

	// PassThrough leaves the host's default handling intact when the
	// shortcut fires instead of suppressing it.
	PassThrough bool

	// Scope gates eligibility: empty or GlobalScope is always eligible,
	// anything else requires the manager's current scope to be equal.
	Scope string
}

// InScope reports whether the shortcut is eligible under the given
// current scope.
func (s Shortcut) InScope(current string) bool {
	return s.Scope == "" || s.Scope == GlobalScope || s.Scope == current
}

// Trigger is produced each time a key-down matches an enabled, in-scope
// shortcut. Triggers are immutable; every subscriber for a given firing
// receives the same value.
type Trigger struct {
	// ID is the fired shortcut's identifier.
	ID string

	// Time is when the match occurred.
	Time time.Time

	// Event is the raw input event that caused the trigger.
	Event KeyEvent
}

// KeySet is the set of normalized key names currently held down. Values
// exposed through the manager are copy-on-write snapshots; callers must
// not mutate them.
type KeySet map[string]struct{}

// Has reports whether the named key is held.
func (s KeySet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Keys returns the held key names in sorted order.
func (s KeySet) Keys() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// clone copies the set.
func (s KeySet) clone() KeySet {
	out := make(KeySet, len(s))
	for name := range s {
		out[name] = struct{}{}
	}
	return out
}
