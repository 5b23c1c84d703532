// Package keybind is a keyboard-shortcut registry for interactive
// applications. It maps key-combination strings like "mod+shift+z" to
// identified actions, dispatches matching keyboard input to registered
// callbacks, and exposes reactive state (pressed keys, last trigger,
// shortcut table) for UI consumption.
//
// A Manager owns a table of Shortcut definitions and consumes raw key
// events from a Host environment. On each key-down it scans the table in
// registration order for the first enabled, in-scope definition whose
// combination matches the event exactly, then notifies per-id subscribers
// and the global trigger channel. At most one shortcut fires per key-down.
//
// Combinations use the portable "mod" token, which resolves to Meta on
// Mac-family platforms and Ctrl everywhere else. Matching requires exact
// modifier-set equality: "ctrl+s" does not fire while Shift is also held.
//
// Managers are independent: multiple instances carry fully separate state.
package keybind
