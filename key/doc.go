// Package key provides key-combination parsing and matching for the
// shortcut registry.
//
// This package defines the fundamental types for describing keyboard
// shortcuts:
//
//   - Modifier: Represents modifier keys (Ctrl, Alt, Shift, Meta)
//   - Combo: A parsed combination of modifiers plus one literal key
//   - Platform: Classifies the host for "mod" resolution and display labels
//
// # Combination Specifications
//
// Combinations are written as "+"-separated strings where every token
// before the last names a modifier and the last token names the key:
//
//   - "mod+s", "ctrl+shift+p", "alt+enter", "escape"
//
// The "mod" token resolves to Meta on Mac-family platforms and Ctrl
// everywhere else. Parsing is permissive: unknown modifier tokens are
// ignored and malformed specs produce a combination that never matches
// rather than an error.
package key
