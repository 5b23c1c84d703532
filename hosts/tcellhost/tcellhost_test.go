package tcellhost

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keybind/key"
)

func TestTranslateRunes(t *testing.T) {
	tests := []struct {
		r        rune
		tmods    tcell.ModMask
		wantName string
		wantMods key.Modifier
	}{
		{'a', tcell.ModNone, "a", key.ModNone},
		{'A', tcell.ModShift, "a", key.ModShift},
		{'z', tcell.ModAlt, "z", key.ModAlt},
		{' ', tcell.ModNone, "space", key.ModNone},
		{'/', tcell.ModNone, "/", key.ModNone},
	}

	for _, tt := range tests {
		ev := Translate(tcell.NewEventKey(tcell.KeyRune, tt.r, tt.tmods))
		if ev.Key() != tt.wantName {
			t.Errorf("Translate(%q) key = %q, want %q", tt.r, ev.Key(), tt.wantName)
		}
		if ev.Modifiers() != tt.wantMods {
			t.Errorf("Translate(%q) mods = %v, want %v", tt.r, ev.Modifiers(), tt.wantMods)
		}
	}
}

func TestTranslateSpecialKeys(t *testing.T) {
	tests := []struct {
		k    tcell.Key
		want string
	}{
		{tcell.KeyEnter, "enter"},
		{tcell.KeyTab, "tab"},
		{tcell.KeyEscape, "escape"},
		{tcell.KeyBackspace, "backspace"},
		{tcell.KeyBackspace2, "backspace"},
		{tcell.KeyDelete, "delete"},
		{tcell.KeyHome, "home"},
		{tcell.KeyEnd, "end"},
		{tcell.KeyPgUp, "pageup"},
		{tcell.KeyPgDn, "pagedown"},
		{tcell.KeyUp, "up"},
		{tcell.KeyLeft, "left"},
		{tcell.KeyF1, "f1"},
		{tcell.KeyF12, "f12"},
	}

	for _, tt := range tests {
		ev := Translate(tcell.NewEventKey(tt.k, 0, tcell.ModNone))
		if ev.Key() != tt.want {
			t.Errorf("Translate(%v) key = %q, want %q", tt.k, ev.Key(), tt.want)
		}
	}
}

func TestTranslateCtrlLetters(t *testing.T) {
	// Terminals encode Ctrl+S as the DC3 control character.
	ev := Translate(tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl))

	if ev.Key() != "s" {
		t.Errorf("key = %q, want s", ev.Key())
	}
	if !ev.Modifiers().HasCtrl() {
		t.Error("ctrl flag should be set")
	}
}

func TestTranslateCtrlLetterWithoutModFlag(t *testing.T) {
	// Some terminals deliver the control character with no modifier mask;
	// the fold-back must still assert Ctrl.
	ev := Translate(tcell.NewEventKey(tcell.KeyCtrlK, 0, tcell.ModNone))

	if ev.Key() != "k" {
		t.Errorf("key = %q, want k", ev.Key())
	}
	if !ev.Modifiers().HasCtrl() {
		t.Error("ctrl flag should be derived from the control character")
	}
}

func TestTranslateModifierMask(t *testing.T) {
	ev := Translate(tcell.NewEventKey(tcell.KeyRune, 'p',
		tcell.ModCtrl|tcell.ModShift|tcell.ModAlt|tcell.ModMeta))

	want := key.ModCtrl | key.ModShift | key.ModAlt | key.ModMeta
	if ev.Modifiers() != want {
		t.Errorf("mods = %v, want %v", ev.Modifiers(), want)
	}
}

func TestSuppressionIsNoOp(t *testing.T) {
	ev := Translate(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))
	ev.PreventDefault()
	ev.StopPropagation()
	if ev.Raw() == nil {
		t.Error("Raw() should return the underlying event")
	}
}
