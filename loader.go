package keybind

import (
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// ErrInvalidDocument reports a shortcut document that is not valid JSON.
var ErrInvalidDocument = errors.New("invalid shortcut document")

// ParseShortcuts extracts shortcut definitions from a JSON document. The
// document is either a bare array of definition objects or an object with
// a "shortcuts" array. Recognized fields per entry: id, name, description,
// keys, preventDefault (default true), enabled (default true), scope.
//
// Extraction is permissive in the same way combination parsing is:
// missing fields take their defaults and unknown fields are ignored. Only
// a document that is not JSON at all is an error.
func ParseShortcuts(data []byte) ([]Shortcut, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidDocument
	}

	root := gjson.ParseBytes(data)
	list := root
	if root.IsObject() {
		list = root.Get("shortcuts")
	}
	if !list.IsArray() {
		return nil, fmt.Errorf("%w: expected an array of definitions", ErrInvalidDocument)
	}

	var shortcuts []Shortcut
	list.ForEach(func(_, entry gjson.Result) bool {
		sc := Shortcut{
			ID:          entry.Get("id").String(),
			Name:        entry.Get("name").String(),
			Description: entry.Get("description").String(),
			Keys:        entry.Get("keys").String(),
			Scope:       entry.Get("scope").String(),
		}
		if v := entry.Get("enabled"); v.Exists() && !v.Bool() {
			sc.Disabled = true
		}
		if v := entry.Get("preventDefault"); v.Exists() && !v.Bool() {
			sc.PassThrough = true
		}
		shortcuts = append(shortcuts, sc)
		return true
	})

	return shortcuts, nil
}

// LoadShortcuts parses a JSON document and registers every definition it
// contains.
func (m *Manager) LoadShortcuts(data []byte) error {
	shortcuts, err := ParseShortcuts(data)
	if err != nil {
		return err
	}
	m.RegisterAll(shortcuts...)
	return nil
}

// LoadShortcutsFile reads a JSON definition file and registers its
// contents.
func (m *Manager) LoadShortcutsFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading shortcut file: %w", err)
	}
	if err := m.LoadShortcuts(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
