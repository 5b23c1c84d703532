package key

import "strings"

// Combo is a parsed key combination: a set of required modifiers plus one
// literal key name. The zero value never matches anything.
type Combo struct {
	// Mods is the exact modifier set the combination requires.
	Mods Modifier

	// Key is the lowercase literal key name, e.g. "s", "enter", "f5".
	Key string
}

// ParseCombo parses a combination spec like "mod+shift+z" against a
// platform. Tokens are lowercased and split on "+"; the final token is the
// literal key and every preceding token names a modifier. The portable
// "mod" token resolves to Meta on Mac-family platforms and Ctrl elsewhere.
//
// Parsing is permissive: duplicate modifiers collapse, unknown modifier
// tokens are ignored, and an empty or malformed spec yields a combination
// that simply never matches. No error is ever returned.
func ParseCombo(spec string, platform Platform) Combo {
	spec = strings.ToLower(strings.TrimSpace(spec))
	parts := strings.Split(spec, "+")

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		p = strings.TrimSpace(p)
		if p == "mod" {
			mods = mods.With(platform.ModResolved())
			continue
		}
		mods = mods.With(ModifierFromName(p))
	}

	return Combo{
		Mods: mods,
		Key:  strings.TrimSpace(parts[len(parts)-1]),
	}
}

// Matches reports whether a raw input event with the given key name and
// modifier flags satisfies this combination. The key name is compared
// case-insensitively and the modifier set must be exactly equal: an event
// holding extra modifiers never matches a combination requiring fewer.
func (c Combo) Matches(eventKey string, eventMods Modifier) bool {
	if c.Key == "" {
		return false
	}
	if strings.ToLower(eventKey) != c.Key {
		return false
	}
	return eventMods == c.Mods
}

// String returns the canonical normalized form: platform-resolved,
// lowercase, modifiers in fixed ctrl/alt/shift/meta order, e.g.
// "ctrl+shift+z". Two specs that normalize to the same string are the
// same combination; the conflict detector keys on this form.
func (c Combo) String() string {
	if c.Mods.IsEmpty() {
		return c.Key
	}
	return c.Mods.String() + "+" + c.Key
}

// Normalize parses a spec and returns its canonical combination string
// for the given platform.
func Normalize(spec string, platform Platform) string {
	return ParseCombo(spec, platform).String()
}

// macGlyphs maps each modifier to its Mac display glyph, in the
// conventional ctrl/alt/shift/meta display order.
var macGlyphs = []struct {
	mod   Modifier
	glyph string
}{
	{ModCtrl, "⌃"},  // ⌃
	{ModAlt, "⌥"},   // ⌥
	{ModShift, "⇧"}, // ⇧
	{ModMeta, "⌘"},  // ⌘
}

// labelNames maps modifiers to their textual display names for non-Mac
// platforms.
var labelNames = []struct {
	mod  Modifier
	name string
}{
	{ModCtrl, "Ctrl"},
	{ModAlt, "Alt"},
	{ModShift, "Shift"},
	{ModMeta, "Meta"},
}

// Label renders the combination for display: a glyph sequence like "⌘⇧Z"
// on Mac-family platforms, "Ctrl+Shift+Z" text elsewhere. Purely cosmetic;
// matching never consults labels.
func (c Combo) Label(platform Platform) string {
	keyName := titleKey(c.Key)

	if platform == PlatformMac {
		var b strings.Builder
		for _, g := range macGlyphs {
			if c.Mods.Has(g.mod) {
				b.WriteString(g.glyph)
			}
		}
		b.WriteString(keyName)
		return b.String()
	}

	var parts []string
	for _, n := range labelNames {
		if c.Mods.Has(n.mod) {
			parts = append(parts, n.name)
		}
	}
	parts = append(parts, keyName)
	return strings.Join(parts, "+")
}

// titleKey capitalizes a key name for display: "s" -> "S",
// "enter" -> "Enter".
func titleKey(name string) string {
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
