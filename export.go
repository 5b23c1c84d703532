package keybind

import (
	"fmt"

	"github.com/tidwall/sjson"

	"github.com/dshills/keybind/key"
)

// ExportShortcuts serializes the current table to a JSON document for
// host UIs (help overlays, cheat sheets). Each entry carries the
// definition fields plus a platform-resolved display label, in table
// order. The output shape round-trips through ParseShortcuts.
func (m *Manager) ExportShortcuts() ([]byte, error) {
	out := []byte(`{"shortcuts":[]}`)

	for i, sc := range m.All() {
		combo := key.ParseCombo(sc.Keys, m.platform)

		entry := map[string]any{
			"id":             sc.ID,
			"name":           sc.Name,
			"description":    sc.Description,
			"keys":           sc.Keys,
			"label":          combo.Label(m.platform),
			"enabled":        !sc.Disabled,
			"preventDefault": !sc.PassThrough,
		}
		if sc.Scope != "" {
			entry["scope"] = sc.Scope
		}

		var err error
		out, err = sjson.SetBytes(out, fmt.Sprintf("shortcuts.%d", i), entry)
		if err != nil {
			return nil, fmt.Errorf("exporting shortcut %q: %w", sc.ID, err)
		}
	}

	return out, nil
}
