// Package main is an interactive demo of the keybind shortcut registry.
// It binds a manager to a tcell screen and displays the shortcut table,
// pressed keys, and last trigger as they change.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/dshills/keybind"
	"github.com/dshills/keybind/hosts/tcellhost"
	"github.com/dshills/keybind/key"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		debug         bool
		shortcutsPath string
	)
	flag.BoolVar(&debug, "debug", false, "Write diagnostic logs to keybind-demo.log")
	flag.StringVar(&shortcutsPath, "shortcuts", "", "Path to a JSON shortcut definition file")
	flag.Parse()

	opts := []keybind.Option{
		keybind.WithInitialShortcuts(defaultShortcuts()...),
	}
	if debug {
		logFile, err := os.Create("keybind-demo.log")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to create log file: %v\n", err)
			return 1
		}
		defer logFile.Close()
		opts = append(opts,
			keybind.WithDebug(),
			keybind.WithLogger(zerolog.New(logFile).With().Timestamp().Logger()),
		)
	}

	manager := keybind.New(opts...)
	if shortcutsPath != "" {
		if err := manager.LoadShortcutsFile(shortcutsPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize screen: %v\n", err)
		return 1
	}
	defer screen.Fini()

	manager.SetHost(tcellhost.New(screen))
	manager.Init()
	defer manager.Destroy()

	done := make(chan struct{})
	redraw := make(chan struct{}, 1)
	notify := func() {
		select {
		case redraw <- struct{}{}:
		default:
		}
	}

	manager.Subscribe("quit", func(keybind.Trigger) { close(done) })
	manager.Subscribe("toggle-scope", func(keybind.Trigger) {
		if manager.Scope() == keybind.GlobalScope {
			manager.SetScope("editor")
		} else {
			manager.SetScope(keybind.GlobalScope)
		}
	})

	manager.Table().Subscribe(func([]keybind.Shortcut) { notify() })
	manager.Pressed().Subscribe(func(keybind.KeySet) { notify() })
	manager.LastTrigger().Subscribe(func(*keybind.Trigger) { notify() })
	manager.ScopeValue().Subscribe(func(string) { notify() })

	for {
		draw(screen, manager)
		select {
		case <-done:
			return 0
		case <-redraw:
		}
	}
}

func defaultShortcuts() []keybind.Shortcut {
	return []keybind.Shortcut{
		{ID: "quit", Name: "Quit", Description: "Exit the demo", Keys: "ctrl+q"},
		{ID: "save", Name: "Save", Description: "Pretend to save", Keys: "mod+s"},
		{ID: "redo", Name: "Redo", Description: "Pretend to redo", Keys: "mod+shift+z"},
		{ID: "toggle-scope", Name: "Toggle Scope", Description: "Switch between global and editor scope", Keys: "tab"},
		{ID: "editor-find", Name: "Find", Description: "Only fires in editor scope", Keys: "mod+f", Scope: "editor"},
	}
}

func draw(screen tcell.Screen, manager *keybind.Manager) {
	screen.Clear()

	style := tcell.StyleDefault
	bold := style.Bold(true)
	dim := style.Foreground(tcell.ColorGray)

	drawText(screen, 1, 1, bold, "keybind demo")
	drawText(screen, 1, 2, dim, "press shortcuts below; Ctrl+Q quits")

	row := 4
	drawText(screen, 1, row, bold, fmt.Sprintf("scope: %s", manager.Scope()))
	row += 2

	platform := manager.Platform()
	for _, sc := range manager.All() {
		combo := key.ParseCombo(sc.Keys, platform)
		line := fmt.Sprintf("%-14s %-10s %s", combo.Label(platform), sc.ID, sc.Description)
		lineStyle := style
		if sc.Disabled || !sc.InScope(manager.Scope()) {
			lineStyle = dim
		}
		drawText(screen, 3, row, lineStyle, line)
		row++
	}
	row++

	held := manager.Pressed().Get()
	drawText(screen, 1, row, style, fmt.Sprintf("pressed: %v", held.Keys()))
	row++

	if last := manager.LastTrigger().Get(); last != nil {
		drawText(screen, 1, row, style,
			fmt.Sprintf("last trigger: %s at %s", last.ID, last.Time.Format("15:04:05.000")))
	}
	row++

	stats := manager.Stats()
	drawText(screen, 1, row, dim,
		fmt.Sprintf("events=%d triggers=%d callbacks=%d", stats.KeyEvents, stats.Triggers, stats.Callbacks))

	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
