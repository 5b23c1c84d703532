package keybind

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/dshills/keybind/key"
)

// config holds the manager's construction-time settings.
type config struct {
	initialShortcuts []Shortcut
	scope            string
	debug            bool
	platform         key.Platform
	platformSet      bool
	logger           zerolog.Logger
	loggerSet        bool
	host             Host
}

func defaultConfig() config {
	return config{
		scope:  GlobalScope,
		logger: zerolog.Nop(),
	}
}

// Option configures a Manager at construction time.
type Option func(*config)

// WithInitialShortcuts registers the given definitions before the manager
// is returned from New.
func WithInitialShortcuts(shortcuts ...Shortcut) Option {
	return func(c *config) {
		c.initialShortcuts = append(c.initialShortcuts, shortcuts...)
	}
}

// WithScope sets the starting scope. The default is GlobalScope.
func WithScope(scope string) Option {
	return func(c *config) {
		c.scope = scope
	}
}

// WithDebug enables diagnostic logging of init/destroy/register/trigger
// events. If no logger was supplied, a timestamped stderr logger is
// created at debug level.
func WithDebug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// WithLogger supplies the logger the manager writes diagnostics and
// conflict warnings to. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
		c.loggerSet = true
	}
}

// WithPlatform fixes the platform classification. A pinned platform is
// never overridden: Init skips host detection for it. Without this
// option the classification comes from the host at attach time, or from
// the running OS when no host exists.
func WithPlatform(p key.Platform) Option {
	return func(c *config) {
		c.platform = p
		c.platformSet = true
	}
}

// WithHost supplies the input environment the manager binds to on Init.
func WithHost(h Host) Option {
	return func(c *config) {
		c.host = h
	}
}

// buildLogger resolves the effective logger from the debug flag and any
// explicit logger option.
func (c *config) buildLogger() zerolog.Logger {
	if c.loggerSet {
		if c.debug {
			return c.logger.Level(zerolog.DebugLevel)
		}
		return c.logger
	}
	if c.debug {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().Timestamp().Str("component", "keybind").Logger().
			Level(zerolog.DebugLevel)
	}
	return zerolog.Nop()
}
