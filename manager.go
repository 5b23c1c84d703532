package keybind

import (
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dshills/keybind/key"
	"github.com/dshills/keybind/reactive"
)

// Manager owns the shortcut table, the current scope, and the pressed-key
// set, and dispatches host key events to registered callbacks. All shared
// state lives in reactive containers holding copy-on-write snapshots, so
// subscribers never observe a partial update.
//
// Every operation is synchronous: registration, matching, and callback
// notification complete before the triggering call returns.
type Manager struct {
	platform       key.Platform
	platformPinned bool
	logger         zerolog.Logger
	host           Host

	table       *reactive.Value[[]Shortcut]
	scope       *reactive.Value[string]
	pressed     *reactive.Value[KeySet]
	lastTrigger *reactive.Value[*Trigger]
	triggers    *reactive.Channel[Trigger]

	mu     sync.Mutex
	subs   map[string][]subscriber
	detach func()

	keyEvents atomic.Uint64
	fired     atomic.Uint64
	callbacks atomic.Uint64
}

// subscriber is one per-id callback registration. Callbacks for an id run
// in registration order.
type subscriber struct {
	token string
	fn    func(Trigger)
}

// Subscription handles cancellation of a per-id callback.
type Subscription struct {
	cancel func()
}

// Unsubscribe removes the callback. Safe to call more than once; it does
// not affect other subscribers to the same id.
func (s Subscription) Unsubscribe() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Stats are the manager's dispatch counters.
type Stats struct {
	// KeyEvents counts key-down events handled while listening.
	KeyEvents uint64

	// Triggers counts successful shortcut matches.
	Triggers uint64

	// Callbacks counts per-id callback invocations.
	Callbacks uint64
}

// New creates a manager. With no options it starts with an empty table,
// GlobalScope, a discarding logger, and the running OS's platform
// classification.
func New(opts ...Option) *Manager {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	platform := key.CurrentPlatform()
	if cfg.platformSet {
		platform = cfg.platform
	}

	m := &Manager{
		platform:       platform,
		platformPinned: cfg.platformSet,
		logger:         cfg.buildLogger(),
		host:           cfg.host,
		table:          reactive.NewValue([]Shortcut(nil)),
		scope:          reactive.NewValue(cfg.scope),
		pressed:        reactive.NewValue(KeySet{}),
		lastTrigger:    reactive.NewValue[*Trigger](nil),
		triggers:       reactive.NewChannel[Trigger](),
		subs:           make(map[string][]subscriber),
	}

	if len(cfg.initialShortcuts) > 0 {
		m.RegisterAll(cfg.initialShortcuts...)
	}

	return m
}

// Platform returns the manager's platform classification.
func (m *Manager) Platform() key.Platform {
	return m.platform
}

// Init binds the manager to its host input environment and begins
// listening. Idempotent: re-initializing a listening manager is a no-op.
// With no host configured it is a silent no-op, not a failure; callers
// may Init before a host exists without consequence.
func (m *Manager) Init() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.detach != nil {
		return
	}
	if m.host == nil {
		m.logger.Debug().Msg("init skipped: no host environment")
		return
	}

	if !m.platformPinned {
		m.platform = key.DetectPlatform(m.host.Platform())
	}
	m.detach = m.host.Attach(m)
	m.logger.Debug().Str("platform", m.platform.String()).Msg("listening")
}

// Destroy stops listening and removes the host binding. Idempotent.
func (m *Manager) Destroy() {
	m.mu.Lock()
	detach := m.detach
	m.detach = nil
	m.mu.Unlock()

	if detach != nil {
		detach()
		m.logger.Debug().Msg("destroyed")
	}
}

// IsListening reports whether the manager is bound to a host.
func (m *Manager) IsListening() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.detach != nil
}

// SetHost replaces the host environment used by the next Init.
func (m *Manager) SetHost(h Host) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.host = h
}

// Register inserts a definition into the shortcut table, replacing any
// existing definition with the same id in place. The table snapshot is
// replaced wholesale and conflict detection runs over the result; found
// conflicts are logged, never rejected.
func (m *Manager) Register(sc Shortcut) {
	m.table.Update(func(old []Shortcut) []Shortcut {
		return upsert(old, sc)
	})
	m.logger.Debug().Str("id", sc.ID).Str("keys", sc.Keys).Msg("registered shortcut")
	m.warnConflicts()
}

// RegisterAll registers several definitions in order, then runs conflict
// detection once over the final table.
func (m *Manager) RegisterAll(shortcuts ...Shortcut) {
	m.table.Update(func(old []Shortcut) []Shortcut {
		for _, sc := range shortcuts {
			old = upsert(old, sc)
		}
		return old
	})
	m.logger.Debug().Int("count", len(shortcuts)).Msg("registered shortcuts")
	m.warnConflicts()
}

// upsert copies the table and inserts or replaces by id. A replaced
// definition keeps its original table position.
func upsert(table []Shortcut, sc Shortcut) []Shortcut {
	out := make([]Shortcut, len(table), len(table)+1)
	copy(out, table)
	for i := range out {
		if out[i].ID == sc.ID {
			out[i] = sc
			return out
		}
	}
	return append(out, sc)
}

// Unregister removes a definition by id. No-op if absent.
func (m *Manager) Unregister(id string) {
	m.table.Update(func(old []Shortcut) []Shortcut {
		out := make([]Shortcut, 0, len(old))
		for _, sc := range old {
			if sc.ID != id {
				out = append(out, sc)
			}
		}
		return out
	})
	m.logger.Debug().Str("id", id).Msg("unregistered shortcut")
}

// Enable re-enables a disabled shortcut. No-op if the id is absent.
func (m *Manager) Enable(id string) {
	m.setDisabled(id, false)
}

// Disable excludes a shortcut from matching without removing it. No-op if
// the id is absent.
func (m *Manager) Disable(id string) {
	m.setDisabled(id, true)
}

func (m *Manager) setDisabled(id string, disabled bool) {
	m.table.Update(func(old []Shortcut) []Shortcut {
		for i := range old {
			if old[i].ID == id {
				out := make([]Shortcut, len(old))
				copy(out, old)
				out[i].Disabled = disabled
				return out
			}
		}
		return old
	})
}

// Get returns the definition for an id, and whether it exists.
func (m *Manager) Get(id string) (Shortcut, bool) {
	for _, sc := range m.table.Get() {
		if sc.ID == id {
			return sc, true
		}
	}
	return Shortcut{}, false
}

// All returns a snapshot of every definition in table order.
func (m *Manager) All() []Shortcut {
	table := m.table.Get()
	out := make([]Shortcut, len(table))
	copy(out, table)
	return out
}

// Active returns the definitions not explicitly disabled.
func (m *Manager) Active() []Shortcut {
	var out []Shortcut
	for _, sc := range m.table.Get() {
		if !sc.Disabled {
			out = append(out, sc)
		}
	}
	return out
}

// SetScope changes the current scope. Any caller-chosen string is legal.
func (m *Manager) SetScope(scope string) {
	m.scope.Set(scope)
}

// Scope returns the current scope.
func (m *Manager) Scope() string {
	return m.scope.Get()
}

// Subscribe registers a callback for triggers of a specific shortcut id.
// Multiple callbacks per id are allowed and run in registration order.
// Subscribing to an id not present in the table is legal; the callback
// simply waits for a matching registration.
func (m *Manager) Subscribe(id string, fn func(Trigger)) Subscription {
	token := uuid.NewString()

	m.mu.Lock()
	m.subs[id] = append(m.subs[id], subscriber{token: token, fn: fn})
	m.mu.Unlock()

	return Subscription{cancel: func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		list := m.subs[id]
		for i, sub := range list {
			if sub.token == token {
				m.subs[id] = append(list[:i:i], list[i+1:]...)
				break
			}
		}
		if len(m.subs[id]) == 0 {
			delete(m.subs, id)
		}
	}}
}

// OnTrigger registers a listener for every successful trigger regardless
// of id. The returned function unsubscribes it.
func (m *Manager) OnTrigger(fn func(Trigger)) (unsubscribe func()) {
	return m.triggers.Subscribe(fn)
}

// Table exposes the shortcut table as a reactive snapshot sequence.
// Treat the container as read-only; mutate only through manager
// operations.
func (m *Manager) Table() *reactive.Value[[]Shortcut] {
	return m.table
}

// Pressed exposes the set of keys currently held down. Snapshots are
// copy-on-write; treat the container as read-only.
func (m *Manager) Pressed() *reactive.Value[KeySet] {
	return m.pressed
}

// LastTrigger exposes the most recent trigger, nil before the first.
// Treat the container as read-only.
func (m *Manager) LastTrigger() *reactive.Value[*Trigger] {
	return m.lastTrigger
}

// ScopeValue exposes the current scope reactively. Treat the container as
// read-only.
func (m *Manager) ScopeValue() *reactive.Value[string] {
	return m.scope
}

// Conflicts runs conflict detection over the current table.
func (m *Manager) Conflicts() []Conflict {
	return DetectConflicts(m.table.Get(), m.platform)
}

// Stats returns the dispatch counters.
func (m *Manager) Stats() Stats {
	return Stats{
		KeyEvents: m.keyEvents.Load(),
		Triggers:  m.fired.Load(),
		Callbacks: m.callbacks.Load(),
	}
}

// KeyDown handles one raw key-down event: it records the key as pressed,
// scans the table in order for the first enabled, in-scope, matching
// definition, and fires it. At most one shortcut fires per key-down;
// first match in table order wins.
func (m *Manager) KeyDown(ev KeyEvent) {
	m.keyEvents.Add(1)

	name := strings.ToLower(ev.Key())
	if name != "" {
		m.pressed.Update(func(held KeySet) KeySet {
			out := held.clone()
			out[name] = struct{}{}
			return out
		})
	}

	currentScope := m.scope.Get()
	for _, sc := range m.table.Get() {
		if sc.Disabled || !sc.InScope(currentScope) {
			continue
		}
		combo := key.ParseCombo(sc.Keys, m.platform)
		if combo.Matches(ev.Key(), ev.Modifiers()) {
			m.fire(sc, ev)
			return
		}
	}
}

// fire runs the trigger sequence for a matched definition: suppress the
// host default unless the shortcut passes through, publish the trigger,
// notify subscribers, and clear non-modifier pressed keys (their key-up
// events may have been suppressed along with the default action).
func (m *Manager) fire(sc Shortcut, ev KeyEvent) {
	if !sc.PassThrough {
		ev.PreventDefault()
		ev.StopPropagation()
	}

	trig := Trigger{ID: sc.ID, Time: time.Now(), Event: ev}
	m.fired.Add(1)
	m.logger.Debug().Str("id", sc.ID).Str("keys", sc.Keys).Msg("shortcut triggered")

	m.lastTrigger.Set(&trig)
	m.triggers.Emit(trig)

	m.mu.Lock()
	fns := make([]func(Trigger), 0, len(m.subs[sc.ID]))
	for _, sub := range m.subs[sc.ID] {
		fns = append(fns, sub.fn)
	}
	m.mu.Unlock()

	for _, fn := range fns {
		m.callbacks.Add(1)
		fn(trig)
	}

	m.pressed.Update(func(held KeySet) KeySet {
		out := make(KeySet, len(held))
		for name := range held {
			if key.IsModifierKey(name) {
				out[name] = struct{}{}
			}
		}
		return out
	})
}

// KeyUp removes the released key from pressed-key state.
func (m *Manager) KeyUp(ev KeyEvent) {
	name := strings.ToLower(ev.Key())
	m.pressed.Update(func(held KeySet) KeySet {
		if !held.Has(name) {
			return held
		}
		out := held.clone()
		delete(out, name)
		return out
	})
}

// Blur resets pressed-key state; key-up events are unreliable once focus
// leaves the host environment.
func (m *Manager) Blur() {
	m.pressed.Set(KeySet{})
}

// warnConflicts logs every duplicate combination in the current table.
func (m *Manager) warnConflicts() {
	for _, c := range m.Conflicts() {
		m.logger.Warn().
			Str("first", c.ID1).
			Str("duplicate", c.ID2).
			Str("keys", c.Keys).
			Msg("shortcut combination conflict")
	}
}
