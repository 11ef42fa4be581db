// Package history keeps a bounded linear undo/redo stack of canonical theme
// snapshots for one editing session.
package history

import (
	"sync"

	"github.com/alexisbeaulieu97/tinte/internal/logger"
	"github.com/alexisbeaulieu97/tinte/internal/theme"
)

// DefaultLimit caps the number of undo steps retained.
const DefaultLimit = 50

// ChangeFunc receives the new present theme after a successful undo or redo.
type ChangeFunc func(theme.Theme)

// Option configures a Manager.
type Option func(*Manager)

// WithLimit overrides DefaultLimit. Values below 1 are ignored.
func WithLimit(limit int) Option {
	return func(m *Manager) {
		if limit > 0 {
			m.limit = limit
		}
	}
}

// WithOnChange registers the undo/redo notification callback. Callbacks run
// one at a time on the dispatcher goroutine and may call any Manager method
// except Close, which waits for that goroutine and would never return.
func WithOnChange(fn ChangeFunc) Option {
	return func(m *Manager) {
		m.onChange = fn
	}
}

// WithLogger attaches a logger for history transitions.
func WithLogger(log *logger.Logger) Option {
	return func(m *Manager) {
		m.log = log
	}
}

// Snapshot is a copy of the manager state.
type Snapshot struct {
	Past    []theme.Theme
	Present theme.Theme
	Future  []theme.Theme
}

// Manager is safe for concurrent use; mutations are serialized.
type Manager struct {
	mu      sync.Mutex
	past    []theme.Theme
	present theme.Theme
	future  []theme.Theme

	limit    int
	onChange ChangeFunc
	log      *logger.Logger
	notify   *dispatcher
}

// New returns a Manager whose present is initial.
func New(initial theme.Theme, opts ...Option) *Manager {
	m := &Manager{
		present: initial,
		limit:   DefaultLimit,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.onChange != nil {
		m.notify = newDispatcher(m.onChange)
	}
	return m
}

// Push records next as the new present. It reports false and changes nothing
// when next equals the current present.
func (m *Manager) Push(next theme.Theme) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if next == m.present {
		return false
	}
	m.past = append(m.past, m.present)
	if over := len(m.past) - m.limit; over > 0 {
		m.past = append(m.past[:0:0], m.past[over:]...)
	}
	m.present = next
	m.future = nil
	m.log.With("past", len(m.past)).Debug("history push")
	return true
}

// Undo restores the previous snapshot. It reports false when there is
// nothing to undo.
func (m *Manager) Undo() bool {
	m.mu.Lock()
	if len(m.past) == 0 {
		m.mu.Unlock()
		return false
	}
	last := len(m.past) - 1
	previous := m.past[last]
	m.past = m.past[:last]
	m.future = append([]theme.Theme{m.present}, m.future...)
	m.present = previous
	m.enqueue(previous)
	depth := len(m.future)
	m.mu.Unlock()

	m.log.With("future", depth).Debug("history undo")
	return true
}

// Redo reapplies the next snapshot. It reports false when there is nothing
// to redo.
func (m *Manager) Redo() bool {
	m.mu.Lock()
	if len(m.future) == 0 {
		m.mu.Unlock()
		return false
	}
	next := m.future[0]
	m.future = m.future[1:]
	m.past = append(m.past, m.present)
	m.present = next
	m.enqueue(next)
	depth := len(m.past)
	m.mu.Unlock()

	m.log.With("past", depth).Debug("history redo")
	return true
}

// Reset discards both stacks and replaces the present. Use it when switching
// to another theme rather than editing the current one.
func (m *Manager) Reset(t theme.Theme) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.past = nil
	m.future = nil
	m.present = t
}

// Present returns the current snapshot.
func (m *Manager) Present() theme.Theme {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.present
}

// CanUndo reports whether Undo would change state.
func (m *Manager) CanUndo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.past) > 0
}

// CanRedo reports whether Redo would change state.
func (m *Manager) CanRedo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.future) > 0
}

// Snapshot copies the current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{
		Past:    append([]theme.Theme(nil), m.past...),
		Present: m.present,
		Future:  append([]theme.Theme(nil), m.future...),
	}
}

// Close delivers pending notifications and stops the dispatcher. The manager
// stays usable but no further callbacks fire. It must not be called from a
// change callback.
func (m *Manager) Close() {
	m.mu.Lock()
	d := m.notify
	m.notify = nil
	m.mu.Unlock()

	if d != nil {
		d.close()
	}
}

// enqueue must be called with m.mu held so queue order matches state order.
func (m *Manager) enqueue(t theme.Theme) {
	if m.notify != nil {
		m.notify.add(t)
	}
}
