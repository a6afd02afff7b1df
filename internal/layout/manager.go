// Package layout tracks which resume sections are enabled and in what
// order they render, and keeps the active-edit-section pointer valid.
package layout

import (
	"github.com/jonathan/resume-studio/internal/schema"
)

// Manager wraps a schema.Layout with the operations the editor and the
// skins need. All methods mutate the manager's copy; callers persist the
// result through the store when they are done.
type Manager struct {
	layout schema.Layout
	active schema.SectionKey
}

// NewManager builds a manager over a copy of l. The active edit section
// starts at basics.
func NewManager(l schema.Layout) *Manager {
	return &Manager{
		layout: l.Clone(),
		active: schema.KeyBasics,
	}
}

// Layout returns a copy of the current layout.
func (m *Manager) Layout() schema.Layout {
	return m.layout.Clone()
}

// Active returns the current active edit section.
func (m *Manager) Active() schema.SectionKey {
	return m.active
}

// SetActive points the editor at key. The target must be basics or a
// currently enabled section.
func (m *Manager) SetActive(key schema.SectionKey) error {
	if key == schema.KeyBasics {
		m.active = key
		return nil
	}
	section, ok := m.layout.Sections[key]
	if !ok {
		return &schema.UnknownSectionError{Key: string(key)}
	}
	if !section.Enabled {
		return &DisabledSectionError{Key: key}
	}
	m.active = key
	return nil
}

// Toggle flips the enabled flag for key without touching the order. If
// the active section just became disabled, the pointer falls back to
// basics.
func (m *Manager) Toggle(key schema.SectionKey) error {
	section, ok := m.layout.Sections[key]
	if !ok {
		return &schema.UnknownSectionError{Key: string(key)}
	}
	section.Enabled = !section.Enabled
	m.layout.Sections[key] = section

	if m.active == key && !section.Enabled {
		m.active = schema.KeyBasics
	}
	return nil
}

// Reorder moves the section at from to position to within sectionOrder
// (remove-then-reinsert, not a swap). The basics sentinel is never part
// of the order, so it cannot be moved.
func (m *Manager) Reorder(from, to int) error {
	moved, err := Move(m.layout.SectionOrder, from, to)
	if err != nil {
		return err
	}
	m.layout.SectionOrder = moved
	return nil
}

// EnabledOrderedKeys returns sectionOrder filtered to enabled sections.
// This is the exact sequence consumed by the rendering engine.
func (m *Manager) EnabledOrderedKeys() []schema.SectionKey {
	keys := make([]schema.SectionKey, 0, len(m.layout.SectionOrder))
	for _, key := range m.layout.SectionOrder {
		if section, ok := m.layout.Sections[key]; ok && section.Enabled {
			keys = append(keys, key)
		}
	}
	return keys
}

// Move returns a copy of list with the element at from reinserted at to.
// It is a pure function; the drag layer only reports the two indices at
// drop time.
func Move[T any](list []T, from, to int) ([]T, error) {
	if from < 0 || from >= len(list) {
		return nil, &IndexError{Index: from, Length: len(list)}
	}
	if to < 0 || to >= len(list) {
		return nil, &IndexError{Index: to, Length: len(list)}
	}

	out := append([]T(nil), list...)
	item := out[from]
	out = append(out[:from], out[from+1:]...)

	rest := append([]T(nil), out[to:]...)
	out = append(out[:to], item)
	out = append(out, rest...)
	return out, nil
}

// EnabledOrderedKeys is the standalone form used where no Manager exists
// (rendering from freshly loaded state).
func EnabledOrderedKeys(l schema.Layout) []schema.SectionKey {
	keys := make([]schema.SectionKey, 0, len(l.SectionOrder))
	for _, key := range l.SectionOrder {
		if section, ok := l.Sections[key]; ok && section.Enabled {
			keys = append(keys, key)
		}
	}
	return keys
}
