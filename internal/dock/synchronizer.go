// Package dock keeps panel visibility and the controls that toggle it in
// agreement.
package dock

import (
	"fmt"
	"sync"

	"open-eyes/internal/logger"
)

// Panel is an independently showable region of the main window
type Panel interface {
	Name() string
	Visible() bool
	SetVisible(visible bool)
}

// Control is a checkable item (menu entry or checkbox) bound to one panel
type Control interface {
	ID() string
	Checked() bool
	SetChecked(checked bool)
}

type binding struct {
	panel   Panel
	control Control
	// set while this binding is propagating a change
	syncing bool
}

// Synchronizer propagates control toggles to panels and panel visibility
// changes back to controls. Both entry points are meant to be called from
// UI event callbacks.
type Synchronizer struct {
	mu        sync.Mutex
	byPanel   map[string]*binding
	byControl map[string]*binding
	order     []*binding
	logger    logger.Logger
}

// NewSynchronizer creates an empty synchronizer
func NewSynchronizer(log logger.Logger) *Synchronizer {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Synchronizer{
		byPanel:   make(map[string]*binding),
		byControl: make(map[string]*binding),
		logger:    log,
	}
}

// Bind registers a panel/control pair. Each panel and each control may be
// bound once.
func (s *Synchronizer) Bind(panel Panel, control Control) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byPanel[panel.Name()]; exists {
		return fmt.Errorf("panel %q already bound", panel.Name())
	}
	if _, exists := s.byControl[control.ID()]; exists {
		return fmt.Errorf("control %q already bound", control.ID())
	}

	b := &binding{panel: panel, control: control}
	s.byPanel[panel.Name()] = b
	s.byControl[control.ID()] = b
	s.order = append(s.order, b)

	s.logger.Debug("Dock", "panel bound", map[string]interface{}{
		"panel":   panel.Name(),
		"control": control.ID(),
	})
	return nil
}

// OnControlToggled shows or hides the panel bound to controlID
func (s *Synchronizer) OnControlToggled(controlID string, checked bool) {
	b := s.enter(s.byControl, controlID)
	if b == nil {
		return
	}
	defer s.leave(b)

	if b.panel.Visible() != checked {
		b.panel.SetVisible(checked)
	}
}

// OnPanelVisibilityChanged checks or unchecks the control bound to panelName
func (s *Synchronizer) OnPanelVisibilityChanged(panelName string, visible bool) {
	b := s.enter(s.byPanel, panelName)
	if b == nil {
		return
	}
	defer s.leave(b)

	if b.control.Checked() != visible {
		b.control.SetChecked(visible)
	}
}

// Sync pushes every panel's current visibility to its control
func (s *Synchronizer) Sync() {
	s.mu.Lock()
	bindings := append([]*binding(nil), s.order...)
	s.mu.Unlock()

	for _, b := range bindings {
		s.OnPanelVisibilityChanged(b.panel.Name(), b.panel.Visible())
	}
}

// PanelFor returns the panel bound to controlID
func (s *Synchronizer) PanelFor(controlID string) (Panel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.byControl[controlID]
	if !ok {
		return nil, false
	}
	return b.panel, true
}

// ControlFor returns the control bound to panelName
func (s *Synchronizer) ControlFor(panelName string) (Control, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.byPanel[panelName]
	if !ok {
		return nil, false
	}
	return b.control, true
}

// enter looks up a binding and marks it busy. It returns nil for unknown
// names and for notifications raised while the binding is already busy.
func (s *Synchronizer) enter(index map[string]*binding, key string) *binding {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := index[key]
	if !ok {
		s.logger.Debug("Dock", "no binding", map[string]interface{}{"name": key})
		return nil
	}
	if b.syncing {
		return nil
	}
	b.syncing = true
	return b
}

func (s *Synchronizer) leave(b *binding) {
	s.mu.Lock()
	b.syncing = false
	s.mu.Unlock()
}
