package resources

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"open-eyes/internal/dock"
)

// LayoutFile is the window layout resource
const LayoutFile = "firstdraft.toml"

// Action ids the window wires by name
const (
	ActionOpen   = "actionOpen"
	ActionImport = "actionImport"
)

// Dock positions
const (
	DockLeft   = "left"
	DockRight  = "right"
	DockTop    = "top"
	DockBottom = "bottom"
)

// Layout describes the main window
type Layout struct {
	Title   string       `toml:"title"`
	Width   float32      `toml:"width"`
	Height  float32      `toml:"height"`
	Status  string       `toml:"status"`
	Panels  []PanelSpec  `toml:"panels"`
	Actions []ActionSpec `toml:"actions"`
}

// PanelSpec describes one dockable panel and the control that toggles it
type PanelSpec struct {
	Name    string `toml:"name"`
	Title   string `toml:"title"`
	Control string `toml:"control"`
	Label   string `toml:"label"`
	Dock    string `toml:"dock"`
	Visible *bool  `toml:"visible"`
}

// ActionSpec names a menu action
type ActionSpec struct {
	ID       string `toml:"id"`
	Label    string `toml:"label"`
	Shortcut string `toml:"shortcut"`
}

// IsVisible reports the initial visibility, defaulting to shown
func (p PanelSpec) IsVisible() bool {
	return p.Visible == nil || *p.Visible
}

// Action returns the action with the given id
func (l *Layout) Action(id string) (ActionSpec, bool) {
	for _, a := range l.Actions {
		if a.ID == id {
			return a, true
		}
	}
	return ActionSpec{}, false
}

// LoadLayout parses and validates the layout resource at path
func LoadLayout(path string) (*Layout, error) {
	layout := &Layout{}
	if _, err := toml.DecodeFile(path, layout); err != nil {
		return nil, fmt.Errorf("load layout %s: %w", path, err)
	}
	if err := layout.normalize(); err != nil {
		return nil, fmt.Errorf("layout %s: %w", path, err)
	}
	return layout, nil
}

func (l *Layout) normalize() error {
	if l.Width <= 0 {
		l.Width = 1024
	}
	if l.Height <= 0 {
		l.Height = 768
	}
	if l.Status == "" {
		l.Status = "Ready"
	}

	panels := make(map[string]bool)
	controls := make(map[string]bool)
	for i := range l.Panels {
		p := &l.Panels[i]
		if p.Name == "" {
			return fmt.Errorf("panel %d has no name", i)
		}
		if panels[p.Name] {
			return fmt.Errorf("duplicate panel %q", p.Name)
		}
		panels[p.Name] = true

		if p.Control == "" {
			p.Control = dock.ControlID(p.Name)
		}
		if controls[p.Control] {
			return fmt.Errorf("duplicate control %q", p.Control)
		}
		controls[p.Control] = true

		if p.Title == "" {
			p.Title = p.Name
		}
		if p.Label == "" {
			p.Label = p.Title
		}
		switch p.Dock {
		case "":
			p.Dock = DockLeft
		case DockLeft, DockRight, DockTop, DockBottom:
		default:
			return fmt.Errorf("panel %q: unknown dock position %q", p.Name, p.Dock)
		}
	}

	for _, id := range []string{ActionOpen, ActionImport} {
		if _, ok := l.Action(id); !ok {
			return fmt.Errorf("missing action %q", id)
		}
	}
	return nil
}
