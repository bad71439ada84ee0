package components

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// DockPanel is a titled, closable region of the main window that reports
// every change of its visibility
type DockPanel struct {
	widget.BaseWidget

	name        string
	title       *widget.Label
	content     fyne.CanvasObject
	closeButton *widget.Button
	minSize     fyne.Size

	mu        sync.Mutex
	listeners []func(name string, visible bool)
}

// NewDockPanel wraps content in a panel with a title bar
func NewDockPanel(name, title string, content fyne.CanvasObject) *DockPanel {
	p := &DockPanel{
		name:    name,
		title:   widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		content: content,
	}
	p.closeButton = widget.NewButtonWithIcon("", theme.CancelIcon(), p.Hide)
	p.closeButton.Importance = widget.LowImportance
	p.ExtendBaseWidget(p)
	return p
}

// CreateRenderer creates the renderer for DockPanel
func (p *DockPanel) CreateRenderer() fyne.WidgetRenderer {
	header := container.NewBorder(nil, nil, nil, p.closeButton, p.title)
	return widget.NewSimpleRenderer(container.NewBorder(
		container.NewVBox(header, widget.NewSeparator()),
		nil, nil, nil,
		p.content,
	))
}

// Name returns the panel identifier
func (p *DockPanel) Name() string {
	return p.name
}

// Title returns the panel caption
func (p *DockPanel) Title() string {
	return p.title.Text
}

// SetVisible shows or hides the panel
func (p *DockPanel) SetVisible(visible bool) {
	if visible {
		p.Show()
	} else {
		p.Hide()
	}
}

// Show makes the panel visible and notifies listeners if it was hidden
func (p *DockPanel) Show() {
	if p.Visible() {
		return
	}
	p.BaseWidget.Show()
	p.notify(true)
}

// Hide hides the panel and notifies listeners if it was shown
func (p *DockPanel) Hide() {
	if !p.Visible() {
		return
	}
	p.BaseWidget.Hide()
	p.notify(false)
}

// OnVisibilityChanged registers a listener for show/hide transitions
func (p *DockPanel) OnVisibilityChanged(listener func(name string, visible bool)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = append(p.listeners, listener)
}

// SetMinSize sets a lower bound for the panel size
func (p *DockPanel) SetMinSize(size fyne.Size) {
	p.minSize = size
	p.Refresh()
}

// MinSize returns the content minimum, raised to the configured bound
func (p *DockPanel) MinSize() fyne.Size {
	return p.BaseWidget.MinSize().Max(p.minSize)
}

// Close hides the panel as the title bar button does
func (p *DockPanel) Close() {
	p.closeButton.OnTapped()
}

func (p *DockPanel) notify(visible bool) {
	p.mu.Lock()
	listeners := append(([]func(string, bool))(nil), p.listeners...)
	p.mu.Unlock()

	for _, l := range listeners {
		l(p.name, visible)
	}
}
