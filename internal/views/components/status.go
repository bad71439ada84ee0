package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar displays application status and information
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	fileInfo    *widget.Label
	storeInfo   *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("")
	sb.fileInfo = widget.NewLabel("No file loaded")
	sb.storeInfo = widget.NewLabel("")
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(
		sb.statusLabel,
		widget.NewSeparator(),
		sb.fileInfo,
		widget.NewSeparator(),
		sb.storeInfo,
	)
}

// SetStatus updates the main status message
func (sb *StatusBar) SetStatus(status string) {
	fyne.Do(func() {
		sb.statusLabel.SetText(status)
	})
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetFileInfo describes the file currently in the preview
func (sb *StatusBar) SetFileInfo(name string, size int) {
	fyne.Do(func() {
		sb.fileInfo.SetText(fmt.Sprintf("%s, %d bytes", name, size))
	})
}

// SetStoreInfo describes the table store
func (sb *StatusBar) SetStoreInfo(path string, rows int) {
	fyne.Do(func() {
		if path == "" {
			sb.storeInfo.SetText("Store: off")
			return
		}
		sb.storeInfo.SetText(fmt.Sprintf("Store: %s (%d rows)", path, rows))
	})
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
