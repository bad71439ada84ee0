package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// RawPreview shows file contents verbatim
type RawPreview struct {
	label  *widget.Label
	scroll *container.Scroll
}

// NewRawPreview creates an empty preview
func NewRawPreview() *RawPreview {
	label := widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Monospace: true})
	return &RawPreview{
		label:  label,
		scroll: container.NewScroll(label),
	}
}

// Clear empties the preview
func (rp *RawPreview) Clear() {
	rp.label.SetText("")
}

// SetContents replaces the preview with contents
func (rp *RawPreview) SetContents(contents string) {
	rp.label.SetText(contents)
	rp.scroll.ScrollToTop()
}

// Contents returns the displayed text
func (rp *RawPreview) Contents() string {
	return rp.label.Text
}

// GetContainer returns the scrollable preview
func (rp *RawPreview) GetContainer() fyne.CanvasObject {
	return rp.scroll
}
