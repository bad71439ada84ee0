package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"
)

// FileList shows the names of loaded files in load order
type FileList struct {
	names binding.StringList
	list  *widget.List

	selectedHandler func(index int)
}

// NewFileList creates an empty file list
func NewFileList() *FileList {
	fl := &FileList{names: binding.NewStringList()}
	fl.list = widget.NewListWithData(fl.names,
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(item binding.DataItem, obj fyne.CanvasObject) {
			obj.(*widget.Label).Bind(item.(binding.String))
		},
	)
	fl.list.OnSelected = func(id widget.ListItemID) {
		if fl.selectedHandler != nil {
			fl.selectedHandler(id)
		}
	}
	return fl
}

// Add appends a file name
func (fl *FileList) Add(name string) error {
	return fl.names.Append(name)
}

// Names returns the listed names
func (fl *FileList) Names() []string {
	names, _ := fl.names.Get()
	return names
}

// Select highlights the entry at index
func (fl *FileList) Select(index int) {
	fl.list.Select(index)
}

// SetSelectedHandler sets the callback for entry selection
func (fl *FileList) SetSelectedHandler(handler func(index int)) {
	fl.selectedHandler = handler
}

// GetWidget returns the list widget
func (fl *FileList) GetWidget() fyne.CanvasObject {
	return fl.list
}
