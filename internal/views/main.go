package views

import (
	"strings"

	"open-eyes/internal/resources"
	"open-eyes/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

// Panel names with built-in content
const (
	FilesPanel  = "filesWidget"
	OutputPanel = "outputWidget"
)

var (
	sideSize   = fyne.NewSize(220, 0)
	bottomSize = fyne.NewSize(0, 180)
)

// MainView is the main window built from the layout resource
type MainView struct {
	window        fyne.Window
	layout        *resources.Layout
	mainContainer *fyne.Container

	console   *components.Console
	preview   *components.RawPreview
	fileList  *components.FileList
	statusBar *components.StatusBar

	panels     map[string]*components.DockPanel
	panelOrder []string
	toggles    map[string]*MenuToggle
	mainMenu   *fyne.MainMenu

	// Event handlers - connected to controller
	openFileHandler   func()
	importFileHandler func()
	toggleHandler     func(controlID string, checked bool)
	quitHandler       func()
}

// NewMainView builds the window content and menus described by layout
func NewMainView(window fyne.Window, layout *resources.Layout) *MainView {
	view := &MainView{
		window:  window,
		layout:  layout,
		panels:  make(map[string]*components.DockPanel),
		toggles: make(map[string]*MenuToggle),
	}

	view.initializeComponents()
	view.buildPanels()
	view.buildLayout()
	view.buildMenus()

	window.SetTitle(layout.Title)
	window.Resize(fyne.NewSize(layout.Width, layout.Height))
	view.statusBar.SetStatus(layout.Status)

	return view
}

func (mv *MainView) initializeComponents() {
	mv.console = components.NewConsole()
	mv.preview = components.NewRawPreview()
	mv.fileList = components.NewFileList()
	mv.statusBar = components.NewStatusBar()
}

func (mv *MainView) panelContent(name string) fyne.CanvasObject {
	switch name {
	case FilesPanel:
		return mv.fileList.GetWidget()
	case OutputPanel:
		return mv.console
	default:
		return widget.NewLabel("")
	}
}

func (mv *MainView) buildPanels() {
	for _, entry := range mv.layout.Panels {
		panel := components.NewDockPanel(entry.Name, entry.Title, mv.panelContent(entry.Name))
		switch entry.Dock {
		case resources.DockLeft, resources.DockRight:
			panel.SetMinSize(sideSize)
		default:
			panel.SetMinSize(bottomSize)
		}
		if !entry.IsVisible() {
			panel.Hide()
		}
		// hidden panels give their space back to the preview
		panel.OnVisibilityChanged(func(string, bool) {
			if mv.mainContainer != nil {
				mv.mainContainer.Refresh()
			}
		})

		mv.panels[entry.Name] = panel
		mv.panelOrder = append(mv.panelOrder, entry.Name)
	}
}

func (mv *MainView) buildLayout() {
	sides := make(map[string][]fyne.CanvasObject)
	for _, entry := range mv.layout.Panels {
		sides[entry.Dock] = append(sides[entry.Dock], mv.panels[entry.Name])
	}

	stack := func(dock string) *fyne.Container {
		if len(sides[dock]) == 0 {
			return nil
		}
		return container.NewVBox(sides[dock]...)
	}

	bottom := []fyne.CanvasObject{}
	if b := stack(resources.DockBottom); b != nil {
		bottom = append(bottom, b)
	}
	bottom = append(bottom, widget.NewSeparator(), mv.statusBar.GetContainer())

	var top, left, right fyne.CanvasObject
	if c := stack(resources.DockTop); c != nil {
		top = c
	}
	if c := stack(resources.DockLeft); c != nil {
		left = c
	}
	if c := stack(resources.DockRight); c != nil {
		right = c
	}

	mv.mainContainer = container.NewBorder(
		top,
		container.NewVBox(bottom...),
		left,
		right,
		mv.preview.GetContainer(),
	)

	mv.window.SetContent(mv.mainContainer)
}

func (mv *MainView) buildMenus() {
	openSpec, _ := mv.layout.Action(resources.ActionOpen)
	importSpec, _ := mv.layout.Action(resources.ActionImport)

	openItem := fyne.NewMenuItem(openSpec.Label, func() {
		if mv.openFileHandler != nil {
			mv.openFileHandler()
		}
	})
	openItem.Shortcut = shortcutFor(openSpec.Shortcut)

	importItem := fyne.NewMenuItem(importSpec.Label, func() {
		if mv.importFileHandler != nil {
			mv.importFileHandler()
		}
	})
	importItem.Shortcut = shortcutFor(importSpec.Shortcut)

	quitItem := fyne.NewMenuItem("Quit", func() {
		if mv.quitHandler != nil {
			mv.quitHandler()
		}
	})
	quitItem.IsQuit = true

	fileMenu := fyne.NewMenu("File", openItem, importItem, fyne.NewMenuItemSeparator(), quitItem)

	viewItems := make([]*fyne.MenuItem, 0, len(mv.layout.Panels))
	for _, entry := range mv.layout.Panels {
		toggle := newMenuToggle(entry.Control, entry.Label, entry.IsVisible(), mv.refreshMenu)
		toggle.item.Action = func() {
			toggle.flip()
			if mv.toggleHandler != nil {
				mv.toggleHandler(toggle.ID(), toggle.Checked())
			}
		}
		mv.toggles[entry.Control] = toggle
		viewItems = append(viewItems, toggle.item)
	}
	viewMenu := fyne.NewMenu("View", viewItems...)

	mv.mainMenu = fyne.NewMainMenu(fileMenu, viewMenu)
	mv.window.SetMainMenu(mv.mainMenu)
}

func (mv *MainView) refreshMenu() {
	if mv.mainMenu != nil {
		mv.mainMenu.Refresh()
	}
}

func shortcutFor(key string) fyne.Shortcut {
	if key == "" {
		return nil
	}
	return &desktop.CustomShortcut{
		KeyName:  fyne.KeyName(strings.ToUpper(key)),
		Modifier: fyne.KeyModifierShortcutDefault,
	}
}

// Event handler setters - called by controller

// SetOpenFileHandler sets the handler for the open action
func (mv *MainView) SetOpenFileHandler(handler func()) {
	mv.openFileHandler = handler
}

// SetImportFileHandler sets the handler for the import action
func (mv *MainView) SetImportFileHandler(handler func()) {
	mv.importFileHandler = handler
}

// SetToggleHandler sets the handler for panel toggle menu items
func (mv *MainView) SetToggleHandler(handler func(controlID string, checked bool)) {
	mv.toggleHandler = handler
}

// SetQuitHandler sets the handler for the quit action
func (mv *MainView) SetQuitHandler(handler func()) {
	mv.quitHandler = handler
}

// SetFileSelectedHandler sets the handler for file list selection
func (mv *MainView) SetFileSelectedHandler(handler func(index int)) {
	mv.fileList.SetSelectedHandler(handler)
}

// Accessors

// Panel returns the dock panel with the given name
func (mv *MainView) Panel(name string) (*components.DockPanel, bool) {
	p, ok := mv.panels[name]
	return p, ok
}

// PanelNames lists panels in layout order
func (mv *MainView) PanelNames() []string {
	return append([]string(nil), mv.panelOrder...)
}

// Toggle returns the menu toggle with the given control id
func (mv *MainView) Toggle(controlID string) (*MenuToggle, bool) {
	t, ok := mv.toggles[controlID]
	return t, ok
}

// Console returns the output region
func (mv *MainView) Console() *components.Console {
	return mv.console
}

// Layout returns the layout the view was built from
func (mv *MainView) Layout() *resources.Layout {
	return mv.layout
}

// UI update methods - called by controller

// AddFile appends a name to the file list
func (mv *MainView) AddFile(name string) error {
	return mv.fileList.Add(name)
}

// Files returns the names in the file list
func (mv *MainView) Files() []string {
	return mv.fileList.Names()
}

// ShowContents clears the raw preview and shows contents
func (mv *MainView) ShowContents(name, contents string) {
	mv.preview.Clear()
	mv.preview.SetContents(contents)
	mv.statusBar.SetFileInfo(name, len(contents))
}

// PreviewContents returns the raw preview text
func (mv *MainView) PreviewContents() string {
	return mv.preview.Contents()
}

// UpdateStatus updates the status bar message
func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

// Status returns the status bar message
func (mv *MainView) Status() string {
	return mv.statusBar.GetStatus()
}

// UpdateStoreInfo shows the table store location and size
func (mv *MainView) UpdateStoreInfo(path string, rows int) {
	mv.statusBar.SetStoreInfo(path, rows)
}

// ShowError displays an error dialog
func (mv *MainView) ShowError(err error) {
	fyne.Do(func() {
		dialog.ShowError(err, mv.window)
	})
}

// ShowOpenDialog asks for a file, starting in startDir. The callback gets
// an empty path when the user cancels.
func (mv *MainView) ShowOpenDialog(confirm, startDir string, callback func(path string, err error)) {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			callback("", err)
			return
		}
		if reader == nil {
			callback("", nil)
			return
		}
		path := reader.URI().Path()
		reader.Close()
		callback(path, nil)
	}, mv.window)

	if startDir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(startDir)); err == nil {
			fd.SetLocation(lister)
		}
	}
	fd.SetConfirmText(confirm)
	fd.Show()
}

// Show displays the window
func (mv *MainView) Show() {
	mv.window.Show()
}

// GetWindow returns the main window
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}
