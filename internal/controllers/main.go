package controllers

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"open-eyes/internal/console"
	"open-eyes/internal/dock"
	"open-eyes/internal/logger"
	"open-eyes/internal/models"
	"open-eyes/internal/views"
)

// ErrInvalidFile is returned when the chosen path is missing or is not a
// regular file
var ErrInvalidFile = errors.New("invalid file selected")

// TableStore receives one (filename, contents) row per opened file
type TableStore interface {
	Append(filename, contents string) error
	Len() int
	Path() string
	Close() error
}

// Options tune controller behaviour per application variant
type Options struct {
	// EchoContents prints every opened file to the stdout stream
	EchoContents bool
	// StartDir is where file dialogs open; the home directory when empty
	StartDir string
}

// MainController wires the main window actions to files, the table store
// and the console streams
type MainController struct {
	files   *models.FileRepository
	store   TableStore
	streams *console.Streams
	docks   *dock.Synchronizer
	logger  logger.Logger
	options Options

	mainView *views.MainView

	mu           sync.RWMutex
	importedPath string
	lastLoad     time.Time
}

// NewMainController creates a controller. store may be nil to disable
// mirroring into the table store.
func NewMainController(
	files *models.FileRepository,
	store TableStore,
	streams *console.Streams,
	log logger.Logger,
	options Options,
) *MainController {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	if options.StartDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			options.StartDir = home
		}
	}

	return &MainController{
		files:   files,
		store:   store,
		streams: streams,
		docks:   dock.NewSynchronizer(log),
		logger:  log,
		options: options,
	}
}

// SetMainView connects view events to the controller and binds every
// panel to its toggle control
func (mc *MainController) SetMainView(view *views.MainView) error {
	mc.mainView = view

	for _, entry := range view.Layout().Panels {
		panel, ok := view.Panel(entry.Name)
		if !ok {
			return fmt.Errorf("panel %q missing from view", entry.Name)
		}
		toggle, ok := view.Toggle(entry.Control)
		if !ok {
			return fmt.Errorf("control %q missing from view", entry.Control)
		}
		if err := mc.docks.Bind(panel, toggle); err != nil {
			return err
		}
		panel.OnVisibilityChanged(mc.docks.OnPanelVisibilityChanged)
	}
	mc.docks.Sync()

	view.SetToggleHandler(mc.docks.OnControlToggled)
	view.SetOpenFileHandler(mc.OpenFile)
	view.SetImportFileHandler(mc.ImportFiles)
	view.SetFileSelectedHandler(mc.SelectFile)

	if mc.store != nil {
		view.UpdateStoreInfo(mc.store.Path(), mc.store.Len())
	} else {
		view.UpdateStoreInfo("", 0)
	}
	return nil
}

// OpenFile asks the user for a file and loads it
func (mc *MainController) OpenFile() {
	if mc.mainView == nil {
		return
	}
	mc.mainView.ShowOpenDialog("Open", mc.options.StartDir, func(path string, err error) {
		if err != nil {
			mc.handleError(err)
			return
		}
		_ = mc.LoadFile(path)
	})
}

// LoadFile reads path, lists it, mirrors it into the table store and shows
// it in the raw preview. An empty path (cancelled dialog) does nothing.
func (mc *MainController) LoadFile(path string) error {
	if path == "" {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		err = fmt.Errorf("%w: %s", ErrInvalidFile, path)
		mc.handleError(err)
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("read %s: %w", path, err)
		mc.handleError(err)
		return err
	}

	file := models.NewLoadedFile(path, string(data))
	fmt.Fprintln(mc.streams.Stdout, "Loaded "+path)
	if mc.options.EchoContents {
		fmt.Fprintln(mc.streams.Stdout, file.Contents)
	}

	mc.files.Add(file)
	mc.mu.Lock()
	mc.lastLoad = file.LoadedAt
	mc.mu.Unlock()

	if mc.mainView != nil {
		if err := mc.mainView.AddFile(file.Filename); err != nil {
			mc.logger.Warning("Controller", "file list update failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	var storeErr error
	if mc.store != nil {
		if err := mc.store.Append(file.Filename, file.Contents); err != nil {
			storeErr = fmt.Errorf("store %s: %w", file.Filename, err)
		}
	}

	if mc.mainView != nil {
		mc.mainView.ShowContents(file.Filename, file.Contents)
		mc.mainView.UpdateStatus("Loaded " + file.Filename)
		if mc.store != nil {
			mc.mainView.UpdateStoreInfo(mc.store.Path(), mc.store.Len())
		}
	}

	mc.logger.Debug("Controller", "file loaded", map[string]interface{}{
		"path":  path,
		"bytes": len(data),
	})

	if storeErr != nil {
		mc.handleError(storeErr)
		return storeErr
	}
	return nil
}

// ImportFiles asks the user for a raw data file and remembers the choice
func (mc *MainController) ImportFiles() {
	if mc.mainView == nil {
		return
	}
	mc.mainView.ShowOpenDialog("Import", mc.options.StartDir, func(path string, err error) {
		if err != nil {
			mc.handleError(err)
			return
		}
		mc.SetImportedPath(path)
	})
}

// SetImportedPath records the path chosen in the import dialog
func (mc *MainController) SetImportedPath(path string) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.importedPath = path
}

// ImportedPath returns the last path chosen in the import dialog
func (mc *MainController) ImportedPath() string {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return mc.importedPath
}

// SelectFile shows an already loaded file again
func (mc *MainController) SelectFile(index int) {
	file := mc.files.Get(index)
	if file == nil || mc.mainView == nil {
		return
	}
	mc.mainView.ShowContents(file.Filename, file.Contents)
}

// LastLoad returns when the most recent file was loaded
func (mc *MainController) LastLoad() time.Time {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return mc.lastLoad
}

// Docks returns the panel visibility synchronizer
func (mc *MainController) Docks() *dock.Synchronizer {
	return mc.docks
}

func (mc *MainController) handleError(err error) {
	mc.logger.Error("Controller", err, nil)
	if mc.mainView != nil {
		mc.mainView.ShowError(err)
	}
}
