package app

import (
	"fmt"
	"os"

	"open-eyes/internal/config"
	"open-eyes/internal/console"
	"open-eyes/internal/controllers"
	"open-eyes/internal/logger"
	"open-eyes/internal/models"
	"open-eyes/internal/resources"
	"open-eyes/internal/shutdown"
	"open-eyes/internal/store"
	"open-eyes/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppVersion   = "0.1.0"
	SettingsFile = "settings.toml"
)

// Variant selects between the two shells built from this code base
type Variant struct {
	Name         string
	ID           string
	UseStore     bool
	EchoContents bool
}

var (
	// OpenEyes mirrors opened files into the table store
	OpenEyes = Variant{
		Name:     "Open Eyes",
		ID:       "nl.vu.openeyes",
		UseStore: true,
	}
	// Eyenalizer echoes opened files to the output panel
	Eyenalizer = Variant{
		Name:         "Eyenalizer",
		ID:           "nl.vu.eyenalizer",
		EchoContents: true,
	}
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	view       *views.MainView
	controller *controllers.MainController
	streams    *console.Streams
	logger     logger.Logger
	shutdown   *shutdown.Manager
}

// NewApplication loads settings and the layout resource and builds the
// main window. A missing or malformed layout aborts startup.
func NewApplication(variant Variant) (*Application, error) {
	settings, err := config.Load(resources.Locate(SettingsFile))
	if err != nil {
		return nil, err
	}

	layout, err := resources.LoadLayout(resources.Locate(resources.LayoutFile))
	if err != nil {
		return nil, err
	}

	app.SetMetadata(fyne.AppMetadata{
		ID:      variant.ID,
		Name:    variant.Name,
		Version: AppVersion,
	})

	return build(app.NewWithID(variant.ID), variant, settings, layout)
}

func build(fyneApp fyne.App, variant Variant, settings *config.Config, layout *resources.Layout) (*Application, error) {
	layout.Title = variant.Name

	window := fyneApp.NewWindow(variant.Name)
	window.SetMaster()
	window.CenterOnScreen()

	view := views.NewMainView(window, layout)

	// output from here on lands in the output panel
	streams := console.NewStreams(view.Console(), resources.IsPackaged())
	appLogger := logger.NewStreamLogger(streams.Stdout, streams.Stderr, settings.Level(), settings.JSONLogs)

	appLogger.Info("Application", "starting application", map[string]interface{}{
		"variant":   variant.Name,
		"version":   AppVersion,
		"packaged":  resources.IsPackaged(),
		"log_level": settings.Level().String(),
	})

	shutdownManager := shutdown.NewManager(appLogger)
	shutdownManager.Register("console", shutdown.Func(func() {
		if err := streams.Flush(); err != nil {
			appLogger.Error("Application", err, map[string]interface{}{"stage": "console flush"})
		}
	}))

	var tableStore controllers.TableStore
	if variant.UseStore {
		table, err := store.Open(settings.StorePath)
		if err != nil {
			return nil, fmt.Errorf("open table store: %w", err)
		}
		tableStore = table
		appLogger.Info("Application", "table store opened", map[string]interface{}{
			"path": table.Path(),
			"rows": table.Len(),
		})
		shutdownManager.Register("table store", shutdown.Func(func() {
			closeStore(table, appLogger)
		}))
	}

	controller := controllers.NewMainController(
		models.NewFileRepository(),
		tableStore,
		streams,
		appLogger,
		controllers.Options{EchoContents: variant.EchoContents || settings.EchoContents},
	)
	if err := controller.SetMainView(view); err != nil {
		if tableStore != nil {
			closeStore(tableStore, appLogger)
		}
		return nil, err
	}

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		view:       view,
		controller: controller,
		streams:    streams,
		logger:     appLogger,
		shutdown:   shutdownManager,
	}
	view.SetQuitHandler(application.Quit)

	appLogger.Info("Application", "initialization complete", nil)
	return application, nil
}

func closeStore(tableStore controllers.TableStore, log logger.Logger) {
	if err := tableStore.Close(); err != nil {
		log.Error("Application", err, map[string]interface{}{"stage": "store close"})
	}
}

// Run shows the window and blocks until the event loop exits
func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.shutdown.Shutdown()
		a.window.Close()
	})

	a.shutdown.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.window.Show()
	a.fyneApp.Run()

	a.shutdown.Shutdown()
	return nil
}

// Quit shuts components down and stops the event loop
func (a *Application) Quit() {
	a.shutdown.Shutdown()
	a.fyneApp.Quit()
}

// Fatal reports a startup error on the real stderr and exits
func Fatal(err error) {
	bootstrap := logger.NewStreamLogger(os.Stdout, os.Stderr, logger.InfoLevel, false)
	bootstrap.Error("Application", err, nil)
	os.Exit(1)
}
