package app

import (
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"open-eyes/internal/config"
	"open-eyes/internal/resources"
	"open-eyes/internal/store"
)

func bundledLayout(t *testing.T) *resources.Layout {
	t.Helper()
	layout, err := resources.LoadLayout(resources.Locate(resources.LayoutFile))
	require.NoError(t, err)
	return layout
}

func testSettings(t *testing.T) *config.Config {
	t.Helper()
	settings := config.Default()
	settings.StorePath = filepath.Join(t.TempDir(), "temp.arrow")
	return settings
}

func TestBuild_OpenEyesMirrorsIntoStore(t *testing.T) {
	fyneApp := test.NewApp()
	t.Cleanup(fyneApp.Quit)
	settings := testSettings(t)

	a, err := build(fyneApp, OpenEyes, settings, bundledLayout(t))
	require.NoError(t, err)

	assert.Equal(t, "Open Eyes", a.window.Title())
	assert.Contains(t, a.view.Console().Text(), "initialization complete")

	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))
	require.NoError(t, a.controller.LoadFile(path))
	assert.Contains(t, a.view.Console().Text(), "Loaded "+path)

	a.shutdown.Shutdown()

	rows, err := store.ReadAll(settings.StorePath)
	require.NoError(t, err)
	assert.Equal(t, []store.Row{{Filename: "notes.txt", Contents: "hello"}}, rows)
}

func TestBuild_EyenalizerHasNoStore(t *testing.T) {
	fyneApp := test.NewApp()
	t.Cleanup(fyneApp.Quit)
	settings := testSettings(t)

	a, err := build(fyneApp, Eyenalizer, settings, bundledLayout(t))
	require.NoError(t, err)

	assert.Equal(t, "Eyenalizer", a.window.Title())

	path := filepath.Join(t.TempDir(), "raw.asc")
	require.NoError(t, os.WriteFile(path, []byte("MSG 1234 START"), 0644))
	require.NoError(t, a.controller.LoadFile(path))
	assert.Contains(t, a.view.Console().Text(), "MSG 1234 START")

	a.shutdown.Shutdown()
	assert.NoFileExists(t, settings.StorePath)
}

func TestBuild_WiringFailureClosesStore(t *testing.T) {
	fyneApp := test.NewApp()
	t.Cleanup(fyneApp.Quit)
	settings := testSettings(t)

	layout := bundledLayout(t)
	require.GreaterOrEqual(t, len(layout.Panels), 2)
	layout.Panels[1].Control = layout.Panels[0].Control

	_, err := build(fyneApp, OpenEyes, settings, layout)
	require.Error(t, err)

	assert.FileExists(t, settings.StorePath)
	assert.NoFileExists(t, settings.StorePath+".partial")
}
