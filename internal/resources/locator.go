// Package resources finds bundled resource files and loads the window layout.
package resources

import (
	"os"
	"path/filepath"
	"runtime"
)

// Build-time settings for packaged builds, e.g.
//
//	go build -ldflags "-X open-eyes/internal/resources.Packaged=true"
//
// BundleDir, when set, names the directory the packager extracts resources to.
var (
	Packaged  string
	BundleDir string
)

// DirName is the resource subdirectory next to the sources or the executable
const DirName = "resources"

// Locator resolves resource names to filesystem paths
type Locator struct {
	Packaged   bool
	BundleDir  string
	Executable string
	SourceRoot string
	GOOS       string
}

// NewLocator describes the running process
func NewLocator() *Locator {
	exe, err := os.Executable()
	if err != nil {
		exe = os.Args[0]
	}
	return &Locator{
		Packaged:   Packaged == "true",
		BundleDir:  BundleDir,
		Executable: exe,
		SourceRoot: sourceRoot(),
		GOOS:       runtime.GOOS,
	}
}

// Locate returns the path of the named resource. It never fails; a missing
// file shows up when the caller opens the path.
func (l *Locator) Locate(name string) string {
	if !l.Packaged {
		return filepath.Join(l.SourceRoot, DirName, name)
	}

	if l.BundleDir != "" {
		return filepath.Join(l.BundleDir, name)
	}

	base := filepath.Dir(l.Executable)
	if l.GOOS == "darwin" {
		// Contents/MacOS/<exe> -> Contents/Resources/resources
		return filepath.Join(base, "..", "Resources", DirName, name)
	}
	return filepath.Join(base, DirName, name)
}

var defaultLocator = NewLocator()

// Locate resolves name with the process-wide locator
func Locate(name string) string {
	return defaultLocator.Locate(name)
}

// IsPackaged reports whether this binary was built in packaged mode
func IsPackaged() bool {
	return defaultLocator.Packaged
}

// sourceRoot is the module root, two levels above this file
func sourceRoot() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return "."
	}
	return filepath.Join(filepath.Dir(file), "..", "..")
}
