package resources

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocate(t *testing.T) {
	exe := filepath.Join("opt", "openeyes", "bin", "openeyes")

	tests := []struct {
		name    string
		locator Locator
		want    string
	}{
		{
			name:    "source",
			locator: Locator{SourceRoot: filepath.Join("src", "open-eyes"), Executable: exe, GOOS: "linux"},
			want:    filepath.Join("src", "open-eyes", "resources", "firstdraft.toml"),
		},
		{
			name:    "packaged with bundle dir",
			locator: Locator{Packaged: true, BundleDir: filepath.Join("tmp", "bundle"), Executable: exe, GOOS: "windows"},
			want:    filepath.Join("tmp", "bundle", "firstdraft.toml"),
		},
		{
			name:    "packaged windows",
			locator: Locator{Packaged: true, Executable: exe, GOOS: "windows"},
			want:    filepath.Join("opt", "openeyes", "bin", "resources", "firstdraft.toml"),
		},
		{
			name:    "packaged darwin",
			locator: Locator{Packaged: true, Executable: exe, GOOS: "darwin"},
			want:    filepath.Join("opt", "openeyes", "Resources", "resources", "firstdraft.toml"),
		},
		{
			name:    "packaged linux",
			locator: Locator{Packaged: true, Executable: exe, GOOS: "linux"},
			want:    filepath.Join("opt", "openeyes", "bin", "resources", "firstdraft.toml"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.locator.Locate("firstdraft.toml"))
		})
	}
}

func TestLocate_SourceTreeHasLayout(t *testing.T) {
	path := NewLocator().Locate(LayoutFile)
	_, err := os.Stat(path)
	assert.NoError(t, err, path)
}
