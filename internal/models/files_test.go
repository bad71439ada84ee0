package models

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileRepository(t *testing.T) {
	repo := NewFileRepository()
	assert.Nil(t, repo.Latest())
	assert.Nil(t, repo.Get(0))

	repo.Add(NewLoadedFile(filepath.Join("data", "a.asc"), "A"))
	repo.Add(NewLoadedFile(filepath.Join("data", "b.asc"), "B"))

	assert.Equal(t, 2, repo.Len())
	assert.Equal(t, []string{"a.asc", "b.asc"}, repo.Filenames())
	assert.Equal(t, "B", repo.Latest().Contents)
	assert.Equal(t, "A", repo.Get(0).Contents)
	assert.Nil(t, repo.Get(2))
	assert.Nil(t, repo.Get(-1))
}

func TestNewLoadedFile(t *testing.T) {
	f := NewLoadedFile(filepath.Join("home", "user", "notes.txt"), "hello")
	assert.Equal(t, "notes.txt", f.Filename)
	assert.Equal(t, "hello", f.Contents)
	assert.False(t, f.LoadedAt.IsZero())
}
