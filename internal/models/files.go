package models

import (
	"path/filepath"
	"sync"
	"time"
)

// LoadedFile is a file the user opened. It is never modified after creation.
type LoadedFile struct {
	Filename string
	Path     string
	Contents string
	LoadedAt time.Time
}

// NewLoadedFile records contents read from path
func NewLoadedFile(path, contents string) *LoadedFile {
	return &LoadedFile{
		Filename: filepath.Base(path),
		Path:     path,
		Contents: contents,
		LoadedAt: time.Now(),
	}
}

// FileRepository keeps loaded files in load order
type FileRepository struct {
	mu    sync.RWMutex
	files []*LoadedFile
}

// NewFileRepository creates an empty repository
func NewFileRepository() *FileRepository {
	return &FileRepository{
		files: make([]*LoadedFile, 0),
	}
}

// Add appends a loaded file
func (r *FileRepository) Add(file *LoadedFile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.files = append(r.files, file)
}

// Get returns the file at index, or nil when out of range
func (r *FileRepository) Get(index int) *LoadedFile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if index < 0 || index >= len(r.files) {
		return nil
	}
	return r.files[index]
}

// Latest returns the most recently loaded file
func (r *FileRepository) Latest() *LoadedFile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.files) == 0 {
		return nil
	}
	return r.files[len(r.files)-1]
}

// Filenames lists base names in load order
func (r *FileRepository) Filenames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.files))
	for i, f := range r.files {
		names[i] = f.Filename
	}
	return names
}

// Len returns the number of loaded files
func (r *FileRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.files)
}
