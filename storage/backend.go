package storage

import (
	"os"
	"path/filepath"
	"sync"
)

// Backend abstracts where named JSON documents live. The file-backed
// implementation serves production; MemoryBackend serves tests.
type Backend interface {
	// Read returns the raw document, or ok=false when it does not exist.
	Read(name string) (data []byte, ok bool, err error)
	// Write replaces the document in full. The target is left either in
	// its prior complete state or its new complete state, never partial.
	Write(name string, data []byte) error
}

type FileBackend struct {
	dir string
}

func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileBackend{dir: dir}, nil
}

func (f *FileBackend) Read(name string) ([]byte, bool, error) {
	data, err := os.ReadFile(filepath.Join(f.dir, name))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Write goes through a temporary file in the same directory and renames it
// over the target, so a crash mid-write cannot leave a truncated document.
func (f *FileBackend) Write(name string, data []byte) error {
	tmp, err := os.CreateTemp(f.dir, name+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, filepath.Join(f.dir, name)); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

type MemoryBackend struct {
	mu    sync.RWMutex
	files map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{files: make(map[string][]byte)}
}

func (m *MemoryBackend) Read(name string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[name]
	if !ok {
		return nil, false, nil
	}
	copied := make([]byte, len(data))
	copy(copied, data)
	return copied, true, nil
}

func (m *MemoryBackend) Write(name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := make([]byte, len(data))
	copy(copied, data)
	m.files[name] = copied
	return nil
}
