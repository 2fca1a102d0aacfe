package flatfile

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sync"
)

type (
	// Storage is the port between tables and whatever holds the bytes.
	// Production code binds it to the real filesystem, tests bind it to
	// an in-memory map.
	Storage interface {
		ReadFile(ctx context.Context, path string) ([]byte, error)
		AppendLine(ctx context.Context, path string, line string) error
	}

	osStorage struct{}

	// MemStorage keeps files in process memory. Useful for tests that
	// should not touch the disk.
	MemStorage struct {
		mutex sync.Mutex
		files map[string][]byte
	}
)

// OSStorage binds the storage port to the local filesystem.
func OSStorage() Storage {
	return osStorage{}
}

func (osStorage) ReadFile(_ context.Context, path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (osStorage) AppendLine(_ context.Context, path string, line string) error {
	fd, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		return err
	}
	_, err = io.WriteString(fd, line)
	if cerr := fd.Close(); err == nil {
		err = cerr
	}
	return err
}

// InMemoryStorage returns an empty memory-backed storage.
func InMemoryStorage() *MemStorage {
	return &MemStorage{files: make(map[string][]byte)}
}

// WriteFile replaces the whole content of path, tests use it to provision
// fixtures.
func (m *MemStorage) WriteFile(path string, content []byte) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.files[path] = append([]byte(nil), content...)
}

func (m *MemStorage) ReadFile(_ context.Context, path string) ([]byte, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	buf, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("open %v: %w", path, fs.ErrNotExist)
	}
	return append([]byte(nil), buf...), nil
}

func (m *MemStorage) AppendLine(_ context.Context, path string, line string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.files[path] = append(m.files[path], line...)
	return nil
}
