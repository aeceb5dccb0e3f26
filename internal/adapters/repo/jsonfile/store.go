package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fusionkit/fusion-cli/internal/domain"
	"github.com/fusionkit/fusion-cli/internal/ports"
)

const (
	memoryFileMode  = 0o600
	memoryDirMode   = 0o700
	tempFilePattern = ".memory-*.json.tmp"
)

// Store persists the memory document as a single JSON object at a fixed
// path, and moves the same document to and from caller-given paths for
// export/import.
type Store struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var (
	_ ports.ContextRepository = (*Store)(nil)
	_ ports.MemoryFile        = (*Store)(nil)
)

func NewStore(path string) (*Store, error) {
	normalized, err := normalizePath(path)
	if err != nil {
		return nil, err
	}

	return &Store{path: normalized, mu: lockForPath(normalized)}, nil
}

func (s *Store) Load(ctx context.Context) (domain.Memory, error) {
	if err := ctx.Err(); err != nil {
		return domain.Memory{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return readMemory(s.path)
}

func (s *Store) Save(ctx context.Context, memory domain.Memory) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return writeMemory(s.path, memory)
}

func (s *Store) Export(ctx context.Context, path string, memory domain.Memory) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	normalized, err := normalizePath(path)
	if err != nil {
		return err
	}

	return writeMemory(normalized, memory)
}

func (s *Store) Import(ctx context.Context, path string) (domain.Memory, error) {
	if err := ctx.Err(); err != nil {
		return domain.Memory{}, err
	}

	normalized, err := normalizePath(path)
	if err != nil {
		return domain.Memory{}, err
	}

	data, err := os.ReadFile(normalized)
	if err != nil {
		return domain.Memory{}, fmt.Errorf("read memory file: %w", err)
	}

	return decodeMemory(data)
}

// readMemory returns an empty document when the file does not exist yet.
func readMemory(path string) (domain.Memory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Memory{}, nil
		}
		return domain.Memory{}, fmt.Errorf("read memory file: %w", err)
	}

	return decodeMemory(data)
}

func decodeMemory(data []byte) (domain.Memory, error) {
	var file fileSchema
	if err := json.Unmarshal(data, &file); err != nil {
		return domain.Memory{}, fmt.Errorf("decode memory file: %w", err)
	}

	return fromSchema(file), nil
}

func writeMemory(path string, memory domain.Memory) error {
	if err := os.MkdirAll(filepath.Dir(path), memoryDirMode); err != nil {
		return fmt.Errorf("create memory directory: %w", err)
	}

	data, err := json.MarshalIndent(toSchema(memory), "", "  ")
	if err != nil {
		return fmt.Errorf("encode memory file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp memory file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp memory file: %w", err)
	}

	if err := tempFile.Chmod(memoryFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp memory file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp memory file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace memory file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(path, memoryFileMode); err != nil {
		return fmt.Errorf("chmod memory file: %w", err)
	}

	return nil
}

func normalizePath(path string) (string, error) {
	if path == "" {
		return "", errors.New("memory path is empty")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve memory path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
