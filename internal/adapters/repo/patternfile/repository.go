package patternfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/fusionkit/fusion-cli/internal/domain"
	"github.com/fusionkit/fusion-cli/internal/ports"
)

const (
	configName       = "config"
	configType       = "toml"
	patternsPathKey  = "patterns.path"
	patternsFileMode = 0o600
	patternsDirMode  = 0o700
	patternsDir      = ".config/fusion"
	patternsFile     = "patterns.toml"
	tempFilePattern  = ".patterns-*.toml.tmp"
)

// Repository stores custom patterns in a TOML catalog file.
type Repository struct {
	patternsPath string
	mu           *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.PatternRepository = (*Repository)(nil)

// NewRepository resolves the catalog path from an optional config.toml next
// to the catalog, defaulting to ~/.config/fusion/patterns.toml.
func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, patternsDir, patternsFile)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, patternsDir))
	cfg.SetDefault(patternsPathKey, defaultPath)

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	patternsPath := cfg.GetString(patternsPathKey)
	if patternsPath == "" {
		return nil, errors.New("patterns path is empty")
	}
	patternsPath, err = normalizePatternsPath(patternsPath)
	if err != nil {
		return nil, err
	}

	return &Repository{patternsPath: patternsPath, mu: lockForPath(patternsPath)}, nil
}

// List returns every pattern in the catalog; a missing file is an empty
// catalog.
func (r *Repository) List(ctx context.Context) ([]domain.PatternEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	entries := make([]domain.PatternEntry, 0, len(file.Patterns))
	for _, entry := range file.Patterns {
		entries = append(entries, fromSchema(entry))
	}

	return entries, nil
}

// Save adds or replaces one pattern in the catalog.
func (r *Repository) Save(ctx context.Context, pattern domain.PatternEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := pattern.Validate(); err != nil {
		return fmt.Errorf("validate pattern %q: %w", pattern.Name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}
	file.applyDefaults()

	encoded := toSchema(pattern)
	updated := false
	for i := range file.Patterns {
		if file.Patterns[i].Name == encoded.Name {
			file.Patterns[i] = encoded
			updated = true
			break
		}
	}

	if !updated {
		file.Patterns = append(file.Patterns, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.patternsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read patterns file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode patterns file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.patternsPath), patternsDirMode); err != nil {
		return fmt.Errorf("create patterns directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode patterns file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.patternsPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp patterns file: %w", err)
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
		return fmt.Errorf("write temp patterns file: %w", err)
	}

	if err := tempFile.Chmod(patternsFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp patterns file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp patterns file: %w", err)
	}

	if err := os.Rename(tempName, r.patternsPath); err != nil {
		return fmt.Errorf("replace patterns file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(r.patternsPath, patternsFileMode); err != nil {
		return fmt.Errorf("chmod patterns file: %w", err)
	}

	return nil
}

func normalizePatternsPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve patterns path: %w", err)
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
