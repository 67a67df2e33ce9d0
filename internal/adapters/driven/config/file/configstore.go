package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/evsearch/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// FileName is the name of the configuration file inside the config directory.
const FileName = "config.toml"

// ConfigStore is a file-based implementation of driven.ConfigStore using TOML.
// Keys are held flattened ("cli.path") and written back as nested tables.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	data     map[string]any
}

// DefaultDir returns ~/.evsearch.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".evsearch"), nil
}

// NewConfigStore creates a new TOML-based config store.
// If configDir is empty, defaults to ~/.evsearch/config.toml.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		configDir = dir
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("creating config dir: %w", err)
	}

	s := &ConfigStore{
		filePath: filepath.Join(configDir, FileName),
		data:     make(map[string]any),
	}

	if err := s.Load(); err != nil {
		return nil, err
	}

	return s, nil
}

// Get retrieves a configuration value by key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.data[key]
	return val, ok
}

// GetString returns the string at key, or "" when absent or not a string.
func (s *ConfigStore) GetString(key string) string {
	return typed[string](s, key)
}

// GetInt returns the integer at key, or 0. The TOML decoder yields int64;
// values set at runtime may be int.
func (s *ConfigStore) GetInt(key string) int {
	if v, ok := s.Get(key); ok {
		if i64, ok := v.(int64); ok {
			return int(i64)
		}
	}
	return typed[int](s, key)
}

// GetBool returns the boolean at key, or false.
func (s *ConfigStore) GetBool(key string) bool {
	return typed[bool](s, key)
}

func typed[T any](s *ConfigStore, key string) T {
	v, _ := s.Get(key)
	t, _ := v.(T)
	return t
}

// Set stores a configuration value and persists immediately.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return s.save()
}

// Save persists the current configuration to disk.
func (s *ConfigStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save()
}

// save writes configuration to the TOML file (caller must hold lock).
func (s *ConfigStore) save() error {
	data, err := toml.Marshal(nestMap(s.data))
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	// The file may hold an API token.
	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return fmt.Errorf("writing %s: %w", s.filePath, err)
	}
	return nil
}

// Load reads configuration from the TOML file. A missing file leaves
// the store empty.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		s.data = make(map[string]any)
		return nil
	case err != nil:
		return fmt.Errorf("reading %s: %w", s.filePath, err)
	}

	var loaded map[string]any
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("parsing %s: %w", s.filePath, err)
	}

	s.data = flattenMap(loaded, "")
	return nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}

// flattenMap turns nested tables into dotted keys:
// {"cli": {"path": "x"}} becomes {"cli.path": "x"}.
func flattenMap(m map[string]any, prefix string) map[string]any {
	flat := make(map[string]any)
	flattenInto(flat, m, prefix)
	return flat
}

func flattenInto(dst, m map[string]any, prefix string) {
	for key, value := range m {
		if prefix != "" {
			key = prefix + "." + key
		}
		if table, ok := value.(map[string]any); ok {
			flattenInto(dst, table, key)
			continue
		}
		dst[key] = value
	}
}

// nestMap is the inverse of flattenMap. Keys are visited in sorted order;
// a key whose prefix already holds a plain value is dropped.
func nestMap(flat map[string]any) map[string]any {
	keys := make([]string, 0, len(flat))
	for key := range flat {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := make(map[string]any)
	for _, key := range keys {
		parts := strings.Split(key, ".")
		if node, ok := tableFor(result, parts[:len(parts)-1]); ok {
			node[parts[len(parts)-1]] = flat[key]
		}
	}
	return result
}

// tableFor walks (creating as needed) the nested table at path.
func tableFor(root map[string]any, path []string) (map[string]any, bool) {
	node := root
	for _, part := range path {
		existing, taken := node[part]
		if !taken {
			child := make(map[string]any)
			node[part] = child
			node = child
			continue
		}
		child, ok := existing.(map[string]any)
		if !ok {
			return nil, false
		}
		node = child
	}
	return node, true
}
