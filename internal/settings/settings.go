package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned when the settings file cannot be decoded.
var ErrInvalid = errors.New("invalid settings file")

// Settings holds the persisted user options.
type Settings struct {
	// StopOnBack sends the global stop command when leaving the terminal or
	// the text input with Back.
	StopOnBack bool `yaml:"stop_on_back"`
	// CheckConnection gates command execution on the ESP answering.
	CheckConnection bool `yaml:"check_connection"`
}

// Defaults returns the settings used before anything is saved.
func Defaults() Settings {
	return Settings{StopOnBack: false, CheckConnection: true}
}

// Store reads and writes settings.
type Store interface {
	Load() Settings
	Save(Settings) error
}

type fileStore struct {
	path string

	mu      sync.RWMutex
	current Settings
}

// Open reads path into a new store. A missing file yields the defaults.
func Open(path string) (Store, error) {
	s := &fileStore{path: path, current: Defaults()}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	loaded := Defaults()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return s, fmt.Errorf("%w: %s: %w", ErrInvalid, path, err)
	}
	s.current = loaded
	return s, nil
}

func (s *fileStore) Load() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Save writes settings through a temp file and rename.
func (s *fileStore) Save(next Settings) error {
	data, err := yaml.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace settings: %w", err)
	}
	s.mu.Lock()
	s.current = next
	s.mu.Unlock()
	return nil
}

// Memory returns a store that keeps settings in memory only.
func Memory(initial Settings) Store {
	return &memoryStore{current: initial}
}

type memoryStore struct {
	mu      sync.RWMutex
	current Settings
}

func (m *memoryStore) Load() Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

func (m *memoryStore) Save(next Settings) error {
	m.mu.Lock()
	m.current = next
	m.mu.Unlock()
	return nil
}

// DefaultPath returns the settings file under the user config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return "ghost-esp-control.yaml"
	}
	return filepath.Join(dir, "ghost-esp-control", "settings.yaml")
}
