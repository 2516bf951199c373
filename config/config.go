// Package config persists user settings as JSON under the OS config directory.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"hatch/history"
)

const (
	DefaultHotkey         = "ctrl+alt+c"
	DefaultCommand        = "claude"
	DefaultWindowPosition = "center"
)

// Config mirrors the on-disk settings.json layout. RecentDirectories is the
// pre-history format and only read, never written back.
type Config struct {
	Hotkey            string          `json:"hotkey"`
	LastDirectory     string          `json:"last_directory"`
	LastCommand       string          `json:"last_command"`
	WindowPosition    string          `json:"window_position"`
	StartAtLogin      bool            `json:"start_at_login"`
	DirectoryHistory  []history.Entry `json:"directory_history"`
	RecentDirectories []string        `json:"recent_directories,omitempty"`
}

func defaults() Config {
	return Config{
		Hotkey:         DefaultHotkey,
		LastCommand:    DefaultCommand,
		WindowPosition: DefaultWindowPosition,
	}
}

// ResolvePath picks the settings file location. A -config flag wins, then
// HATCH_CONFIG_PATH, then the OS default config directory.
func ResolvePath(flagPath string) (string, error) {
	if flagPath != "" {
		return absPath(flagPath)
	}
	if envPath := os.Getenv("HATCH_CONFIG_PATH"); envPath != "" {
		return absPath(envPath)
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "hatch", "settings.json"), nil
}

func absPath(p string) (string, error) {
	if filepath.IsAbs(p) {
		return p, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, p), nil
}

// Service loads, caches and saves the config file. Safe for concurrent use.
type Service struct {
	mu   sync.Mutex
	path string
	cfg  Config
}

func NewService(path string) *Service {
	return &Service{path: path, cfg: defaults()}
}

func (s *Service) Path() string {
	return s.path
}

// Load reads the settings file. A missing file yields defaults. A corrupt
// file is renamed aside and replaced with defaults rather than aborting
// startup.
func (s *Service) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.cfg = defaults()
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	cfg := defaults()
	if err := json.Unmarshal(data, &cfg); err != nil {
		os.Rename(s.path, s.path+".corrupt")
		s.cfg = defaults()
		return nil
	}

	if cfg.Hotkey == "" {
		cfg.Hotkey = DefaultHotkey
	}
	if cfg.LastCommand == "" {
		cfg.LastCommand = DefaultCommand
	}
	if cfg.WindowPosition == "" {
		cfg.WindowPosition = DefaultWindowPosition
	}

	// Migrate the legacy plain-path list into the history format.
	if len(cfg.DirectoryHistory) == 0 && len(cfg.RecentDirectories) > 0 {
		cfg.DirectoryHistory = history.FromPaths(cfg.RecentDirectories).List(0)
	}
	cfg.RecentDirectories = nil

	s.cfg = cfg
	return nil
}

// Get returns a copy of the current config.
func (s *Service) Get() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyLocked()
}

// Update applies fn to the config and writes it to disk.
func (s *Service) Update(fn func(*Config)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.cfg)
	return s.saveLocked()
}

// Save writes the current config to disk.
func (s *Service) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

func (s *Service) saveLocked() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	cfg := s.copyLocked()
	cfg.RecentDirectories = nil
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace config: %w", err)
	}
	return nil
}

func (s *Service) copyLocked() Config {
	cfg := s.cfg
	if cfg.DirectoryHistory != nil {
		hist := make([]history.Entry, len(cfg.DirectoryHistory))
		copy(hist, cfg.DirectoryHistory)
		cfg.DirectoryHistory = hist
	}
	return cfg
}
