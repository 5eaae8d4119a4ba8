// Package storage provides XDG-compliant path management for tidy.
package storage

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
)

const (
	// AppName is the application name used for XDG directory paths
	AppName = "tidy"

	// ConfigFilename is the name of the config file inside the XDG
	// config directory
	ConfigFilename = "tidy.yml"

	// HistoryFilename is the name of the move journal database
	HistoryFilename = "history.db"
)

// Manager handles storage operations with filesystem abstraction
type Manager struct {
	fs afero.Fs
}

// New creates a new storage manager with the given filesystem
func New(fs afero.Fs) *Manager {
	return &Manager{fs: fs}
}

// GetDataDir returns the XDG data directory for tidy, creating it if necessary
func (m *Manager) GetDataDir() (string, error) {
	dataDir := filepath.Join(xdg.DataHome, AppName)
	err := m.fs.MkdirAll(dataDir, 0o750)
	if err != nil {
		return "", fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
	}
	return dataDir, nil
}

// GetHistoryPath returns the full path to the move journal database
func (m *Manager) GetHistoryPath() (string, error) {
	dataDir, err := m.GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, HistoryFilename), nil
}

// GetConfigPath returns the default config file path. The file is not
// required to exist.
func (m *Manager) GetConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, ConfigFilename)
}

// DefaultSource returns the directory organized when no source is given:
// the user's download directory, falling back to ~/Downloads.
func (m *Manager) DefaultSource() string {
	if xdg.UserDirs.Download != "" {
		return xdg.UserDirs.Download
	}
	return filepath.Join(xdg.Home, "Downloads")
}
