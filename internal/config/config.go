// ABOUTME: Clinic tool configuration: names shown on reports and the data
// ABOUTME: directory holding the two store files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hamzakhoso/clinic/internal/clinicdb"
	"github.com/hamzakhoso/clinic/internal/pharmacydb"
)

// Config stores clinic tool configuration.
type Config struct {
	// ClinicName and DoctorName appear on printed reports.
	ClinicName string `json:"clinic_name,omitempty"`
	DoctorName string `json:"doctor_name,omitempty"`

	// DataDir is the root directory for data storage; clinic.db and
	// pharmacy.db live here. Supports ~ expansion. Defaults to
	// ~/.local/share/clinic.
	DataDir string `json:"data_dir,omitempty"`
}

// GetClinicName returns the configured clinic name with a sensible default.
func (c *Config) GetClinicName() string {
	if c.ClinicName == "" {
		return "Clinic"
	}
	return c.ClinicName
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return DataDir()
	}
	return ExpandPath(c.DataDir)
}

// DataDir returns the default data directory following the XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "clinic")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenClinicStore opens the clinic database in the configured data dir.
func (c *Config) OpenClinicStore() (*clinicdb.DB, error) {
	return clinicdb.Open(filepath.Join(c.GetDataDir(), "clinic.db"))
}

// OpenPharmacyStore opens the pharmacy database in the configured data dir.
func (c *Config) OpenPharmacyStore() (*pharmacydb.DB, error) {
	return pharmacydb.Open(filepath.Join(c.GetDataDir(), "pharmacy.db"))
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "clinic", "config.json")
}

// Load reads config from disk. A missing file yields the defaults.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
