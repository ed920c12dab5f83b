// Package config handles loading taskdeck.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/taskdeck/taskdeck/internal/paths"
)

// Config represents the taskdeck.toml configuration file.
type Config struct {
	Tasks Tasks `toml:"tasks"`
	Dev   Dev   `toml:"dev"`
}

// Tasks contains persistence-related configuration.
type Tasks struct {
	// File is the path of the JSON tasks file. Relative paths resolve
	// against the working directory.
	File string `toml:"file"`
}

// Dev contains developer-tools configuration.
type Dev struct {
	// Dir is the directory the dev commands run in. Defaults to the
	// working directory.
	Dir string `toml:"dir"`

	// Packages is the package pattern passed to the test runner.
	// Defaults to "./...".
	Packages string `toml:"packages"`
}

// Load loads configuration from the working directory and the global
// config file, project values taking precedence. Returns an empty
// config if no config files exist.
func Load(dir string) (*Config, error) {
	globalPath, err := paths.GlobalConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(filepath.Join(dir, "taskdeck.toml"))
	if err != nil {
		return nil, err
	}

	return mergeConfigs(globalCfg, projectCfg, globalMeta, projectMeta), nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, globalMeta, projectMeta toml.MetaData) *Config {
	merged := Config{}
	merged.Tasks.File = mergeString(projectMeta.IsDefined("tasks", "file"), projectCfg.Tasks.File, globalCfg.Tasks.File)
	merged.Dev.Dir = mergeString(projectMeta.IsDefined("dev", "dir"), projectCfg.Dev.Dir, globalCfg.Dev.Dir)
	merged.Dev.Packages = mergeString(projectMeta.IsDefined("dev", "packages"), projectCfg.Dev.Packages, globalCfg.Dev.Packages)
	return &merged
}

func mergeString(projectDefined bool, projectValue, globalValue string) string {
	value := globalValue
	if projectDefined {
		value = projectValue
	}
	return strings.TrimSpace(value)
}
