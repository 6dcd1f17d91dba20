package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// ChecklistConfig is the team's Definition-of-Done as read from the DoD file.
type ChecklistConfig struct {
	IssueReferenceRequired bool     `mapstructure:"issue_reference_required" yaml:"issue_reference_required"`
	Items                  []string `mapstructure:"checklist" yaml:"checklist"`
}

const (
	DefaultFileName = ".dod.yml"
	EnvPrefix       = "CHECK_COMMIT"
	// EnvFileKey is read as CHECK_COMMIT_DOD_FILE.
	EnvFileKey = "dod_file"
)

var (
	// ErrConfig matches every checklist loading failure.
	ErrConfig = errors.New("checklist configuration error")

	ErrChecklistNotFound = fmt.Errorf("%w: checklist file not found", ErrConfig)
	ErrChecklistInvalid  = fmt.Errorf("%w: checklist file is malformed", ErrConfig)
	ErrChecklistExists   = errors.New("checklist file already exists")
)

var defaultItems = []string{
	"Code is clean, readable, and adheres to team coding standards.",
	"All relevant automated tests (unit, integration) pass successfully.",
	"New features or bug fixes are covered by appropriate new tests.",
	"Security implications of this change have been considered.",
	"Relevant documentation (code comments, READMEs, etc.) is updated.",
}

// DefaultChecklist returns the starter checklist written by `check-commit init`.
func DefaultChecklist() *ChecklistConfig {
	items := make([]string, len(defaultItems))
	copy(items, defaultItems)
	return &ChecklistConfig{Items: items}
}

// ResolvePath returns the DoD file location. An explicit override wins, then
// CHECK_COMMIT_DOD_FILE, then the default file name. Relative paths are
// resolved against root.
func ResolvePath(root, override string) string {
	path := override
	if path == "" {
		v := viper.New()
		v.SetEnvPrefix(EnvPrefix)
		v.AutomaticEnv()
		path = v.GetString(EnvFileKey)
	}
	if path == "" {
		path = DefaultFileName
	}
	if filepath.IsAbs(path) || root == "" {
		return path
	}
	return filepath.Join(root, path)
}

// Load reads and validates the DoD file at path.
func Load(path string) (*ChecklistConfig, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrChecklistNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrConfig, path, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault("issue_reference_required", false)
	v.SetDefault("checklist", []string{})

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrChecklistInvalid, path, err)
	}

	cfg := &ChecklistConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrChecklistInvalid, path, err)
	}

	for i, item := range cfg.Items {
		item = strings.TrimSpace(item)
		if item == "" {
			return nil, fmt.Errorf("%w: %s: checklist item %d is empty", ErrChecklistInvalid, path, i+1)
		}
		cfg.Items[i] = item
	}

	return cfg, nil
}

// Write saves cfg as YAML to path. An existing file is only replaced when force is set.
func Write(path string, cfg *ChecklistConfig, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrChecklistExists, path)
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode checklist: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write checklist file: %w", err)
	}
	return nil
}
