package workspacefinder

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aalvaropc/pizzadough/internal/domain"
	"gopkg.in/yaml.v3"
)

// ConfigFile is the marker file of a pizzadough workspace.
const ConfigFile = "pizzadough.yaml"

// Environment variables that override pizzadough.yaml.
const (
	EnvProfilesDir    = "PIZZADOUGH_PROFILES_DIR"
	EnvPlansDir       = "PIZZADOUGH_PLANS_DIR"
	EnvDefaultProfile = "PIZZADOUGH_DEFAULT_PROFILE"
	EnvSavePlans      = "PIZZADOUGH_SAVE_PLANS"
)

// LoadConfig loads pizzadough.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFile)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.Pizzadough.Defaults.Profile != "" {
		cfg.Defaults.Profile = y.Pizzadough.Defaults.Profile
	}
	if y.Pizzadough.Defaults.Format != "" {
		cfg.Defaults.Format = y.Pizzadough.Defaults.Format
	}
	if y.Pizzadough.Paths.ProfilesDir != "" {
		cfg.Paths.ProfilesDir = y.Pizzadough.Paths.ProfilesDir
	}
	if y.Pizzadough.Paths.PlansDir != "" {
		cfg.Paths.PlansDir = y.Pizzadough.Paths.PlansDir
	}
	if y.Pizzadough.Plans.Save != nil {
		cfg.Plans.Save = *y.Pizzadough.Plans.Save
	}
	if y.Pizzadough.Plans.Index != nil {
		cfg.Plans.Index = *y.Pizzadough.Plans.Index
	}

	return cfg, nil
}

// ApplyEnv overlays PIZZADOUGH_* variables on cfg. lookup is usually
// os.LookupEnv; unparsable booleans are ignored.
func ApplyEnv(cfg domain.Config, lookup func(string) (string, bool)) domain.Config {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get(EnvProfilesDir); ok {
		cfg.Paths.ProfilesDir = v
	}
	if v, ok := get(EnvPlansDir); ok {
		cfg.Paths.PlansDir = v
	}
	if v, ok := get(EnvDefaultProfile); ok {
		cfg.Defaults.Profile = v
	}
	if v, ok := get(EnvSavePlans); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Plans.Save = b
		}
	}
	return cfg
}

type yamlConfig struct {
	Pizzadough struct {
		Defaults struct {
			Profile string `yaml:"profile"`
			Format  string `yaml:"format"`
		} `yaml:"defaults"`

		Paths struct {
			ProfilesDir string `yaml:"profiles_dir"`
			PlansDir    string `yaml:"plans_dir"`
		} `yaml:"paths"`

		Plans struct {
			Save  *bool `yaml:"save"`
			Index *bool `yaml:"index"`
		} `yaml:"plans"`
	} `yaml:"pizzadough"`
}
