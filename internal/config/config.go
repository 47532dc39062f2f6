package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for vaulty. Pointer
// fields distinguish "unset" from zero so the CLI can merge with the
// precedence CLI > local > global.
type FileConfig struct {
	MinScore  *int    `yaml:"min_score"`
	Enable    *string `yaml:"enable"`
	Disable   *string `yaml:"disable"`
	MaxBytes  *int64  `yaml:"max_bytes"`
	Budget    *string `yaml:"budget"`
	NoColor   *bool   `yaml:"no_color"`
	Audit     *bool   `yaml:"audit"`
	ReportDir *string `yaml:"report_dir"`
	Exclude   *string `yaml:"exclude"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches the working directory for a config file. It supports
// .vaulty.yml/.yaml and vaulty.yml/.yaml.
func LoadLocal(dir string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".vaulty.yml", ".vaulty.yaml", "vaulty.yml", "vaulty.yaml"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "vaulty", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}
