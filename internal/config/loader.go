package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFrogger loads Frogger configuration.
// Search order: customPath -> ~/.frogger/configs/frogger.yaml -> ./configs/frogger.yaml -> embedded default
// A custom path that cannot be read, parsed or validated is an error; the
// implicit locations are skipped silently when they are unusable.
func LoadFrogger(customPath string) (FroggerConfig, error) {
	var cfg FroggerConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("frogger.yaml"); userCfgPath != "" {
		if cfg, ok := tryLoad(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryLoad(filepath.Join("configs", "frogger.yaml")); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg = FroggerConfig{}
	if err := yaml.Unmarshal(defaultFroggerYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultFroggerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads and validates a config file, reporting whether it is usable.
func tryLoad(path string) (FroggerConfig, bool) {
	var cfg FroggerConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".frogger", "configs", filename)
}

// ApplyPreset scales every lane speed by the preset's factor.
// Lanes are copied so the caller's patterns are left untouched.
func ApplyPreset(cfg *FroggerConfig, preset Preset) {
	scale := SpeedScale(preset)
	if scale == 1.0 {
		return
	}

	lanes := make([]LaneConfig, len(cfg.Lanes))
	for i, lane := range cfg.Lanes {
		lanes[i] = lane
		if lane.Pattern == nil {
			continue
		}
		p := *lane.Pattern
		p.Spacing = append([]int(nil), lane.Pattern.Spacing...)
		p.Speed *= scale
		lanes[i].Pattern = &p
	}
	cfg.Lanes = lanes
}
