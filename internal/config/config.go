// Package config provides YAML-based game configuration loading and
// named speed presets for the frogger game.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// FroggerConfig contains all configuration for the Frogger game.
type FroggerConfig struct {
	World    WorldConfig    `yaml:"world"`
	Player   PlayerConfig   `yaml:"player"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Lanes    []LaneConfig   `yaml:"lanes"`
}

// WorldConfig defines the playfield geometry in world units.
type WorldConfig struct {
	Grid       float64 `yaml:"grid"`        // Size of one grid unit
	GridGap    float64 `yaml:"grid_gap"`    // Collision inset, also the visual gap between lanes
	Columns    int     `yaml:"columns"`     // World width in grid units
	HeightRows int     `yaml:"height_rows"` // World height in grid units
}

// Width returns the world width in world units.
func (w WorldConfig) Width() float64 {
	return w.Grid * float64(w.Columns)
}

// Height returns the world height in world units.
func (w WorldConfig) Height() float64 {
	return w.Grid * float64(w.HeightRows)
}

// PlayerConfig defines where the player starts and respawns.
type PlayerConfig struct {
	SpawnCol   int    `yaml:"spawn_col"`   // Column of every spawn point
	SpawnRow   int    `yaml:"spawn_row"`   // Grid row used at start and after a road hit
	RespawnRow int    `yaml:"respawn_row"` // Grid row used after drowning
	Color      string `yaml:"color"`
}

// GameplayConfig defines scoring rules.
type GameplayConfig struct {
	GoalEvery      int `yaml:"goal_every"`      // Every Nth column of the goal bank is a goal slot
	CrossingPoints int `yaml:"crossing_points"` // Points per filled goal slot
}

// LaneConfig describes one row of the world, top (goal) first.
type LaneConfig struct {
	Terrain string         `yaml:"terrain"`
	Pattern *PatternConfig `yaml:"pattern,omitempty"` // nil means safe zone
}

// PatternConfig is the YAML form of a lane pattern.
type PatternConfig struct {
	Spacing []int   `yaml:"spacing"` // Gaps between obstacles in grid units
	Size    float64 `yaml:"size"`    // Obstacle length in grid units
	Shape   string  `yaml:"shape"`   // "rect" or "circle"
	Color   string  `yaml:"color"`
	Speed   float64 `yaml:"speed"` // World units per frame, sign gives direction
}

// Terrain names accepted in lane configs.
const (
	TerrainGoal     = "goal"
	TerrainRiver    = "river"
	TerrainBeach    = "beach"
	TerrainSidewalk = "sidewalk"
	TerrainRoad     = "road"
)

var terrains = map[string]bool{
	TerrainGoal:     true,
	TerrainRiver:    true,
	TerrainBeach:    true,
	TerrainSidewalk: true,
	TerrainRoad:     true,
}

// colorNames maps config color names to terminal colors.
var colorNames = map[string]core.Color{
	"default":     core.ColorDefault,
	"red":         core.ColorRed,
	"green":       core.ColorGreen,
	"yellow":      core.ColorYellow,
	"blue":        core.ColorBlue,
	"magenta":     core.ColorMagenta,
	"cyan":        core.ColorCyan,
	"white":       core.ColorWhite,
	"orange":      core.ColorOrange,
	"gray":        core.ColorGray,
	"grey":        core.ColorGray,
	"brown":       core.ColorBrown,
	"saddlebrown": core.ColorSaddleBrown,
	"silver":      core.ColorSilver,
	"greenyellow": core.ColorGreenYellow,
	"tan":         core.ColorTan,
	"aqua":        core.ColorAqua,
	"gold":        core.ColorGold,
}

// ColorByName resolves a config color name (case-insensitive).
func ColorByName(name string) (core.Color, error) {
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return core.ColorDefault, fmt.Errorf("config: unknown color %q: %w", name, ErrInvalidConfig)
	}
	return c, nil
}

// Validate checks that the config describes a playable world.
// The row table must cover every row the player can be clamped into,
// otherwise the engine would look up a row that does not exist.
func (c FroggerConfig) Validate() error {
	w := c.World
	if w.Grid <= 0 {
		return fmt.Errorf("config: grid must be positive, got %v: %w", w.Grid, ErrInvalidConfig)
	}
	if w.GridGap < 0 || w.GridGap >= w.Grid {
		return fmt.Errorf("config: grid_gap must be in [0, grid), got %v: %w", w.GridGap, ErrInvalidConfig)
	}
	if w.Columns < 1 {
		return fmt.Errorf("config: columns must be positive, got %d: %w", w.Columns, ErrInvalidConfig)
	}
	if w.HeightRows < 3 {
		return fmt.Errorf("config: height_rows must be at least 3, got %d: %w", w.HeightRows, ErrInvalidConfig)
	}

	// Player y is clamped to [grid, height-2*grid], i.e. rows 0..height_rows-3.
	if need := w.HeightRows - 2; len(c.Lanes) < need {
		return fmt.Errorf("config: %d lanes cannot cover %d reachable rows: %w", len(c.Lanes), need, ErrInvalidConfig)
	}

	p := c.Player
	if p.SpawnCol < 0 || p.SpawnCol >= w.Columns {
		return fmt.Errorf("config: spawn_col %d outside [0, %d): %w", p.SpawnCol, w.Columns, ErrInvalidConfig)
	}
	for _, row := range []int{p.SpawnRow, p.RespawnRow} {
		if row < 1 || row > w.HeightRows-2 {
			return fmt.Errorf("config: spawn row %d outside [1, %d]: %w", row, w.HeightRows-2, ErrInvalidConfig)
		}
	}
	if _, err := ColorByName(p.Color); err != nil {
		return err
	}

	if c.Gameplay.GoalEvery < 1 {
		return fmt.Errorf("config: goal_every must be positive, got %d: %w", c.Gameplay.GoalEvery, ErrInvalidConfig)
	}

	for i, lane := range c.Lanes {
		if !terrains[lane.Terrain] {
			return fmt.Errorf("config: lane %d: unknown terrain %q: %w", i, lane.Terrain, ErrInvalidConfig)
		}
		if lane.Pattern == nil {
			continue
		}
		if err := lane.Pattern.validate(); err != nil {
			return fmt.Errorf("config: lane %d: %w", i, err)
		}
	}
	return nil
}

func (p PatternConfig) validate() error {
	if len(p.Spacing) == 0 {
		return fmt.Errorf("empty spacing: %w", ErrInvalidConfig)
	}
	for _, s := range p.Spacing {
		if s < 0 {
			return fmt.Errorf("negative spacing %d: %w", s, ErrInvalidConfig)
		}
	}
	if p.Size <= 0 {
		return fmt.Errorf("size must be positive, got %v: %w", p.Size, ErrInvalidConfig)
	}
	if p.Speed == 0 {
		return fmt.Errorf("speed must be non-zero: %w", ErrInvalidConfig)
	}
	if p.Shape != "rect" && p.Shape != "circle" {
		return fmt.Errorf("unknown shape %q: %w", p.Shape, ErrInvalidConfig)
	}
	if _, err := ColorByName(p.Color); err != nil {
		return err
	}
	return nil
}

// Preset is a named, fixed speed scaling chosen before play starts.
type Preset string

const (
	PresetClassic Preset = "classic"
	PresetCalm    Preset = "calm"
	PresetRush    Preset = "rush"
)

// Presets lists the named presets in display order.
var Presets = []Preset{PresetClassic, PresetCalm, PresetRush}

// ParsePreset resolves a preset name; an empty name means config speeds.
func ParsePreset(name string) (Preset, error) {
	switch p := Preset(strings.ToLower(strings.TrimSpace(name))); p {
	case "", PresetClassic, PresetCalm, PresetRush:
		return p, nil
	default:
		return "", fmt.Errorf("unknown preset %q (want classic, calm or rush): %w", name, ErrInvalidConfig)
	}
}

// SpeedScale returns the lane speed multiplier for a preset.
// Unknown or empty presets play at the configured speeds.
func SpeedScale(preset Preset) float64 {
	switch preset {
	case PresetCalm:
		return 0.6
	case PresetRush:
		return 1.6
	default:
		return 1.0
	}
}
