package config

import (
	_ "embed"
)

//go:embed defaults/frogger.yaml
var defaultFroggerYAML []byte

// DefaultFroggerConfig returns the default Frogger configuration.
// It mirrors defaults/frogger.yaml and is used when the embedded file
// cannot be parsed.
func DefaultFroggerConfig() FroggerConfig {
	return FroggerConfig{
		World: WorldConfig{
			Grid:       48,
			GridGap:    10,
			Columns:    13,
			HeightRows: 16,
		},
		Player: PlayerConfig{
			SpawnCol:   6,
			SpawnRow:   14,
			RespawnRow: 13,
			Color:      "greenyellow",
		},
		Gameplay: GameplayConfig{
			GoalEvery:      3,
			CrossingPoints: 100,
		},
		Lanes: []LaneConfig{
			{Terrain: TerrainGoal},
			{Terrain: TerrainRiver, Pattern: &PatternConfig{Spacing: []int{2}, Size: 4, Shape: "rect", Color: "saddlebrown", Speed: 0.75}},
			{Terrain: TerrainRiver, Pattern: &PatternConfig{Spacing: []int{0, 2, 0, 2, 0, 2}, Size: 1, Shape: "circle", Color: "brown", Speed: -0.5}},
			{Terrain: TerrainRiver, Pattern: &PatternConfig{Spacing: []int{2}, Size: 3, Shape: "rect", Color: "saddlebrown", Speed: 1.5}},
			{Terrain: TerrainRiver, Pattern: &PatternConfig{Spacing: []int{3}, Size: 2, Shape: "rect", Color: "brown", Speed: 0.5}},
			{Terrain: TerrainRiver, Pattern: &PatternConfig{Spacing: []int{2, 2}, Size: 2, Shape: "rect", Color: "saddlebrown", Speed: -0.5}},
			{Terrain: TerrainBeach},
			{Terrain: TerrainSidewalk},
			{Terrain: TerrainRoad, Pattern: &PatternConfig{Spacing: []int{3, 8}, Size: 2, Shape: "rect", Color: "silver", Speed: -2}},
			{Terrain: TerrainRoad, Pattern: &PatternConfig{Spacing: []int{14}, Size: 1, Shape: "rect", Color: "silver", Speed: 4}},
			{Terrain: TerrainRoad, Pattern: &PatternConfig{Spacing: []int{3, 3, 7}, Size: 1, Shape: "rect", Color: "magenta", Speed: -1.5}},
			{Terrain: TerrainRoad, Pattern: &PatternConfig{Spacing: []int{3, 3, 7}, Size: 1, Shape: "rect", Color: "green", Speed: 1.5}},
			{Terrain: TerrainSidewalk},
			{Terrain: TerrainSidewalk},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "frogger":
		return defaultFroggerYAML
	default:
		return nil
	}
}
