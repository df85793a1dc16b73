package gamedata

import (
	"fmt"
	"sort"

	"github.com/samdwyer/superseed/internal/maze"
)

// Maze profile IDs used by scenes.
const (
	ProfileDefault = "default"
	ProfileBoss    = "boss"
)

// MazeProfile tunes maze generation for a kind of scene.
type MazeProfile struct {
	ID                 string         `json:"id"`
	Obstacles          *int           `json:"obstacles,omitempty"` // nil keeps the base value
	ArmLengthMin       int            `json:"armLengthMin"`
	ArmLengthMax       int            `json:"armLengthMax"`
	MinObstacleSpacing int            `json:"minObstacleSpacing"`
	MinPathLength      *int           `json:"minPathLength,omitempty"` // nil keeps the base value
	ShapeWeights       map[string]int `json:"shapeWeights,omitempty"` // keyed by shape name
}

// Apply overlays the profile onto a base config and validates the result.
// Obstacle count and minimum path length are only overridden when the
// profile sets them.
func (p MazeProfile) Apply(base maze.Config) (maze.Config, error) {
	cfg := base
	if p.Obstacles != nil {
		cfg.NumObstacles = *p.Obstacles
	}
	if p.MinPathLength != nil {
		cfg.MinPathLength = *p.MinPathLength
	}
	cfg.ArmLengthMin = p.ArmLengthMin
	cfg.ArmLengthMax = p.ArmLengthMax
	cfg.MinObstacleSpacing = p.MinObstacleSpacing
	cfg.ShapeWeights = nil

	if len(p.ShapeWeights) > 0 {
		cfg.ShapeWeights = make(map[maze.Shape]int, len(p.ShapeWeights))
		for name, w := range p.ShapeWeights {
			s, err := maze.ParseShape(name)
			if err != nil {
				return base, fmt.Errorf("maze profile %s: %w", p.ID, err)
			}
			cfg.ShapeWeights[s] = w
		}
	}

	if err := cfg.Validate(); err != nil {
		return base, fmt.Errorf("maze profile %s: %w", p.ID, err)
	}
	return cfg, nil
}

// MazesFile represents the structure of mazes.json.
type MazesFile struct {
	Profiles []MazeProfile `json:"profiles"`
}

// MazeProfiles is a set of profiles keyed by ID.
type MazeProfiles map[string]MazeProfile

// Get returns the profile with the given ID, falling back to the default profile.
func (m MazeProfiles) Get(id string) MazeProfile {
	if p, ok := m[id]; ok {
		return p
	}
	return m[ProfileDefault]
}

// IDs returns the profile IDs in sorted order.
func (m MazeProfiles) IDs() []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// LoadMazeProfiles loads and validates the embedded mazes.json file.
// A default profile is required.
func LoadMazeProfiles() (MazeProfiles, error) {
	file, err := Load[MazesFile]("mazes.json")
	if err != nil {
		return nil, err
	}

	profiles := make(MazeProfiles, len(file.Profiles))
	for _, p := range file.Profiles {
		if _, err := p.Apply(maze.DefaultConfig()); err != nil {
			return nil, err
		}
		profiles[p.ID] = p
	}
	if _, ok := profiles[ProfileDefault]; !ok {
		return nil, fmt.Errorf("mazes.json: missing %q profile", ProfileDefault)
	}
	return profiles, nil
}
