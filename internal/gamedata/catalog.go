package gamedata

import "fmt"

// Catalog bundles every embedded definition the game needs.
type Catalog struct {
	Enemies *EnemyRegistry
	Areas   []AreaDef
	Mazes   MazeProfiles
	NPCs    NPCData
}

// LoadCatalog loads and cross-checks all embedded data files.
func LoadCatalog() (*Catalog, error) {
	enemies, err := LoadEnemyRegistry()
	if err != nil {
		return nil, err
	}
	areas, err := LoadAreas()
	if err != nil {
		return nil, err
	}
	mazes, err := LoadMazeProfiles()
	if err != nil {
		return nil, err
	}
	npcs, err := LoadNPCs()
	if err != nil {
		return nil, err
	}

	for _, a := range areas {
		if enemies.BossFor(a.ID) == nil {
			return nil, fmt.Errorf("area %d (%s) has no boss", a.ID, a.Name)
		}
	}

	return &Catalog{
		Enemies: enemies,
		Areas:   areas,
		Mazes:   mazes,
		NPCs:    npcs,
	}, nil
}

// MustLoadCatalog loads the catalog, panicking on error.
func MustLoadCatalog() *Catalog {
	c, err := LoadCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

// Area returns the definition of the given area. Unknown areas get a
// placeholder name and default colors.
func (c *Catalog) Area(id int) *AreaDef {
	if id < 0 || id >= len(c.Areas) {
		return &AreaDef{ID: id, Name: fmt.Sprintf("Unknown Region %d", id)}
	}
	return &c.Areas[id]
}
