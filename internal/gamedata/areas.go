package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// AreaDef defines one themed region of the world.
type AreaDef struct {
	ID         int    `json:"id"`         // Position in the world, starting at 0
	Name       string `json:"name"`       // Display name shown in the HUD
	Floor      string `json:"floor"`      // Hex color of open cells
	Wall       string `json:"wall"`       // Hex color of wall cells
	Background string `json:"background"` // Hex color behind the HUD
}

// FloorColor returns the floor color, dark grey when malformed.
func (a *AreaDef) FloorColor() tcell.Color {
	return colorOr(a.Floor, tcell.ColorDarkGray)
}

// WallColor returns the wall color, grey when malformed.
func (a *AreaDef) WallColor() tcell.Color {
	return colorOr(a.Wall, tcell.ColorGray)
}

// BackgroundColor returns the HUD background color.
func (a *AreaDef) BackgroundColor() tcell.Color {
	return colorOr(a.Background, tcell.ColorBlack)
}

// AreasFile represents the structure of areas.json.
type AreasFile struct {
	Areas []AreaDef `json:"areas"`
}

// LoadAreas loads area definitions from the embedded areas.json file.
// Areas must be listed in order with consecutive IDs.
func LoadAreas() ([]AreaDef, error) {
	file, err := Load[AreasFile]("areas.json")
	if err != nil {
		return nil, err
	}
	for i, a := range file.Areas {
		if a.ID != i {
			return nil, fmt.Errorf("areas.json: area %q has id %d, want %d", a.Name, a.ID, i)
		}
	}
	return file.Areas, nil
}

// MustLoadAreas loads area definitions, panicking on error.
func MustLoadAreas() []AreaDef {
	areas, err := LoadAreas()
	if err != nil {
		panic(err)
	}
	return areas
}
