package entity

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/samdwyer/superseed/internal/gamedata"
	"github.com/samdwyer/superseed/internal/grid"
)

// NPC is a non-hostile character standing in a scene.
type NPC struct {
	ID       uuid.UUID
	Kind     gamedata.NPCKind
	Pos      grid.Position
	Lore     []string
	Upgrades []gamedata.UpgradeDef // only vendors sell anything
}

// NewNPC creates an NPC of the given kind at pos.
func NewNPC(kind gamedata.NPCKind, pos grid.Position, data *gamedata.NPCData, rng *rand.Rand) *NPC {
	n := &NPC{
		ID:   NewID(rng),
		Kind: kind,
		Pos:  pos,
		Lore: data.LoreFor(kind, rng),
	}
	if kind == gamedata.NPCVendor {
		n.Upgrades = append([]gamedata.UpgradeDef(nil), data.Upgrades...)
	}
	return n
}

// PlaceNPC rolls whether the scene gets an NPC and, if so, places one with
// the same distance rules as enemies.
func PlaceNPC(t Terrain, rng *rand.Rand, data *gamedata.NPCData, player grid.Rect) (*NPC, bool) {
	kind, ok := data.RollKind(rng)
	if !ok {
		return nil, false
	}
	pos := PlaceAway(t, rng, 1, player)
	return NewNPC(kind, pos, data, rng), true
}

// Rect returns the NPC's pixel rectangle.
func (n *NPC) Rect(l grid.Layout) grid.Rect {
	return l.CellRect(n.Pos)
}

// Symbol returns the display symbol for the NPC.
func (n *NPC) Symbol() rune {
	switch n.Kind {
	case gamedata.NPCVendor:
		return 'V'
	case gamedata.NPCScholar:
		return 'L'
	default:
		return 'N'
	}
}

// Title returns how the NPC is addressed.
func (n *NPC) Title() string {
	switch n.Kind {
	case gamedata.NPCVendor:
		return "Vendor"
	case gamedata.NPCScholar:
		return "Scholar"
	default:
		return "Townsfolk"
	}
}
