package entity

import (
	"github.com/google/uuid"

	"github.com/samdwyer/superseed/internal/grid"
)

// ItemKind is a collectible placed in a scene.
type ItemKind int

const (
	ItemToken ItemKind = iota
	ItemCheckpoint
	ItemSword
	ItemFragment
)

// String returns the item name.
func (k ItemKind) String() string {
	switch k {
	case ItemToken:
		return "token"
	case ItemCheckpoint:
		return "checkpoint"
	case ItemSword:
		return "sword"
	case ItemFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// Symbol returns the display symbol for the item.
func (k ItemKind) Symbol() rune {
	switch k {
	case ItemToken:
		return '$'
	case ItemCheckpoint:
		return '+'
	case ItemSword:
		return '/'
	case ItemFragment:
		return '*'
	default:
		return '?'
	}
}

// Item is a collectible at a cell.
type Item struct {
	ID   uuid.UUID
	Kind ItemKind
	Pos  grid.Position
}

// Rect returns the item's pixel rectangle.
func (i Item) Rect(l grid.Layout) grid.Rect {
	return l.CellRect(i.Pos)
}
