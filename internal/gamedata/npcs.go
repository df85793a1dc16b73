package gamedata

import (
	"fmt"
	"math/rand"
)

// NPCKind identifies the role of a non-hostile character.
type NPCKind string

const (
	NPCTownsfolk NPCKind = "townsfolk"
	NPCVendor    NPCKind = "vendor"
	NPCScholar   NPCKind = "scholar"
)

// UpgradeEffect is the player stat an upgrade improves.
type UpgradeEffect string

const (
	UpgradeRingDuration UpgradeEffect = "ring_duration"
	UpgradeAttackPower  UpgradeEffect = "attack_power"
	UpgradeRanged       UpgradeEffect = "ranged_attacks"
)

// UpgradeDef is an item a vendor sells for supercollateral.
type UpgradeDef struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Effect      UpgradeEffect `json:"effect"`
	Cost        int           `json:"cost"`
	Value       int           `json:"value"`
}

// NPCSpawn holds the per-scene NPC spawn chances, in percent.
type NPCSpawn struct {
	Chance  int `json:"chance"`  // any NPC at all
	Vendor  int `json:"vendor"`  // of those, a vendor
	Scholar int `json:"scholar"` // of the non-vendors, a scholar
}

// NPCData is the structure of npcs.json.
type NPCData struct {
	Spawn    NPCSpawn             `json:"spawn"`
	Lore     map[NPCKind][]string `json:"lore"`
	Upgrades []UpgradeDef         `json:"upgrades"`
}

// RollKind decides whether a scene gets an NPC and which kind.
func (d *NPCData) RollKind(rng *rand.Rand) (NPCKind, bool) {
	if rng.Intn(100) >= d.Spawn.Chance {
		return "", false
	}
	if rng.Intn(100) < d.Spawn.Vendor {
		return NPCVendor, true
	}
	if rng.Intn(100) < d.Spawn.Scholar {
		return NPCScholar, true
	}
	return NPCTownsfolk, true
}

// LoreFor returns the lines an NPC of the given kind says. Vendors say all
// of their lines; everyone else says one line picked at random.
func (d *NPCData) LoreFor(kind NPCKind, rng *rand.Rand) []string {
	lines := d.Lore[kind]
	if len(lines) == 0 {
		return nil
	}
	if kind == NPCVendor {
		return append([]string(nil), lines...)
	}
	return []string{lines[rng.Intn(len(lines))]}
}

// Upgrade returns the upgrade with the given ID, or nil.
func (d *NPCData) Upgrade(id string) *UpgradeDef {
	for i := range d.Upgrades {
		if d.Upgrades[i].ID == id {
			return &d.Upgrades[i]
		}
	}
	return nil
}

// LoadNPCs loads NPC lore and vendor upgrades from the embedded npcs.json file.
func LoadNPCs() (NPCData, error) {
	data, err := Load[NPCData]("npcs.json")
	if err != nil {
		return data, err
	}
	for _, kind := range []NPCKind{NPCTownsfolk, NPCVendor, NPCScholar} {
		if len(data.Lore[kind]) == 0 {
			return data, fmt.Errorf("npcs.json: no lore for %s", kind)
		}
	}
	for _, u := range data.Upgrades {
		switch u.Effect {
		case UpgradeRingDuration, UpgradeAttackPower, UpgradeRanged:
		default:
			return data, fmt.Errorf("npcs.json: upgrade %s has unknown effect %q", u.ID, u.Effect)
		}
	}
	return data, nil
}
