package domain

import "github.com/tavernkeep/savecore/ids"

// AliveState is a hero's life/captivity status.
type AliveState int

const (
	Active AliveState = iota
	Fugitive
	Prisoner
	Disabled
	Dead
)

func (s AliveState) String() string {
	switch s {
	case Active:
		return "Active"
	case Fugitive:
		return "Fugitive"
	case Prisoner:
		return "Prisoner"
	case Disabled:
		return "Disabled"
	case Dead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// Appearance is an opaque cosmetic blob; the engine never interprets it,
// only round-trips it.
type Appearance struct {
	Present bool
	Data    []byte
}

// Hero is a named character entity: heroes of the player's own clan as
// well as every other clan's lords.
type Hero struct {
	Id           ids.EntityId
	StringId     string
	Name         string
	Gender       string
	Age          int
	IsMainHero   bool
	AliveState   AliveState
	Level        int
	Experience   int
	Gold         int
	Health       int
	MaxHealth    int
	Attributes   Attributes
	Skills       SkillSet
	NavalSkills  *NavalSkills
	Perks        map[string]bool
	Appearance   *Appearance
	ClanId       ids.EntityId
	PartyId      ids.EntityId
	FleetId      ids.EntityId
}

// ID implements Entity.
func (h *Hero) ID() ids.EntityId { return h.Id }

// NewHero returns a Hero with its skill set initialized and zero-value
// back-references (Empty).
func NewHero(id ids.EntityId, name string) *Hero {
	return &Hero{
		Id:         id,
		Name:       name,
		AliveState: Active,
		Skills:     NewSkillSet(),
		Perks:      make(map[string]bool),
	}
}

// HasPerk reports whether the hero has unlocked perkId.
func (h *Hero) HasPerk(perkId string) bool {
	return h.Perks[perkId]
}

// UnlockPerk adds perkId to the unlocked set. Reports whether this changed
// anything (false when already unlocked — the operation is idempotent).
func (h *Hero) UnlockPerk(perkId string) bool {
	if h.Perks[perkId] {
		return false
	}
	h.Perks[perkId] = true
	return true
}
