package domain

import "github.com/tavernkeep/savecore/ids"

// ShipClass distinguishes a fleet's flagship from its escorts.
type ShipClass int

const (
	ShipStandard ShipClass = iota
	ShipFlagship
)

func (c ShipClass) String() string {
	if c == ShipFlagship {
		return "Flagship"
	}
	return "Standard"
}

// UpgradeCategory partitions the ship upgrade enum into mutually exclusive
// slots: a ship may carry at most one upgrade per category.
type UpgradeCategory int

const (
	CategoryHull UpgradeCategory = iota
	CategorySails
	CategoryRam
	CategoryCargo
	CategoryCrew
	CategoryCombat
	CategoryNavigation
)

// upgradeCategories maps known upgrade ids to their category. Unknown
// upgrade ids (mod-authored) are treated as occupying their own singleton
// category keyed by id, so they never spuriously conflict with core ones.
var upgradeCategories = map[string]UpgradeCategory{
	"ReinforcedHull": CategoryHull,
	"IronPlating":    CategoryHull,
	"DoubleHull":     CategoryHull,
	"ReinforcedSails": CategorySails,
	"SparSails":       CategorySails,
	"RammingBeak":     CategoryRam,
	"IronRam":         CategoryRam,
	"CargoNets":       CategoryCargo,
	"ExtraHold":       CategoryCargo,
	"VeteranCrew":     CategoryCrew,
	"MarineDetachment": CategoryCrew,
	"Ballistae":       CategoryCombat,
	"FireArrows":      CategoryCombat,
	"ExperiencedPilot": CategoryNavigation,
	"ChartsAndMaps":    CategoryNavigation,
}

// UpgradeCategoryOf returns the category for a known upgrade id. Unknown
// ids report ok=false; callers treat them as never conflicting with
// anything else.
func UpgradeCategoryOf(upgradeId string) (cat UpgradeCategory, ok bool) {
	cat, ok = upgradeCategories[upgradeId]
	return
}

// CargoStack is a homogeneous group of cargo items held in a ship's hold.
type CargoStack struct {
	ItemId string
	Count  int
	Weight float64 // per-unit weight
}

// Ship is a single vessel, optionally a fleet's flagship.
type Ship struct {
	Id             ids.EntityId
	Name           string
	Type           string
	Class          ShipClass
	CurrentHull    int
	MaxHull        int
	CrewCount      int
	CrewCapacity   int
	CrewQuality    int
	CrewMorale     int
	CargoCapacity  float64
	Cargo          []CargoStack
	Weapons        []string
	Upgrades       map[string]bool
	FleetId        ids.EntityId
}

// ID implements Entity.
func (s *Ship) ID() ids.EntityId { return s.Id }

// NewShip returns a Ship with empty cargo and upgrade sets.
func NewShip(id ids.EntityId, name string) *Ship {
	return &Ship{Id: id, Name: name, Class: ShipStandard, Upgrades: make(map[string]bool)}
}

// CargoWeight returns the aggregate weight of the ship's cargo hold.
func (s *Ship) CargoWeight() float64 {
	total := 0.0
	for _, c := range s.Cargo {
		total += c.Weight * float64(c.Count)
	}
	return total
}
