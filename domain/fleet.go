package domain

import "github.com/tavernkeep/savecore/ids"

// FleetState is a fleet's current naval activity.
type FleetState int

const (
	FleetDocked FleetState = iota
	FleetSailing
	FleetAnchored
	FleetInCombat
)

func (s FleetState) String() string {
	switch s {
	case FleetDocked:
		return "Docked"
	case FleetSailing:
		return "Sailing"
	case FleetAnchored:
		return "Anchored"
	case FleetInCombat:
		return "InCombat"
	default:
		return "Unknown"
	}
}

// NavalPosition is a campaign-map coordinate with a facing.
type NavalPosition struct {
	X       float64
	Y       float64
	Heading float64
}

// Fleet is a naval expansion entity: a group of ships under one command,
// with an optional flagship.
type Fleet struct {
	Id           ids.EntityId
	Name         string
	AdmiralId    ids.EntityId
	ClanId       ids.EntityId
	State        FleetState
	Formation    string
	Morale       int
	Gold         int
	FoodSupplies int
	Pos          NavalPosition
	ShipIds      []ids.EntityId
	FlagshipId   ids.EntityId
}

// ID implements Entity.
func (f *Fleet) ID() ids.EntityId { return f.Id }

// NewFleet returns an empty Fleet with no ships and no flagship.
func NewFleet(id ids.EntityId, name string) *Fleet {
	return &Fleet{Id: id, Name: name, State: FleetDocked}
}

// HasShip reports whether shipId is a member of the fleet.
func (f *Fleet) HasShip(shipId ids.EntityId) bool {
	for _, id := range f.ShipIds {
		if id == shipId {
			return true
		}
	}
	return false
}
