package domain

import "github.com/tavernkeep/savecore/ids"

// PartyType classifies the mobile party.
type PartyType int

const (
	PartyLord PartyType = iota
	PartyCaravan
	PartyVillage
	PartyGarrison
)

func (t PartyType) String() string {
	switch t {
	case PartyLord:
		return "Lord"
	case PartyCaravan:
		return "Caravan"
	case PartyVillage:
		return "Village"
	case PartyGarrison:
		return "Garrison"
	default:
		return "Unknown"
	}
}

// PartyState is the party's current activity.
type PartyState int

const (
	PartyActive PartyState = iota
	PartyInSettlement
)

func (s PartyState) String() string {
	switch s {
	case PartyActive:
		return "Active"
	case PartyInSettlement:
		return "InSettlement"
	default:
		return "Unknown"
	}
}

// Position is a 2-D campaign-map coordinate.
type Position struct {
	X float64
	Y float64
}

// TroopStack is a homogeneous group of troops (or a single hero prisoner)
// held by a party.
type TroopStack struct {
	TroopId      string
	TroopName    string
	Count        int
	WoundedCount int
	Tier         int
	IsHero       bool
	HeroId       ids.EntityId
}

// Party is a mobile entity on the campaign map: a lord's warband, a
// caravan, a garrisoned settlement party, and so on.
type Party struct {
	Id                  ids.EntityId
	Name                string
	Type                PartyType
	State               PartyState
	Gold                int
	Food                int
	Morale              int
	PartySizeLimit      int
	PrisonerLimit       int
	Troops              []TroopStack
	Prisoners           []TroopStack
	LeaderId            ids.EntityId
	CurrentSettlementId ids.EntityId
	Pos                 Position
}

// ID implements Entity.
func (p *Party) ID() ids.EntityId { return p.Id }

// NewParty returns an empty Party at the origin.
func NewParty(id ids.EntityId, name string, kind PartyType) *Party {
	return &Party{Id: id, Name: name, Type: kind, State: PartyActive}
}

// TroopCount sums Count across every stack in stacks.
func TroopCount(stacks []TroopStack) int {
	total := 0
	for _, s := range stacks {
		total += s.Count
	}
	return total
}
