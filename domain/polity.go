package domain

import "github.com/tavernkeep/savecore/ids"

// Color packs an RGB display color as used by clan/kingdom/faction banners.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// Settlement is a town, castle, or village on the campaign map.
type Settlement struct {
	Id         ids.EntityId
	Name       string
	OwnerId    ids.EntityId // owning Clan
	Prosperity int
	Militia    int
	FoodStock  int
	Pos        Position
}

// ID implements Entity.
func (s *Settlement) ID() ids.EntityId { return s.Id }

// Clan is a noble house: a collection of heroes and settlements, optionally
// sworn to a Kingdom.
type Clan struct {
	Id            ids.EntityId
	Name          string
	Color         Color
	LeaderId      ids.EntityId
	KingdomId     ids.EntityId
	Renown        int
	Influence     int
	SettlementIds []ids.EntityId
}

// ID implements Entity.
func (c *Clan) ID() ids.EntityId { return c.Id }

// Kingdom is a sovereign political entity ruling over member clans.
type Kingdom struct {
	Id       ids.EntityId
	Name     string
	Color    Color
	RulerId  ids.EntityId // ruling Clan
	ClanIds  []ids.EntityId
}

// ID implements Entity.
func (k *Kingdom) ID() ids.EntityId { return k.Id }

// Faction is a non-kingdom political grouping (bandits, mercenary leagues,
// and similar groups that do not own settlements directly).
type Faction struct {
	Id       ids.EntityId
	Name     string
	Color    Color
	LeaderId ids.EntityId
}

// ID implements Entity.
func (f *Faction) ID() ids.EntityId { return f.Id }
