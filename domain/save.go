package domain

import "github.com/tavernkeep/savecore/ids"

// ModuleRef identifies one installed content module a save was written
// against.
type ModuleRef struct {
	Id         string
	Version    string
	IsOfficial bool
}

// Header is the envelope's fixed prefix: magic has already been validated
// by the time a Header exists.
type Header struct {
	HeaderVersion int32
	GameVersion   string
	Modules       []ModuleRef
}

// HasModule reports whether a module id is present, case-sensitively
// (module ids are stable identifiers, not display names).
func (h Header) HasModule(id string) bool {
	for _, m := range h.Modules {
		if m.Id == id {
			return true
		}
	}
	return false
}

// Metadata is the envelope's recognized metadata-JSON fields. Fields the
// source JSON omits or mistypes keep their zero value; the codec records a
// warning rather than failing the load.
type Metadata struct {
	CharacterName string
	MainHeroLevel int
	Day           int32
	PlayTime      int64
	ClanName      string
	Gold          int64
}

// Save is the in-memory object graph produced by a full codec load and
// consumed by a full codec write. It exclusively owns every entity
// instance; editors mutate entities only through this graph, never on
// detached copies.
type Save struct {
	Header   Header
	Metadata Metadata

	// CampaignTicks is the CampaignTime segment's raw tick counter.
	CampaignTicks int64

	HasNavalExpansion bool

	Heroes             *Collection[*Hero]
	Parties            *Collection[*Party]
	Settlements        *Collection[*Settlement]
	Clans              *Collection[*Clan]
	Kingdoms           *Collection[*Kingdom]
	Factions           *Collection[*Faction]
	Fleets             *Collection[*Fleet]
	Ships              *Collection[*Ship]
	CharacterTemplates []*CharacterTemplate

	// PreservedSegments holds every segment the registry did not recognize,
	// in original stream order, so an unmutated save reproduces them
	// byte-for-byte on write.
	PreservedSegments []PreservedSegment

	// RawBody is populated only when the load was requested with
	// keep_raw_body; nil otherwise.
	RawBody []byte
}

// NewSave returns an empty Save with all collections initialized.
func NewSave() *Save {
	return &Save{
		Heroes:      NewCollection[*Hero](),
		Parties:     NewCollection[*Party](),
		Settlements: NewCollection[*Settlement](),
		Clans:       NewCollection[*Clan](),
		Kingdoms:    NewCollection[*Kingdom](),
		Factions:    NewCollection[*Faction](),
		Fleets:      NewCollection[*Fleet](),
		Ships:       NewCollection[*Ship](),
	}
}

// ResolveHero looks up a hero by id, returning (nil, false) for Empty or
// unknown ids.
func (s *Save) ResolveHero(id ids.EntityId) (*Hero, bool) {
	if id.IsEmpty() {
		return nil, false
	}
	return s.Heroes.Get(id)
}

// ResolveParty looks up a party by id, returning (nil, false) for Empty or
// unknown ids.
func (s *Save) ResolveParty(id ids.EntityId) (*Party, bool) {
	if id.IsEmpty() {
		return nil, false
	}
	return s.Parties.Get(id)
}

// ResolveClan looks up a clan by id, returning (nil, false) for Empty or
// unknown ids.
func (s *Save) ResolveClan(id ids.EntityId) (*Clan, bool) {
	if id.IsEmpty() {
		return nil, false
	}
	return s.Clans.Get(id)
}

// ResolveFleet looks up a fleet by id, returning (nil, false) for Empty or
// unknown ids.
func (s *Save) ResolveFleet(id ids.EntityId) (*Fleet, bool) {
	if id.IsEmpty() {
		return nil, false
	}
	return s.Fleets.Get(id)
}

// ResolveShip looks up a ship by id, returning (nil, false) for Empty or
// unknown ids.
func (s *Save) ResolveShip(id ids.EntityId) (*Ship, bool) {
	if id.IsEmpty() {
		return nil, false
	}
	return s.Ships.Get(id)
}

// ResolveSettlement looks up a settlement by id, returning (nil, false) for
// Empty or unknown ids.
func (s *Save) ResolveSettlement(id ids.EntityId) (*Settlement, bool) {
	if id.IsEmpty() {
		return nil, false
	}
	return s.Settlements.Get(id)
}
