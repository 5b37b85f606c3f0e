package validate

import (
	"github.com/tavernkeep/savecore/domain"
	"github.com/tavernkeep/savecore/ids"
)

// Context carries the owning Save and a per-validation memoization cache
// through a single Validate call, so cross-entity rules (reference checks)
// don't repeatedly walk the same collections.
type Context struct {
	Save *domain.Save
	Mode Mode

	cache map[ids.EntityId]any
}

func newContext(save *domain.Save, mode Mode) *Context {
	return &Context{Save: save, Mode: mode, cache: make(map[ids.EntityId]any)}
}

// Cached memoizes compute's result under key for the lifetime of one
// Validate call.
func (c *Context) Cached(key ids.EntityId, compute func() any) any {
	if v, ok := c.cache[key]; ok {
		return v
	}
	v := compute()
	c.cache[key] = v
	return v
}

// Rule function shapes, one per entity kind a rule can register against.
// New rules append to these slices via the Register* functions below;
// registration order is report emission order.
type (
	HeaderRule func(h domain.Header, ctx *Context) []Issue
	HeroRule   func(h *domain.Hero, ctx *Context) []Issue
	PartyRule  func(p *domain.Party, ctx *Context) []Issue
	FleetRule  func(f *domain.Fleet, ctx *Context) []Issue
	ShipRule   func(s *domain.Ship, ctx *Context) []Issue
	// SaveRule runs once per Validate call with the full graph in view;
	// used for cross-entity checks like dangling references.
	SaveRule func(save *domain.Save, ctx *Context) []Issue
)

var (
	headerRules []HeaderRule
	heroRules   []HeroRule
	partyRules  []PartyRule
	fleetRules  []FleetRule
	shipRules   []ShipRule
	saveRules   []SaveRule
)

// RegisterHeaderRule adds a rule evaluated once against save.Header.
func RegisterHeaderRule(r HeaderRule) { headerRules = append(headerRules, r) }

// RegisterHeroRule adds a rule evaluated once per hero.
func RegisterHeroRule(r HeroRule) { heroRules = append(heroRules, r) }

// RegisterPartyRule adds a rule evaluated once per party.
func RegisterPartyRule(r PartyRule) { partyRules = append(partyRules, r) }

// RegisterFleetRule adds a rule evaluated once per fleet (naval saves only).
func RegisterFleetRule(r FleetRule) { fleetRules = append(fleetRules, r) }

// RegisterShipRule adds a rule evaluated once per ship (naval saves only).
func RegisterShipRule(r ShipRule) { shipRules = append(shipRules, r) }

// RegisterSaveRule adds a rule evaluated once per Validate call with the
// whole graph in view.
func RegisterSaveRule(r SaveRule) { saveRules = append(saveRules, r) }

// Validate runs every registered rule against save under mode and returns
// the aggregate Report. Rule order within each entity kind is registration
// order; entity kinds run in the order: header, heroes, parties, fleets,
// ships, cross-entity.
func Validate(save *domain.Save, mode Mode) Report {
	var report Report
	ctx := newContext(save, mode)

	for _, rule := range headerRules {
		for _, issue := range rule(save.Header, ctx) {
			report.Add(issue)
		}
	}
	for _, h := range save.Heroes.All() {
		for _, rule := range heroRules {
			for _, issue := range rule(h, ctx) {
				report.Add(issue)
			}
		}
	}
	for _, p := range save.Parties.All() {
		for _, rule := range partyRules {
			for _, issue := range rule(p, ctx) {
				report.Add(issue)
			}
		}
	}
	if save.HasNavalExpansion {
		for _, f := range save.Fleets.All() {
			for _, rule := range fleetRules {
				for _, issue := range rule(f, ctx) {
					report.Add(issue)
				}
			}
		}
		for _, s := range save.Ships.All() {
			for _, rule := range shipRules {
				for _, issue := range rule(s, ctx) {
					report.Add(issue)
				}
			}
		}
	}
	for _, rule := range saveRules {
		for _, issue := range rule(save, ctx) {
			report.Add(issue)
		}
	}

	if mode == Permissive {
		report.Warnings = nil
		report.Info = nil
	}
	return report
}
