package validate

import (
	"fmt"

	"github.com/tavernkeep/savecore/domain"
)

func init() {
	RegisterSaveRule(checkDanglingReferences)
}

// checkDanglingReferences walks every back-reference the graph carries and
// flags ones that point at an id no collection owns. Empty ids are never
// dangling — they mean "no reference".
func checkDanglingReferences(save *domain.Save, ctx *Context) []Issue {
	var issues []Issue

	for _, h := range save.Heroes.All() {
		if !h.ClanId.IsEmpty() {
			if _, ok := save.ResolveClan(h.ClanId); !ok {
				issues = append(issues, Issue{
					Severity: Warning, Code: "REF_001", Message: "hero references an unknown clan",
					Path: fmt.Sprintf("hero[%s].clan_id", h.Id), Context: map[string]any{"clan_id": h.ClanId.String()},
				})
			}
		}
		if !h.PartyId.IsEmpty() {
			if _, ok := save.ResolveParty(h.PartyId); !ok {
				issues = append(issues, Issue{
					Severity: Warning, Code: "REF_002", Message: "hero references an unknown party",
					Path: fmt.Sprintf("hero[%s].party_id", h.Id), Context: map[string]any{"party_id": h.PartyId.String()},
				})
			}
		}
	}

	for _, p := range save.Parties.All() {
		if !p.LeaderId.IsEmpty() {
			if _, ok := save.ResolveHero(p.LeaderId); !ok {
				issues = append(issues, Issue{
					Severity: Warning, Code: "REF_003", Message: "party references an unknown leader",
					Path: fmt.Sprintf("party[%s].leader_id", p.Id), Context: map[string]any{"leader_id": p.LeaderId.String()},
				})
			}
		}
	}

	return issues
}
