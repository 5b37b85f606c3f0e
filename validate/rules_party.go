package validate

import (
	"fmt"

	"github.com/tavernkeep/savecore/domain"
)

func init() {
	RegisterPartyRule(checkPartyTroops)
	RegisterPartyRule(checkPartyGoldAndFood)
	RegisterPartyRule(checkPartyMorale)
}

func checkPartyTroops(p *domain.Party, ctx *Context) []Issue {
	var issues []Issue
	issues = append(issues, checkTroopStacks(p, "troops", p.Troops)...)
	issues = append(issues, checkTroopStacks(p, "prisoners", p.Prisoners)...)
	return issues
}

func checkTroopStacks(p *domain.Party, field string, stacks []domain.TroopStack) []Issue {
	var issues []Issue
	for i, stack := range stacks {
		path := fmt.Sprintf("party[%s].%s[%d]", p.Id, field, i)
		if stack.Count < 0 {
			issues = append(issues, Issue{Severity: Error, Code: "PARTY_TROOP_001", Message: "troop count below zero", Path: path, Context: map[string]any{"value": stack.Count}})
		}
		if stack.WoundedCount > stack.Count {
			issues = append(issues, Issue{Severity: Error, Code: "PARTY_TROOP_002", Message: "wounded count exceeds troop count", Path: path, Context: map[string]any{"wounded": stack.WoundedCount, "count": stack.Count}})
		}
	}
	return issues
}

func checkPartyGoldAndFood(p *domain.Party, ctx *Context) []Issue {
	var issues []Issue
	if p.Gold < 0 {
		issues = append(issues, Issue{Severity: Error, Code: "PARTY_GOLD_001", Message: "gold below zero", Path: fmt.Sprintf("party[%s].gold", p.Id), Context: map[string]any{"value": p.Gold}})
	}
	if p.Food < 0 {
		issues = append(issues, Issue{Severity: Error, Code: "PARTY_FOOD_001", Message: "food below zero", Path: fmt.Sprintf("party[%s].food", p.Id), Context: map[string]any{"value": p.Food}})
	}
	return issues
}

func checkPartyMorale(p *domain.Party, ctx *Context) []Issue {
	if p.Morale < 0 || p.Morale > 100 {
		return []Issue{{Severity: Warning, Code: "PARTY_MORALE_001", Message: "morale outside [0,100]", Path: fmt.Sprintf("party[%s].morale", p.Id), Context: map[string]any{"value": p.Morale}}}
	}
	return nil
}
