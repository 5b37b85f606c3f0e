package validate

import (
	"fmt"
	"strings"

	"github.com/tavernkeep/savecore/domain"
)

// knownPerks is the core engine's set of recognized vanilla perk ids.
// Mod-authored perks are expected to namespace their ids with a colon
// (e.g. "Brotherhood:SilverTongue"); those are never flagged as unknown.
var knownPerks = map[string]bool{
	"Bookworm":      true,
	"Tactician":     true,
	"IronFist":      true,
	"SilverTongue":  true,
	"EagleEye":      true,
	"Ironflesh":     true,
	"PathfinderOne": true,
	"Quartermaster": true,
}

func isKnownOrNamespacedPerk(perkId string) bool {
	if knownPerks[perkId] {
		return true
	}
	return strings.Contains(perkId, ":")
}

func init() {
	RegisterHeroRule(checkHeroAttributes)
	RegisterHeroRule(checkHeroSkills)
	RegisterHeroRule(checkHeroNavalSkills)
	RegisterHeroRule(checkHeroLevel)
	RegisterHeroRule(checkHeroGold)
	RegisterHeroRule(checkHeroAge)
	RegisterHeroRule(checkHeroPerks)
}

const maxAttributeValue = 10

func checkHeroAttributes(h *domain.Hero, ctx *Context) []Issue {
	var issues []Issue
	h.Attributes.Each(func(name string, value int) {
		path := fmt.Sprintf("hero[%s].attributes.%s", h.Id, name)
		if value < 0 {
			issues = append(issues, Issue{Severity: Error, Code: "HERO_ATTR_001", Message: "attribute below zero", Path: path, Context: map[string]any{"value": value}})
			return
		}
		if value > maxAttributeValue && ctx.Mode == Strict {
			issues = append(issues, Issue{Severity: Warning, Code: "HERO_ATTR_002", Message: "attribute above 10", Path: path, Context: map[string]any{"value": value}})
		}
	})
	return issues
}

func checkHeroSkills(h *domain.Hero, ctx *Context) []Issue {
	var issues []Issue
	for _, name := range domain.SkillNames() {
		value := h.Skills.Get(name)
		path := fmt.Sprintf("hero[%s].skills.%s", h.Id, name)
		if value < 0 {
			issues = append(issues, Issue{Severity: Error, Code: "HERO_SKILL_001", Message: "skill below zero", Path: path, Context: map[string]any{"value": value}})
		} else if value > domain.MaxSkillValue {
			issues = append(issues, Issue{Severity: Error, Code: "HERO_SKILL_002", Message: "skill above 300", Path: path, Context: map[string]any{"value": value}})
		}
	}
	return issues
}

func checkHeroNavalSkills(h *domain.Hero, ctx *Context) []Issue {
	if h.NavalSkills == nil {
		return nil
	}
	var issues []Issue
	for _, name := range domain.NavalSkillNames() {
		value := h.NavalSkills.Get(name)
		path := fmt.Sprintf("hero[%s].naval_skills.%s", h.Id, name)
		if value < 0 {
			issues = append(issues, Issue{Severity: Error, Code: "HERO_SKILL_001", Message: "naval skill below zero", Path: path, Context: map[string]any{"value": value}})
		} else if value > domain.MaxSkillValue {
			issues = append(issues, Issue{Severity: Error, Code: "HERO_SKILL_002", Message: "naval skill above 300", Path: path, Context: map[string]any{"value": value}})
		}
	}
	return issues
}

const normalLevelCap = 62

func checkHeroLevel(h *domain.Hero, ctx *Context) []Issue {
	path := fmt.Sprintf("hero[%s].level", h.Id)
	if h.Level < 1 {
		return []Issue{{Severity: Error, Code: "HERO_LEVEL_001", Message: "level below 1", Path: path, Context: map[string]any{"value": h.Level}}}
	}
	if h.Level > normalLevelCap {
		return []Issue{{Severity: Warning, Code: "HERO_LEVEL_002", Message: "level above normal cap (62)", Path: path, Context: map[string]any{"value": h.Level}}}
	}
	return nil
}

func checkHeroGold(h *domain.Hero, ctx *Context) []Issue {
	if h.Gold < 0 {
		return []Issue{{Severity: Error, Code: "HERO_GOLD_001", Message: "gold below zero", Path: fmt.Sprintf("hero[%s].gold", h.Id), Context: map[string]any{"value": h.Gold}}}
	}
	return nil
}

func checkHeroAge(h *domain.Hero, ctx *Context) []Issue {
	var issues []Issue
	path := fmt.Sprintf("hero[%s].age", h.Id)
	if h.AliveState != domain.Dead && h.Age < 18 {
		issues = append(issues, Issue{Severity: Warning, Code: "HERO_AGE_001", Message: "age below 18 for a living hero", Path: path, Context: map[string]any{"value": h.Age}})
	}
	if h.Age > 100 {
		issues = append(issues, Issue{Severity: Warning, Code: "HERO_AGE_002", Message: "age above 100", Path: path, Context: map[string]any{"value": h.Age}})
	}
	return issues
}

func checkHeroPerks(h *domain.Hero, ctx *Context) []Issue {
	var issues []Issue
	for perkId, unlocked := range h.Perks {
		if !unlocked {
			continue
		}
		if !isKnownOrNamespacedPerk(perkId) {
			issues = append(issues, Issue{
				Severity: Warning,
				Code:     "HERO_PERK_001",
				Message:  "unknown perk id",
				Path:     fmt.Sprintf("hero[%s].perks", h.Id),
				Context:  map[string]any{"perk_id": perkId},
			})
		}
	}
	return issues
}
