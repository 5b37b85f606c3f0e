package editor

import "github.com/tavernkeep/savecore/domain"

// ExperienceForLevel is the design-constant XP curve this engine uses when
// an editor recomputes experience from a level assignment. The source
// curve is a placeholder; this engine adopts it explicitly rather than
// reconstructing the original game's real curve.
func ExperienceForLevel(level int) int {
	return level * level * 1000
}

// NormalLevelCap is the level above which set_level still succeeds but
// reports a warning.
const NormalLevelCap = 62

// CharacterEditor mutates Hero entities.
type CharacterEditor struct{}

// SetSkill assigns a land or naval skill by name, bounds-checked to
// [0, domain.MaxSkillValue].
func (CharacterEditor) SetSkill(h *domain.Hero, skill string, v int) Outcome {
	if v < 0 || v > domain.MaxSkillValue {
		return fail(ErrOutOfRange)
	}
	if domain.IsKnownSkill(skill) {
		h.Skills[skill] = v
		return ok()
	}
	if domain.IsKnownNavalSkill(skill) {
		if h.NavalSkills == nil {
			h.NavalSkills = &domain.NavalSkills{}
		}
		h.NavalSkills.Set(skill, v)
		return ok()
	}
	h.Skills[skill] = v
	return ok()
}

// SetLevel assigns a hero's level and recomputes experience from
// ExperienceForLevel. Levels above NormalLevelCap succeed with a warning.
func (CharacterEditor) SetLevel(h *domain.Hero, level int) Outcome {
	if level < 1 {
		return fail(ErrOutOfRange)
	}
	h.Level = level
	h.Experience = ExperienceForLevel(level)
	if level > NormalLevelCap {
		return okWith("level exceeds the normal cap of 62")
	}
	return ok()
}

// Resurrect restores a dead hero to Active with full health. A no-op for
// any other alive_state.
func (CharacterEditor) Resurrect(h *domain.Hero) Outcome {
	if h.AliveState != domain.Dead {
		return ok()
	}
	h.AliveState = domain.Active
	h.Health = h.MaxHealth
	return ok()
}

// ExportTemplate captures h's build into a named, id-free template.
func (CharacterEditor) ExportTemplate(h *domain.Hero, name, exportedAt string) *domain.CharacterTemplate {
	return domain.ExportTemplate(h, name, exportedAt)
}

// ApplyTemplate overwrites h's attributes, skills, and perks from t, and
// its naval skills and appearance when t carries them.
func (CharacterEditor) ApplyTemplate(h *domain.Hero, t *domain.CharacterTemplate) Outcome {
	domain.ApplyTemplate(h, t)
	return ok()
}
