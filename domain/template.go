package domain

// CharacterTemplate is a named, id-free bundle of character build data used
// for export/import between heroes — see the editor package's
// ExportTemplate/ApplyTemplate operations and the charfile JSON format.
type CharacterTemplate struct {
	Name        string
	Attributes  Attributes
	Skills      SkillSet
	NavalSkills *NavalSkills
	Perks       []string
	Appearance  *Appearance
	ExportedAt  string // RFC 3339
	Version     string
}

// TemplateVersion is the current character template file format version.
const TemplateVersion = "2.0"

// ExportTemplate captures a hero's build into a name-carrying, id-free
// template.
func ExportTemplate(h *Hero, name string, exportedAt string) *CharacterTemplate {
	perks := make([]string, 0, len(h.Perks))
	for p, unlocked := range h.Perks {
		if unlocked {
			perks = append(perks, p)
		}
	}
	var naval *NavalSkills
	if h.NavalSkills != nil {
		cp := *h.NavalSkills
		naval = &cp
	}
	var appearance *Appearance
	if h.Appearance != nil {
		cp := *h.Appearance
		appearance = &cp
	}
	return &CharacterTemplate{
		Name:        name,
		Attributes:  h.Attributes,
		Skills:      cloneSkillSet(h.Skills),
		NavalSkills: naval,
		Perks:       perks,
		Appearance:  appearance,
		ExportedAt:  exportedAt,
		Version:     TemplateVersion,
	}
}

// ApplyTemplate overwrites a hero's attributes, skills, and perks from a
// template. Naval skills and appearance are replaced only when the template
// carries them; otherwise the hero keeps its own. The hero's identity, name,
// and back-references are untouched.
func ApplyTemplate(h *Hero, t *CharacterTemplate) {
	h.Attributes = t.Attributes
	h.Skills = cloneSkillSet(t.Skills)
	if t.NavalSkills != nil {
		cp := *t.NavalSkills
		h.NavalSkills = &cp
	}
	h.Perks = make(map[string]bool, len(t.Perks))
	for _, p := range t.Perks {
		h.Perks[p] = true
	}
	if t.Appearance != nil {
		cp := *t.Appearance
		h.Appearance = &cp
	}
}

func cloneSkillSet(s SkillSet) SkillSet {
	out := make(SkillSet, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
