// Package charfile implements the character template JSON file format:
// the on-disk shape of a domain.CharacterTemplate, independent of any
// entity id, used to move a build between heroes or between players.
package charfile

import (
	"github.com/goccy/go-json"

	"github.com/tavernkeep/savecore/domain"
)

type wireAttributes struct {
	Vigor        int `json:"vigor"`
	Control      int `json:"control"`
	Endurance    int `json:"endurance"`
	Cunning      int `json:"cunning"`
	Social       int `json:"social"`
	Intelligence int `json:"intelligence"`
}

type wireSkills struct {
	OneHanded  int `json:"one_handed"`
	TwoHanded  int `json:"two_handed"`
	Polearm    int `json:"polearm"`
	Bow        int `json:"bow"`
	Crossbow   int `json:"crossbow"`
	Throwing   int `json:"throwing"`
	Riding     int `json:"riding"`
	Athletics  int `json:"athletics"`
	Smithing   int `json:"smithing"`
	Scouting   int `json:"scouting"`
	Tactics    int `json:"tactics"`
	Roguery    int `json:"roguery"`
	Charm      int `json:"charm"`
	Leadership int `json:"leadership"`
	Trade      int `json:"trade"`
	Steward    int `json:"steward"`
	Medicine   int `json:"medicine"`
	Engineering int `json:"engineering"`
}

type wireNavalSkills struct {
	Navigation       int `json:"navigation"`
	NavalTactics     int `json:"naval_tactics"`
	NavalStewardship int `json:"naval_stewardship"`
}

type wireAppearance struct {
	Data []byte `json:"data"`
}

type wireTemplate struct {
	Name        string           `json:"name"`
	Attributes  wireAttributes   `json:"attributes"`
	Skills      wireSkills       `json:"skills"`
	NavalSkills *wireNavalSkills `json:"naval_skills,omitempty"`
	Perks       []string         `json:"perks"`
	Appearance  *wireAppearance  `json:"appearance,omitempty"`
	ExportedAt  string           `json:"exported_at"`
	Version     string           `json:"version"`
}

func toWireSkills(s domain.SkillSet) wireSkills {
	return wireSkills{
		OneHanded:   s.Get("OneHanded"),
		TwoHanded:   s.Get("TwoHanded"),
		Polearm:     s.Get("Polearm"),
		Bow:         s.Get("Bow"),
		Crossbow:    s.Get("Crossbow"),
		Throwing:    s.Get("Throwing"),
		Riding:      s.Get("Riding"),
		Athletics:   s.Get("Athletics"),
		Smithing:    s.Get("Smithing"),
		Scouting:    s.Get("Scouting"),
		Tactics:     s.Get("Tactics"),
		Roguery:     s.Get("Roguery"),
		Charm:       s.Get("Charm"),
		Leadership:  s.Get("Leadership"),
		Trade:       s.Get("Trade"),
		Steward:     s.Get("Steward"),
		Medicine:    s.Get("Medicine"),
		Engineering: s.Get("Engineering"),
	}
}

func fromWireSkills(w wireSkills) domain.SkillSet {
	s := domain.NewSkillSet()
	s["OneHanded"] = w.OneHanded
	s["TwoHanded"] = w.TwoHanded
	s["Polearm"] = w.Polearm
	s["Bow"] = w.Bow
	s["Crossbow"] = w.Crossbow
	s["Throwing"] = w.Throwing
	s["Riding"] = w.Riding
	s["Athletics"] = w.Athletics
	s["Smithing"] = w.Smithing
	s["Scouting"] = w.Scouting
	s["Tactics"] = w.Tactics
	s["Roguery"] = w.Roguery
	s["Charm"] = w.Charm
	s["Leadership"] = w.Leadership
	s["Trade"] = w.Trade
	s["Steward"] = w.Steward
	s["Medicine"] = w.Medicine
	s["Engineering"] = w.Engineering
	return s
}

// Marshal renders a character template as its canonical JSON file format.
func Marshal(t *domain.CharacterTemplate) ([]byte, error) {
	w := wireTemplate{
		Name:       t.Name,
		Attributes: wireAttributes(t.Attributes),
		Skills:     toWireSkills(t.Skills),
		Perks:      t.Perks,
		ExportedAt: t.ExportedAt,
		Version:    t.Version,
	}
	if t.NavalSkills != nil {
		w.NavalSkills = &wireNavalSkills{
			Navigation:       t.NavalSkills.Navigation,
			NavalTactics:     t.NavalSkills.NavalTactics,
			NavalStewardship: t.NavalSkills.NavalStewardship,
		}
	}
	if t.Appearance != nil && t.Appearance.Present {
		w.Appearance = &wireAppearance{Data: t.Appearance.Data}
	}
	return json.Marshal(w)
}

// Unmarshal parses a character template JSON file. Version mismatches are
// reported as a warning rather than failing the parse, since the format
// has been stable across minor revisions.
func Unmarshal(data []byte) (*domain.CharacterTemplate, []string, error) {
	var w wireTemplate
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, nil, err
	}

	var warnings []string
	if w.Version != "" && w.Version != domain.TemplateVersion {
		warnings = append(warnings, "charfile: template version "+w.Version+" differs from current "+domain.TemplateVersion)
	}

	t := &domain.CharacterTemplate{
		Name:       w.Name,
		Attributes: domain.Attributes(w.Attributes),
		Skills:     fromWireSkills(w.Skills),
		Perks:      w.Perks,
		ExportedAt: w.ExportedAt,
		Version:    w.Version,
	}
	if w.NavalSkills != nil {
		t.NavalSkills = &domain.NavalSkills{
			Navigation:       w.NavalSkills.Navigation,
			NavalTactics:     w.NavalSkills.NavalTactics,
			NavalStewardship: w.NavalSkills.NavalStewardship,
		}
	}
	if w.Appearance != nil {
		t.Appearance = &domain.Appearance{Present: true, Data: w.Appearance.Data}
	}
	return t, warnings, nil
}
