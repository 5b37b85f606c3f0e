package codec

import (
	"bytes"
	"context"

	"github.com/tavernkeep/savecore/binio"
	"github.com/tavernkeep/savecore/domain"
	"github.com/tavernkeep/savecore/ids"
)

// TagHeroes is the hero-list segment.
const TagHeroes uint16 = 0x0010

func init() {
	RegisterSegment(TagHeroes, "Heroes", false, decodeHeroes, encodeHeroes)
}

func decodeHeroes(ctx context.Context, payload []byte, save *domain.Save) error {
	r := binio.NewReader(bytes.NewReader(payload))
	count, err := r.I32(ctx)
	if err != nil {
		return err
	}
	for i := int32(0); i < count; i++ {
		h, err := decodeHero(ctx, r)
		if err != nil {
			return err
		}
		save.Heroes.Add(h)
	}
	return nil
}

func decodeHero(ctx context.Context, r *binio.Reader) (*domain.Hero, error) {
	rawID, err := r.I64(ctx)
	if err != nil {
		return nil, err
	}
	h := domain.NewHero(ids.EntityId(uint64(rawID)), "")

	if h.StringId, err = r.String(ctx); err != nil {
		return nil, err
	}
	if h.Name, err = r.String(ctx); err != nil {
		return nil, err
	}
	if h.Gender, err = r.String(ctx); err != nil {
		return nil, err
	}
	age, err := r.I32(ctx)
	if err != nil {
		return nil, err
	}
	h.Age = int(age)

	if h.IsMainHero, err = r.Bool(ctx); err != nil {
		return nil, err
	}
	aliveState, err := r.U16(ctx)
	if err != nil {
		return nil, err
	}
	h.AliveState = domain.AliveState(aliveState)

	level, err := r.I32(ctx)
	if err != nil {
		return nil, err
	}
	h.Level = int(level)
	experience, err := r.I32(ctx)
	if err != nil {
		return nil, err
	}
	h.Experience = int(experience)
	gold, err := r.I32(ctx)
	if err != nil {
		return nil, err
	}
	h.Gold = int(gold)
	health, err := r.I32(ctx)
	if err != nil {
		return nil, err
	}
	h.Health = int(health)
	maxHealth, err := r.I32(ctx)
	if err != nil {
		return nil, err
	}
	h.MaxHealth = int(maxHealth)

	var attrErr error
	h.Attributes.Each(func(name string, _ int) {
		if attrErr != nil {
			return
		}
		var v int32
		v, attrErr = r.I32(ctx)
		h.Attributes.Set(name, int(v))
	})
	if attrErr != nil {
		return nil, attrErr
	}

	for _, name := range domain.SkillNames() {
		v, err := r.I32(ctx)
		if err != nil {
			return nil, err
		}
		h.Skills[name] = int(v)
	}

	hasNaval, err := r.Bool(ctx)
	if err != nil {
		return nil, err
	}
	if hasNaval {
		h.NavalSkills = &domain.NavalSkills{}
		for _, name := range domain.NavalSkillNames() {
			v, err := r.I32(ctx)
			if err != nil {
				return nil, err
			}
			h.NavalSkills.Set(name, int(v))
		}
	}

	perkCount, err := r.I32(ctx)
	if err != nil {
		return nil, err
	}
	for i := int32(0); i < perkCount; i++ {
		perk, err := r.String(ctx)
		if err != nil {
			return nil, err
		}
		h.Perks[perk] = true
	}

	hasAppearance, err := r.Bool(ctx)
	if err != nil {
		return nil, err
	}
	if hasAppearance {
		n, err := r.I32(ctx)
		if err != nil {
			return nil, err
		}
		data, err := r.Bytes(ctx, int(n), binio.DefaultMaxBlob)
		if err != nil {
			return nil, err
		}
		h.Appearance = &domain.Appearance{Present: true, Data: data}
	}

	clanID, err := r.I64(ctx)
	if err != nil {
		return nil, err
	}
	h.ClanId = ids.EntityId(uint64(clanID))
	partyID, err := r.I64(ctx)
	if err != nil {
		return nil, err
	}
	h.PartyId = ids.EntityId(uint64(partyID))
	fleetID, err := r.I64(ctx)
	if err != nil {
		return nil, err
	}
	h.FleetId = ids.EntityId(uint64(fleetID))

	return h, nil
}

func encodeHeroes(ctx context.Context, save *domain.Save) ([]byte, error) {
	var buf bytes.Buffer
	w := binio.NewWriter(&buf)
	heroes := save.Heroes.All()
	if err := w.I32(int32(len(heroes))); err != nil {
		return nil, err
	}
	for _, h := range heroes {
		if err := encodeHero(w, h); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func encodeHero(w *binio.Writer, h *domain.Hero) error {
	if err := w.I64(int64(uint64(h.Id))); err != nil {
		return err
	}
	if err := w.String(h.StringId); err != nil {
		return err
	}
	if err := w.String(h.Name); err != nil {
		return err
	}
	if err := w.String(h.Gender); err != nil {
		return err
	}
	if err := w.I32(int32(h.Age)); err != nil {
		return err
	}
	if err := w.Bool(h.IsMainHero); err != nil {
		return err
	}
	if err := w.U16(uint16(h.AliveState)); err != nil {
		return err
	}
	if err := w.I32(int32(h.Level)); err != nil {
		return err
	}
	if err := w.I32(int32(h.Experience)); err != nil {
		return err
	}
	if err := w.I32(int32(h.Gold)); err != nil {
		return err
	}
	if err := w.I32(int32(h.Health)); err != nil {
		return err
	}
	if err := w.I32(int32(h.MaxHealth)); err != nil {
		return err
	}

	var attrErr error
	h.Attributes.Each(func(_ string, v int) {
		if attrErr != nil {
			return
		}
		attrErr = w.I32(int32(v))
	})
	if attrErr != nil {
		return attrErr
	}

	for _, name := range domain.SkillNames() {
		if err := w.I32(int32(h.Skills[name])); err != nil {
			return err
		}
	}

	if err := w.Bool(h.NavalSkills != nil); err != nil {
		return err
	}
	if h.NavalSkills != nil {
		for _, name := range domain.NavalSkillNames() {
			if err := w.I32(int32(h.NavalSkills.Get(name))); err != nil {
				return err
			}
		}
	}

	perks := make([]string, 0, len(h.Perks))
	for p, unlocked := range h.Perks {
		if unlocked {
			perks = append(perks, p)
		}
	}
	if err := w.I32(int32(len(perks))); err != nil {
		return err
	}
	for _, p := range perks {
		if err := w.String(p); err != nil {
			return err
		}
	}

	hasAppearance := h.Appearance != nil && h.Appearance.Present
	if err := w.Bool(hasAppearance); err != nil {
		return err
	}
	if hasAppearance {
		if err := w.I32(int32(len(h.Appearance.Data))); err != nil {
			return err
		}
		if err := w.Bytes(h.Appearance.Data); err != nil {
			return err
		}
	}

	if err := w.I64(int64(uint64(h.ClanId))); err != nil {
		return err
	}
	if err := w.I64(int64(uint64(h.PartyId))); err != nil {
		return err
	}
	return w.I64(int64(uint64(h.FleetId)))
}
