package codec

import (
	"bytes"
	"context"

	"github.com/tavernkeep/savecore/binio"
	"github.com/tavernkeep/savecore/domain"
	"github.com/tavernkeep/savecore/ids"
)

// TagParties is the party-list segment.
const TagParties uint16 = 0x0020

func init() {
	RegisterSegment(TagParties, "Parties", false, decodeParties, encodeParties)
}

func decodeParties(ctx context.Context, payload []byte, save *domain.Save) error {
	r := binio.NewReader(bytes.NewReader(payload))
	count, err := r.I32(ctx)
	if err != nil {
		return err
	}
	for i := int32(0); i < count; i++ {
		p, err := decodeParty(ctx, r)
		if err != nil {
			return err
		}
		save.Parties.Add(p)
	}
	return nil
}

func decodeTroopStacks(ctx context.Context, r *binio.Reader) ([]domain.TroopStack, error) {
	count, err := r.I32(ctx)
	if err != nil {
		return nil, err
	}
	stacks := make([]domain.TroopStack, 0, count)
	for i := int32(0); i < count; i++ {
		var s domain.TroopStack
		if s.TroopId, err = r.String(ctx); err != nil {
			return nil, err
		}
		if s.TroopName, err = r.String(ctx); err != nil {
			return nil, err
		}
		cnt, err := r.I32(ctx)
		if err != nil {
			return nil, err
		}
		s.Count = int(cnt)
		wounded, err := r.I32(ctx)
		if err != nil {
			return nil, err
		}
		s.WoundedCount = int(wounded)
		tier, err := r.I32(ctx)
		if err != nil {
			return nil, err
		}
		s.Tier = int(tier)
		if s.IsHero, err = r.Bool(ctx); err != nil {
			return nil, err
		}
		heroID, err := r.I64(ctx)
		if err != nil {
			return nil, err
		}
		s.HeroId = ids.EntityId(uint64(heroID))
		stacks = append(stacks, s)
	}
	return stacks, nil
}

func encodeTroopStacks(w *binio.Writer, stacks []domain.TroopStack) error {
	if err := w.I32(int32(len(stacks))); err != nil {
		return err
	}
	for _, s := range stacks {
		if err := w.String(s.TroopId); err != nil {
			return err
		}
		if err := w.String(s.TroopName); err != nil {
			return err
		}
		if err := w.I32(int32(s.Count)); err != nil {
			return err
		}
		if err := w.I32(int32(s.WoundedCount)); err != nil {
			return err
		}
		if err := w.I32(int32(s.Tier)); err != nil {
			return err
		}
		if err := w.Bool(s.IsHero); err != nil {
			return err
		}
		if err := w.I64(int64(uint64(s.HeroId))); err != nil {
			return err
		}
	}
	return nil
}

func decodeParty(ctx context.Context, r *binio.Reader) (*domain.Party, error) {
	rawID, err := r.I64(ctx)
	if err != nil {
		return nil, err
	}
	p := &domain.Party{Id: ids.EntityId(uint64(rawID))}

	if p.Name, err = r.String(ctx); err != nil {
		return nil, err
	}
	kind, err := r.U16(ctx)
	if err != nil {
		return nil, err
	}
	p.Type = domain.PartyType(kind)
	state, err := r.U16(ctx)
	if err != nil {
		return nil, err
	}
	p.State = domain.PartyState(state)

	gold, err := r.I32(ctx)
	if err != nil {
		return nil, err
	}
	p.Gold = int(gold)
	food, err := r.I32(ctx)
	if err != nil {
		return nil, err
	}
	p.Food = int(food)
	morale, err := r.I32(ctx)
	if err != nil {
		return nil, err
	}
	p.Morale = int(morale)
	sizeLimit, err := r.I32(ctx)
	if err != nil {
		return nil, err
	}
	p.PartySizeLimit = int(sizeLimit)
	prisonerLimit, err := r.I32(ctx)
	if err != nil {
		return nil, err
	}
	p.PrisonerLimit = int(prisonerLimit)

	if p.Troops, err = decodeTroopStacks(ctx, r); err != nil {
		return nil, err
	}
	if p.Prisoners, err = decodeTroopStacks(ctx, r); err != nil {
		return nil, err
	}

	leaderID, err := r.I64(ctx)
	if err != nil {
		return nil, err
	}
	p.LeaderId = ids.EntityId(uint64(leaderID))
	settlementID, err := r.I64(ctx)
	if err != nil {
		return nil, err
	}
	p.CurrentSettlementId = ids.EntityId(uint64(settlementID))

	x, err := r.F32(ctx)
	if err != nil {
		return nil, err
	}
	y, err := r.F32(ctx)
	if err != nil {
		return nil, err
	}
	p.Pos = domain.Position{X: float64(x), Y: float64(y)}

	return p, nil
}

func encodeParties(ctx context.Context, save *domain.Save) ([]byte, error) {
	var buf bytes.Buffer
	w := binio.NewWriter(&buf)
	parties := save.Parties.All()
	if err := w.I32(int32(len(parties))); err != nil {
		return nil, err
	}
	for _, p := range parties {
		if err := encodeParty(w, p); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func encodeParty(w *binio.Writer, p *domain.Party) error {
	if err := w.I64(int64(uint64(p.Id))); err != nil {
		return err
	}
	if err := w.String(p.Name); err != nil {
		return err
	}
	if err := w.U16(uint16(p.Type)); err != nil {
		return err
	}
	if err := w.U16(uint16(p.State)); err != nil {
		return err
	}
	if err := w.I32(int32(p.Gold)); err != nil {
		return err
	}
	if err := w.I32(int32(p.Food)); err != nil {
		return err
	}
	if err := w.I32(int32(p.Morale)); err != nil {
		return err
	}
	if err := w.I32(int32(p.PartySizeLimit)); err != nil {
		return err
	}
	if err := w.I32(int32(p.PrisonerLimit)); err != nil {
		return err
	}
	if err := encodeTroopStacks(w, p.Troops); err != nil {
		return err
	}
	if err := encodeTroopStacks(w, p.Prisoners); err != nil {
		return err
	}
	if err := w.I64(int64(uint64(p.LeaderId))); err != nil {
		return err
	}
	if err := w.I64(int64(uint64(p.CurrentSettlementId))); err != nil {
		return err
	}
	if err := w.F32(float32(p.Pos.X)); err != nil {
		return err
	}
	return w.F32(float32(p.Pos.Y))
}
