package codec

import (
	"bytes"
	"context"

	"github.com/tavernkeep/savecore/binio"
	"github.com/tavernkeep/savecore/domain"
	"github.com/tavernkeep/savecore/ids"
)

// Segment tags for the political/settlement entities.
const (
	TagSettlements uint16 = 0x0030
	TagClans       uint16 = 0x0040
	TagKingdoms    uint16 = 0x0050
	TagFactions    uint16 = 0x0060
)

func init() {
	RegisterSegment(TagSettlements, "Settlements", false, decodeSettlements, encodeSettlements)
	RegisterSegment(TagClans, "Clans", false, decodeClans, encodeClans)
	RegisterSegment(TagKingdoms, "Kingdoms", false, decodeKingdoms, encodeKingdoms)
	RegisterSegment(TagFactions, "Factions", false, decodeFactions, encodeFactions)
}

func readColor(ctx context.Context, r *binio.Reader) (domain.Color, error) {
	var c domain.Color
	rb, err := r.Bytes(ctx, 3, 3)
	if err != nil {
		return c, err
	}
	c.R, c.G, c.B = rb[0], rb[1], rb[2]
	return c, nil
}

func writeColor(w *binio.Writer, c domain.Color) error {
	return w.Bytes([]byte{c.R, c.G, c.B})
}

func readEntityIdList(ctx context.Context, r *binio.Reader) ([]ids.EntityId, error) {
	count, err := r.I32(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ids.EntityId, 0, count)
	for i := int32(0); i < count; i++ {
		raw, err := r.I64(ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, ids.EntityId(uint64(raw)))
	}
	return out, nil
}

func writeEntityIdList(w *binio.Writer, list []ids.EntityId) error {
	if err := w.I32(int32(len(list))); err != nil {
		return err
	}
	for _, id := range list {
		if err := w.I64(int64(uint64(id))); err != nil {
			return err
		}
	}
	return nil
}

func decodeSettlements(ctx context.Context, payload []byte, save *domain.Save) error {
	r := binio.NewReader(bytes.NewReader(payload))
	count, err := r.I32(ctx)
	if err != nil {
		return err
	}
	for i := int32(0); i < count; i++ {
		rawID, err := r.I64(ctx)
		if err != nil {
			return err
		}
		s := &domain.Settlement{Id: ids.EntityId(uint64(rawID))}
		if s.Name, err = r.String(ctx); err != nil {
			return err
		}
		ownerID, err := r.I64(ctx)
		if err != nil {
			return err
		}
		s.OwnerId = ids.EntityId(uint64(ownerID))
		prosperity, err := r.I32(ctx)
		if err != nil {
			return err
		}
		s.Prosperity = int(prosperity)
		militia, err := r.I32(ctx)
		if err != nil {
			return err
		}
		s.Militia = int(militia)
		foodStock, err := r.I32(ctx)
		if err != nil {
			return err
		}
		s.FoodStock = int(foodStock)
		x, err := r.F32(ctx)
		if err != nil {
			return err
		}
		y, err := r.F32(ctx)
		if err != nil {
			return err
		}
		s.Pos = domain.Position{X: float64(x), Y: float64(y)}
		save.Settlements.Add(s)
	}
	return nil
}

func encodeSettlements(ctx context.Context, save *domain.Save) ([]byte, error) {
	var buf bytes.Buffer
	w := binio.NewWriter(&buf)
	all := save.Settlements.All()
	if err := w.I32(int32(len(all))); err != nil {
		return nil, err
	}
	for _, s := range all {
		if err := w.I64(int64(uint64(s.Id))); err != nil {
			return nil, err
		}
		if err := w.String(s.Name); err != nil {
			return nil, err
		}
		if err := w.I64(int64(uint64(s.OwnerId))); err != nil {
			return nil, err
		}
		if err := w.I32(int32(s.Prosperity)); err != nil {
			return nil, err
		}
		if err := w.I32(int32(s.Militia)); err != nil {
			return nil, err
		}
		if err := w.I32(int32(s.FoodStock)); err != nil {
			return nil, err
		}
		if err := w.F32(float32(s.Pos.X)); err != nil {
			return nil, err
		}
		if err := w.F32(float32(s.Pos.Y)); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func decodeClans(ctx context.Context, payload []byte, save *domain.Save) error {
	r := binio.NewReader(bytes.NewReader(payload))
	count, err := r.I32(ctx)
	if err != nil {
		return err
	}
	for i := int32(0); i < count; i++ {
		rawID, err := r.I64(ctx)
		if err != nil {
			return err
		}
		c := &domain.Clan{Id: ids.EntityId(uint64(rawID))}
		if c.Name, err = r.String(ctx); err != nil {
			return err
		}
		if c.Color, err = readColor(ctx, r); err != nil {
			return err
		}
		leaderID, err := r.I64(ctx)
		if err != nil {
			return err
		}
		c.LeaderId = ids.EntityId(uint64(leaderID))
		kingdomID, err := r.I64(ctx)
		if err != nil {
			return err
		}
		c.KingdomId = ids.EntityId(uint64(kingdomID))
		renown, err := r.I32(ctx)
		if err != nil {
			return err
		}
		c.Renown = int(renown)
		influence, err := r.I32(ctx)
		if err != nil {
			return err
		}
		c.Influence = int(influence)
		if c.SettlementIds, err = readEntityIdList(ctx, r); err != nil {
			return err
		}
		save.Clans.Add(c)
	}
	return nil
}

func encodeClans(ctx context.Context, save *domain.Save) ([]byte, error) {
	var buf bytes.Buffer
	w := binio.NewWriter(&buf)
	all := save.Clans.All()
	if err := w.I32(int32(len(all))); err != nil {
		return nil, err
	}
	for _, c := range all {
		if err := w.I64(int64(uint64(c.Id))); err != nil {
			return nil, err
		}
		if err := w.String(c.Name); err != nil {
			return nil, err
		}
		if err := writeColor(w, c.Color); err != nil {
			return nil, err
		}
		if err := w.I64(int64(uint64(c.LeaderId))); err != nil {
			return nil, err
		}
		if err := w.I64(int64(uint64(c.KingdomId))); err != nil {
			return nil, err
		}
		if err := w.I32(int32(c.Renown)); err != nil {
			return nil, err
		}
		if err := w.I32(int32(c.Influence)); err != nil {
			return nil, err
		}
		if err := writeEntityIdList(w, c.SettlementIds); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func decodeKingdoms(ctx context.Context, payload []byte, save *domain.Save) error {
	r := binio.NewReader(bytes.NewReader(payload))
	count, err := r.I32(ctx)
	if err != nil {
		return err
	}
	for i := int32(0); i < count; i++ {
		rawID, err := r.I64(ctx)
		if err != nil {
			return err
		}
		k := &domain.Kingdom{Id: ids.EntityId(uint64(rawID))}
		if k.Name, err = r.String(ctx); err != nil {
			return err
		}
		if k.Color, err = readColor(ctx, r); err != nil {
			return err
		}
		rulerID, err := r.I64(ctx)
		if err != nil {
			return err
		}
		k.RulerId = ids.EntityId(uint64(rulerID))
		if k.ClanIds, err = readEntityIdList(ctx, r); err != nil {
			return err
		}
		save.Kingdoms.Add(k)
	}
	return nil
}

func encodeKingdoms(ctx context.Context, save *domain.Save) ([]byte, error) {
	var buf bytes.Buffer
	w := binio.NewWriter(&buf)
	all := save.Kingdoms.All()
	if err := w.I32(int32(len(all))); err != nil {
		return nil, err
	}
	for _, k := range all {
		if err := w.I64(int64(uint64(k.Id))); err != nil {
			return nil, err
		}
		if err := w.String(k.Name); err != nil {
			return nil, err
		}
		if err := writeColor(w, k.Color); err != nil {
			return nil, err
		}
		if err := w.I64(int64(uint64(k.RulerId))); err != nil {
			return nil, err
		}
		if err := writeEntityIdList(w, k.ClanIds); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func decodeFactions(ctx context.Context, payload []byte, save *domain.Save) error {
	r := binio.NewReader(bytes.NewReader(payload))
	count, err := r.I32(ctx)
	if err != nil {
		return err
	}
	for i := int32(0); i < count; i++ {
		rawID, err := r.I64(ctx)
		if err != nil {
			return err
		}
		f := &domain.Faction{Id: ids.EntityId(uint64(rawID))}
		if f.Name, err = r.String(ctx); err != nil {
			return err
		}
		if f.Color, err = readColor(ctx, r); err != nil {
			return err
		}
		leaderID, err := r.I64(ctx)
		if err != nil {
			return err
		}
		f.LeaderId = ids.EntityId(uint64(leaderID))
		save.Factions.Add(f)
	}
	return nil
}

func encodeFactions(ctx context.Context, save *domain.Save) ([]byte, error) {
	var buf bytes.Buffer
	w := binio.NewWriter(&buf)
	all := save.Factions.All()
	if err := w.I32(int32(len(all))); err != nil {
		return nil, err
	}
	for _, f := range all {
		if err := w.I64(int64(uint64(f.Id))); err != nil {
			return nil, err
		}
		if err := w.String(f.Name); err != nil {
			return nil, err
		}
		if err := writeColor(w, f.Color); err != nil {
			return nil, err
		}
		if err := w.I64(int64(uint64(f.LeaderId))); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}
