package codec

import (
	"bytes"
	"context"

	"github.com/tavernkeep/savecore/binio"
	"github.com/tavernkeep/savecore/domain"
	"github.com/tavernkeep/savecore/ids"
)

// Segment tags for the optional naval-expansion entities. They are decoded
// and encoded only when save.HasNavalExpansion is true; otherwise they
// pass through as preserved opaque segments.
const (
	TagFleets uint16 = 0x00A0
	TagShips  uint16 = 0x00B0
)

func init() {
	RegisterSegment(TagFleets, "Fleets", true, decodeFleets, encodeFleets)
	RegisterSegment(TagShips, "Ships", true, decodeShips, encodeShips)
}

func decodeFleets(ctx context.Context, payload []byte, save *domain.Save) error {
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
		f := &domain.Fleet{Id: ids.EntityId(uint64(rawID))}
		if f.Name, err = r.String(ctx); err != nil {
			return err
		}
		admiralID, err := r.I64(ctx)
		if err != nil {
			return err
		}
		f.AdmiralId = ids.EntityId(uint64(admiralID))
		clanID, err := r.I64(ctx)
		if err != nil {
			return err
		}
		f.ClanId = ids.EntityId(uint64(clanID))
		state, err := r.U16(ctx)
		if err != nil {
			return err
		}
		f.State = domain.FleetState(state)
		if f.Formation, err = r.String(ctx); err != nil {
			return err
		}
		morale, err := r.I32(ctx)
		if err != nil {
			return err
		}
		f.Morale = int(morale)
		gold, err := r.I32(ctx)
		if err != nil {
			return err
		}
		f.Gold = int(gold)
		food, err := r.I32(ctx)
		if err != nil {
			return err
		}
		f.FoodSupplies = int(food)
		x, err := r.F32(ctx)
		if err != nil {
			return err
		}
		y, err := r.F32(ctx)
		if err != nil {
			return err
		}
		heading, err := r.F32(ctx)
		if err != nil {
			return err
		}
		f.Pos = domain.NavalPosition{X: float64(x), Y: float64(y), Heading: float64(heading)}
		if f.ShipIds, err = readEntityIdList(ctx, r); err != nil {
			return err
		}
		flagshipID, err := r.I64(ctx)
		if err != nil {
			return err
		}
		f.FlagshipId = ids.EntityId(uint64(flagshipID))
		save.Fleets.Add(f)
	}
	return nil
}

func encodeFleets(ctx context.Context, save *domain.Save) ([]byte, error) {
	var buf bytes.Buffer
	w := binio.NewWriter(&buf)
	all := save.Fleets.All()
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
		if err := w.I64(int64(uint64(f.AdmiralId))); err != nil {
			return nil, err
		}
		if err := w.I64(int64(uint64(f.ClanId))); err != nil {
			return nil, err
		}
		if err := w.U16(uint16(f.State)); err != nil {
			return nil, err
		}
		if err := w.String(f.Formation); err != nil {
			return nil, err
		}
		if err := w.I32(int32(f.Morale)); err != nil {
			return nil, err
		}
		if err := w.I32(int32(f.Gold)); err != nil {
			return nil, err
		}
		if err := w.I32(int32(f.FoodSupplies)); err != nil {
			return nil, err
		}
		if err := w.F32(float32(f.Pos.X)); err != nil {
			return nil, err
		}
		if err := w.F32(float32(f.Pos.Y)); err != nil {
			return nil, err
		}
		if err := w.F32(float32(f.Pos.Heading)); err != nil {
			return nil, err
		}
		if err := writeEntityIdList(w, f.ShipIds); err != nil {
			return nil, err
		}
		if err := w.I64(int64(uint64(f.FlagshipId))); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func decodeShips(ctx context.Context, payload []byte, save *domain.Save) error {
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
		s := domain.NewShip(ids.EntityId(uint64(rawID)), "")
		if s.Name, err = r.String(ctx); err != nil {
			return err
		}
		if s.Type, err = r.String(ctx); err != nil {
			return err
		}
		class, err := r.U16(ctx)
		if err != nil {
			return err
		}
		s.Class = domain.ShipClass(class)
		hull, err := r.I32(ctx)
		if err != nil {
			return err
		}
		s.CurrentHull = int(hull)
		maxHull, err := r.I32(ctx)
		if err != nil {
			return err
		}
		s.MaxHull = int(maxHull)
		crew, err := r.I32(ctx)
		if err != nil {
			return err
		}
		s.CrewCount = int(crew)
		crewCap, err := r.I32(ctx)
		if err != nil {
			return err
		}
		s.CrewCapacity = int(crewCap)
		crewQuality, err := r.I32(ctx)
		if err != nil {
			return err
		}
		s.CrewQuality = int(crewQuality)
		crewMorale, err := r.I32(ctx)
		if err != nil {
			return err
		}
		s.CrewMorale = int(crewMorale)
		cargoCap, err := r.F32(ctx)
		if err != nil {
			return err
		}
		s.CargoCapacity = float64(cargoCap)

		cargoCount, err := r.I32(ctx)
		if err != nil {
			return err
		}
		s.Cargo = make([]domain.CargoStack, 0, cargoCount)
		for j := int32(0); j < cargoCount; j++ {
			var c domain.CargoStack
			if c.ItemId, err = r.String(ctx); err != nil {
				return err
			}
			cnt, err := r.I32(ctx)
			if err != nil {
				return err
			}
			c.Count = int(cnt)
			weight, err := r.F32(ctx)
			if err != nil {
				return err
			}
			c.Weight = float64(weight)
			s.Cargo = append(s.Cargo, c)
		}

		weaponCount, err := r.I32(ctx)
		if err != nil {
			return err
		}
		for j := int32(0); j < weaponCount; j++ {
			w, err := r.String(ctx)
			if err != nil {
				return err
			}
			s.Weapons = append(s.Weapons, w)
		}

		upgradeCount, err := r.I32(ctx)
		if err != nil {
			return err
		}
		for j := int32(0); j < upgradeCount; j++ {
			u, err := r.String(ctx)
			if err != nil {
				return err
			}
			s.Upgrades[u] = true
		}

		fleetID, err := r.I64(ctx)
		if err != nil {
			return err
		}
		s.FleetId = ids.EntityId(uint64(fleetID))
		save.Ships.Add(s)
	}
	return nil
}

func encodeShips(ctx context.Context, save *domain.Save) ([]byte, error) {
	var buf bytes.Buffer
	w := binio.NewWriter(&buf)
	all := save.Ships.All()
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
		if err := w.String(s.Type); err != nil {
			return nil, err
		}
		if err := w.U16(uint16(s.Class)); err != nil {
			return nil, err
		}
		if err := w.I32(int32(s.CurrentHull)); err != nil {
			return nil, err
		}
		if err := w.I32(int32(s.MaxHull)); err != nil {
			return nil, err
		}
		if err := w.I32(int32(s.CrewCount)); err != nil {
			return nil, err
		}
		if err := w.I32(int32(s.CrewCapacity)); err != nil {
			return nil, err
		}
		if err := w.I32(int32(s.CrewQuality)); err != nil {
			return nil, err
		}
		if err := w.I32(int32(s.CrewMorale)); err != nil {
			return nil, err
		}
		if err := w.F32(float32(s.CargoCapacity)); err != nil {
			return nil, err
		}
		if err := w.I32(int32(len(s.Cargo))); err != nil {
			return nil, err
		}
		for _, c := range s.Cargo {
			if err := w.String(c.ItemId); err != nil {
				return nil, err
			}
			if err := w.I32(int32(c.Count)); err != nil {
				return nil, err
			}
			if err := w.F32(float32(c.Weight)); err != nil {
				return nil, err
			}
		}
		if err := w.I32(int32(len(s.Weapons))); err != nil {
			return nil, err
		}
		for _, weapon := range s.Weapons {
			if err := w.String(weapon); err != nil {
				return nil, err
			}
		}
		upgrades := make([]string, 0, len(s.Upgrades))
		for u, has := range s.Upgrades {
			if has {
				upgrades = append(upgrades, u)
			}
		}
		if err := w.I32(int32(len(upgrades))); err != nil {
			return nil, err
		}
		for _, u := range upgrades {
			if err := w.String(u); err != nil {
				return nil, err
			}
		}
		if err := w.I64(int64(uint64(s.FleetId))); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}
