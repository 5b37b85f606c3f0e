package editor

import "github.com/tavernkeep/savecore/domain"

// PartyEditor mutates Party entities.
type PartyEditor struct{}

// AddTroops merges count troops into party's troop list, matching an
// existing stack by troopId or appending a new one.
func (PartyEditor) AddTroops(p *domain.Party, troopId, troopName string, count, tier int) Outcome {
	if count <= 0 {
		return fail(ErrOutOfRange)
	}
	for i := range p.Troops {
		if p.Troops[i].TroopId == troopId {
			p.Troops[i].Count += count
			return ok()
		}
	}
	p.Troops = append(p.Troops, domain.TroopStack{
		TroopId:   troopId,
		TroopName: troopName,
		Count:     count,
		Tier:      tier,
	})
	return ok()
}

// RemoveTroops removes up to n troops matching troopId (all of them when n
// is nil). Dropping a stack to zero removes it; wounded_count is clamped
// to the new count afterward.
func (PartyEditor) RemoveTroops(p *domain.Party, troopId string, n *int) Outcome {
	for i := range p.Troops {
		if p.Troops[i].TroopId != troopId {
			continue
		}
		remove := p.Troops[i].Count
		if n != nil && *n < remove {
			remove = *n
		}
		p.Troops[i].Count -= remove
		if p.Troops[i].Count <= 0 {
			p.Troops = append(p.Troops[:i], p.Troops[i+1:]...)
			return ok()
		}
		if p.Troops[i].WoundedCount > p.Troops[i].Count {
			p.Troops[i].WoundedCount = p.Troops[i].Count
		}
		return ok()
	}
	return fail(ErrNotFound)
}

// SetMorale clamps m to [0, 100] and assigns it.
func (PartyEditor) SetMorale(p *domain.Party, m int) Outcome {
	if m < 0 {
		m = 0
	}
	if m > 100 {
		m = 100
	}
	p.Morale = m
	return ok()
}

// TeleportTo moves the party to a settlement's position and marks it
// garrisoned there.
func (PartyEditor) TeleportTo(p *domain.Party, settlement *domain.Settlement) Outcome {
	p.Pos = settlement.Pos
	p.CurrentSettlementId = settlement.Id
	p.State = domain.PartyInSettlement
	return ok()
}
