package editor

import (
	"github.com/tavernkeep/savecore/domain"
	"github.com/tavernkeep/savecore/ids"
)

// FleetEditor mutates Fleet and Ship entities.
type FleetEditor struct{}

// AddShip adds ship to fleet. Idempotent: adding a ship already in the
// fleet is a no-op. A ship added to an empty fleet becomes the flagship.
func (FleetEditor) AddShip(f *domain.Fleet, ship *domain.Ship) Outcome {
	if f.HasShip(ship.Id) {
		return ok()
	}
	wasEmpty := len(f.ShipIds) == 0
	f.ShipIds = append(f.ShipIds, ship.Id)
	ship.FleetId = f.Id
	if wasEmpty {
		f.FlagshipId = ship.Id
		ship.Class = domain.ShipFlagship
	}
	return ok()
}

// RemoveShip removes ship from fleet. If it was the flagship, the next
// ship in order becomes flagship, or Empty if the fleet is now empty.
func (FleetEditor) RemoveShip(f *domain.Fleet, ship *domain.Ship) Outcome {
	idx := -1
	for i, id := range f.ShipIds {
		if id == ship.Id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fail(ErrNotFound)
	}
	f.ShipIds = append(f.ShipIds[:idx], f.ShipIds[idx+1:]...)
	ship.FleetId = ids.Empty
	if f.FlagshipId == ship.Id {
		if len(f.ShipIds) > 0 {
			f.FlagshipId = f.ShipIds[0]
		} else {
			f.FlagshipId = ids.Empty
		}
	}
	return ok()
}

// AddUpgrade attaches u to ship, failing Conflict if an existing upgrade
// already occupies the same category.
func (FleetEditor) AddUpgrade(ship *domain.Ship, upgradeId string) Outcome {
	cat, known := domain.UpgradeCategoryOf(upgradeId)
	if known {
		for existing := range ship.Upgrades {
			if existingCat, ok := domain.UpgradeCategoryOf(existing); ok && existingCat == cat {
				return fail(ErrConflict)
			}
		}
	}
	ship.Upgrades[upgradeId] = true
	return ok()
}

// AddCargo merges item into ship's cargo hold, failing CapacityExceeded if
// the aggregate weight would exceed cargo_capacity.
func (FleetEditor) AddCargo(ship *domain.Ship, itemId string, count int, weight float64) Outcome {
	projected := ship.CargoWeight() + weight*float64(count)
	for _, c := range ship.Cargo {
		if c.ItemId == itemId {
			projected = ship.CargoWeight() - c.Weight*float64(c.Count) + c.Weight*float64(c.Count+count)
			break
		}
	}
	if projected > ship.CargoCapacity {
		return fail(ErrCapacityExceeded)
	}
	for i := range ship.Cargo {
		if ship.Cargo[i].ItemId == itemId {
			ship.Cargo[i].Count += count
			return ok()
		}
	}
	ship.Cargo = append(ship.Cargo, domain.CargoStack{ItemId: itemId, Count: count, Weight: weight})
	return ok()
}
