package validate

import (
	"fmt"

	"github.com/tavernkeep/savecore/domain"
)

func init() {
	RegisterShipRule(checkShipHull)
	RegisterShipRule(checkShipCrew)
	RegisterShipRule(checkShipCargo)
	RegisterShipRule(checkShipMorale)
}

func checkShipHull(s *domain.Ship, ctx *Context) []Issue {
	path := fmt.Sprintf("ship[%s].current_hull", s.Id)
	if s.CurrentHull < 0 {
		return []Issue{{Severity: Error, Code: "SHIP_HULL_001", Message: "hull below zero", Path: path, Context: map[string]any{"value": s.CurrentHull}}}
	}
	if s.CurrentHull > s.MaxHull {
		return []Issue{{Severity: Error, Code: "SHIP_HULL_002", Message: "hull above max hull", Path: path, Context: map[string]any{"value": s.CurrentHull, "max": s.MaxHull}}}
	}
	return nil
}

func checkShipCrew(s *domain.Ship, ctx *Context) []Issue {
	path := fmt.Sprintf("ship[%s].crew_count", s.Id)
	if s.CrewCount < 0 {
		return []Issue{{Severity: Error, Code: "SHIP_CREW_001", Message: "crew below zero", Path: path, Context: map[string]any{"value": s.CrewCount}}}
	}
	if s.CrewCount > s.CrewCapacity {
		return []Issue{{Severity: Error, Code: "SHIP_CREW_002", Message: "crew above capacity", Path: path, Context: map[string]any{"value": s.CrewCount, "capacity": s.CrewCapacity}}}
	}
	return nil
}

func checkShipCargo(s *domain.Ship, ctx *Context) []Issue {
	if s.CargoWeight() > s.CargoCapacity {
		return []Issue{{
			Severity: Error,
			Code:     "SHIP_CARGO_001",
			Message:  "aggregate cargo weight exceeds capacity",
			Path:     fmt.Sprintf("ship[%s].cargo", s.Id),
			Context:  map[string]any{"weight": s.CargoWeight(), "capacity": s.CargoCapacity},
		}}
	}
	return nil
}

func checkShipMorale(s *domain.Ship, ctx *Context) []Issue {
	if s.CrewMorale < 0 || s.CrewMorale > 100 {
		return []Issue{{Severity: Warning, Code: "SHIP_MORALE_001", Message: "crew morale outside [0,100]", Path: fmt.Sprintf("ship[%s].crew_morale", s.Id), Context: map[string]any{"value": s.CrewMorale}}}
	}
	return nil
}
