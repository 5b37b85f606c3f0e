package validate

import (
	"fmt"

	"github.com/tavernkeep/savecore/domain"
)

func init() {
	RegisterFleetRule(checkFleetShips)
	RegisterFleetRule(checkFleetFlagship)
}

func checkFleetShips(f *domain.Fleet, ctx *Context) []Issue {
	if len(f.ShipIds) == 0 {
		return []Issue{{Severity: Warning, Code: "FLEET_SHIPS_001", Message: "fleet has no ships", Path: fmt.Sprintf("fleet[%s].ship_ids", f.Id)}}
	}
	return nil
}

func checkFleetFlagship(f *domain.Fleet, ctx *Context) []Issue {
	if f.FlagshipId.IsEmpty() {
		return nil
	}
	if !f.HasShip(f.FlagshipId) {
		return []Issue{{
			Severity: Error,
			Code:     "FLEET_FLAG_001",
			Message:  "flagship not a member of the fleet's ship list",
			Path:     fmt.Sprintf("fleet[%s].flagship_id", f.Id),
			Context:  map[string]any{"flagship_id": f.FlagshipId.String()},
		}}
	}
	return nil
}
