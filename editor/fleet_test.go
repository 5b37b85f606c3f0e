package editor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tavernkeep/savecore/domain"
	"github.com/tavernkeep/savecore/editor"
	"github.com/tavernkeep/savecore/ids"
)

func TestAddShipFirstBecomesFlagship(t *testing.T) {
	f := domain.NewFleet(ids.New(ids.TagFleet, 1), "Grey Armada")
	s1 := domain.NewShip(ids.New(ids.TagShip, 1), "Seafoam")
	s2 := domain.NewShip(ids.New(ids.TagShip, 2), "Tidecutter")
	var fe editor.FleetEditor

	fe.AddShip(f, s1)
	assert.Equal(t, s1.Id, f.FlagshipId)
	assert.Equal(t, domain.ShipFlagship, s1.Class)

	fe.AddShip(f, s2)
	assert.Equal(t, s1.Id, f.FlagshipId, "second ship does not displace the flagship")
}

func TestAddShipIsIdempotent(t *testing.T) {
	f := domain.NewFleet(ids.New(ids.TagFleet, 1), "Grey Armada")
	s1 := domain.NewShip(ids.New(ids.TagShip, 1), "Seafoam")
	var fe editor.FleetEditor

	fe.AddShip(f, s1)
	fe.AddShip(f, s1)
	assert.Len(t, f.ShipIds, 1)
}

func TestRemoveFlagshipPromotesNext(t *testing.T) {
	f := domain.NewFleet(ids.New(ids.TagFleet, 1), "Grey Armada")
	s1 := domain.NewShip(ids.New(ids.TagShip, 1), "Seafoam")
	s2 := domain.NewShip(ids.New(ids.TagShip, 2), "Tidecutter")
	var fe editor.FleetEditor
	fe.AddShip(f, s1)
	fe.AddShip(f, s2)

	fe.RemoveShip(f, s1)
	assert.Equal(t, s2.Id, f.FlagshipId)
	assert.True(t, ids.Empty != f.FlagshipId)

	fe.RemoveShip(f, s2)
	assert.Equal(t, ids.Empty, f.FlagshipId)
}

func TestAddUpgradeConflict(t *testing.T) {
	s := domain.NewShip(ids.New(ids.TagShip, 1), "Seafoam")
	var fe editor.FleetEditor

	assert.True(t, fe.AddUpgrade(s, "IronPlating").Success)
	out := fe.AddUpgrade(s, "ReinforcedHull")
	assert.False(t, out.Success)
	assert.ErrorIs(t, out.Err, editor.ErrConflict)
}

func TestAddCargoCapacity(t *testing.T) {
	s := domain.NewShip(ids.New(ids.TagShip, 1), "Seafoam")
	s.CargoCapacity = 20
	var fe editor.FleetEditor

	assert.True(t, fe.AddCargo(s, "Grain", 10, 1.5).Success)
	out := fe.AddCargo(s, "Grain", 10, 1.5)
	assert.False(t, out.Success)
	assert.ErrorIs(t, out.Err, editor.ErrCapacityExceeded)
}
