package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tavernkeep/savecore/domain"
	"github.com/tavernkeep/savecore/ids"
)

func TestNewSaveHasEmptyCollections(t *testing.T) {
	s := domain.NewSave()
	assert.Equal(t, 0, s.Heroes.Len())
	assert.Equal(t, 0, s.Fleets.Len())
	assert.Empty(t, s.PreservedSegments)
}

func TestResolveRoundTrip(t *testing.T) {
	s := domain.NewSave()
	gen := ids.NewGenerator(ids.TagHero, 0)
	h := domain.NewHero(gen.Next(), "Derthert")
	s.Heroes.Add(h)

	got, ok := s.ResolveHero(h.Id)
	assert.True(t, ok)
	assert.Same(t, h, got)

	_, ok = s.ResolveHero(ids.Empty)
	assert.False(t, ok)

	_, ok = s.ResolveHero(ids.New(ids.TagHero, 999))
	assert.False(t, ok)
}

func TestHeaderHasModule(t *testing.T) {
	h := domain.Header{Modules: []domain.ModuleRef{{Id: "Native", IsOfficial: true}}}
	assert.True(t, h.HasModule("Native"))
	assert.False(t, h.HasModule("native"))
}

func TestCollectionRemovePreservesOrder(t *testing.T) {
	c := domain.NewCollection[*domain.Party]()
	gen := ids.NewGenerator(ids.TagParty, 0)
	p1 := domain.NewParty(gen.Next(), "A", domain.PartyLord)
	p2 := domain.NewParty(gen.Next(), "B", domain.PartyLord)
	p3 := domain.NewParty(gen.Next(), "C", domain.PartyLord)
	c.Add(p1)
	c.Add(p2)
	c.Add(p3)

	assert.True(t, c.Remove(p2.Id))
	all := c.All()
	assert.Equal(t, []*domain.Party{p1, p3}, all)
	assert.False(t, c.Remove(p2.Id))
}
