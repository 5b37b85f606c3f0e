package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tavernkeep/savecore/domain"
	"github.com/tavernkeep/savecore/ids"
)

func TestNewHeroDefaults(t *testing.T) {
	h := domain.NewHero(ids.New(ids.TagHero, 1), "Ymira")
	assert.Equal(t, domain.Active, h.AliveState)
	assert.Equal(t, 0, h.Skills.Get("OneHanded"))
	assert.False(t, h.HasPerk("Bookworm"))
}

func TestUnlockPerkIsIdempotent(t *testing.T) {
	h := domain.NewHero(ids.New(ids.TagHero, 1), "Ymira")
	assert.True(t, h.UnlockPerk("Bookworm"))
	assert.True(t, h.HasPerk("Bookworm"))
	assert.False(t, h.UnlockPerk("Bookworm"), "second unlock is a no-op")
}

func TestAttributesGetSet(t *testing.T) {
	var a domain.Attributes
	ok := a.Set("Vigor", 5)
	assert.True(t, ok)
	v, ok := a.Get("Vigor")
	assert.True(t, ok)
	assert.Equal(t, 5, v)

	assert.False(t, a.Set("NotReal", 1))
	_, ok = a.Get("NotReal")
	assert.False(t, ok)
}

func TestKnownSkillNames(t *testing.T) {
	assert.True(t, domain.IsKnownSkill("OneHanded"))
	assert.False(t, domain.IsKnownSkill("Telekinesis"))
	assert.Len(t, domain.SkillNames(), 18)
}
