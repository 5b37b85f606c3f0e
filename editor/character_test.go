package editor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tavernkeep/savecore/domain"
	"github.com/tavernkeep/savecore/editor"
	"github.com/tavernkeep/savecore/ids"
)

func TestSetLevelRecomputesExperience(t *testing.T) {
	h := domain.NewHero(ids.New(ids.TagHero, 1), "Derthert")
	var ce editor.CharacterEditor

	out := ce.SetLevel(h, 20)
	assert.True(t, out.Success)
	assert.Equal(t, 20, h.Level)
	assert.Equal(t, 400000, h.Experience)
}

func TestSetLevelOutOfRange(t *testing.T) {
	h := domain.NewHero(ids.New(ids.TagHero, 1), "Derthert")
	var ce editor.CharacterEditor

	out := ce.SetLevel(h, 0)
	assert.False(t, out.Success)
	assert.ErrorIs(t, out.Err, editor.ErrOutOfRange)
}

func TestSetLevelAboveCapWarns(t *testing.T) {
	h := domain.NewHero(ids.New(ids.TagHero, 1), "Derthert")
	var ce editor.CharacterEditor

	out := ce.SetLevel(h, 70)
	assert.True(t, out.Success)
	assert.NotEmpty(t, out.Warning)
}

func TestSetSkillBounds(t *testing.T) {
	h := domain.NewHero(ids.New(ids.TagHero, 1), "Derthert")
	var ce editor.CharacterEditor

	assert.True(t, ce.SetSkill(h, "OneHanded", 150).Success)
	assert.Equal(t, 150, h.Skills["OneHanded"])

	out := ce.SetSkill(h, "OneHanded", 301)
	assert.False(t, out.Success)
	assert.ErrorIs(t, out.Err, editor.ErrOutOfRange)

	out = ce.SetSkill(h, "OneHanded", -1)
	assert.False(t, out.Success)
}

func TestResurrectOnlyAffectsDead(t *testing.T) {
	h := domain.NewHero(ids.New(ids.TagHero, 1), "Derthert")
	h.MaxHealth = 100
	var ce editor.CharacterEditor

	out := ce.Resurrect(h)
	assert.True(t, out.Success)
	assert.Equal(t, domain.Active, h.AliveState, "resurrect on a living hero is a no-op")

	h.AliveState = domain.Dead
	h.Health = 0
	ce.Resurrect(h)
	assert.Equal(t, domain.Active, h.AliveState)
	assert.Equal(t, 100, h.Health)
}
