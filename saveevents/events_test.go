package saveevents_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tavernkeep/savecore/saveevents"
)

type recordingListener struct {
	loaded []saveevents.SaveLoaded
	saving []saveevents.SaveSaving
	saved  []saveevents.SaveSaved
}

func (r *recordingListener) OnSaveLoaded(e saveevents.SaveLoaded) { r.loaded = append(r.loaded, e) }
func (r *recordingListener) OnSaveSaving(e saveevents.SaveSaving) { r.saving = append(r.saving, e) }
func (r *recordingListener) OnSaveSaved(e saveevents.SaveSaved)   { r.saved = append(r.saved, e) }

type panickingListener struct{}

func (panickingListener) OnSaveLoaded(saveevents.SaveLoaded) { panic("boom") }
func (panickingListener) OnSaveSaving(saveevents.SaveSaving) {}
func (panickingListener) OnSaveSaved(saveevents.SaveSaved)   {}

func TestBusDispatchesToAllListeners(t *testing.T) {
	b := saveevents.NewBus()
	r := &recordingListener{}
	b.Subscribe(r)

	b.EmitSaveLoaded(saveevents.SaveLoaded{Path: "game.sav"})
	b.EmitSaveSaving(saveevents.SaveSaving{Path: "game.sav"})
	b.EmitSaveSaved(saveevents.SaveSaved{Path: "game.sav"})

	assert.Len(t, r.loaded, 1)
	assert.Len(t, r.saving, 1)
	assert.Len(t, r.saved, 1)
	assert.Equal(t, "game.sav", r.loaded[0].Path)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := saveevents.NewBus()
	r := &recordingListener{}
	unsub := b.Subscribe(r)
	unsub()

	b.EmitSaveLoaded(saveevents.SaveLoaded{Path: "game.sav"})
	assert.Empty(t, r.loaded)
}

func TestPanickingListenerDoesNotAbortDispatch(t *testing.T) {
	b := saveevents.NewBus()
	b.Subscribe(panickingListener{})
	r := &recordingListener{}
	b.Subscribe(r)

	assert.NotPanics(t, func() {
		b.EmitSaveLoaded(saveevents.SaveLoaded{Path: "game.sav"})
	})
	assert.Len(t, r.loaded, 1, "listener after the panicking one still runs")
}
