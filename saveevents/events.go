// Package saveevents implements the synchronous listener registry the save
// pipeline notifies at load/save boundaries.
package saveevents

import (
	"fmt"
	"sync"

	"github.com/tavernkeep/savecore/savelog"
)

// SaveLoaded is emitted after a successful Load.
type SaveLoaded struct {
	Path string
}

// SaveSaving is emitted immediately before a save write begins.
type SaveSaving struct {
	Path string
}

// SaveSaved is emitted after a successful transactional save.
type SaveSaved struct {
	Path string
}

// Listener receives pipeline events. Implementations must not block for
// long; they run synchronously on the caller's goroutine.
type Listener interface {
	OnSaveLoaded(SaveLoaded)
	OnSaveSaving(SaveSaving)
	OnSaveSaved(SaveSaved)
}

// Bus is a synchronous, panic-isolating listener registry.
type Bus struct {
	mu        sync.RWMutex
	listeners []Listener
}

// NewBus returns an empty Bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a listener. Returns an unsubscribe function.
func (b *Bus) Subscribe(l Listener) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = append(b.listeners, l)
	idx := len(b.listeners) - 1
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if idx < len(b.listeners) && b.listeners[idx] == l {
			b.listeners = append(b.listeners[:idx], b.listeners[idx+1:]...)
		}
	}
}

func (b *Bus) snapshot() []Listener {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Listener, len(b.listeners))
	copy(out, b.listeners)
	return out
}

func (b *Bus) dispatch(name string, fn func(Listener)) {
	for _, l := range b.snapshot() {
		safeCall(name, fn, l)
	}
}

func safeCall(name string, fn func(Listener), l Listener) {
	defer func() {
		if r := recover(); r != nil {
			savelog.Error("event listener panicked",
				savelog.F("event", name),
				savelog.F("recover", fmt.Sprintf("%v", r)))
		}
	}()
	fn(l)
}

// EmitSaveLoaded notifies listeners of a completed load.
func (b *Bus) EmitSaveLoaded(e SaveLoaded) {
	b.dispatch("SaveLoaded", func(l Listener) { l.OnSaveLoaded(e) })
}

// EmitSaveSaving notifies listeners that a save write is starting.
func (b *Bus) EmitSaveSaving(e SaveSaving) {
	b.dispatch("SaveSaving", func(l Listener) { l.OnSaveSaving(e) })
}

// EmitSaveSaved notifies listeners of a completed transactional save.
func (b *Bus) EmitSaveSaved(e SaveSaved) {
	b.dispatch("SaveSaved", func(l Listener) { l.OnSaveSaved(e) })
}

// Default is the package-level bus that codec and pipeline always emit on;
// their options carry no bus of their own.
var Default = NewBus()
