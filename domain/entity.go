// Package domain holds the save-domain object graph: typed entities with
// stable identifiers, the back-references between them, and the Save that
// exclusively owns every entity instance.
package domain

import "github.com/tavernkeep/savecore/ids"

// Entity is implemented by every type the Save graph owns directly.
type Entity interface {
	ID() ids.EntityId
}

// Collection is a generic, insertion-order-preserving index over entities
// of one kind, keyed by EntityId. It holds exactly the entities one
// loaded Save owns.
type Collection[T Entity] struct {
	byID  map[ids.EntityId]T
	order []ids.EntityId
}

// NewCollection returns an empty Collection.
func NewCollection[T Entity]() *Collection[T] {
	return &Collection[T]{byID: make(map[ids.EntityId]T)}
}

// Get looks up an entity by id.
func (c *Collection[T]) Get(id ids.EntityId) (T, bool) {
	v, ok := c.byID[id]
	return v, ok
}

// Add inserts or replaces an entity, preserving first-insertion order.
func (c *Collection[T]) Add(e T) {
	id := e.ID()
	if _, exists := c.byID[id]; !exists {
		c.order = append(c.order, id)
	}
	c.byID[id] = e
}

// Remove deletes an entity by id. Reports whether it was present.
func (c *Collection[T]) Remove(id ids.EntityId) bool {
	if _, ok := c.byID[id]; !ok {
		return false
	}
	delete(c.byID, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// All returns every entity in insertion order.
func (c *Collection[T]) All() []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// Len returns the number of entities in the collection.
func (c *Collection[T]) Len() int {
	return len(c.order)
}
