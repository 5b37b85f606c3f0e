package ids

import "sync/atomic"

// Generator hands out fresh instance numbers for newly created entities of
// a given TypeTag. Ids read back from a save retain their original value
// and never pass through a Generator; only the editor layer's "create new
// entity" operations do.
type Generator struct {
	tag     TypeTag
	counter atomic.Uint32
}

// NewGenerator returns a Generator that mints ids for the given tag,
// starting after the highest instance number already observed in a loaded
// save (pass 0 for a brand-new graph).
func NewGenerator(tag TypeTag, highWatermark uint32) *Generator {
	g := &Generator{tag: tag}
	g.counter.Store(highWatermark)
	return g
}

// Next returns the next unique EntityId for this generator's tag. Safe for
// concurrent use; unique for the lifetime of the process.
func (g *Generator) Next() EntityId {
	n := g.counter.Add(1)
	return New(g.tag, n)
}
