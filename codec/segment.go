package codec

import (
	"context"
	"sort"
	"sync"

	"github.com/tavernkeep/savecore/domain"
)

// SegmentDecoder decodes one segment's payload into save. Decoders must be
// lenient on trailing bytes: a future version may grow a payload, and a
// decoder should consume only the fields it knows about.
type SegmentDecoder func(ctx context.Context, payload []byte, save *domain.Save) error

// SegmentEncoder encodes save's state for one tag into a payload. Returning
// (nil, nil) means "nothing to emit" and the tag is skipped entirely.
type SegmentEncoder func(ctx context.Context, save *domain.Save) ([]byte, error)

// segmentDef is one entry in the process-wide tag registry.
type segmentDef struct {
	Tag    uint16
	Name   string
	Naval  bool // decoded/encoded only when save.HasNavalExpansion
	Decode SegmentDecoder
	Encode SegmentEncoder
}

var (
	registryMu sync.RWMutex
	registry   = map[uint16]segmentDef{}
)

// RegisterSegment adds or replaces a tag's registry entry. The segment
// registry is process-wide and read-only once the program has finished its
// init phase; callers (including third-party modules) register before any
// Load/Write call.
func RegisterSegment(tag uint16, name string, naval bool, decode SegmentDecoder, encode SegmentEncoder) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[tag] = segmentDef{Tag: tag, Name: name, Naval: naval, Decode: decode, Encode: encode}
}

func lookupSegment(tag uint16) (segmentDef, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	def, ok := registry[tag]
	return def, ok
}

// encodeOrder returns every registered tag in ascending numeric order, the
// canonical order known-tag encoders run in.
func encodeOrder() []uint16 {
	registryMu.RLock()
	defer registryMu.RUnlock()
	tags := make([]uint16, 0, len(registry))
	for tag := range registry {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}
