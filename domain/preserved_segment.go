package domain

// PreservedSegment is an opaque, unrecognized segment retained verbatim so
// that write reproduces it byte-for-byte at its original stream position.
type PreservedSegment struct {
	Tag     uint16
	Payload []byte
}
