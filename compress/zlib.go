// Package compress implements the ZLIB framing used around a save file's
// segment stream: a 2-byte header, a raw-deflate payload, and an Adler-32
// trailer. Compression and decompression are built on
// github.com/klauspost/compress/zlib, which exposes the same level knobs
// the save format's Level enum maps onto.
package compress

import (
	"bytes"
	"errors"
	"io"

	kzlib "github.com/klauspost/compress/zlib"
)

// Level selects a compression/speed trade-off for Compress.
type Level int

const (
	NoCompression Level = iota
	Fastest
	Optimal
	SmallestSize
)

func (l Level) toKlauspost() int {
	switch l {
	case NoCompression:
		return kzlib.NoCompression
	case Fastest:
		return kzlib.BestSpeed
	case Optimal:
		return kzlib.DefaultCompression
	case SmallestSize:
		return kzlib.BestCompression
	default:
		return kzlib.DefaultCompression
	}
}

// DefaultMaxDecompressBytes bounds unbounded-growth decompression when no
// expected size is supplied, guarding against adversarial inputs.
const DefaultMaxDecompressBytes = 512 * 1024 * 1024

// Errors returned by this package.
var (
	ErrInvalidHeader  = errors.New("compress: invalid zlib header")
	ErrTruncatedInput = errors.New("compress: truncated compressed input")
	ErrSizeMismatch   = errors.New("compress: decompressed size does not match expected size")
	ErrLimitExceeded  = errors.New("compress: decompressed size exceeds configured limit")
)

// DeflateError wraps an underlying flate/zlib failure.
type DeflateError struct {
	Inner error
}

func (e *DeflateError) Error() string { return "compress: deflate error: " + e.Inner.Error() }
func (e *DeflateError) Unwrap() error { return e.Inner }

// ValidateHeader reports whether the first two bytes of a zlib stream form
// a valid header: first byte's low nibble is the deflate compression
// method/window-size byte (0x78 for the standard 32K window), and the pair
// interpreted as a big-endian uint16 must be a multiple of 31 (the
// standard ZLIB FCHECK rule).
func ValidateHeader(two []byte) bool {
	if len(two) < 2 {
		return false
	}
	if two[0] != 0x78 {
		return false
	}
	word := uint16(two[0])<<8 | uint16(two[1])
	return word%31 == 0
}

// Compress returns a valid ZLIB stream (header + raw deflate + Adler-32
// trailer) for data at the given level.
func Compress(data []byte, level Level) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := kzlib.NewWriterLevel(&buf, level.toKlauspost())
	if err != nil {
		return nil, &DeflateError{Inner: err}
	}
	if _, err := zw.Write(data); err != nil {
		return nil, &DeflateError{Inner: err}
	}
	if err := zw.Close(); err != nil {
		return nil, &DeflateError{Inner: err}
	}
	return buf.Bytes(), nil
}

// Decompress inflates a ZLIB stream. When expectedSize is non-negative the
// output buffer is pre-sized to it and the result length must equal it
// exactly (ErrSizeMismatch otherwise). When expectedSize is negative,
// growth is bounded by maxBytes (pass 0 to use DefaultMaxDecompressBytes).
func Decompress(data []byte, expectedSize int, maxBytes int) ([]byte, error) {
	if len(data) < 2 || !ValidateHeader(data[:2]) {
		return nil, ErrInvalidHeader
	}
	zr, err := kzlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, &DeflateError{Inner: err}
	}
	defer zr.Close()

	if expectedSize >= 0 {
		out := make([]byte, expectedSize)
		n, err := io.ReadFull(zr, out)
		if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
			return nil, &DeflateError{Inner: err}
		}
		if n != expectedSize {
			return nil, ErrSizeMismatch
		}
		// Confirm there is no trailing data beyond expectedSize.
		var extra [1]byte
		if m, _ := zr.Read(extra[:]); m > 0 {
			return nil, ErrSizeMismatch
		}
		return out, nil
	}

	if maxBytes <= 0 {
		maxBytes = DefaultMaxDecompressBytes
	}
	limited := io.LimitReader(zr, int64(maxBytes)+1)
	out, err := io.ReadAll(limited)
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrTruncatedInput
		}
		return nil, &DeflateError{Inner: err}
	}
	if len(out) > maxBytes {
		return nil, ErrLimitExceeded
	}
	return out, nil
}
