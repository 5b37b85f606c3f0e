package binio

import (
	"encoding/binary"
	"io"
	"math"
)

// Writer wraps an io.Writer with the little-endian primitives matching
// Reader's encodings, so that write-then-read round-trips exactly.
type Writer struct {
	w io.Writer
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Bool writes a single byte, 1 for true, 0 for false.
func (w *Writer) Bool(v bool) error {
	var b byte
	if v {
		b = 1
	}
	_, err := w.w.Write([]byte{b})
	return err
}

// U16 writes a little-endian uint16.
func (w *Writer) U16(v uint16) error {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	_, err := w.w.Write(buf[:])
	return err
}

// I32 writes a little-endian int32.
func (w *Writer) I32(v int32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(v))
	_, err := w.w.Write(buf[:])
	return err
}

// I64 writes a little-endian int64.
func (w *Writer) I64(v int64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	_, err := w.w.Write(buf[:])
	return err
}

// F32 writes a little-endian IEEE-754 float32.
func (w *Writer) F32(v float32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], math.Float32bits(v))
	_, err := w.w.Write(buf[:])
	return err
}

// Bytes writes raw bytes with no length prefix.
func (w *Writer) Bytes(b []byte) error {
	_, err := w.w.Write(b)
	return err
}

// String writes an i32-length-prefixed UTF-8 string.
func (w *Writer) String(s string) error {
	if err := w.I32(int32(len(s))); err != nil {
		return err
	}
	if len(s) == 0 {
		return nil
	}
	_, err := io.WriteString(w.w, s)
	return err
}
