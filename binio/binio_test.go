package binio_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tavernkeep/savecore/binio"
)

func TestPrimitiveRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := binio.NewWriter(&buf)
	require.NoError(t, w.Bool(true))
	require.NoError(t, w.U16(0xBEEF))
	require.NoError(t, w.I32(-12345))
	require.NoError(t, w.I64(-9_000_000_000))
	require.NoError(t, w.F32(3.5))
	require.NoError(t, w.String("hello, save"))

	ctx := context.Background()
	r := binio.NewReader(&buf)

	b, err := r.Bool(ctx)
	require.NoError(t, err)
	assert.True(t, b)

	u16, err := r.U16(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint16(0xBEEF), u16)

	i32, err := r.I32(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(-12345), i32)

	i64, err := r.I64(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(-9_000_000_000), i64)

	f32, err := r.F32(ctx)
	require.NoError(t, err)
	assert.Equal(t, float32(3.5), f32)

	s, err := r.String(ctx)
	require.NoError(t, err)
	assert.Equal(t, "hello, save", s)
}

func TestStringNonPositiveLengthIsEmpty(t *testing.T) {
	var buf bytes.Buffer
	w := binio.NewWriter(&buf)
	require.NoError(t, w.I32(-5))

	s, err := binio.NewReader(&buf).String(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", s)
}

func TestStringExceedingCapIsRejected(t *testing.T) {
	var buf bytes.Buffer
	w := binio.NewWriter(&buf)
	require.NoError(t, w.I32(1024))
	buf.Write(make([]byte, 1024))

	r := binio.NewReader(&buf)
	r.MaxString = 16
	_, err := r.String(context.Background())
	assert.ErrorIs(t, err, binio.ErrLimitExceeded)
}

func TestBytesExceedingCapIsRejectedBeforeAllocation(t *testing.T) {
	r := binio.NewReader(bytes.NewReader(nil))
	_, err := r.Bytes(context.Background(), 100, 10)
	assert.ErrorIs(t, err, binio.ErrLimitExceeded)
}

func TestReadRespectsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := binio.NewReader(bytes.NewReader([]byte{1, 2, 3, 4}))
	_, err := r.I32(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
