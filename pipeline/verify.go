package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/tavernkeep/savecore/binio"
	"github.com/tavernkeep/savecore/codec"
)

// VerifyIntegrity opens path and confirms its envelope magic and header
// version are plausible, without decompressing or decoding anything past
// the header. It is the cheap check step 7 of the save protocol uses, and
// is safe to call standalone against any file claiming to be a save.
func VerifyIntegrity(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("pipeline: verify: %w", err)
	}
	defer f.Close()

	r := binio.NewReader(f)
	ctx := context.Background()

	magic, err := r.Bytes(ctx, 4, 4)
	if err != nil {
		return fmt.Errorf("pipeline: verify: truncated magic: %w", err)
	}
	if string(magic) != string(codec.Magic[:]) {
		return fmt.Errorf("pipeline: verify: %w", codec.ErrInvalidMagic)
	}

	headerVersion, err := r.I32(ctx)
	if err != nil {
		return fmt.Errorf("pipeline: verify: truncated header version: %w", err)
	}
	if headerVersion < codec.MinHeaderVersion || headerVersion > codec.MaxHeaderVersion {
		return fmt.Errorf("pipeline: verify: %w", codec.ErrUnsupportedVersion)
	}
	return nil
}

// Checksum returns the lowercase hex SHA-256 digest of the entire file at
// path — the stronger post-write equality check for callers that configure
// it in place of (or alongside) VerifyIntegrity.
func Checksum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("pipeline: checksum: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("pipeline: checksum: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
