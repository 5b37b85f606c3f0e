package codec

import (
	"context"

	"github.com/tavernkeep/savecore/binio"
	"github.com/tavernkeep/savecore/domain"
)

// Magic is the four-byte ASCII envelope signature "TWSV".
var Magic = [4]byte{'T', 'W', 'S', 'V'}

// MinHeaderVersion and MaxHeaderVersion bound the version-stable wire
// format this codec understands.
const (
	MinHeaderVersion = 1
	MaxHeaderVersion = 10
)

// envelope is the parsed prefix of a save file, before the body has been
// decompressed and walked as a segment stream.
type envelope struct {
	HeaderVersion   int32
	GameVersion     string
	Modules         []domain.ModuleRef
	MetadataRaw     []byte
	CompressedBody  []byte
	UncompressedLen int32
}

// readEnvelope parses magic through compressed_body from r. permissive
// relaxes the magic check to a warning instead of a hard failure.
func readEnvelope(ctx context.Context, r *binio.Reader, path string, permissive bool) (*envelope, []string, error) {
	var warnings []string

	magic, err := r.Bytes(ctx, 4, 4)
	if err != nil {
		return nil, warnings, wrapErr(ErrTruncatedHeader, path, err)
	}
	if string(magic) != string(Magic[:]) {
		if !permissive {
			return nil, warnings, wrapErr(ErrInvalidMagic, path, nil)
		}
		warnings = append(warnings, "envelope: magic mismatch, continuing in permissive mode")
	}

	headerVersion, err := r.I32(ctx)
	if err != nil {
		return nil, warnings, wrapErr(ErrTruncatedHeader, path, err)
	}

	gameVersion, err := r.String(ctx)
	if err != nil {
		return nil, warnings, wrapErr(ErrInvalidString, path, err)
	}

	moduleCount, err := r.I32(ctx)
	if err != nil {
		return nil, warnings, wrapErr(ErrTruncatedHeader, path, err)
	}
	if moduleCount < 0 || moduleCount > 1<<20 {
		return nil, warnings, wrapErr(ErrTruncatedHeader, path, nil)
	}
	modules := make([]domain.ModuleRef, 0, moduleCount)
	for i := int32(0); i < moduleCount; i++ {
		id, err := r.String(ctx)
		if err != nil {
			return nil, warnings, wrapErr(ErrInvalidString, path, err)
		}
		ver, err := r.String(ctx)
		if err != nil {
			return nil, warnings, wrapErr(ErrInvalidString, path, err)
		}
		isOfficial, err := r.Bool(ctx)
		if err != nil {
			return nil, warnings, wrapErr(ErrTruncatedHeader, path, err)
		}
		modules = append(modules, domain.ModuleRef{Id: id, Version: ver, IsOfficial: isOfficial})
	}

	metadataLen, err := r.I32(ctx)
	if err != nil {
		return nil, warnings, wrapErr(ErrTruncatedHeader, path, err)
	}
	metadataRaw, err := r.Bytes(ctx, int(metadataLen), binio.DefaultMaxString)
	if err != nil {
		return nil, warnings, wrapErr(ErrInvalidString, path, err)
	}

	compressedLen, err := r.I32(ctx)
	if err != nil {
		return nil, warnings, wrapErr(ErrTruncatedHeader, path, err)
	}
	uncompressedLen, err := r.I32(ctx)
	if err != nil {
		return nil, warnings, wrapErr(ErrTruncatedHeader, path, err)
	}
	compressedBody, err := r.Bytes(ctx, int(compressedLen), binio.DefaultMaxBlob)
	if err != nil {
		return nil, warnings, wrapErr(ErrTruncatedBody, path, err)
	}

	return &envelope{
		HeaderVersion:   headerVersion,
		GameVersion:     gameVersion,
		Modules:         modules,
		MetadataRaw:     metadataRaw,
		CompressedBody:  compressedBody,
		UncompressedLen: uncompressedLen,
	}, warnings, nil
}

// writeEnvelope emits magic through compressed_body to w.
func writeEnvelope(w *binio.Writer, env *envelope) error {
	if err := w.Bytes(Magic[:]); err != nil {
		return err
	}
	if err := w.I32(env.HeaderVersion); err != nil {
		return err
	}
	if err := w.String(env.GameVersion); err != nil {
		return err
	}
	if err := w.I32(int32(len(env.Modules))); err != nil {
		return err
	}
	for _, m := range env.Modules {
		if err := w.String(m.Id); err != nil {
			return err
		}
		if err := w.String(m.Version); err != nil {
			return err
		}
		if err := w.Bool(m.IsOfficial); err != nil {
			return err
		}
	}
	if err := w.I32(int32(len(env.MetadataRaw))); err != nil {
		return err
	}
	if err := w.Bytes(env.MetadataRaw); err != nil {
		return err
	}
	if err := w.I32(int32(len(env.CompressedBody))); err != nil {
		return err
	}
	if err := w.I32(env.UncompressedLen); err != nil {
		return err
	}
	return w.Bytes(env.CompressedBody)
}
