package codec

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/tavernkeep/savecore/binio"
	"github.com/tavernkeep/savecore/compress"
	"github.com/tavernkeep/savecore/domain"
	"github.com/tavernkeep/savecore/saveconf"
	"github.com/tavernkeep/savecore/saveevents"
	"github.com/tavernkeep/savecore/savelog"
)

// SaveInfo is the cheap, body-free result of LoadInfo: everything a
// directory listing needs without paying for decompression.
type SaveInfo struct {
	Path              string
	FileSize          int64
	LastModified       time.Time
	Header            domain.Header
	ModuleIDs         []string
	HasNavalExpansion bool
	CharacterName     string
	Level             int
	Day               int32
	PlayTime          int64
	ClanName          string
	Gold              int64
}

// LoadInfo opens path, reads magic through metadata, and closes — never
// decompressing the body. Used for directory discovery. conf is optional;
// omitting it uses saveconf.Default().
func LoadInfo(ctx context.Context, path string, conf ...saveconf.Config) (*SaveInfo, error) {
	cfg := saveconf.Default()
	if len(conf) > 0 {
		cfg = conf[0]
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, wrapErr(ErrFileNotFound, path, err)
		}
		return nil, wrapErr(ErrTruncatedHeader, path, err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, wrapErr(ErrTruncatedHeader, path, err)
	}

	r := binio.NewReader(f)
	r.MaxString = cfg.MaxStringBytes
	env, _, err := readEnvelope(ctx, r, path, true)
	if err != nil {
		return nil, err
	}
	meta, _ := decodeMetadata(env.MetadataRaw)

	moduleIDs := make([]string, len(env.Modules))
	for i, m := range env.Modules {
		moduleIDs[i] = m.Id
	}

	return &SaveInfo{
		Path:              path,
		FileSize:          stat.Size(),
		LastModified:      stat.ModTime(),
		Header:            domain.Header{HeaderVersion: env.HeaderVersion, GameVersion: env.GameVersion, Modules: env.Modules},
		ModuleIDs:         moduleIDs,
		HasNavalExpansion: detectNavalExpansion(env.Modules, cfg),
		CharacterName:     meta.CharacterName,
		Level:             meta.MainHeroLevel,
		Day:               meta.Day,
		PlayTime:          meta.PlayTime,
		ClanName:          meta.ClanName,
		Gold:              meta.Gold,
	}, nil
}

// Load performs a full parse of path into a domain.Save.
func Load(ctx context.Context, path string, opts LoadOptions) (*domain.Save, []string, error) {
	conf := opts.configOrDefault()

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, wrapErr(ErrFileNotFound, path, err)
		}
		return nil, nil, wrapErr(ErrTruncatedHeader, path, err)
	}
	defer f.Close()

	r := binio.NewReader(f)
	r.MaxString = conf.MaxStringBytes
	env, warnings, err := readEnvelope(ctx, r, path, opts.Permissive)
	if err != nil {
		return nil, warnings, err
	}

	save := domain.NewSave()
	save.Header = domain.Header{HeaderVersion: env.HeaderVersion, GameVersion: env.GameVersion, Modules: env.Modules}
	save.HasNavalExpansion = detectNavalExpansion(env.Modules, conf)

	meta, metaWarnings := decodeMetadata(env.MetadataRaw)
	save.Metadata = meta
	warnings = append(warnings, metaWarnings...)

	if save.Header.HeaderVersion < MinHeaderVersion || save.Header.HeaderVersion > MaxHeaderVersion {
		if !opts.Permissive {
			return nil, warnings, wrapErr(ErrUnsupportedVersion, path, nil)
		}
		warnings = append(warnings, "header: version outside [1,10], continuing in permissive mode")
	}

	if opts.MetadataOnly {
		saveevents.Default.EmitSaveLoaded(saveevents.SaveLoaded{Path: path})
		return save, warnings, nil
	}

	expected := -1
	if env.UncompressedLen > 0 {
		expected = int(env.UncompressedLen)
	}
	body, err := compress.Decompress(env.CompressedBody, expected, conf.MaxDecompressBytes)
	if err != nil {
		return nil, warnings, wrapErr(ErrDecompressionFailed, path, err)
	}
	if opts.KeepRawBody {
		save.RawBody = body
	}

	bodyWarnings, err := decodeBody(ctx, body, save, conf.MaxSegmentBytes, opts.Permissive)
	warnings = append(warnings, bodyWarnings...)
	if err != nil {
		return nil, warnings, err
	}

	savelog.Info("save loaded",
		savelog.F("path", path),
		savelog.F("heroes", save.Heroes.Len()),
		savelog.F("parties", save.Parties.Len()))
	saveevents.Default.EmitSaveLoaded(saveevents.SaveLoaded{Path: path})
	return save, warnings, nil
}

// decodeBody walks the segment stream, dispatching known tags to their
// registered decoder and preserving unknown tags (or naval tags on a save
// without the naval expansion) verbatim in original order.
func decodeBody(ctx context.Context, body []byte, save *domain.Save, maxSegmentBytes int, permissive bool) ([]string, error) {
	var warnings []string
	r := binio.NewReader(bytes.NewReader(body))
	for {
		if err := ctx.Err(); err != nil {
			return warnings, wrapErr(ErrCancelled, "", err)
		}
		tag, err := r.U16(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break // clean EOF at a segment boundary
			}
			if permissive {
				warnings = append(warnings, "body: truncated trailing segment, stopping")
				break
			}
			return warnings, wrapErr(ErrTruncatedBody, "", err)
		}
		size, err := r.I32(ctx)
		if err != nil {
			if permissive {
				warnings = append(warnings, "body: truncated trailing segment, stopping")
				break
			}
			return warnings, wrapErr(ErrTruncatedBody, "", err)
		}
		if size < 0 || int(size) > maxSegmentBytes {
			return warnings, wrapErr(ErrSegmentTooLarge, "", nil)
		}
		payload, err := r.Bytes(ctx, int(size), maxSegmentBytes)
		if err != nil {
			if permissive {
				warnings = append(warnings, "body: truncated trailing segment, stopping")
				break
			}
			return warnings, wrapErr(ErrTruncatedBody, "", err)
		}

		def, known := lookupSegment(tag)
		if !known || (def.Naval && !save.HasNavalExpansion) {
			save.PreservedSegments = append(save.PreservedSegments, domain.PreservedSegment{Tag: tag, Payload: payload})
			continue
		}
		if err := def.Decode(ctx, payload, save); err != nil {
			warnings = append(warnings, "segment "+def.Name+" decode failed, preserving opaquely: "+err.Error())
			save.PreservedSegments = append(save.PreservedSegments, domain.PreservedSegment{Tag: tag, Payload: payload})
		}
	}
	return warnings, nil
}

// encodeBody serializes save's known segments in canonical tag order,
// followed by preserved passthrough segments in their original order.
func encodeBody(ctx context.Context, save *domain.Save) ([]byte, error) {
	var buf bytes.Buffer
	w := binio.NewWriter(&buf)

	for _, tag := range encodeOrder() {
		def, _ := lookupSegment(tag)
		if def.Naval && !save.HasNavalExpansion {
			continue
		}
		payload, err := def.Encode(ctx, save)
		if err != nil {
			return nil, err
		}
		if payload == nil {
			continue
		}
		if err := w.U16(tag); err != nil {
			return nil, err
		}
		if err := w.I32(int32(len(payload))); err != nil {
			return nil, err
		}
		if err := w.Bytes(payload); err != nil {
			return nil, err
		}
	}

	for _, seg := range save.PreservedSegments {
		if err := w.U16(seg.Tag); err != nil {
			return nil, err
		}
		if err := w.I32(int32(len(seg.Payload))); err != nil {
			return nil, err
		}
		if err := w.Bytes(seg.Payload); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}

// Write performs a full, non-transactional envelope+body write to path.
// The transactional backup/verify/atomic-rename protocol lives in the
// pipeline package, which calls Write against a temp file.
func Write(ctx context.Context, save *domain.Save, path string, opts WriteOptions) error {
	body, err := encodeBody(ctx, save)
	if err != nil {
		return err
	}
	compressedBody, err := compress.Compress(body, opts.CompressionLevel)
	if err != nil {
		return err
	}
	metadataRaw, err := encodeMetadata(save.Metadata)
	if err != nil {
		return err
	}

	env := &envelope{
		HeaderVersion:   save.Header.HeaderVersion,
		GameVersion:     save.Header.GameVersion,
		Modules:         save.Header.Modules,
		MetadataRaw:     metadataRaw,
		CompressedBody:  compressedBody,
		UncompressedLen: int32(len(body)),
	}

	f, err := os.Create(path)
	if err != nil {
		return wrapErr(ErrTruncatedHeader, path, err)
	}
	defer f.Close()

	w := binio.NewWriter(f)
	if err := writeEnvelope(w, env); err != nil {
		return wrapErr(ErrTruncatedBody, path, err)
	}
	return nil
}
