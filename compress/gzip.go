package compress

import (
	"bytes"
	"io"

	kgzip "github.com/klauspost/compress/gzip"
)

// GzipCompress writes data as a gzip stream, used for backup snapshot
// sidecar files (*.sav.gz).
func GzipCompress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := kgzip.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return nil, &DeflateError{Inner: err}
	}
	if err := zw.Close(); err != nil {
		return nil, &DeflateError{Inner: err}
	}
	return buf.Bytes(), nil
}

// GzipDecompress inflates a gzip stream produced by GzipCompress.
func GzipDecompress(data []byte) ([]byte, error) {
	zr, err := kgzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, &DeflateError{Inner: err}
	}
	defer zr.Close()
	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, &DeflateError{Inner: err}
	}
	return out, nil
}
