package httpx

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
)

// maxDecodedSize bounds how much decoded body is read for inspection.
const maxDecodedSize = 1 << 20

// DecodeChain decodes a body according to a Content-Encoding value, applying
// chained encodings ("gzip, br") right to left. Supported: br, gzip, zstd and
// deflate (zlib wrapped or raw). The decoded output is capped at 1MB.
func DecodeChain(ce string, body []byte) ([]byte, bool, error) {
	if strings.TrimSpace(ce) == "" {
		return body, false, nil
	}
	compressions := strings.Split(ce, ",")
	changed := false
	for i := len(compressions) - 1; i >= 0; i-- {
		switch strings.TrimSpace(strings.ToLower(compressions[i])) {
		case "br":
			r := brotli.NewReader(bytes.NewReader(body))
			var err error
			body, err = readLimited(r)
			if err != nil {
				return nil, false, err
			}
			changed = true
		case "gzip":
			gr, err := gzip.NewReader(bytes.NewReader(body))
			if err != nil {
				return nil, false, err
			}
			out, err := readLimited(gr)
			cerr := gr.Close()
			if err != nil {
				return nil, false, err
			}
			if cerr != nil {
				return nil, false, cerr
			}
			body = out
			changed = true
		case "zstd":
			dec, err := zstd.NewReader(bytes.NewReader(body))
			if err != nil {
				return nil, false, err
			}
			out, err := readLimited(dec)
			dec.Close()
			if err != nil {
				return nil, false, err
			}
			body = out
			changed = true
		case "deflate":
			// Try zlib-wrapped first (RFC)
			zr, err := zlib.NewReader(bytes.NewReader(body))
			if err == nil {
				out, err2 := readLimited(zr)
				cerr := zr.Close()
				if err2 != nil {
					return nil, false, err2
				}
				if cerr != nil {
					return nil, false, cerr
				}
				body = out
				changed = true
				break
			}
			// Fallback to raw DEFLATE
			fr := flate.NewReader(bytes.NewReader(body))
			out, err2 := readLimited(fr)
			cerr := fr.Close()
			if err2 != nil {
				return nil, false, err2
			}
			if cerr != nil {
				return nil, false, cerr
			}
			body = out
			changed = true
		case "compress", "identity":
			// No action
		case "":
			// Skip empty segment
		default:
			return nil, false, fmt.Errorf("unsupported content-encoding: %q", compressions[i])
		}
	}
	return body, changed, nil
}

func readLimited(r io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r, maxDecodedSize))
}
