//go:build cgo

package compress

import "github.com/valyala/gozstd"

const gozstdAvailable = true

// GozstdCompressor provides Zstandard compression through libzstd via cgo.
//
// It exists alongside ZstdCompressor on purpose: the C encoder and the pure
// Go encoder produce different streams at the same nominal level, and the
// benchmark puts both in their own columns. Without cgo the candidate is
// reported unavailable and skipped.
type GozstdCompressor struct{}

var _ Codec = (*GozstdCompressor)(nil)

// NewGozstdCompressor creates a new libzstd codec at compression level 3.
func NewGozstdCompressor() Codec {
	return GozstdCompressor{}
}

// Compress compresses the input data using libzstd at level 3.
func (c GozstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress decompresses libzstd-compressed data produced by Compress.
func (c GozstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
