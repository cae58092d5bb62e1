package compress

import "github.com/klauspost/compress/s2"

// S2Compressor uses the S2 block format, a Snappy-compatible design tuned for
// throughput over ratio. It is the "fast and cheap" end of the comparison.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses the input data as a single S2 block.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	return s2.Encode(nil, data), nil
}

// Decompress decompresses a single S2 block produced by Compress.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	return s2.Decode(nil, data)
}
