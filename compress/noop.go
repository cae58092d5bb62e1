package compress

// NoOpCompressor is the identity codec and the mandatory baseline of every
// benchmark run: its "compressed" size is exactly the input size, so every
// other column can be read against it.
//
// It is always available, registered first under the name "none", and
// guarantees the backend set is never empty.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates the identity codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input slice as-is, without processing or copying.
//
// The returned slice shares the input's underlying memory; callers must not
// mutate the input afterwards if they keep the result.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as-is, without processing or copying.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
