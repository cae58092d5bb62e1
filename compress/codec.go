package compress

// Compressor compresses a fully materialized byte payload.
//
// Compress must be a pure, deterministic function of its input: calling it
// twice with equal input must return byte-identical output. The correctness
// gate rejects any implementation that violates this.
//
// Memory management:
//   - The returned slice is owned by the caller
//   - The input slice is not modified
//   - Internal buffers may be reused between calls
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor recovers the original payload from compressed data.
//
// Decompress must be the left-inverse of the paired Compressor: for any input
// x, Decompress(Compress(x)) must equal x exactly. It validates the data
// format and returns an error if the input is corrupted or was produced by an
// incompatible codec; an error is never silently reported as empty output.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of one compression algorithm.
//
// A Codec is registered as a single unit: a backend either contributes both
// functions or neither.
type Codec interface {
	Compressor
	Decompressor
}

// GozstdAvailable reports whether the cgo-backed libzstd codec was compiled
// into this binary. The result is a build-time constant; it never changes at
// runtime and is probed exactly once when the candidate catalog is built.
func GozstdAvailable() bool {
	return gozstdAvailable
}
