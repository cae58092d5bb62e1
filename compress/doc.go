// Package compress provides the compression codecs compared by prefixbench.
//
// Every codec implements the same contract: Compress and Decompress both take
// a fully materialized byte payload and return a fully materialized result.
// There is no streaming surface; the benchmark measures "what does compressing
// exactly these bytes cost", so each call is an independent, from-scratch
// compression of its input.
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Concrete codecs:
//   - NoOpCompressor: the identity baseline (the "none" column)
//   - GzipCompressor, ZlibCompressor: klauspost/compress DEFLATE variants
//   - S2Compressor: klauspost/compress S2 block format
//   - ZstdCompressor: klauspost/compress Zstandard (pure Go)
//   - GozstdCompressor: valyala/gozstd (libzstd via cgo, only when built with cgo)
//   - LZ4Compressor: pierrec/lz4 frame format
//   - BrotliCompressor: andybalholm/brotli
//   - ExternCodec: an external tool invoked as a blocking subprocess
//
// # Requirements on implementations
//
// Decompress must be the left-inverse of Compress, and Compress must be a
// pure, deterministic function of its input: the same bytes always produce
// byte-identical output. The verify package checks both properties before any
// codec's measurements are trusted.
package compress
