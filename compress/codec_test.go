package compress

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// getAllCodecs returns every built-in codec available in this build.
func getAllCodecs() map[string]Codec {
	codecs := map[string]Codec{
		"none":   NewNoOpCompressor(),
		"brotli": NewBrotliCompressor(),
		"gzip":   NewGzipCompressor(),
		"lz4":    NewLZ4Compressor(),
		"s2":     NewS2Compressor(),
		"zlib":   NewZlibCompressor(),
		"zstd":   NewZstdCompressor(),
	}
	if GozstdAvailable() {
		codecs["gozstd"] = NewGozstdCompressor()
	}

	return codecs
}

func TestNoOpCompressor_Identity(t *testing.T) {
	codec := NewNoOpCompressor()

	data := []byte{0x00, 0x01, 0x02, 0xFF, 0xFE, 0xFD}

	compressed, err := codec.Compress(data)
	require.NoError(t, err)
	require.Equal(t, data, compressed)
	require.Same(t, &data[0], &compressed[0]) // same slice, no copy

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, decompressed)
	require.Same(t, &compressed[0], &decompressed[0])
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{
			name: "single_byte",
			data: []byte("x"),
		},
		{
			name: "binary_safety",
			data: []byte("short\x00example\xff"),
		},
		{
			name: "small_text",
			data: []byte("Hello, World!"),
		},
		{
			name: "repeated_pattern",
			data: bytes.Repeat([]byte("ABCD"), 100),
		},
		{
			name: "pseudo_random",
			data: func() []byte {
				data := make([]byte, 4096)
				for i := range data {
					data[i] = byte((i*7 + i*i) % 256)
				}

				return data
			}(),
		},
		{
			name: "highly_compressible",
			data: make([]byte, 64*1024), // 64KB of zeros
		},
	}

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			for _, tc := range testCases {
				t.Run(tc.name, func(t *testing.T) {
					compressed, err := codec.Compress(tc.data)
					require.NoError(t, err)

					decompressed, err := codec.Decompress(compressed)
					require.NoError(t, err)
					require.Equal(t, tc.data, decompressed, "decompressed data must match original")
				})
			}
		})
	}
}

func TestAllCodecs_EmptyRoundTrip(t *testing.T) {
	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

// TestAllCodecs_Deterministic checks the property the correctness gate
// relies on: equal input always yields byte-identical output, including when
// recompressing a recovered payload.
func TestAllCodecs_Deterministic(t *testing.T) {
	vectors := [][]byte{
		[]byte("x"),
		[]byte("short\x00example\xff"),
		bytes.Repeat([]byte("determinism"), 64),
	}

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			for i, vector := range vectors {
				t.Run(fmt.Sprintf("vector_%d", i), func(t *testing.T) {
					first, err := codec.Compress(vector)
					require.NoError(t, err)

					second, err := codec.Compress(vector)
					require.NoError(t, err)
					require.Equal(t, first, second, "repeated compression must be byte-identical")

					decompressed, err := codec.Decompress(first)
					require.NoError(t, err)

					recompressed, err := codec.Compress(decompressed)
					require.NoError(t, err)
					require.Equal(t, first, recompressed, "recompressing recovered data must reproduce the output")
				})
			}
		})
	}
}

// TestFramedCodecs_InvalidData covers the codecs with self-describing
// framing, which must reject garbage instead of inventing output. The
// identity codec accepts anything by definition.
func TestFramedCodecs_InvalidData(t *testing.T) {
	framed := map[string]Codec{
		"gzip": NewGzipCompressor(),
		"lz4":  NewLZ4Compressor(),
		"s2":   NewS2Compressor(),
		"zlib": NewZlibCompressor(),
		"zstd": NewZstdCompressor(),
	}

	invalidInputs := []struct {
		name string
		data []byte
	}{
		{
			name: "random_bytes",
			data: []byte{0xFF, 0xFF, 0xFF, 0xFF},
		},
		{
			name: "text_as_compressed",
			data: []byte("this is not compressed data"),
		},
	}

	for codecName, codec := range framed {
		t.Run(codecName, func(t *testing.T) {
			for _, input := range invalidInputs {
				t.Run(input.name, func(t *testing.T) {
					_, err := codec.Decompress(input.data)
					require.Error(t, err)
				})
			}
		})
	}
}

func TestAllCodecs_InterfaceCompliance(t *testing.T) {
	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			require.Implements(t, (*Compressor)(nil), codec)
			require.Implements(t, (*Decompressor)(nil), codec)
			require.Implements(t, (*Codec)(nil), codec)
		})
	}
}

// TestCodecs_DistinctOutput guards the premise of duplicate-function
// detection: different algorithms produce different bytes for the same input.
func TestCodecs_DistinctOutput(t *testing.T) {
	input := bytes.Repeat([]byte("distinct output probe \x00\xff "), 32)

	outputs := make(map[string]string)
	for name, codec := range getAllCodecs() {
		compressed, err := codec.Compress(input)
		require.NoError(t, err)

		key := string(compressed)
		for other, otherKey := range outputs {
			require.NotEqual(t, otherKey, key, "codecs %q and %q produced identical output", name, other)
		}
		outputs[name] = key
	}
}
