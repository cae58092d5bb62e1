// Package fingerprint derives a stable identity for a compression function
// from its observable behavior.
//
// Go method values carry no usable per-instance identity (code pointers are
// shared between instances and may be deduplicated by the linker), so the
// "no two backends share a compression function" invariant is checked
// behaviorally instead: two compressors that produce byte-identical output
// for the fixed probe inputs are treated as the same function.
package fingerprint

import (
	"bytes"
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// probes are fixed for the lifetime of the process so fingerprints are
// comparable across backends. They are deliberately unrelated to the sanity
// vectors used by the correctness gate, and large enough that match finding
// and entropy coding kick in: two independent implementations of the same
// format (e.g. pure Go zstd and libzstd) must still fingerprint apart, and
// for trivially small inputs the format can force both onto the same bytes.
var probes = [][]byte{
	bytes.Repeat([]byte("prefixbench fingerprint probe \x00\xff"), 24),
	binaryProbe(),
}

func binaryProbe() []byte {
	probe := make([]byte, 256)
	for i := range probe {
		probe[i] = byte(i*7 + i*i)
	}

	return probe
}

type compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Compressor returns the xxHash64 of the compressor's outputs on the fixed
// probe inputs. Each output is length-prefixed so distinct output sequences
// can never collide by concatenation.
func Compressor(c compressor) (uint64, error) {
	digest := xxhash.New()
	var prefix [8]byte
	for _, probe := range probes {
		out, err := c.Compress(probe)
		if err != nil {
			return 0, err
		}
		binary.BigEndian.PutUint64(prefix[:], uint64(len(out)))
		_, _ = digest.Write(prefix[:])
		_, _ = digest.Write(out)
	}

	return digest.Sum64(), nil
}
