// Package verify implements the correctness gate that every backend must
// pass before its measurements are trusted.
//
// The gate is a sanity check, not a certification: a fixed, small set of
// literal vectors is pushed through every backend's compress → decompress →
// compress cycle. Any violation aborts the whole run, because an incorrect
// backend would silently corrupt every downstream number. There is no
// per-backend skip: an unverified backend must never appear in the output.
package verify

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/arloliu/prefixbench/backend"
)

// MinBackends is the smallest set worth comparing. Fewer registered backends
// means the environment is so degraded that the comparison is meaningless.
const MinBackends = 3

// vectors probe the tricky cases: a single byte, and a short input holding
// both a null byte and a high-value byte to catch binary-unsafe backends.
// They are independent of the benchmark corpus.
var vectors = [][]byte{
	[]byte("x"),
	[]byte("short\x00example\xff"),
}

// Gate verifies that every backend in the set round-trips losslessly and
// compresses deterministically.
//
// On success it logs a single summary naming the verified backends and
// returns nil without transforming anything. Any failure returns an error
// naming the offending backend and the failed check.
func Gate(set *backend.Set, logger *slog.Logger) error {
	if set.Len() < MinBackends {
		return fmt.Errorf("only %d backend(s) registered, need at least %d for a meaningful comparison", set.Len(), MinBackends)
	}
	if err := set.Validate(); err != nil {
		return err
	}

	for _, vector := range vectors {
		for _, b := range set.Backends() {
			if err := check(b, vector); err != nil {
				return err
			}
		}
	}

	logger.Info("sanity check passed", "backends", strings.Join(set.Names(), ", "))

	return nil
}

// check runs one backend through the full cycle for one vector.
func check(b backend.Backend, vector []byte) error {
	compressed, err := b.Codec.Compress(vector)
	if err != nil {
		return fmt.Errorf("backend %q: compress failed: %w", b.Name, err)
	}

	decompressed, err := b.Codec.Decompress(compressed)
	if err != nil {
		return fmt.Errorf("backend %q: decompress failed: %w", b.Name, err)
	}
	if !bytes.Equal(decompressed, vector) {
		return fmt.Errorf("backend %q: round-trip mismatch: got %q, want %q", b.Name, decompressed, vector)
	}

	recompressed, err := b.Codec.Compress(decompressed)
	if err != nil {
		return fmt.Errorf("backend %q: recompress failed: %w", b.Name, err)
	}
	if !bytes.Equal(recompressed, compressed) {
		return fmt.Errorf("backend %q: non-deterministic compression: recompressing the recovered input did not reproduce the original output", b.Name)
	}

	return nil
}
