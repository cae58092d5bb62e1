// Package backend builds the ordered set of compression backends compared by
// a benchmark run.
//
// A fixed catalog of candidates is probed once for availability; unavailable
// candidates are skipped with a diagnostic, available ones are prepared (if
// needed) and registered. The resulting Set upholds two invariants by
// construction: backend names are pairwise distinct, and no two backends
// share the same compression behavior (accidental double registration of one
// algorithm under two names is a configuration error, not a third column).
package backend

import (
	"fmt"

	"github.com/arloliu/prefixbench/compress"
	"github.com/arloliu/prefixbench/internal/fingerprint"
)

// Backend is a named compress/decompress pair under comparison.
// Immutable after construction.
type Backend struct {
	Name  string
	Codec compress.Codec

	// fp identifies the compression behavior; see internal/fingerprint.
	fp uint64
}

// Set is an ordered collection of backends. The order is the candidate
// declaration order and defines the column order of the result table.
type Set struct {
	backends []Backend
}

// NewSet creates an empty backend set.
func NewSet() *Set {
	return &Set{}
}

// Add registers a backend, enforcing the name- and function-uniqueness
// invariants. Fingerprinting invokes the codec's Compress on fixed probe
// inputs, so a codec that cannot compress at all is rejected here.
func (s *Set) Add(name string, codec compress.Codec) error {
	fp, err := fingerprint.Compressor(codec)
	if err != nil {
		return fmt.Errorf("fingerprint backend %q: %w", name, err)
	}

	for _, b := range s.backends {
		if b.Name == name {
			return fmt.Errorf("duplicate backend name %q", name)
		}
		if b.fp == fp {
			return fmt.Errorf("backend %q duplicates the compression function of %q", name, b.Name)
		}
	}

	s.backends = append(s.backends, Backend{Name: name, Codec: codec, fp: fp})

	return nil
}

// Backends returns the registered backends in registration order.
// The returned slice is owned by the set and must not be modified.
func (s *Set) Backends() []Backend {
	return s.backends
}

// Len returns the number of registered backends.
func (s *Set) Len() int {
	return len(s.backends)
}

// Names returns the backend names in registration order.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.backends))
	for _, b := range s.backends {
		names = append(names, b.Name)
	}

	return names
}

// Validate re-checks the uniqueness invariants. Add upholds them by
// construction; the correctness gate still re-validates as a precondition
// before trusting the set.
func (s *Set) Validate() error {
	seenName := make(map[string]struct{}, len(s.backends))
	seenFP := make(map[uint64]string, len(s.backends))
	for _, b := range s.backends {
		if _, ok := seenName[b.Name]; ok {
			return fmt.Errorf("duplicate backend name %q", b.Name)
		}
		seenName[b.Name] = struct{}{}

		if prev, ok := seenFP[b.fp]; ok {
			return fmt.Errorf("backend %q duplicates the compression function of %q", b.Name, prev)
		}
		seenFP[b.fp] = b.Name
	}

	return nil
}
