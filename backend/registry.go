package backend

import (
	"fmt"
	"log/slog"
)

// Build constructs the ordered backend Set from the candidate catalog.
//
// Candidates are processed in declared order. Unavailable candidates are
// skipped with a named diagnostic and never cause a failure; operators rely
// on these diagnostics to know which backends were actually compared. An
// available candidate whose preparation step fails aborts the build, as does
// any violation of the Set uniqueness invariants.
func Build(catalog []Candidate, logger *slog.Logger) (*Set, error) {
	set := NewSet()
	for _, cand := range catalog {
		if !cand.Available {
			logger.Warn("skipping unavailable backend", "name", cand.Name)
			continue
		}

		if cand.Prepare != nil {
			if err := cand.Prepare(); err != nil {
				return nil, fmt.Errorf("prepare backend %q: %w", cand.Name, err)
			}
		}

		if err := set.Add(cand.Name, cand.New()); err != nil {
			return nil, err
		}
	}

	return set, nil
}
