// Package prefixbench compares byte-stream compression backends by measuring
// compressed size as a function of input length.
//
// A run has three strictly sequential phases:
//
//  1. Discovery: a fixed catalog of candidate backends is probed; available
//     ones are registered, missing ones are skipped with a diagnostic.
//  2. Correctness gate: every registered backend must round-trip a set of
//     sanity vectors losslessly and deterministically, or the run aborts.
//  3. Benchmark: every prefix of the corpus, from empty to full length, is
//     compressed under every verified backend, one CSV row per prefix.
//
// Data rows go to the output writer; all diagnostics go to the logger. A run
// either emits the complete table or aborts before the first data row —
// partial, unverified benchmark data is never produced.
package prefixbench

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/arloliu/prefixbench/backend"
	"github.com/arloliu/prefixbench/bench"
	"github.com/arloliu/prefixbench/verify"
)

// Options configures a benchmark run.
type Options struct {
	// CorpusPath is the file whose raw bytes form the benchmark corpus. The
	// file is read once in full and treated as opaque binary data. Required.
	CorpusPath string

	// Extern optionally registers an external compression tool as an extra
	// backend; see backend.CatalogOptions.
	Extern backend.CatalogOptions

	// Output receives the result table. Defaults to os.Stdout.
	Output io.Writer

	// Logger receives diagnostics: skipped candidates and the sanity-check
	// summary. Diagnostics are never interleaved into the data rows.
	// Defaults to slog.Default().
	Logger *slog.Logger
}

// Run executes a full benchmark: discovery, correctness gate, prefix loop,
// CSV output. The returned error is nil only when the complete table was
// written.
func Run(opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	output := opts.Output
	if output == nil {
		output = os.Stdout
	}

	corpus, err := os.ReadFile(opts.CorpusPath)
	if err != nil {
		return fmt.Errorf("read corpus: %w", err)
	}

	set, err := backend.Build(backend.DefaultCatalog(opts.Extern), logger)
	if err != nil {
		return err
	}

	if err := verify.Gate(set, logger); err != nil {
		return err
	}

	table, err := bench.Run(set, corpus)
	if err != nil {
		return err
	}

	return table.WriteCSV(output)
}
