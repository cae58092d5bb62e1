package backend

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/arloliu/prefixbench/compress"
)

// Candidate describes one entry of the static backend catalog.
//
// Available is probed exactly once, when the catalog is built, and recorded
// as a plain boolean: registry construction consumes only the recorded value
// and never re-probes mid-run.
type Candidate struct {
	// Name is the unique backend identifier, used as the column header.
	Name string

	// Available records whether the candidate's underlying capability exists
	// in this environment. Unavailable candidates are skipped with a
	// diagnostic, never constructed.
	Available bool

	// Prepare is an optional one-time preparation step (e.g. building an
	// external tool). It runs before the codec is constructed; failure is
	// fatal, because a candidate that claims availability but cannot prepare
	// is a configuration error rather than a soft-skip condition.
	Prepare func() error

	// New constructs the candidate's codec. Called at most once, and only
	// when Available is true and Prepare (if any) succeeded.
	New func() compress.Codec
}

// CatalogOptions configures the optional external-tool candidate of the
// default catalog. The zero value disables it.
type CatalogOptions struct {
	// ExternName is the backend name for the external tool.
	// Defaults to "extern".
	ExternName string

	// ExternCommand is the executable realizing the external backend: input
	// on stdin, output on stdout, "-d" for decompression. Empty disables the
	// candidate.
	ExternCommand string

	// ExternBuild is an optional argv run once as the candidate's
	// preparation step, e.g. the command that builds ExternCommand. When set,
	// the candidate counts as available and a build failure aborts the run.
	ExternBuild []string
}

// DefaultCatalog returns the fixed candidate catalog in declared order.
//
// The identity backend is always first and always available, so a registry
// built from this catalog is never empty. The catalog is a superset of what
// any one environment provides; gozstd requires a cgo build and the external
// tool requires explicit configuration.
func DefaultCatalog(opts CatalogOptions) []Candidate {
	catalog := []Candidate{
		{
			Name:      "none",
			Available: true,
			New:       func() compress.Codec { return compress.NewNoOpCompressor() },
		},
		{
			Name:      "brotli",
			Available: true,
			New:       func() compress.Codec { return compress.NewBrotliCompressor() },
		},
		{
			Name:      "gzip",
			Available: true,
			New:       func() compress.Codec { return compress.NewGzipCompressor() },
		},
		{
			Name:      "gozstd",
			Available: compress.GozstdAvailable(),
			New:       compress.NewGozstdCompressor,
		},
		{
			Name:      "lz4",
			Available: true,
			New:       func() compress.Codec { return compress.NewLZ4Compressor() },
		},
		{
			Name:      "s2",
			Available: true,
			New:       func() compress.Codec { return compress.NewS2Compressor() },
		},
		{
			Name:      "zlib",
			Available: true,
			New:       func() compress.Codec { return compress.NewZlibCompressor() },
		},
		{
			Name:      "zstd",
			Available: true,
			New:       func() compress.Codec { return compress.NewZstdCompressor() },
		},
	}

	if opts.ExternCommand != "" {
		catalog = append(catalog, externCandidate(opts))
	}

	return catalog
}

func externCandidate(opts CatalogOptions) Candidate {
	name := opts.ExternName
	if name == "" {
		name = "extern"
	}

	cand := Candidate{
		Name: name,
		New:  func() compress.Codec { return compress.NewExternCodec(opts.ExternCommand) },
	}

	if len(opts.ExternBuild) > 0 {
		// The build step provides the executable, so the candidate is
		// available by definition; a failing build is fatal in Prepare.
		cand.Available = true
		cand.Prepare = func() error { return runBuild(opts.ExternBuild) }
	} else {
		_, err := exec.LookPath(opts.ExternCommand)
		cand.Available = err == nil
	}

	return cand
}

// runBuild executes the one-time build command for an external tool. Both of
// the child's output streams go to stderr: stdout is reserved for data rows.
func runBuild(argv []string) error {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("build command %q failed: %w", strings.Join(argv, " "), err)
	}

	return nil
}
