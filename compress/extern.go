package compress

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// ExternCodec realizes a codec by invoking an external compression tool as a
// blocking subprocess.
//
// Each call writes the full input to the tool's standard input, waits for the
// process to terminate, and takes its full standard output as the result.
// There is no streaming and no partial read. Decompression is selected by the
// tool's flag convention, "-d" unless overridden.
//
// A non-zero exit is always surfaced as an error carrying the tool's stderr;
// it is never treated as empty output. A hanging tool hangs the run, which is
// an accepted property of an offline benchmark.
type ExternCodec struct {
	// Path is the executable to invoke. It may be a bare name resolved via
	// PATH or an explicit file path.
	Path string

	// CompressArgs and DecompressArgs are the argument lists for the two
	// modes. CompressArgs is typically empty.
	CompressArgs   []string
	DecompressArgs []string
}

var _ Codec = (*ExternCodec)(nil)

// NewExternCodec creates a codec invoking the given executable, using no
// arguments to compress and "-d" to decompress.
func NewExternCodec(path string) *ExternCodec {
	return &ExternCodec{
		Path:           path,
		DecompressArgs: []string{"-d"},
	}
}

// Compress runs the tool in compression mode over the input payload.
func (c *ExternCodec) Compress(data []byte) ([]byte, error) {
	return c.run(c.CompressArgs, data)
}

// Decompress runs the tool in decompression mode over the input payload.
func (c *ExternCodec) Decompress(data []byte) ([]byte, error) {
	return c.run(c.DecompressArgs, data)
}

func (c *ExternCodec) run(args []string, input []byte) ([]byte, error) {
	cmd := exec.Command(c.Path, args...)
	cmd.Stdin = bytes.NewReader(input)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		argv := strings.Join(append([]string{c.Path}, args...), " ")
		if stderr.Len() > 0 {
			return nil, fmt.Errorf("external tool %q failed: %w: %s", argv, err, bytes.TrimSpace(stderr.Bytes()))
		}

		return nil, fmt.Errorf("external tool %q failed: %w", argv, err)
	}

	return stdout.Bytes(), nil
}
