// Package bench measures compressed size across every prefix of a corpus.
//
// Each prefix is compressed from scratch with one independent call per
// backend: consecutive prefixes share no compression state, so every value
// answers "what would compressing exactly this many bytes cost" rather than
// reflecting streaming artifacts. That makes the loop O(N) compress calls per
// backend with a total cost that can reach O(N^2) or worse in the corpus
// length. The corpus is small and the tool is offline; caching partial state
// between prefixes would change what is measured and must not be added.
package bench

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/arloliu/prefixbench/backend"
)

// Table holds the benchmark results: one column per backend in registration
// order, one row per prefix length from 0 to the corpus length inclusive.
// Rows are appended in a single forward pass and never revisited.
type Table struct {
	// Header lists the backend names, defining the column order.
	Header []string

	// Rows[i][j] is the compressed size of the i-byte corpus prefix under
	// backend j.
	Rows [][]int
}

// Run compresses every prefix of the corpus under every backend and returns
// the completed table with len(corpus)+1 rows, including the empty prefix.
//
// The set must already have passed the correctness gate; Run itself only
// fails if a compress call errors, which aborts with no partial table.
func Run(set *backend.Set, corpus []byte) (*Table, error) {
	table := &Table{
		Header: set.Names(),
		Rows:   make([][]int, 0, len(corpus)+1),
	}

	for i := 0; i <= len(corpus); i++ {
		prefix := corpus[:i]
		row := make([]int, 0, set.Len())
		for _, b := range set.Backends() {
			compressed, err := b.Codec.Compress(prefix)
			if err != nil {
				return nil, fmt.Errorf("backend %q: compress %d-byte prefix: %w", b.Name, i, err)
			}
			row = append(row, len(compressed))
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// WriteCSV writes the table as newline-separated rows: first the comma-joined
// backend names, then one row of comma-joined decimal sizes per prefix
// length. Only data rows go to w; diagnostics belong on the error stream.
func (t *Table) WriteCSV(w io.Writer) error {
	bw := bufio.NewWriter(w)

	for i, name := range t.Header {
		if i > 0 {
			_ = bw.WriteByte(',')
		}
		_, _ = bw.WriteString(name)
	}
	_ = bw.WriteByte('\n')

	for _, row := range t.Rows {
		for i, size := range row {
			if i > 0 {
				_ = bw.WriteByte(',')
			}
			_, _ = bw.WriteString(strconv.Itoa(size))
		}
		_ = bw.WriteByte('\n')
	}

	// Write errors on a bufio.Writer are sticky; Flush reports the first one.
	return bw.Flush()
}
