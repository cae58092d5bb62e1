package bench

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/arloliu/prefixbench/backend"
	"github.com/arloliu/prefixbench/compress"
	"github.com/arloliu/prefixbench/verify"
	"github.com/stretchr/testify/require"
)

// tagCodec compresses by prepending its tag byte: the compressed size of an
// i-byte prefix is exactly i+1, which makes row contents easy to assert.
type tagCodec struct {
	tag byte
}

func (c tagCodec) Compress(data []byte) ([]byte, error) {
	return append([]byte{c.tag}, data...), nil
}

func (c tagCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 || data[0] != c.tag {
		return nil, fmt.Errorf("tag codec 0x%02x: invalid input", c.tag)
	}

	return data[1:], nil
}

// trippingCodec works on every input except one specific length.
type trippingCodec struct {
	failLen int
}

func (c trippingCodec) Compress(data []byte) ([]byte, error) {
	if len(data) == c.failLen {
		return nil, fmt.Errorf("tripped at %d bytes", c.failLen)
	}

	return append([]byte{0xEE}, data...), nil
}

func (c trippingCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 || data[0] != 0xEE {
		return nil, fmt.Errorf("tripping codec: invalid input")
	}

	return data[1:], nil
}

func TestRun_IdentityOnlyScenario(t *testing.T) {
	set := backend.NewSet()
	require.NoError(t, set.Add("none", compress.NewNoOpCompressor()))

	table, err := Run(set, []byte("abc"))
	require.NoError(t, err)

	require.Equal(t, []string{"none"}, table.Header)
	require.Equal(t, [][]int{{0}, {1}, {2}, {3}}, table.Rows)

	var buf bytes.Buffer
	require.NoError(t, table.WriteCSV(&buf))
	require.Equal(t, "none\n0\n1\n2\n3\n", buf.String())
}

func TestRun_RowShape(t *testing.T) {
	set := backend.NewSet()
	require.NoError(t, set.Add("none", compress.NewNoOpCompressor()))
	require.NoError(t, set.Add("tag1", tagCodec{tag: 1}))
	require.NoError(t, set.Add("tag2", tagCodec{tag: 2}))

	corpus := bytes.Repeat([]byte{0x5A}, 16)

	table, err := Run(set, corpus)
	require.NoError(t, err)

	// N+1 rows, one value per backend per row, in header order.
	require.Len(t, table.Rows, len(corpus)+1)
	for i, row := range table.Rows {
		require.Len(t, row, set.Len())
		require.Equal(t, i, row[0], "identity column must equal the prefix length")
		require.Equal(t, i+1, row[1])
		require.Equal(t, i+1, row[2])
	}
}

func TestRun_EmptyCorpus(t *testing.T) {
	set := backend.NewSet()
	require.NoError(t, set.Add("none", compress.NewNoOpCompressor()))

	table, err := Run(set, nil)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0}}, table.Rows)
}

func TestRun_CompressErrorAborts(t *testing.T) {
	set := backend.NewSet()
	require.NoError(t, set.Add("none", compress.NewNoOpCompressor()))
	// Fingerprint probes are hundreds of bytes, so a codec failing only at
	// 3-byte input registers fine and trips mid-benchmark.
	require.NoError(t, set.Add("tripping", trippingCodec{failLen: 3}))

	table, err := Run(set, []byte("abcdef"))
	require.Error(t, err)
	require.Nil(t, table)
	require.Contains(t, err.Error(), `backend "tripping"`)
	require.Contains(t, err.Error(), "3-byte prefix")
}

func TestWriteCSV_MultiColumn(t *testing.T) {
	table := &Table{
		Header: []string{"none", "tag1"},
		Rows:   [][]int{{0, 1}, {1, 2}, {2, 3}},
	}

	var buf bytes.Buffer
	require.NoError(t, table.WriteCSV(&buf))
	require.Equal(t, "none,tag1\n0,1\n1,2\n2,3\n", buf.String())
}

// TestRun_RealBackends drives the verified default backends over a small
// binary corpus and checks the structural table properties.
func TestRun_RealBackends(t *testing.T) {
	logger, _ := testLogger(t)

	set, err := backend.Build(backend.DefaultCatalog(backend.CatalogOptions{}), logger)
	require.NoError(t, err)
	require.NoError(t, verify.Gate(set, logger))

	corpus := []byte("real backend corpus \x00\xff with some repetition repetition")

	table, err := Run(set, corpus)
	require.NoError(t, err)

	require.Equal(t, set.Names(), table.Header)
	require.Len(t, table.Rows, len(corpus)+1)
	for i, row := range table.Rows {
		require.Len(t, row, set.Len())
		require.Equal(t, i, row[0], "the none column reports the raw prefix size")
		for _, size := range row {
			require.GreaterOrEqual(t, size, 0)
		}
	}
}

func testLogger(t *testing.T) (*slog.Logger, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer

	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}
