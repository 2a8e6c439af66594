package produce_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"skeinsum/internal/config"
	"skeinsum/internal/engine"
	"skeinsum/internal/hasher"
	"skeinsum/internal/manifest"
	"skeinsum/internal/metrics"
	"skeinsum/internal/produce"
	"skeinsum/internal/verify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHasher(t *testing.T, bits int, stdin string) *hasher.Hasher {
	t.Helper()
	cfg, err := config.NewDigestConfig(512, bits)
	require.NoError(t, err)
	h, err := hasher.New(engine.NewBLAKE3, cfg, hasher.WithStdin(strings.NewReader(stdin)))
	require.NoError(t, err)
	return h
}

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestProduce_OrderAndSkip(t *testing.T) {
	dir := t.TempDir()
	b := write(t, dir, "b.txt", "bravo")
	a := write(t, dir, "a.txt", "alpha")
	missing := filepath.Join(dir, "missing.txt")

	var stdout, stderr bytes.Buffer
	stats := &metrics.Stats{}
	res := produce.Produce(newHasher(t, 0, ""), []string{b, missing, a}, produce.Options{
		Mode:   manifest.Text,
		Stdout: &stdout,
		Stderr: &stderr,
	}, stats)

	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	require.Len(t, res, 2)

	first, err := manifest.Parse(lines[0])
	require.NoError(t, err)
	second, err := manifest.Parse(lines[1])
	require.NoError(t, err)
	assert.Equal(t, b, first.Filename)
	assert.Equal(t, a, second.Filename)
	assert.Len(t, first.Hex, 128)

	assert.Equal(t, "skeinsum: "+missing+": no such file or directory\n", stderr.String())
	assert.Equal(t, int64(2), stats.Written)
	assert.Equal(t, int64(1), stats.Failed)
	assert.True(t, stats.ProduceFailed())
}

func TestProduce_StdinAndBinaryMode(t *testing.T) {
	var stdout bytes.Buffer
	stats := &metrics.Stats{}
	produce.Produce(newHasher(t, 256, "from stdin"), []string{"-"}, produce.Options{
		Mode:   manifest.Binary,
		Stdout: &stdout,
	}, stats)

	want, err := newHasher(t, 256, "").DigestOf(strings.NewReader("from stdin"))
	require.NoError(t, err)
	assert.Equal(t, want.Hex()+" *-\n", stdout.String())
	assert.False(t, stats.ProduceFailed())
}

func TestProduce_ThenVerify(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		write(t, dir, "one", ""),
		write(t, dir, "two words", "content"),
		write(t, dir, "three", strings.Repeat("z", 100_000)),
	}

	var sums bytes.Buffer
	produce.Produce(newHasher(t, 384, ""), files, produce.Options{Stdout: &sums}, nil)
	manifestPath := write(t, dir, "SUMS", sums.String())

	cfg, err := config.NewDigestConfig(512, 0)
	require.NoError(t, err)
	var out bytes.Buffer
	stats := &metrics.Stats{}
	verify.Verify([]string{manifestPath}, verify.Options{
		Engine: engine.NewBLAKE3,
		Digest: cfg,
		Stdout: &out,
	}, stats)

	assert.Equal(t, int64(3), stats.Matched)
	assert.False(t, stats.CheckFailed(true))
	assert.Equal(t, files[0]+": OK\n"+files[1]+": OK\n"+files[2]+": OK\n", out.String())
}
