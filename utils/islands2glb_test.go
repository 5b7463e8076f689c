package utils

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxelsplace/islands/config"
)

// threeIslands is a 5x1x1 row with solid tiles at x=0, x=2 and x=4.
const threeIslands = "1,3,1,0,1,3,1,0,1,3"

func TestMain(m *testing.M) {
	SetupLogging(io.Discard, "debug")
	os.Exit(m.Run())
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func zstdBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer enc.Close()
	return enc.EncodeAll(data, nil)
}

func unzstd(t *testing.T, data []byte) []byte {
	t.Helper()
	dec, err := zstd.NewReader(nil)
	require.NoError(t, err)
	defer dec.Close()
	out, err := dec.DecodeAll(data, nil)
	require.NoError(t, err)
	return out
}

func nodeCount(t *testing.T, glb []byte) int {
	t.Helper()
	var doc gltf.Document
	require.NoError(t, gltf.NewDecoder(bytes.NewReader(glb)).Decode(&doc))
	return len(doc.Nodes)
}

func TestRunRLE2GLB(t *testing.T) {
	in := writeFile(t, "row.rle", []byte(threeIslands+"\n"))
	out := filepath.Join(t.TempDir(), "row.glb")

	require.NoError(t, RunRLE2GLB(5, 1, 1, in, out, config.Default()))
	glb, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, 3, nodeCount(t, glb))
}

func TestRunRLE2GLB_Zstd(t *testing.T) {
	in := writeFile(t, "row.rle.zst", zstdBytes(t, []byte(threeIslands)))
	out := filepath.Join(t.TempDir(), "row.glb.zst")

	require.NoError(t, RunRLE2GLB(5, 1, 1, in, out, config.Default()))
	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(raw, zstdMagic))
	assert.Equal(t, 3, nodeCount(t, unzstd(t, raw)))
}

func TestRunRLE2GLB_CompressionFromConfig(t *testing.T) {
	in := writeFile(t, "row.rle", []byte(threeIslands))
	out := filepath.Join(t.TempDir(), "row.glb")
	cfg := config.Default()
	cfg.Export.Compression = "zstd"
	cfg.Export.ZstdLevel = 19

	require.NoError(t, RunRLE2GLB(5, 1, 1, in, out, cfg))
	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, 3, nodeCount(t, unzstd(t, raw)))
}

func TestRunRLE2GLB_Errors(t *testing.T) {
	out := filepath.Join(t.TempDir(), "x.glb")
	assert.Error(t, RunRLE2GLB(5, 1, 1, filepath.Join(t.TempDir(), "missing.rle"), out, config.Default()))

	in := writeFile(t, "bad.rle", []byte("34,7,abc,0"))
	assert.Error(t, RunRLE2GLB(5, 1, 1, in, out, config.Default()))

	in = writeFile(t, "short.rle", []byte("1,1"))
	assert.Error(t, RunRLE2GLB(5, 1, 1, in, out, config.Default()))

	in = writeFile(t, "bad.rle.zst", append(slices.Clone(zstdMagic), 0, 1, 2))
	assert.Error(t, RunRLE2GLB(5, 1, 1, in, out, config.Default()))
}

func TestRunNoise2GLB(t *testing.T) {
	dir := t.TempDir()
	a, b := filepath.Join(dir, "a.glb"), filepath.Join(dir, "b.glb")
	require.NoError(t, RunNoise2GLB(10, 10, 10, 7, a, config.Default()))
	require.NoError(t, RunNoise2GLB(10, 10, 10, 7, b, config.Default()))

	ga, err := os.ReadFile(a)
	require.NoError(t, err)
	gb, err := os.ReadFile(b)
	require.NoError(t, err)
	assert.Equal(t, ga, gb)
}

func TestRunStats(t *testing.T) {
	in := writeFile(t, "row.rle", []byte(threeIslands))
	var out strings.Builder
	require.NoError(t, RunStats(5, 1, 1, in, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "cubes=1")
	assert.Equal(t, "3 islands in 5x1x1", lines[3])
}

func TestSetupLogging(t *testing.T) {
	var buf bytes.Buffer
	SetupLogging(&buf, "info")
	defer SetupLogging(io.Discard, "debug")

	logInfo("hello %d", 1)
	logDebug("hidden")
	assert.Contains(t, buf.String(), "[INFO] hello 1")
	assert.NotContains(t, buf.String(), "hidden")
}
