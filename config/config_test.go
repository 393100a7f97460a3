package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultYAMLMatchesDefault(t *testing.T) {
	cfg, err := Parse([]byte(DefaultYAML))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_PartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("search: true\nthreads: 8\ntask_bound: -1\nlog:\n  level: DEBUG\n"))
	require.NoError(t, err)

	assert.True(t, cfg.Search)
	assert.Equal(t, 8, cfg.Threads)
	assert.Equal(t, -1, cfg.TaskBound)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "file://output", cfg.Store)
	assert.Equal(t, "go-json", cfg.Codec)
}

func TestParse_StoreSections(t *testing.T) {
	doc := `
store: minio://localhost:9000/circuits/runs
compression: zstd
minio:
  access_key: minioadmin
  secret_key: minioadmin
s3:
  region: eu-west-1
`
	cfg, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "minio://localhost:9000/circuits/runs", cfg.Store)
	assert.Equal(t, "zstd", cfg.Compression)
	assert.Equal(t, "minioadmin", cfg.MinIO.AccessKey)
	assert.Equal(t, "eu-west-1", cfg.S3.Region)
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"threads":     "threads: 0\n",
		"codec":       "codec: msgpack\n",
		"compression": "compression: gzip\n",
		"level":       "log:\n  level: loud\n",
		"format":      "log:\n  format: xml\n",
		"version":     "version: 2\n",
		"progress":    "progress_per_sec: -1\n",
		"yaml":        "threads: [\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pathsearch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("threads: 4\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Threads)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Search = true
	cfg.Threads = 6
	cfg.MinIO.Secure = true

	data, err := cfg.Marshal()
	require.NoError(t, err)

	got, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
