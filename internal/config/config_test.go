package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	writeFile(t, path, "format: json\nbackend: billy\nverbose: true\ndigest: blake3\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{Format: "json", Backend: BackendBilly, Verbose: true, Digest: "blake3"}, cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	writeFile(t, path, "digest: sha512\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, BackendOS, cfg.Backend)
	assert.Equal(t, "sha512", cfg.Digest)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SLURP_FORMAT", "json")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad format", "format: xml\n"},
		{"bad backend", "backend: s3\n"},
		{"bad digest", "digest: md5\n"},
		{"bad yaml", "format: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName)
			writeFile(t, path, tt.content)

			_, err := Load(path)
			require.Error(t, err)
			assert.True(t, Error.Has(err), "error %v should be a config error", err)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"defaults", Default(), ""},
		{"json blake3 billy", Config{Format: "json", Backend: BackendBilly, Digest: "blake3"}, ""},
		{"unknown format", Config{Format: "xml", Backend: BackendOS}, "unknown format"},
		{"unknown backend", Config{Format: "text", Backend: "s3"}, "backend"},
		{"unknown digest", Config{Format: "text", Backend: BackendOS, Digest: "md5"}, "unsupported digest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, Error.Has(err))
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestFindFile(t *testing.T) {
	t.Run("explicit path exists", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.yaml")
		writeFile(t, path, "format: text\n")

		got, err := FindFile(t.TempDir(), path)
		require.NoError(t, err)
		assert.Equal(t, path, got)
	})

	t.Run("explicit path missing", func(t *testing.T) {
		_, err := FindFile(t.TempDir(), filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("found in start dir", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, FileName), "")

		got, err := FindFile(root, "")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, FileName), got)
	})

	t.Run("found in parent", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, FileName), "")
		nested := filepath.Join(root, "a", "b")
		require.NoError(t, os.MkdirAll(nested, 0o755))

		got, err := FindFile(nested, "")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, FileName), got)
	})

	t.Run("stops at git root", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, FileName), "")
		repo := filepath.Join(root, "repo")
		require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0o755))
		nested := filepath.Join(repo, "src")
		require.NoError(t, os.MkdirAll(nested, 0o755))

		got, err := FindFile(nested, "")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
