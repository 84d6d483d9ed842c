package selfupdate

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetName(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{"darwin amd64", "darwin", "amd64", "pscprep_Darwin_all.tar.gz", false},
		{"darwin arm64", "darwin", "arm64", "pscprep_Darwin_all.tar.gz", false},
		{"linux amd64", "linux", "amd64", "pscprep_Linux_x86_64.tar.gz", false},
		{"linux arm64", "linux", "arm64", "pscprep_Linux_arm64.tar.gz", false},
		{"unsupported os", "windows", "amd64", "", true},
		{"unsupported arch", "linux", "mips", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := assetName(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseChecksums(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[string]string
	}{
		{
			name:  "normal",
			input: "abc123  pscprep_Darwin_all.tar.gz\ndef456  pscprep_Linux_x86_64.tar.gz\n",
			want: map[string]string{
				"pscprep_Darwin_all.tar.gz":   "abc123",
				"pscprep_Linux_x86_64.tar.gz": "def456",
			},
		},
		{
			name:  "empty",
			input: "",
			want:  map[string]string{},
		},
		{
			name:  "malformed lines skipped",
			input: "abc123  file.tar.gz\nbadline\n  \nfoo  bar  baz\nghi789  other.tar.gz\n",
			want: map[string]string{
				"file.tar.gz":  "abc123",
				"other.tar.gz": "ghi789",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseChecksums([]byte(tt.input))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractFromTarGz(t *testing.T) {
	binaryContent := []byte("#!/bin/sh\necho pscprep")

	t.Run("found", func(t *testing.T) {
		archive := buildTarGz(t, "pscprep", binaryContent)
		got, err := extractFromTarGz(archive, "pscprep")
		require.NoError(t, err)
		assert.Equal(t, binaryContent, got)
	})

	t.Run("missing binary", func(t *testing.T) {
		archive := buildTarGz(t, "other-file", binaryContent)
		_, err := extractFromTarGz(archive, "pscprep")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("not a gzip stream", func(t *testing.T) {
		_, err := extractFromTarGz([]byte("plain text"), "pscprep")
		require.Error(t, err)
	})
}

func TestReplaceBinary(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "pscprep")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	newData := []byte("new-binary-content")
	require.NoError(t, replaceBinary(newData, target))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, newData, got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

func TestCheck(t *testing.T) {
	t.Run("dev build", func(t *testing.T) {
		c := NewChecker()
		_, err := c.Check(context.Background(), "(devel)")
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("update available", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/repos/Adarsh-oo7/pscprep/releases/latest", r.URL.Path)
			_, _ = w.Write([]byte(`{"tag_name":"v2.0.0"}`))
		}))
		defer server.Close()

		c := NewChecker()
		c.apiBaseURL = server.URL

		result, err := c.Check(context.Background(), "v1.0.0")
		require.NoError(t, err)
		assert.True(t, result.UpdateAvailable)
		assert.Equal(t, "v2.0.0", result.LatestVersion)
	})

	t.Run("already latest", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"tag_name":"v1.0.0"}`))
		}))
		defer server.Close()

		c := NewChecker()
		c.apiBaseURL = server.URL

		result, err := c.Check(context.Background(), "v1.0.0")
		require.NoError(t, err)
		assert.False(t, result.UpdateAvailable)
	})

	t.Run("tag without v prefix still compares", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"tag_name":"1.2.0"}`))
		}))
		defer server.Close()

		c := NewChecker()
		c.apiBaseURL = server.URL

		result, err := c.Check(context.Background(), "v1.1.0")
		require.NoError(t, err)
		assert.True(t, result.UpdateAvailable)
	})
}

func TestUpdateVerifiesChecksum(t *testing.T) {
	asset, err := assetName(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		// The asset map itself is covered by TestAssetName.
		t.Skip("no release asset for this platform")
	}

	archive := buildTarGz(t, "pscprep", []byte("new-pscprep-binary"))
	checksums := "0000000000000000000000000000000000000000000000000000000000000000  " + asset + "\n"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/repos/Adarsh-oo7/pscprep/releases/latest":
			_, _ = w.Write([]byte(`{"tag_name":"v2.0.0"}`))
		case filepath.Base(r.URL.Path) == "checksums.txt":
			_, _ = w.Write([]byte(checksums))
		default:
			_, _ = w.Write(archive)
		}
	}))
	defer server.Close()

	c := NewChecker()
	c.apiBaseURL = server.URL
	c.downloadBaseURL = server.URL

	err = c.Update(context.Background(), "v1.0.0", "", func(Progress) {})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrChecksum)
}

// buildTarGz creates a tar.gz archive containing a single file.
func buildTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: name,
		Size: int64(len(content)),
		Mode: 0755,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}
