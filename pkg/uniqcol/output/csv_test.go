package output

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		values   []string
		expected string
	}{
		{"plain", []string{"Alice", "Bob"}, "Alice\nBob\n"},
		{"none", nil, ""},
		{"comma", []string{"Doe, Jane"}, "\"Doe, Jane\"\n"},
		{"quote", []string{`say "hi"`}, "\"say \"\"hi\"\"\"\n"},
		{"newline", []string{"two\nlines"}, "\"two\nlines\"\n"},
		{"unicode", []string{"Ärger"}, "Ärger\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, tt.values))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestEncodeReportsWriteError(t *testing.T) {
	err := Encode(failingWriter{}, []string{"a"})
	assert.EqualError(t, err, "disk full")
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale\ncontent\nlonger than new\n"), 0644))

	require.NoError(t, WriteFile(path, []string{"Alice", "Bob"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Alice\nBob\n", string(data))
}

func TestWriteFileIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	values := []string{"1", "a,b", "z"}

	first := filepath.Join(dir, "first.csv")
	second := filepath.Join(dir, "second.csv")
	require.NoError(t, WriteFile(first, values))
	require.NoError(t, WriteFile(second, values))

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestWriteFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.csv")
	require.NoError(t, WriteFile(path, nil))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestWriteFileMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "output.csv")
	err := WriteFile(path, []string{"a"})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
