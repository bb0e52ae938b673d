package xrotate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLumberjack_Write(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "logs", "macvendor.log")

	r, err := NewLumberjack(filename, WithMaxSize(1), WithMaxBackups(2), WithCompress(false))
	require.NoError(t, err)
	defer r.Close()

	n, err := r.Write([]byte("refresh done\n"))
	require.NoError(t, err)
	assert.Equal(t, len("refresh done\n"), n)

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "refresh done\n", string(data))
}

func TestNewLumberjack_NilOption(t *testing.T) {
	r, err := NewLumberjack(filepath.Join(t.TempDir(), "a.log"), nil, WithMaxAge(1), nil)
	require.NoError(t, err)
	require.NoError(t, r.Close())
}

func TestNewLumberjack_Invalid(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		file    string
		opts    []Option
		wantErr error
	}{
		{"empty filename", "", nil, ErrEmptyFilename},
		{"zero size", filepath.Join(dir, "a.log"), []Option{WithMaxSize(0)}, ErrInvalidMaxSize},
		{"huge size", filepath.Join(dir, "a.log"), []Option{WithMaxSize(maxSizeMB + 1)}, ErrInvalidMaxSize},
		{"negative backups", filepath.Join(dir, "a.log"), []Option{WithMaxBackups(-1)}, ErrInvalidMaxBackups},
		{"negative age", filepath.Join(dir, "a.log"), []Option{WithMaxAge(-1)}, ErrInvalidMaxAge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewLumberjack(tt.file, tt.opts...)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, r)
		})
	}
}

func TestLumberjack_Closed(t *testing.T) {
	r, err := NewLumberjack(filepath.Join(t.TempDir(), "closed.log"))
	require.NoError(t, err)

	require.NoError(t, r.Close())
	assert.ErrorIs(t, r.Close(), ErrClosed)

	_, err = r.Write([]byte("x"))
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, r.Rotate(), ErrClosed)
}

func TestLumberjack_Rotate(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "rotate.log")

	r, err := NewLumberjack(filename, WithCompress(false))
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Write([]byte("before\n"))
	require.NoError(t, err)
	require.NoError(t, r.Rotate())
	_, err = r.Write([]byte("after\n"))
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "after\n", string(data))
}
