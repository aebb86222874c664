package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"homefolder/internal/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOsFileSystem_WriteFileThenReadFileReturnsContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	sut := ProvideOsFileSystem()

	err := sut.WriteFile(path, []byte("line1\nline2\n"), ports.ReadWrite)
	require.NoError(t, err)

	content, err := sut.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "line1\nline2\n", string(content))
}

func TestOsFileSystem_WriteFileTruncatesExistingContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	sut := ProvideOsFileSystem()

	require.NoError(t, sut.WriteFile(path, []byte("a much longer first version"), ports.ReadWrite))
	require.NoError(t, sut.WriteFile(path, []byte("short"), ports.ReadWrite))

	content, err := sut.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "short", string(content))
}

func TestOsFileSystem_WriteFileUsesAccessMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not enforced on windows")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "secret.txt")
	sut := ProvideOsFileSystem()

	require.NoError(t, sut.WriteFile(path, []byte("x"), ports.ReadWrite))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestOsFileSystem_WriteFileFailsWhenParentIsMissing(t *testing.T) {
	dir := t.TempDir()
	sut := ProvideOsFileSystem()

	err := sut.WriteFile(filepath.Join(dir, "missing", "notes.txt"), []byte("x"), ports.ReadWrite)

	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestOsFileSystem_ReadFileReturnsNotExistForMissingFile(t *testing.T) {
	sut := ProvideOsFileSystem()

	content, err := sut.ReadFile(filepath.Join(t.TempDir(), "missing.txt"))

	assert.Nil(t, content)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "expected fs.ErrNotExist, got %v", err)
}

func TestOsFileSystem_ReadLinesStripsLineTerminators(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected []string
	}{
		{"empty file", "", []string{}},
		{"single line without terminator", "line1", []string{"line1"}},
		{"unix line endings", "line1\nline2\n", []string{"line1", "line2"}},
		{"windows line endings", "line1\r\nline2\r\n", []string{"line1", "line2"}},
		{"carriage return only", "line1\rline2", []string{"line1", "line2"}},
		{"trailing line without terminator", "line1\nline2", []string{"line1", "line2"}},
		{"blank lines are kept", "line1\n\nline3", []string{"line1", "", "line3"}},
		{"trailing carriage return", "line1\r", []string{"line1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "lines.txt")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0600))
			sut := ProvideOsFileSystem()

			lines, err := sut.ReadLines(path)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, lines)
		})
	}
}

func TestOsFileSystem_ReadLinesReturnsNotExistForMissingFile(t *testing.T) {
	sut := ProvideOsFileSystem()

	_, err := sut.ReadLines(filepath.Join(t.TempDir(), "missing.txt"))

	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestOsFileSystem_MkdirAllCreatesNestedDirectories(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "app", "folder")
	sut := ProvideOsFileSystem()

	require.NoError(t, sut.MkdirAll(dir, ports.ReadWriteExecute))
	require.NoError(t, sut.MkdirAll(dir, ports.ReadWriteExecute))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestOsFileSystem_MkdirAllFailsWhenFileBlocksPath(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "app")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))
	sut := ProvideOsFileSystem()

	err := sut.MkdirAll(filepath.Join(blocker, "folder"), ports.ReadWriteExecute)

	assert.Error(t, err)
}

func TestOsFileSystem_FileExists(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "existing.txt")
	require.NoError(t, os.WriteFile(existing, []byte("x"), 0600))
	sut := ProvideOsFileSystem()

	exists, err := sut.FileExists(existing)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = sut.FileExists(filepath.Join(dir, "missing.txt"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGetOsFileModeForAccessMode(t *testing.T) {
	assert.Equal(t, os.FileMode(0600), getOsFileModeForAccessMode(ports.ReadWrite))
	assert.Equal(t, os.FileMode(0700), getOsFileModeForAccessMode(ports.ReadWriteExecute))
	assert.Equal(t, os.FileMode(0644), getOsFileModeForAccessMode(ports.ReadAllWriteOwner))
	assert.Equal(t, os.FileMode(0600), getOsFileModeForAccessMode(ports.AccessMode(42)))
}
