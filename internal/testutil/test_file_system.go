package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"homefolder/internal/adapters/filesystem"
	"homefolder/internal/ports"
)

// TestFileSystem provides real file system operations sandboxed within a temporary directory.
// Paths outside the sandbox are re-rooted inside it, so a store can be pointed at
// HomeDir() and still never touch the real home directory.
// For unit tests that mock file system calls, use MockFileSystem instead.
type TestFileSystem struct {
	baseDir string
	os      *filesystem.OsFileSystem
}

var (
	_ ports.FileSystem      = (*TestFileSystem)(nil)
	_ ports.HomeDirProvider = (*TestFileSystem)(nil)
)

// NewTestFileSystem creates a sandboxed file system within a temporary directory.
// The directory is automatically cleaned up when the test completes.
func NewTestFileSystem(t *testing.T) *TestFileSystem {
	t.Helper()
	return &TestFileSystem{
		baseDir: t.TempDir(),
		os:      filesystem.ProvideOsFileSystem(),
	}
}

// BaseDir returns the sandbox base directory path.
func (f *TestFileSystem) BaseDir() string {
	return f.baseDir
}

// HomeDir returns the sandbox base directory as the user's home.
func (f *TestFileSystem) HomeDir() (string, error) {
	return f.baseDir, nil
}

// resolvePath keeps paths already inside the sandbox and joins every other
// path onto the base directory.
func (f *TestFileSystem) resolvePath(path string) string {
	cleanPath := filepath.Clean(path)
	if cleanPath == f.baseDir || strings.HasPrefix(cleanPath, f.baseDir+string(filepath.Separator)) {
		return cleanPath
	}
	if filepath.IsAbs(cleanPath) {
		cleanPath = strings.TrimPrefix(cleanPath, filepath.VolumeName(cleanPath))
	}
	return filepath.Join(f.baseDir, cleanPath)
}

func (f *TestFileSystem) ReadFile(path string) ([]byte, error) {
	return f.os.ReadFile(f.resolvePath(path))
}

func (f *TestFileSystem) ReadLines(path string) ([]string, error) {
	return f.os.ReadLines(f.resolvePath(path))
}

func (f *TestFileSystem) WriteFile(path string, content []byte, accessMode ports.AccessMode) error {
	return f.os.WriteFile(f.resolvePath(path), content, accessMode)
}

func (f *TestFileSystem) MkdirAll(path string, accessMode ports.AccessMode) error {
	return f.os.MkdirAll(f.resolvePath(path), accessMode)
}

func (f *TestFileSystem) FileExists(path string) (bool, error) {
	return f.os.FileExists(f.resolvePath(path))
}

// WriteRaw writes content below the sandbox, creating parent directories.
func (f *TestFileSystem) WriteRaw(t *testing.T, path string, content string) {
	t.Helper()
	resolved := f.resolvePath(path)
	if err := os.MkdirAll(filepath.Dir(resolved), 0700); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(resolved, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
}

// ReadRaw returns the content of a file below the sandbox.
func (f *TestFileSystem) ReadRaw(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(f.resolvePath(path))
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}
	return string(content)
}
