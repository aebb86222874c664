package core

import (
	"fmt"
	"path/filepath"
	"strings"

	"homefolder/internal/ports"

	"go.uber.org/zap"
)

// FileStore persists whole text files under
// <home>/<applicationName>/<folderName>/<fileName>.
type FileStore interface {
	// EnsureFolder creates <home>/<applicationName>/<folderName> including
	// missing parents and returns its path.
	EnsureFolder(applicationName, folderName string) (string, error)
	// FilePath ensures the folder exists and returns the path of fileName inside it.
	FilePath(applicationName, folderName, fileName string) (string, error)
	// WriteFile replaces the file content, creating the file when needed.
	WriteFile(applicationName, folderName, fileName, content string) error
	// ReadFile returns the file content exactly as stored.
	ReadFile(applicationName, folderName, fileName string) (string, error)
	// ReadFileJoined returns the lines of the file concatenated without
	// separators, the format older clients of a store expect.
	ReadFileJoined(applicationName, folderName, fileName string) (string, error)
}

var _ FileStore = (*HomeFolderFileStore)(nil)

type HomeFolderFileStore struct {
	fileSystem      ports.FileSystem
	homeDirProvider ports.HomeDirProvider
	logger          *zap.Logger
}

func ProvideHomeFolderFileStore(
	fileSystem ports.FileSystem,
	homeDirProvider ports.HomeDirProvider,
	logger *zap.Logger,
) *HomeFolderFileStore {
	return &HomeFolderFileStore{
		fileSystem:      fileSystem,
		homeDirProvider: homeDirProvider,
		logger:          logger,
	}
}

func (s *HomeFolderFileStore) EnsureFolder(applicationName, folderName string) (string, error) {
	home, err := s.homeDirProvider.HomeDir()
	if err != nil {
		return "", err
	}
	folderPath := filepath.Join(home, applicationName, folderName)

	if err := s.fileSystem.MkdirAll(folderPath, ports.ReadWriteExecute); err != nil {
		return "", fmt.Errorf("failed to ensure folder %s: %w", folderPath, err)
	}
	s.logger.Debug("folder ensured", zap.String("path", folderPath))

	return folderPath, nil
}

func (s *HomeFolderFileStore) FilePath(applicationName, folderName, fileName string) (string, error) {
	folderPath, err := s.EnsureFolder(applicationName, folderName)
	if err != nil {
		return "", err
	}
	return filepath.Join(folderPath, fileName), nil
}

func (s *HomeFolderFileStore) WriteFile(applicationName, folderName, fileName, content string) error {
	path, err := s.FilePath(applicationName, folderName, fileName)
	if err != nil {
		return err
	}

	if err := s.fileSystem.WriteFile(path, []byte(content), ports.ReadWrite); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	s.logger.Debug("file written", zap.String("path", path), zap.Int("bytes", len(content)))

	return nil
}

func (s *HomeFolderFileStore) ReadFile(applicationName, folderName, fileName string) (string, error) {
	path, err := s.FilePath(applicationName, folderName, fileName)
	if err != nil {
		return "", err
	}

	content, err := s.fileSystem.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	s.logger.Debug("file read", zap.String("path", path), zap.Int("bytes", len(content)))

	return string(content), nil
}

func (s *HomeFolderFileStore) ReadFileJoined(applicationName, folderName, fileName string) (string, error) {
	path, err := s.FilePath(applicationName, folderName, fileName)
	if err != nil {
		return "", err
	}

	lines, err := s.fileSystem.ReadLines(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	s.logger.Debug("file read as joined lines", zap.String("path", path), zap.Int("lines", len(lines)))

	return strings.Join(lines, ""), nil
}
