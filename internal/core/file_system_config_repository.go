package core

import (
	"fmt"
	"path/filepath"
	"strconv"

	"homefolder/internal/core/domain"
	"homefolder/internal/ports"

	"gopkg.in/yaml.v3"
)

const configFileName = ".homefolder-config.yaml"

const configTemplate = `# homefolder configuration
# Files are stored at <home>/<applicationName>/<folderName>/<fileName>.
applicationName: {{ .ApplicationName }}
folderName: {{ .FolderName }}
{{- if .FileName }}
fileName: {{ .FileName }}
{{- end }}
# readMode is "raw" (content as stored) or "joinLines" (lines concatenated
# without separators, for stores written by older tools).
readMode: {{ .ReadMode }}
{{- if .Editor }}
editor: {{ .Editor }}
{{- end }}
`

type ConfigRepository interface {
	LoadConfig() (*domain.Config, error)
	SaveConfig(*domain.Config) error
	ConfigExists() (bool, error)
	ConfigPath() (string, error)
}

var _ ConfigRepository = (*FileSystemConfigRepository)(nil)

type FileSystemConfigRepository struct {
	fileSystem      ports.FileSystem
	homeDirProvider ports.HomeDirProvider
	templater       ports.Templater
	config          *domain.Config
}

func ProvideFileSystemConfigRepository(
	fileSystem ports.FileSystem,
	homeDirProvider ports.HomeDirProvider,
	templater ports.Templater,
) *FileSystemConfigRepository {
	return &FileSystemConfigRepository{
		fileSystem:      fileSystem,
		homeDirProvider: homeDirProvider,
		templater:       templater,
	}
}

func (c *FileSystemConfigRepository) ConfigPath() (string, error) {
	home, err := c.homeDirProvider.HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configFileName), nil
}

// LoadConfig reads the config file. Without a config file the defaults from
// domain.CreateDefaultConfig are used.
func (c *FileSystemConfigRepository) LoadConfig() (*domain.Config, error) {
	if c.config != nil {
		return c.config, nil
	}
	path, err := c.ConfigPath()
	if err != nil {
		return nil, err
	}
	exists, err := c.fileSystem.FileExists(path)
	if err != nil {
		return nil, err
	}
	if !exists {
		config := domain.CreateDefaultConfig()
		c.config = &config
		return c.config, nil
	}

	data, err := c.fileSystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var config domain.Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	c.config = &config
	return c.config, nil
}

func (c *FileSystemConfigRepository) SaveConfig(config *domain.Config) error {
	if err := config.Validate(); err != nil {
		return err
	}
	path, err := c.ConfigPath()
	if err != nil {
		return err
	}

	values := map[string]any{
		"ApplicationName": strconv.Quote(config.ApplicationName),
		"FolderName":      strconv.Quote(config.FolderName),
		"FileName":        quoteIfSet(config.FileName),
		"ReadMode":        strconv.Quote(string(config.EffectiveReadMode())),
		"Editor":          quoteIfSet(config.Editor),
	}
	rendered, err := c.templater.Render(configTemplate, "config", values)
	if err != nil {
		return fmt.Errorf("failed to render config file: %w", err)
	}
	if err := c.fileSystem.WriteFile(path, []byte(rendered), ports.ReadWrite); err != nil {
		return err
	}

	c.config = config
	return nil
}

func (c *FileSystemConfigRepository) ConfigExists() (bool, error) {
	path, err := c.ConfigPath()
	if err != nil {
		return false, err
	}
	return c.fileSystem.FileExists(path)
}

func quoteIfSet(value string) string {
	if value == "" {
		return ""
	}
	return strconv.Quote(value)
}
