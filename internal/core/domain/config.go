package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidReadMode = errors.New("invalid read mode")

type ReadMode string

const (
	// ReadModeRaw returns the file content exactly as stored.
	ReadModeRaw ReadMode = "raw"
	// ReadModeJoinLines concatenates the lines of the file without separators.
	ReadModeJoinLines ReadMode = "joinLines"
)

// Config holds the defaults used when a command does not name every segment.
type Config struct {
	ApplicationName string   `yaml:"applicationName"`
	FolderName      string   `yaml:"folderName"`
	FileName        string   `yaml:"fileName,omitempty"`
	ReadMode        ReadMode `yaml:"readMode,omitempty"`
	Editor          string   `yaml:"editor,omitempty"`
}

func CreateDefaultConfig() Config {
	return Config{
		ApplicationName: ".homefolder",
		FolderName:      "data",
		ReadMode:        ReadModeRaw,
	}
}

func (c *Config) Validate() error {
	switch c.ReadMode {
	case "", ReadModeRaw, ReadModeJoinLines:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidReadMode, c.ReadMode)
	}
}

// EffectiveReadMode returns the configured read mode, defaulting to raw.
func (c *Config) EffectiveReadMode() ReadMode {
	if c.ReadMode == "" {
		return ReadModeRaw
	}
	return c.ReadMode
}

// Resolve fills empty segments of location from the config. The application
// and folder names must be known afterwards; the file name may stay empty.
func (c *Config) Resolve(location Location) (Location, error) {
	if location.ApplicationName == "" {
		location.ApplicationName = c.ApplicationName
	}
	if location.FolderName == "" {
		location.FolderName = c.FolderName
	}
	if location.FileName == "" {
		location.FileName = c.FileName
	}
	if location.ApplicationName == "" {
		return Location{}, ErrMissingApplicationName
	}
	if location.FolderName == "" {
		return Location{}, ErrMissingFolderName
	}
	return location, nil
}
