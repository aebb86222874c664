package homedir

import (
	"fmt"
	"os"

	"homefolder/internal/ports"
)

// HomeOverrideEnvVar replaces the operating system's home directory when set.
const HomeOverrideEnvVar = "HOMEFOLDER_HOME"

var _ ports.HomeDirProvider = (*OsHomeDirProvider)(nil)

// OsHomeDirProvider looks up the home directory on every call.
type OsHomeDirProvider struct{}

func ProvideOsHomeDirProvider() *OsHomeDirProvider {
	return &OsHomeDirProvider{}
}

func (p *OsHomeDirProvider) HomeDir() (string, error) {
	if override := os.Getenv(HomeOverrideEnvVar); override != "" {
		return override, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return home, nil
}

// StaticHomeDirProvider always returns the same directory.
type StaticHomeDirProvider struct {
	dir string
}

func NewStaticHomeDirProvider(dir string) *StaticHomeDirProvider {
	return &StaticHomeDirProvider{dir: dir}
}

func (p *StaticHomeDirProvider) HomeDir() (string, error) {
	if p.dir == "" {
		return "", fmt.Errorf("home directory is not set")
	}
	return p.dir, nil
}
