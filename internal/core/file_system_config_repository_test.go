package core

import (
	"errors"
	"path/filepath"
	"testing"

	"homefolder/internal/adapters/templater"
	"homefolder/internal/core/domain"
	"homefolder/internal/ports"
	"homefolder/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSandboxedConfigRepository(t *testing.T) (*FileSystemConfigRepository, *testutil.TestFileSystem) {
	t.Helper()
	fileSystem := testutil.NewTestFileSystem(t)
	return ProvideFileSystemConfigRepository(fileSystem, fileSystem, templater.ProvideTextTemplater(zap.NewNop())), fileSystem
}

func TestFileSystemConfigRepository_ConfigPathIsInHome(t *testing.T) {
	sut, fileSystem := newSandboxedConfigRepository(t)

	path, err := sut.ConfigPath()

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(fileSystem.BaseDir(), ".homefolder-config.yaml"), path)
}

func TestFileSystemConfigRepository_LoadConfigReturnsDefaultsWithoutConfigFile(t *testing.T) {
	sut, _ := newSandboxedConfigRepository(t)

	config, err := sut.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, domain.CreateDefaultConfig(), *config)
}

func TestFileSystemConfigRepository_LoadConfigParsesYaml(t *testing.T) {
	sut, fileSystem := newSandboxedConfigRepository(t)
	fileSystem.WriteRaw(t, filepath.Join(fileSystem.BaseDir(), ".homefolder-config.yaml"), `
applicationName: AddressApp
folderName: persons
fileName: persons.xml
readMode: joinLines
editor: nano
`)

	config, err := sut.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, domain.Config{
		ApplicationName: "AddressApp",
		FolderName:      "persons",
		FileName:        "persons.xml",
		ReadMode:        domain.ReadModeJoinLines,
		Editor:          "nano",
	}, *config)
}

func TestFileSystemConfigRepository_LoadConfigRejectsInvalidReadMode(t *testing.T) {
	sut, fileSystem := newSandboxedConfigRepository(t)
	fileSystem.WriteRaw(t, filepath.Join(fileSystem.BaseDir(), ".homefolder-config.yaml"), "readMode: lines\n")

	_, err := sut.LoadConfig()

	assert.ErrorIs(t, err, domain.ErrInvalidReadMode)
}

func TestFileSystemConfigRepository_LoadConfigReturnsParseError(t *testing.T) {
	sut, fileSystem := newSandboxedConfigRepository(t)
	fileSystem.WriteRaw(t, filepath.Join(fileSystem.BaseDir(), ".homefolder-config.yaml"), "applicationName: [unterminated\n")

	_, err := sut.LoadConfig()

	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestFileSystemConfigRepository_LoadConfigIsCached(t *testing.T) {
	homeDirProvider := new(testutil.MockHomeDirProvider)
	homeDirProvider.On("HomeDir").Return("/home/user", nil)
	fileSystem := new(testutil.MockFileSystem)
	fileSystem.On("FileExists", filepath.Join("/home/user", ".homefolder-config.yaml")).Return(false, nil).Once()
	sut := ProvideFileSystemConfigRepository(fileSystem, homeDirProvider, new(testutil.MockTemplater))

	first, err := sut.LoadConfig()
	require.NoError(t, err)
	second, err := sut.LoadConfig()
	require.NoError(t, err)

	assert.Same(t, first, second)
	fileSystem.AssertExpectations(t)
}

func TestFileSystemConfigRepository_SaveConfigThenLoadConfigRoundTrips(t *testing.T) {
	sut, fileSystem := newSandboxedConfigRepository(t)
	config := &domain.Config{
		ApplicationName: "Address App",
		FolderName:      "persons: \"all\"",
		FileName:        "persons.xml",
		ReadMode:        domain.ReadModeJoinLines,
		Editor:          "code --wait",
	}

	require.NoError(t, sut.SaveConfig(config))

	exists, err := sut.ConfigExists()
	require.NoError(t, err)
	assert.True(t, exists)

	reloaded := ProvideFileSystemConfigRepository(fileSystem, fileSystem, templater.ProvideTextTemplater(zap.NewNop()))
	loaded, err := reloaded.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, *config, *loaded)
}

func TestFileSystemConfigRepository_SaveConfigWritesCommentedTemplate(t *testing.T) {
	sut, fileSystem := newSandboxedConfigRepository(t)
	config := domain.CreateDefaultConfig()

	require.NoError(t, sut.SaveConfig(&config))

	content := fileSystem.ReadRaw(t, filepath.Join(fileSystem.BaseDir(), ".homefolder-config.yaml"))
	assert.Equal(t, `# homefolder configuration
# Files are stored at <home>/<applicationName>/<folderName>/<fileName>.
applicationName: ".homefolder"
folderName: "data"
# readMode is "raw" (content as stored) or "joinLines" (lines concatenated
# without separators, for stores written by older tools).
readMode: "raw"
`, content)
}

func TestFileSystemConfigRepository_SaveConfigRejectsInvalidConfig(t *testing.T) {
	fileSystem := new(testutil.MockFileSystem)
	sut := ProvideFileSystemConfigRepository(fileSystem, new(testutil.MockHomeDirProvider), new(testutil.MockTemplater))

	err := sut.SaveConfig(&domain.Config{ReadMode: "lines"})

	assert.ErrorIs(t, err, domain.ErrInvalidReadMode)
	fileSystem.AssertNotCalled(t, "WriteFile", mock.Anything, mock.Anything, mock.Anything)
}

func TestFileSystemConfigRepository_SaveConfigReturnsRenderError(t *testing.T) {
	homeDirProvider := new(testutil.MockHomeDirProvider)
	homeDirProvider.On("HomeDir").Return("/home/user", nil)
	templaterMock := new(testutil.MockTemplater)
	templaterMock.On("Render", configTemplate, "config", mock.Anything).Return("", errors.New("boom"))
	fileSystem := new(testutil.MockFileSystem)
	sut := ProvideFileSystemConfigRepository(fileSystem, homeDirProvider, templaterMock)

	err := sut.SaveConfig(&domain.Config{ApplicationName: "App", FolderName: "Data"})

	assert.ErrorContains(t, err, "failed to render config file: boom")
	fileSystem.AssertNotCalled(t, "WriteFile", mock.Anything, mock.Anything, mock.Anything)
}

func TestFileSystemConfigRepository_SaveConfigUsesOwnerOnlyAccess(t *testing.T) {
	homeDirProvider := new(testutil.MockHomeDirProvider)
	homeDirProvider.On("HomeDir").Return("/home/user", nil)
	templaterMock := new(testutil.MockTemplater)
	templaterMock.On("Render", configTemplate, "config", mock.Anything).Return("rendered", nil)
	fileSystem := new(testutil.MockFileSystem)
	fileSystem.On("WriteFile", filepath.Join("/home/user", ".homefolder-config.yaml"), []byte("rendered"), ports.AccessMode(ports.ReadWrite)).
		Return(nil)
	sut := ProvideFileSystemConfigRepository(fileSystem, homeDirProvider, templaterMock)

	err := sut.SaveConfig(&domain.Config{ApplicationName: "App", FolderName: "Data"})

	require.NoError(t, err)
	fileSystem.AssertExpectations(t)
}
