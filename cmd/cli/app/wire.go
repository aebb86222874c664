//go:build wireinject
// +build wireinject

package app

import (
	"homefolder/internal/adapters/command_runner"
	"homefolder/internal/adapters/filesystem"
	"homefolder/internal/adapters/homedir"
	"homefolder/internal/adapters/keyring"
	"homefolder/internal/adapters/symmetric_encryptor"
	"homefolder/internal/adapters/templater"
	"homefolder/internal/adapters/terminal"
	"homefolder/internal/core"
	"homefolder/internal/core/handler"
	"homefolder/internal/logging"
	"homefolder/internal/ports"

	"github.com/google/wire"
)

var Adapter = wire.NewSet(
	logging.ProvideLogger,
	command_runner.ProvideOsCommandRunner,
	wire.Bind(new(ports.CommandRunner), new(*command_runner.OsCommandRunner)),
	filesystem.ProvideOsFileSystem,
	wire.Bind(new(ports.FileSystem), new(*filesystem.OsFileSystem)),
	homedir.ProvideOsHomeDirProvider,
	wire.Bind(new(ports.HomeDirProvider), new(*homedir.OsHomeDirProvider)),
	keyring.ProvideZalandoKeyring,
	symmetric_encryptor.ProvideAesGcmEncryptor,
	wire.Bind(new(ports.SymmetricEncryptor), new(*symmetric_encryptor.AesGcmEncryptor)),
	templater.ProvideTextTemplater,
	terminal.ProvideTerminalInput,
	wire.Bind(new(ports.TerminalInput), new(*terminal.TerminalInput)),
)

// CoreSet provides domain/core dependencies
var CoreSet = wire.NewSet(
	core.ProvideFileSystemConfigRepository,
	wire.Bind(new(core.ConfigRepository), new(*core.FileSystemConfigRepository)),
	core.ProvideHomeFolderFileStore,
	wire.Bind(new(core.FileStore), new(*core.HomeFolderFileStore)),
	core.ProvideEncryptedFileStore,
	wire.Bind(new(core.SecretFileStore), new(*core.EncryptedFileStore)),
)

// CommandHandlerSet combines all sets needed for command handlers
var CommandHandlerSet = wire.NewSet(
	Adapter,
	CoreSet,
)

func InjectPathCommandHandler() (handler.PathCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvidePathCommandHandler,
	)
	return handler.PathCommandHandler{}, nil
}

func InjectWriteCommandHandler() (handler.WriteCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideWriteCommandHandler,
	)
	return handler.WriteCommandHandler{}, nil
}

func InjectReadCommandHandler() (handler.ReadCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideReadCommandHandler,
	)
	return handler.ReadCommandHandler{}, nil
}

func InjectEditCommandHandler() (handler.EditCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideEditCommandHandler,
	)
	return handler.EditCommandHandler{}, nil
}

func InjectInitializeCommandHandler() (handler.InitializeCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideInitializeCommandHandler,
	)
	return handler.InitializeCommandHandler{}, nil
}
