package handler

import (
	"fmt"
	"io"

	"homefolder/internal/core"
	"homefolder/internal/core/domain"

	"go.uber.org/zap"
)

type ReadRequest struct {
	Location domain.Location
	// JoinLines forces the joinLines read mode regardless of the config.
	JoinLines bool
	Encrypt   bool
}

type ReadCommandHandler struct {
	configRepository core.ConfigRepository
	fileStore        core.FileStore
	secretFileStore  core.SecretFileStore
	logger           *zap.Logger
}

func ProvideReadCommandHandler(
	configRepository core.ConfigRepository,
	fileStore core.FileStore,
	secretFileStore core.SecretFileStore,
	logger *zap.Logger,
) ReadCommandHandler {
	return ReadCommandHandler{
		configRepository: configRepository,
		fileStore:        fileStore,
		secretFileStore:  secretFileStore,
		logger:           logger,
	}
}

func (h *ReadCommandHandler) Handle(request ReadRequest, out io.Writer) error {
	location, config, err := resolveLocation(h.configRepository, request.Location, true)
	if err != nil {
		return err
	}

	var store core.FileStore = h.fileStore
	if request.Encrypt {
		store = h.secretFileStore
	}
	readMode := config.EffectiveReadMode()
	if request.JoinLines {
		readMode = domain.ReadModeJoinLines
	}
	h.logger.Debug("reading file",
		zap.String("application", location.ApplicationName),
		zap.String("folder", location.FolderName),
		zap.String("file", location.FileName),
		zap.String("mode", string(readMode)))

	var content string
	switch readMode {
	case domain.ReadModeJoinLines:
		content, err = store.ReadFileJoined(location.ApplicationName, location.FolderName, location.FileName)
	default:
		content, err = store.ReadFile(location.ApplicationName, location.FolderName, location.FileName)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(out, content)
	return err
}
