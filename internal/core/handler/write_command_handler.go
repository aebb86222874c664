package handler

import (
	"errors"
	"fmt"
	"io"

	"homefolder/internal/core"
	"homefolder/internal/core/domain"
	"homefolder/internal/ports"

	"go.uber.org/zap"
)

var ErrNoContent = errors.New("no content given and stdin is a terminal")

type WriteRequest struct {
	Location domain.Location
	// Content is written as is. When nil the content is read from stdin.
	Content *string
	Encrypt bool
}

type WriteCommandHandler struct {
	configRepository core.ConfigRepository
	fileStore        core.FileStore
	secretFileStore  core.SecretFileStore
	terminalInput    ports.TerminalInput
	logger           *zap.Logger
}

func ProvideWriteCommandHandler(
	configRepository core.ConfigRepository,
	fileStore core.FileStore,
	secretFileStore core.SecretFileStore,
	terminalInput ports.TerminalInput,
	logger *zap.Logger,
) WriteCommandHandler {
	return WriteCommandHandler{
		configRepository: configRepository,
		fileStore:        fileStore,
		secretFileStore:  secretFileStore,
		terminalInput:    terminalInput,
		logger:           logger,
	}
}

func (h *WriteCommandHandler) Handle(request WriteRequest, stdin io.Reader) error {
	location, _, err := resolveLocation(h.configRepository, request.Location, true)
	if err != nil {
		return err
	}

	var content string
	if request.Content != nil {
		content = *request.Content
	} else {
		if h.terminalInput.IsTerminal() {
			return ErrNoContent
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("failed to read content from stdin: %w", err)
		}
		content = string(data)
	}

	store := h.fileStore
	if request.Encrypt {
		store = h.secretFileStore
	}
	h.logger.Debug("writing file",
		zap.String("application", location.ApplicationName),
		zap.String("folder", location.FolderName),
		zap.String("file", location.FileName),
		zap.Bool("encrypt", request.Encrypt))

	return store.WriteFile(location.ApplicationName, location.FolderName, location.FileName, content)
}
