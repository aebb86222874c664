package handler

import (
	"os"
	"strings"

	"homefolder/internal/core"
	"homefolder/internal/core/domain"
	"homefolder/internal/ports"

	"go.uber.org/zap"
)

const defaultEditor = "vi"

type EditCommandHandler struct {
	configRepository core.ConfigRepository
	fileStore        core.FileStore
	commandRunner    ports.CommandRunner
	logger           *zap.Logger
	getenv           func(string) string
}

func ProvideEditCommandHandler(
	configRepository core.ConfigRepository,
	fileStore core.FileStore,
	commandRunner ports.CommandRunner,
	logger *zap.Logger,
) EditCommandHandler {
	return EditCommandHandler{
		configRepository: configRepository,
		fileStore:        fileStore,
		commandRunner:    commandRunner,
		logger:           logger,
		getenv:           os.Getenv,
	}
}

// Handle opens the file in the configured editor, falling back to $EDITOR and
// then vi. The folder is created first so the editor can save a new file.
func (h *EditCommandHandler) Handle(location domain.Location) error {
	resolved, config, err := resolveLocation(h.configRepository, location, true)
	if err != nil {
		return err
	}
	path, err := h.fileStore.FilePath(resolved.ApplicationName, resolved.FolderName, resolved.FileName)
	if err != nil {
		return err
	}

	editor := strings.Fields(h.editorCommand(config))
	args := append(editor[1:], path)
	h.logger.Debug("opening editor", zap.String("editor", editor[0]), zap.String("path", path))

	return h.commandRunner.RunInteractive(editor[0], args...)
}

func (h *EditCommandHandler) editorCommand(config *domain.Config) string {
	if strings.TrimSpace(config.Editor) != "" {
		return config.Editor
	}
	if editor := h.getenv("EDITOR"); strings.TrimSpace(editor) != "" {
		return editor
	}
	return defaultEditor
}
