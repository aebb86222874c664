package handler

import (
	"fmt"
	"io"

	"homefolder/internal/core"
	"homefolder/internal/core/domain"
)

type PathCommandHandler struct {
	configRepository core.ConfigRepository
	fileStore        core.FileStore
}

func ProvidePathCommandHandler(
	configRepository core.ConfigRepository,
	fileStore core.FileStore,
) PathCommandHandler {
	return PathCommandHandler{
		configRepository: configRepository,
		fileStore:        fileStore,
	}
}

// Handle ensures the folder exists and prints its path, or the path of the
// file when the location names one.
func (h *PathCommandHandler) Handle(location domain.Location, out io.Writer) error {
	resolved, _, err := resolveLocation(h.configRepository, location, false)
	if err != nil {
		return err
	}

	var path string
	if resolved.FileName == "" {
		path, err = h.fileStore.EnsureFolder(resolved.ApplicationName, resolved.FolderName)
	} else {
		path, err = h.fileStore.FilePath(resolved.ApplicationName, resolved.FolderName, resolved.FileName)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out, path)
	return nil
}
