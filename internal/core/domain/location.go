package domain

import "errors"

var (
	ErrMissingApplicationName = errors.New("application name is required")
	ErrMissingFolderName      = errors.New("folder name is required")
	ErrMissingFileName        = errors.New("file name is required")
)

// Location addresses a file at <home>/<ApplicationName>/<FolderName>/<FileName>.
// Segments are used verbatim and are not checked for path traversal.
type Location struct {
	ApplicationName string
	FolderName      string
	FileName        string
}

// RequireFile returns ErrMissingFileName when the location does not name a file.
func (l Location) RequireFile() error {
	if l.FileName == "" {
		return ErrMissingFileName
	}
	return nil
}
