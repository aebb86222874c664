package ports

type AccessMode int

const (
	ReadWrite = iota
	ReadWriteExecute
	ReadAllWriteOwner
)

type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	// ReadLines returns the lines of the file at path without their line terminators.
	ReadLines(path string) ([]string, error)
	// WriteFile truncates or creates the file at path. The parent directory must exist.
	WriteFile(path string, content []byte, accessMode AccessMode) error
	MkdirAll(path string, accessMode AccessMode) error
	FileExists(path string) (bool, error)
}
