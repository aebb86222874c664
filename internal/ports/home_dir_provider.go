package ports

// HomeDirProvider resolves the current user's home directory.
// Implementations are consulted on every call and must not cache the result.
type HomeDirProvider interface {
	HomeDir() (string, error)
}
