package ports

// Keyring stores encryption keys in the operating system's credential store.
type Keyring interface {
	GetKey(keyName string) (string, error)
	SetKey(keyName string, keyValue string) error
	HasKey(keyName string) (bool, error)
	DeleteKey(keyName string) error
}
