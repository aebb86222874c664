package ports

// SymmetricEncryptor encrypts file content with a base64 encoded key.
// Ciphertext is base64 encoded so it can be stored as a single line of text.
type SymmetricEncryptor interface {
	Encrypt(plaintext []byte, key []byte) ([]byte, error)
	Decrypt(ciphertext []byte, key []byte) ([]byte, error)
	CreateKey() ([]byte, error)
}
