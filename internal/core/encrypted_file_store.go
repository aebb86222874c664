package core

import (
	"errors"
	"fmt"
	"strings"

	"homefolder/internal/ports"

	"go.uber.org/zap"
)

var ErrEncryptionKeyNotFound = errors.New("encryption key not found in keyring")

// SecretFileStore is a FileStore whose content is encrypted at rest.
type SecretFileStore interface {
	FileStore
}

var _ SecretFileStore = (*EncryptedFileStore)(nil)

// EncryptedFileStore encrypts content before handing it to the wrapped store.
// One key per application is kept in the keyring.
type EncryptedFileStore struct {
	fileStore FileStore
	keyring   ports.Keyring
	encryptor ports.SymmetricEncryptor
	logger    *zap.Logger
}

func ProvideEncryptedFileStore(
	fileStore FileStore,
	keyring ports.Keyring,
	encryptor ports.SymmetricEncryptor,
	logger *zap.Logger,
) *EncryptedFileStore {
	return &EncryptedFileStore{
		fileStore: fileStore,
		keyring:   keyring,
		encryptor: encryptor,
		logger:    logger,
	}
}

func encryptionKeyName(applicationName string) string {
	return fmt.Sprintf("%s-encryption-key", applicationName)
}

func (e *EncryptedFileStore) EnsureFolder(applicationName, folderName string) (string, error) {
	return e.fileStore.EnsureFolder(applicationName, folderName)
}

func (e *EncryptedFileStore) FilePath(applicationName, folderName, fileName string) (string, error) {
	return e.fileStore.FilePath(applicationName, folderName, fileName)
}

func (e *EncryptedFileStore) WriteFile(applicationName, folderName, fileName, content string) error {
	keyName := encryptionKeyName(applicationName)
	keyExists, err := e.keyring.HasKey(keyName)
	if err != nil {
		return err
	}
	if !keyExists {
		key, err := e.encryptor.CreateKey()
		if err != nil {
			return err
		}
		if err := e.keyring.SetKey(keyName, string(key)); err != nil {
			return err
		}
		e.logger.Info("created encryption key", zap.String("key", keyName))
	}
	key, err := e.keyring.GetKey(keyName)
	if err != nil {
		return err
	}

	encrypted, err := e.encryptor.Encrypt([]byte(content), []byte(key))
	if err != nil {
		return fmt.Errorf("failed to encrypt content: %w", err)
	}

	return e.fileStore.WriteFile(applicationName, folderName, fileName, string(encrypted))
}

func (e *EncryptedFileStore) ReadFile(applicationName, folderName, fileName string) (string, error) {
	keyName := encryptionKeyName(applicationName)
	keyExists, err := e.keyring.HasKey(keyName)
	if err != nil {
		return "", err
	}
	if !keyExists {
		return "", fmt.Errorf("%w: %s", ErrEncryptionKeyNotFound, keyName)
	}

	encrypted, err := e.fileStore.ReadFile(applicationName, folderName, fileName)
	if err != nil {
		return "", err
	}
	key, err := e.keyring.GetKey(keyName)
	if err != nil {
		return "", err
	}

	decrypted, err := e.encryptor.Decrypt([]byte(encrypted), []byte(key))
	if err != nil {
		return "", fmt.Errorf("failed to decrypt content: %w", err)
	}
	return string(decrypted), nil
}

// ReadFileJoined decrypts the stored content and joins its lines.
func (e *EncryptedFileStore) ReadFileJoined(applicationName, folderName, fileName string) (string, error) {
	content, err := e.ReadFile(applicationName, folderName, fileName)
	if err != nil {
		return "", err
	}
	return lineTerminators.Replace(content), nil
}

// lineTerminators drops "\n", "\r\n" and "\r", which is the same as
// splitting into lines and joining them without a separator.
var lineTerminators = strings.NewReplacer("\r", "", "\n", "")
