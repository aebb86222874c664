package symmetric_encryptor

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"homefolder/internal/ports"
)

const keySize = 32

var ErrCipherTextTooShort = errors.New("ciphertext too short")

var _ ports.SymmetricEncryptor = (*AesGcmEncryptor)(nil)

// AesGcmEncryptor seals content with AES-256-GCM. The random nonce is
// prepended to the sealed bytes and the result is base64 encoded.
type AesGcmEncryptor struct{}

func ProvideAesGcmEncryptor() *AesGcmEncryptor {
	return &AesGcmEncryptor{}
}

func (a AesGcmEncryptor) Encrypt(plaintext []byte, encodedKey []byte) ([]byte, error) {
	aesGCM, err := newGCM(encodedKey)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aesGCM.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to create nonce: %w", err)
	}
	sealed := aesGCM.Seal(nonce, nonce, plaintext, nil)

	return []byte(base64.StdEncoding.EncodeToString(sealed)), nil
}

func (a AesGcmEncryptor) Decrypt(encodedCipherText []byte, encodedKey []byte) ([]byte, error) {
	aesGCM, err := newGCM(encodedKey)
	if err != nil {
		return nil, err
	}
	sealed, err := base64.StdEncoding.DecodeString(string(encodedCipherText))
	if err != nil {
		return nil, fmt.Errorf("failed to decode ciphertext: %w", err)
	}

	nonceSize := aesGCM.NonceSize()
	if len(sealed) < nonceSize {
		return nil, ErrCipherTextTooShort
	}
	nonce, cipherText := sealed[:nonceSize], sealed[nonceSize:]

	plaintext, err := aesGCM.Open(nil, nonce, cipherText, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: %w", err)
	}
	return plaintext, nil
}

func (a AesGcmEncryptor) CreateKey() ([]byte, error) {
	key := make([]byte, keySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}
	return []byte(base64.StdEncoding.EncodeToString(key)), nil
}

func newGCM(encodedKey []byte) (cipher.AEAD, error) {
	key, err := base64.StdEncoding.DecodeString(string(encodedKey))
	if err != nil {
		return nil, fmt.Errorf("failed to decode key: %w", err)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
