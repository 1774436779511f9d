package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const saltSize = 16

// keyChain is the private implementation of [KeyChain].
type keyChain struct {
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewKeyChain constructs a [KeyChain] with the OWASP Argon2id parameters:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewKeyChain() KeyChain {
	return &keyChain{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32,
	}
}

func (k *keyChain) deriveKEK(passphrase string, salt []byte) []byte {
	return argon2.IDKey([]byte(passphrase), salt, k.argonTime, k.argonMemory, k.argonThreads, k.argonKeyLen)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

// Seal implements [KeyChain].
func (k *keyChain) Seal(data any, passphrase string) ([]byte, error) {
	plaintext, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal data: %w", err)
	}

	salt := make([]byte, saltSize)
	if _, err = io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRandomness, err)
	}

	gcm, err := newGCM(k.deriveKEK(passphrase, salt))
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRandomness, err)
	}

	blob := make([]byte, 0, saltSize+len(nonce)+len(plaintext)+gcm.Overhead())
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	return gcm.Seal(blob, nonce, plaintext, nil), nil
}

// Open implements [KeyChain]. target must be a non-nil pointer, as for
// [encoding/json.Unmarshal].
func (k *keyChain) Open(blob []byte, passphrase string, target any) error {
	if len(blob) < saltSize {
		return ErrWrongPassphrase
	}
	salt, rest := blob[:saltSize], blob[saltSize:]

	gcm, err := newGCM(k.deriveKEK(passphrase, salt))
	if err != nil {
		return err
	}

	nonceSize := gcm.NonceSize()
	if len(rest) < nonceSize {
		return ErrWrongPassphrase
	}
	nonce, ciphertext := rest[:nonceSize], rest[nonceSize:]

	// An authentication failure almost always means a wrong passphrase.
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return ErrWrongPassphrase
	}

	if err = json.Unmarshal(plaintext, target); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	return nil
}
