package storage

import (
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// SecureStore encrypts values before handing them to the wrapped store.
// Quiz snapshots carry the user's name and answers, so disk copies are
// sealed with XChaCha20-Poly1305 under a key derived from a passphrase.
type SecureStore struct {
	inner Store
	aead  cipher.AEAD
}

func NewSecureStore(inner Store, passphrase string) (*SecureStore, error) {
	if inner == nil {
		return nil, fmt.Errorf("nil inner store")
	}
	if passphrase == "" {
		return nil, fmt.Errorf("empty passphrase")
	}
	key := sha256.Sum256([]byte(passphrase))
	aead, err := chacha20poly1305.NewX(key[:])
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}
	return &SecureStore{inner: inner, aead: aead}, nil
}

func (s *SecureStore) Save(key string, value []byte) error {
	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	if _, err := rand.Read(nonce); err != nil {
		return fmt.Errorf("generate nonce: %w", err)
	}
	// The key doubles as additional data so a snapshot cannot be replayed
	// under the other key.
	sealed := s.aead.Seal(nonce, nonce, value, []byte(key))
	return s.inner.Save(key, sealed)
}

func (s *SecureStore) Load(key string) ([]byte, bool, error) {
	sealed, ok, err := s.inner.Load(key)
	if err != nil || !ok {
		return nil, ok, err
	}
	if len(sealed) < chacha20poly1305.NonceSizeX {
		return nil, false, fmt.Errorf("decrypt %s: ciphertext too short", key)
	}
	nonce, ciphertext := sealed[:chacha20poly1305.NonceSizeX], sealed[chacha20poly1305.NonceSizeX:]
	plain, err := s.aead.Open(nil, nonce, ciphertext, []byte(key))
	if err != nil {
		return nil, false, fmt.Errorf("decrypt %s: %w", key, err)
	}
	return plain, true, nil
}

func (s *SecureStore) Remove(key string) error {
	return s.inner.Remove(key)
}
