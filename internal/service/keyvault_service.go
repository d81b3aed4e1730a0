package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// KeyVaultService protects wallet signing secrets at rest with AES-256-GCM.
// The AES key is HKDF-derived from the operator's master secret, so rotating
// the master secret re-keys the vault without storing key material anywhere.
type KeyVaultService struct {
	key []byte // 32-byte derived AES-256 key
}

// NewKeyVaultService derives the vault key from the master secret.
func NewKeyVaultService(masterSecret string) (*KeyVaultService, error) {
	if masterSecret == "" {
		return nil, fmt.Errorf("vault master secret required")
	}

	kdf := hkdf.New(sha256.New, []byte(masterSecret), nil, []byte("wallet-key-vault"))
	key := make([]byte, 32)
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, fmt.Errorf("deriving vault key: %w", err)
	}
	return &KeyVaultService{key: key}, nil
}

// Encrypt seals a signing secret for storage.
// Returns hex-encoded string: nonce + ciphertext.
func (s *KeyVaultService) Encrypt(secret string) (string, error) {
	block, err := aes.NewCipher(s.key)
	if err != nil {
		return "", fmt.Errorf("creating cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("creating GCM: %w", err)
	}

	nonce := make([]byte, aesGCM.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generating nonce: %w", err)
	}

	ciphertext := aesGCM.Seal(nonce, nonce, []byte(secret), nil)
	return hex.EncodeToString(ciphertext), nil
}

// Decrypt opens a stored ciphertext. Callers must never persist the result.
func (s *KeyVaultService) Decrypt(ciphertextHex string) (string, error) {
	ciphertext, err := hex.DecodeString(ciphertextHex)
	if err != nil {
		return "", fmt.Errorf("decoding ciphertext: %w", err)
	}

	block, err := aes.NewCipher(s.key)
	if err != nil {
		return "", fmt.Errorf("creating cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("creating GCM: %w", err)
	}

	nonceSize := aesGCM.NonceSize()
	if len(ciphertext) < nonceSize {
		return "", fmt.Errorf("ciphertext too short")
	}

	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]
	secret, err := aesGCM.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("decrypting: %w", err)
	}

	return string(secret), nil
}
