package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyVaultService_EmptyMasterSecret(t *testing.T) {
	_, err := NewKeyVaultService("")
	assert.Error(t, err)
}

func TestKeyVaultService_EncryptDecrypt(t *testing.T) {
	vault, err := NewKeyVaultService("test-master-secret")
	require.NoError(t, err)

	secret := "L1aW4aubDFB7yfras2S1mN3WEe6qH8zq5hJg8pX2vR9kT6mC4d"
	ciphertext, err := vault.Encrypt(secret)
	require.NoError(t, err)
	assert.NotEqual(t, secret, ciphertext)

	decrypted, err := vault.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, secret, decrypted)
}

func TestKeyVaultService_DifferentNonces(t *testing.T) {
	vault, err := NewKeyVaultService("test-master-secret")
	require.NoError(t, err)

	c1, err := vault.Encrypt("same-secret")
	require.NoError(t, err)
	c2, err := vault.Encrypt("same-secret")
	require.NoError(t, err)
	assert.NotEqual(t, c1, c2, "same secret should produce different ciphertext due to random nonce")
}

func TestKeyVaultService_KeyIsDerivedFromMasterSecret(t *testing.T) {
	vaultA, err := NewKeyVaultService("master-a")
	require.NoError(t, err)
	vaultB, err := NewKeyVaultService("master-b")
	require.NoError(t, err)

	ciphertext, err := vaultA.Encrypt("secret")
	require.NoError(t, err)

	_, err = vaultB.Decrypt(ciphertext)
	assert.Error(t, err, "a different master secret must not open the ciphertext")
}

func TestKeyVaultService_TamperedCiphertext(t *testing.T) {
	vault, err := NewKeyVaultService("test-master-secret")
	require.NoError(t, err)

	ciphertext, err := vault.Encrypt("secret")
	require.NoError(t, err)

	tampered := ciphertext[:len(ciphertext)-2] + "ff"
	_, err = vault.Decrypt(tampered)
	assert.Error(t, err)
}
