package ethutil

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

func Test_GeneratePrivateKey_Deterministic(t *testing.T) {
	first, err := GeneratePrivateKey([]byte("secret"), []byte("nonce"))
	require.NoError(t, err)
	second, err := GeneratePrivateKey([]byte("secret"), []byte("nonce"))
	require.NoError(t, err)

	require.Equal(t,
		crypto.PubkeyToAddress(first.PublicKey),
		crypto.PubkeyToAddress(second.PublicKey))

	// The derivation must not depend on any randomness source, so every
	// repeat yields the same address.
	for i := 0; i < 8; i++ {
		repeat, err := GeneratePrivateKey([]byte("secret"), []byte("nonce"))
		require.NoError(t, err)
		require.Equal(t,
			crypto.PubkeyToAddress(first.PublicKey),
			crypto.PubkeyToAddress(repeat.PublicKey))
	}

	other, err := GeneratePrivateKey([]byte("secret"), []byte("other"))
	require.NoError(t, err)
	require.NotEqual(t,
		crypto.PubkeyToAddress(first.PublicKey),
		crypto.PubkeyToAddress(other.PublicKey))
}

func Test_IsWellFormedTxHash(t *testing.T) {
	require.True(t, IsWellFormedTxHash("0xab12345678901234567890123456789012345678901234567890123456789012"))
	require.False(t, IsWellFormedTxHash(""))
	require.False(t, IsWellFormedTxHash("0x123"))
	require.False(t, IsWellFormedTxHash("ab12345678901234567890123456789012345678901234567890123456789012ab"))
	require.False(t, IsWellFormedTxHash("0xzz12345678901234567890123456789012345678901234567890123456789012"))
}
