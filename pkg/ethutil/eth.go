package ethutil

import (
	"crypto/ecdsa"
	"crypto/sha256"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// ZeroAddress is the burn sentinel. An ownership transfer from this address
// denotes a fresh mint.
var ZeroAddress = common.HexToAddress("0x0000000000000000000000000000000000000000")

// txHashLength is the length of a 0x-prefixed 32-byte hash in hex form.
const txHashLength = 66

// GeneratePrivateKey derives the relayer key from the secret and nonce. The
// digest is used as the scalar directly so the same inputs always produce
// the same key.
func GeneratePrivateKey(secret, nonce []byte) (*ecdsa.PrivateKey, error) {
	seed := sha256.Sum256(append(secret, nonce...))
	return ethcrypto.ToECDSA(seed[:])
}

func GeneratePublicKey(secret, nonce []byte) (common.Address, error) {
	walletPrivateKey, err := GeneratePrivateKey(secret, nonce)
	if err != nil {
		return common.Address{}, err
	}

	return ethcrypto.PubkeyToAddress(walletPrivateKey.PublicKey), nil
}

// IsWellFormedTxHash reports whether s looks like a transaction hash. A
// value of any other shape means the wallet has not produced a hash yet, it
// is not an error by itself.
func IsWellFormedTxHash(s string) bool {
	if len(s) != txHashLength || !strings.HasPrefix(s, "0x") {
		return false
	}

	for _, c := range s[2:] {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}

	return true
}
