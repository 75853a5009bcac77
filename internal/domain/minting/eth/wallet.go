package eth

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"math/big"
	"strings"

	"github.com/defido-labs/backend/pkg/ethutil"
	"github.com/defido-labs/backend/pkg/xcontext"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// ErrSigningRejected is returned by a wallet that declines to sign.
var ErrSigningRejected = errors.New("signing rejected")

// Wallet is the signing collaborator of the mint flow. The default
// implementation derives a relayer key from configured secrets; the interface
// also covers wallets that may refuse to sign.
type Wallet interface {
	Connected() bool
	Address() common.Address
	ChainID() *big.Int

	// SwitchChain re-targets the wallet to another chain. It is a separate,
	// recoverable action and is never invoked automatically by the mint flow.
	SwitchChain(chainID *big.Int) error

	// TransactOpts returns signing options for a transaction carrying the
	// given payment value. The transaction is signed but not sent; sending
	// goes through the RPC client so unhealthy endpoints can be avoided.
	TransactOpts(ctx context.Context, value *big.Int) (*bind.TransactOpts, error)
}

type relayerWallet struct {
	privateKey *ecdsa.PrivateKey
	chainID    *big.Int
}

// NewRelayerWallet builds the server-side wallet from the configured secret
// and nonce. An empty secret yields a disconnected wallet rather than an
// error, so the service can still serve read-only endpoints.
func NewRelayerWallet(ctx context.Context) (*relayerWallet, error) {
	cfg := xcontext.Configs(ctx).Chain
	w := &relayerWallet{chainID: big.NewInt(cfg.ID)}

	if cfg.WalletSecret == "" {
		return w, nil
	}

	privateKey, err := ethutil.GeneratePrivateKey([]byte(cfg.WalletSecret), []byte(cfg.WalletNonce))
	if err != nil {
		return nil, err
	}

	w.privateKey = privateKey
	return w, nil
}

func (w *relayerWallet) Connected() bool {
	return w.privateKey != nil
}

func (w *relayerWallet) Address() common.Address {
	if w.privateKey == nil {
		return common.Address{}
	}

	return crypto.PubkeyToAddress(w.privateKey.PublicKey)
}

func (w *relayerWallet) ChainID() *big.Int {
	return new(big.Int).Set(w.chainID)
}

func (w *relayerWallet) SwitchChain(chainID *big.Int) error {
	if chainID == nil || chainID.Sign() <= 0 {
		return errors.New("invalid chain id")
	}

	w.chainID = new(big.Int).Set(chainID)
	return nil
}

func (w *relayerWallet) TransactOpts(ctx context.Context, value *big.Int) (*bind.TransactOpts, error) {
	if w.privateKey == nil {
		return nil, ErrSigningRejected
	}

	return &bind.TransactOpts{
		From: w.Address(),
		Signer: func(a common.Address, t *ethtypes.Transaction) (*ethtypes.Transaction, error) {
			return ethtypes.SignTx(t, ethtypes.NewEIP155Signer(w.chainID), w.privateKey)
		},
		Value:  value,
		NoSend: true,
	}, nil
}

// IsRejected reports whether an error came from the signer declining the
// transaction. Wallet providers do not return structured codes, so the match
// is on the message, the same way "already known" submissions are detected.
func IsRejected(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ErrSigningRejected) {
		return true
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "user rejected") ||
		strings.Contains(msg, "user denied") ||
		strings.Contains(msg, "rejected by user")
}
