package eth

import (
	"context"
	"math/big"
	"strings"

	"github.com/defido-labs/backend/internal/domain/minting/types"
	"github.com/defido-labs/backend/pkg/errorx"
	"github.com/defido-labs/backend/pkg/xcontext"
)

// Submitter signs and broadcasts mint transactions. Every failure maps to a
// distinct error code so callers can tell a declined signature apart from a
// node fault.
type Submitter struct {
	client EthClient
}

func NewSubmitter(client EthClient) *Submitter {
	return &Submitter{client: client}
}

// Submit sends a mint of the given quantity paying totalCost wei. It returns
// the transaction hash and the value actually attached to it.
func (s *Submitter) Submit(
	ctx context.Context,
	wallet Wallet,
	quantity int64,
	totalCost *big.Int,
) (*types.SubmittedTx, error) {
	if !wallet.Connected() {
		return nil, errorx.New(errorx.WalletNotConnected, "No wallet is connected")
	}

	chainID := big.NewInt(xcontext.Configs(ctx).Chain.ID)
	if wallet.ChainID().Cmp(chainID) != 0 {
		return nil, errorx.New(errorx.WrongNetwork,
			"Wallet is on chain %s, expected %s", wallet.ChainID(), chainID)
	}

	from := wallet.Address()
	balance, err := s.client.BalanceAt(ctx, from, nil)
	if err != nil || balance == nil {
		xcontext.Logger(ctx).Errorf("Cannot get balance for account %s: %v", from, err)
		return nil, errorx.New(errorx.ProviderError, "Cannot reach the network")
	}

	tx, err := s.client.GetSignedMintTx(ctx, wallet, quantity, totalCost)
	if err != nil {
		if IsRejected(err) {
			return nil, errorx.New(errorx.UserRejected, "Transaction was rejected")
		}

		xcontext.Logger(ctx).Errorf("Failed to sign mint tx: %v", err)
		return nil, errorx.New(errorx.ProviderError, "Cannot build the mint transaction")
	}

	// Check the balance to see if we have enough native token.
	minimum := new(big.Int).Mul(tx.GasPrice(), big.NewInt(int64(tx.Gas())))
	minimum = minimum.Add(minimum, tx.Value())
	if minimum.Cmp(balance) > 0 {
		xcontext.Logger(ctx).Errorf(
			"Balance smaller than minimum required, from = %s, balance = %s, minimum = %s",
			from.String(), balance.String(), minimum.String())
		return nil, errorx.New(errorx.Unavailable, "Insufficient funds to mint")
	}

	err = s.client.SendTransaction(ctx, tx)
	if err != nil && !strings.Contains(err.Error(), "already known") {
		// "already known" is a tx submission duplication. It's possible that
		// another node has submitted the same transaction. This is counted as
		// successful submission despite a returned error. Ethereum does not
		// return error code in its JSON RPC, so we have to rely on string
		// matching.
		xcontext.Logger(ctx).Errorf("Failed to dispatch tx: %v", err)
		return nil, errorx.New(errorx.ProviderError, "Cannot submit the mint transaction")
	}

	xcontext.Logger(ctx).Infof("Mint tx dispatched from %s, txHash = %s, value = %s",
		from, tx.Hash(), tx.Value())

	return &types.SubmittedTx{TxHash: tx.Hash(), PaidValue: new(big.Int).Set(tx.Value())}, nil
}
