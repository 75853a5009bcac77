package eth

import (
	"context"
	"errors"
	"time"

	"github.com/defido-labs/backend/pkg/errorx"
	"github.com/defido-labs/backend/pkg/xcontext"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	etypes "github.com/ethereum/go-ethereum/core/types"
)

const (
	MaxReceiptRetry = 5
)

// ConfirmationWaiter polls for the receipt of a submitted transaction until
// it has been included for the required number of confirmations, or until the
// overall deadline passes.
type ConfirmationWaiter struct {
	client       EthClient
	pollInterval time.Duration
}

func NewConfirmationWaiter(ctx context.Context, client EthClient) *ConfirmationWaiter {
	return &ConfirmationWaiter{
		client:       client,
		pollInterval: xcontext.Configs(ctx).Chain.ReceiptPollInterval.Duration,
	}
}

// AwaitConfirmation blocks until the transaction has the required number of
// confirmations and returns its receipt. A pending transaction is not an
// error; only MaxReceiptRetry consecutive provider failures give up early.
// The deadline produces a timeout error, the transaction itself may still
// confirm later.
func (w *ConfirmationWaiter) AwaitConfirmation(
	ctx context.Context,
	txHash common.Hash,
	confirmations uint64,
	timeout time.Duration,
) (*etypes.Receipt, error) {
	if confirmations == 0 {
		confirmations = 1
	}

	deadline := time.Now().Add(timeout)
	retry := 0

	for {
		if time.Now().After(deadline) {
			return nil, errorx.New(errorx.ConfirmationTimeout,
				"Transaction was not confirmed within %s", timeout)
		}

		callCtx, cancel := context.WithTimeout(ctx, RpcTimeOut)
		receipt, err := w.client.TransactionReceipt(callCtx, txHash)
		cancel()

		switch {
		case err == nil && receipt != nil && receipt.BlockNumber != nil:
			retry = 0
			confirmed, err := w.countConfirmations(ctx, receipt)
			if err != nil {
				xcontext.Logger(ctx).Warnf("Cannot get head block for tx %s: %v", txHash, err)
			} else if confirmed >= confirmations {
				return receipt, nil
			}

		case errors.Is(err, ethereum.NotFound):
			// The transaction is still pending, or the node has not seen it
			// yet. Keep polling until the deadline.
			retry = 0

		default:
			xcontext.Logger(ctx).Warnf("Cannot get receipt for tx hash %s: %v", txHash, err)
			retry++
			if retry > MaxReceiptRetry {
				return nil, errorx.New(errorx.ProviderError,
					"Cannot get receipt for transaction %s", txHash)
			}
		}

		select {
		case <-ctx.Done():
			return nil, errorx.New(errorx.ConfirmationTimeout,
				"Transaction was not confirmed within %s", timeout)
		case <-time.After(w.pollInterval):
		}
	}
}

func (w *ConfirmationWaiter) countConfirmations(ctx context.Context, receipt *etypes.Receipt) (uint64, error) {
	callCtx, cancel := context.WithTimeout(ctx, RpcTimeOut)
	head, err := w.client.BlockNumber(callCtx)
	cancel()

	if err != nil {
		return 0, err
	}

	included := receipt.BlockNumber.Uint64()
	if head < included {
		return 0, nil
	}

	return head - included + 1, nil
}
