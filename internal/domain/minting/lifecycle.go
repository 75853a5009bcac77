package minting

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"time"

	"github.com/defido-labs/backend/internal/domain/minting/eth"
	"github.com/defido-labs/backend/internal/domain/minting/types"
	"github.com/defido-labs/backend/pkg/errorx"
	"github.com/defido-labs/backend/pkg/ethutil"
	"github.com/defido-labs/backend/pkg/xcontext"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

// StatusSink receives a snapshot on every attempt state transition, so the
// interface always has something to show while the chain is slow.
type StatusSink interface {
	Publish(ctx context.Context, update types.StatusUpdate)
}

// Attempt is one mint in flight. Its state only moves forward; once it is
// terminal the done channel is closed.
type Attempt struct {
	ID        string
	SessionID string

	mu        sync.Mutex
	state     types.MintState
	txHash    common.Hash
	quantity  int
	paidValue *big.Int
	tokenIDs  []string
	noIDs     bool
	merged    bool
	err       error

	done chan struct{}
}

func newAttempt(sessionID string) *Attempt {
	return &Attempt{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		state:     types.StateIdle,
		done:      make(chan struct{}),
	}
}

// Done is closed once the attempt reaches a terminal state.
func (a *Attempt) Done() <-chan struct{} {
	return a.done
}

func (a *Attempt) Err() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.err
}

// Quantity is the validated mint quantity, zero until validation passed.
func (a *Attempt) Quantity() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.quantity
}

// Merged reports whether the session accepted the attempt's token ids. It is
// false for attempts that were discarded before extraction finished.
func (a *Attempt) Merged() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.merged
}

// PaidValue is the exact wei amount attached to the submitted transaction,
// in decimal string form. Empty until a transaction was built.
func (a *Attempt) PaidValue() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.paidValue == nil {
		return ""
	}

	return a.paidValue.String()
}

// Snapshot freezes the attempt into its UI-facing form.
func (a *Attempt) Snapshot() types.StatusUpdate {
	a.mu.Lock()
	defer a.mu.Unlock()

	update := types.StatusUpdate{
		AttemptID: a.ID,
		SessionID: a.SessionID,
		State:     a.state.String(),
		NoIDs:     a.noIDs,
	}

	if a.txHash != (common.Hash{}) {
		update.TxHash = a.txHash.Hex()
	}

	if len(a.tokenIDs) > 0 {
		update.TokenIDs = make([]string, len(a.tokenIDs))
		copy(update.TokenIDs, a.tokenIDs)
	}

	if a.err != nil {
		var xerr errorx.Error
		if !errors.As(a.err, &xerr) {
			xerr = errorx.Unknown
		}

		update.ErrorCode = int(xerr.Code)
		update.Error = xerr.Message
	}

	return update
}

// Lifecycle drives a mint attempt through validation, signing, submission,
// confirmation and token-id extraction. The per-unit price is converted to
// wei exactly once, at construction; attempts only multiply it.
type Lifecycle struct {
	wallet    eth.Wallet
	submitter *eth.Submitter
	waiter    *eth.ConfirmationWaiter
	parser    TransferParser
	sink      StatusSink

	perUnitCost   *big.Int
	minQuantity   int
	maxQuantity   int
	confirmations uint64
	timeout       time.Duration
}

func NewLifecycle(
	ctx context.Context,
	wallet eth.Wallet,
	client eth.EthClient,
	parser TransferParser,
	sink StatusSink,
) (*Lifecycle, error) {
	cfg := xcontext.Configs(ctx).Chain

	perUnitCost, err := ParseUnits(cfg.MintPrice, NativeDecimals)
	if err != nil {
		return nil, err
	}

	return &Lifecycle{
		wallet:        wallet,
		submitter:     eth.NewSubmitter(client),
		waiter:        eth.NewConfirmationWaiter(ctx, client),
		parser:        parser,
		sink:          sink,
		perUnitCost:   perUnitCost,
		minQuantity:   cfg.MinMintQuantity,
		maxQuantity:   cfg.MaxMintQuantity,
		confirmations: uint64(cfg.RequiredConfirmations),
		timeout:       cfg.ConfirmationTimeout.Duration,
	}, nil
}

// Run starts a mint of the requested quantity. It returns as soon as the
// attempt is registered; the lifecycle continues on the given context, which
// should outlive the originating request.
func (l *Lifecycle) Run(ctx context.Context, session *Session, quantityInput string) (*Attempt, error) {
	attempt := newAttempt(session.ID())
	if err := session.Begin(attempt.ID); err != nil {
		return nil, err
	}

	go l.run(ctx, session, attempt, quantityInput)
	return attempt, nil
}

// Track follows a transaction that was submitted elsewhere, typically by the
// visitor's own wallet, and folds its minted ids into the session.
func (l *Lifecycle) Track(
	ctx context.Context, session *Session, txHash string, recipient common.Address,
) (*Attempt, error) {
	if !ethutil.IsWellFormedTxHash(txHash) {
		return nil, errorx.New(errorx.BadRequest, "Transaction hash is not yet available")
	}

	attempt := newAttempt(session.ID())
	if err := session.Begin(attempt.ID); err != nil {
		return nil, err
	}

	attempt.mu.Lock()
	attempt.txHash = common.HexToHash(txHash)
	attempt.mu.Unlock()

	go l.track(ctx, session, attempt, recipient)
	return attempt, nil
}

func (l *Lifecycle) run(ctx context.Context, session *Session, attempt *Attempt, quantityInput string) {
	l.transition(ctx, attempt, types.StateValidating)

	quantity, err := ParseQuantity(SanitizeQuantityInput(quantityInput), l.minQuantity, l.maxQuantity)
	if err != nil {
		l.fail(ctx, session, attempt, err)
		return
	}

	totalCost := TotalCost(l.perUnitCost, quantity)

	attempt.mu.Lock()
	attempt.quantity = quantity
	attempt.mu.Unlock()

	l.transition(ctx, attempt, types.StateAwaitingSignature)

	tx, err := l.submitter.Submit(ctx, l.wallet, int64(quantity), totalCost)
	if err != nil {
		l.fail(ctx, session, attempt, err)
		return
	}

	attempt.mu.Lock()
	attempt.txHash = tx.TxHash
	attempt.paidValue = tx.PaidValue
	attempt.mu.Unlock()

	l.transition(ctx, attempt, types.StateSubmitted)
	l.awaitAndExtract(ctx, session, attempt, l.wallet.Address())
}

func (l *Lifecycle) track(ctx context.Context, session *Session, attempt *Attempt, recipient common.Address) {
	l.transition(ctx, attempt, types.StateSubmitted)
	l.awaitAndExtract(ctx, session, attempt, recipient)
}

func (l *Lifecycle) awaitAndExtract(
	ctx context.Context, session *Session, attempt *Attempt, recipient common.Address,
) {
	l.transition(ctx, attempt, types.StateAwaitingConfirmation)

	attempt.mu.Lock()
	txHash := attempt.txHash
	attempt.mu.Unlock()

	receipt, err := l.waiter.AwaitConfirmation(ctx, txHash, l.confirmations, l.timeout)
	if err != nil {
		l.fail(ctx, session, attempt, err)
		return
	}

	if receipt.Status != 1 {
		l.fail(ctx, session, attempt,
			errorx.New(errorx.ProviderError, "Transaction reverted on chain"))
		return
	}

	l.transition(ctx, attempt, types.StateExtractingEvents)

	ids := ExtractMintedIDs(l.parser, receipt, recipient)
	merged := session.Merge(attempt.ID, ids)
	if !merged {
		xcontext.Logger(ctx).Infof("Discarding result of superseded attempt %s", attempt.ID)
	}

	attempt.mu.Lock()
	attempt.tokenIDs = ids
	attempt.noIDs = len(ids) == 0
	attempt.merged = merged
	attempt.state = types.StateSuccess
	attempt.mu.Unlock()

	l.finish(ctx, session, attempt)
}

func (l *Lifecycle) fail(ctx context.Context, session *Session, attempt *Attempt, err error) {
	xcontext.Logger(ctx).Warnf("Mint attempt %s failed: %v", attempt.ID, err)

	attempt.mu.Lock()
	attempt.err = err
	attempt.state = types.StateFailed
	attempt.mu.Unlock()

	l.finish(ctx, session, attempt)
}

func (l *Lifecycle) finish(ctx context.Context, session *Session, attempt *Attempt) {
	session.End(attempt.ID)
	l.publish(ctx, attempt)
	close(attempt.done)
}

func (l *Lifecycle) transition(ctx context.Context, attempt *Attempt, state types.MintState) {
	attempt.mu.Lock()
	attempt.state = state
	attempt.mu.Unlock()

	l.publish(ctx, attempt)
}

func (l *Lifecycle) publish(ctx context.Context, attempt *Attempt) {
	if l.sink == nil {
		return
	}

	l.sink.Publish(ctx, attempt.Snapshot())
}
