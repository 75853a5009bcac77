package eth_test

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/defido-labs/backend/internal/domain/minting/eth"
	"github.com/defido-labs/backend/mocks"
	"github.com/defido-labs/backend/pkg/errorx"
	"github.com/defido-labs/backend/pkg/testutil"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testTxHash = common.HexToHash("0xab12345678901234567890123456789012345678901234567890123456789012")

func confirmedReceipt(block int64) *ethtypes.Receipt {
	return &ethtypes.Receipt{
		Status:      ethtypes.ReceiptStatusSuccessful,
		BlockNumber: big.NewInt(block),
	}
}

func Test_ConfirmationWaiter_ReturnsOnceConfirmed(t *testing.T) {
	ctx := testutil.MockContext()
	client := &mocks.EthClient{}

	client.On("TransactionReceipt", mock.Anything, testTxHash).Return(confirmedReceipt(10), nil)
	client.On("BlockNumber", mock.Anything).Return(uint64(10), nil)

	waiter := eth.NewConfirmationWaiter(ctx, client)
	receipt, err := waiter.AwaitConfirmation(ctx, testTxHash, 1, time.Second)
	require.NoError(t, err)
	require.Equal(t, int64(10), receipt.BlockNumber.Int64())
}

func Test_ConfirmationWaiter_WaitsForEnoughConfirmations(t *testing.T) {
	ctx := testutil.MockContext()
	client := &mocks.EthClient{}

	client.On("TransactionReceipt", mock.Anything, testTxHash).Return(confirmedReceipt(10), nil)
	client.On("BlockNumber", mock.Anything).Return(uint64(10), nil).Times(3)
	client.On("BlockNumber", mock.Anything).Return(uint64(12), nil)

	waiter := eth.NewConfirmationWaiter(ctx, client)
	receipt, err := waiter.AwaitConfirmation(ctx, testTxHash, 3, time.Second)
	require.NoError(t, err)
	require.NotNil(t, receipt)
}

func Test_ConfirmationWaiter_PendingUntilDeadline(t *testing.T) {
	ctx := testutil.MockContext()
	client := &mocks.EthClient{}

	// A pending transaction is not a provider failure; the waiter keeps
	// polling until the deadline and then reports a timeout.
	client.On("TransactionReceipt", mock.Anything, testTxHash).Return(nil, ethereum.NotFound)

	waiter := eth.NewConfirmationWaiter(ctx, client)
	_, err := waiter.AwaitConfirmation(ctx, testTxHash, 1, 20*time.Millisecond)
	require.Error(t, err)

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.ConfirmationTimeout, errx.Code)
}

func Test_ConfirmationWaiter_GivesUpAfterRepeatedProviderFailures(t *testing.T) {
	ctx := testutil.MockContext()
	client := &mocks.EthClient{}

	client.On("TransactionReceipt", mock.Anything, testTxHash).
		Return(nil, errors.New("connection refused"))

	waiter := eth.NewConfirmationWaiter(ctx, client)
	_, err := waiter.AwaitConfirmation(ctx, testTxHash, 1, time.Second)
	require.Error(t, err)

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.ProviderError, errx.Code)
}

func Test_ConfirmationWaiter_NotFoundResetsFailureCount(t *testing.T) {
	ctx := testutil.MockContext()
	client := &mocks.EthClient{}

	// Provider failures interleaved with pending responses never accumulate
	// to the give-up threshold.
	for i := 0; i < 20; i++ {
		client.On("TransactionReceipt", mock.Anything, testTxHash).
			Return(nil, errors.New("connection refused")).Times(3)
		client.On("TransactionReceipt", mock.Anything, testTxHash).
			Return(nil, ethereum.NotFound).Once()
	}

	waiter := eth.NewConfirmationWaiter(ctx, client)
	_, err := waiter.AwaitConfirmation(ctx, testTxHash, 1, 50*time.Millisecond)
	require.Error(t, err)

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.ConfirmationTimeout, errx.Code)
}
