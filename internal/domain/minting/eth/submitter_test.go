package eth_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/defido-labs/backend/internal/domain/minting/eth"
	"github.com/defido-labs/backend/mocks"
	"github.com/defido-labs/backend/pkg/errorx"
	"github.com/defido-labs/backend/pkg/testutil"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testMinter = common.HexToAddress("0x1111111111111111111111111111111111111111")

func newMintTx(value *big.Int) *ethtypes.Transaction {
	return ethtypes.NewTransaction(
		0, common.HexToAddress("0x719b9c5D4672b743adE03c0888C69E15D4967940"),
		value, 150000, big.NewInt(1000000000), nil)
}

func submitterWallet(connected bool, chainID int64) *mocks.Wallet {
	wallet := &mocks.Wallet{}
	wallet.On("Connected").Return(connected)
	wallet.On("Address").Return(testMinter)
	wallet.On("ChainID").Return(big.NewInt(chainID))
	return wallet
}

func requireCode(t *testing.T, err error, code errorx.Code) {
	t.Helper()
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, code, errx.Code)
}

func Test_Submitter_Submit(t *testing.T) {
	ctx := testutil.MockContext()
	client := &mocks.EthClient{}
	wallet := submitterWallet(true, 8453)
	value := big.NewInt(6000000000000000)

	client.On("BalanceAt", mock.Anything, testMinter, mock.Anything).
		Return(new(big.Int).Exp(big.NewInt(10), big.NewInt(20), nil), nil)
	client.On("GetSignedMintTx", mock.Anything, wallet, int64(2), value).
		Return(newMintTx(value), nil)
	client.On("SendTransaction", mock.Anything, mock.Anything).Return(nil)

	submitted, err := eth.NewSubmitter(client).Submit(ctx, wallet, 2, value)
	require.NoError(t, err)
	require.Equal(t, value.String(), submitted.PaidValue.String())
	require.NotEqual(t, common.Hash{}, submitted.TxHash)
}

func Test_Submitter_WalletNotConnected(t *testing.T) {
	ctx := testutil.MockContext()
	wallet := submitterWallet(false, 8453)

	_, err := eth.NewSubmitter(&mocks.EthClient{}).Submit(ctx, wallet, 1, big.NewInt(1))
	requireCode(t, err, errorx.WalletNotConnected)
}

func Test_Submitter_WrongNetwork(t *testing.T) {
	ctx := testutil.MockContext()
	wallet := submitterWallet(true, 1)

	_, err := eth.NewSubmitter(&mocks.EthClient{}).Submit(ctx, wallet, 1, big.NewInt(1))
	requireCode(t, err, errorx.WrongNetwork)
}

func Test_Submitter_UserRejected(t *testing.T) {
	ctx := testutil.MockContext()
	client := &mocks.EthClient{}
	wallet := submitterWallet(true, 8453)

	client.On("BalanceAt", mock.Anything, testMinter, mock.Anything).
		Return(big.NewInt(1), nil)
	client.On("GetSignedMintTx", mock.Anything, wallet, mock.Anything, mock.Anything).
		Return(nil, errors.New("MetaMask Tx Signature: User denied transaction signature"))

	_, err := eth.NewSubmitter(client).Submit(ctx, wallet, 1, big.NewInt(1))
	requireCode(t, err, errorx.UserRejected)
}

func Test_Submitter_InsufficientBalance(t *testing.T) {
	ctx := testutil.MockContext()
	client := &mocks.EthClient{}
	wallet := submitterWallet(true, 8453)
	value := big.NewInt(6000000000000000)

	client.On("BalanceAt", mock.Anything, testMinter, mock.Anything).
		Return(big.NewInt(100), nil)
	client.On("GetSignedMintTx", mock.Anything, wallet, mock.Anything, mock.Anything).
		Return(newMintTx(value), nil)

	_, err := eth.NewSubmitter(client).Submit(ctx, wallet, 2, value)
	requireCode(t, err, errorx.Unavailable)
}

func Test_Submitter_ToleratesAlreadyKnown(t *testing.T) {
	ctx := testutil.MockContext()
	client := &mocks.EthClient{}
	wallet := submitterWallet(true, 8453)
	value := big.NewInt(3000000000000000)

	client.On("BalanceAt", mock.Anything, testMinter, mock.Anything).
		Return(new(big.Int).Exp(big.NewInt(10), big.NewInt(20), nil), nil)
	client.On("GetSignedMintTx", mock.Anything, wallet, mock.Anything, mock.Anything).
		Return(newMintTx(value), nil)
	client.On("SendTransaction", mock.Anything, mock.Anything).
		Return(errors.New("already known"))

	submitted, err := eth.NewSubmitter(client).Submit(ctx, wallet, 1, value)
	require.NoError(t, err)
	require.NotNil(t, submitted)
}

func Test_Submitter_ProviderErrorOnSend(t *testing.T) {
	ctx := testutil.MockContext()
	client := &mocks.EthClient{}
	wallet := submitterWallet(true, 8453)
	value := big.NewInt(3000000000000000)

	client.On("BalanceAt", mock.Anything, testMinter, mock.Anything).
		Return(new(big.Int).Exp(big.NewInt(10), big.NewInt(20), nil), nil)
	client.On("GetSignedMintTx", mock.Anything, wallet, mock.Anything, mock.Anything).
		Return(newMintTx(value), nil)
	client.On("SendTransaction", mock.Anything, mock.Anything).
		Return(errors.New("nonce too low"))

	_, err := eth.NewSubmitter(client).Submit(ctx, wallet, 1, value)
	requireCode(t, err, errorx.ProviderError)
}
