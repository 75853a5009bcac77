package domain

import (
	"context"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/defido-labs/backend/contract/defidogs"
	"github.com/defido-labs/backend/internal/domain/minting/types"
	"github.com/defido-labs/backend/internal/entity"
	"github.com/defido-labs/backend/internal/model"
	"github.com/defido-labs/backend/internal/repository"
	"github.com/defido-labs/backend/mocks"
	"github.com/defido-labs/backend/pkg/errorx"
	"github.com/defido-labs/backend/pkg/testutil"
	"github.com/defido-labs/backend/pkg/xcontext"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	testMinter      = common.HexToAddress("0x1111111111111111111111111111111111111111")
	testTransferSig = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))
)

// statusStore is an in-memory stand-in for the redis status cache.
type statusStore struct {
	mu      sync.Mutex
	updates map[string]types.StatusUpdate
}

func newStatusStore() (*statusStore, *testutil.MockRedisClient) {
	store := &statusStore{updates: map[string]types.StatusUpdate{}}

	client := &testutil.MockRedisClient{
		SetObjFunc: func(ctx context.Context, key string, obj any, ttl time.Duration) error {
			store.mu.Lock()
			defer store.mu.Unlock()
			store.updates[key] = obj.(types.StatusUpdate)
			return nil
		},
		GetObjFunc: func(ctx context.Context, key string, v any) error {
			store.mu.Lock()
			defer store.mu.Unlock()
			update, ok := store.updates[key]
			if !ok {
				return redis.Nil
			}
			*(v.(*types.StatusUpdate)) = update
			return nil
		},
	}

	return store, client
}

func mintTestContext(t *testing.T) context.Context {
	return testutil.MockContextWithSessionID("session-1")
}

func newTestMintDomain(t *testing.T, ctx context.Context, client *mocks.EthClient) *mintDomain {
	wallet := &mocks.Wallet{}
	wallet.On("Connected").Return(true)
	wallet.On("Address").Return(testMinter)
	wallet.On("ChainID").Return(big.NewInt(8453))

	contractAddress := common.HexToAddress(xcontext.Configs(ctx).Chain.ContractAddress)
	parser, err := defidogs.NewDefidogsFilterer(contractAddress, nil)
	require.NoError(t, err)

	_, redisClient := newStatusStore()
	d, err := NewMintDomain(
		ctx,
		repository.NewMintTransactionRepository(),
		repository.NewMintedTokenRepository(),
		redisClient,
		wallet,
		client,
		parser,
	)
	require.NoError(t, err)
	return d
}

func mintLog(tokenID int64) *ethtypes.Log {
	return &ethtypes.Log{
		Topics: []common.Hash{
			testTransferSig,
			common.BytesToHash(common.Address{}.Bytes()),
			common.BytesToHash(testMinter.Bytes()),
			common.BigToHash(big.NewInt(tokenID)),
		},
	}
}

func Test_mintDomain_Mint(t *testing.T) {
	ctx := mintTestContext(t)
	client := &mocks.EthClient{}

	value := big.NewInt(6000000000000000)
	tx := ethtypes.NewTransaction(0, testMinter, value, 150000, big.NewInt(1000000000), nil)

	client.On("BalanceAt", mock.Anything, testMinter, mock.Anything).
		Return(new(big.Int).Exp(big.NewInt(10), big.NewInt(20), nil), nil)
	client.On("GetSignedMintTx", mock.Anything, mock.Anything, int64(2), value).Return(tx, nil)
	client.On("SendTransaction", mock.Anything, mock.Anything).Return(nil)
	client.On("BlockNumber", mock.Anything).Return(uint64(10), nil)
	client.On("TransactionReceipt", mock.Anything, mock.Anything).Return(&ethtypes.Receipt{
		Status:      ethtypes.ReceiptStatusSuccessful,
		BlockNumber: big.NewInt(10),
		Logs:        []*ethtypes.Log{mintLog(1407), mintLog(1408)},
	}, nil)

	d := newTestMintDomain(t, ctx, client)

	resp, err := d.Mint(ctx, &model.MintRequest{Quantity: "2"})
	require.NoError(t, err)
	require.Equal(t, types.StateSuccess.String(), resp.State)
	require.Equal(t, []string{"1407", "1408"}, resp.TokenIDs)
	require.Equal(t, []string{"1407", "1408"}, resp.SessionTokenIDs)
	require.NotEmpty(t, resp.ExplorerURL)
	require.Len(t, resp.MarketplaceURLs, 2)

	// The attempt status is served from the cache after the fact.
	status, err := d.GetMintStatus(ctx, &model.GetMintStatusRequest{AttemptID: resp.AttemptID})
	require.NoError(t, err)
	require.Equal(t, types.StateSuccess.String(), status.State)

	// The outcome is recorded durably in background.
	require.Eventually(t, func() bool {
		record, err := d.mintTxRepo.GetByTxHash(ctx, resp.TxHash)
		if err != nil {
			return false
		}
		return record.Status == entity.MintTransactionStatusTypeSuccess && record.Quantity == 2
	}, 2*time.Second, 10*time.Millisecond)

	require.Eventually(t, func() bool {
		tokens, err := d.mintedTokenRepo.GetBySessionID(ctx, "session-1")
		return err == nil && len(tokens) == 2
	}, 2*time.Second, 10*time.Millisecond)

	// The session endpoint lists the minted tokens with marketplace links.
	session, err := d.GetSession(ctx, &model.GetSessionRequest{})
	require.NoError(t, err)
	require.Equal(t, "session-1", session.SessionID)
	require.Len(t, session.Tokens, 2)
	require.Contains(t, session.Tokens[0].MarketplaceURL, "1407")
}

func Test_mintDomain_Mint_DiscardedAttemptStaysOutOfSession(t *testing.T) {
	ctx := mintTestContext(t)
	client := &mocks.EthClient{}

	value := big.NewInt(3000000000000000)
	tx := ethtypes.NewTransaction(0, testMinter, value, 150000, big.NewInt(1000000000), nil)

	gate := make(chan struct{})
	client.On("BalanceAt", mock.Anything, testMinter, mock.Anything).
		Return(new(big.Int).Exp(big.NewInt(10), big.NewInt(20), nil), nil)
	client.On("GetSignedMintTx", mock.Anything, mock.Anything, int64(1), value).Return(tx, nil)
	client.On("SendTransaction", mock.Anything, mock.Anything).Return(nil)
	client.On("BlockNumber", mock.Anything).Return(uint64(10), nil)
	client.On("TransactionReceipt", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { <-gate }).
		Return(&ethtypes.Receipt{
			Status:      ethtypes.ReceiptStatusSuccessful,
			BlockNumber: big.NewInt(10),
			Logs:        []*ethtypes.Log{mintLog(1500)},
		}, nil)

	d := newTestMintDomain(t, ctx, client)

	var (
		zmu   sync.Mutex
		zadds []redis.Z
	)
	redisClient := d.redisClient.(*testutil.MockRedisClient)
	redisClient.ZAddNXFunc = func(ctx context.Context, key string, z redis.Z) error {
		zmu.Lock()
		defer zmu.Unlock()
		zadds = append(zadds, z)
		return nil
	}
	redisClient.ZRangeWithScoresFunc = func(ctx context.Context, key string) ([]redis.Z, error) {
		zmu.Lock()
		defer zmu.Unlock()
		members := make([]redis.Z, len(zadds))
		copy(members, zadds)
		return members, nil
	}

	cancelCtx, cancel := context.WithCancel(ctx)
	cancel()

	_, err := d.Mint(cancelCtx, &model.MintRequest{Quantity: "1"})
	require.Error(t, err)

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.Unavailable, errx.Code)

	// The attempt finishes in background and its tokens are still recorded
	// durably once the chain confirms.
	close(gate)
	require.Eventually(t, func() bool {
		tokens, err := d.mintedTokenRepo.GetBySessionID(ctx, "session-1")
		return err == nil && len(tokens) == 1
	}, 2*time.Second, 10*time.Millisecond)

	// The discarded result never reaches the session token set, neither in
	// memory nor in redis, so a later restore cannot resurrect it.
	require.Never(t, func() bool {
		zmu.Lock()
		defer zmu.Unlock()
		return len(zadds) > 0
	}, 200*time.Millisecond, 10*time.Millisecond)

	session, err := d.GetSession(ctx, &model.GetSessionRequest{})
	require.NoError(t, err)
	require.Empty(t, session.Tokens)
}

func Test_mintDomain_GetMintStatus_NotFound(t *testing.T) {
	ctx := mintTestContext(t)
	d := newTestMintDomain(t, ctx, &mocks.EthClient{})

	_, err := d.GetMintStatus(ctx, &model.GetMintStatusRequest{AttemptID: "unknown"})
	require.Error(t, err)

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)

	_, err = d.GetMintStatus(ctx, &model.GetMintStatusRequest{})
	require.Error(t, err)
}

func Test_mintDomain_TrackMint_BadRequest(t *testing.T) {
	ctx := mintTestContext(t)
	d := newTestMintDomain(t, ctx, &mocks.EthClient{})

	_, err := d.TrackMint(ctx, &model.TrackMintRequest{
		TxHash:  "0x123",
		Address: testMinter.Hex(),
	})
	require.Error(t, err)

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)

	_, err = d.TrackMint(ctx, &model.TrackMintRequest{
		TxHash:  "0xab12345678901234567890123456789012345678901234567890123456789012",
		Address: "not-an-address",
	})
	require.Error(t, err)
}

func Test_mintDomain_GetCollection(t *testing.T) {
	ctx := mintTestContext(t)
	client := &mocks.EthClient{}

	client.On("CollectionInfo", mock.Anything).Return(types.CollectionInfo{
		TotalSupply: big.NewInt(1409),
		MaxSupply:   big.NewInt(5555),
		Cost:        big.NewInt(3000000000000000),
	}, nil)

	d := newTestMintDomain(t, ctx, client)

	resp, err := d.GetCollection(ctx, &model.GetCollectionRequest{})
	require.NoError(t, err)
	require.Equal(t, "1409", resp.TotalSupply)
	require.Equal(t, "5555", resp.MaxSupply)
	require.Equal(t, "4146", resp.Remaining)
	require.Equal(t, "3000000000000000", resp.Cost)
	require.Equal(t, "0.003", resp.MintPrice)
	require.Equal(t, int64(8453), resp.ChainID)
	require.Equal(t, 1, resp.MinQuantity)
	require.Equal(t, 10, resp.MaxQuantity)
}
