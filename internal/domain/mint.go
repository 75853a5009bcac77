package domain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/defido-labs/backend/internal/domain/minting"
	"github.com/defido-labs/backend/internal/domain/minting/eth"
	"github.com/defido-labs/backend/internal/domain/minting/types"
	"github.com/defido-labs/backend/internal/entity"
	"github.com/defido-labs/backend/internal/model"
	"github.com/defido-labs/backend/internal/repository"
	"github.com/defido-labs/backend/pkg/errorx"
	"github.com/defido-labs/backend/pkg/xcontext"
	"github.com/defido-labs/backend/pkg/xredis"
	"github.com/ethereum/go-ethereum/common"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const attemptStatusTTL = 24 * time.Hour

type MintDomain interface {
	Mint(context.Context, *model.MintRequest) (*model.MintResponse, error)
	TrackMint(context.Context, *model.TrackMintRequest) (*model.TrackMintResponse, error)
	GetMintStatus(context.Context, *model.GetMintStatusRequest) (*model.GetMintStatusResponse, error)
	GetSession(context.Context, *model.GetSessionRequest) (*model.GetSessionResponse, error)
	GetCollection(context.Context, *model.GetCollectionRequest) (*model.GetCollectionResponse, error)
}

type mintDomain struct {
	mintTxRepo      repository.MintTransactionRepository
	mintedTokenRepo repository.MintedTokenRepository
	redisClient     xredis.Client
	lifecycle       *minting.Lifecycle
	sessions        *minting.SessionManager
	wallet          eth.Wallet
	ethClient       eth.EthClient
}

func NewMintDomain(
	ctx context.Context,
	mintTxRepo repository.MintTransactionRepository,
	mintedTokenRepo repository.MintedTokenRepository,
	redisClient xredis.Client,
	wallet eth.Wallet,
	ethClient eth.EthClient,
	parser minting.TransferParser,
) (*mintDomain, error) {
	d := &mintDomain{
		mintTxRepo:      mintTxRepo,
		mintedTokenRepo: mintedTokenRepo,
		redisClient:     redisClient,
		sessions:        minting.NewSessionManager(),
		wallet:          wallet,
		ethClient:       ethClient,
	}

	lifecycle, err := minting.NewLifecycle(ctx, wallet, ethClient, parser, d)
	if err != nil {
		return nil, err
	}

	d.lifecycle = lifecycle
	return d, nil
}

// Publish caches every attempt transition so GetMintStatus can answer from
// redis even after the originating request is gone.
func (d *mintDomain) Publish(ctx context.Context, update types.StatusUpdate) {
	err := d.redisClient.SetObj(ctx, attemptStatusKey(update.AttemptID), update, attemptStatusTTL)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot cache status of attempt %s: %v", update.AttemptID, err)
	}
}

func (d *mintDomain) Mint(ctx context.Context, req *model.MintRequest) (*model.MintResponse, error) {
	session := d.session(ctx)
	bgCtx := detachedContext(ctx)

	attempt, err := d.lifecycle.Run(bgCtx, session, req.Quantity)
	if err != nil {
		return nil, err
	}

	go d.recordOutcome(bgCtx, attempt, d.wallet.Address().Hex())

	update, err := d.waitAttempt(ctx, session, attempt)
	if err != nil {
		return nil, err
	}

	return &model.MintResponse{
		StatusUpdate:    update,
		SessionTokenIDs: session.MintedIDs(),
		ExplorerURL:     explorerURL(ctx, update.TxHash),
		MarketplaceURLs: marketplaceURLs(ctx, update.TokenIDs),
	}, nil
}

func (d *mintDomain) TrackMint(
	ctx context.Context, req *model.TrackMintRequest,
) (*model.TrackMintResponse, error) {
	if !common.IsHexAddress(req.Address) {
		return nil, errorx.New(errorx.BadRequest, "Invalid recipient address")
	}

	session := d.session(ctx)
	bgCtx := detachedContext(ctx)

	attempt, err := d.lifecycle.Track(bgCtx, session, req.TxHash, common.HexToAddress(req.Address))
	if err != nil {
		return nil, err
	}

	go d.recordOutcome(bgCtx, attempt, common.HexToAddress(req.Address).Hex())

	update, err := d.waitAttempt(ctx, session, attempt)
	if err != nil {
		return nil, err
	}

	return &model.TrackMintResponse{
		StatusUpdate:    update,
		SessionTokenIDs: session.MintedIDs(),
		ExplorerURL:     explorerURL(ctx, update.TxHash),
		MarketplaceURLs: marketplaceURLs(ctx, update.TokenIDs),
	}, nil
}

func (d *mintDomain) GetMintStatus(
	ctx context.Context, req *model.GetMintStatusRequest,
) (*model.GetMintStatusResponse, error) {
	if req.AttemptID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty attempt id")
	}

	var update types.StatusUpdate
	err := d.redisClient.GetObj(ctx, attemptStatusKey(req.AttemptID), &update)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errorx.New(errorx.NotFound, "Not found mint attempt")
		}

		xcontext.Logger(ctx).Errorf("Cannot get status of attempt %s: %v", req.AttemptID, err)
		return nil, errorx.Unknown
	}

	return &model.GetMintStatusResponse{StatusUpdate: update}, nil
}

func (d *mintDomain) GetSession(
	ctx context.Context, req *model.GetSessionRequest,
) (*model.GetSessionResponse, error) {
	session := d.session(ctx)

	cfg := xcontext.Configs(ctx).Chain
	tokens := []model.MintedTokenInfo{}
	for _, id := range session.MintedIDs() {
		tokens = append(tokens, model.MintedTokenInfo{
			TokenID:        id,
			MarketplaceURL: fmt.Sprintf("%s/%s/%s", cfg.MarketplaceURL, cfg.ContractAddress, id),
		})
	}

	return &model.GetSessionResponse{
		SessionID: session.ID(),
		Tokens:    tokens,
	}, nil
}

func (d *mintDomain) GetCollection(
	ctx context.Context, req *model.GetCollectionRequest,
) (*model.GetCollectionResponse, error) {
	info, err := d.ethClient.CollectionInfo(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get collection info: %v", err)
		return nil, errorx.New(errorx.ProviderError, "Cannot reach the network")
	}

	remaining := new(big.Int).Sub(info.MaxSupply, info.TotalSupply)
	if remaining.Sign() < 0 {
		remaining.SetInt64(0)
	}

	cfg := xcontext.Configs(ctx).Chain
	return &model.GetCollectionResponse{
		TotalSupply: info.TotalSupply.String(),
		MaxSupply:   info.MaxSupply.String(),
		Remaining:   remaining.String(),
		Cost:        info.Cost.String(),
		MintPrice:   cfg.MintPrice,
		Chain:       cfg.Name,
		ChainID:     cfg.ID,
		Contract:    cfg.ContractAddress,
		MinQuantity: cfg.MinMintQuantity,
		MaxQuantity: cfg.MaxMintQuantity,
	}, nil
}

// session returns the visitor's mint session, restoring previously minted
// token ids from redis on first access.
func (d *mintDomain) session(ctx context.Context) *minting.Session {
	session := d.sessions.Get(xcontext.SessionID(ctx))
	if len(session.MintedIDs()) > 0 {
		return session
	}

	members, err := d.redisClient.ZRangeWithScores(ctx, sessionTokensKey(session.ID()))
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot restore session %s from redis: %v", session.ID(), err)
		return session
	}

	ids := make([]string, 0, len(members))
	for _, member := range members {
		if id, ok := member.Member.(string); ok {
			ids = append(ids, id)
		}
	}

	session.Seed(ids)
	return session
}

// waitAttempt blocks until the attempt finishes or the caller goes away. An
// abandoned attempt keeps running in background; its result is discarded from
// the session but still cached for GetMintStatus.
func (d *mintDomain) waitAttempt(
	ctx context.Context, session *minting.Session, attempt *minting.Attempt,
) (types.StatusUpdate, error) {
	select {
	case <-attempt.Done():
		return attempt.Snapshot(), nil

	case <-ctx.Done():
		session.Discard(attempt.ID)
		return types.StatusUpdate{}, errorx.New(errorx.Unavailable, "Request was cancelled")
	}
}

// recordOutcome persists the terminal state of an attempt: the transaction
// record, the minted tokens, and the session's ordered token set in redis.
func (d *mintDomain) recordOutcome(ctx context.Context, attempt *minting.Attempt, address string) {
	<-attempt.Done()
	update := attempt.Snapshot()

	if update.TxHash == "" {
		return
	}

	status := entity.MintTransactionStatusTypeSuccess
	if update.State == types.StateFailed.String() {
		status = entity.MintTransactionStatusTypeFailure
		if errorx.Code(update.ErrorCode) == errorx.ConfirmationTimeout {
			status = entity.MintTransactionStatusTypeTimeout
		}
	}

	_, err := d.mintTxRepo.GetByTxHash(ctx, update.TxHash)
	switch {
	case err == nil:
		// A tracked transaction may be re-submitted by the visitor.
		err = d.mintTxRepo.UpdateStatusByTxHash(ctx, update.TxHash, status)

	case errors.Is(err, gorm.ErrRecordNotFound):
		err = d.mintTxRepo.Create(ctx, &entity.MintTransaction{
			Base:      entity.Base{ID: attempt.ID},
			TxHash:    update.TxHash,
			Address:   address,
			Quantity:  attempt.Quantity(),
			PaidValue: attempt.PaidValue(),
			Status:    status,
		})
	}

	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot record mint tx %s: %v", update.TxHash, err)
	}

	if len(update.TokenIDs) == 0 {
		return
	}

	tokens := make([]entity.MintedToken, 0, len(update.TokenIDs))
	for _, id := range update.TokenIDs {
		tokens = append(tokens, entity.MintedToken{
			TokenID:   id,
			TxHash:    update.TxHash,
			Address:   address,
			SessionID: update.SessionID,
		})
	}

	if err := d.mintedTokenRepo.Upsert(ctx, tokens); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot record minted tokens of tx %s: %v", update.TxHash, err)
	}

	// Ids the session rejected as superseded must not sneak back in through
	// the redis set on the next restore.
	if !attempt.Merged() {
		return
	}

	key := sessionTokensKey(update.SessionID)
	for _, id := range update.TokenIDs {
		z := redis.Z{Score: float64(time.Now().UnixNano()), Member: id}
		if err := d.redisClient.ZAddNX(ctx, key, z); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot cache minted token %s: %v", id, err)
		}
	}
}

func attemptStatusKey(attemptID string) string {
	return fmt.Sprintf("mint:attempt:%s", attemptID)
}

func sessionTokensKey(sessionID string) string {
	return fmt.Sprintf("mint:session:%s:tokens", sessionID)
}

func marketplaceURLs(ctx context.Context, tokenIDs []string) []string {
	cfg := xcontext.Configs(ctx).Chain

	urls := make([]string, 0, len(tokenIDs))
	for _, id := range tokenIDs {
		urls = append(urls, fmt.Sprintf("%s/%s/%s", cfg.MarketplaceURL, cfg.ContractAddress, id))
	}

	return urls
}

func explorerURL(ctx context.Context, txHash string) string {
	if txHash == "" {
		return ""
	}

	return fmt.Sprintf("%s/tx/%s", xcontext.Configs(ctx).Chain.ExplorerURL, txHash)
}

// detachedContext keeps the ambient values of a request context but drops its
// cancellation, so a mint outlives the HTTP request that started it.
func detachedContext(ctx context.Context) context.Context {
	newCtx := context.Background()
	newCtx = xcontext.WithConfigs(newCtx, xcontext.Configs(ctx))
	newCtx = xcontext.WithLogger(newCtx, xcontext.Logger(ctx))
	newCtx = xcontext.WithDB(newCtx, xcontext.DB(ctx))
	return newCtx
}
