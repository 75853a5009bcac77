package main

import (
	"context"
	"net/http"

	"github.com/defido-labs/backend/config"
	"github.com/defido-labs/backend/contract/defidogs"
	"github.com/defido-labs/backend/internal/domain"
	"github.com/defido-labs/backend/internal/domain/minting/eth"
	"github.com/defido-labs/backend/internal/repository"
	"github.com/defido-labs/backend/pkg/logger"
	"github.com/defido-labs/backend/pkg/router"
	"github.com/defido-labs/backend/pkg/xcontext"
	"github.com/defido-labs/backend/pkg/xredis"
	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli/v2"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	ctx context.Context
	app *cli.App

	configs *config.Configs
	logger  logger.Logger

	db          *gorm.DB
	redisClient xredis.Client

	mintTxRepo      repository.MintTransactionRepository
	mintedTokenRepo repository.MintedTokenRepository

	wallet    eth.Wallet
	ethClient eth.EthClient

	mintDomain domain.MintDomain

	router *router.Router
	server *http.Server
}

func (s *srv) loadConfig() {
	configs := config.Load()
	s.configs = &configs
	s.ctx = xcontext.WithConfigs(s.ctx, configs)
}

func (s *srv) loadLogger() {
	s.logger = logger.NewLoggerByName(s.configs.LogLevel)
	s.ctx = xcontext.WithLogger(s.ctx, s.logger)
}

func (s *srv) newDatabase() *gorm.DB {
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       s.configs.Database.ConnectionString(),
		DefaultStringSize:         256,
		DisableDatetimePrecision:  true,
		DontSupportRenameIndex:    true,
		DontSupportRenameColumn:   true,
		SkipInitializeWithVersion: false,
	}), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	return db
}

func (s *srv) loadDatabase() {
	s.db = s.newDatabase()
	s.ctx = xcontext.WithDB(s.ctx, s.db)
}

func (s *srv) loadRedis() {
	client, err := xredis.NewClient(s.ctx)
	if err != nil {
		panic(err)
	}

	s.redisClient = client
}

func (s *srv) loadRepos() {
	s.mintTxRepo = repository.NewMintTransactionRepository()
	s.mintedTokenRepo = repository.NewMintedTokenRepository()
}

func (s *srv) loadEthClient() {
	wallet, err := eth.NewRelayerWallet(s.ctx)
	if err != nil {
		panic(err)
	}

	s.wallet = wallet
	s.ethClient = eth.NewEthClient(s.ctx)
	s.ethClient.Start(s.ctx)
}

func (s *srv) loadDomains() {
	contractAddress := common.HexToAddress(s.configs.Chain.ContractAddress)
	parser, err := defidogs.NewDefidogsFilterer(contractAddress, nil)
	if err != nil {
		panic(err)
	}

	mintDomain, err := domain.NewMintDomain(
		s.ctx, s.mintTxRepo, s.mintedTokenRepo, s.redisClient, s.wallet, s.ethClient, parser)
	if err != nil {
		panic(err)
	}

	s.mintDomain = mintDomain
}
