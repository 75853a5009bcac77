package testutil

import (
	"context"
	"time"

	"github.com/defido-labs/backend/config"
	"github.com/defido-labs/backend/migration"
	"github.com/defido-labs/backend/pkg/logger"
	"github.com/defido-labs/backend/pkg/xcontext"
	"github.com/gorilla/sessions"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func MockContext() context.Context {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	cfg := config.Configs{
		Env: "test",
		Session: config.SessionConfigs{
			Secret: "session-secret",
			Name:   "mint_session",
		},
		Chain: config.ChainConfigs{
			Name:                  "testchain",
			ID:                    8453,
			ContractAddress:       "0x719b9c5D4672b743adE03c0888C69E15D4967940",
			MintPrice:             "0.003",
			MinMintQuantity:       1,
			MaxMintQuantity:       10,
			RequiredConfirmations: 1,
			ConfirmationTimeout:   config.Duration{Duration: time.Minute},
			ReceiptPollInterval:   config.Duration{Duration: time.Millisecond},
			ExplorerURL:           "https://testscan.example",
			MarketplaceURL:        "https://market.example/assets/testchain",
		},
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.SILENCE))
	ctx = xcontext.WithSessionStore(ctx, sessions.NewCookieStore([]byte(cfg.Session.Secret)))
	ctx = xcontext.WithDB(ctx, db)

	if err := migration.AutoMigrate(ctx); err != nil {
		panic(err)
	}

	return ctx
}

func MockContextWithSessionID(sessionID string) context.Context {
	return xcontext.WithSessionID(MockContext(), sessionID)
}
