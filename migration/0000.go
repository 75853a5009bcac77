package migration

import (
	"context"

	"github.com/defido-labs/backend/internal/entity"
	"github.com/defido-labs/backend/pkg/xcontext"
)

func migrate0000(ctx context.Context) error {
	if err := xcontext.DB(ctx).Migrator().CreateTable(&entity.MintTransaction{}); err != nil {
		return err
	}

	if err := xcontext.DB(ctx).Migrator().CreateTable(&entity.MintedToken{}); err != nil {
		return err
	}

	return nil
}
