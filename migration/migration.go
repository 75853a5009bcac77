package migration

import (
	"context"

	"github.com/defido-labs/backend/internal/entity"
	"github.com/defido-labs/backend/pkg/xcontext"
)

// Migrators maps a schema version to the function that brings the database to
// it. Versions are applied one at a time through the migrate command.
var Migrators = map[string]func(ctx context.Context) error{
	"0000": migrate0000,
}

func AutoMigrate(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&entity.MintTransaction{},
		&entity.MintedToken{},
	)
}
