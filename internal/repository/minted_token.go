package repository

import (
	"context"

	"github.com/defido-labs/backend/internal/entity"
	"github.com/defido-labs/backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type MintedTokenRepository interface {
	Upsert(ctx context.Context, tokens []entity.MintedToken) error
	GetBySessionID(ctx context.Context, sessionID string) ([]entity.MintedToken, error)
	GetByAddress(ctx context.Context, address string) ([]entity.MintedToken, error)
}

type mintedTokenRepository struct{}

func NewMintedTokenRepository() *mintedTokenRepository {
	return &mintedTokenRepository{}
}

// Upsert inserts extracted tokens, ignoring ids recorded by an earlier
// processing of the same receipt.
func (r *mintedTokenRepository) Upsert(ctx context.Context, tokens []entity.MintedToken) error {
	if len(tokens) == 0 {
		return nil
	}

	return xcontext.DB(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(tokens).Error
}

func (r *mintedTokenRepository) GetBySessionID(
	ctx context.Context, sessionID string,
) ([]entity.MintedToken, error) {
	var result []entity.MintedToken
	err := xcontext.DB(ctx).
		Order("created_at ASC").
		Find(&result, "session_id=?", sessionID).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *mintedTokenRepository) GetByAddress(
	ctx context.Context, address string,
) ([]entity.MintedToken, error) {
	var result []entity.MintedToken
	err := xcontext.DB(ctx).
		Order("created_at ASC").
		Find(&result, "address=?", address).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
