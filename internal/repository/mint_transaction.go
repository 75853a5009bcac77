package repository

import (
	"context"

	"github.com/defido-labs/backend/internal/entity"
	"github.com/defido-labs/backend/pkg/xcontext"
)

type MintTransactionRepository interface {
	Create(ctx context.Context, tx *entity.MintTransaction) error
	UpdateStatusByTxHash(ctx context.Context, txHash string, newStatus entity.MintTransactionStatusType) error
	GetByTxHash(ctx context.Context, txHash string) (*entity.MintTransaction, error)
	GetByID(ctx context.Context, id string) (*entity.MintTransaction, error)
	GetByAddress(ctx context.Context, address string) ([]entity.MintTransaction, error)
}

type mintTransactionRepository struct{}

func NewMintTransactionRepository() *mintTransactionRepository {
	return &mintTransactionRepository{}
}

func (r *mintTransactionRepository) Create(ctx context.Context, tx *entity.MintTransaction) error {
	return xcontext.DB(ctx).Create(tx).Error
}

func (r *mintTransactionRepository) UpdateStatusByTxHash(
	ctx context.Context, txHash string, newStatus entity.MintTransactionStatusType,
) error {
	return xcontext.DB(ctx).
		Model(&entity.MintTransaction{}).
		Where("tx_hash=?", txHash).
		Update("status", newStatus).Error
}

func (r *mintTransactionRepository) GetByTxHash(
	ctx context.Context, txHash string,
) (*entity.MintTransaction, error) {
	var result entity.MintTransaction
	err := xcontext.DB(ctx).Take(&result, "tx_hash=?", txHash).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *mintTransactionRepository) GetByID(ctx context.Context, id string) (*entity.MintTransaction, error) {
	var result entity.MintTransaction
	err := xcontext.DB(ctx).Take(&result, "id=?", id).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *mintTransactionRepository) GetByAddress(
	ctx context.Context, address string,
) ([]entity.MintTransaction, error) {
	var result []entity.MintTransaction
	err := xcontext.DB(ctx).Find(&result, "address=?", address).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
