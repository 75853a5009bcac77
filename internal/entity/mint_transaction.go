package entity

import (
	"github.com/defido-labs/backend/pkg/enum"
)

type MintTransactionStatusType string

var (
	MintTransactionStatusTypeInProgress = enum.New(MintTransactionStatusType("inprogress"))
	MintTransactionStatusTypeSuccess    = enum.New(MintTransactionStatusType("success"))
	MintTransactionStatusTypeFailure    = enum.New(MintTransactionStatusType("failure"))
	MintTransactionStatusTypeTimeout    = enum.New(MintTransactionStatusType("timeout"))
)

type MintTransaction struct {
	Base

	TxHash   string `gorm:"uniqueIndex"`
	Address  string `gorm:"index"`
	Quantity int

	// PaidValue is the exact wei amount sent with the mint call, in decimal
	// string form since it can exceed int64.
	PaidValue string

	Status MintTransactionStatusType
}
