package entity

import "time"

// MintedToken is one token id recovered from the transfer logs of a confirmed
// mint transaction.
type MintedToken struct {
	TokenID   string `gorm:"primaryKey"`
	TxHash    string `gorm:"index"`
	Address   string `gorm:"index"`
	SessionID string `gorm:"index"`

	CreatedAt time.Time
}
