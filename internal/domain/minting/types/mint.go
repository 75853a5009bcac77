package types

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

type MintState int

const (
	StateIdle MintState = iota
	StateValidating
	StateAwaitingSignature
	StateSubmitted
	StateAwaitingConfirmation
	StateExtractingEvents
	StateSuccess
	StateFailed
)

func (s MintState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateAwaitingSignature:
		return "awaiting_signature"
	case StateSubmitted:
		return "submitted"
	case StateAwaitingConfirmation:
		return "awaiting_confirmation"
	case StateExtractingEvents:
		return "extracting_events"
	case StateSuccess:
		return "success"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition can happen for an attempt in
// this state.
func (s MintState) Terminal() bool {
	return s == StateSuccess || s == StateFailed
}

// SubmittedTx is the handle returned by the transaction submitter once the
// network accepted a mint transaction.
type SubmittedTx struct {
	TxHash    common.Hash
	PaidValue *big.Int
}

// StatusUpdate is the UI-facing snapshot of one mint attempt. It is published
// on every state transition so the interface is never left in an unexplained
// waiting state.
type StatusUpdate struct {
	AttemptID string   `json:"attempt_id"`
	SessionID string   `json:"session_id"`
	State     string   `json:"state"`
	TxHash    string   `json:"tx_hash,omitempty"`
	TokenIDs  []string `json:"token_ids,omitempty"`
	NoIDs     bool     `json:"no_ids,omitempty"`
	ErrorCode int      `json:"error_code,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// CollectionInfo mirrors the public views of the collection contract.
type CollectionInfo struct {
	TotalSupply *big.Int
	MaxSupply   *big.Int
	Cost        *big.Int
}
