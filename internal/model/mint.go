package model

import "github.com/defido-labs/backend/internal/domain/minting/types"

type MintRequest struct {
	Quantity string `json:"quantity"`
}

type MintResponse struct {
	types.StatusUpdate
	SessionTokenIDs []string `json:"session_token_ids"`
	ExplorerURL     string   `json:"explorer_url,omitempty"`
	MarketplaceURLs []string `json:"marketplace_urls,omitempty"`
}

type TrackMintRequest struct {
	TxHash  string `json:"tx_hash"`
	Address string `json:"address"`
}

type TrackMintResponse struct {
	types.StatusUpdate
	SessionTokenIDs []string `json:"session_token_ids"`
	ExplorerURL     string   `json:"explorer_url,omitempty"`
	MarketplaceURLs []string `json:"marketplace_urls,omitempty"`
}

type GetMintStatusRequest struct {
	AttemptID string `json:"attempt_id"`
}

type GetMintStatusResponse struct {
	types.StatusUpdate
}

type GetSessionRequest struct{}

type MintedTokenInfo struct {
	TokenID        string `json:"token_id"`
	MarketplaceURL string `json:"marketplace_url,omitempty"`
}

type GetSessionResponse struct {
	SessionID string            `json:"session_id"`
	Tokens    []MintedTokenInfo `json:"tokens"`
}

type GetCollectionRequest struct{}

type GetCollectionResponse struct {
	TotalSupply string `json:"total_supply"`
	MaxSupply   string `json:"max_supply"`
	Remaining   string `json:"remaining"`
	Cost        string `json:"cost"`
	MintPrice   string `json:"mint_price"`
	Chain       string `json:"chain"`
	ChainID     int64  `json:"chain_id"`
	Contract    string `json:"contract"`
	MinQuantity int    `json:"min_quantity"`
	MaxQuantity int    `json:"max_quantity"`
}
