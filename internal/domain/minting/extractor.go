package minting

import (
	"github.com/defido-labs/backend/contract/defidogs"
	"github.com/defido-labs/backend/pkg/ethutil"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

// TransferParser decodes one raw log entry against the collection contract's
// Transfer event. A decode failure only means the log belongs to another
// event or contract.
type TransferParser interface {
	ParseTransfer(log ethtypes.Log) (*defidogs.DefidogsTransfer, error)
}

// ExtractMintedIDs walks every log of a confirmed receipt and collects the
// token ids of Transfer events from the zero address to the recipient. Logs
// that do not decode are skipped. The result preserves log order and holds no
// duplicates; an empty result is valid and means no fresh mint for this
// recipient is visible in the receipt.
func ExtractMintedIDs(
	parser TransferParser, receipt *ethtypes.Receipt, recipient common.Address,
) []string {
	ids := []string{}
	seen := map[string]struct{}{}

	for _, log := range receipt.Logs {
		if log == nil {
			continue
		}

		ev, err := parser.ParseTransfer(*log)
		if err != nil {
			// Not a Transfer event of this collection.
			continue
		}

		if ev.From != ethutil.ZeroAddress || ev.To != recipient {
			continue
		}

		id := ev.TokenId.String()
		if _, ok := seen[id]; ok {
			continue
		}

		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return ids
}

// MergeTokenIDs unions two ordered id lists, keeping first-seen order. The
// merge is idempotent, so processing the same receipt twice cannot duplicate
// an id.
func MergeTokenIDs(existing, incoming []string) []string {
	merged := make([]string, 0, len(existing)+len(incoming))
	seen := map[string]struct{}{}

	for _, id := range existing {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			merged = append(merged, id)
		}
	}

	for _, id := range incoming {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			merged = append(merged, id)
		}
	}

	return merged
}
