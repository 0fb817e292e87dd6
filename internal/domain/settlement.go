package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// BurnProof is the transient verification result for one settlement request.
type BurnProof struct {
	IsValid       bool             `json:"is_valid"`
	BurnedAmount  *decimal.Decimal `json:"burned_amount,omitempty"`
	FailureReason ReasonCode       `json:"failure_reason,omitempty"`
}

// DrawResult is one resolved reward.
type DrawResult struct {
	Entry           *CatalogEntry `json:"entry"`
	SourceHashValue int           `json:"source_hash_value"`
	DrawIndex       int           `json:"draw_index"` // 1-based
}

// DrawPolicy selects how a multi-draw settlement picks its entries.
// A product surface must use one policy per draw context.
type DrawPolicy string

const (
	// PolicyWeighted honours per-draw probability bands; duplicates are possible.
	PolicyWeighted DrawPolicy = "weighted"
	// PolicyDiverse uses a seeded permutation; no duplicates until the catalog is exhausted.
	PolicyDiverse DrawPolicy = "diverse"
)

// ParseDrawPolicy converts a string into a DrawPolicy. Empty input returns def.
func ParseDrawPolicy(s string, def DrawPolicy) (DrawPolicy, error) {
	switch p := DrawPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return def, nil
	case PolicyWeighted, PolicyDiverse:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
	}
}

// Claim records that a burn transaction has been settled for a wallet.
type Claim struct {
	ID           string          `json:"id"`
	TxHash       string          `json:"tx_hash"`
	Wallet       string          `json:"wallet"`
	Policy       DrawPolicy      `json:"policy"`
	DrawCount    int             `json:"draw_count"`
	BurnedAmount decimal.Decimal `json:"burned_amount"`
	EntryIDs     []string        `json:"entry_ids"`
	HashValues   []int           `json:"hash_values"`
	CreatedAt    time.Time       `json:"created_at"`
}
