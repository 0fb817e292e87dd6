package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/MineRewards_Go/internal/domain"
	"github.com/osse101/MineRewards_Go/internal/draw"
	"github.com/osse101/MineRewards_Go/internal/ledger"
	"github.com/osse101/MineRewards_Go/internal/logger"
	"github.com/osse101/MineRewards_Go/internal/settlement"
)

// ReplayResponse is the body of GET /api/v1/draws/{txHash}
type ReplayResponse struct {
	TxHash    string              `json:"tx_hash"`
	Seed      uint32              `json:"seed"`
	HashValue int                 `json:"hash_value"`
	TieBit    int                 `json:"tie_bit"`
	Policy    domain.DrawPolicy   `json:"policy"`
	Results   []domain.DrawResult `json:"results"`
}

// HandleReplayDraws recomputes the draws a transaction hash yields without touching the ledger,
// so anyone can audit a settlement.
func HandleReplayDraws(drawer settlement.Drawer, defaultPolicy domain.DrawPolicy) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		txHash, err := ledger.ParseTxHash(chi.URLParam(r, "txHash"))
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidTxHash)
			return
		}

		count, ok := GetOptionalIntQueryParam(r, w, "count", 1)
		if !ok {
			return
		}
		if count > MaxDrawCount {
			respondError(w, http.StatusBadRequest, ErrMsgDrawCountTooLarge)
			return
		}

		policy, err := domain.ParseDrawPolicy(GetOptionalQueryParam(r, "policy", ""), defaultPolicy)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		results, err := drawer.Draw(r.Context(), policy, txHash, count)
		if err != nil {
			logger.FromContext(r.Context()).Warn(LogMsgReplayFailed, LogFieldTxHash, txHash.Hex(), LogFieldError, err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, ReplayResponse{
			TxHash:    txHash.Hex(),
			Seed:      draw.Seed(txHash),
			HashValue: draw.HashValue(txHash),
			TieBit:    draw.TieBit(txHash),
			Policy:    policy,
			Results:   results,
		})
	}
}
