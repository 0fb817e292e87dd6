package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/osse101/MineRewards_Go/internal/claim"
	"github.com/osse101/MineRewards_Go/internal/domain"
	"github.com/osse101/MineRewards_Go/internal/ledger"
	"github.com/osse101/MineRewards_Go/internal/logger"
	"github.com/osse101/MineRewards_Go/internal/settlement"
)

// SettleRequest is the body of POST /api/v1/settlements
type SettleRequest struct {
	Wallet         string           `json:"wallet" validate:"required,evm_address"`
	TxHash         string           `json:"tx_hash" validate:"required,tx_hash"`
	ExpectedAmount *decimal.Decimal `json:"expected_amount,omitempty"`
	DrawCount      int              `json:"draw_count" validate:"required,min=1,max=100"`
	Policy         string           `json:"policy,omitempty" validate:"omitempty,oneof=weighted diverse"`
}

type SettlementHandler struct {
	claims claim.Service
}

func NewSettlementHandler(claims claim.Service) *SettlementHandler {
	return &SettlementHandler{claims: claims}
}

// HandleSettle verifies a burn and returns its rewards.
//
// A rejected burn answers 422 with verified=false and the reason code; a ledger outage
// answers 503 with the same body so clients know to retry.
func (h *SettlementHandler) HandleSettle(w http.ResponseWriter, r *http.Request) {
	var req SettleRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Settle"); err != nil {
		return
	}
	if req.ExpectedAmount != nil && !req.ExpectedAmount.IsPositive() {
		respondError(w, http.StatusBadRequest, ErrMsgAmountMustBePositive)
		return
	}

	// Both parse after validation so errors here are not expected
	wallet, err := ledger.ParseAddress(req.Wallet)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	txHash, err := ledger.ParseTxHash(req.TxHash)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	log := logger.FromContext(r.Context()).With(LogFieldTxHash, txHash.Hex())
	out, err := h.claims.Settle(r.Context(), settlement.Request{
		Wallet:         wallet,
		TxHash:         txHash,
		ExpectedAmount: req.ExpectedAmount,
		DrawCount:      req.DrawCount,
		Policy:         domain.DrawPolicy(req.Policy),
	})
	if err != nil {
		log.Error(LogMsgSettlementFailed, LogFieldError, err)
		respondServiceError(w, err)
		return
	}

	if !out.Verified {
		log.Info(LogMsgSettlementRejected, LogFieldReason, out.Reason)
		status := http.StatusUnprocessableEntity
		if out.Reason.Retryable() {
			status = http.StatusServiceUnavailable
		}
		respondJSON(w, status, out)
		return
	}

	respondJSON(w, http.StatusOK, out)
}

// HandleGetClaim returns the stored claim for a transaction hash
func (h *SettlementHandler) HandleGetClaim(w http.ResponseWriter, r *http.Request) {
	txHash, err := ledger.ParseTxHash(chi.URLParam(r, "txHash"))
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidTxHash)
		return
	}

	c, err := h.claims.Get(r.Context(), txHash.Hex())
	if err != nil {
		if !errors.Is(err, domain.ErrClaimNotFound) {
			logger.FromContext(r.Context()).Error(LogMsgClaimLookupFailed, LogFieldTxHash, txHash.Hex(), LogFieldError, err)
		}
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, c)
}
