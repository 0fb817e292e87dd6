package handler

import (
	"net/http"

	"github.com/osse101/MineRewards_Go/internal/domain"
)

// CatalogReader lists the reward pool
type CatalogReader interface {
	Entries() []domain.CatalogEntry
}

// DistributionReader exposes the power distribution
type DistributionReader interface {
	Tiers() []domain.RarityTierConfig
	Table() []domain.RarityDistributionEntry
}

type CatalogResponse struct {
	Entries []domain.CatalogEntry `json:"entries"`
}

type DistributionResponse struct {
	Tiers []domain.RarityTierConfig        `json:"tiers"`
	Table []domain.RarityDistributionEntry `json:"table"`
}

// HandleGetCatalog lists every catalog entry with its probability band
func HandleGetCatalog(c CatalogReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, CatalogResponse{Entries: c.Entries()})
	}
}

// HandleGetDistribution returns the tier config and the derived cumulative table
func HandleGetDistribution(d DistributionReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, DistributionResponse{Tiers: d.Tiers(), Table: d.Table()})
	}
}
