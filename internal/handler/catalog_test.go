package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MineRewards_Go/internal/catalog"
	"github.com/osse101/MineRewards_Go/internal/domain"
)

func testDistribution(t *testing.T) *catalog.Distribution {
	t.Helper()
	d, err := catalog.NewDistribution([]domain.RarityTierConfig{
		{Name: "common", Weight: 70, Min: 10, Max: 11},
		{Name: "legendary", Weight: 30, Min: 12, Max: 12},
	})
	require.NoError(t, err)
	return d
}

func TestHandleGetCatalog(t *testing.T) {
	c, err := catalog.New([]domain.CatalogEntry{
		{ID: "common-vintage", Rarity: domain.RarityCommon, Variant: domain.VariantVintage, DisplayName: "pickaxe", Band: domain.Band{Low: 0, High: 99}},
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	HandleGetCatalog(c).ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/catalog", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"probability_band":{"low":0,"high":99}`)
	assert.Contains(t, w.Body.String(), `"rarity":"common"`)
	assert.Contains(t, w.Body.String(), `"display_name":"Pickaxe"`)
}

func TestHandleGetDistribution(t *testing.T) {
	w := httptest.NewRecorder()
	HandleGetDistribution(testDistribution(t)).ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/distribution", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp DistributionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Tiers, 2)
	require.Len(t, resp.Table, 3)
	assert.Equal(t, 10, resp.Table[0].Value)
	assert.InDelta(t, 0.35, resp.Table[0].CumulativeProbability, 1e-9)
	assert.Equal(t, 1.0, resp.Table[2].CumulativeProbability)
}

func TestHandleRollPower(t *testing.T) {
	w := httptest.NewRecorder()
	HandleRollPower(fixedRoller(42)).ServeHTTP(w, httptest.NewRequest("POST", "/api/v1/attributes/power", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"power":42}`+"\n", w.Body.String())
}
