package handler

import "net/http"

// PowerRoller draws a power attribute for a freshly minted collectible
type PowerRoller interface {
	RollPower() int
}

// PowerResponse is the body of POST /api/v1/attributes/power
type PowerResponse struct {
	Power int `json:"power"`
}

// HandleRollPower returns one power value drawn from the rarity distribution
func HandleRollPower(roller PowerRoller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, PowerResponse{Power: roller.RollPower()})
	}
}
