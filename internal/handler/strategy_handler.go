// internal/handler/strategy_handler.go
package handler

import (
	"net/http"

	"github.com/unclebandit/campaign-planner/internal/middleware"
	"github.com/unclebandit/campaign-planner/internal/repository"
)

type StrategyHandler struct {
	Repo repository.StrategyRepositoryInterface
}

// ListStrategies returns the caller's strategies for linking.
func (h *StrategyHandler) ListStrategies(w http.ResponseWriter, r *http.Request) {
	strategies, err := h.Repo.ListByUser(middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, strategies)
}
