// internal/handler/router.go
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/unclebandit/campaign-planner/internal/middleware"
)

// NewRouter mounts every route behind bearer auth.
func NewRouter(campaigns *CampaignHandler, strategies *StrategyHandler, jwtSecret string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.BearerAuth(jwtSecret))

	r.Get("/strategy/user", strategies.ListStrategies)

	r.Get("/campaigns", campaigns.ListCampaigns)
	r.Post("/campaigns", campaigns.CreateCampaign)
	r.Post("/campaigns/preview", campaigns.GeneratePreview)
	r.Post("/campaigns/launch/{id}", campaigns.LaunchCampaign)
	r.Get("/campaigns/{id}", campaigns.GetCampaign)
	r.Put("/campaigns/{id}", campaigns.UpdateCampaign)
	r.Delete("/campaigns/{id}", campaigns.DeleteCampaign)
	r.Patch("/campaigns/{id}/status", campaigns.PatchStatus)

	return r
}
