// internal/planner/plan_list.go
package planner

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/unclebandit/campaign-planner/internal/api"
	appErrors "github.com/unclebandit/campaign-planner/internal/errors"
	"github.com/unclebandit/campaign-planner/internal/form"
	"github.com/unclebandit/campaign-planner/internal/lifecycle"
	"github.com/unclebandit/campaign-planner/internal/model"
	"github.com/unclebandit/campaign-planner/internal/preview"
)

// Action is a user-triggerable operation on one plan in the list.
type Action string

const (
	ActionView   Action = "view"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
	ActionLaunch Action = "launch"
)

// Backend is everything the plan list needs from the API client.
type Backend interface {
	ListCampaigns(ctx context.Context) ([]model.Campaign, error)
	ListStrategies(ctx context.Context) ([]model.Strategy, error)
	CreateCampaign(ctx context.Context, payload api.CampaignPayload) (*model.Campaign, error)
	UpdateCampaign(ctx context.Context, id string, payload api.CampaignPayload) (*model.Campaign, error)
	GetCampaign(ctx context.Context, id string) (*api.CampaignDetail, error)
	DeleteCampaign(ctx context.Context, id string) error
	Preview(ctx context.Context, payload api.CampaignPayload) (string, error)
	SaveContent(ctx context.Context, id, content string) error
	Launch(ctx context.Context, id string, scheduledAt *time.Time) (*model.Campaign, error)
}

// PlanList orchestrates the campaign plan collection: list refresh, the
// create/edit dialogs, preview sessions, deletion and launch. Each instance
// owns its own cached plans; refreshes after a write are separate fetches
// and only eventually consistent with the backend.
type PlanList struct {
	client Backend
	logger *zap.Logger
	plans  []model.Campaign
}

func NewPlanList(client Backend, logger *zap.Logger) *PlanList {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PlanList{client: client, logger: logger}
}

// Refresh re-fetches the plan list from the backend.
func (p *PlanList) Refresh(ctx context.Context) error {
	plans, err := p.client.ListCampaigns(ctx)
	if err != nil {
		p.logger.Warn("failed to fetch plans", zap.Error(err))
		return err
	}
	p.plans = plans
	return nil
}

// Plans returns the cached plan list.
func (p *PlanList) Plans() []model.Campaign {
	return p.plans
}

// ActionsFor returns the actions invocable for a plan. Edit, delete and
// launch exist only while the plan is DRAFT; for every other status the
// list exposes nothing but the detail view.
func (p *PlanList) ActionsFor(c *model.Campaign) []Action {
	actions := []Action{ActionView}
	if lifecycle.CanLaunch(c.Status) {
		actions = append(actions, ActionLaunch)
	}
	if lifecycle.CanEdit(c.Status) {
		actions = append(actions, ActionEdit)
	}
	if lifecycle.CanDelete(c.Status) {
		actions = append(actions, ActionDelete)
	}
	return actions
}

// OpenCreate builds a fresh form for a new plan.
func (p *PlanList) OpenCreate() *form.Form {
	return form.New()
}

// OpenEdit builds a form seeded from an existing DRAFT plan. Editing a plan
// in any other status is rejected, mirroring the server-side invariant.
func (p *PlanList) OpenEdit(c *model.Campaign) (*form.Form, error) {
	if !lifecycle.CanEdit(c.Status) {
		return nil, appErrors.NewNotDraft(c.ID, string(c.Status))
	}
	return form.FromRecord(c), nil
}

// Submit validates the form, builds the payload and either creates a new
// plan or updates the one the form was seeded from.
func (p *PlanList) Submit(ctx context.Context, f *form.Form) (*model.Campaign, error) {
	payload, err := f.Payload()
	if err != nil {
		return nil, err
	}
	if f.CampaignID == "" {
		return p.client.CreateCampaign(ctx, payload)
	}
	return p.client.UpdateCampaign(ctx, f.CampaignID, payload)
}

// OpenPreview starts a preview session for the form's resolved payload. The
// form must validate; the session carries the campaign id (possibly empty)
// so saving can enforce its precondition.
func (p *PlanList) OpenPreview(f *form.Form) (*preview.Session, error) {
	payload, err := f.Payload()
	if err != nil {
		return nil, err
	}
	return preview.NewSession(p.client, p.logger, payload, f.CampaignID), nil
}

// Delete removes a DRAFT plan.
func (p *PlanList) Delete(ctx context.Context, c *model.Campaign) error {
	if !lifecycle.CanDelete(c.Status) {
		return appErrors.NewNotDraft(c.ID, string(c.Status))
	}
	return p.client.DeleteCampaign(ctx, c.ID)
}

// Launch starts or schedules a plan, delegating guards to the lifecycle
// layer.
func (p *PlanList) Launch(ctx context.Context, c *model.Campaign, at *time.Time) (*model.Campaign, error) {
	return lifecycle.Launch(ctx, p.client, c, at)
}
