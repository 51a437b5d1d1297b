package planner_test

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/unclebandit/campaign-planner/internal/api"
	appErrors "github.com/unclebandit/campaign-planner/internal/errors"
	"github.com/unclebandit/campaign-planner/internal/form"
	"github.com/unclebandit/campaign-planner/internal/handler"
	"github.com/unclebandit/campaign-planner/internal/model"
	"github.com/unclebandit/campaign-planner/internal/planner"
	"github.com/unclebandit/campaign-planner/internal/preview"
	"github.com/unclebandit/campaign-planner/internal/service"
)

// The client core and the server meet only over HTTP; this test drives the
// whole plan workflow through a real router.

const integrationSecret = "integration-secret"

type memCampaignRepo struct {
	campaigns map[string]*model.Campaign
	nextID    int
}

func (m *memCampaignRepo) Create(c *model.Campaign) error {
	m.nextID++
	c.ID = fmt.Sprintf("camp-%d", m.nextID)
	c.CreatedAt = time.Now()
	cp := *c
	m.campaigns[c.ID] = &cp
	return nil
}

func (m *memCampaignRepo) Update(c *model.Campaign) error {
	if _, ok := m.campaigns[c.ID]; !ok {
		return appErrors.NewCampaignNotFound(c.ID)
	}
	cp := *c
	m.campaigns[c.ID] = &cp
	return nil
}

func (m *memCampaignRepo) UpdateStatus(id string, status model.Status, scheduledAt *time.Time) error {
	c, ok := m.campaigns[id]
	if !ok {
		return appErrors.NewCampaignNotFound(id)
	}
	c.Status = status
	c.ScheduledAt = scheduledAt
	return nil
}

func (m *memCampaignRepo) UpdateContent(id string, content string) error {
	c, ok := m.campaigns[id]
	if !ok {
		return appErrors.NewCampaignNotFound(id)
	}
	c.Content = &content
	return nil
}

func (m *memCampaignRepo) GetByID(id string) (*model.Campaign, error) {
	c, ok := m.campaigns[id]
	if !ok {
		return nil, appErrors.NewCampaignNotFound(id)
	}
	cp := *c
	return &cp, nil
}

func (m *memCampaignRepo) ListByUser(userID string) ([]*model.Campaign, error) {
	out := []*model.Campaign{}
	for _, c := range m.campaigns {
		if c.UserID == userID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memCampaignRepo) Delete(id string) error {
	if _, ok := m.campaigns[id]; !ok {
		return appErrors.NewCampaignNotFound(id)
	}
	delete(m.campaigns, id)
	return nil
}

type memStrategyRepo struct{}

func (memStrategyRepo) ListByUser(userID string) ([]model.Strategy, error) {
	return []model.Strategy{
		{ID: "strat-1", UserID: userID, Name: "Awareness"},
		{ID: "strat-2", UserID: userID, Name: "Leads"},
	}, nil
}

func (memStrategyRepo) Exists(id string) (bool, error) {
	return id == "strat-1" || id == "strat-2", nil
}

type memAssetRepo struct{ assets []model.ContentAsset }

func (m *memAssetRepo) ListByCampaign(campaignID string) ([]model.ContentAsset, error) {
	out := []model.ContentAsset{}
	for _, a := range m.assets {
		if a.CampaignID == campaignID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memAssetRepo) Create(a *model.ContentAsset) error {
	m.assets = append(m.assets, *a)
	return nil
}

func newStack(t *testing.T) (*planner.PlanList, *api.Client) {
	t.Helper()

	repo := &memCampaignRepo{campaigns: map[string]*model.Campaign{}}
	svc := &service.CampaignService{
		CampaignRepo: repo,
		StrategyRepo: memStrategyRepo{},
		AssetRepo:    &memAssetRepo{},
		Logger:       zap.NewNop(),
	}
	previewSvc := &service.PreviewService{AI: service.NewTemplateClient(), Logger: zap.NewNop()}

	router := handler.NewRouter(
		&handler.CampaignHandler{Service: svc, Preview: previewSvc, Logger: zap.NewNop()},
		&handler.StrategyHandler{Repo: memStrategyRepo{}},
		integrationSecret,
	)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "user-1"})
	signed, err := tok.SignedString([]byte(integrationSecret))
	require.NoError(t, err)

	client := api.NewClient(api.Config{BaseURL: server.URL, Token: signed})
	return planner.NewPlanList(client, zap.NewNop()), client
}

func TestFullPlanWorkflow(t *testing.T) {
	ctx := context.Background()
	plans, client := newStack(t)

	// Create: fill the form, goal through the "Other" escape hatch.
	f := plans.OpenCreate()
	_, err := f.LoadStrategies(ctx, client)
	require.NoError(t, err)
	assert.Equal(t, "strat-1", f.StrategyID, "first strategy selected by default")

	f.Set(form.FieldName, "Winback Blast")
	f.Set(form.FieldGoal, form.Other)
	f.SetCustom(form.FieldGoal, "Re-engage churned users")
	f.Set(form.FieldAudience, "Millennials")
	f.Set(form.FieldBudget, "750")

	created, err := plans.Submit(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, model.StatusDraft, created.Status)
	assert.Equal(t, "Re-engage churned users", created.Goal)

	// Preview against the persisted record, edit and save the content.
	ef, err := plans.OpenEdit(created)
	require.NoError(t, err)
	session, err := plans.OpenPreview(ef)
	require.NoError(t, err)
	session.Fetch(ctx)
	require.NotEmpty(t, session.Text())
	assert.NotEqual(t, preview.FailedText, session.Text())

	session.ToggleEdit()
	session.SetText("Final campaign copy")
	require.NoError(t, session.Save(ctx))
	assert.True(t, session.Saved())

	detail, err := client.GetCampaign(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.Content)
	assert.Equal(t, "Final campaign copy", *detail.Content)

	// Edit: the seeded form re-derives the "Other" split per field.
	assert.Equal(t, form.Other, ef.Goal.Value)
	assert.Equal(t, "Re-engage churned users", ef.Goal.Custom)
	assert.Equal(t, "Millennials", ef.Audience.Value)

	ef.Set(form.FieldBudget, "900")
	updated, err := plans.Submit(ctx, ef)
	require.NoError(t, err)
	assert.Equal(t, 900, updated.Budget)

	// Launch at a future time: DRAFT -> SCHEDULED.
	at := time.Now().Add(time.Hour)
	launched, err := plans.Launch(ctx, updated, &at)
	require.NoError(t, err)
	assert.Equal(t, model.StatusScheduled, launched.Status)

	// The scheduled plan exposes no edit/delete/launch actions anymore.
	require.NoError(t, plans.Refresh(ctx))
	require.Len(t, plans.Plans(), 1)
	assert.Equal(t, []planner.Action{planner.ActionView}, plans.ActionsFor(&plans.Plans()[0]))

	// And the server mirrors the client-side gate.
	_, err = client.UpdateCampaign(ctx, launched.ID, api.CampaignPayload{
		Name: "x", Goal: "y", Audience: "z", StrategyID: "strat-1",
	})
	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 409, apiErr.StatusCode)
}

func TestLaunchNowWorkflow(t *testing.T) {
	ctx := context.Background()
	plans, client := newStack(t)

	f := plans.OpenCreate()
	_, err := f.LoadStrategies(ctx, client)
	require.NoError(t, err)
	f.Set(form.FieldName, "Flash Sale")
	f.Set(form.FieldGoal, "Increase Sales")
	f.Set(form.FieldAudience, "Parents")
	f.Set(form.FieldBudget, "300")

	created, err := plans.Submit(ctx, f)
	require.NoError(t, err)

	launched, err := plans.Launch(ctx, created, nil)
	require.NoError(t, err)
	assert.Equal(t, model.StatusActive, launched.Status)

	// Past schedules never leave the client.
	past := time.Now().Add(-time.Minute)
	_, err = plans.Launch(ctx, created, &past)
	assert.Error(t, err)
}
