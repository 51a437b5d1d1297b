// internal/service/campaign_service.go
package service

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	appErrors "github.com/unclebandit/campaign-planner/internal/errors"
	"github.com/unclebandit/campaign-planner/internal/model"
	"github.com/unclebandit/campaign-planner/internal/queue"
	"github.com/unclebandit/campaign-planner/internal/repository"
)

// CampaignInput is the resolved plan payload accepted by create and update.
type CampaignInput struct {
	Name            string `json:"name"`
	Goal            string `json:"goal"`
	Audience        string `json:"audience"`
	Platform        string `json:"platform"`
	Tone            string `json:"tone"`
	PostLength      string `json:"postLength"`
	BrandVoiceNotes string `json:"brandVoiceNotes"`
	CallToAction    string `json:"callToAction"`
	Offer           string `json:"offer"`
	PainPoint       string `json:"painPoint"`
	Hashtags        string `json:"hashtags"`
	Budget          int    `json:"budget"`
	StrategyID      string `json:"strategyId"`
}

// CampaignDetails is a campaign plus its ordered content assets.
type CampaignDetails struct {
	model.Campaign
	ContentAssets []model.ContentAsset `json:"contentAssets"`
}

type CampaignService struct {
	CampaignRepo repository.CampaignRepositoryInterface
	StrategyRepo repository.StrategyRepositoryInterface
	AssetRepo    repository.ContentAssetRepositoryInterface
	Queue        queue.Queue
	Logger       *zap.Logger
}

func (s *CampaignService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func (in *CampaignInput) validate() error {
	var missing []string
	if strings.TrimSpace(in.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(in.Goal) == "" {
		missing = append(missing, "goal")
	}
	if strings.TrimSpace(in.Audience) == "" {
		missing = append(missing, "audience")
	}
	if strings.TrimSpace(in.StrategyID) == "" {
		missing = append(missing, "strategyId")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	if in.Budget < 0 {
		return fmt.Errorf("budget must not be negative")
	}
	return nil
}

// CreateCampaign creates a new plan in DRAFT for the given user.
func (s *CampaignService) CreateCampaign(userID string, in *CampaignInput) (*model.Campaign, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	exists, err := s.StrategyRepo.Exists(in.StrategyID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("strategy %s not found", in.StrategyID)
	}

	c := &model.Campaign{
		UserID:          userID,
		Name:            in.Name,
		Goal:            in.Goal,
		Audience:        in.Audience,
		Platform:        in.Platform,
		Tone:            in.Tone,
		PostLength:      in.PostLength,
		BrandVoiceNotes: in.BrandVoiceNotes,
		CallToAction:    in.CallToAction,
		Offer:           in.Offer,
		PainPoint:       in.PainPoint,
		Hashtags:        in.Hashtags,
		Budget:          in.Budget,
		StrategyID:      in.StrategyID,
		Status:          model.StatusDraft,
	}
	if err := s.CampaignRepo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateCampaign replaces the attributes of a DRAFT campaign. Campaigns
// that have left DRAFT are immutable.
func (s *CampaignService) UpdateCampaign(id string, in *CampaignInput) (*model.Campaign, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	c, err := s.CampaignRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c.Status != model.StatusDraft {
		return nil, appErrors.NewNotDraft(id, string(c.Status))
	}

	c.Name = in.Name
	c.Goal = in.Goal
	c.Audience = in.Audience
	c.Platform = in.Platform
	c.Tone = in.Tone
	c.PostLength = in.PostLength
	c.BrandVoiceNotes = in.BrandVoiceNotes
	c.CallToAction = in.CallToAction
	c.Offer = in.Offer
	c.PainPoint = in.PainPoint
	c.Hashtags = in.Hashtags
	c.Budget = in.Budget
	c.StrategyID = in.StrategyID

	if err := s.CampaignRepo.Update(c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCampaign removes a DRAFT campaign entirely.
func (s *CampaignService) DeleteCampaign(id string) error {
	c, err := s.CampaignRepo.GetByID(id)
	if err != nil {
		return err
	}
	if c.Status != model.StatusDraft {
		return appErrors.NewNotDraft(id, string(c.Status))
	}
	return s.CampaignRepo.Delete(id)
}

// LaunchCampaign starts a DRAFT campaign. With a timestamp it moves to
// SCHEDULED and activation is left to the external scheduler; without one
// it moves to ACTIVE and a publish job is queued for the worker. A failed
// queue publish does not fail the launch.
func (s *CampaignService) LaunchCampaign(id string, scheduledAt *time.Time) (*model.Campaign, error) {
	c, err := s.CampaignRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c.Status != model.StatusDraft {
		return nil, appErrors.NewNotDraft(id, string(c.Status))
	}

	if scheduledAt != nil {
		if !scheduledAt.After(time.Now()) {
			return nil, appErrors.ErrPastSchedule
		}
		if err := s.CampaignRepo.UpdateStatus(id, model.StatusScheduled, scheduledAt); err != nil {
			return nil, err
		}
		c.Status = model.StatusScheduled
		c.ScheduledAt = scheduledAt
		return c, nil
	}

	if err := s.CampaignRepo.UpdateStatus(id, model.StatusActive, nil); err != nil {
		return nil, err
	}
	c.Status = model.StatusActive
	c.ScheduledAt = nil

	if s.Queue != nil {
		if err := s.Queue.Publish(queue.LaunchTopic, queue.LaunchJob{CampaignID: id}); err != nil {
			s.logger().Warn("failed to enqueue launch job", zap.String("campaign_id", id), zap.Error(err))
		}
	}
	return c, nil
}

// PatchStatus handles the conflated status route: a status change, a
// content save, or both in one call.
func (s *CampaignService) PatchStatus(id string, status *model.Status, content *string) (*model.Campaign, error) {
	c, err := s.CampaignRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if status != nil {
		if !status.Valid() {
			return nil, fmt.Errorf("unknown status: %s", *status)
		}
		if err := s.CampaignRepo.UpdateStatus(id, *status, c.ScheduledAt); err != nil {
			return nil, err
		}
		c.Status = *status
	}
	if content != nil {
		if err := s.CampaignRepo.UpdateContent(id, *content); err != nil {
			return nil, err
		}
		c.Content = content
	}
	return c, nil
}

// GetCampaignDetails fetches a campaign with its content assets.
func (s *CampaignService) GetCampaignDetails(id string) (*CampaignDetails, error) {
	c, err := s.CampaignRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	assets, err := s.AssetRepo.ListByCampaign(id)
	if err != nil {
		return nil, err
	}
	return &CampaignDetails{Campaign: *c, ContentAssets: assets}, nil
}

// ListCampaigns returns all plans owned by a user, newest first.
func (s *CampaignService) ListCampaigns(userID string) ([]model.Campaign, error) {
	ptrs, err := s.CampaignRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	campaigns := make([]model.Campaign, len(ptrs))
	for i, c := range ptrs {
		campaigns[i] = *c
	}
	return campaigns, nil
}
