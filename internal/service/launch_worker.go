// internal/service/launch_worker.go
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/unclebandit/campaign-planner/internal/model"
	"github.com/unclebandit/campaign-planner/internal/queue"
	"github.com/unclebandit/campaign-planner/internal/repository"
)

// LaunchWorker publishes content for campaigns whose immediate launch was
// requested: it generates draft content when none was saved, records it as
// a content asset and moves the campaign to COMPLETED. This is the
// backend-driven end of the lifecycle that clients only observe.
type LaunchWorker struct {
	CampaignRepo repository.CampaignRepositoryInterface
	AssetRepo    repository.ContentAssetRepositoryInterface
	Preview      *PreviewService
	Logger       *zap.Logger
}

func (w *LaunchWorker) logger() *zap.Logger {
	if w.Logger == nil {
		return zap.NewNop()
	}
	return w.Logger
}

// Process handles one launch job.
func (w *LaunchWorker) Process(ctx context.Context, job queue.LaunchJob) error {
	c, err := w.CampaignRepo.GetByID(job.CampaignID)
	if err != nil {
		return err
	}
	if c.Status != model.StatusActive {
		w.logger().Warn("skipping launch job for non-active campaign",
			zap.String("campaign_id", c.ID), zap.String("status", string(c.Status)))
		return nil
	}

	body := ""
	if c.Content != nil {
		body = *c.Content
	}
	if body == "" {
		in := &CampaignInput{
			Name:            c.Name,
			Goal:            c.Goal,
			Audience:        c.Audience,
			Platform:        c.Platform,
			Tone:            c.Tone,
			PostLength:      c.PostLength,
			BrandVoiceNotes: c.BrandVoiceNotes,
			CallToAction:    c.CallToAction,
			Offer:           c.Offer,
			PainPoint:       c.PainPoint,
			Hashtags:        c.Hashtags,
		}
		body, err = w.Preview.GeneratePreview(ctx, in)
		if err != nil {
			return err // retried by the queue
		}
		if err := w.CampaignRepo.UpdateContent(c.ID, body); err != nil {
			return err
		}
	}

	asset := &model.ContentAsset{
		CampaignID: c.ID,
		Platform:   c.Platform,
		Body:       body,
		Position:   1,
	}
	if err := w.AssetRepo.Create(asset); err != nil {
		return err
	}

	if err := w.CampaignRepo.UpdateStatus(c.ID, model.StatusCompleted, nil); err != nil {
		return err
	}
	w.logger().Info("campaign published", zap.String("campaign_id", c.ID))
	return nil
}

// StartLaunchSubscriber wires the worker to an in-process queue.
func StartLaunchSubscriber(q queue.Queue, w *LaunchWorker) {
	_ = q.Subscribe(queue.LaunchTopic, func(payload any) error {
		job, ok := payload.(queue.LaunchJob)
		if !ok {
			w.logger().Warn("invalid launch payload, expected LaunchJob")
			return nil // no retry
		}
		return w.Process(context.Background(), job)
	})
}
