package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/unclebandit/campaign-planner/internal/model"
)

type ContentAssetRepositoryInterface interface {
	ListByCampaign(campaignID string) ([]model.ContentAsset, error)
	Create(a *model.ContentAsset) error
}

type ContentAssetRepository struct {
	DB *sql.DB
}

// ListByCampaign returns a campaign's assets in their publication order.
func (r *ContentAssetRepository) ListByCampaign(campaignID string) ([]model.ContentAsset, error) {
	query := `
		SELECT id, campaign_id, platform, body, position, created_at
		FROM content_assets WHERE campaign_id=$1 ORDER BY position
	`
	rows, err := r.DB.Query(query, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assets := []model.ContentAsset{}
	for rows.Next() {
		var a model.ContentAsset
		if err := rows.Scan(&a.ID, &a.CampaignID, &a.Platform, &a.Body, &a.Position, &a.CreatedAt); err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

func (r *ContentAssetRepository) Create(a *model.ContentAsset) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	a.CreatedAt = time.Now()
	query := `
		INSERT INTO content_assets (id, campaign_id, platform, body, position, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.DB.Exec(query, a.ID, a.CampaignID, a.Platform, a.Body, a.Position, a.CreatedAt)
	return err
}

var _ ContentAssetRepositoryInterface = (*ContentAssetRepository)(nil)
