// internal/model/content_asset.go
package model

import "time"

// ContentAsset is one published piece of content belonging to a campaign.
// Assets are ordered by Position within their campaign.
type ContentAsset struct {
	ID         string    `db:"id" json:"id"`
	CampaignID string    `db:"campaign_id" json:"campaignId"`
	Platform   string    `db:"platform" json:"platform"`
	Body       string    `db:"body" json:"body"`
	Position   int       `db:"position" json:"position"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}
