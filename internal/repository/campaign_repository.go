package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	appErrors "github.com/unclebandit/campaign-planner/internal/errors"
	"github.com/unclebandit/campaign-planner/internal/model"
)

type CampaignRepositoryInterface interface {
	Create(c *model.Campaign) error
	Update(c *model.Campaign) error
	UpdateStatus(id string, status model.Status, scheduledAt *time.Time) error
	UpdateContent(id string, content string) error
	GetByID(id string) (*model.Campaign, error)
	ListByUser(userID string) ([]*model.Campaign, error)
	Delete(id string) error
}

type CampaignRepository struct {
	DB *sql.DB
}

const campaignColumns = `id, user_id, name, goal, audience, platform, tone, post_length,
		brand_voice_notes, call_to_action, offer, pain_point, hashtags, budget,
		strategy_id, status, content, scheduled_at, created_at, updated_at`

// ====================== Campaign CRUD ======================

func (r *CampaignRepository) Create(c *model.Campaign) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Status == "" {
		c.Status = model.StatusDraft
	}
	c.CreatedAt = time.Now()
	query := `
		INSERT INTO campaigns (id, user_id, name, goal, audience, platform, tone, post_length,
			brand_voice_notes, call_to_action, offer, pain_point, hashtags, budget,
			strategy_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`
	_, err := r.DB.Exec(query,
		c.ID, c.UserID, c.Name, c.Goal, c.Audience, c.Platform, c.Tone, c.PostLength,
		c.BrandVoiceNotes, c.CallToAction, c.Offer, c.PainPoint, c.Hashtags, c.Budget,
		c.StrategyID, c.Status, c.CreatedAt,
	)
	return err
}

func (r *CampaignRepository) Update(c *model.Campaign) error {
	query := `
		UPDATE campaigns
		SET name=$1, goal=$2, audience=$3, platform=$4, tone=$5, post_length=$6,
			brand_voice_notes=$7, call_to_action=$8, offer=$9, pain_point=$10,
			hashtags=$11, budget=$12, strategy_id=$13, updated_at=NOW()
		WHERE id=$14
	`
	res, err := r.DB.Exec(query,
		c.Name, c.Goal, c.Audience, c.Platform, c.Tone, c.PostLength,
		c.BrandVoiceNotes, c.CallToAction, c.Offer, c.PainPoint,
		c.Hashtags, c.Budget, c.StrategyID, c.ID,
	)
	if err != nil {
		return err
	}
	return checkAffected(res, c.ID)
}

func (r *CampaignRepository) UpdateStatus(id string, status model.Status, scheduledAt *time.Time) error {
	query := `UPDATE campaigns SET status=$1, scheduled_at=$2, updated_at=NOW() WHERE id=$3`
	res, err := r.DB.Exec(query, status, scheduledAt, id)
	if err != nil {
		return err
	}
	return checkAffected(res, id)
}

func (r *CampaignRepository) UpdateContent(id string, content string) error {
	query := `UPDATE campaigns SET content=$1, updated_at=NOW() WHERE id=$2`
	res, err := r.DB.Exec(query, content, id)
	if err != nil {
		return err
	}
	return checkAffected(res, id)
}

func (r *CampaignRepository) GetByID(id string) (*model.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE id=$1`
	var c model.Campaign
	err := r.DB.QueryRow(query, id).Scan(
		&c.ID, &c.UserID, &c.Name, &c.Goal, &c.Audience, &c.Platform, &c.Tone, &c.PostLength,
		&c.BrandVoiceNotes, &c.CallToAction, &c.Offer, &c.PainPoint, &c.Hashtags, &c.Budget,
		&c.StrategyID, &c.Status, &c.Content, &c.ScheduledAt, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewCampaignNotFound(id)
		}
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepository) ListByUser(userID string) ([]*model.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.DB.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	campaigns := []*model.Campaign{}
	for rows.Next() {
		c := &model.Campaign{}
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.Name, &c.Goal, &c.Audience, &c.Platform, &c.Tone, &c.PostLength,
			&c.BrandVoiceNotes, &c.CallToAction, &c.Offer, &c.PainPoint, &c.Hashtags, &c.Budget,
			&c.StrategyID, &c.Status, &c.Content, &c.ScheduledAt, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}

func (r *CampaignRepository) Delete(id string) error {
	res, err := r.DB.Exec(`DELETE FROM campaigns WHERE id=$1`, id)
	if err != nil {
		return err
	}
	return checkAffected(res, id)
}

func checkAffected(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return appErrors.NewCampaignNotFound(id)
	}
	return nil
}

var _ CampaignRepositoryInterface = (*CampaignRepository)(nil)
