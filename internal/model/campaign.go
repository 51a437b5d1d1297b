// internal/model/campaign.go
package model

import "time"

// Status is the campaign lifecycle status. DRAFT is the only initial state;
// COMPLETED is terminal. ACTIVE->PAUSED and SCHEDULED/ACTIVE->COMPLETED are
// backend-driven transitions that clients observe via re-fetch.
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusScheduled Status = "SCHEDULED"
	StatusActive    Status = "ACTIVE"
	StatusPaused    Status = "PAUSED"
	StatusCompleted Status = "COMPLETED"
)

// Valid reports whether s is one of the known lifecycle statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusScheduled, StatusActive, StatusPaused, StatusCompleted:
		return true
	}
	return false
}

type Campaign struct {
	ID              string     `db:"id" json:"id"`
	UserID          string     `db:"user_id" json:"userId"`
	Name            string     `db:"name" json:"name"`
	Goal            string     `db:"goal" json:"goal"`
	Audience        string     `db:"audience" json:"audience"`
	Platform        string     `db:"platform" json:"platform"`
	Tone            string     `db:"tone" json:"tone"`
	PostLength      string     `db:"post_length" json:"postLength"`
	BrandVoiceNotes string     `db:"brand_voice_notes" json:"brandVoiceNotes"`
	CallToAction    string     `db:"call_to_action" json:"callToAction"`
	Offer           string     `db:"offer" json:"offer"`
	PainPoint       string     `db:"pain_point" json:"painPoint"`
	Hashtags        string     `db:"hashtags" json:"hashtags"`
	Budget          int        `db:"budget" json:"budget"`
	StrategyID      string     `db:"strategy_id" json:"strategyId"`
	Status          Status     `db:"status" json:"status"`
	Content         *string    `db:"content" json:"content,omitempty"`
	ScheduledAt     *time.Time `db:"scheduled_at" json:"scheduledAt,omitempty"`
	CreatedAt       time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt       *time.Time `db:"updated_at" json:"updatedAt,omitempty"`
}
