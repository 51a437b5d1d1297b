// internal/errors/errors.go
package appErrors

import (
	"errors"
	"fmt"
)

// ErrCampaignNotFound is a sentinel error
type ErrCampaignNotFound struct {
	CampaignID string
}

func (e *ErrCampaignNotFound) Error() string {
	return fmt.Sprintf("campaign %s not found", e.CampaignID)
}

// Helper constructor
func NewCampaignNotFound(id string) error {
	return &ErrCampaignNotFound{CampaignID: id}
}

func IsNotFound(err error) bool {
	var nf *ErrCampaignNotFound
	return errors.As(err, &nf)
}

// ErrNotDraft rejects edit/delete/launch of a campaign that has left DRAFT.
type ErrNotDraft struct {
	CampaignID string
	Status     string
}

func (e *ErrNotDraft) Error() string {
	return fmt.Sprintf("campaign %s is %s, only DRAFT campaigns allow this action", e.CampaignID, e.Status)
}

func NewNotDraft(id, status string) error {
	return &ErrNotDraft{CampaignID: id, Status: status}
}

func IsNotDraft(err error) bool {
	var nd *ErrNotDraft
	return errors.As(err, &nd)
}

// ErrPastSchedule rejects a scheduled launch whose timestamp is not strictly
// in the future.
var ErrPastSchedule = errors.New("scheduled time must be in the future")
