// internal/lifecycle/lifecycle.go
package lifecycle

import (
	"context"
	"time"

	appErrors "github.com/unclebandit/campaign-planner/internal/errors"
	"github.com/unclebandit/campaign-planner/internal/model"
)

// The client may only initiate launch, edit and delete, all from DRAFT.
// Every other transition (SCHEDULED->ACTIVE, ACTIVE->PAUSED, ->COMPLETED)
// is backend-driven and only observed through re-fetch.

// CanEdit reports whether a campaign's attributes may still be changed.
func CanEdit(s model.Status) bool { return s == model.StatusDraft }

// CanDelete reports whether a campaign may be removed.
func CanDelete(s model.Status) bool { return s == model.StatusDraft }

// CanLaunch reports whether a campaign may be launched or scheduled.
func CanLaunch(s model.Status) bool { return s == model.StatusDraft }

// Launcher is the slice of the API the launch flow needs.
type Launcher interface {
	Launch(ctx context.Context, id string, scheduledAt *time.Time) (*model.Campaign, error)
}

// Launch starts a campaign now (nil at) or schedules it for later. A
// scheduled timestamp not strictly in the future is rejected before any
// request is issued. Returns the refreshed record: ACTIVE for an immediate
// launch, SCHEDULED otherwise.
func Launch(ctx context.Context, client Launcher, campaign *model.Campaign, at *time.Time) (*model.Campaign, error) {
	if !CanLaunch(campaign.Status) {
		return nil, appErrors.NewNotDraft(campaign.ID, string(campaign.Status))
	}
	if at != nil && !at.After(time.Now()) {
		return nil, appErrors.ErrPastSchedule
	}
	return client.Launch(ctx, campaign.ID, at)
}
