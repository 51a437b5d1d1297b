package lifecycle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/unclebandit/campaign-planner/internal/errors"
	"github.com/unclebandit/campaign-planner/internal/model"
)

type mockLauncher struct {
	calls  int
	lastAt *time.Time
}

func (m *mockLauncher) Launch(ctx context.Context, id string, scheduledAt *time.Time) (*model.Campaign, error) {
	m.calls++
	m.lastAt = scheduledAt
	status := model.StatusActive
	if scheduledAt != nil {
		status = model.StatusScheduled
	}
	return &model.Campaign{ID: id, Status: status, ScheduledAt: scheduledAt}, nil
}

func TestGatesOnlyDraft(t *testing.T) {
	for _, s := range []model.Status{model.StatusScheduled, model.StatusActive, model.StatusPaused, model.StatusCompleted} {
		assert.False(t, CanEdit(s), "edit gate for %s", s)
		assert.False(t, CanDelete(s), "delete gate for %s", s)
		assert.False(t, CanLaunch(s), "launch gate for %s", s)
	}
	assert.True(t, CanEdit(model.StatusDraft))
	assert.True(t, CanDelete(model.StatusDraft))
	assert.True(t, CanLaunch(model.StatusDraft))
}

func TestLaunchNow(t *testing.T) {
	launcher := &mockLauncher{}
	c := &model.Campaign{ID: "camp-1", Status: model.StatusDraft}

	updated, err := Launch(context.Background(), launcher, c, nil)
	require.NoError(t, err)
	assert.Equal(t, model.StatusActive, updated.Status)
	assert.Nil(t, launcher.lastAt)
}

func TestScheduledLaunch(t *testing.T) {
	launcher := &mockLauncher{}
	c := &model.Campaign{ID: "camp-1", Status: model.StatusDraft}
	at := time.Now().Add(time.Hour)

	updated, err := Launch(context.Background(), launcher, c, &at)
	require.NoError(t, err)
	assert.Equal(t, model.StatusScheduled, updated.Status)
	require.NotNil(t, launcher.lastAt)
	assert.True(t, launcher.lastAt.Equal(at))
}

func TestPastScheduleRejectedBeforeRequest(t *testing.T) {
	launcher := &mockLauncher{}
	c := &model.Campaign{ID: "camp-1", Status: model.StatusDraft}
	at := time.Now().Add(-time.Minute)

	_, err := Launch(context.Background(), launcher, c, &at)
	assert.ErrorIs(t, err, appErrors.ErrPastSchedule)
	assert.Zero(t, launcher.calls, "a rejected schedule must never reach the backend")
}

func TestLaunchRejectedOutsideDraft(t *testing.T) {
	launcher := &mockLauncher{}
	c := &model.Campaign{ID: "camp-1", Status: model.StatusActive}

	_, err := Launch(context.Background(), launcher, c, nil)
	assert.True(t, appErrors.IsNotDraft(err))
	assert.Zero(t, launcher.calls)
}
