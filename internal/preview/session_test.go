package preview

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/campaign-planner/internal/api"
)

// mockBackend counts calls and lets tests control responses.
type mockBackend struct {
	mu           sync.Mutex
	previewText  string
	previewErr   error
	previewCalls int
	saveErr      error
	saveCalls    int
	savedContent string
	block        chan struct{} // non-nil: Preview blocks until closed
}

func (m *mockBackend) Preview(ctx context.Context, payload api.CampaignPayload) (string, error) {
	m.mu.Lock()
	m.previewCalls++
	block := m.block
	m.mu.Unlock()
	if block != nil {
		<-block
	}
	return m.previewText, m.previewErr
}

func (m *mockBackend) SaveContent(ctx context.Context, id, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveCalls++
	m.savedContent = content
	return m.saveErr
}

func payload() api.CampaignPayload {
	return api.CampaignPayload{Name: "Spring Launch", Goal: "Generate Leads", Platform: "Instagram"}
}

func TestFetchSetsPreviewText(t *testing.T) {
	backend := &mockBackend{previewText: "Fresh content!"}
	s := NewSession(backend, nil, payload(), "camp-1")

	s.Fetch(context.Background())
	assert.Equal(t, "Fresh content!", s.Text())
}

func TestFetchIsReinvocable(t *testing.T) {
	backend := &mockBackend{previewText: "v1"}
	s := NewSession(backend, nil, payload(), "camp-1")

	s.Fetch(context.Background())
	backend.previewText = "v2"
	s.Fetch(context.Background())

	assert.Equal(t, "v2", s.Text())
	assert.Equal(t, 2, backend.previewCalls)
}

func TestFetchFailureSetsSentinel(t *testing.T) {
	backend := &mockBackend{previewErr: errors.New("upstream down")}
	s := NewSession(backend, nil, payload(), "camp-1")

	s.Fetch(context.Background())
	assert.Equal(t, FailedText, s.Text())
}

func TestStaleResponseDiscardedAfterClose(t *testing.T) {
	backend := &mockBackend{previewText: "late arrival", block: make(chan struct{})}
	s := NewSession(backend, nil, payload(), "camp-1")

	done := make(chan struct{})
	go func() {
		s.Fetch(context.Background())
		close(done)
	}()

	// Dialog closes while the request is still in flight.
	s.Close()
	close(backend.block)
	<-done

	assert.Empty(t, s.Text(), "stale response must not mutate session state")
}

// seqBackend blocks its first Preview call until released; later calls
// return immediately.
type seqBackend struct {
	mockBackend
	entered chan struct{}
	release chan struct{}
}

func (b *seqBackend) Preview(ctx context.Context, payload api.CampaignPayload) (string, error) {
	b.mu.Lock()
	b.previewCalls++
	first := b.previewCalls == 1
	b.mu.Unlock()
	if first {
		close(b.entered)
		<-b.release
		return "slow", nil
	}
	return "fast", nil
}

func TestNewerFetchWinsOverOlder(t *testing.T) {
	backend := &seqBackend{entered: make(chan struct{}), release: make(chan struct{})}
	s := NewSession(backend, nil, payload(), "camp-1")

	done := make(chan struct{})
	go func() {
		s.Fetch(context.Background())
		close(done)
	}()
	<-backend.entered

	// A second fetch supersedes the first; the first response is stale by
	// the time it resolves.
	s.Fetch(context.Background())
	close(backend.release)
	<-done

	assert.Equal(t, "fast", s.Text())
}

func TestSaveWithoutCampaignID(t *testing.T) {
	backend := &mockBackend{}
	s := NewSession(backend, nil, payload(), "")

	assert.False(t, s.CanSave())
	err := s.Save(context.Background())
	assert.ErrorIs(t, err, ErrNoCampaignID)
	assert.Zero(t, backend.saveCalls, "precondition failure must not hit the network")
}

func TestSavePersistsTextAndExitsEditMode(t *testing.T) {
	backend := &mockBackend{}
	s := NewSession(backend, nil, payload(), "camp-1")

	s.ToggleEdit()
	s.SetText("Edited copy")
	require.True(t, s.Editing())

	require.NoError(t, s.Save(context.Background()))
	assert.Equal(t, "Edited copy", backend.savedContent)
	assert.True(t, s.Saved())
	assert.False(t, s.Editing())
}

func TestSaveFailurePropagates(t *testing.T) {
	backend := &mockBackend{saveErr: errors.New("500")}
	s := NewSession(backend, nil, payload(), "camp-1")
	s.SetText("copy")

	err := s.Save(context.Background())
	assert.Error(t, err)
	assert.False(t, s.Saved())
}

func TestToggleEditClearsSaved(t *testing.T) {
	backend := &mockBackend{}
	s := NewSession(backend, nil, payload(), "camp-1")
	s.SetText("copy")
	require.NoError(t, s.Save(context.Background()))
	require.True(t, s.Saved())

	// Re-entering edit mode invalidates the saved banner.
	s.ToggleEdit()
	assert.False(t, s.Saved())
	assert.True(t, s.Editing())
}
