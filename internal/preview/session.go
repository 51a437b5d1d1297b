// internal/preview/session.go
package preview

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/unclebandit/campaign-planner/internal/api"
)

// FailedText is the sentinel shown inline when preview generation fails.
// The dialog renders it instead of crashing on an empty view.
const FailedText = "⚠️ Failed to generate preview."

// ErrNoCampaignID means the source campaign was never persisted; saving is
// blocked until it is. No network call is issued.
var ErrNoCampaignID = errors.New("cannot save preview: campaign has no id")

// Backend is the slice of the API the session needs.
type Backend interface {
	Preview(ctx context.Context, payload api.CampaignPayload) (string, error)
	SaveContent(ctx context.Context, id, content string) error
}

// Session holds one AI content preview: the resolved payload it was
// generated from, the editable text, and the edit/saved flags. A session
// lives only as long as its dialog; Close discards any in-flight response.
type Session struct {
	mu         sync.Mutex
	client     Backend
	logger     *zap.Logger
	payload    api.CampaignPayload
	campaignID string
	generation uint64
	closed     bool
	text       string
	editing    bool
	saved      bool
}

// NewSession creates a session for a resolved payload. campaignID is empty
// when the campaign has not been persisted yet.
func NewSession(client Backend, logger *zap.Logger, payload api.CampaignPayload, campaignID string) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{client: client, logger: logger, payload: payload, campaignID: campaignID}
}

// Fetch requests a fresh preview. It is re-invocable: reopening the dialog
// fetches again. A response that resolves after Close, or after a newer
// Fetch started, is discarded without touching session state.
func (s *Session) Fetch(ctx context.Context) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.generation++
	gen := s.generation
	s.saved = false
	s.mu.Unlock()

	text, err := s.client.Preview(ctx, s.payload)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.generation != gen {
		s.logger.Debug("discarding stale preview response")
		return
	}
	if err != nil {
		s.logger.Warn("preview generation failed", zap.Error(err))
		s.text = FailedText
		return
	}
	s.text = text
}

// ToggleEdit flips edit mode. Any toggle invalidates the saved banner.
func (s *Session) ToggleEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editing = !s.editing
	s.saved = false
}

// SetText replaces the preview text while editing.
func (s *Session) SetText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text = text
}

// CanSave reports whether the save action should be enabled at all.
func (s *Session) CanSave() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.campaignID != ""
}

// Save persists the preview text as the campaign's content and exits edit
// mode. It fails with ErrNoCampaignID before any network call when the
// campaign was never persisted.
func (s *Session) Save(ctx context.Context) error {
	s.mu.Lock()
	if s.campaignID == "" {
		s.mu.Unlock()
		return ErrNoCampaignID
	}
	id, text := s.campaignID, s.text
	s.mu.Unlock()

	if err := s.client.SaveContent(ctx, id, text); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.saved = true
		s.editing = false
	}
	return nil
}

// Close marks the session dead. Responses still in flight will not be
// applied.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

func (s *Session) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}

func (s *Session) Editing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editing
}

func (s *Session) Saved() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saved
}
