package queue

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishDeliversToSubscriber(t *testing.T) {
	q := NewInMemoryQueue(nil)

	var mu sync.Mutex
	var got []any
	done := make(chan struct{})
	require.NoError(t, q.Subscribe(LaunchTopic, func(payload any) error {
		mu.Lock()
		got = append(got, payload)
		mu.Unlock()
		close(done)
		return nil
	}))

	require.NoError(t, q.Publish(LaunchTopic, LaunchJob{CampaignID: "camp-1"}))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler never ran")
	}
	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 1)
	assert.Equal(t, LaunchJob{CampaignID: "camp-1"}, got[0])
}

func TestPublishWithoutSubscriberFails(t *testing.T) {
	q := NewInMemoryQueue(nil)
	err := q.Publish("nowhere", 1)
	assert.ErrorContains(t, err, "no subscribers")
}

func TestFailingHandlerIsRetried(t *testing.T) {
	q := NewInMemoryQueue(nil)

	var mu sync.Mutex
	attempts := 0
	done := make(chan struct{})
	require.NoError(t, q.Subscribe(LaunchTopic, func(payload any) error {
		mu.Lock()
		defer mu.Unlock()
		attempts++
		if attempts < 2 {
			return errors.New("transient")
		}
		close(done)
		return nil
	}))

	require.NoError(t, q.Publish(LaunchTopic, LaunchJob{CampaignID: "camp-1"}))

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("job was not retried to success")
	}
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 2, attempts)
}
