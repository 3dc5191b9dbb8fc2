package bus

import (
	"testing"
	"time"

	"github.com/pm-tools/teampulse/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectEvent(projectID string) domain.MetricsUpdateEvent {
	return domain.MetricsUpdateEvent{
		Kind:      domain.EventKindProject,
		ProjectID: projectID,
		Timestamp: time.Now().UTC(),
	}
}

func receive(t *testing.T, sub *Subscription) domain.MetricsUpdateEvent {
	t.Helper()
	select {
	case event, ok := <-sub.Events():
		require.True(t, ok, "subscription closed unexpectedly")
		return event
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return domain.MetricsUpdateEvent{}
	}
}

func TestPublishMulticastsToAllSubscribers(t *testing.T) {
	b := New(Options{})
	defer b.Close()

	first := b.SubscribeProject("p1")
	second := b.SubscribeProject("p1")
	defer first.Close()
	defer second.Close()

	b.Publish(projectEvent("p1"))

	assert.Equal(t, "p1", receive(t, first).ProjectID)
	assert.Equal(t, "p1", receive(t, second).ProjectID)
}

func TestProjectSubscriptionIsUnfiltered(t *testing.T) {
	b := New(Options{})
	defer b.Close()

	sub := b.SubscribeProject("p1")
	defer sub.Close()

	b.Publish(projectEvent("other"))

	assert.Equal(t, "other", receive(t, sub).ProjectID)
}

func TestEventsRouteByKind(t *testing.T) {
	b := New(Options{})
	defer b.Close()

	project := b.SubscribeProject("p1")
	dashboard := b.SubscribeDashboard()
	defer project.Close()
	defer dashboard.Close()

	b.Publish(domain.MetricsUpdateEvent{Kind: domain.EventKindSprint, ProjectID: "p1"})
	b.Publish(domain.MetricsUpdateEvent{Kind: domain.EventKindDashboard})

	got := receive(t, project)
	assert.Equal(t, domain.EventKindSprint, got.Kind)
	assert.Equal(t, domain.EventKindDashboard, receive(t, dashboard).Kind)

	select {
	case event := <-project.Events():
		t.Fatalf("dashboard event leaked to project channel: %+v", event)
	default:
	}
}

func TestSlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	b := New(Options{BufferSize: 1})
	defer b.Close()

	sub := b.SubscribeProject("p1")
	defer sub.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		b.Publish(projectEvent("first"))
		b.Publish(projectEvent("second"))
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber buffer")
	}

	assert.Equal(t, "first", receive(t, sub).ProjectID)
	select {
	case event := <-sub.Events():
		t.Fatalf("expected overflow event to be dropped, got %+v", event)
	default:
	}
}

func TestSubscriptionCloseStopsDelivery(t *testing.T) {
	b := New(Options{})
	defer b.Close()

	sub := b.SubscribeProject("p1")
	sub.Close()
	sub.Close() // idempotent

	b.Publish(projectEvent("p1"))

	_, ok := <-sub.Events()
	assert.False(t, ok, "channel should be closed after Close")
}

func TestBusCloseClosesSubscribers(t *testing.T) {
	b := New(Options{})
	sub := b.SubscribeProject("p1")

	b.Close()

	_, ok := <-sub.Events()
	assert.False(t, ok)

	// Publishing and subscribing after Close must not panic.
	b.Publish(projectEvent("p1"))
	late := b.SubscribeDashboard()
	_, ok = <-late.Events()
	assert.False(t, ok)

	sub.Close()
}
