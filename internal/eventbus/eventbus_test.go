package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func waitFor(t *testing.T, ch <-chan DomainEvent) DomainEvent {
	t.Helper()
	select {
	case e := <-ch:
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func TestPublishReachesSubscriber(t *testing.T) {
	b := New()
	got := make(chan DomainEvent, 1)
	b.Subscribe(EventCatalogLoaded, func(e DomainEvent) { got <- e })

	b.Publish(CatalogLoadedEvent{Count: 42})

	event := waitFor(t, got)
	loaded, ok := event.(CatalogLoadedEvent)
	require.True(t, ok)
	require.Equal(t, 42, loaded.Count)
}

func TestSubscribersAreTypeScoped(t *testing.T) {
	b := New()
	mutations := make(chan DomainEvent, 4)
	b.Subscribe(EventEntityMutated, func(e DomainEvent) { mutations <- e })

	b.Publish(CatalogLoadedEvent{Count: 1})
	b.Publish(EntityMutatedEvent{ID: 7})

	event := waitFor(t, mutations)
	mutated, ok := event.(EntityMutatedEvent)
	require.True(t, ok)
	require.Equal(t, 7, mutated.ID)
	require.Empty(t, mutations, "catalog event must not reach the mutation subscriber")
}

func TestAllSubscribersNotified(t *testing.T) {
	b := New()
	first := make(chan DomainEvent, 1)
	second := make(chan DomainEvent, 1)
	b.Subscribe(EventHistoryCleared, func(e DomainEvent) { first <- e })
	b.Subscribe(EventHistoryCleared, func(e DomainEvent) { second <- e })

	b.Publish(HistoryClearedEvent{})

	waitFor(t, first)
	waitFor(t, second)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New()
	removed := make(chan DomainEvent, 2)
	kept := make(chan DomainEvent, 2)
	unsub := b.Subscribe(EventEntityMutated, func(e DomainEvent) { removed <- e })
	b.Subscribe(EventEntityMutated, func(e DomainEvent) { kept <- e })

	b.Publish(EntityMutatedEvent{ID: 1})
	waitFor(t, removed)
	waitFor(t, kept)

	unsub()
	b.Publish(EntityMutatedEvent{ID: 2})
	waitFor(t, kept)
	require.Empty(t, removed, "unsubscribed handler must not fire again")
}

func TestUnsubscribeIsScopedToOneSubscription(t *testing.T) {
	b := New()
	first := make(chan DomainEvent, 1)
	second := make(chan DomainEvent, 1)
	b.Subscribe(EventHistoryLoaded, func(e DomainEvent) { first <- e })
	unsub := b.Subscribe(EventHistoryLoaded, func(e DomainEvent) { second <- e })

	unsub()
	unsub() // calling twice must not remove anyone else

	b.Publish(HistoryLoadedEvent{Count: 3})
	waitFor(t, first)
	require.Empty(t, second)
}

func TestPanickingHandlerDoesNotKillTheBus(t *testing.T) {
	b := New()
	got := make(chan DomainEvent, 2)
	b.Subscribe(EventError, func(DomainEvent) { panic("handler bug") })
	b.Subscribe(EventError, func(e DomainEvent) { got <- e })

	b.Publish(ErrorEvent{Message: "first"})
	waitFor(t, got)

	b.Publish(ErrorEvent{Message: "second"})
	waitFor(t, got)
}
