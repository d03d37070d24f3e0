package memory

import (
	"context"
	"testing"
	"time"

	"cattle-farm-manager/internal/ports/changefeed"
)

func TestFeed_DeliversToCollectionSubscribers(t *testing.T) {
	f := NewFeed()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var herdsSeen, pasturesSeen int
	_ = f.Subscribe(ctx, changefeed.CollectionHerds, func(changefeed.Change) { herdsSeen++ })
	_ = f.Subscribe(ctx, changefeed.CollectionPastures, func(changefeed.Change) { pasturesSeen++ })

	_ = f.Publish(ctx, changefeed.Change{Collection: changefeed.CollectionHerds, OwnerID: "u1", DocumentID: "h1", Op: changefeed.OpCreated})

	if herdsSeen != 1 || pasturesSeen != 0 {
		t.Fatalf("expected 1/0 deliveries, got %d/%d", herdsSeen, pasturesSeen)
	}
}

func TestFeed_CancelUnsubscribes(t *testing.T) {
	f := NewFeed()
	ctx, cancel := context.WithCancel(context.Background())

	seen := 0
	_ = f.Subscribe(ctx, changefeed.CollectionHerds, func(changefeed.Change) { seen++ })
	cancel()

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		f.mu.RLock()
		n := len(f.subs[changefeed.CollectionHerds])
		f.mu.RUnlock()
		if n == 0 {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	_ = f.Publish(context.Background(), changefeed.Change{Collection: changefeed.CollectionHerds})
	if seen != 0 {
		t.Fatalf("expected no delivery after cancel, got %d", seen)
	}
}
