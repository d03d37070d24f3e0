package redisfeed

import (
	"testing"

	"cattle-farm-manager/internal/ports/changefeed"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestDispatch(t *testing.T) {
	f := NewWithClient(redis.NewClient(&redis.Options{Addr: "localhost:0"}), "", nil)
	require.Equal(t, DefaultPrefix+"herds", f.channel(changefeed.CollectionHerds))

	var got []changefeed.Change
	fn := func(c changefeed.Change) { got = append(got, c) }

	f.dispatch(&redis.Message{
		Channel: f.channel(changefeed.CollectionHerds),
		Payload: `{"collection":"herds","owner_id":"u1","document_id":"h1","op":"updated"}`,
	}, fn)
	f.dispatch(&redis.Message{Channel: "x", Payload: "not json"}, fn)

	require.Equal(t, []changefeed.Change{{
		Collection: changefeed.CollectionHerds,
		OwnerID:    "u1",
		DocumentID: "h1",
		Op:         changefeed.OpUpdated,
	}}, got)
}
