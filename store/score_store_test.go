package store

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/lguibr/duopong/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointRecord_JSON(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("X", 3600))
	record := newPointRecord(game.PointEvent{Scorer: game.SidePrimary, Score: game.Score{Primary: 4, Secondary: 1}, Tick: 812}, at)

	raw, err := json.Marshal(record)
	require.NoError(t, err)
	assert.JSONEq(t, `{"scorer":"primary","score":{"primary":4,"secondary":1},"tick":812,"recordedAt":"2024-03-01T11:00:00Z"}`, string(raw))
}

func TestDecodeHistory_SkipsMalformedEntries(t *testing.T) {
	raw := []string{
		`{"scorer":"secondary","score":{"primary":0,"secondary":2},"tick":40,"recordedAt":"2024-03-01T11:00:00Z"}`,
		`not json`,
		`{"scorer":"sideways","tick":1}`,
		`{"scorer":"primary","score":{"primary":1,"secondary":1},"tick":12,"recordedAt":"2024-03-01T10:59:00Z"}`,
	}

	records := decodeHistory(raw)
	require.Len(t, records, 2)
	assert.Equal(t, game.SideSecondary, records[0].Scorer)
	assert.Equal(t, uint64(40), records[0].Tick)
	assert.Equal(t, game.Score{Primary: 1, Secondary: 1}, records[1].Score)
}

func TestDecodeTotals(t *testing.T) {
	totals := decodeTotals(map[string]string{
		"primary":   "7",
		"secondary": "3",
		"referee":   "1",
		"bogus":     "x",
	})
	assert.Equal(t, game.Score{Primary: 7, Secondary: 3}, totals)
	assert.Equal(t, game.Score{}, decodeTotals(nil))
}

func TestConnect_InvalidURL(t *testing.T) {
	_, err := Connect("not-a-redis-url")
	assert.Error(t, err)
}

// Runs against a real server when REDIS_TEST_URL is set, e.g. redis://localhost:6379/15.
func TestScoreStore_Redis(t *testing.T) {
	url := os.Getenv("REDIS_TEST_URL")
	if url == "" {
		t.Skip("REDIS_TEST_URL not set")
	}

	rdb, err := Connect(url)
	require.NoError(t, err)
	defer rdb.Close()

	ctx := context.Background()
	require.NoError(t, rdb.Del(ctx, scoreboardKey, historyKey).Err())
	defer rdb.Del(ctx, scoreboardKey, historyKey)

	s := NewScoreStore(rdb, 3)
	sub := rdb.Subscribe(ctx, PointsChannel)
	defer sub.Close()
	_, err = sub.Receive(ctx)
	require.NoError(t, err)

	for i := 1; i <= 5; i++ {
		scorer := game.SidePrimary
		if i%2 == 0 {
			scorer = game.SideSecondary
		}
		require.NoError(t, s.RecordPoint(ctx, game.PointEvent{Scorer: scorer, Tick: uint64(i * 10)}))
	}

	history, err := s.History(ctx, 10)
	require.NoError(t, err)
	require.Len(t, history, 3, "history is trimmed")
	assert.Equal(t, uint64(50), history[0].Tick, "newest first")

	totals, err := s.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, game.Score{Primary: 3, Secondary: 2}, totals)

	select {
	case msg := <-sub.Channel():
		var record PointRecord
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &record))
		assert.Equal(t, uint64(10), record.Tick)
	case <-time.After(2 * time.Second):
		t.Fatal("no point published")
	}
}
