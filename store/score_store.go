package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/lguibr/duopong/game"
	"github.com/redis/go-redis/v9"
)

const (
	scoreboardKey = "duopong:scoreboard"
	historyKey    = "duopong:points"

	// PointsChannel carries every recorded point as JSON.
	PointsChannel = "points"
)

// PointRecord is the persisted form of a completed round.
type PointRecord struct {
	Scorer     game.Side  `json:"scorer"`
	Score      game.Score `json:"score"`
	Tick       uint64     `json:"tick"`
	RecordedAt time.Time  `json:"recordedAt"`
}

// ScoreStore keeps cumulative totals and a bounded point history in Redis.
type ScoreStore struct {
	rdb           *redis.Client
	historyLength int
	now           func() time.Time
}

// NewScoreStore creates a store trimming the history to historyLength entries.
func NewScoreStore(rdb *redis.Client, historyLength int) *ScoreStore {
	if historyLength <= 0 {
		historyLength = 100
	}
	return &ScoreStore{rdb: rdb, historyLength: historyLength, now: time.Now}
}

func newPointRecord(event game.PointEvent, at time.Time) PointRecord {
	return PointRecord{
		Scorer:     event.Scorer,
		Score:      event.Score,
		Tick:       event.Tick,
		RecordedAt: at.UTC(),
	}
}

// RecordPoint implements game.PointRecorder. Totals, history and the
// notification are applied in one MULTI/EXEC transaction.
func (s *ScoreStore) RecordPoint(ctx context.Context, event game.PointEvent) error {
	record := newPointRecord(event, s.now())
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding point: %w", err)
	}

	pipe := s.rdb.TxPipeline()
	pipe.HIncrBy(ctx, scoreboardKey, event.Scorer.String(), 1)
	pipe.LPush(ctx, historyKey, payload)
	pipe.LTrim(ctx, historyKey, 0, int64(s.historyLength-1))
	pipe.Publish(ctx, PointsChannel, payload)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("recording point: %w", err)
	}
	return nil
}

// History returns up to limit points, newest first.
func (s *ScoreStore) History(ctx context.Context, limit int) ([]PointRecord, error) {
	if limit <= 0 || limit > s.historyLength {
		limit = s.historyLength
	}
	raw, err := s.rdb.LRange(ctx, historyKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}
	return decodeHistory(raw), nil
}

// Totals returns the cumulative points per side across every session.
func (s *ScoreStore) Totals(ctx context.Context) (game.Score, error) {
	fields, err := s.rdb.HGetAll(ctx, scoreboardKey).Result()
	if err != nil {
		return game.Score{}, fmt.Errorf("reading scoreboard: %w", err)
	}
	return decodeTotals(fields), nil
}

func decodeHistory(raw []string) []PointRecord {
	records := make([]PointRecord, 0, len(raw))
	for _, item := range raw {
		var record PointRecord
		if err := json.Unmarshal([]byte(item), &record); err != nil {
			log.Printf("[STORE] skipping malformed history entry: %v", err)
			continue
		}
		records = append(records, record)
	}
	return records
}

func decodeTotals(fields map[string]string) game.Score {
	var totals game.Score
	for field, value := range fields {
		var side game.Side
		if err := side.UnmarshalText([]byte(field)); err != nil {
			continue
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			continue
		}
		switch side {
		case game.SidePrimary:
			totals.Primary = n
		case game.SideSecondary:
			totals.Secondary = n
		}
	}
	return totals
}
