package service

import (
	"context"
	"encoding/json"

	"github.com/quizdeck/quiz-backend/internal/config"
	"github.com/quizdeck/quiz-backend/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// RedisStatsNotifier fans changed tallies out through Redis: it queues the
// quiz for a summary cache rebuild and publishes the event for live
// WebSocket listeners. Both writes are best-effort.
type RedisStatsNotifier struct {
	rdb *redis.Client
	log zerolog.Logger
}

// NewRedisStatsNotifier creates a new RedisStatsNotifier.
func NewRedisStatsNotifier(rdb *redis.Client, log zerolog.Logger) *RedisStatsNotifier {
	return &RedisStatsNotifier{
		rdb: rdb,
		log: log.With().Str("component", "stats_notifier").Logger(),
	}
}

// QuizStatsChanged implements StatsNotifier.
func (n *RedisStatsNotifier) QuizStatsChanged(ctx context.Context, event model.QuizStatsEvent) {
	if err := n.rdb.RPush(ctx, config.WorkerKey.RefreshQuizStatsQueue, event.QuizID.String()).Err(); err != nil {
		n.log.Warn().Err(err).Stringer("quiz", event.QuizID).Msg("stats queue push failed")
	}

	raw, err := json.Marshal(event)
	if err != nil {
		n.log.Warn().Err(err).Msg("stats event marshal failed")
		return
	}
	channel := config.CacheKey.QuizStatsChannel(event.QuizID.String())
	if err := n.rdb.Publish(ctx, channel, raw).Err(); err != nil {
		n.log.Warn().Err(err).Str("channel", channel).Msg("stats publish failed")
	}
}
