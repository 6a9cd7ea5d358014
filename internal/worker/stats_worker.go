package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/quizdeck/quiz-backend/internal/config"
	"github.com/quizdeck/quiz-backend/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	statsBatchSize    = 50
	statsBatchTimeout = 2 * time.Second
	statsPollTimeout  = 1 * time.Second
)

// SummarySource rebuilds aggregate quiz rows from the backing store.
// *repository.QuizRepository satisfies it.
type SummarySource interface {
	GetSummary(ctx context.Context, id uuid.UUID) (*model.QuizSummary, error)
}

// StatsWorker consumes quiz ids queued after participations and rebuilds
// the cached quiz summaries. The cache is advisory: every read path falls
// back to SQL, so a failed rebuild costs latency, never correctness.
type StatsWorker struct {
	source SummarySource
	rdb    *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

// NewStatsWorker creates a new StatsWorker.
func NewStatsWorker(source SummarySource, rdb *redis.Client, ttl time.Duration, log zerolog.Logger) *StatsWorker {
	return &StatsWorker{
		source: source,
		rdb:    rdb,
		ttl:    ttl,
		log:    log.With().Str("component", "stats_worker").Logger(),
	}
}

// Start runs the consumer loop until the context is cancelled. Queued ids
// are deduplicated within a batch window: a burst of participations on
// one quiz triggers a single rebuild.
func (w *StatsWorker) Start(ctx context.Context) {
	w.log.Info().Msg("StatsWorker started")

	batch := make(map[string]struct{}, statsBatchSize)
	lastFlush := time.Now()

	for {
		if len(batch) > 0 &&
			(len(batch) >= statsBatchSize || time.Since(lastFlush) >= statsBatchTimeout) {

			w.flush(ctx, batch)
			batch = make(map[string]struct{}, statsBatchSize)
			lastFlush = time.Now()
		}

		select {
		case <-ctx.Done():
			w.log.Info().Msg("Shutdown requested. Flushing remaining batch...")
			w.flush(context.Background(), batch)
			return

		default:
			item, err := w.rdb.BLPop(ctx, statsPollTimeout, config.WorkerKey.RefreshQuizStatsQueue).Result()
			if err != nil {
				if err != redis.Nil && ctx.Err() == nil {
					w.log.Error().Err(err).Msg("BLPop error")
				}
				continue
			}

			if len(item) < 2 {
				continue
			}
			batch[item[1]] = struct{}{}
		}
	}
}

func (w *StatsWorker) flush(ctx context.Context, batch map[string]struct{}) {
	for raw := range batch {
		quizID, err := uuid.Parse(raw)
		if err != nil {
			w.log.Error().Str("quiz", raw).Msg("invalid quiz id on stats queue")
			continue
		}
		if err := w.refresh(ctx, quizID); err != nil {
			w.log.Warn().Err(err).Stringer("quiz", quizID).Msg("summary refresh failed")
		}
	}
}

func (w *StatsWorker) refresh(ctx context.Context, quizID uuid.UUID) error {
	summary, err := w.source.GetSummary(ctx, quizID)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	key := config.CacheKey.QuizSummaryKey(quizID.String())
	return w.rdb.Set(ctx, key, raw, w.ttl).Err()
}
