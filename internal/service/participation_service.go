package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/quizdeck/quiz-backend/internal/model"
	"github.com/rs/zerolog"
)

// ParticipationQuestionStore is the question access the participation path
// needs: a quiz-scoped fetch plus the atomic tally increment.
type ParticipationQuestionStore interface {
	GetByQuiz(ctx context.Context, id, quizID uuid.UUID) (*model.Question, error)
	IncrementStats(ctx context.Context, id uuid.UUID, success, fail int64) error
}

// AccountStatsStore applies tally increments to an account.
type AccountStatsStore interface {
	IncrementStats(ctx context.Context, id int, success, fail int64) error
}

// StatsNotifier announces changed tallies to interested consumers.
type StatsNotifier interface {
	QuizStatsChanged(ctx context.Context, event model.QuizStatsEvent)
}

// ParticipationService scores submissions and applies the resulting
// deltas to question and account counters.
type ParticipationService struct {
	questions ParticipationQuestionStore
	accounts  AccountStatsStore
	notifier  StatsNotifier
	log       zerolog.Logger
}

// NewParticipationService creates a new ParticipationService.
func NewParticipationService(
	questions ParticipationQuestionStore,
	accounts AccountStatsStore,
	notifier StatsNotifier,
	log zerolog.Logger,
) *ParticipationService {
	return &ParticipationService{
		questions: questions,
		accounts:  accounts,
		notifier:  notifier,
		log:       log.With().Str("component", "participation_service").Logger(),
	}
}

// score holds the outcome of matching one submission against a question's
// valid option set.
type score struct {
	Matches int
	Found   int
	Success int
	Fail    int
}

// scoreSubmission scores submitted option identifiers against the
// question's valid options. Pure: the option slice is only read.
//
// Matches is the number of valid options. Found counts submitted
// identifiers present in that set (duplicates count each time, and
// submitted identifiers are not checked for existence among the
// question's options). Fail charges both the valid options the
// participant missed and the submissions that matched nothing.
func scoreSubmission(options []model.Option, responses []string) score {
	real := make(map[string]struct{}, len(options))
	for _, o := range options {
		if o.Valid {
			real[o.ID.String()] = struct{}{}
		}
	}

	found := 0
	for _, r := range responses {
		if _, ok := real[r]; ok {
			found++
		}
	}

	matches := len(real)
	return score{
		Matches: matches,
		Found:   found,
		Success: found,
		Fail:    (matches - found) + (len(responses) - found),
	}
}

// Participate scores one submission against a question of the quiz and
// applies the computed deltas. Counter updates are best-effort: a failed
// increment is logged and the response still carries the computed values.
// The question is always updated before the account.
func (s *ParticipationService) Participate(ctx context.Context, quizID uuid.UUID, accountID *int, req model.ParticipationRequest) (*model.ParticipationResult, error) {
	questionID, err := uuid.Parse(req.Question)
	if err != nil {
		return nil, ErrNotFound
	}

	question, err := s.questions.GetByQuiz(ctx, questionID, quizID)
	if err != nil {
		return nil, mapNoRows(err)
	}

	result := scoreSubmission(question.Options, req.Responses)

	if err := s.questions.IncrementStats(ctx, question.ID, int64(result.Success), int64(result.Fail)); err != nil {
		s.log.Error().Err(err).
			Stringer("question", question.ID).
			Msg("question stats update failed")
	}

	if accountID != nil {
		if err := s.accounts.IncrementStats(ctx, *accountID, int64(result.Success), int64(result.Fail)); err != nil {
			s.log.Error().Err(err).
				Int("account", *accountID).
				Msg("account stats update failed")
		}
	}

	if s.notifier != nil {
		s.notifier.QuizStatsChanged(ctx, model.QuizStatsEvent{
			QuizID:     quizID,
			QuestionID: question.ID,
			Success:    result.Success,
			Fail:       result.Fail,
			At:         time.Now().UTC(),
		})
	}

	return &model.ParticipationResult{
		ID:      question.ID,
		Success: result.Success,
		Fail:    result.Fail,
		Options: question.Options,
	}, nil
}
