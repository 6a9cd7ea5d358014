package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/quizdeck/quiz-backend/internal/config"
	"github.com/quizdeck/quiz-backend/internal/model"
	"github.com/quizdeck/quiz-backend/internal/response"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// QuizStore is the persistence surface the quiz service needs.
type QuizStore interface {
	Create(ctx context.Context, q *model.Quiz) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Quiz, error)
	GetOwned(ctx context.Context, id uuid.UUID, ownerID int) (*model.Quiz, error)
	Update(ctx context.Context, id uuid.UUID, ownerID int, name, description string) error
	SoftDelete(ctx context.Context, id uuid.UUID, ownerID int) error
	ListSummaries(ctx context.Context, limit, offset int) ([]model.QuizSummary, int, error)
	ListSummariesByOwner(ctx context.Context, ownerID, limit, offset int) ([]model.QuizSummary, int, error)
	GetSummary(ctx context.Context, id uuid.UUID) (*model.QuizSummary, error)
}

// QuestionCascade is the question access required by the quiz read and
// delete paths.
type QuestionCascade interface {
	ListByQuiz(ctx context.Context, quizID uuid.UUID) ([]model.Question, error)
	SoftDeleteByQuiz(ctx context.Context, quizID uuid.UUID) error
}

// QuizService handles quiz CRUD and the aggregate read views.
type QuizService struct {
	quizzes   QuizStore
	questions QuestionCascade
	rdb       *redis.Client
	cacheTTL  time.Duration
	log       zerolog.Logger
}

// NewQuizService creates a new QuizService. rdb may be nil in tests; the
// summary cache is then skipped entirely.
func NewQuizService(quizzes QuizStore, questions QuestionCascade, rdb *redis.Client, cacheTTL time.Duration, log zerolog.Logger) *QuizService {
	return &QuizService{
		quizzes:   quizzes,
		questions: questions,
		rdb:       rdb,
		cacheTTL:  cacheTTL,
		log:       log.With().Str("component", "quiz_service").Logger(),
	}
}

// Create inserts a new quiz owned by the caller.
func (s *QuizService) Create(ctx context.Context, ownerID int, req model.CreateQuizRequest) (*model.Quiz, error) {
	quiz := &model.Quiz{
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.quizzes.Create(ctx, quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

// Update replaces a quiz's name and description.
func (s *QuizService) Update(ctx context.Context, id uuid.UUID, ownerID int, req model.CreateQuizRequest) error {
	return mapNoRows(s.quizzes.Update(ctx, id, ownerID, req.Name, req.Description))
}

// Delete soft-deletes a quiz, then bulk soft-deletes its questions. The
// cascade is best-effort: a failure is logged but the delete succeeds.
func (s *QuizService) Delete(ctx context.Context, id uuid.UUID, ownerID int) error {
	if err := s.quizzes.SoftDelete(ctx, id, ownerID); err != nil {
		return mapNoRows(err)
	}

	if err := s.questions.SoftDeleteByQuiz(ctx, id); err != nil {
		s.log.Error().Err(err).
			Stringer("quiz", id).
			Msg("question cascade delete failed")
	}
	return nil
}

// ListSummaries retrieves the public aggregate quiz list with pagination.
// ownerID filters to one owner's quizzes when non-nil.
func (s *QuizService) ListSummaries(ctx context.Context, ownerID *int, page, perPage int) ([]model.QuizSummary, *response.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	if perPage > 100 {
		perPage = 100
	}

	limit := perPage
	offset := (page - 1) * perPage

	var summaries []model.QuizSummary
	var total int
	var err error

	if ownerID != nil {
		summaries, total, err = s.quizzes.ListSummariesByOwner(ctx, *ownerID, limit, offset)
	} else {
		summaries, total, err = s.quizzes.ListSummaries(ctx, limit, offset)
	}
	if err != nil {
		return nil, nil, err
	}

	if summaries == nil {
		summaries = []model.QuizSummary{}
	}

	pagination := &response.Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: (total + perPage - 1) / perPage,
	}
	return summaries, pagination, nil
}

// GetDetail retrieves a quiz with its questions. Option validity flags
// are stripped: the detail view is public.
func (s *QuizService) GetDetail(ctx context.Context, id uuid.UUID) (*model.QuizDetail, error) {
	quiz, err := s.quizzes.GetByID(ctx, id)
	if err != nil {
		return nil, mapNoRows(err)
	}

	questions, err := s.questions.ListByQuiz(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &model.QuizDetail{
		ID:          quiz.ID,
		Name:        quiz.Name,
		Description: quiz.Description,
		Questions:   make([]model.QuizQuestionDetail, len(questions)),
	}
	for i, q := range questions {
		options := make([]model.QuizOptionDetail, len(q.Options))
		for j, o := range q.Options {
			options[j] = model.QuizOptionDetail{ID: o.ID, Value: o.Value}
		}
		detail.Questions[i] = model.QuizQuestionDetail{
			ID:          q.ID,
			Description: q.Description,
			Type:        q.Type,
			Success:     q.Success,
			Fail:        q.Fail,
			Options:     options,
		}
	}
	return detail, nil
}

// GetSummary retrieves the aggregate row for one quiz, read-through the
// Redis cache maintained by the stats worker.
func (s *QuizService) GetSummary(ctx context.Context, id uuid.UUID) (*model.QuizSummary, error) {
	if s.rdb != nil {
		key := config.CacheKey.QuizSummaryKey(id.String())
		if data, err := s.rdb.Get(ctx, key).Bytes(); err == nil {
			var cached model.QuizSummary
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	summary, err := s.quizzes.GetSummary(ctx, id)
	if err != nil {
		return nil, mapNoRows(err)
	}

	if s.rdb != nil {
		if raw, err := json.Marshal(summary); err == nil {
			key := config.CacheKey.QuizSummaryKey(id.String())
			if err := s.rdb.Set(ctx, key, raw, s.cacheTTL).Err(); err != nil {
				s.log.Warn().Err(err).Stringer("quiz", id).Msg("summary cache set failed")
			}
		}
	}
	return summary, nil
}
