package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/quizdeck/quiz-backend/internal/model"
)

// Invariant errors surfaced by option mutations. Raised before any write,
// so a rejected mutation leaves the option set untouched.
var (
	ErrMinOptions    = errors.New("question holds the minimum number of options")
	ErrMaxOptions    = errors.New("question holds the maximum number of options")
	ErrMultipleValid = errors.New("multiple valid options not supported for simple questions")
	ErrNotFound      = errors.New("object not found")
)

// QuestionStore is the persistence surface the question service needs.
// *repository.QuestionRepository satisfies it; tests substitute fakes.
type QuestionStore interface {
	Create(ctx context.Context, q *model.Question) error
	GetOwned(ctx context.Context, id uuid.UUID, ownerID int) (*model.Question, error)
	ListByQuiz(ctx context.Context, quizID uuid.UUID) ([]model.Question, error)
	UpdateDescription(ctx context.Context, id uuid.UUID, ownerID int, description string) error
	SoftDelete(ctx context.Context, id uuid.UUID, ownerID int) error
	AddOption(ctx context.Context, questionID uuid.UUID, value string, valid bool) (uuid.UUID, error)
	UpdateOption(ctx context.Context, questionID, optionID uuid.UUID, value string, valid bool) error
	DeleteOption(ctx context.Context, questionID, optionID uuid.UUID) error
}

// QuizFetcher resolves owner-scoped quizzes for question creation.
type QuizFetcher interface {
	GetOwned(ctx context.Context, id uuid.UUID, ownerID int) (*model.Quiz, error)
}

// QuestionService guards the structural integrity of question option sets
// through every authoring mutation.
type QuestionService struct {
	questions QuestionStore
	quizzes   QuizFetcher
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(questions QuestionStore, quizzes QuizFetcher) *QuestionService {
	return &QuestionService{questions: questions, quizzes: quizzes}
}

// Create adds a question to a quiz owned by the caller. The initial option
// set arrives pre-bounded by request validation.
func (s *QuestionService) Create(ctx context.Context, quizID uuid.UUID, ownerID int, req model.CreateQuestionRequest) (*model.Question, error) {
	quiz, err := s.quizzes.GetOwned(ctx, quizID, ownerID)
	if err != nil {
		return nil, mapNoRows(err)
	}

	options := make([]model.Option, len(req.Options))
	for i, o := range req.Options {
		options[i] = model.Option{Value: o.Value, Valid: o.Valid}
	}

	question := &model.Question{
		QuizID:      quiz.ID,
		OwnerID:     ownerID,
		Description: req.Description,
		Type:        model.QuestionType(req.Type),
		Options:     options,
	}
	if err := s.questions.Create(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

// UpdateDescription replaces a question's description.
func (s *QuestionService) UpdateDescription(ctx context.Context, id uuid.UUID, ownerID int, description string) error {
	return mapNoRows(s.questions.UpdateDescription(ctx, id, ownerID, description))
}

// Delete soft-deletes a question.
func (s *QuestionService) Delete(ctx context.Context, id uuid.UUID, ownerID int) error {
	return mapNoRows(s.questions.SoftDelete(ctx, id, ownerID))
}

// ListByQuiz retrieves all questions of a quiz owned by the caller.
func (s *QuestionService) ListByQuiz(ctx context.Context, quizID uuid.UUID, ownerID int) ([]model.Question, error) {
	if _, err := s.quizzes.GetOwned(ctx, quizID, ownerID); err != nil {
		return nil, mapNoRows(err)
	}
	return s.questions.ListByQuiz(ctx, quizID)
}

// AddOption appends an option to a question after checking the ceiling and
// the single-valid-option rule for simple questions.
func (s *QuestionService) AddOption(ctx context.Context, questionID uuid.UUID, ownerID int, req model.OptionRequest) (*model.Question, error) {
	question, err := s.questions.GetOwned(ctx, questionID, ownerID)
	if err != nil {
		return nil, mapNoRows(err)
	}

	if len(question.Options) >= model.MaxOptions {
		return nil, ErrMaxOptions
	}

	if question.Type == model.QuestionTypeSimple && req.Valid {
		if validOption(question.Options) != nil {
			return nil, ErrMultipleValid
		}
	}

	id, err := s.questions.AddOption(ctx, question.ID, req.Value, req.Valid)
	if err != nil {
		return nil, err
	}
	question.Options = append(question.Options, model.Option{ID: id, Value: req.Value, Valid: req.Valid})
	return question, nil
}

// UpdateOption replaces an option's value and validity. For simple
// questions, marking an option valid is rejected while a different option
// holds the flag; re-flagging the currently valid option is permitted.
func (s *QuestionService) UpdateOption(ctx context.Context, questionID, optionID uuid.UUID, ownerID int, req model.OptionRequest) (*model.Question, error) {
	question, err := s.questions.GetOwned(ctx, questionID, ownerID)
	if err != nil {
		return nil, mapNoRows(err)
	}

	if question.Type == model.QuestionTypeSimple && req.Valid {
		if valid := validOption(question.Options); valid != nil && valid.ID != optionID {
			return nil, ErrMultipleValid
		}
	}

	if err := s.questions.UpdateOption(ctx, question.ID, optionID, req.Value, req.Valid); err != nil {
		return nil, mapNoRows(err)
	}

	for i := range question.Options {
		if question.Options[i].ID == optionID {
			question.Options[i].Value = req.Value
			question.Options[i].Valid = req.Valid
			break
		}
	}
	return question, nil
}

// DeleteOption removes an option unless the question is already at the
// floor of 2 options.
func (s *QuestionService) DeleteOption(ctx context.Context, questionID, optionID uuid.UUID, ownerID int) (*model.Question, error) {
	question, err := s.questions.GetOwned(ctx, questionID, ownerID)
	if err != nil {
		return nil, mapNoRows(err)
	}

	if len(question.Options) <= model.MinOptions {
		return nil, ErrMinOptions
	}

	if err := s.questions.DeleteOption(ctx, question.ID, optionID); err != nil {
		return nil, mapNoRows(err)
	}

	kept := question.Options[:0]
	for _, o := range question.Options {
		if o.ID != optionID {
			kept = append(kept, o)
		}
	}
	question.Options = kept
	return question, nil
}

// validOption returns the first option flagged valid, or nil.
func validOption(options []model.Option) *model.Option {
	for i := range options {
		if options[i].Valid {
			return &options[i]
		}
	}
	return nil
}

func mapNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
