package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/quizdeck/quiz-backend/internal/model"
)

// ─── Fakes ─────────────────────────────────────────────────────────────

type fakeQuestionStore struct {
	question *model.Question
	getErr   error

	addedID      uuid.UUID
	addCalled    bool
	addErr       error
	updateCalled bool
	updateErr    error
	deleteCalled bool
	deleteErr    error
}

func (f *fakeQuestionStore) Create(ctx context.Context, q *model.Question) error { return nil }

func (f *fakeQuestionStore) GetOwned(ctx context.Context, id uuid.UUID, ownerID int) (*model.Question, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.question, nil
}

func (f *fakeQuestionStore) ListByQuiz(ctx context.Context, quizID uuid.UUID) ([]model.Question, error) {
	return nil, nil
}

func (f *fakeQuestionStore) UpdateDescription(ctx context.Context, id uuid.UUID, ownerID int, description string) error {
	return nil
}

func (f *fakeQuestionStore) SoftDelete(ctx context.Context, id uuid.UUID, ownerID int) error {
	return nil
}

func (f *fakeQuestionStore) AddOption(ctx context.Context, questionID uuid.UUID, value string, valid bool) (uuid.UUID, error) {
	f.addCalled = true
	if f.addErr != nil {
		return uuid.Nil, f.addErr
	}
	f.addedID = uuid.New()
	return f.addedID, nil
}

func (f *fakeQuestionStore) UpdateOption(ctx context.Context, questionID, optionID uuid.UUID, value string, valid bool) error {
	f.updateCalled = true
	return f.updateErr
}

func (f *fakeQuestionStore) DeleteOption(ctx context.Context, questionID, optionID uuid.UUID) error {
	f.deleteCalled = true
	return f.deleteErr
}

type fakeQuizFetcher struct {
	quiz *model.Quiz
	err  error
}

func (f *fakeQuizFetcher) GetOwned(ctx context.Context, id uuid.UUID, ownerID int) (*model.Quiz, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.quiz, nil
}

func questionWithOptions(qt model.QuestionType, valids []bool) *model.Question {
	q := &model.Question{ID: uuid.New(), QuizID: uuid.New(), Type: qt}
	for _, v := range valids {
		q.Options = append(q.Options, model.Option{ID: uuid.New(), Value: "opt", Valid: v})
	}
	return q
}

// ─── AddOption ─────────────────────────────────────────────────────────

func TestAddOptionAtCeiling(t *testing.T) {
	valids := make([]bool, model.MaxOptions)
	store := &fakeQuestionStore{question: questionWithOptions(model.QuestionTypeMultiple, valids)}
	svc := NewQuestionService(store, &fakeQuizFetcher{})

	_, err := svc.AddOption(context.Background(), uuid.New(), 1, model.OptionRequest{Value: "extra"})
	if !errors.Is(err, ErrMaxOptions) {
		t.Fatalf("got %v, want ErrMaxOptions", err)
	}
	if store.addCalled {
		t.Fatal("store write reached after rejected mutation")
	}
}

func TestAddOptionSecondValidOnSimple(t *testing.T) {
	store := &fakeQuestionStore{question: questionWithOptions(model.QuestionTypeSimple, []bool{true, false})}
	svc := NewQuestionService(store, &fakeQuizFetcher{})

	_, err := svc.AddOption(context.Background(), uuid.New(), 1, model.OptionRequest{Value: "x", Valid: true})
	if !errors.Is(err, ErrMultipleValid) {
		t.Fatalf("got %v, want ErrMultipleValid", err)
	}
	if store.addCalled {
		t.Fatal("store write reached after rejected mutation")
	}
}

func TestAddOptionFirstValidOnSimple(t *testing.T) {
	store := &fakeQuestionStore{question: questionWithOptions(model.QuestionTypeSimple, []bool{false, false})}
	svc := NewQuestionService(store, &fakeQuizFetcher{})

	q, err := svc.AddOption(context.Background(), uuid.New(), 1, model.OptionRequest{Value: "x", Valid: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(q.Options) != 3 {
		t.Fatalf("got %d options, want 3", len(q.Options))
	}
	last := q.Options[2]
	if last.ID != store.addedID || !last.Valid {
		t.Fatalf("appended option %+v, want id=%s valid=true", last, store.addedID)
	}
}

func TestAddOptionSecondValidOnMultiple(t *testing.T) {
	store := &fakeQuestionStore{question: questionWithOptions(model.QuestionTypeMultiple, []bool{true, false})}
	svc := NewQuestionService(store, &fakeQuizFetcher{})

	if _, err := svc.AddOption(context.Background(), uuid.New(), 1, model.OptionRequest{Value: "x", Valid: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAddOptionUnknownQuestion(t *testing.T) {
	store := &fakeQuestionStore{getErr: pgx.ErrNoRows}
	svc := NewQuestionService(store, &fakeQuizFetcher{})

	if _, err := svc.AddOption(context.Background(), uuid.New(), 1, model.OptionRequest{Value: "x"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

// ─── UpdateOption ──────────────────────────────────────────────────────

func TestUpdateOptionMovingValidFlagOnSimple(t *testing.T) {
	question := questionWithOptions(model.QuestionTypeSimple, []bool{true, false})
	store := &fakeQuestionStore{question: question}
	svc := NewQuestionService(store, &fakeQuizFetcher{})

	_, err := svc.UpdateOption(context.Background(), question.ID, question.Options[1].ID, 1, model.OptionRequest{Value: "x", Valid: true})
	if !errors.Is(err, ErrMultipleValid) {
		t.Fatalf("got %v, want ErrMultipleValid", err)
	}
	if store.updateCalled {
		t.Fatal("store write reached after rejected mutation")
	}
}

func TestUpdateOptionReflaggingCurrentValid(t *testing.T) {
	question := questionWithOptions(model.QuestionTypeSimple, []bool{true, false})
	store := &fakeQuestionStore{question: question}
	svc := NewQuestionService(store, &fakeQuizFetcher{})

	q, err := svc.UpdateOption(context.Background(), question.ID, question.Options[0].ID, 1, model.OptionRequest{Value: "renamed", Valid: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Options[0].Value != "renamed" || !q.Options[0].Valid {
		t.Fatalf("option not updated in place: %+v", q.Options[0])
	}
}

func TestUpdateOptionUnknownOption(t *testing.T) {
	question := questionWithOptions(model.QuestionTypeMultiple, []bool{false, false})
	store := &fakeQuestionStore{question: question, updateErr: pgx.ErrNoRows}
	svc := NewQuestionService(store, &fakeQuizFetcher{})

	_, err := svc.UpdateOption(context.Background(), question.ID, uuid.New(), 1, model.OptionRequest{Value: "x"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

// ─── DeleteOption ──────────────────────────────────────────────────────

func TestDeleteOptionAtFloor(t *testing.T) {
	question := questionWithOptions(model.QuestionTypeMultiple, []bool{true, false})
	store := &fakeQuestionStore{question: question}
	svc := NewQuestionService(store, &fakeQuizFetcher{})

	_, err := svc.DeleteOption(context.Background(), question.ID, question.Options[0].ID, 1)
	if !errors.Is(err, ErrMinOptions) {
		t.Fatalf("got %v, want ErrMinOptions", err)
	}
	if store.deleteCalled {
		t.Fatal("store write reached after rejected mutation")
	}
}

func TestDeleteOptionAboveFloor(t *testing.T) {
	question := questionWithOptions(model.QuestionTypeMultiple, []bool{true, false, false})
	store := &fakeQuestionStore{question: question}
	svc := NewQuestionService(store, &fakeQuizFetcher{})

	target := question.Options[1].ID
	q, err := svc.DeleteOption(context.Background(), question.ID, target, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(q.Options) != 2 {
		t.Fatalf("got %d options, want 2", len(q.Options))
	}
	for _, o := range q.Options {
		if o.ID == target {
			t.Fatal("deleted option still present")
		}
	}
}

func TestDeleteOptionUnknownOption(t *testing.T) {
	question := questionWithOptions(model.QuestionTypeMultiple, []bool{true, false, false})
	store := &fakeQuestionStore{question: question, deleteErr: pgx.ErrNoRows}
	svc := NewQuestionService(store, &fakeQuizFetcher{})

	if _, err := svc.DeleteOption(context.Background(), question.ID, uuid.New(), 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

// ─── Create ────────────────────────────────────────────────────────────

func TestCreateQuestionUnknownQuiz(t *testing.T) {
	svc := NewQuestionService(&fakeQuestionStore{}, &fakeQuizFetcher{err: pgx.ErrNoRows})

	req := model.CreateQuestionRequest{
		Description: "q",
		Type:        int(model.QuestionTypeSimple),
		Options:     []model.OptionRequest{{Value: "a"}, {Value: "b", Valid: true}},
	}
	if _, err := svc.Create(context.Background(), uuid.New(), 1, req); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}
