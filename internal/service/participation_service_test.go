package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/quizdeck/quiz-backend/internal/model"
	"github.com/rs/zerolog"
)

// ─── Fakes ─────────────────────────────────────────────────────────────

type fakeParticipationStore struct {
	question *model.Question
	getErr   error
	incErr   error

	incCalled  bool
	incSuccess int64
	incFail    int64
	order      *[]string
}

func (f *fakeParticipationStore) GetByQuiz(ctx context.Context, id, quizID uuid.UUID) (*model.Question, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.question, nil
}

func (f *fakeParticipationStore) IncrementStats(ctx context.Context, id uuid.UUID, success, fail int64) error {
	f.incCalled = true
	f.incSuccess = success
	f.incFail = fail
	if f.order != nil {
		*f.order = append(*f.order, "question")
	}
	return f.incErr
}

type fakeAccountStats struct {
	called  bool
	account int
	success int64
	fail    int64
	err     error
	order   *[]string
}

func (f *fakeAccountStats) IncrementStats(ctx context.Context, id int, success, fail int64) error {
	f.called = true
	f.account = id
	f.success = success
	f.fail = fail
	if f.order != nil {
		*f.order = append(*f.order, "account")
	}
	return f.err
}

type fakeNotifier struct {
	events []model.QuizStatsEvent
}

func (f *fakeNotifier) QuizStatsChanged(ctx context.Context, event model.QuizStatsEvent) {
	f.events = append(f.events, event)
}

func newTestQuestion(t *testing.T, valid, invalid int) *model.Question {
	t.Helper()
	q := &model.Question{
		ID:     uuid.New(),
		QuizID: uuid.New(),
		Type:   model.QuestionTypeMultiple,
	}
	for i := 0; i < valid; i++ {
		q.Options = append(q.Options, model.Option{ID: uuid.New(), Value: "v", Valid: true})
	}
	for i := 0; i < invalid; i++ {
		q.Options = append(q.Options, model.Option{ID: uuid.New(), Value: "x", Valid: false})
	}
	return q
}

// ─── Scoring ───────────────────────────────────────────────────────────

func TestScoreSubmissionAllCorrect(t *testing.T) {
	q := newTestQuestion(t, 2, 2)
	responses := []string{q.Options[0].ID.String(), q.Options[1].ID.String()}

	got := scoreSubmission(q.Options, responses)
	if got.Success != 2 || got.Fail != 0 {
		t.Fatalf("got success=%d fail=%d, want 2/0", got.Success, got.Fail)
	}
}

func TestScoreSubmissionAllWrong(t *testing.T) {
	q := newTestQuestion(t, 2, 1)
	responses := []string{q.Options[2].ID.String(), uuid.New().String()}

	// Two valid options missed plus two submissions that matched nothing.
	got := scoreSubmission(q.Options, responses)
	if got.Success != 0 || got.Fail != 4 {
		t.Fatalf("got success=%d fail=%d, want 0/4", got.Success, got.Fail)
	}
}

func TestScoreSubmissionPartial(t *testing.T) {
	q := newTestQuestion(t, 3, 1)
	responses := []string{q.Options[0].ID.String(), q.Options[3].ID.String()}

	// One hit, two valid options missed, one miss.
	got := scoreSubmission(q.Options, responses)
	if got.Success != 1 || got.Fail != 3 {
		t.Fatalf("got success=%d fail=%d, want 1/3", got.Success, got.Fail)
	}
}

func TestScoreSubmissionEmptyResponses(t *testing.T) {
	q := newTestQuestion(t, 2, 2)

	got := scoreSubmission(q.Options, nil)
	if got.Success != 0 || got.Fail != 2 {
		t.Fatalf("got success=%d fail=%d, want 0/2", got.Success, got.Fail)
	}
}

func TestScoreSubmissionDuplicatesCountEachTime(t *testing.T) {
	q := newTestQuestion(t, 1, 1)
	id := q.Options[0].ID.String()

	// Duplicate submissions are not collapsed; found exceeds matches and
	// the fail term goes negative.
	got := scoreSubmission(q.Options, []string{id, id})
	if got.Success != 2 || got.Fail != -1 {
		t.Fatalf("got success=%d fail=%d, want 2/-1", got.Success, got.Fail)
	}
}

func TestScoreSubmissionUnknownIdentifiersAreMisses(t *testing.T) {
	q := newTestQuestion(t, 1, 1)

	// Identifiers that belong to no option at all are charged as misses,
	// same as a wrong option.
	got := scoreSubmission(q.Options, []string{"not-even-a-uuid"})
	if got.Success != 0 || got.Fail != 2 {
		t.Fatalf("got success=%d fail=%d, want 0/2", got.Success, got.Fail)
	}
}

func TestScoreSubmissionDoesNotMutateOptions(t *testing.T) {
	q := newTestQuestion(t, 2, 2)
	before := make([]model.Option, len(q.Options))
	copy(before, q.Options)

	scoreSubmission(q.Options, []string{q.Options[0].ID.String()})

	for i := range before {
		if q.Options[i] != before[i] {
			t.Fatalf("option %d mutated: %+v != %+v", i, q.Options[i], before[i])
		}
	}
}

// ─── Participate ───────────────────────────────────────────────────────

func TestParticipateAppliesQuestionIncrement(t *testing.T) {
	q := newTestQuestion(t, 2, 2)
	store := &fakeParticipationStore{question: q}
	accounts := &fakeAccountStats{}
	notifier := &fakeNotifier{}
	svc := NewParticipationService(store, accounts, notifier, zerolog.Nop())

	req := model.ParticipationRequest{
		Question:  q.ID.String(),
		Responses: []string{q.Options[0].ID.String()},
	}
	result, err := svc.Participate(context.Background(), q.QuizID, nil, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Success != 1 || result.Fail != 1 {
		t.Fatalf("got success=%d fail=%d, want 1/1", result.Success, result.Fail)
	}
	if !store.incCalled || store.incSuccess != 1 || store.incFail != 1 {
		t.Fatalf("question increment: called=%v success=%d fail=%d", store.incCalled, store.incSuccess, store.incFail)
	}
	if accounts.called {
		t.Fatal("account increment applied for anonymous participation")
	}
	if len(result.Options) != len(q.Options) {
		t.Fatalf("result options: got %d, want %d", len(result.Options), len(q.Options))
	}
	if len(notifier.events) != 1 {
		t.Fatalf("notifier events: got %d, want 1", len(notifier.events))
	}
	if notifier.events[0].QuestionID != q.ID {
		t.Fatalf("event question: got %s, want %s", notifier.events[0].QuestionID, q.ID)
	}
}

func TestParticipateAuthenticatedUpdatesAccount(t *testing.T) {
	q := newTestQuestion(t, 1, 1)
	var order []string
	store := &fakeParticipationStore{question: q, order: &order}
	accounts := &fakeAccountStats{order: &order}
	svc := NewParticipationService(store, accounts, &fakeNotifier{}, zerolog.Nop())

	accountID := 42
	req := model.ParticipationRequest{
		Question:  q.ID.String(),
		Responses: []string{q.Options[0].ID.String()},
	}
	if _, err := svc.Participate(context.Background(), q.QuizID, &accountID, req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !accounts.called || accounts.account != 42 {
		t.Fatalf("account increment: called=%v account=%d", accounts.called, accounts.account)
	}
	if accounts.success != 1 || accounts.fail != 0 {
		t.Fatalf("account deltas: success=%d fail=%d, want 1/0", accounts.success, accounts.fail)
	}
	if len(order) != 2 || order[0] != "question" || order[1] != "account" {
		t.Fatalf("increment order: %v, want [question account]", order)
	}
}

func TestParticipateIncrementFailureStillReturnsResult(t *testing.T) {
	q := newTestQuestion(t, 1, 1)
	store := &fakeParticipationStore{question: q, incErr: errors.New("db down")}
	accounts := &fakeAccountStats{err: errors.New("db down")}
	svc := NewParticipationService(store, accounts, &fakeNotifier{}, zerolog.Nop())

	accountID := 7
	req := model.ParticipationRequest{
		Question:  q.ID.String(),
		Responses: []string{q.Options[0].ID.String()},
	}
	result, err := svc.Participate(context.Background(), q.QuizID, &accountID, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Success != 1 || result.Fail != 0 {
		t.Fatalf("got success=%d fail=%d, want 1/0", result.Success, result.Fail)
	}
}

func TestParticipateUnknownQuestion(t *testing.T) {
	store := &fakeParticipationStore{getErr: pgx.ErrNoRows}
	svc := NewParticipationService(store, &fakeAccountStats{}, &fakeNotifier{}, zerolog.Nop())

	req := model.ParticipationRequest{Question: uuid.New().String(), Responses: []string{"x"}}
	if _, err := svc.Participate(context.Background(), uuid.New(), nil, req); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestParticipateMalformedQuestionID(t *testing.T) {
	svc := NewParticipationService(&fakeParticipationStore{}, &fakeAccountStats{}, &fakeNotifier{}, zerolog.Nop())

	req := model.ParticipationRequest{Question: "nope", Responses: []string{"x"}}
	if _, err := svc.Participate(context.Background(), uuid.New(), nil, req); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}
