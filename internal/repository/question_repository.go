package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quizdeck/quiz-backend/internal/model"
)

// QuestionRepository handles question and option data access.
type QuestionRepository struct {
	pool *pgxpool.Pool
}

// NewQuestionRepository creates a new QuestionRepository.
func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

const questionSelect = `
	SELECT id, quiz_id, owner_id, description, type, success, fail, status, created_at, updated_at
	FROM questions`

// Create inserts a question together with its initial option set in one
// transaction.
func (r *QuestionRepository) Create(ctx context.Context, q *model.Question) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO questions (quiz_id, owner_id, description, type, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		q.QuizID, q.OwnerID, q.Description, q.Type, model.StatusEnabled,
	).Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return err
	}

	for i := range q.Options {
		err = tx.QueryRow(ctx,
			`INSERT INTO question_options (question_id, value, valid)
			 VALUES ($1, $2, $3)
			 RETURNING id`,
			q.ID, q.Options[i].Value, q.Options[i].Valid,
		).Scan(&q.Options[i].ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// GetOwned retrieves a non-deleted question with its options, scoped to
// the authoring owner.
func (r *QuestionRepository) GetOwned(ctx context.Context, id uuid.UUID, ownerID int) (*model.Question, error) {
	q := &model.Question{}
	err := r.pool.QueryRow(ctx,
		questionSelect+` WHERE id = $1 AND owner_id = $2 AND status = $3`,
		id, ownerID, model.StatusEnabled,
	).Scan(&q.ID, &q.QuizID, &q.OwnerID, &q.Description, &q.Type,
		&q.Success, &q.Fail, &q.Status, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if q.Options, err = r.loadOptions(ctx, q.ID); err != nil {
		return nil, err
	}
	return q, nil
}

// GetByQuiz retrieves a non-deleted question with its options, scoped to
// its quiz. Used by the participation path, which is not owner-bound.
func (r *QuestionRepository) GetByQuiz(ctx context.Context, id, quizID uuid.UUID) (*model.Question, error) {
	q := &model.Question{}
	err := r.pool.QueryRow(ctx,
		questionSelect+` WHERE id = $1 AND quiz_id = $2 AND status = $3`,
		id, quizID, model.StatusEnabled,
	).Scan(&q.ID, &q.QuizID, &q.OwnerID, &q.Description, &q.Type,
		&q.Success, &q.Fail, &q.Status, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if q.Options, err = r.loadOptions(ctx, q.ID); err != nil {
		return nil, err
	}
	return q, nil
}

// ListByQuiz retrieves all non-deleted questions of a quiz with their
// options, ordered by creation time.
func (r *QuestionRepository) ListByQuiz(ctx context.Context, quizID uuid.UUID) ([]model.Question, error) {
	rows, err := r.pool.Query(ctx,
		questionSelect+` WHERE quiz_id = $1 AND status = $2 ORDER BY created_at`,
		quizID, model.StatusEnabled,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []model.Question
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var q model.Question
		if err := rows.Scan(&q.ID, &q.QuizID, &q.OwnerID, &q.Description, &q.Type,
			&q.Success, &q.Fail, &q.Status, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, err
		}
		q.Options = []model.Option{}
		index[q.ID] = len(questions)
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return questions, nil
	}

	optRows, err := r.pool.Query(ctx,
		`SELECT o.id, o.question_id, o.value, o.valid
		 FROM question_options o
		 JOIN questions q ON q.id = o.question_id
		 WHERE q.quiz_id = $1 AND q.status = $2
		 ORDER BY o.created_at`,
		quizID, model.StatusEnabled,
	)
	if err != nil {
		return nil, err
	}
	defer optRows.Close()

	for optRows.Next() {
		var o model.Option
		var questionID uuid.UUID
		if err := optRows.Scan(&o.ID, &questionID, &o.Value, &o.Valid); err != nil {
			return nil, err
		}
		if i, ok := index[questionID]; ok {
			questions[i].Options = append(questions[i].Options, o)
		}
	}
	return questions, optRows.Err()
}

// UpdateDescription replaces a question's description, owner-scoped.
func (r *QuestionRepository) UpdateDescription(ctx context.Context, id uuid.UUID, ownerID int, description string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE questions SET description = $1, updated_at = NOW()
		 WHERE id = $2 AND owner_id = $3 AND status = $4`,
		description, id, ownerID, model.StatusEnabled,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// SoftDelete marks a question as deleted, owner-scoped.
func (r *QuestionRepository) SoftDelete(ctx context.Context, id uuid.UUID, ownerID int) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE questions SET status = $1, updated_at = NOW()
		 WHERE id = $2 AND owner_id = $3 AND status = $4`,
		model.StatusDeleted, id, ownerID, model.StatusEnabled,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// SoftDeleteByQuiz bulk soft-deletes every question belonging to a quiz.
// Used by the quiz delete cascade.
func (r *QuestionRepository) SoftDeleteByQuiz(ctx context.Context, quizID uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE questions SET status = $1, updated_at = NOW()
		 WHERE quiz_id = $2 AND status = $3`,
		model.StatusDeleted, quizID, model.StatusEnabled,
	)
	return err
}

// AddOption appends a new option to a question.
func (r *QuestionRepository) AddOption(ctx context.Context, questionID uuid.UUID, value string, valid bool) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx,
		`INSERT INTO question_options (question_id, value, valid)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		questionID, value, valid,
	).Scan(&id)
	return id, err
}

// UpdateOption replaces an option's value and validity, identity-scoped to
// its question. Last writer wins under concurrent mutations.
func (r *QuestionRepository) UpdateOption(ctx context.Context, questionID, optionID uuid.UUID, value string, valid bool) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE question_options SET value = $1, valid = $2
		 WHERE id = $3 AND question_id = $4`,
		value, valid, optionID, questionID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// DeleteOption removes an option by identity.
func (r *QuestionRepository) DeleteOption(ctx context.Context, questionID, optionID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM question_options WHERE id = $1 AND question_id = $2`,
		optionID, questionID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// IncrementStats atomically adds the scored deltas to the question's
// cumulative counters.
func (r *QuestionRepository) IncrementStats(ctx context.Context, id uuid.UUID, success, fail int64) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE questions SET success = success + $1, fail = fail + $2, updated_at = NOW()
		 WHERE id = $3`,
		success, fail, id,
	)
	return err
}

func (r *QuestionRepository) loadOptions(ctx context.Context, questionID uuid.UUID) ([]model.Option, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, value, valid FROM question_options
		 WHERE question_id = $1 ORDER BY created_at`,
		questionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	options := []model.Option{}
	for rows.Next() {
		var o model.Option
		if err := rows.Scan(&o.ID, &o.Value, &o.Valid); err != nil {
			return nil, err
		}
		options = append(options, o)
	}
	return options, rows.Err()
}
