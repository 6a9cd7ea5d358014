package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quizdeck/quiz-backend/internal/model"
)

// QuizRepository handles quiz data access.
type QuizRepository struct {
	pool *pgxpool.Pool
}

// NewQuizRepository creates a new QuizRepository.
func NewQuizRepository(pool *pgxpool.Pool) *QuizRepository {
	return &QuizRepository{pool: pool}
}

// Create inserts a new quiz.
func (r *QuizRepository) Create(ctx context.Context, q *model.Quiz) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO quizzes (owner_id, name, description, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		q.OwnerID, q.Name, q.Description, model.StatusEnabled,
	).Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt)
}

// GetByID retrieves a non-deleted quiz by its UUID.
func (r *QuizRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Quiz, error) {
	q := &model.Quiz{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, owner_id, name, description, status, created_at, updated_at
		 FROM quizzes WHERE id = $1 AND status = $2`, id, model.StatusEnabled,
	).Scan(&q.ID, &q.OwnerID, &q.Name, &q.Description, &q.Status, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return q, nil
}

// GetOwned retrieves a non-deleted quiz scoped to its owner.
func (r *QuizRepository) GetOwned(ctx context.Context, id uuid.UUID, ownerID int) (*model.Quiz, error) {
	q := &model.Quiz{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, owner_id, name, description, status, created_at, updated_at
		 FROM quizzes WHERE id = $1 AND owner_id = $2 AND status = $3`,
		id, ownerID, model.StatusEnabled,
	).Scan(&q.ID, &q.OwnerID, &q.Name, &q.Description, &q.Status, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return q, nil
}

// Update replaces a quiz's name and description, owner-scoped.
func (r *QuizRepository) Update(ctx context.Context, id uuid.UUID, ownerID int, name, description string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE quizzes SET name = $1, description = $2, updated_at = NOW()
		 WHERE id = $3 AND owner_id = $4 AND status = $5`,
		name, description, id, ownerID, model.StatusEnabled,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// SoftDelete marks a quiz as deleted, owner-scoped.
func (r *QuizRepository) SoftDelete(ctx context.Context, id uuid.UUID, ownerID int) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE quizzes SET status = $1, updated_at = NOW()
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

const quizSummarySelect = `
	SELECT z.id, z.name, z.description,
	       COUNT(q.id) AS count,
	       COALESCE(SUM(q.success), 0) AS success,
	       COALESCE(SUM(q.fail), 0) AS fail
	FROM quizzes z
	LEFT JOIN questions q ON q.quiz_id = z.id AND q.status = 'ENABLED'`

// ListSummaries retrieves the public aggregate quiz list, sorted by
// descending success, with pagination.
func (r *QuizRepository) ListSummaries(ctx context.Context, limit, offset int) ([]model.QuizSummary, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM quizzes WHERE status = $1`, model.StatusEnabled,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		quizSummarySelect+`
		WHERE z.status = $1
		GROUP BY z.id, z.name, z.description
		ORDER BY success DESC
		LIMIT $2 OFFSET $3`,
		model.StatusEnabled, limit, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	summaries, err := scanSummaries(rows)
	return summaries, total, err
}

// ListSummariesByOwner is ListSummaries restricted to one owner's quizzes.
func (r *QuizRepository) ListSummariesByOwner(ctx context.Context, ownerID, limit, offset int) ([]model.QuizSummary, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM quizzes WHERE status = $1 AND owner_id = $2`,
		model.StatusEnabled, ownerID,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		quizSummarySelect+`
		WHERE z.status = $1 AND z.owner_id = $2
		GROUP BY z.id, z.name, z.description
		ORDER BY success DESC
		LIMIT $3 OFFSET $4`,
		model.StatusEnabled, ownerID, limit, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	summaries, err := scanSummaries(rows)
	return summaries, total, err
}

// GetSummary retrieves the aggregate row for one quiz.
func (r *QuizRepository) GetSummary(ctx context.Context, id uuid.UUID) (*model.QuizSummary, error) {
	s := &model.QuizSummary{}
	err := r.pool.QueryRow(ctx,
		quizSummarySelect+`
		WHERE z.id = $1 AND z.status = $2
		GROUP BY z.id, z.name, z.description`,
		id, model.StatusEnabled,
	).Scan(&s.ID, &s.Name, &s.Description, &s.Count, &s.Success, &s.Fail)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func scanSummaries(rows pgx.Rows) ([]model.QuizSummary, error) {
	var summaries []model.QuizSummary
	for rows.Next() {
		var s model.QuizSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Count, &s.Success, &s.Fail); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
