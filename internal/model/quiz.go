package model

import (
	"time"

	"github.com/google/uuid"
)

// EntityStatus enumerates the lifecycle states of quizzes and questions.
// Soft-deleted rows keep their data but are excluded from every read path.
type EntityStatus string

const (
	StatusEnabled EntityStatus = "ENABLED"
	StatusDeleted EntityStatus = "DELETED"
)

// Quiz represents a quiz entity owned by an account.
type Quiz struct {
	ID          uuid.UUID    `json:"id"`
	OwnerID     int          `json:"owner_id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Status      EntityStatus `json:"-"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// CreateQuizRequest is the payload for creating or updating a quiz.
type CreateQuizRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"omitempty,max=2000"`
}

// QuizSummary is the aggregate list view: one quiz joined with the
// tally sums of its non-deleted questions.
type QuizSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Count       int       `json:"count"`
	Success     int64     `json:"success"`
	Fail        int64     `json:"fail"`
}

// QuizDetail is the public detail view of a quiz with its questions.
// Option validity flags are intentionally absent.
type QuizDetail struct {
	ID          uuid.UUID            `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Questions   []QuizQuestionDetail `json:"questions"`
}

// QuizQuestionDetail is a question as exposed inside a quiz detail view.
type QuizQuestionDetail struct {
	ID          uuid.UUID          `json:"id"`
	Description string             `json:"description"`
	Type        QuestionType       `json:"type"`
	Success     int64              `json:"success"`
	Fail        int64              `json:"fail"`
	Options     []QuizOptionDetail `json:"options"`
}

// QuizOptionDetail is an option stripped of its validity flag.
type QuizOptionDetail struct {
	ID    uuid.UUID `json:"id"`
	Value string    `json:"value"`
}
