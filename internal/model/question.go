package model

import (
	"time"

	"github.com/google/uuid"
)

// QuestionType constrains how many options of a question may be valid.
type QuestionType int

const (
	// QuestionTypeSimple allows at most one valid option.
	QuestionTypeSimple QuestionType = 1
	// QuestionTypeMultiple allows any number of valid options.
	QuestionTypeMultiple QuestionType = 2
)

// Option set bounds enforced on every authoring mutation.
const (
	MinOptions = 2
	MaxOptions = 10
)

// Question represents a quiz question with its owned option set and
// cumulative participation tallies.
type Question struct {
	ID          uuid.UUID    `json:"id"`
	QuizID      uuid.UUID    `json:"quiz"`
	OwnerID     int          `json:"-"`
	Description string       `json:"description"`
	Type        QuestionType `json:"type"`
	Options     []Option     `json:"options"`
	Success     int64        `json:"success"`
	Fail        int64        `json:"fail"`
	Status      EntityStatus `json:"-"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// Option is a candidate answer. It exists only as part of its question.
type Option struct {
	ID    uuid.UUID `json:"id"`
	Value string    `json:"value"`
	Valid bool      `json:"valid"`
}

// OptionRequest is the payload for adding or updating a single option.
type OptionRequest struct {
	Value string `json:"value" binding:"required,min=1,max=1000"`
	Valid bool   `json:"valid"`
}

// CreateQuestionRequest is the payload for creating a question inside a quiz.
// The initial option set is bounded here, before the invariant checks that
// guard later per-option mutations.
type CreateQuestionRequest struct {
	Description string          `json:"description" binding:"required,min=1,max=2000"`
	Type        int             `json:"type" binding:"required,min=1,max=2"`
	Options     []OptionRequest `json:"options" binding:"required,min=2,max=10,dive"`
}

// UpdateQuestionRequest is the payload for updating a question's description.
type UpdateQuestionRequest struct {
	Description string `json:"description" binding:"required,min=1,max=2000"`
}
