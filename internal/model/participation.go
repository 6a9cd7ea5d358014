package model

import (
	"time"

	"github.com/google/uuid"
)

// ParticipationRequest is a single submission of chosen option identifiers
// against one question of a quiz. It is consumed once and never persisted.
type ParticipationRequest struct {
	Question  string   `json:"question" binding:"required,uuid"`
	Responses []string `json:"responses" binding:"required,dive,max=64"`
}

// ParticipationResult is returned to the participant after scoring.
// The full option list (including validity flags) is revealed so the
// participant can see which answers were correct.
type ParticipationResult struct {
	ID      uuid.UUID `json:"id"`
	Success int       `json:"success"`
	Fail    int       `json:"fail"`
	Options []Option  `json:"options"`
}

// QuizStatsEvent is published on the quiz stats channel after a
// participation updates the tallies.
type QuizStatsEvent struct {
	QuizID     uuid.UUID `json:"quiz_id"`
	QuestionID uuid.UUID `json:"question_id"`
	Success    int       `json:"success"`
	Fail       int       `json:"fail"`
	At         time.Time `json:"at"`
}
