package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/quizdeck/quiz-backend/internal/middleware"
	"github.com/quizdeck/quiz-backend/internal/model"
	"github.com/quizdeck/quiz-backend/internal/response"
	"github.com/quizdeck/quiz-backend/internal/service"
	"github.com/quizdeck/quiz-backend/internal/validator"
)

// QuestionHandler handles question authoring endpoints, including the
// invariant-checked option mutations.
type QuestionHandler struct {
	questionService *service.QuestionService
}

// NewQuestionHandler creates a new QuestionHandler.
func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// CreateQuestion godoc
// POST /v1/question/:id (quiz id)
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	claims := middleware.GetClaims(c)
	quizID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, response.ErrInvalidID)
		return
	}

	var req model.CreateQuestionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, response.ErrValidation, fields)
		return
	}

	question, err := h.questionService.Create(c.Request.Context(), quizID, claims.AccountID, req)
	if err != nil {
		failService(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"id": question.ID})
}

// UpdateQuestion godoc
// PUT /v1/question/:id
func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	claims := middleware.GetClaims(c)
	questionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, response.ErrInvalidID)
		return
	}

	var req model.UpdateQuestionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, response.ErrValidation, fields)
		return
	}

	if err := h.questionService.UpdateDescription(c.Request.Context(), questionID, claims.AccountID, req.Description); err != nil {
		failService(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": questionID})
}

// DeleteQuestion godoc
// DELETE /v1/question/:id
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	claims := middleware.GetClaims(c)
	questionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, response.ErrInvalidID)
		return
	}

	if err := h.questionService.Delete(c.Request.Context(), questionID, claims.AccountID); err != nil {
		failService(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": questionID})
}

// ListQuestions godoc
// GET /v1/question/:id (quiz id)
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	claims := middleware.GetClaims(c)
	quizID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, response.ErrInvalidID)
		return
	}

	questions, err := h.questionService.ListByQuiz(c.Request.Context(), quizID, claims.AccountID)
	if err != nil {
		failService(c, err)
		return
	}

	if questions == nil {
		questions = []model.Question{}
	}

	response.Success(c, http.StatusOK, gin.H{"questions": questions})
}

// AddOption godoc
// POST /v1/question/:id/option
func (h *QuestionHandler) AddOption(c *gin.Context) {
	claims := middleware.GetClaims(c)
	questionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, response.ErrInvalidID)
		return
	}

	var req model.OptionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, response.ErrValidation, fields)
		return
	}

	question, err := h.questionService.AddOption(c.Request.Context(), questionID, claims.AccountID, req)
	if err != nil {
		failService(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": question.ID})
}

// UpdateOption godoc
// PUT /v1/question/:id/option/:option
func (h *QuestionHandler) UpdateOption(c *gin.Context) {
	claims := middleware.GetClaims(c)
	questionID, optionID, ok := optionParams(c)
	if !ok {
		return
	}

	var req model.OptionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, response.ErrValidation, fields)
		return
	}

	question, err := h.questionService.UpdateOption(c.Request.Context(), questionID, optionID, claims.AccountID, req)
	if err != nil {
		failService(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": question.ID})
}

// DeleteOption godoc
// DELETE /v1/question/:id/option/:option
func (h *QuestionHandler) DeleteOption(c *gin.Context) {
	claims := middleware.GetClaims(c)
	questionID, optionID, ok := optionParams(c)
	if !ok {
		return
	}

	question, err := h.questionService.DeleteOption(c.Request.Context(), questionID, optionID, claims.AccountID)
	if err != nil {
		failService(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": question.ID})
}

func optionParams(c *gin.Context) (questionID, optionID uuid.UUID, ok bool) {
	questionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, response.ErrInvalidID)
		return uuid.Nil, uuid.Nil, false
	}
	optionID, err = uuid.Parse(c.Param("option"))
	if err != nil {
		response.Fail(c, response.ErrInvalidID)
		return uuid.Nil, uuid.Nil, false
	}
	return questionID, optionID, true
}
