package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/quizdeck/quiz-backend/internal/middleware"
	"github.com/quizdeck/quiz-backend/internal/model"
	"github.com/quizdeck/quiz-backend/internal/response"
	"github.com/quizdeck/quiz-backend/internal/service"
	"github.com/quizdeck/quiz-backend/internal/validator"
)

// QuizHandler handles quiz management, aggregate views, and participation.
type QuizHandler struct {
	quizService          *service.QuizService
	participationService *service.ParticipationService
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(quizService *service.QuizService, participationService *service.ParticipationService) *QuizHandler {
	return &QuizHandler{quizService: quizService, participationService: participationService}
}

// CreateQuiz godoc
// POST /v1/quiz
func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, response.ErrAuthRequired)
		return
	}

	var req model.CreateQuizRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, response.ErrValidation, fields)
		return
	}

	quiz, err := h.quizService.Create(c.Request.Context(), claims.AccountID, req)
	if err != nil {
		failService(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"id": quiz.ID})
}

// UpdateQuiz godoc
// PUT /v1/quiz/:id
func (h *QuizHandler) UpdateQuiz(c *gin.Context) {
	claims := middleware.GetClaims(c)
	quizID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, response.ErrInvalidID)
		return
	}

	var req model.CreateQuizRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, response.ErrValidation, fields)
		return
	}

	if err := h.quizService.Update(c.Request.Context(), quizID, claims.AccountID, req); err != nil {
		failService(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": quizID})
}

// DeleteQuiz godoc
// DELETE /v1/quiz/:id
func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	claims := middleware.GetClaims(c)
	quizID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, response.ErrInvalidID)
		return
	}

	if err := h.quizService.Delete(c.Request.Context(), quizID, claims.AccountID); err != nil {
		failService(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": quizID})
}

// ListQuizzes godoc
// GET /v1/quiz
func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	page, perPage := paginationParams(c)

	summaries, pagination, err := h.quizService.ListSummaries(c.Request.Context(), nil, page, perPage)
	if err != nil {
		failService(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"quizzes": summaries}, pagination)
}

// ListMyQuizzes godoc
// GET /v1/quiz/my
func (h *QuizHandler) ListMyQuizzes(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, response.ErrAuthRequired)
		return
	}

	page, perPage := paginationParams(c)

	summaries, pagination, err := h.quizService.ListSummaries(c.Request.Context(), &claims.AccountID, page, perPage)
	if err != nil {
		failService(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"quizzes": summaries}, pagination)
}

// GetQuiz godoc
// GET /v1/quiz/:id
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	quizID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, response.ErrInvalidID)
		return
	}

	detail, err := h.quizService.GetDetail(c.Request.Context(), quizID)
	if err != nil {
		failService(c, err)
		return
	}

	response.Success(c, http.StatusOK, detail)
}

// GetQuizStats godoc
// GET /v1/quiz/:id/stats
func (h *QuizHandler) GetQuizStats(c *gin.Context) {
	quizID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, response.ErrInvalidID)
		return
	}

	summary, err := h.quizService.GetSummary(c.Request.Context(), quizID)
	if err != nil {
		failService(c, err)
		return
	}

	response.Success(c, http.StatusOK, summary)
}

// Participate godoc
// POST /v1/quiz/:id/participate
// Scores a submission. Works anonymously; authenticated participants
// also get their account tallies updated.
func (h *QuizHandler) Participate(c *gin.Context) {
	quizID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, response.ErrInvalidID)
		return
	}

	var req model.ParticipationRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, response.ErrValidation, fields)
		return
	}

	var accountID *int
	if claims := middleware.GetClaims(c); claims != nil {
		accountID = &claims.AccountID
	}

	result, err := h.participationService.Participate(c.Request.Context(), quizID, accountID, req)
	if err != nil {
		failService(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

func paginationParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))
	return page, perPage
}
