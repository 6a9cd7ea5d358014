package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quizdeck/quiz-backend/internal/middleware"
	"github.com/quizdeck/quiz-backend/internal/model"
	"github.com/quizdeck/quiz-backend/internal/response"
	"github.com/quizdeck/quiz-backend/internal/service"
	"github.com/quizdeck/quiz-backend/internal/validator"
)

// AccountHandler handles account registration, login, and profile endpoints.
type AccountHandler struct {
	accountService *service.AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// Register godoc
// POST /v1/account/register
func (h *AccountHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, response.ErrValidation, fields)
		return
	}

	if _, err := h.accountService.Register(c.Request.Context(), req); err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			response.FailWithFields(c, response.ErrValidation, map[string]string{"email": "already registered"})
			return
		}
		failService(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"email": req.Email})
}

// Login godoc
// POST /v1/account/login
func (h *AccountHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, response.ErrValidation, fields)
		return
	}

	resp, err := h.accountService.Login(c.Request.Context(), req)
	if err != nil {
		failService(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Logout godoc
// DELETE /v1/account/logout
func (h *AccountHandler) Logout(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, response.ErrAuthRequired)
		return
	}

	if err := h.accountService.Logout(c.Request.Context(), claims.AccountID); err != nil {
		failService(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}

// GetProfile godoc
// GET /v1/account
func (h *AccountHandler) GetProfile(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, response.ErrAuthRequired)
		return
	}

	account, err := h.accountService.Get(c.Request.Context(), claims.AccountID)
	if err != nil {
		failService(c, err)
		return
	}

	response.Success(c, http.StatusOK, account)
}

// UpdateProfile godoc
// PUT /v1/account
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, response.ErrAuthRequired)
		return
	}

	var req model.UpdateProfileRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, response.ErrValidation, fields)
		return
	}

	if err := h.accountService.UpdateProfile(c.Request.Context(), claims.AccountID, req); err != nil {
		failService(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"uid": claims.AccountID})
}
