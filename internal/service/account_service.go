package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/quizdeck/quiz-backend/internal/model"
	"github.com/quizdeck/quiz-backend/internal/repository"
)

// ErrEmailTaken is returned when registering with an already-used email.
var ErrEmailTaken = errors.New("email already registered")

// AccountService handles account registration, login, and profile logic.
type AccountService struct {
	accountRepo *repository.AccountRepository
	auth        *AuthService
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo *repository.AccountRepository, auth *AuthService) *AccountService {
	return &AccountService{accountRepo: accountRepo, auth: auth}
}

// Register creates a new account. Password hashing is an explicit step
// here, not a persistence hook.
func (s *AccountService) Register(ctx context.Context, req model.RegisterRequest) (*model.Account, error) {
	if existing, err := s.accountRepo.GetByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	account := &model.Account{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// Login verifies credentials and issues a bearer token.
func (s *AccountService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	account, err := s.accountRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.auth.CheckPassword(account.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.auth.GenerateToken(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		UID:   account.ID,
		Name:  account.Name,
		About: account.About,
		Email: account.Email,
		Token: token,
	}, nil
}

// Logout drops the account's active session.
func (s *AccountService) Logout(ctx context.Context, accountID int) error {
	return s.auth.DropSession(ctx, accountID)
}

// Get retrieves an account by identifier.
func (s *AccountService) Get(ctx context.Context, accountID int) (*model.Account, error) {
	return s.accountRepo.GetByID(ctx, accountID)
}

// UpdateProfile updates an account's name and about fields.
func (s *AccountService) UpdateProfile(ctx context.Context, accountID int, req model.UpdateProfileRequest) error {
	return s.accountRepo.UpdateProfile(ctx, accountID, req.Name, req.About)
}
