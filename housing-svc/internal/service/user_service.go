package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"housing-reviews/housing-svc/internal/domain"
	"housing-reviews/logger"

	"golang.org/x/crypto/bcrypt"
)

const (
	allowedEmailDomain = "@jhu.edu"
	minPasswordLength  = 8
)

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// equalizeLoginTiming burns one bcrypt compare at the default cost so unknown
// emails take as long as wrong passwords.
func equalizeLoginTiming(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("placeholder-password"), bcrypt.DefaultCost)
	})
	bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}

type RegisterInput struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Avatar    string `json:"avatar" validate:"omitempty,url"`
}

type UserService struct {
	repo   UserRepository
	tokens *TokenManager
	mailer Mailer
}

func NewUserService(repo UserRepository, tokens *TokenManager, mailer Mailer) *UserService {
	return &UserService{repo: repo, tokens: tokens, mailer: mailer}
}

func (s *UserService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	email := normalizeEmail(input.Email)
	if !strings.HasSuffix(email, allowedEmailDomain) {
		return nil, domain.ErrInvalidEmailDomain
	}
	if len(input.Password) < minPasswordLength {
		return nil, domain.ErrPasswordTooShort
	}

	if _, err := s.repo.GetUserByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	code, err := verificationCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification code: %w", err)
	}

	user := &domain.User{
		Email:            email,
		PasswordHash:     string(hash),
		VerificationCode: code,
		Profile: domain.Profile{
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Avatar:    input.Avatar,
		},
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	if s.mailer != nil {
		if err := s.mailer.SendVerificationCode(user.Email, user.FirstName, code); err != nil {
			logger.Warn(logger.EventMailFailure, "failed to send verification email", logger.Fields(
				"email", user.Email, "error", err.Error()))
		}
	}
	return user, nil
}

func (s *UserService) VerifyEmail(ctx context.Context, email, code string) error {
	user, err := s.repo.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return err
	}
	if user.IsEmailVerified {
		return nil
	}
	if code == "" || user.VerificationCode != code {
		return domain.ErrInvalidVerificationCode
	}
	return s.repo.MarkEmailVerified(ctx, user.ID)
}

func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.GetUserByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, domain.ErrNotFound) {
		equalizeLoginTiming(password)
		logger.Warn(logger.EventLoginFailure, "login for unknown email", logger.Fields("email", email))
		return "", domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Warn(logger.EventLoginFailure, "wrong password", logger.Fields("user_id", user.ID))
		return "", domain.ErrInvalidCredentials
	}
	if !user.IsEmailVerified {
		return "", domain.ErrEmailNotVerified
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", err
	}
	logger.Info(logger.EventLoginSuccess, "user logged in", logger.Fields("user_id", user.ID))
	return token, nil
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.GetUserByEmail(ctx, normalizeEmail(email))
}

func (s *UserService) UpdateProfile(ctx context.Context, callerID, userID int64, profile domain.Profile) (*domain.User, error) {
	if callerID != userID {
		return nil, domain.ErrNotOwner
	}
	return s.repo.UpdateProfile(ctx, userID, profile)
}

func (s *UserService) Delete(ctx context.Context, callerID int64, email string) error {
	user, err := s.repo.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return err
	}
	if user.ID != callerID {
		return domain.ErrNotOwner
	}
	return s.repo.DeleteUser(ctx, user.ID)
}

func (s *UserService) IncrementNotifications(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.AddNotifications(ctx, normalizeEmail(email), 1)
}

func (s *UserService) ClearNotifications(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.AddNotifications(ctx, normalizeEmail(email), 0)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// verificationCode returns a uniformly random six digit code.
func verificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
