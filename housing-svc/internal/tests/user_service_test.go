package tests

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"housing-reviews/housing-svc/internal/domain"
	"housing-reviews/housing-svc/internal/mocks"
	"housing-reviews/housing-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_Register(t *testing.T) {
	tests := []struct {
		name         string
		input        service.RegisterInput
		prepareMocks func(*mocks.UserRepository, *mocks.Mailer)
		wantErr      error
	}{
		{
			name:  "valid registration",
			input: service.RegisterInput{Email: " Student@JHU.edu ", Password: "password123", FirstName: "Sam", LastName: "Lee"},
			prepareMocks: func(repo *mocks.UserRepository, mailer *mocks.Mailer) {
				repo.On("GetUserByEmail", mock.Anything, "student@jhu.edu").Return(nil, domain.ErrUserNotFound).Once()
				repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
					return u.Email == "student@jhu.edu" &&
						bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password123")) == nil &&
						regexp.MustCompile(`^\d{6}$`).MatchString(u.VerificationCode)
				})).Return(nil).Once()
				mailer.On("SendVerificationCode", "student@jhu.edu", "Sam", mock.AnythingOfType("string")).Return(nil).Once()
			},
		},
		{
			name:         "wrong domain",
			input:        service.RegisterInput{Email: "sam@gmail.com", Password: "password123", FirstName: "Sam", LastName: "Lee"},
			prepareMocks: func(*mocks.UserRepository, *mocks.Mailer) {},
			wantErr:      domain.ErrInvalidEmailDomain,
		},
		{
			name:         "short password",
			input:        service.RegisterInput{Email: "sam@jhu.edu", Password: "short", FirstName: "Sam", LastName: "Lee"},
			prepareMocks: func(*mocks.UserRepository, *mocks.Mailer) {},
			wantErr:      domain.ErrValidation,
		},
		{
			name:  "email taken",
			input: service.RegisterInput{Email: "sam@jhu.edu", Password: "password123", FirstName: "Sam", LastName: "Lee"},
			prepareMocks: func(repo *mocks.UserRepository, _ *mocks.Mailer) {
				repo.On("GetUserByEmail", mock.Anything, "sam@jhu.edu").Return(&domain.User{ID: 1}, nil).Once()
			},
			wantErr: domain.ErrConflict,
		},
		{
			name:  "mail failure is not fatal",
			input: service.RegisterInput{Email: "sam@jhu.edu", Password: "password123", FirstName: "Sam", LastName: "Lee"},
			prepareMocks: func(repo *mocks.UserRepository, mailer *mocks.Mailer) {
				repo.On("GetUserByEmail", mock.Anything, "sam@jhu.edu").Return(nil, domain.ErrUserNotFound).Once()
				repo.On("CreateUser", mock.Anything, mock.Anything).Return(nil).Once()
				mailer.On("SendVerificationCode", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down")).Once()
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewUserRepository(t)
			mailer := mocks.NewMailer(t)
			svc := service.NewUserService(repo, service.NewTokenManager("secret", time.Hour), mailer)
			testCase.prepareMocks(repo, mailer)

			user, err := svc.Register(context.Background(), testCase.input)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.False(t, user.IsEmailVerified)
		})
	}
}

func TestUserService_VerifyEmail(t *testing.T) {
	tests := []struct {
		name       string
		user       *domain.User
		code       string
		wantMarked bool
		wantErr    error
	}{
		{name: "matching code", user: &domain.User{ID: 3, VerificationCode: "123456"}, code: "123456", wantMarked: true},
		{name: "wrong code", user: &domain.User{ID: 3, VerificationCode: "123456"}, code: "000000", wantErr: domain.ErrValidation},
		{name: "already verified", user: &domain.User{ID: 3, IsEmailVerified: true}, code: "999999"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewUserRepository(t)
			svc := service.NewUserService(repo, nil, nil)
			repo.On("GetUserByEmail", mock.Anything, "sam@jhu.edu").Return(testCase.user, nil).Once()
			if testCase.wantMarked {
				repo.On("MarkEmailVerified", mock.Anything, int64(3)).Return(nil).Once()
			}

			err := svc.VerifyEmail(context.Background(), "sam@jhu.edu", testCase.code)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestUserService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name     string
		user     *domain.User
		repoErr  error
		password string
		wantErr  error
	}{
		{
			name:     "verified user",
			user:     &domain.User{ID: 5, Email: "sam@jhu.edu", PasswordHash: string(hash), IsEmailVerified: true},
			password: "password123",
		},
		{
			name:     "wrong password",
			user:     &domain.User{ID: 5, Email: "sam@jhu.edu", PasswordHash: string(hash), IsEmailVerified: true},
			password: "nope",
			wantErr:  domain.ErrInvalidCredentials,
		},
		{
			name:     "unverified",
			user:     &domain.User{ID: 5, Email: "sam@jhu.edu", PasswordHash: string(hash)},
			password: "password123",
			wantErr:  domain.ErrEmailNotVerified,
		},
		{
			name:     "unknown email",
			repoErr:  domain.ErrUserNotFound,
			password: "password123",
			wantErr:  domain.ErrUnauthorized,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewUserRepository(t)
			tokens := service.NewTokenManager("secret", time.Hour)
			svc := service.NewUserService(repo, tokens, nil)
			repo.On("GetUserByEmail", mock.Anything, "sam@jhu.edu").Return(testCase.user, testCase.repoErr).Once()

			token, err := svc.Login(context.Background(), "sam@jhu.edu", testCase.password)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			userID, err := tokens.Parse(token)
			require.NoError(t, err)
			assert.Equal(t, int64(5), userID)
		})
	}
}

func TestUserService_LoginUnknownEmailTakesBcryptTime(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo := mocks.NewUserRepository(t)
	svc := service.NewUserService(repo, service.NewTokenManager("secret", time.Hour), nil)
	repo.On("GetUserByEmail", mock.Anything, "sam@jhu.edu").
		Return(&domain.User{ID: 5, Email: "sam@jhu.edu", PasswordHash: string(hash), IsEmailVerified: true}, nil)
	repo.On("GetUserByEmail", mock.Anything, "ghost@jhu.edu").Return(nil, domain.ErrUserNotFound)

	// first call pays for the one-time placeholder hash
	_, err = svc.Login(context.Background(), "ghost@jhu.edu", "password123")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	start := time.Now()
	_, err = svc.Login(context.Background(), "sam@jhu.edu", "wrong-password")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	wrongPassword := time.Since(start)

	start = time.Now()
	_, err = svc.Login(context.Background(), "ghost@jhu.edu", "wrong-password")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	unknownEmail := time.Since(start)

	assert.Greater(t, unknownEmail, wrongPassword/4,
		"unknown email answered in %s, wrong password in %s", unknownEmail, wrongPassword)
}

func TestTokenManager_Parse(t *testing.T) {
	tokens := service.NewTokenManager("secret", time.Minute)
	token, err := tokens.Issue(&domain.User{ID: 11, Email: "a@jhu.edu"})
	require.NoError(t, err)

	other := service.NewTokenManager("another-secret", time.Minute)
	_, err = other.Parse(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	expired := service.NewTokenManager("secret", -time.Minute)
	stale, err := expired.Issue(&domain.User{ID: 11})
	require.NoError(t, err)
	_, err = tokens.Parse(stale)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Contains(t, err.Error(), "expired")

	_, err = tokens.Parse("not-a-jwt")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestUserService_Ownership(t *testing.T) {
	repo := mocks.NewUserRepository(t)
	svc := service.NewUserService(repo, nil, nil)

	_, err := svc.UpdateProfile(context.Background(), 1, 2, domain.Profile{FirstName: "X"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	repo.On("GetUserByEmail", mock.Anything, "other@jhu.edu").Return(&domain.User{ID: 2}, nil).Once()
	err = svc.Delete(context.Background(), 1, "other@jhu.edu")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	repo.AssertNotCalled(t, "DeleteUser", mock.Anything, mock.Anything)

	repo.On("GetUserByEmail", mock.Anything, "me@jhu.edu").Return(&domain.User{ID: 1}, nil).Once()
	repo.On("DeleteUser", mock.Anything, int64(1)).Return(nil).Once()
	assert.NoError(t, svc.Delete(context.Background(), 1, "Me@jhu.edu"))
}

func TestUserService_Notifications(t *testing.T) {
	repo := mocks.NewUserRepository(t)
	svc := service.NewUserService(repo, nil, nil)

	repo.On("AddNotifications", mock.Anything, "sam@jhu.edu", 1).Return(&domain.User{Notifications: 4}, nil).Once()
	repo.On("AddNotifications", mock.Anything, "sam@jhu.edu", 0).Return(&domain.User{Notifications: 0}, nil).Once()

	user, err := svc.IncrementNotifications(context.Background(), "sam@jhu.edu")
	require.NoError(t, err)
	assert.Equal(t, 4, user.Notifications)

	user, err = svc.ClearNotifications(context.Background(), "sam@jhu.edu")
	require.NoError(t, err)
	assert.Equal(t, 0, user.Notifications)
}
