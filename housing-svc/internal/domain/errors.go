package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Handlers map these to status codes with errors.Is.
var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrValidation      = errors.New("validation error")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrExternalService = errors.New("external service failure")
)

var (
	ErrHousingNotFound  = fmt.Errorf("%w: housing not found", ErrNotFound)
	ErrReviewNotFound   = fmt.Errorf("%w: review not found", ErrNotFound)
	ErrUserNotFound     = fmt.Errorf("%w: user not found", ErrNotFound)
	ErrPostNotFound     = fmt.Errorf("%w: post not found", ErrNotFound)
	ErrFavoriteNotFound = fmt.Errorf("%w: favorite not found", ErrNotFound)

	ErrEmailTaken     = fmt.Errorf("%w: email already exists", ErrConflict)
	ErrFavoriteExists = fmt.Errorf("%w: already in favorites", ErrConflict)
	ErrAlreadyUpvoted = fmt.Errorf("%w: user has already upvoted this review", ErrConflict)
	ErrNotUpvoted     = fmt.Errorf("%w: user has not upvoted this review", ErrConflict)

	ErrInvalidEmailDomain      = fmt.Errorf("%w: email must end with @jhu.edu", ErrValidation)
	ErrPasswordTooShort        = fmt.Errorf("%w: password is too short", ErrValidation)
	ErrInvalidVerificationCode = fmt.Errorf("%w: invalid verification code", ErrValidation)
	ErrInvalidPostType         = fmt.Errorf("%w: type must be Roommate, Sublet or Housing", ErrValidation)

	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
	ErrEmailNotVerified   = fmt.Errorf("%w: email not verified", ErrUnauthorized)

	ErrNotOwner = fmt.Errorf("%w: only the owner may modify this resource", ErrForbidden)

	ErrSummarizerUnavailable = fmt.Errorf("%w: summarization service", ErrExternalService)
)
