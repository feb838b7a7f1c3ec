package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpapi "housing-reviews/housing-svc/internal/api/http"
	"housing-reviews/housing-svc/internal/domain"
	"housing-reviews/housing-svc/internal/mocks"
	"housing-reviews/housing-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

var testTokens = service.NewTokenManager("test-secret", time.Hour)

func bearer(t *testing.T, userID int64) string {
	t.Helper()
	token, err := testTokens.Issue(&domain.User{ID: userID, Email: "user@jhu.edu"})
	require.NoError(t, err)
	return "Bearer " + token
}

type handlerDeps struct {
	users      *mocks.UserRepository
	housings   *mocks.HousingRepository
	reviews    *mocks.ReviewRepository
	summarizer *mocks.Summarizer
	posts      *mocks.PostRepository
	images     *mocks.ImageRepository
	objects    *mocks.ObjectStore
	favorites  *mocks.FavoriteRepository
}

func newTestRouter(t *testing.T) (*mux.Router, handlerDeps) {
	handler, deps := newTestHandler(t)
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r, deps
}

func newTestHandler(t *testing.T) (*httpapi.Handler, handlerDeps) {
	deps := handlerDeps{
		users:      mocks.NewUserRepository(t),
		housings:   mocks.NewHousingRepository(t),
		reviews:    mocks.NewReviewRepository(t),
		summarizer: mocks.NewSummarizer(t),
		posts:      mocks.NewPostRepository(t),
		images:     mocks.NewImageRepository(t),
		objects:    mocks.NewObjectStore(t),
		favorites:  mocks.NewFavoriteRepository(t),
	}
	handler := httpapi.NewHandler(
		service.NewUserService(deps.users, testTokens, nil),
		service.NewHousingService(deps.housings, nil, service.DefaultQRGenerator{BaseURL: "http://localhost"}),
		service.NewReviewService(deps.reviews, deps.housings, service.NewAggregateReviewer(deps.summarizer), nil, nil),
		service.NewPostService(deps.posts),
		service.NewImageService(deps.images, deps.posts, deps.objects),
		service.NewFavoriteService(deps.favorites, deps.housings, deps.posts),
		testTokens,
	)
	return handler, deps
}

func serve(r *mux.Router, method, path, body, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginHandler_RateLimitedPerClient(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  func(i int) string
		wantOK     int
	}{
		{
			name:       "behind gateway, client rotates leading entries",
			remoteAddr: "172.18.0.5:40000",
			forwarded:  func(i int) string { return fmt.Sprintf("10.0.0.%d, 198.51.100.4", i) },
			wantOK:     1,
		},
		{
			name:       "behind gateway, distinct clients",
			remoteAddr: "172.18.0.5:40000",
			forwarded:  func(i int) string { return fmt.Sprintf("198.51.100.%d", i) },
			wantOK:     20,
		},
		{
			name:       "direct client forging the header",
			remoteAddr: "192.0.2.10:40000",
			forwarded:  func(i int) string { return fmt.Sprintf("10.0.0.%d", i) },
			wantOK:     1,
		},
		{
			name:       "no header",
			remoteAddr: "192.0.2.10:40000",
			forwarded:  func(int) string { return "" },
			wantOK:     1,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			handler, _ := newTestHandler(t)
			handler.Limiter = httpapi.NewRateLimiter(rate.Limit(0), 1)
			r := mux.NewRouter()
			handler.RegisterRoutes(r)

			allowed := 0
			for i := 0; i < 20; i++ {
				req := httptest.NewRequest("POST", "/api/users/login", bytes.NewBufferString(`{}`))
				req.RemoteAddr = testCase.remoteAddr
				if xff := testCase.forwarded(i); xff != "" {
					req.Header.Set("X-Forwarded-For", xff)
				}
				w := httptest.NewRecorder()
				r.ServeHTTP(w, req)

				if w.Code == http.StatusTooManyRequests {
					continue
				}
				assert.Equal(t, http.StatusBadRequest, w.Code)
				allowed++
			}
			assert.Equal(t, testCase.wantOK, allowed)
		})
	}
}

func TestHealthCheckHandler(t *testing.T) {
	r, _ := newTestRouter(t)

	w := serve(r, "GET", "/health", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "housing-svc", body["service"])
}

func TestCreateReviewHandler(t *testing.T) {
	housing := domain.Housing{ID: "h1", AvgRating: 3.5, ReviewCount: 2}

	tests := []struct {
		name      string
		body      string
		auth      bool
		setupMock func(handlerDeps, *mocks.ReviewTx)
		wantCode  int
	}{
		{
			name: "created",
			body: `{"content":"quiet and clean","rating":5}`,
			auth: true,
			setupMock: func(d handlerDeps, tx *mocks.ReviewTx) {
				d.reviews.On("WithHousingLock", mock.Anything, "h1", mock.Anything).Return(lockRunning(tx, housing)).Once()
				tx.On("ListReviews", mock.Anything).Return([]domain.Review{{Content: "a"}, {Content: "b"}}, nil).Once()
				d.summarizer.On("Summarize", mock.Anything, []string{"a", "b", "quiet and clean"}).Return("nice", nil).Once()
				tx.On("InsertReview", mock.Anything, mock.Anything).Return(nil).Once()
				tx.On("SaveAggregates", mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "missing token",
			body:      `{"content":"x","rating":5}`,
			setupMock: func(handlerDeps, *mocks.ReviewTx) {},
			wantCode:  http.StatusUnauthorized,
		},
		{
			name: "missing rating counts as zero",
			body: `{"content":"noisy"}`,
			auth: true,
			setupMock: func(d handlerDeps, tx *mocks.ReviewTx) {
				d.reviews.On("WithHousingLock", mock.Anything, "h1", mock.Anything).Return(lockRunning(tx, housing)).Once()
				tx.On("ListReviews", mock.Anything).Return([]domain.Review{{Content: "a"}, {Content: "b"}}, nil).Once()
				d.summarizer.On("Summarize", mock.Anything, []string{"a", "b", "noisy"}).Return("mixed", nil).Once()
				tx.On("InsertReview", mock.Anything, mock.MatchedBy(func(r *domain.Review) bool {
					return r.Rating == 0 && r.Content == "noisy"
				})).Return(nil).Once()
				tx.On("SaveAggregates", mock.Anything, mock.MatchedBy(func(res domain.ReviewMutationResult) bool {
					return res.Stats.ReviewCount == 3 && res.Stats.AvgRating == 7.0/3
				})).Return(nil).Once()
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "missing content",
			body:      `{"rating":4}`,
			auth:      true,
			setupMock: func(handlerDeps, *mocks.ReviewTx) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "invalid JSON",
			body:      `{invalid}`,
			auth:      true,
			setupMock: func(handlerDeps, *mocks.ReviewTx) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "unknown housing",
			body: `{"content":"x","rating":5}`,
			auth: true,
			setupMock: func(d handlerDeps, tx *mocks.ReviewTx) {
				d.reviews.On("WithHousingLock", mock.Anything, "h1", mock.Anything).Return(domain.ErrHousingNotFound).Once()
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "summarizer down",
			body: `{"content":"x","rating":5}`,
			auth: true,
			setupMock: func(d handlerDeps, tx *mocks.ReviewTx) {
				d.reviews.On("WithHousingLock", mock.Anything, "h1", mock.Anything).Return(lockRunning(tx, housing)).Once()
				tx.On("ListReviews", mock.Anything).Return(nil, nil).Once()
				d.summarizer.On("Summarize", mock.Anything, mock.Anything).Return("", errors.New("503")).Once()
			},
			wantCode: http.StatusBadGateway,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			r, deps := newTestRouter(t)
			tx := mocks.NewReviewTx(t)
			testCase.setupMock(deps, tx)

			auth := ""
			if testCase.auth {
				auth = bearer(t, 7)
			}
			w := serve(r, "POST", "/api/housings/h1/reviews", testCase.body, auth)

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestUpvoteHandler(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		setupMock func(handlerDeps)
		wantCode  int
	}{
		{
			name: "upvoted",
			path: "/api/housings/h1/reviews/r1/upvote/7",
			setupMock: func(d handlerDeps) {
				d.reviews.On("UpdateLedger", mock.Anything, "h1", "r1", mock.Anything).
					Return(func(_ context.Context, _, _ string, fn func(*domain.Review) error) (*domain.Review, error) {
						review := &domain.Review{ID: "r1", LikedBy: []int64{}}
						return review, fn(review)
					}).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name: "already upvoted",
			path: "/api/housings/h1/reviews/r1/upvote/7",
			setupMock: func(d handlerDeps) {
				d.reviews.On("UpdateLedger", mock.Anything, "h1", "r1", mock.Anything).
					Return(nil, domain.ErrAlreadyUpvoted).Once()
			},
			wantCode: http.StatusConflict,
		},
		{
			name:      "voting for someone else",
			path:      "/api/housings/h1/reviews/r1/upvote/8",
			setupMock: func(handlerDeps) {},
			wantCode:  http.StatusForbidden,
		},
		{
			name: "undo without vote",
			path: "/api/housings/h1/reviews/r1/upvoteUndo/7",
			setupMock: func(d handlerDeps) {
				d.reviews.On("UpdateLedger", mock.Anything, "h1", "r1", mock.Anything).
					Return(nil, domain.ErrNotUpvoted).Once()
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			r, deps := newTestRouter(t)
			testCase.setupMock(deps)

			w := serve(r, "PATCH", testCase.path, "", bearer(t, 7))

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestListReviewsHandler(t *testing.T) {
	r, deps := newTestRouter(t)
	deps.housings.On("GetHousing", mock.Anything, "h1").Return(&domain.Housing{ID: "h1"}, nil).Once()
	deps.reviews.On("ListReviews", mock.Anything, "h1", domain.ReviewQuery{
		Limit: 5, Offset: 10, SortBy: domain.SortByPopularity, WithUserData: true,
	}).Return([]domain.Review{{ID: "r1"}}, 11, nil).Once()

	w := serve(r, "GET", "/api/housings/h1/reviews?limit=5&offset=10&sortBy=popularity&withUserData=true", "", "")

	require.Equal(t, http.StatusOK, w.Code)
	var page domain.Page[domain.Review]
	require.NoError(t, json.NewDecoder(w.Body).Decode(&page))
	assert.Equal(t, 11, page.TotalCount)
	assert.Len(t, page.Data, 1)

	w = serve(r, "GET", "/api/housings/h1/reviews?sortBy=rating", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetHousingHandler(t *testing.T) {
	tests := []struct {
		name     string
		mockErr  error
		wantCode int
	}{
		{name: "found", wantCode: http.StatusOK},
		{name: "not found", mockErr: domain.ErrHousingNotFound, wantCode: http.StatusNotFound},
		{name: "database error", mockErr: errors.New("db error"), wantCode: http.StatusInternalServerError},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			r, deps := newTestRouter(t)
			if testCase.mockErr != nil {
				deps.housings.On("GetHousing", mock.Anything, "h1").Return(nil, testCase.mockErr).Once()
			} else {
				deps.housings.On("GetHousing", mock.Anything, "h1").Return(&domain.Housing{ID: "h1", Name: "Homewood"}, nil).Once()
			}

			w := serve(r, "GET", "/api/housings/h1", "", "")

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantCode == http.StatusInternalServerError {
				assert.NotContains(t, w.Body.String(), "db error")
			}
		})
	}
}

func TestListHousingsHandler_BadDistance(t *testing.T) {
	r, _ := newTestRouter(t)

	w := serve(r, "GET", "/api/housings?distance=far", "", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListHousingsHandler_MaxDistance(t *testing.T) {
	r, deps := newTestRouter(t)
	deps.housings.On("ListHousings", mock.Anything, mock.MatchedBy(func(q domain.HousingQuery) bool {
		return q.MaxDistance != nil && *q.MaxDistance == 1.5 && q.Price == "$$" && q.Limit == 10
	})).Return([]domain.Housing{{ID: "h1", Name: "Blackstone"}}, 1, nil).Once()

	w := serve(r, "GET", "/api/housings?maxDistance=1.5&price=%24%24", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalCount":1`)
}

func TestHousingQRCodeHandler(t *testing.T) {
	r, deps := newTestRouter(t)
	deps.housings.On("GetHousing", mock.Anything, "h1").Return(&domain.Housing{ID: "h1"}, nil).Once()

	w := serve(r, "GET", "/api/housings/h1/qrcode", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
}

func TestRegisterHandler(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(handlerDeps)
		wantCode  int
	}{
		{
			name: "created",
			body: `{"email":"new@jhu.edu","password":"password123","firstName":"N","lastName":"U"}`,
			setupMock: func(d handlerDeps) {
				d.users.On("GetUserByEmail", mock.Anything, "new@jhu.edu").Return(nil, domain.ErrUserNotFound).Once()
				d.users.On("CreateUser", mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "missing names",
			body:      `{"email":"new@jhu.edu","password":"password123"}`,
			setupMock: func(handlerDeps) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "duplicate",
			body: `{"email":"new@jhu.edu","password":"password123","firstName":"N","lastName":"U"}`,
			setupMock: func(d handlerDeps) {
				d.users.On("GetUserByEmail", mock.Anything, "new@jhu.edu").Return(&domain.User{ID: 1}, nil).Once()
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			r, deps := newTestRouter(t)
			testCase.setupMock(deps)

			w := serve(r, "POST", "/api/users/register", testCase.body, "")

			assert.Equal(t, testCase.wantCode, w.Code)
			assert.NotContains(t, w.Body.String(), "password")
		})
	}
}

func TestAuthedRoute_RejectsBadToken(t *testing.T) {
	r, _ := newTestRouter(t)

	w := serve(r, "GET", "/api/users", "", "Bearer garbage")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDeletePostImagesHandler(t *testing.T) {
	r, deps := newTestRouter(t)
	deps.posts.On("GetPost", mock.Anything, "p1").Return(&domain.Post{ID: "p1", UserID: 7}, nil).Once()
	deps.images.On("SoftDeleteImages", mock.Anything, "p1", []string{"6f1c3b9e-8f0e-4a4f-9a57-3d1f6c2b7e10"}).Return(int64(1), nil).Once()

	w := serve(r, "DELETE", "/api/posts/p1/images", `{"ids":["6f1c3b9e-8f0e-4a4f-9a57-3d1f6c2b7e10"]}`, bearer(t, 7))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"deleted":1}`, w.Body.String())

	w = serve(r, "DELETE", "/api/posts/p1/images", `{"ids":["not-a-uuid"]}`, bearer(t, 7))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadPostImageHandler(t *testing.T) {
	r, deps := newTestRouter(t)
	deps.posts.On("GetPost", mock.Anything, "p1").Return(&domain.Post{ID: "p1", UserID: 7}, nil).Once()
	deps.objects.On("PutObject", mock.Anything, mock.Anything, mock.Anything, int64(5), mock.Anything).
		Return("http://cdn/p1/x.png", nil).Once()
	deps.images.On("AddImages", mock.Anything, mock.Anything).Return(nil).Once()

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("image", "x.png")
	require.NoError(t, err)
	part.Write([]byte("hello"))
	require.NoError(t, form.Close())

	req := httptest.NewRequest("POST", "/api/posts/p1/images/upload", &body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Authorization", bearer(t, 7))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "http://cdn/p1/x.png")
}

func TestFavoriteHousingHandler_Duplicate(t *testing.T) {
	r, deps := newTestRouter(t)
	deps.housings.On("GetHousing", mock.Anything, "h1").Return(&domain.Housing{ID: "h1"}, nil).Once()
	deps.favorites.On("GetFavoriteHousing", mock.Anything, int64(7), "h1").Return(&domain.FavoriteHousing{ID: "f"}, nil).Once()

	w := serve(r, "POST", "/api/favorites/housings/h1", "", bearer(t, 7))

	assert.Equal(t, http.StatusConflict, w.Code)
}
