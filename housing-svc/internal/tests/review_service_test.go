package tests

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"housing-reviews/housing-svc/internal/domain"
	"housing-reviews/housing-svc/internal/mocks"
	"housing-reviews/housing-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

// lockRunning makes the mocked WithHousingLock run fn against tx and housing.
func lockRunning(tx service.ReviewTx, housing domain.Housing) func(context.Context, string, func(service.ReviewTx, domain.Housing) error) error {
	return func(_ context.Context, _ string, fn func(service.ReviewTx, domain.Housing) error) error {
		return fn(tx, housing)
	}
}

func TestReviewService_Create(t *testing.T) {
	housing := domain.Housing{ID: "h1", AvgRating: 3.5, ReviewCount: 2, AggregateReview: strPtr("old summary")}
	existing := []domain.Review{
		{ID: "r2", HousingID: "h1", Content: "newer", Rating: 4},
		{ID: "r1", HousingID: "h1", Content: "older", Rating: 3},
	}

	tests := []struct {
		name        string
		summary     string
		summaryErr  error
		wantErr     error
		wantSummary *string
	}{
		{
			name:        "summary replaced",
			summary:     "fresh summary",
			wantSummary: strPtr("fresh summary"),
		},
		{
			name:        "sentinel keeps previous summary",
			summary:     domain.NotEnoughInformation,
			wantSummary: strPtr("old summary"),
		},
		{
			name:       "summarizer failure rolls back",
			summaryErr: errors.New("connection refused"),
			wantErr:    domain.ErrExternalService,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewReviewRepository(t)
			tx := mocks.NewReviewTx(t)
			summarizer := mocks.NewSummarizer(t)
			cache := mocks.NewHousingCache(t)
			publisher := mocks.NewReviewPublisher(t)
			svc := service.NewReviewService(repo, nil, service.NewAggregateReviewer(summarizer), cache, publisher)

			repo.On("WithHousingLock", mock.Anything, "h1", mock.Anything).Return(lockRunning(tx, housing)).Once()
			tx.On("ListReviews", mock.Anything).Return(existing, nil).Once()
			summarizer.On("Summarize", mock.Anything, []string{"newer", "older", "great place"}).
				Return(testCase.summary, testCase.summaryErr).Once()

			if testCase.wantErr == nil {
				tx.On("InsertReview", mock.Anything, mock.MatchedBy(func(r *domain.Review) bool {
					return r.HousingID == "h1" && r.UserID == 7 && r.Rating == 5 && len(r.LikedBy) == 0
				})).Return(nil).Once()
				tx.On("SaveAggregates", mock.Anything, mock.MatchedBy(func(res domain.ReviewMutationResult) bool {
					return res.Stats.ReviewCount == 3 && res.Stats.AvgRating == 4 &&
						assert.ObjectsAreEqual(testCase.wantSummary, res.AggregateReview)
				})).Return(nil).Once()
				cache.On("InvalidateHousing", mock.Anything, "h1").Return(nil).Once()
				publisher.On("PublishReviewEvent", mock.Anything, mock.MatchedBy(func(e domain.ReviewEvent) bool {
					return e.Type == domain.EventReviewCreated && e.HousingID == "h1" && e.ReviewCount == 3
				})).Return(nil).Once()
			}

			review, err := svc.Create(context.Background(), "h1", 7, "great place", 5)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.Nil(t, review)
				tx.AssertNotCalled(t, "InsertReview", mock.Anything, mock.Anything)
				publisher.AssertNotCalled(t, "PublishReviewEvent", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, review.ID)
			assert.Equal(t, 0, review.UpvoteCount)
		})
	}
}

func TestReviewService_Create_ClampsRating(t *testing.T) {
	store := newMemoryReviewStore(domain.Housing{ID: "h1"})
	svc := service.NewReviewService(store, nil, service.NewAggregateReviewer(&echoSummarizer{}), nil, nil)

	high, err := svc.Create(context.Background(), "h1", 1, "a", 9)
	require.NoError(t, err)
	low, err := svc.Create(context.Background(), "h1", 2, "b", -3)
	require.NoError(t, err)

	assert.Equal(t, 5.0, high.Rating)
	assert.Equal(t, 0.0, low.Rating)
	assert.InDelta(t, 2.5, store.housing("h1").AvgRating, 1e-9)
}

func TestReviewService_Create_UnknownHousing(t *testing.T) {
	store := newMemoryReviewStore()
	summarizer := mocks.NewSummarizer(t)
	svc := service.NewReviewService(store, nil, service.NewAggregateReviewer(summarizer), nil, nil)

	_, err := svc.Create(context.Background(), "missing", 1, "text", 4)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReviewService_Delete(t *testing.T) {
	tests := []struct {
		name          string
		housing       domain.Housing
		all           []domain.Review
		callerID      int64
		summary       string
		expectSummary bool
		wantErr       error
		wantStats     domain.RatingStats
		wantSummary   *string
	}{
		{
			name:    "last review clears summary without calling summarizer",
			housing: domain.Housing{ID: "h1", AvgRating: 4, ReviewCount: 1, AggregateReview: strPtr("old")},
			all: []domain.Review{
				{ID: "r1", UserID: 7, Content: "only", Rating: 4},
			},
			callerID:    7,
			wantStats:   domain.RatingStats{},
			wantSummary: nil,
		},
		{
			name:    "remaining reviews are resummarized",
			housing: domain.Housing{ID: "h1", AvgRating: 3, ReviewCount: 2, AggregateReview: strPtr("old")},
			all: []domain.Review{
				{ID: "r2", UserID: 8, Content: "keep", Rating: 2},
				{ID: "r1", UserID: 7, Content: "drop", Rating: 4},
			},
			callerID:      7,
			summary:       "new",
			expectSummary: true,
			wantStats:     domain.RatingStats{AvgRating: 2, ReviewCount: 1},
			wantSummary:   strPtr("new"),
		},
		{
			name:    "sentinel keeps summary on delete",
			housing: domain.Housing{ID: "h1", AvgRating: 3, ReviewCount: 2, AggregateReview: strPtr("old")},
			all: []domain.Review{
				{ID: "r2", UserID: 8, Content: "keep", Rating: 2},
				{ID: "r1", UserID: 7, Content: "drop", Rating: 4},
			},
			callerID:      7,
			summary:       domain.NotEnoughInformation,
			expectSummary: true,
			wantStats:     domain.RatingStats{AvgRating: 2, ReviewCount: 1},
			wantSummary:   strPtr("old"),
		},
		{
			name:    "other user's review",
			housing: domain.Housing{ID: "h1", AvgRating: 4, ReviewCount: 1},
			all: []domain.Review{
				{ID: "r1", UserID: 7, Content: "only", Rating: 4},
			},
			callerID: 99,
			wantErr:  domain.ErrForbidden,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewReviewRepository(t)
			tx := mocks.NewReviewTx(t)
			summarizer := mocks.NewSummarizer(t)
			svc := service.NewReviewService(repo, nil, service.NewAggregateReviewer(summarizer), nil, nil)

			target := testCase.all[len(testCase.all)-1]
			repo.On("WithHousingLock", mock.Anything, "h1", mock.Anything).Return(lockRunning(tx, testCase.housing)).Once()
			tx.On("GetReview", mock.Anything, "r1").Return(&target, nil).Once()

			if testCase.wantErr == nil {
				tx.On("ListReviews", mock.Anything).Return(testCase.all, nil).Once()
				if testCase.expectSummary {
					summarizer.On("Summarize", mock.Anything, []string{"keep"}).Return(testCase.summary, nil).Once()
				}
				tx.On("DeleteReview", mock.Anything, "r1").Return(nil).Once()
				tx.On("SaveAggregates", mock.Anything, domain.ReviewMutationResult{
					Stats:           testCase.wantStats,
					AggregateReview: testCase.wantSummary,
				}).Return(nil).Once()
			}

			deleted, err := svc.Delete(context.Background(), "h1", "r1", testCase.callerID)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				tx.AssertNotCalled(t, "DeleteReview", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "r1", deleted.ID)
			if !testCase.expectSummary {
				summarizer.AssertNotCalled(t, "Summarize", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestReviewService_Delete_SummarizerFailureKeepsReview(t *testing.T) {
	store := newMemoryReviewStore(domain.Housing{ID: "h1"})
	summarizer := &echoSummarizer{}
	svc := service.NewReviewService(store, nil, service.NewAggregateReviewer(summarizer), nil, nil)

	first, err := svc.Create(context.Background(), "h1", 1, "one", 4)
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "h1", 2, "two", 2)
	require.NoError(t, err)
	before := store.housing("h1")

	failing := mocks.NewSummarizer(t)
	failing.On("Summarize", mock.Anything, mock.Anything).Return("", errors.New("timeout")).Once()
	svc = service.NewReviewService(store, nil, service.NewAggregateReviewer(failing), nil, nil)

	_, err = svc.Delete(context.Background(), "h1", first.ID, 1)

	assert.ErrorIs(t, err, domain.ErrSummarizerUnavailable)
	assert.Equal(t, before, store.housing("h1"))
	_, err = store.GetReview(context.Background(), "h1", first.ID)
	assert.NoError(t, err)
}

func TestReviewService_AggregatesTrackMean(t *testing.T) {
	store := newMemoryReviewStore(domain.Housing{ID: "h1"})
	svc := service.NewReviewService(store, nil, service.NewAggregateReviewer(&echoSummarizer{}), nil, nil)
	ratings := []float64{5, 3, 4, 1, 2.5}

	ids := make([]string, 0, len(ratings))
	sum := 0.0
	for i, rating := range ratings {
		review, err := svc.Create(context.Background(), "h1", int64(i+1), fmt.Sprintf("review %d", i), rating)
		require.NoError(t, err)
		ids = append(ids, review.ID)
		sum += rating

		h := store.housing("h1")
		assert.Equal(t, i+1, h.ReviewCount)
		assert.InDelta(t, sum/float64(i+1), h.AvgRating, 1e-9)
	}

	for i := len(ids) - 1; i >= 0; i-- {
		_, err := svc.Delete(context.Background(), "h1", ids[i], int64(i+1))
		require.NoError(t, err)
		sum -= ratings[i]

		h := store.housing("h1")
		assert.Equal(t, i, h.ReviewCount)
		if i == 0 {
			assert.Equal(t, 0.0, h.AvgRating)
			assert.Nil(t, h.AggregateReview)
		} else {
			assert.InDelta(t, sum/float64(i), h.AvgRating, 1e-9)
		}
	}
}

func TestReviewService_ConcurrentCreatesAreSerialized(t *testing.T) {
	store := newMemoryReviewStore(domain.Housing{ID: "h1"})
	svc := service.NewReviewService(store, nil, service.NewAggregateReviewer(&echoSummarizer{}), nil, nil)

	const writers = 40
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.Create(context.Background(), "h1", int64(i), "text", float64(i%5+1))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	h := store.housing("h1")
	assert.Equal(t, writers, h.ReviewCount)
	assert.InDelta(t, 3.0, h.AvgRating, 1e-9)
	reviews, total, err := store.ListReviews(context.Background(), "h1", domain.ReviewQuery{})
	require.NoError(t, err)
	assert.Len(t, reviews, writers)
	assert.Equal(t, writers, total)
}

func TestReviewService_PublishFailureDoesNotFailCreate(t *testing.T) {
	store := newMemoryReviewStore(domain.Housing{ID: "h1"})
	cache := mocks.NewHousingCache(t)
	publisher := mocks.NewReviewPublisher(t)
	svc := service.NewReviewService(store, nil, service.NewAggregateReviewer(&echoSummarizer{}), cache, publisher)

	cache.On("InvalidateHousing", mock.Anything, "h1").Return(errors.New("redis down")).Once()
	publisher.On("PublishReviewEvent", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	review, err := svc.Create(context.Background(), "h1", 1, "fine", 3)

	require.NoError(t, err)
	assert.Equal(t, 1, store.housing("h1").ReviewCount)
	assert.WithinDuration(t, time.Now(), review.Timestamp, time.Minute)
}

func TestReviewService_Upvote(t *testing.T) {
	store := newMemoryReviewStore(domain.Housing{ID: "h1"})
	svc := service.NewReviewService(store, nil, service.NewAggregateReviewer(&echoSummarizer{}), nil, nil)
	review, err := svc.Create(context.Background(), "h1", 1, "text", 4)
	require.NoError(t, err)

	updated, err := svc.Upvote(context.Background(), "h1", review.ID, 42)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.UpvoteCount)
	assert.Equal(t, []int64{42}, updated.LikedBy)

	_, err = svc.Upvote(context.Background(), "h1", review.ID, 42)
	assert.ErrorIs(t, err, domain.ErrAlreadyUpvoted)

	updated, err = svc.UndoUpvote(context.Background(), "h1", review.ID, 42)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.UpvoteCount)
	assert.Empty(t, updated.LikedBy)

	_, err = svc.UndoUpvote(context.Background(), "h1", review.ID, 42)
	assert.ErrorIs(t, err, domain.ErrNotUpvoted)

	likedBy, err := svc.LikedBy(context.Background(), "h1", review.ID)
	require.NoError(t, err)
	assert.NotNil(t, likedBy)
	assert.Empty(t, likedBy)
}

func TestReviewService_ConcurrentUpvotes(t *testing.T) {
	store := newMemoryReviewStore(domain.Housing{ID: "h1"})
	svc := service.NewReviewService(store, nil, service.NewAggregateReviewer(&echoSummarizer{}), nil, nil)
	review, err := svc.Create(context.Background(), "h1", 1, "text", 4)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := int64(1); i <= 25; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			_, err := svc.Upvote(context.Background(), "h1", review.ID, userID)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	final, err := store.GetReview(context.Background(), "h1", review.ID)
	require.NoError(t, err)
	assert.Equal(t, 25, final.UpvoteCount)
	assert.Len(t, final.LikedBy, 25)
}

func TestReviewService_List(t *testing.T) {
	tests := []struct {
		name      string
		query     domain.ReviewQuery
		housing   error
		wantQuery domain.ReviewQuery
		wantErr   error
	}{
		{
			name:      "defaults applied",
			query:     domain.ReviewQuery{},
			wantQuery: domain.ReviewQuery{Limit: domain.DefaultLimit, SortBy: domain.SortByRecency},
		},
		{
			name:      "limit capped and popularity kept",
			query:     domain.ReviewQuery{Limit: 500, Offset: -4, SortBy: domain.SortByPopularity, WithUserData: true},
			wantQuery: domain.ReviewQuery{Limit: domain.MaxLimit, SortBy: domain.SortByPopularity, WithUserData: true},
		},
		{
			name:    "unknown housing",
			housing: domain.ErrHousingNotFound,
			wantErr: domain.ErrNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			reviews := mocks.NewReviewRepository(t)
			housings := mocks.NewHousingRepository(t)
			svc := service.NewReviewService(reviews, housings, nil, nil, nil)

			if testCase.housing != nil {
				housings.On("GetHousing", mock.Anything, "h1").Return(nil, testCase.housing).Once()
			} else {
				housings.On("GetHousing", mock.Anything, "h1").Return(&domain.Housing{ID: "h1"}, nil).Once()
				reviews.On("ListReviews", mock.Anything, "h1", testCase.wantQuery).Return(nil, 0, nil).Once()
			}

			page, err := svc.List(context.Background(), "h1", testCase.query)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, page.Data)
			assert.Equal(t, testCase.wantQuery.Limit, page.Limit)
		})
	}
}
