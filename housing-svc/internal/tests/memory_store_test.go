package tests

import (
	"context"
	"sort"
	"sync"

	"housing-reviews/housing-svc/internal/domain"
	"housing-reviews/housing-svc/internal/service"
)

// memoryReviewStore is an in-memory ReviewRepository that serializes
// mutations per housing the way the row lock does in Postgres.
type memoryReviewStore struct {
	mu       sync.Mutex
	locks    map[string]*sync.Mutex
	housings map[string]domain.Housing
	reviews  map[string][]domain.Review
}

func newMemoryReviewStore(housings ...domain.Housing) *memoryReviewStore {
	s := &memoryReviewStore{
		locks:    make(map[string]*sync.Mutex),
		housings: make(map[string]domain.Housing),
		reviews:  make(map[string][]domain.Review),
	}
	for _, h := range housings {
		s.housings[h.ID] = h
	}
	return s
}

func (s *memoryReviewStore) housingLock(id string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	return l
}

func (s *memoryReviewStore) housing(id string) domain.Housing {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.housings[id]
}

func (s *memoryReviewStore) WithHousingLock(ctx context.Context, housingID string, fn func(tx service.ReviewTx, housing domain.Housing) error) error {
	lock := s.housingLock(housingID)
	lock.Lock()
	defer lock.Unlock()

	s.mu.Lock()
	housing, ok := s.housings[housingID]
	staged := append([]domain.Review(nil), s.reviews[housingID]...)
	s.mu.Unlock()
	if !ok {
		return domain.ErrHousingNotFound
	}

	tx := &memoryTx{housing: housing, reviews: staged}
	if err := fn(tx, housing); err != nil {
		return err
	}

	s.mu.Lock()
	s.housings[housingID] = tx.housing
	s.reviews[housingID] = tx.reviews
	s.mu.Unlock()
	return nil
}

func (s *memoryReviewStore) GetReview(ctx context.Context, housingID, reviewID string) (*domain.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.reviews[housingID] {
		if r.ID == reviewID {
			r := r
			return &r, nil
		}
	}
	return nil, domain.ErrReviewNotFound
}

func (s *memoryReviewStore) ListReviews(ctx context.Context, housingID string, query domain.ReviewQuery) ([]domain.Review, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := append([]domain.Review(nil), s.reviews[housingID]...)
	return all, len(all), nil
}

func (s *memoryReviewStore) UpdateLedger(ctx context.Context, housingID, reviewID string, fn func(review *domain.Review) error) (*domain.Review, error) {
	lock := s.housingLock(housingID)
	lock.Lock()
	defer lock.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.reviews[housingID] {
		if r.ID != reviewID {
			continue
		}
		if err := fn(&r); err != nil {
			return nil, err
		}
		s.reviews[housingID][i] = r
		return &r, nil
	}
	return nil, domain.ErrReviewNotFound
}

type memoryTx struct {
	housing domain.Housing
	reviews []domain.Review
}

func (tx *memoryTx) ListReviews(ctx context.Context) ([]domain.Review, error) {
	out := append([]domain.Review(nil), tx.reviews...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (tx *memoryTx) GetReview(ctx context.Context, reviewID string) (*domain.Review, error) {
	for _, r := range tx.reviews {
		if r.ID == reviewID {
			r := r
			return &r, nil
		}
	}
	return nil, domain.ErrReviewNotFound
}

func (tx *memoryTx) InsertReview(ctx context.Context, review *domain.Review) error {
	tx.reviews = append(tx.reviews, *review)
	return nil
}

func (tx *memoryTx) DeleteReview(ctx context.Context, reviewID string) error {
	kept := tx.reviews[:0:0]
	for _, r := range tx.reviews {
		if r.ID != reviewID {
			kept = append(kept, r)
		}
	}
	tx.reviews = kept
	return nil
}

func (tx *memoryTx) SaveAggregates(ctx context.Context, result domain.ReviewMutationResult) error {
	tx.housing.AvgRating = result.Stats.AvgRating
	tx.housing.ReviewCount = result.Stats.ReviewCount
	tx.housing.AggregateReview = result.AggregateReview
	return nil
}

// echoSummarizer answers with the number of reviews it saw.
type echoSummarizer struct {
	mu    sync.Mutex
	calls int
}

func (e *echoSummarizer) Summarize(ctx context.Context, reviews []string) (string, error) {
	e.mu.Lock()
	e.calls++
	e.mu.Unlock()
	if len(reviews) < 2 {
		return domain.NotEnoughInformation, nil
	}
	return "summary of reviews", nil
}
