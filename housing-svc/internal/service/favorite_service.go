package service

import (
	"context"
	"errors"
	"fmt"

	"housing-reviews/housing-svc/internal/domain"

	"github.com/google/uuid"
)

type FavoriteService struct {
	favorites FavoriteRepository
	housings  HousingRepository
	posts     PostRepository
}

func NewFavoriteService(favorites FavoriteRepository, housings HousingRepository, posts PostRepository) *FavoriteService {
	return &FavoriteService{favorites: favorites, housings: housings, posts: posts}
}

func (s *FavoriteService) AddHousing(ctx context.Context, userID int64, housingID string) (*domain.FavoriteHousing, error) {
	if _, err := s.housings.GetHousing(ctx, housingID); err != nil {
		return nil, err
	}
	if err := s.ensureAbsent(s.favorites.GetFavoriteHousing(ctx, userID, housingID)); err != nil {
		return nil, err
	}

	fav := &domain.FavoriteHousing{ID: uuid.NewString(), HousingID: housingID, UserID: userID}
	if err := s.favorites.AddFavoriteHousing(ctx, fav); err != nil {
		return nil, err
	}
	return fav, nil
}

func (s *FavoriteService) GetHousing(ctx context.Context, userID int64, housingID string) (*domain.FavoriteHousing, error) {
	return s.favorites.GetFavoriteHousing(ctx, userID, housingID)
}

func (s *FavoriteService) RemoveHousing(ctx context.Context, userID int64, housingID string) error {
	return s.favorites.RemoveFavoriteHousing(ctx, userID, housingID)
}

func (s *FavoriteService) ListHousings(ctx context.Context, userID int64) ([]domain.Housing, error) {
	housings, err := s.favorites.ListFavoriteHousings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorite housings: %w", err)
	}
	if housings == nil {
		housings = []domain.Housing{}
	}
	return housings, nil
}

func (s *FavoriteService) AddPost(ctx context.Context, userID int64, postID string) (*domain.FavoritePost, error) {
	if _, err := s.posts.GetPost(ctx, postID); err != nil {
		return nil, err
	}
	if err := s.ensureAbsent(s.favorites.GetFavoritePost(ctx, userID, postID)); err != nil {
		return nil, err
	}

	fav := &domain.FavoritePost{ID: uuid.NewString(), PostID: postID, UserID: userID}
	if err := s.favorites.AddFavoritePost(ctx, fav); err != nil {
		return nil, err
	}
	return fav, nil
}

func (s *FavoriteService) GetPost(ctx context.Context, userID int64, postID string) (*domain.FavoritePost, error) {
	return s.favorites.GetFavoritePost(ctx, userID, postID)
}

func (s *FavoriteService) RemovePost(ctx context.Context, userID int64, postID string) error {
	return s.favorites.RemoveFavoritePost(ctx, userID, postID)
}

func (s *FavoriteService) ListPosts(ctx context.Context, userID int64) ([]domain.Post, error) {
	posts, err := s.favorites.ListFavoritePosts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorite posts: %w", err)
	}
	if posts == nil {
		posts = []domain.Post{}
	}
	return posts, nil
}

// ensureAbsent turns a successful lookup into ErrFavoriteExists.
func (s *FavoriteService) ensureAbsent(_ interface{}, err error) error {
	switch {
	case err == nil:
		return domain.ErrFavoriteExists
	case errors.Is(err, domain.ErrNotFound):
		return nil
	default:
		return err
	}
}
