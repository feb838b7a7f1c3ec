package service

import (
	"context"
	"fmt"

	"housing-reviews/housing-svc/internal/domain"

	"github.com/google/uuid"
)

type PostPatch struct {
	Title   *string          `json:"title" validate:"omitempty,min=1"`
	Content *string          `json:"content" validate:"omitempty,min=1"`
	Cost    *int             `json:"cost" validate:"omitempty,gte=0"`
	Address *string          `json:"address" validate:"omitempty,min=1"`
	Type    *domain.PostType `json:"type"`
}

type PostService struct {
	repo PostRepository
}

func NewPostService(repo PostRepository) *PostService {
	return &PostService{repo: repo}
}

func (s *PostService) Create(ctx context.Context, userID int64, post *domain.Post) error {
	if !post.Type.Valid() {
		return domain.ErrInvalidPostType
	}
	post.ID = uuid.NewString()
	post.UserID = userID
	if err := s.repo.CreatePost(ctx, post); err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	return s.repo.GetPost(ctx, id)
}

func (s *PostService) List(ctx context.Context, query domain.PostQuery) (*domain.Page[domain.Post], error) {
	if query.Type != "" && !query.Type.Valid() {
		return nil, domain.ErrInvalidPostType
	}
	query.Limit, query.Offset = domain.NormalizePaging(query.Limit, query.Offset)

	posts, total, err := s.repo.ListPosts(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	if posts == nil {
		posts = []domain.Post{}
	}
	return &domain.Page[domain.Post]{
		Data:       posts,
		Limit:      query.Limit,
		Offset:     query.Offset,
		Search:     query.Search,
		TotalCount: total,
	}, nil
}

func (s *PostService) Update(ctx context.Context, callerID int64, id string, patch PostPatch) (*domain.Post, error) {
	post, err := s.owned(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	if patch.Type != nil {
		if !patch.Type.Valid() {
			return nil, domain.ErrInvalidPostType
		}
		post.Type = *patch.Type
	}
	if patch.Title != nil {
		post.Title = *patch.Title
	}
	if patch.Content != nil {
		post.Content = *patch.Content
	}
	if patch.Cost != nil {
		post.Cost = *patch.Cost
	}
	if patch.Address != nil {
		post.Address = *patch.Address
	}

	if err := s.repo.UpdatePost(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) Delete(ctx context.Context, callerID int64, id string) error {
	if _, err := s.owned(ctx, callerID, id); err != nil {
		return err
	}
	return s.repo.DeletePost(ctx, id)
}

func (s *PostService) owned(ctx context.Context, callerID int64, id string) (*domain.Post, error) {
	post, err := s.repo.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.UserID != callerID {
		return nil, domain.ErrNotOwner
	}
	return post, nil
}
