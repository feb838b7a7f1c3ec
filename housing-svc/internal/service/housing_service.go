package service

import (
	"context"
	"fmt"
	"strings"

	"housing-reviews/housing-svc/internal/domain"
	"housing-reviews/logger"

	"github.com/google/uuid"
)

// HousingPatch carries only the fields a caller may change. Rating and
// summary fields are owned by ReviewService.
type HousingPatch struct {
	Name      *string  `json:"name" validate:"omitempty,min=1"`
	Address   *string  `json:"address" validate:"omitempty,min=1"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" validate:"omitempty,longitude"`
	ImageURL  *string  `json:"imageURL" validate:"omitempty,url"`
	Price     *string  `json:"price" validate:"omitempty,min=1,max=4"`
	Distance  *float64 `json:"distance" validate:"omitempty,gte=0"`
}

func (p HousingPatch) apply(h *domain.Housing) {
	if p.Name != nil {
		h.Name = *p.Name
	}
	if p.Address != nil {
		h.Address = *p.Address
	}
	if p.Latitude != nil {
		h.Latitude = *p.Latitude
	}
	if p.Longitude != nil {
		h.Longitude = *p.Longitude
	}
	if p.ImageURL != nil {
		h.ImageURL = *p.ImageURL
	}
	if p.Price != nil {
		h.Price = *p.Price
	}
	if p.Distance != nil {
		h.Distance = *p.Distance
	}
}

type HousingService struct {
	repo  HousingRepository
	cache HousingCache
	qr    QRGenerator
}

func NewHousingService(repo HousingRepository, cache HousingCache, qr QRGenerator) *HousingService {
	return &HousingService{repo: repo, cache: cache, qr: qr}
}

func (s *HousingService) Create(ctx context.Context, housing *domain.Housing) error {
	housing.ID = uuid.NewString()
	housing.AvgRating = 0
	housing.ReviewCount = 0
	housing.AggregateReview = nil
	if strings.TrimSpace(housing.Price) == "" {
		housing.Price = "$"
	}
	if err := s.repo.CreateHousing(ctx, housing); err != nil {
		return fmt.Errorf("failed to create housing: %w", err)
	}
	return nil
}

// Get reads through the cache. Cache errors fall back to the database.
func (s *HousingService) Get(ctx context.Context, id string) (*domain.Housing, error) {
	if s.cache != nil {
		cached, err := s.cache.GetHousing(ctx, id)
		if err != nil {
			logger.Warn(logger.EventCacheError, "housing cache read failed", logger.Fields("housing_id", id, "error", err.Error()))
		} else if cached != nil {
			return cached, nil
		}
	}

	housing, err := s.repo.GetHousing(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetHousing(ctx, housing); err != nil {
			logger.Warn(logger.EventCacheError, "housing cache write failed", logger.Fields("housing_id", id, "error", err.Error()))
		}
	}
	return housing, nil
}

func (s *HousingService) List(ctx context.Context, query domain.HousingQuery) (*domain.Page[domain.Housing], error) {
	query.Limit, query.Offset = domain.NormalizePaging(query.Limit, query.Offset)
	housings, total, err := s.repo.ListHousings(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list housings: %w", err)
	}
	if housings == nil {
		housings = []domain.Housing{}
	}
	return &domain.Page[domain.Housing]{
		Data:       housings,
		Limit:      query.Limit,
		Offset:     query.Offset,
		Search:     query.Search,
		TotalCount: total,
	}, nil
}

func (s *HousingService) Update(ctx context.Context, id string, patch HousingPatch) (*domain.Housing, error) {
	housing, err := s.repo.GetHousing(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.apply(housing)
	if err := s.repo.UpdateHousing(ctx, housing); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return housing, nil
}

func (s *HousingService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteHousing(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *HousingService) QRCode(ctx context.Context, id string) ([]byte, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	png, err := s.qr.Generate(id)
	if err != nil {
		return nil, fmt.Errorf("failed to generate qr code: %w", err)
	}
	return png, nil
}

func (s *HousingService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateHousing(ctx, id); err != nil {
		logger.Warn(logger.EventCacheError, "failed to invalidate housing cache", logger.Fields("housing_id", id, "error", err.Error()))
	}
}
