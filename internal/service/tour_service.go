package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/kamchatour/market-backend/internal/model"
	"github.com/kamchatour/market-backend/internal/repository"
)

const maxListingDurationHours = 24 * 30

type TourInput struct {
	Title         string
	Description   *string
	Price         float64
	Currency      string
	DurationHours *int
	Difficulty    *string
	Location      map[string]interface{}
	Images        []string
}

type TourService interface {
	Create(ctx context.Context, operatorID uint64, in TourInput) (*model.Tour, error)
	// Publish flips the draft active. A tour that does not exist and a
	// tour owned by someone else both come back ErrNotFound.
	Publish(ctx context.Context, operatorID, tourID uint64) (*model.Tour, error)
	ListOwned(ctx context.Context, operatorID uint64) ([]model.Tour, error)
	SearchPublished(ctx context.Context, query string, limit int) ([]model.Tour, error)
}

type tourService struct {
	tours repository.TourRepository
}

func NewTourService(tours repository.TourRepository) TourService {
	return &tourService{tours: tours}
}

func (s *tourService) Create(ctx context.Context, operatorID uint64, in TourInput) (*model.Tour, error) {
	title := strings.TrimSpace(in.Title)
	if len(title) < 2 || len(title) > 200 {
		return nil, errors.New("title must be 2-200 characters")
	}
	if in.Price < 0 {
		return nil, errors.New("price must not be negative")
	}
	currency := strings.TrimSpace(in.Currency)
	if currency == "" {
		currency = "RUB"
	}
	if len(currency) < 3 || len(currency) > 8 {
		return nil, errors.New("invalid currency")
	}
	if in.DurationHours != nil && (*in.DurationHours < 1 || *in.DurationHours > maxListingDurationHours) {
		return nil, errors.New("invalid duration")
	}
	location, err := toJSON(in.Location)
	if err != nil {
		return nil, errors.New("invalid location")
	}
	images, err := toJSON(in.Images)
	if err != nil {
		return nil, errors.New("invalid images")
	}

	tour := &model.Tour{
		OperatorID:    operatorID,
		Title:         title,
		Description:   in.Description,
		Price:         in.Price,
		Currency:      currency,
		DurationHours: in.DurationHours,
		Difficulty:    in.Difficulty,
		Location:      location,
		Images:        images,
		IsActive:      false,
	}
	if err := s.tours.Create(ctx, tour); err != nil {
		return nil, err
	}
	return tour, nil
}

func (s *tourService) Publish(ctx context.Context, operatorID, tourID uint64) (*model.Tour, error) {
	tour, err := s.tours.FindOwned(ctx, tourID, operatorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	tour.IsActive = true
	if err := s.tours.Save(ctx, tour); err != nil {
		return nil, err
	}
	return tour, nil
}

func (s *tourService) ListOwned(ctx context.Context, operatorID uint64) ([]model.Tour, error) {
	return s.tours.ListByOperator(ctx, operatorID)
}

func (s *tourService) SearchPublished(ctx context.Context, query string, limit int) ([]model.Tour, error) {
	return s.tours.SearchPublished(ctx, query, clampPublicLimit(limit))
}

// clampPublicLimit bounds storefront page sizes to [1,500], defaulting
// to 100 when the caller sends nothing.
func clampPublicLimit(limit int) int {
	if limit == 0 {
		limit = 100
	}
	if limit < 1 {
		return 1
	}
	if limit > 500 {
		return 500
	}
	return limit
}
