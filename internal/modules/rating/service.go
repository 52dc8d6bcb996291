package rating

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/bryerblack/projeto-principios-dev-web/internal/domain"
)

type Service struct {
	ratings RatingRepository
	users   UserGetter
	places  PlaceGetter
}

func NewService(ratings RatingRepository, users UserGetter, places PlaceGetter) *Service {
	return &Service{ratings: ratings, users: users, places: places}
}

// CreateUserRating records a rating against a user and refreshes that user's
// average in the same transaction as the insert.
//
// Any authenticated user may rate any other user, on any rent reference;
// there is no participant check (see the rating eligibility note in
// DESIGN.md).
func (s *Service) CreateUserRating(ctx context.Context, reviewerID string, req CreateRatingRequest) (*domain.Rating, error) {
	if req.Rating < 0 || req.Rating > 5 {
		return nil, ErrValidation
	}

	if _, err := s.users.GetByID(ctx, req.ReviewedID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	rt := s.buildRating(reviewerID, req)
	if err := s.ratings.CreateForUser(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

// CreatePlaceRating records a rating against a place and refreshes the
// place's average in the same transaction as the insert.
func (s *Service) CreatePlaceRating(ctx context.Context, reviewerID string, req CreateRatingRequest) (*domain.Rating, error) {
	if req.Rating < 0 || req.Rating > 5 {
		return nil, ErrValidation
	}

	if _, err := s.places.GetByID(ctx, req.ReviewedID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlaceNotFound
		}
		return nil, err
	}

	rt := s.buildRating(reviewerID, req)
	if err := s.ratings.CreateForPlace(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (s *Service) buildRating(reviewerID string, req CreateRatingRequest) *domain.Rating {
	return &domain.Rating{
		ReviewerID:  reviewerID,
		ReviewedID:  req.ReviewedID,
		RentID:      req.RentID,
		Description: req.Description,
		Rating:      req.Rating,
		Date:        time.Now().UTC(),
	}
}

// UpdateUserAverageRating recomputes a user's stored average from scratch.
func (s *Service) UpdateUserAverageRating(ctx context.Context, userID string) error {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return s.ratings.RecalcUserAverage(ctx, userID)
}

// UpdatePlaceAverageRating recomputes a place's stored average from scratch.
func (s *Service) UpdatePlaceAverageRating(ctx context.Context, placeID string) error {
	if _, err := s.places.GetByID(ctx, placeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPlaceNotFound
		}
		return err
	}
	return s.ratings.RecalcPlaceAverage(ctx, placeID)
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Rating, error) {
	rt, err := s.ratings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rt, nil
}

func (s *Service) GetAll(ctx context.Context) ([]domain.Rating, error) {
	return s.ratings.GetAll(ctx)
}

func (s *Service) GetByReviewer(ctx context.Context, reviewerID string) ([]domain.Rating, error) {
	return s.ratings.GetByReviewer(ctx, reviewerID)
}

func (s *Service) GetByReviewed(ctx context.Context, reviewedID string) ([]domain.Rating, error) {
	return s.ratings.GetByReviewed(ctx, reviewedID)
}

// Delete removes a rating and re-aggregates the affected averages. Admin only.
func (s *Service) Delete(ctx context.Context, actorRole domain.Role, id string) error {
	if actorRole != domain.RoleAdmin {
		return ErrForbidden
	}

	if err := s.ratings.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
