package rating

import (
	"context"

	"github.com/bryerblack/projeto-principios-dev-web/internal/domain"
)

type RatingRepository interface {
	CreateForUser(ctx context.Context, rt *domain.Rating) error
	CreateForPlace(ctx context.Context, rt *domain.Rating) error
	RecalcUserAverage(ctx context.Context, userID string) error
	RecalcPlaceAverage(ctx context.Context, placeID string) error
	GetByID(ctx context.Context, id string) (*domain.Rating, error)
	GetAll(ctx context.Context) ([]domain.Rating, error)
	GetByReviewer(ctx context.Context, reviewerID string) ([]domain.Rating, error)
	GetByReviewed(ctx context.Context, reviewedID string) ([]domain.Rating, error)
	Delete(ctx context.Context, id string) error
}

type UserGetter interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type PlaceGetter interface {
	GetByID(ctx context.Context, id string) (*domain.Place, error)
}
