package rent

import (
	"context"

	"github.com/bryerblack/projeto-principios-dev-web/internal/domain"
)

type RentRepository interface {
	Create(ctx context.Context, rt *domain.Rent) error
	GetByID(ctx context.Context, id string) (*domain.Rent, error)
	GetAll(ctx context.Context) ([]domain.Rent, error)
	GetByUser(ctx context.Context, userID string) ([]domain.Rent, error)
	UpdateStatus(ctx context.Context, id string, status domain.RentStatus) error
	Update(ctx context.Context, rt *domain.Rent) error
	Delete(ctx context.Context, id string) error
}

type PlaceGetter interface {
	GetByID(ctx context.Context, id string) (*domain.Place, error)
}

type UserGetter interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
