package place

import (
	"context"

	"github.com/bryerblack/projeto-principios-dev-web/internal/domain"
)

type PlaceRepository interface {
	CreateWithAddress(ctx context.Context, address *domain.Address, place *domain.Place) error
	GetByID(ctx context.Context, id string) (*domain.Place, error)
	GetAll(ctx context.Context) ([]domain.Place, error)
	GetByOwner(ctx context.Context, ownerID string) ([]domain.Place, error)
	GetByAddressID(ctx context.Context, addressID string) (*domain.Place, error)
	FindAvailable(ctx context.Context, limit, offset int) ([]domain.Place, int64, error)
	Update(ctx context.Context, p *domain.Place) error
	Delete(ctx context.Context, id string) error
}

type AddressRepository interface {
	FindByCepRuaNumero(ctx context.Context, cep, rua, numero string) (*domain.Address, error)
}

type EquipmentRepository interface {
	Create(ctx context.Context, e *domain.Equipment) error
	GetByID(ctx context.Context, id string) (*domain.Equipment, error)
	GetByPlace(ctx context.Context, placeID string) ([]domain.Equipment, error)
	FindByPlaceAndName(ctx context.Context, placeID, name string) (*domain.Equipment, error)
	Delete(ctx context.Context, id string) error
}

// RentCounter reports how many rents of a given status exist for a place;
// used by the delete guard.
type RentCounter interface {
	CountByPlaceAndStatus(ctx context.Context, placeID string, status domain.RentStatus) (int64, error)
}
