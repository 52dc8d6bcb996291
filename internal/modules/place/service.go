package place

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/bryerblack/projeto-principios-dev-web/internal/domain"
	"github.com/bryerblack/projeto-principios-dev-web/internal/pkg/authz"
	"github.com/bryerblack/projeto-principios-dev-web/internal/pkg/cache"
	"github.com/bryerblack/projeto-principios-dev-web/internal/pkg/validator"
)

const (
	availableCachePrefix = "places:available:"
	availableCacheTTL    = 2 * time.Minute
)

type Service struct {
	places     PlaceRepository
	addresses  AddressRepository
	equipments EquipmentRepository
	rents      RentCounter
	cache      *cache.Cache
}

func NewService(
	places PlaceRepository,
	addresses AddressRepository,
	equipments EquipmentRepository,
	rents RentCounter,
	c *cache.Cache,
) *Service {
	return &Service{
		places:     places,
		addresses:  addresses,
		equipments: equipments,
		rents:      rents,
		cache:      c,
	}
}

// Create resolves the address by (cep, rua, numero) first: an address
// already bound to another place is a conflict, a known-but-free address is
// reused, and a new one is created together with the place in a single
// transaction.
func (s *Service) Create(ctx context.Context, ownerID string, req CreatePlaceRequest) (*domain.Place, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrValidation
	}
	if errs := validator.Validate(req.Address); errs != nil {
		return nil, ErrValidation
	}

	availability, err := parseAvailability(req.Availability)
	if err != nil {
		return nil, err
	}

	address, err := s.addresses.FindByCepRuaNumero(ctx, req.Address.Cep, req.Address.Rua, req.Address.Numero)
	if err != nil {
		return nil, err
	}

	if address != nil {
		bound, err := s.places.GetByAddressID(ctx, address.ID)
		if err != nil {
			return nil, err
		}
		if bound != nil {
			return nil, ErrAddressTaken
		}
	} else {
		address = &domain.Address{
			Cep:         req.Address.Cep,
			Pais:        req.Address.Pais,
			Estado:      req.Address.Estado,
			Cidade:      req.Address.Cidade,
			Bairro:      req.Address.Bairro,
			Rua:         req.Address.Rua,
			Numero:      req.Address.Numero,
			Complemento: req.Address.Complemento,
		}
	}

	place := &domain.Place{
		Name:         req.Name,
		Description:  req.Description,
		PricePerHour: req.PricePerHour,
		Availability: availability,
		OwnerID:      ownerID,
	}

	if err := s.places.CreateWithAddress(ctx, address, place); err != nil {
		return nil, err
	}

	s.invalidateListing(ctx)
	return place, nil
}

func (s *Service) GetAll(ctx context.Context) ([]domain.Place, error) {
	return s.places.GetAll(ctx)
}

func (s *Service) GetByOwner(ctx context.Context, ownerID string) ([]domain.Place, error) {
	return s.places.GetByOwner(ctx, ownerID)
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Place, error) {
	p, err := s.places.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, actorID string, actorRole domain.Role, id string, req UpdatePlaceRequest) (*domain.Place, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !authz.Allowed(actorRole, actorID, p.OwnerID, domain.RoleAdmin) {
		return nil, ErrForbidden
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.PricePerHour != nil {
		if *req.PricePerHour <= 0 {
			return nil, ErrValidation
		}
		p.PricePerHour = *req.PricePerHour
	}
	if req.Availability != nil {
		availability, err := parseAvailability(req.Availability)
		if err != nil {
			return nil, err
		}
		p.Availability = availability
	}

	if err := s.places.Update(ctx, p); err != nil {
		return nil, err
	}

	s.invalidateListing(ctx)
	return p, nil
}

// Delete refuses while any rent on the place is still confirmado.
func (s *Service) Delete(ctx context.Context, actorID string, actorRole domain.Role, id string) error {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !authz.Allowed(actorRole, actorID, p.OwnerID, domain.RoleAdmin) {
		return ErrForbidden
	}

	active, err := s.rents.CountByPlaceAndStatus(ctx, id, domain.RentConfirmado)
	if err != nil {
		return err
	}
	if active > 0 {
		return ErrActiveRents
	}

	if err := s.places.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateListing(ctx)
	return nil
}

func (s *Service) AddEquipment(ctx context.Context, actorID string, actorRole domain.Role, placeID string, req AddEquipmentRequest) (*domain.Equipment, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrValidation
	}

	p, err := s.GetByID(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if !authz.Allowed(actorRole, actorID, p.OwnerID, domain.RoleAdmin) {
		return nil, ErrForbidden
	}

	existing, err := s.equipments.FindByPlaceAndName(ctx, placeID, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEquipmentTaken
	}

	equipment := &domain.Equipment{
		Name:              req.Name,
		Description:       req.Description,
		PricePerHour:      req.PricePerHour,
		QuantityAvailable: req.QuantityAvailable,
		PlaceID:           placeID,
	}
	if err := s.equipments.Create(ctx, equipment); err != nil {
		return nil, err
	}
	return equipment, nil
}

func (s *Service) RemoveEquipment(ctx context.Context, actorID string, actorRole domain.Role, placeID, equipmentID string) error {
	p, err := s.GetByID(ctx, placeID)
	if err != nil {
		return err
	}
	if !authz.Allowed(actorRole, actorID, p.OwnerID, domain.RoleAdmin) {
		return ErrForbidden
	}

	equipment, err := s.equipments.GetByID(ctx, equipmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEquipmentNotFound
		}
		return err
	}
	if equipment.PlaceID != placeID {
		return ErrEquipmentNotFound
	}

	return s.equipments.Delete(ctx, equipmentID)
}

func (s *Service) GetEquipments(ctx context.Context, placeID string) ([]domain.Equipment, error) {
	if _, err := s.GetByID(ctx, placeID); err != nil {
		return nil, err
	}
	return s.equipments.GetByPlace(ctx, placeID)
}

// GetAvailable returns one listing page, served from redis when warm.
func (s *Service) GetAvailable(ctx context.Context, page, limit int) (*AvailablePlacesPage, error) {
	if page < 1 || limit < 1 {
		return nil, ErrValidation
	}

	key := fmt.Sprintf("%sp%d:l%d", availableCachePrefix, page, limit)
	var cached AvailablePlacesPage
	if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return &cached, nil
	}

	places, total, err := s.places.FindAvailable(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	result := &AvailablePlacesPage{
		Total:       total,
		TotalPages:  int(math.Ceil(float64(total) / float64(limit))),
		CurrentPage: page,
		PageSize:    limit,
		Places:      places,
	}

	_ = s.cache.SetJSON(ctx, key, result, availableCacheTTL)
	return result, nil
}

func (s *Service) invalidateListing(ctx context.Context) {
	_ = s.cache.InvalidatePrefix(ctx, availableCachePrefix)
}

func parseAvailability(entries []AvailabilityRequest) ([]domain.Availability, error) {
	out := make([]domain.Availability, 0, len(entries))
	for _, e := range entries {
		if e.Day == "" || len(e.AvailableTurns) == 0 {
			return nil, ErrValidation
		}

		turns := make([]domain.Turn, 0, len(e.AvailableTurns))
		for _, t := range e.AvailableTurns {
			turn, ok := domain.ParseTurn(t)
			if !ok {
				return nil, ErrValidation
			}
			turns = append(turns, turn)
		}
		out = append(out, domain.Availability{Day: e.Day, AvailableTurns: turns})
	}
	return out, nil
}
