package rent

import (
	"context"
	"errors"
	"math"

	"gorm.io/gorm"

	"github.com/bryerblack/projeto-principios-dev-web/internal/domain"
	"github.com/bryerblack/projeto-principios-dev-web/internal/pkg/authz"
)

type Service struct {
	rents  RentRepository
	places PlaceGetter
	users  UserGetter
}

func NewService(rents RentRepository, places PlaceGetter, users UserGetter) *Service {
	return &Service{rents: rents, places: places, users: users}
}

// Request creates a rent in pendente state. The total is the sum of each
// schedule's duration in hours times the place's hourly price.
//
// Schedules are not compared against existing rents for the same place, so
// double bookings are possible. See the double-booking note in DESIGN.md
// before changing this.
func (s *Service) Request(ctx context.Context, renterID string, req CreateRentRequest) (*domain.Rent, error) {
	if len(req.Schedules) == 0 || req.PaymentMethod == "" {
		return nil, ErrValidation
	}

	place, err := s.places.GetByID(ctx, req.PlaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlaceNotFound
		}
		return nil, err
	}

	if place.OwnerID == renterID {
		return nil, ErrOwnPlace
	}

	schedules := make([]domain.RentSchedule, 0, len(req.Schedules))
	var total float64
	for _, sc := range req.Schedules {
		if !sc.EndDate.After(sc.StartDate) {
			return nil, ErrValidation
		}
		total += sc.EndDate.Sub(sc.StartDate).Hours() * place.PricePerHour
		schedules = append(schedules, domain.RentSchedule{
			StartDate: sc.StartDate,
			EndDate:   sc.EndDate,
		})
	}
	total = math.Round(total*100) / 100

	rt := &domain.Rent{
		PlaceID:       place.ID,
		OwnerID:       place.OwnerID,
		RenterID:      renterID,
		TotalValue:    total,
		Status:        domain.RentPendente,
		PaymentMethod: req.PaymentMethod,
		Schedules:     schedules,
	}

	if err := s.rents.Create(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

// Review is the owner's approve/reject decision on a pending rent.
func (s *Service) Review(ctx context.Context, rentID, actorID string, actorRole domain.Role, newStatusRaw string) (*domain.Rent, error) {
	newStatus, ok := domain.ParseRentStatus(newStatusRaw)
	if !ok || (newStatus != domain.RentConfirmado && newStatus != domain.RentRejeitado) {
		return nil, ErrInvalidStatus
	}

	rt, err := s.GetByID(ctx, rentID)
	if err != nil {
		return nil, err
	}

	if !authz.Allowed(actorRole, actorID, rt.OwnerID, domain.RoleAdmin) {
		return nil, ErrForbidden
	}

	if !rt.Status.CanTransition(newStatus) {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.rents.UpdateStatus(ctx, rentID, newStatus); err != nil {
		return nil, err
	}
	rt.Status = newStatus
	return rt, nil
}

// Cancel is available to the renter while the request is still pendente.
func (s *Service) Cancel(ctx context.Context, rentID, actorID string, actorRole domain.Role) (*domain.Rent, error) {
	rt, err := s.GetByID(ctx, rentID)
	if err != nil {
		return nil, err
	}

	if !authz.Allowed(actorRole, actorID, rt.RenterID, domain.RoleAdmin) {
		return nil, ErrForbidden
	}

	if rt.Status != domain.RentPendente {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.rents.UpdateStatus(ctx, rentID, domain.RentCancelado); err != nil {
		return nil, err
	}
	rt.Status = domain.RentCancelado
	return rt, nil
}

// Finalize closes a confirmed rent. Either party may finalize.
func (s *Service) Finalize(ctx context.Context, rentID, actorID string, actorRole domain.Role) (*domain.Rent, error) {
	rt, err := s.GetByID(ctx, rentID)
	if err != nil {
		return nil, err
	}

	participant := actorID == rt.OwnerID || actorID == rt.RenterID
	if !participant && !authz.Allowed(actorRole, actorID, "", domain.RoleAdmin) {
		return nil, ErrForbidden
	}

	if rt.Status != domain.RentConfirmado {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.rents.UpdateStatus(ctx, rentID, domain.RentFinalizado); err != nil {
		return nil, err
	}
	rt.Status = domain.RentFinalizado
	return rt, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Rent, error) {
	rt, err := s.rents.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rt, nil
}

func (s *Service) GetAll(ctx context.Context) ([]domain.Rent, error) {
	return s.rents.GetAll(ctx)
}

// GetMine returns the user's rents (as owner or renter) enriched with
// place/owner/renter summaries. Missing referenced rows degrade to nil
// summaries instead of failing the listing.
func (s *Service) GetMine(ctx context.Context, userID string) ([]RentDetails, error) {
	rents, err := s.rents.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]RentDetails, 0, len(rents))
	for _, rt := range rents {
		details := RentDetails{
			ID:            rt.ID,
			Status:        rt.Status,
			TotalValue:    rt.TotalValue,
			PaymentMethod: rt.PaymentMethod,
			Schedules:     rt.Schedules,
		}

		place, err := s.places.GetByID(ctx, rt.PlaceID)
		switch {
		case err == nil:
			details.Place = &PlaceSummary{
				ID:           place.ID,
				Name:         place.Name,
				Description:  place.Description,
				PricePerHour: place.PricePerHour,
			}
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, err
		}

		owner, err := s.users.GetByID(ctx, rt.OwnerID)
		switch {
		case err == nil:
			details.Owner = &UserSummary{ID: owner.ID, Name: owner.Name, Email: owner.Email}
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, err
		}

		renter, err := s.users.GetByID(ctx, rt.RenterID)
		switch {
		case err == nil:
			details.Renter = &UserSummary{ID: renter.ID, Name: renter.Name, Email: renter.Email}
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, err
		}

		out = append(out, details)
	}
	return out, nil
}

// Update is the administrative edit; schedules replace the stored ones when
// present.
func (s *Service) Update(ctx context.Context, actorRole domain.Role, id string, req UpdateRentRequest) (*domain.Rent, error) {
	if actorRole != domain.RoleAdmin {
		return nil, ErrForbidden
	}

	rt, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.TotalValue != nil {
		rt.TotalValue = *req.TotalValue
	}
	if req.Status != nil {
		status, ok := domain.ParseRentStatus(*req.Status)
		if !ok {
			return nil, ErrInvalidStatus
		}
		rt.Status = status
	}
	if req.PaymentMethod != nil {
		rt.PaymentMethod = *req.PaymentMethod
	}
	if req.Schedules != nil {
		schedules := make([]domain.RentSchedule, 0, len(req.Schedules))
		for _, sc := range req.Schedules {
			if !sc.EndDate.After(sc.StartDate) {
				return nil, ErrValidation
			}
			schedules = append(schedules, domain.RentSchedule{StartDate: sc.StartDate, EndDate: sc.EndDate})
		}
		rt.Schedules = schedules
	} else {
		rt.Schedules = nil
	}

	if err := s.rents.Update(ctx, rt); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, actorRole domain.Role, id string) error {
	if actorRole != domain.RoleAdmin {
		return ErrForbidden
	}

	if err := s.rents.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
