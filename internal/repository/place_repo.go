package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bryerblack/projeto-principios-dev-web/internal/domain"
)

type PlaceRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) *PlaceRepository {
	return &PlaceRepository{db: db}
}

type placeModel struct {
	ID            string    `gorm:"column:id;primaryKey"`
	Name          string    `gorm:"column:name"`
	AddressID     string    `gorm:"column:address_id;index"`
	Description   *string   `gorm:"column:description"`
	PricePerHour  float64   `gorm:"column:price_per_hour"`
	Availability  string    `gorm:"column:availability;type:text"`
	OwnerID       string    `gorm:"column:owner_id;index"`
	AverageRating float64   `gorm:"column:average_rating"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (placeModel) TableName() string { return "places" }

func toDomainPlace(m placeModel) *domain.Place {
	var description string
	if m.Description != nil {
		description = *m.Description
	}

	var availability []domain.Availability
	if m.Availability != "" {
		_ = json.Unmarshal([]byte(m.Availability), &availability)
	}

	return &domain.Place{
		ID:            m.ID,
		Name:          m.Name,
		AddressID:     m.AddressID,
		Description:   description,
		PricePerHour:  m.PricePerHour,
		Availability:  availability,
		OwnerID:       m.OwnerID,
		AverageRating: m.AverageRating,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toPlaceModel(p *domain.Place) placeModel {
	var description *string
	if p.Description != "" {
		v := p.Description
		description = &v
	}

	availability := "[]"
	if p.Availability != nil {
		if raw, err := json.Marshal(p.Availability); err == nil {
			availability = string(raw)
		}
	}

	return placeModel{
		ID:            p.ID,
		Name:          p.Name,
		AddressID:     p.AddressID,
		Description:   description,
		PricePerHour:  p.PricePerHour,
		Availability:  availability,
		OwnerID:       p.OwnerID,
		AverageRating: p.AverageRating,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// CreateWithAddress persists the address (when still unsaved) and the place
// in a single transaction, so a failure never leaves an orphaned address.
func (r *PlaceRepository) CreateWithAddress(ctx context.Context, address *domain.Address, place *domain.Place) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if address.ID == "" {
			address.ID = uuid.NewString()
			am := toAddressModel(address)
			if err := tx.Create(&am).Error; err != nil {
				return err
			}
			*address = *toDomainAddress(am)
		}

		place.AddressID = address.ID
		if place.ID == "" {
			place.ID = uuid.NewString()
		}
		pm := toPlaceModel(place)
		if err := tx.Create(&pm).Error; err != nil {
			return err
		}
		*place = *toDomainPlace(pm)
		place.Address = address
		return nil
	})
}

func (r *PlaceRepository) GetByID(ctx context.Context, id string) (*domain.Place, error) {
	var m placeModel
	if tx := r.db.WithContext(ctx).First(&m, "id = ?", id); tx.Error != nil {
		return nil, tx.Error
	}

	place := toDomainPlace(m)
	if err := r.attachAddress(ctx, place); err != nil {
		return nil, err
	}
	return place, nil
}

func (r *PlaceRepository) GetAll(ctx context.Context) ([]domain.Place, error) {
	var models []placeModel
	if tx := r.db.WithContext(ctx).Order("created_at DESC").Find(&models); tx.Error != nil {
		return nil, tx.Error
	}
	return r.toDomainPlaces(ctx, models)
}

func (r *PlaceRepository) GetByOwner(ctx context.Context, ownerID string) ([]domain.Place, error) {
	var models []placeModel
	tx := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return r.toDomainPlaces(ctx, models)
}

// GetByAddressID returns (nil, nil) when no place is bound to the address.
func (r *PlaceRepository) GetByAddressID(ctx context.Context, addressID string) (*domain.Place, error) {
	var m placeModel
	tx := r.db.WithContext(ctx).Where("address_id = ?", addressID).First(&m)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainPlace(m), nil
}

// FindAvailable returns one page of places ordered most recent first plus
// the total row count.
func (r *PlaceRepository) FindAvailable(ctx context.Context, limit, offset int) ([]domain.Place, int64, error) {
	var total int64
	if tx := r.db.WithContext(ctx).Model(&placeModel{}).Count(&total); tx.Error != nil {
		return nil, 0, tx.Error
	}

	var models []placeModel
	tx := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&models)
	if tx.Error != nil {
		return nil, 0, tx.Error
	}

	places, err := r.toDomainPlaces(ctx, models)
	if err != nil {
		return nil, 0, err
	}
	return places, total, nil
}

func (r *PlaceRepository) Update(ctx context.Context, p *domain.Place) error {
	m := toPlaceModel(p)
	tx := r.db.WithContext(ctx).Model(&placeModel{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"name":           m.Name,
			"description":    m.Description,
			"price_per_hour": m.PricePerHour,
			"availability":   m.Availability,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PlaceRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&equipmentModel{}, "place_id = ?", id).Error; err != nil {
			return err
		}

		res := tx.Delete(&placeModel{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *PlaceRepository) attachAddress(ctx context.Context, place *domain.Place) error {
	if place.AddressID == "" {
		return nil
	}

	var am addressModel
	tx := r.db.WithContext(ctx).First(&am, "id = ?", place.AddressID)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil
	}
	if tx.Error != nil {
		return tx.Error
	}
	place.Address = toDomainAddress(am)
	return nil
}

func (r *PlaceRepository) toDomainPlaces(ctx context.Context, models []placeModel) ([]domain.Place, error) {
	out := make([]domain.Place, 0, len(models))
	for _, m := range models {
		place := toDomainPlace(m)
		if err := r.attachAddress(ctx, place); err != nil {
			return nil, err
		}
		out = append(out, *place)
	}
	return out, nil
}
