package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bryerblack/projeto-principios-dev-web/internal/domain"
)

type EquipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

type equipmentModel struct {
	ID                string    `gorm:"column:id;primaryKey"`
	Name              string    `gorm:"column:name"`
	Description       *string   `gorm:"column:description"`
	PricePerHour      float64   `gorm:"column:price_per_hour"`
	QuantityAvailable int       `gorm:"column:quantity_available"`
	PlaceID           string    `gorm:"column:place_id;index"`
	CreatedAt         time.Time `gorm:"column:created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at"`
}

func (equipmentModel) TableName() string { return "equipments" }

func toDomainEquipment(m equipmentModel) *domain.Equipment {
	var description string
	if m.Description != nil {
		description = *m.Description
	}

	return &domain.Equipment{
		ID:                m.ID,
		Name:              m.Name,
		Description:       description,
		PricePerHour:      m.PricePerHour,
		QuantityAvailable: m.QuantityAvailable,
		PlaceID:           m.PlaceID,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func toEquipmentModel(e *domain.Equipment) equipmentModel {
	var description *string
	if e.Description != "" {
		v := e.Description
		description = &v
	}

	return equipmentModel{
		ID:                e.ID,
		Name:              e.Name,
		Description:       description,
		PricePerHour:      e.PricePerHour,
		QuantityAvailable: e.QuantityAvailable,
		PlaceID:           e.PlaceID,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func (r *EquipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	m := toEquipmentModel(e)
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*e = *toDomainEquipment(m)
	return nil
}

func (r *EquipmentRepository) GetByID(ctx context.Context, id string) (*domain.Equipment, error) {
	var m equipmentModel
	if tx := r.db.WithContext(ctx).First(&m, "id = ?", id); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainEquipment(m), nil
}

func (r *EquipmentRepository) GetByPlace(ctx context.Context, placeID string) ([]domain.Equipment, error) {
	var models []equipmentModel
	tx := r.db.WithContext(ctx).Where("place_id = ?", placeID).Order("name").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Equipment, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainEquipment(m))
	}
	return out, nil
}

// FindByPlaceAndName backs the service-level (place, name) uniqueness rule.
// Returns (nil, nil) when the pair is free.
func (r *EquipmentRepository) FindByPlaceAndName(ctx context.Context, placeID, name string) (*domain.Equipment, error) {
	var m equipmentModel
	tx := r.db.WithContext(ctx).Where("place_id = ? AND name = ?", placeID, name).First(&m)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainEquipment(m), nil
}

func (r *EquipmentRepository) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Delete(&equipmentModel{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
