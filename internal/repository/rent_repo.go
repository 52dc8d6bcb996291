package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bryerblack/projeto-principios-dev-web/internal/domain"
)

type RentRepository struct {
	db *gorm.DB
}

func NewRentRepository(db *gorm.DB) *RentRepository {
	return &RentRepository{db: db}
}

type rentModel struct {
	ID            string    `gorm:"column:id;primaryKey"`
	PlaceID       string    `gorm:"column:place_id;index"`
	OwnerID       string    `gorm:"column:owner_id;index"`
	RenterID      string    `gorm:"column:renter_id;index"`
	TotalValue    float64   `gorm:"column:total_value"`
	Status        string    `gorm:"column:status"`
	PaymentMethod string    `gorm:"column:payment_method"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (rentModel) TableName() string { return "rents" }

type rentScheduleModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	RentID    string    `gorm:"column:rent_id;index"`
	StartDate time.Time `gorm:"column:start_date"`
	EndDate   time.Time `gorm:"column:end_date"`
}

func (rentScheduleModel) TableName() string { return "rent_schedules" }

func toDomainRent(m rentModel) *domain.Rent {
	return &domain.Rent{
		ID:            m.ID,
		PlaceID:       m.PlaceID,
		OwnerID:       m.OwnerID,
		RenterID:      m.RenterID,
		TotalValue:    m.TotalValue,
		Status:        domain.RentStatus(m.Status),
		PaymentMethod: m.PaymentMethod,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toRentModel(rt *domain.Rent) rentModel {
	return rentModel{
		ID:            rt.ID,
		PlaceID:       rt.PlaceID,
		OwnerID:       rt.OwnerID,
		RenterID:      rt.RenterID,
		TotalValue:    rt.TotalValue,
		Status:        string(rt.Status),
		PaymentMethod: rt.PaymentMethod,
		CreatedAt:     rt.CreatedAt,
		UpdatedAt:     rt.UpdatedAt,
	}
}

func toDomainSchedule(m rentScheduleModel) domain.RentSchedule {
	return domain.RentSchedule{
		ID:        m.ID,
		RentID:    m.RentID,
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
	}
}

// Create inserts the rent row and its schedule rows atomically.
func (r *RentRepository) Create(ctx context.Context, rt *domain.Rent) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if rt.ID == "" {
			rt.ID = uuid.NewString()
		}
		m := toRentModel(rt)
		if err := tx.Create(&m).Error; err != nil {
			return err
		}

		for i := range rt.Schedules {
			rt.Schedules[i].ID = uuid.NewString()
			rt.Schedules[i].RentID = rt.ID
			sm := rentScheduleModel{
				ID:        rt.Schedules[i].ID,
				RentID:    rt.ID,
				StartDate: rt.Schedules[i].StartDate,
				EndDate:   rt.Schedules[i].EndDate,
			}
			if err := tx.Create(&sm).Error; err != nil {
				return err
			}
		}

		schedules := rt.Schedules
		*rt = *toDomainRent(m)
		rt.Schedules = schedules
		return nil
	})
}

func (r *RentRepository) GetByID(ctx context.Context, id string) (*domain.Rent, error) {
	var m rentModel
	if tx := r.db.WithContext(ctx).First(&m, "id = ?", id); tx.Error != nil {
		return nil, tx.Error
	}

	rent := toDomainRent(m)
	if err := r.attachSchedules(ctx, rent); err != nil {
		return nil, err
	}
	return rent, nil
}

func (r *RentRepository) GetAll(ctx context.Context) ([]domain.Rent, error) {
	var models []rentModel
	if tx := r.db.WithContext(ctx).Order("created_at DESC").Find(&models); tx.Error != nil {
		return nil, tx.Error
	}
	return r.toDomainRents(ctx, models)
}

// GetByUser returns every rent where the user participates as owner or
// renter.
func (r *RentRepository) GetByUser(ctx context.Context, userID string) ([]domain.Rent, error) {
	var models []rentModel
	tx := r.db.WithContext(ctx).
		Where("owner_id = ? OR renter_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return r.toDomainRents(ctx, models)
}

func (r *RentRepository) CountByPlaceAndStatus(ctx context.Context, placeID string, status domain.RentStatus) (int64, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&rentModel{}).
		Where("place_id = ? AND status = ?", placeID, string(status)).
		Count(&count)
	return count, tx.Error
}

func (r *RentRepository) UpdateStatus(ctx context.Context, id string, status domain.RentStatus) error {
	tx := r.db.WithContext(ctx).Model(&rentModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Update rewrites the rent row and replaces its schedules wholesale, in one
// transaction.
func (r *RentRepository) Update(ctx context.Context, rt *domain.Rent) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := toRentModel(rt)
		res := tx.Model(&rentModel{}).
			Where("id = ?", rt.ID).
			Updates(map[string]interface{}{
				"total_value":    m.TotalValue,
				"status":         m.Status,
				"payment_method": m.PaymentMethod,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if rt.Schedules == nil {
			return nil
		}

		if err := tx.Delete(&rentScheduleModel{}, "rent_id = ?", rt.ID).Error; err != nil {
			return err
		}
		for i := range rt.Schedules {
			rt.Schedules[i].ID = uuid.NewString()
			rt.Schedules[i].RentID = rt.ID
			sm := rentScheduleModel{
				ID:        rt.Schedules[i].ID,
				RentID:    rt.ID,
				StartDate: rt.Schedules[i].StartDate,
				EndDate:   rt.Schedules[i].EndDate,
			}
			if err := tx.Create(&sm).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes the rent and its schedules (cascade) atomically.
func (r *RentRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&rentScheduleModel{}, "rent_id = ?", id).Error; err != nil {
			return err
		}

		res := tx.Delete(&rentModel{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *RentRepository) attachSchedules(ctx context.Context, rent *domain.Rent) error {
	var models []rentScheduleModel
	tx := r.db.WithContext(ctx).
		Where("rent_id = ?", rent.ID).
		Order("start_date").
		Find(&models)
	if tx.Error != nil {
		return tx.Error
	}

	rent.Schedules = make([]domain.RentSchedule, 0, len(models))
	for _, m := range models {
		rent.Schedules = append(rent.Schedules, toDomainSchedule(m))
	}
	return nil
}

func (r *RentRepository) toDomainRents(ctx context.Context, models []rentModel) ([]domain.Rent, error) {
	out := make([]domain.Rent, 0, len(models))
	for _, m := range models {
		rent := toDomainRent(m)
		if err := r.attachSchedules(ctx, rent); err != nil {
			return nil, err
		}
		out = append(out, *rent)
	}
	return out, nil
}
