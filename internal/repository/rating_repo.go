package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bryerblack/projeto-principios-dev-web/internal/domain"
)

type RatingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

type ratingModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	ReviewerID  string    `gorm:"column:reviewer_id;index"`
	ReviewedID  string    `gorm:"column:reviewed_id;index"`
	RentID      string    `gorm:"column:rent_id;index"`
	Description *string   `gorm:"column:description"`
	Rating      float64   `gorm:"column:rating"`
	Date        time.Time `gorm:"column:date"`
}

func (ratingModel) TableName() string { return "ratings" }

func toDomainRating(m ratingModel) *domain.Rating {
	var description string
	if m.Description != nil {
		description = *m.Description
	}

	return &domain.Rating{
		ID:          m.ID,
		ReviewerID:  m.ReviewerID,
		ReviewedID:  m.ReviewedID,
		RentID:      m.RentID,
		Description: description,
		Rating:      m.Rating,
		Date:        m.Date,
	}
}

func toRatingModel(rt *domain.Rating) ratingModel {
	var description *string
	if rt.Description != "" {
		v := rt.Description
		description = &v
	}

	return ratingModel{
		ID:          rt.ID,
		ReviewerID:  rt.ReviewerID,
		ReviewedID:  rt.ReviewedID,
		RentID:      rt.RentID,
		Description: description,
		Rating:      rt.Rating,
		Date:        rt.Date,
	}
}

// CreateForUser inserts the rating and refreshes the reviewed user's
// average in one transaction.
func (r *RatingRepository) CreateForUser(ctx context.Context, rt *domain.Rating) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := insertRating(tx, rt); err != nil {
			return err
		}
		return recalcAverage(tx, &userModel{}, rt.ReviewedID)
	})
}

// CreateForPlace is CreateForUser with the place aggregate instead.
func (r *RatingRepository) CreateForPlace(ctx context.Context, rt *domain.Rating) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := insertRating(tx, rt); err != nil {
			return err
		}
		return recalcAverage(tx, &placeModel{}, rt.ReviewedID)
	})
}

func insertRating(tx *gorm.DB, rt *domain.Rating) error {
	if rt.ID == "" {
		rt.ID = uuid.NewString()
	}
	if rt.Date.IsZero() {
		rt.Date = time.Now()
	}
	m := toRatingModel(rt)
	if err := tx.Create(&m).Error; err != nil {
		return err
	}
	*rt = *toDomainRating(m)
	return nil
}

// recalcAverage writes the arithmetic mean of all ratings aimed at
// reviewedID into the aggregate row. No-op when no ratings exist.
func recalcAverage(tx *gorm.DB, model interface{}, reviewedID string) error {
	var count int64
	if err := tx.Model(&ratingModel{}).Where("reviewed_id = ?", reviewedID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return nil
	}

	var average float64
	err := tx.Model(&ratingModel{}).
		Where("reviewed_id = ?", reviewedID).
		Select("AVG(rating)").
		Scan(&average).Error
	if err != nil {
		return err
	}

	return tx.Model(model).Where("id = ?", reviewedID).Update("average_rating", average).Error
}

func (r *RatingRepository) RecalcUserAverage(ctx context.Context, userID string) error {
	return recalcAverage(r.db.WithContext(ctx), &userModel{}, userID)
}

func (r *RatingRepository) RecalcPlaceAverage(ctx context.Context, placeID string) error {
	return recalcAverage(r.db.WithContext(ctx), &placeModel{}, placeID)
}

func (r *RatingRepository) GetByID(ctx context.Context, id string) (*domain.Rating, error) {
	var m ratingModel
	if tx := r.db.WithContext(ctx).First(&m, "id = ?", id); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRating(m), nil
}

func (r *RatingRepository) GetAll(ctx context.Context) ([]domain.Rating, error) {
	var models []ratingModel
	if tx := r.db.WithContext(ctx).Order("date DESC").Find(&models); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRatings(models), nil
}

func (r *RatingRepository) GetByReviewer(ctx context.Context, reviewerID string) ([]domain.Rating, error) {
	var models []ratingModel
	tx := r.db.WithContext(ctx).Where("reviewer_id = ?", reviewerID).Order("date DESC").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRatings(models), nil
}

func (r *RatingRepository) GetByReviewed(ctx context.Context, reviewedID string) ([]domain.Rating, error) {
	var models []ratingModel
	tx := r.db.WithContext(ctx).Where("reviewed_id = ?", reviewedID).Order("date DESC").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRatings(models), nil
}

// Delete removes the rating and refreshes the former target's aggregates,
// both user and place side, since only the reviewed id is stored.
func (r *RatingRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m ratingModel
		if err := tx.First(&m, "id = ?", id).Error; err != nil {
			return err
		}

		if err := tx.Delete(&ratingModel{}, "id = ?", id).Error; err != nil {
			return err
		}

		if err := recalcAverage(tx, &userModel{}, m.ReviewedID); err != nil {
			return err
		}
		return recalcAverage(tx, &placeModel{}, m.ReviewedID)
	})
}

func toDomainRatings(models []ratingModel) []domain.Rating {
	out := make([]domain.Rating, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainRating(m))
	}
	return out
}
