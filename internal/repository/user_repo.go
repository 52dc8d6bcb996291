package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bryerblack/projeto-principios-dev-web/internal/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userModel struct {
	ID            string    `gorm:"column:id;primaryKey"`
	Name          string    `gorm:"column:name"`
	Email         string    `gorm:"column:email;uniqueIndex"`
	PasswordHash  string    `gorm:"column:password_hash"`
	Phone         string    `gorm:"column:phone"`
	Profession    *string   `gorm:"column:profession"`
	AverageRating float64   `gorm:"column:average_rating"`
	Role          string    `gorm:"column:role"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

func toDomainUser(m userModel) *domain.User {
	var profession string
	if m.Profession != nil {
		profession = *m.Profession
	}

	return &domain.User{
		ID:            m.ID,
		Name:          m.Name,
		Email:         m.Email,
		PasswordHash:  m.PasswordHash,
		Phone:         m.Phone,
		Profession:    profession,
		AverageRating: m.AverageRating,
		Role:          domain.Role(m.Role),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toUserModel(u *domain.User) userModel {
	var profession *string
	if u.Profession != "" {
		v := u.Profession
		profession = &v
	}

	return userModel{
		ID:            u.ID,
		Name:          u.Name,
		Email:         strings.ToLower(strings.TrimSpace(u.Email)),
		PasswordHash:  u.PasswordHash,
		Phone:         u.Phone,
		Profession:    profession,
		AverageRating: u.AverageRating,
		Role:          string(u.Role),
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	m := toUserModel(u)
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*u = *toDomainUser(m)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var m userModel
	if tx := r.db.WithContext(ctx).First(&m, "id = ?", id); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m userModel
	email = strings.ToLower(strings.TrimSpace(email))
	if tx := r.db.WithContext(ctx).First(&m, "email = ?", email); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) GetAll(ctx context.Context) ([]domain.User, error) {
	var models []userModel
	if tx := r.db.WithContext(ctx).Order("created_at").Find(&models); tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.User, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainUser(m))
	}
	return out, nil
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	return r.db.WithContext(ctx).Model(&userModel{}).
		Where("id = ?", u.ID).
		Updates(map[string]interface{}{
			"name":       m.Name,
			"email":      m.Email,
			"phone":      m.Phone,
			"profession": m.Profession,
			"role":       m.Role,
		}).Error
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return r.db.WithContext(ctx).Model(&userModel{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash).Error
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Delete(&userModel{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
