package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/bryerblack/projeto-principios-dev-web/internal/domain"
)

type AddressRepository struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) *AddressRepository {
	return &AddressRepository{db: db}
}

type addressModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	Cep         string    `gorm:"column:cep;index:idx_addresses_dedup"`
	Pais        string    `gorm:"column:pais"`
	Estado      string    `gorm:"column:estado"`
	Cidade      string    `gorm:"column:cidade"`
	Bairro      string    `gorm:"column:bairro"`
	Rua         string    `gorm:"column:rua;index:idx_addresses_dedup"`
	Numero      string    `gorm:"column:numero;index:idx_addresses_dedup"`
	Complemento *string   `gorm:"column:complemento"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (addressModel) TableName() string { return "addresses" }

func toDomainAddress(m addressModel) *domain.Address {
	var complemento string
	if m.Complemento != nil {
		complemento = *m.Complemento
	}

	return &domain.Address{
		ID:          m.ID,
		Cep:         m.Cep,
		Pais:        m.Pais,
		Estado:      m.Estado,
		Cidade:      m.Cidade,
		Bairro:      m.Bairro,
		Rua:         m.Rua,
		Numero:      m.Numero,
		Complemento: complemento,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toAddressModel(a *domain.Address) addressModel {
	var complemento *string
	if a.Complemento != "" {
		v := a.Complemento
		complemento = &v
	}

	return addressModel{
		ID:          a.ID,
		Cep:         a.Cep,
		Pais:        a.Pais,
		Estado:      a.Estado,
		Cidade:      a.Cidade,
		Bairro:      a.Bairro,
		Rua:         a.Rua,
		Numero:      a.Numero,
		Complemento: complemento,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// FindByCepRuaNumero resolves the dedup triple. Returns (nil, nil) when no
// address matches.
func (r *AddressRepository) FindByCepRuaNumero(ctx context.Context, cep, rua, numero string) (*domain.Address, error) {
	var m addressModel
	tx := r.db.WithContext(ctx).
		Where("cep = ? AND rua = ? AND numero = ?", cep, rua, numero).
		First(&m)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainAddress(m), nil
}
