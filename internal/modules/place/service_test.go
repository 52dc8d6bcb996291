package place

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/bryerblack/projeto-principios-dev-web/internal/domain"
)

type MockPlaceRepository struct {
	mock.Mock
}

func (m *MockPlaceRepository) CreateWithAddress(ctx context.Context, address *domain.Address, place *domain.Place) error {
	args := m.Called(ctx, address, place)
	if place != nil && place.ID == "" {
		place.ID = "place-1"
	}
	if address != nil && address.ID == "" {
		address.ID = "addr-1"
	}
	if place != nil && address != nil {
		place.AddressID = address.ID
	}
	return args.Error(0)
}

func (m *MockPlaceRepository) GetByID(ctx context.Context, id string) (*domain.Place, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Place), args.Error(1)
}

func (m *MockPlaceRepository) GetAll(ctx context.Context) ([]domain.Place, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Place), args.Error(1)
}

func (m *MockPlaceRepository) GetByOwner(ctx context.Context, ownerID string) ([]domain.Place, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Place), args.Error(1)
}

func (m *MockPlaceRepository) GetByAddressID(ctx context.Context, addressID string) (*domain.Place, error) {
	args := m.Called(ctx, addressID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Place), args.Error(1)
}

func (m *MockPlaceRepository) FindAvailable(ctx context.Context, limit, offset int) ([]domain.Place, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Place), args.Get(1).(int64), args.Error(2)
}

func (m *MockPlaceRepository) Update(ctx context.Context, p *domain.Place) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPlaceRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAddressRepository struct {
	mock.Mock
}

func (m *MockAddressRepository) FindByCepRuaNumero(ctx context.Context, cep, rua, numero string) (*domain.Address, error) {
	args := m.Called(ctx, cep, rua, numero)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Address), args.Error(1)
}

type MockEquipmentRepository struct {
	mock.Mock
}

func (m *MockEquipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	args := m.Called(ctx, e)
	if e != nil && e.ID == "" {
		e.ID = "equip-1"
	}
	return args.Error(0)
}

func (m *MockEquipmentRepository) GetByID(ctx context.Context, id string) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) GetByPlace(ctx context.Context, placeID string) ([]domain.Equipment, error) {
	args := m.Called(ctx, placeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) FindByPlaceAndName(ctx context.Context, placeID, name string) (*domain.Equipment, error) {
	args := m.Called(ctx, placeID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockRentCounter struct {
	mock.Mock
}

func (m *MockRentCounter) CountByPlaceAndStatus(ctx context.Context, placeID string, status domain.RentStatus) (int64, error) {
	args := m.Called(ctx, placeID, status)
	return args.Get(0).(int64), args.Error(1)
}

func newTestService() (*Service, *MockPlaceRepository, *MockAddressRepository, *MockEquipmentRepository, *MockRentCounter) {
	places := new(MockPlaceRepository)
	addresses := new(MockAddressRepository)
	equipments := new(MockEquipmentRepository)
	rents := new(MockRentCounter)
	return NewService(places, addresses, equipments, rents, nil), places, addresses, equipments, rents
}

func validCreateRequest() CreatePlaceRequest {
	return CreatePlaceRequest{
		Name: "Sala Centro",
		Address: AddressRequest{
			Cep:    "58433264",
			Pais:   "Brasil",
			Estado: "PB",
			Cidade: "Campina Grande",
			Bairro: "Centro",
			Rua:    "Rua das Rosas",
			Numero: "123",
		},
		PricePerHour: 50,
		Availability: []AvailabilityRequest{
			{Day: "segunda", AvailableTurns: []string{"manhã", "tarde"}},
		},
	}
}

func TestCreate_NewAddress(t *testing.T) {
	svc, places, addresses, _, _ := newTestService()

	addresses.On("FindByCepRuaNumero", mock.Anything, "58433264", "Rua das Rosas", "123").
		Return(nil, nil)
	places.On("CreateWithAddress", mock.Anything, mock.AnythingOfType("*domain.Address"), mock.AnythingOfType("*domain.Place")).
		Return(nil)

	p, err := svc.Create(context.Background(), "owner-1", validCreateRequest())

	assert.NoError(t, err)
	assert.Equal(t, "place-1", p.ID)
	assert.Equal(t, "owner-1", p.OwnerID)
	places.AssertExpectations(t)
}

func TestCreate_AddressAlreadyBound(t *testing.T) {
	svc, places, addresses, _, _ := newTestService()

	addresses.On("FindByCepRuaNumero", mock.Anything, "58433264", "Rua das Rosas", "123").
		Return(&domain.Address{ID: "addr-1"}, nil)
	places.On("GetByAddressID", mock.Anything, "addr-1").
		Return(&domain.Place{ID: "other-place"}, nil)

	_, err := svc.Create(context.Background(), "owner-1", validCreateRequest())

	assert.ErrorIs(t, err, ErrAddressTaken)
	places.AssertNotCalled(t, "CreateWithAddress", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreate_ReusesOrphanAddress(t *testing.T) {
	svc, places, addresses, _, _ := newTestService()

	addresses.On("FindByCepRuaNumero", mock.Anything, "58433264", "Rua das Rosas", "123").
		Return(&domain.Address{ID: "addr-1"}, nil)
	places.On("GetByAddressID", mock.Anything, "addr-1").Return(nil, nil)
	places.On("CreateWithAddress", mock.Anything, mock.AnythingOfType("*domain.Address"), mock.AnythingOfType("*domain.Place")).
		Return(nil)

	p, err := svc.Create(context.Background(), "owner-1", validCreateRequest())

	assert.NoError(t, err)
	assert.Equal(t, "addr-1", p.AddressID)
}

func TestCreate_UnknownTurnRejected(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	req := validCreateRequest()
	req.Availability = []AvailabilityRequest{{Day: "segunda", AvailableTurns: []string{"meio-dia"}}}

	_, err := svc.Create(context.Background(), "owner-1", req)

	assert.ErrorIs(t, err, ErrValidation)
}

func TestDelete_WithConfirmedRents(t *testing.T) {
	svc, places, _, _, rents := newTestService()

	places.On("GetByID", mock.Anything, "place-1").
		Return(&domain.Place{ID: "place-1", OwnerID: "owner-1"}, nil)
	rents.On("CountByPlaceAndStatus", mock.Anything, "place-1", domain.RentConfirmado).
		Return(int64(2), nil)

	err := svc.Delete(context.Background(), "owner-1", domain.RoleUser, "place-1")

	assert.ErrorIs(t, err, ErrActiveRents)
	places.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDelete_Success(t *testing.T) {
	svc, places, _, _, rents := newTestService()

	places.On("GetByID", mock.Anything, "place-1").
		Return(&domain.Place{ID: "place-1", OwnerID: "owner-1"}, nil)
	rents.On("CountByPlaceAndStatus", mock.Anything, "place-1", domain.RentConfirmado).
		Return(int64(0), nil)
	places.On("Delete", mock.Anything, "place-1").Return(nil)

	err := svc.Delete(context.Background(), "owner-1", domain.RoleUser, "place-1")

	assert.NoError(t, err)
}

func TestDelete_NonOwnerForbidden(t *testing.T) {
	svc, places, _, _, _ := newTestService()

	places.On("GetByID", mock.Anything, "place-1").
		Return(&domain.Place{ID: "place-1", OwnerID: "owner-1"}, nil)

	err := svc.Delete(context.Background(), "intruder", domain.RoleUser, "place-1")

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDelete_NotFound(t *testing.T) {
	svc, places, _, _, _ := newTestService()

	places.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	err := svc.Delete(context.Background(), "owner-1", domain.RoleUser, "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddEquipment_DuplicateName(t *testing.T) {
	svc, places, _, equipments, _ := newTestService()

	places.On("GetByID", mock.Anything, "place-1").
		Return(&domain.Place{ID: "place-1", OwnerID: "owner-1"}, nil)
	equipments.On("FindByPlaceAndName", mock.Anything, "place-1", "Projetor").
		Return(&domain.Equipment{ID: "equip-0"}, nil)

	_, err := svc.AddEquipment(context.Background(), "owner-1", domain.RoleUser, "place-1", AddEquipmentRequest{
		Name:              "Projetor",
		QuantityAvailable: 1,
	})

	assert.ErrorIs(t, err, ErrEquipmentTaken)
}

func TestAddEquipment_Success(t *testing.T) {
	svc, places, _, equipments, _ := newTestService()

	places.On("GetByID", mock.Anything, "place-1").
		Return(&domain.Place{ID: "place-1", OwnerID: "owner-1"}, nil)
	equipments.On("FindByPlaceAndName", mock.Anything, "place-1", "Projetor").Return(nil, nil)
	equipments.On("Create", mock.Anything, mock.AnythingOfType("*domain.Equipment")).Return(nil)

	equipment, err := svc.AddEquipment(context.Background(), "owner-1", domain.RoleUser, "place-1", AddEquipmentRequest{
		Name:              "Projetor",
		QuantityAvailable: 2,
	})

	assert.NoError(t, err)
	assert.Equal(t, "place-1", equipment.PlaceID)
}

func TestRemoveEquipment_WrongPlace(t *testing.T) {
	svc, places, _, equipments, _ := newTestService()

	places.On("GetByID", mock.Anything, "place-1").
		Return(&domain.Place{ID: "place-1", OwnerID: "owner-1"}, nil)
	equipments.On("GetByID", mock.Anything, "equip-1").
		Return(&domain.Equipment{ID: "equip-1", PlaceID: "other-place"}, nil)

	err := svc.RemoveEquipment(context.Background(), "owner-1", domain.RoleUser, "place-1", "equip-1")

	assert.ErrorIs(t, err, ErrEquipmentNotFound)
	equipments.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestGetAvailable_InvalidPage(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	_, err := svc.GetAvailable(context.Background(), 0, 10)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.GetAvailable(context.Background(), 1, 0)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetAvailable_Pagination(t *testing.T) {
	svc, places, _, _, _ := newTestService()

	places.On("FindAvailable", mock.Anything, 10, 10).
		Return([]domain.Place{{ID: "place-1"}}, int64(25), nil)

	page, err := svc.GetAvailable(context.Background(), 2, 10)

	assert.NoError(t, err)
	assert.Equal(t, int64(25), page.Total)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, 10, page.PageSize)
	assert.Len(t, page.Places, 1)
}

func TestGetByID_Idempotent(t *testing.T) {
	svc, places, _, _, _ := newTestService()

	p := &domain.Place{ID: "place-1", Name: "Sala Centro"}
	places.On("GetByID", mock.Anything, "place-1").Return(p, nil)

	first, err := svc.GetByID(context.Background(), "place-1")
	assert.NoError(t, err)
	second, err := svc.GetByID(context.Background(), "place-1")
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}
