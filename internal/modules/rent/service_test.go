package rent

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/bryerblack/projeto-principios-dev-web/internal/domain"
)

type MockRentRepository struct {
	mock.Mock
}

func (m *MockRentRepository) Create(ctx context.Context, rt *domain.Rent) error {
	args := m.Called(ctx, rt)
	if rt != nil && rt.ID == "" {
		rt.ID = "rent-1"
	}
	return args.Error(0)
}

func (m *MockRentRepository) GetByID(ctx context.Context, id string) (*domain.Rent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rent), args.Error(1)
}

func (m *MockRentRepository) GetAll(ctx context.Context) ([]domain.Rent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rent), args.Error(1)
}

func (m *MockRentRepository) GetByUser(ctx context.Context, userID string) ([]domain.Rent, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rent), args.Error(1)
}

func (m *MockRentRepository) UpdateStatus(ctx context.Context, id string, status domain.RentStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockRentRepository) Update(ctx context.Context, rt *domain.Rent) error {
	args := m.Called(ctx, rt)
	return args.Error(0)
}

func (m *MockRentRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPlaceGetter struct {
	mock.Mock
}

func (m *MockPlaceGetter) GetByID(ctx context.Context, id string) (*domain.Place, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Place), args.Error(1)
}

type MockUserGetter struct {
	mock.Mock
}

func (m *MockUserGetter) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func newTestService() (*Service, *MockRentRepository, *MockPlaceGetter, *MockUserGetter) {
	rents := new(MockRentRepository)
	places := new(MockPlaceGetter)
	users := new(MockUserGetter)
	return NewService(rents, places, users), rents, places, users
}

func testPlace() *domain.Place {
	return &domain.Place{
		ID:           "place-1",
		Name:         "Sala Central",
		OwnerID:      "owner-1",
		PricePerHour: 50,
	}
}

func TestRequest_Success(t *testing.T) {
	svc, rents, places, _ := newTestService()

	places.On("GetByID", mock.Anything, "place-1").Return(testPlace(), nil)
	rents.On("Create", mock.Anything, mock.AnythingOfType("*domain.Rent")).Return(nil)

	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	rt, err := svc.Request(context.Background(), "renter-1", CreateRentRequest{
		PlaceID:       "place-1",
		PaymentMethod: "pix",
		Schedules: []ScheduleRequest{
			{StartDate: start, EndDate: start.Add(2 * time.Hour)},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RentPendente, rt.Status)
	assert.Equal(t, "owner-1", rt.OwnerID)
	assert.Equal(t, "renter-1", rt.RenterID)
	assert.Equal(t, 100.0, rt.TotalValue)
	assert.Len(t, rt.Schedules, 1)
	rents.AssertExpectations(t)
}

func TestRequest_TotalSumsSchedules(t *testing.T) {
	svc, rents, places, _ := newTestService()

	places.On("GetByID", mock.Anything, "place-1").Return(testPlace(), nil)
	rents.On("Create", mock.Anything, mock.Anything).Return(nil)

	day1 := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 11, 14, 0, 0, 0, time.UTC)
	rt, err := svc.Request(context.Background(), "renter-1", CreateRentRequest{
		PlaceID:       "place-1",
		PaymentMethod: "cartao",
		Schedules: []ScheduleRequest{
			{StartDate: day1, EndDate: day1.Add(3 * time.Hour)},
			{StartDate: day2, EndDate: day2.Add(90 * time.Minute)},
		},
	})

	assert.NoError(t, err)
	// 3h + 1.5h at 50/h
	assert.Equal(t, 225.0, rt.TotalValue)
}

func TestRequest_EmptySchedules(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Request(context.Background(), "renter-1", CreateRentRequest{
		PlaceID:       "place-1",
		PaymentMethod: "pix",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestRequest_EndBeforeStart(t *testing.T) {
	svc, _, places, _ := newTestService()

	places.On("GetByID", mock.Anything, "place-1").Return(testPlace(), nil)

	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	_, err := svc.Request(context.Background(), "renter-1", CreateRentRequest{
		PlaceID:       "place-1",
		PaymentMethod: "pix",
		Schedules: []ScheduleRequest{
			{StartDate: start, EndDate: start.Add(-time.Hour)},
		},
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestRequest_OwnPlace(t *testing.T) {
	svc, _, places, _ := newTestService()

	places.On("GetByID", mock.Anything, "place-1").Return(testPlace(), nil)

	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	_, err := svc.Request(context.Background(), "owner-1", CreateRentRequest{
		PlaceID:       "place-1",
		PaymentMethod: "pix",
		Schedules: []ScheduleRequest{
			{StartDate: start, EndDate: start.Add(time.Hour)},
		},
	})

	assert.ErrorIs(t, err, ErrOwnPlace)
}

func TestRequest_PlaceNotFound(t *testing.T) {
	svc, _, places, _ := newTestService()

	places.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	_, err := svc.Request(context.Background(), "renter-1", CreateRentRequest{
		PlaceID:       "missing",
		PaymentMethod: "pix",
		Schedules: []ScheduleRequest{
			{StartDate: start, EndDate: start.Add(time.Hour)},
		},
	})

	assert.ErrorIs(t, err, ErrPlaceNotFound)
}

// Two renters booking the same slot of the same place both succeed. The
// request path never inspects existing rents, so nothing rejects the
// second booking.
func TestRequest_OverlappingSchedulesBothAccepted(t *testing.T) {
	svc, rents, places, _ := newTestService()

	places.On("GetByID", mock.Anything, "place-1").Return(testPlace(), nil)
	rents.On("Create", mock.Anything, mock.Anything).Return(nil)

	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	req := CreateRentRequest{
		PlaceID:       "place-1",
		PaymentMethod: "pix",
		Schedules: []ScheduleRequest{
			{StartDate: start, EndDate: start.Add(2 * time.Hour)},
		},
	}

	first, err := svc.Request(context.Background(), "renter-1", req)
	assert.NoError(t, err)
	second, err := svc.Request(context.Background(), "renter-2", req)
	assert.NoError(t, err)

	assert.Equal(t, first.Schedules[0].StartDate, second.Schedules[0].StartDate)
	rents.AssertNumberOfCalls(t, "Create", 2)
}

func TestReview_ApproveByOwner(t *testing.T) {
	svc, rents, _, _ := newTestService()

	rents.On("GetByID", mock.Anything, "rent-1").Return(&domain.Rent{
		ID: "rent-1", OwnerID: "owner-1", RenterID: "renter-1", Status: domain.RentPendente,
	}, nil)
	rents.On("UpdateStatus", mock.Anything, "rent-1", domain.RentConfirmado).Return(nil)

	rt, err := svc.Review(context.Background(), "rent-1", "owner-1", domain.RoleUser, "confirmado")

	assert.NoError(t, err)
	assert.Equal(t, domain.RentConfirmado, rt.Status)
	rents.AssertExpectations(t)
}

func TestReview_NonOwnerForbidden(t *testing.T) {
	svc, rents, _, _ := newTestService()

	rents.On("GetByID", mock.Anything, "rent-1").Return(&domain.Rent{
		ID: "rent-1", OwnerID: "owner-1", RenterID: "renter-1", Status: domain.RentPendente,
	}, nil)

	_, err := svc.Review(context.Background(), "rent-1", "renter-1", domain.RoleUser, "confirmado")

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestReview_AdminAllowed(t *testing.T) {
	svc, rents, _, _ := newTestService()

	rents.On("GetByID", mock.Anything, "rent-1").Return(&domain.Rent{
		ID: "rent-1", OwnerID: "owner-1", RenterID: "renter-1", Status: domain.RentPendente,
	}, nil)
	rents.On("UpdateStatus", mock.Anything, "rent-1", domain.RentRejeitado).Return(nil)

	rt, err := svc.Review(context.Background(), "rent-1", "admin-1", domain.RoleAdmin, "rejeitado")

	assert.NoError(t, err)
	assert.Equal(t, domain.RentRejeitado, rt.Status)
}

func TestReview_InvalidStatus(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Review(context.Background(), "rent-1", "owner-1", domain.RoleUser, "finalizado")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.Review(context.Background(), "rent-1", "owner-1", domain.RoleUser, "qualquer")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestReview_AlreadyDecided(t *testing.T) {
	svc, rents, _, _ := newTestService()

	rents.On("GetByID", mock.Anything, "rent-1").Return(&domain.Rent{
		ID: "rent-1", OwnerID: "owner-1", Status: domain.RentRejeitado,
	}, nil)

	_, err := svc.Review(context.Background(), "rent-1", "owner-1", domain.RoleUser, "confirmado")

	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestCancel_ByRenter(t *testing.T) {
	svc, rents, _, _ := newTestService()

	rents.On("GetByID", mock.Anything, "rent-1").Return(&domain.Rent{
		ID: "rent-1", OwnerID: "owner-1", RenterID: "renter-1", Status: domain.RentPendente,
	}, nil)
	rents.On("UpdateStatus", mock.Anything, "rent-1", domain.RentCancelado).Return(nil)

	rt, err := svc.Cancel(context.Background(), "rent-1", "renter-1", domain.RoleUser)

	assert.NoError(t, err)
	assert.Equal(t, domain.RentCancelado, rt.Status)
}

func TestCancel_NonRenterForbidden(t *testing.T) {
	svc, rents, _, _ := newTestService()

	rents.On("GetByID", mock.Anything, "rent-1").Return(&domain.Rent{
		ID: "rent-1", OwnerID: "owner-1", RenterID: "renter-1", Status: domain.RentPendente,
	}, nil)

	_, err := svc.Cancel(context.Background(), "rent-1", "owner-1", domain.RoleUser)

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCancel_AfterConfirmation(t *testing.T) {
	svc, rents, _, _ := newTestService()

	rents.On("GetByID", mock.Anything, "rent-1").Return(&domain.Rent{
		ID: "rent-1", RenterID: "renter-1", Status: domain.RentConfirmado,
	}, nil)

	_, err := svc.Cancel(context.Background(), "rent-1", "renter-1", domain.RoleUser)

	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestFinalize_ByParticipant(t *testing.T) {
	svc, rents, _, _ := newTestService()

	rents.On("GetByID", mock.Anything, "rent-1").Return(&domain.Rent{
		ID: "rent-1", OwnerID: "owner-1", RenterID: "renter-1", Status: domain.RentConfirmado,
	}, nil)
	rents.On("UpdateStatus", mock.Anything, "rent-1", domain.RentFinalizado).Return(nil)

	rt, err := svc.Finalize(context.Background(), "rent-1", "renter-1", domain.RoleUser)

	assert.NoError(t, err)
	assert.Equal(t, domain.RentFinalizado, rt.Status)
}

func TestFinalize_BeforeApproval(t *testing.T) {
	svc, rents, _, _ := newTestService()

	rents.On("GetByID", mock.Anything, "rent-1").Return(&domain.Rent{
		ID: "rent-1", OwnerID: "owner-1", RenterID: "renter-1", Status: domain.RentPendente,
	}, nil)

	_, err := svc.Finalize(context.Background(), "rent-1", "owner-1", domain.RoleUser)

	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestFinalize_OutsiderForbidden(t *testing.T) {
	svc, rents, _, _ := newTestService()

	rents.On("GetByID", mock.Anything, "rent-1").Return(&domain.Rent{
		ID: "rent-1", OwnerID: "owner-1", RenterID: "renter-1", Status: domain.RentConfirmado,
	}, nil)

	_, err := svc.Finalize(context.Background(), "rent-1", "stranger", domain.RoleUser)

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestGetMine_EnrichesDetails(t *testing.T) {
	svc, rents, places, users := newTestService()

	rents.On("GetByUser", mock.Anything, "renter-1").Return([]domain.Rent{
		{ID: "rent-1", PlaceID: "place-1", OwnerID: "owner-1", RenterID: "renter-1", Status: domain.RentPendente, TotalValue: 100},
	}, nil)
	places.On("GetByID", mock.Anything, "place-1").Return(testPlace(), nil)
	users.On("GetByID", mock.Anything, "owner-1").Return(&domain.User{ID: "owner-1", Name: "Ana", Email: "ana@example.com"}, nil)
	users.On("GetByID", mock.Anything, "renter-1").Return(&domain.User{ID: "renter-1", Name: "Bruno", Email: "bruno@example.com"}, nil)

	out, err := svc.GetMine(context.Background(), "renter-1")

	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, "Sala Central", out[0].Place.Name)
	assert.Equal(t, "Ana", out[0].Owner.Name)
	assert.Equal(t, "Bruno", out[0].Renter.Name)
}

func TestGetMine_MissingPlaceDegrades(t *testing.T) {
	svc, rents, places, users := newTestService()

	rents.On("GetByUser", mock.Anything, "renter-1").Return([]domain.Rent{
		{ID: "rent-1", PlaceID: "gone", OwnerID: "owner-1", RenterID: "renter-1"},
	}, nil)
	places.On("GetByID", mock.Anything, "gone").Return(nil, gorm.ErrRecordNotFound)
	users.On("GetByID", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)

	out, err := svc.GetMine(context.Background(), "renter-1")

	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Nil(t, out[0].Place)
	assert.Nil(t, out[0].Owner)
}

func TestGetMine_RepositoryErrorPropagates(t *testing.T) {
	svc, rents, places, _ := newTestService()

	rents.On("GetByUser", mock.Anything, "renter-1").Return([]domain.Rent{
		{ID: "rent-1", PlaceID: "place-1", OwnerID: "owner-1", RenterID: "renter-1"},
	}, nil)
	dbErr := errors.New("driver: bad connection")
	places.On("GetByID", mock.Anything, "place-1").Return(nil, dbErr)

	out, err := svc.GetMine(context.Background(), "renter-1")

	assert.ErrorIs(t, err, dbErr)
	assert.Nil(t, out)
}

func TestUpdate_RequiresAdmin(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Update(context.Background(), domain.RoleUser, "rent-1", UpdateRentRequest{})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDelete_RequiresAdmin(t *testing.T) {
	svc, _, _, _ := newTestService()

	err := svc.Delete(context.Background(), domain.RoleUser, "rent-1")

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDelete_NotFound(t *testing.T) {
	svc, rents, _, _ := newTestService()

	rents.On("Delete", mock.Anything, "missing").Return(gorm.ErrRecordNotFound)

	err := svc.Delete(context.Background(), domain.RoleAdmin, "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}
