package create_appointment

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ServicePortal/internal/domain"
	referenceRepo "github.com/m04kA/SMC-ServicePortal/internal/infra/storage/reference"
	timeslotRepo "github.com/m04kA/SMC-ServicePortal/internal/infra/storage/timeslot"
	"github.com/m04kA/SMC-ServicePortal/pkg/dbmetrics"
	"github.com/m04kA/SMC-ServicePortal/pkg/types"
)

type fakeAppointmentRepo struct {
	created *domain.Appointment
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	appt.ID = 100
	appt.CreatedAt = time.Now()
	appt.UpdatedAt = appt.CreatedAt
	f.created = appt
	return appt, nil
}

type fakeTimeSlotRepo struct {
	existing  *domain.TimeSlot
	insertErr error
	inserts   int
	finds     int
}

func (f *fakeTimeSlotRepo) FindByExactDateTime(_ context.Context, _, _, _ int16, _ types.ClockTime) (*domain.TimeSlot, error) {
	f.finds++
	if f.existing == nil {
		return nil, timeslotRepo.ErrSlotNotFound
	}
	return f.existing, nil
}

func (f *fakeTimeSlotRepo) Insert(_ context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error) {
	f.inserts++
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	slot.ID = 7
	return slot, nil
}

type fakeReferenceRepo struct {
	vehicleOwner int64
}

func (f *fakeReferenceRepo) FindCustomerByID(_ context.Context, id int64) (*domain.Customer, error) {
	return &domain.Customer{ID: id, Name: "Alex", Email: "alex@example.com"}, nil
}

func (f *fakeReferenceRepo) FindVehicleByID(_ context.Context, id int64) (*domain.Vehicle, error) {
	owner := f.vehicleOwner
	if owner == 0 {
		owner = 1
	}
	return &domain.Vehicle{ID: id, CustomerID: owner}, nil
}

func (f *fakeReferenceRepo) FindServiceTypeByID(_ context.Context, id int64) (*domain.ServiceType, error) {
	return &domain.ServiceType{ID: id, Name: "Oil Change", Price: 49.99, DurationMinutes: 60}, nil
}

func (f *fakeReferenceRepo) FindOutletByID(_ context.Context, id int64) (*domain.Outlet, error) {
	return &domain.Outlet{ID: id}, nil
}

type fakeNotifier struct {
	mu     sync.Mutex
	called bool
}

func (f *fakeNotifier) NotifyAppointmentBooked(_ context.Context, _ *domain.Appointment, _ *domain.Customer, _ string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.called = true
}

func (f *fakeNotifier) wasCalled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.called
}

type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (passthroughTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		CustomerID: 1,
		ServiceID:  2,
		OutletID:   3,
		VehicleID:  4,
		Date:       time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		StartTime:  "10:00:00",
	}
}

func TestExecute_CreatesPendingUnassignedAppointment(t *testing.T) {
	appointmentRepo := &fakeAppointmentRepo{}
	slotRepo := &fakeTimeSlotRepo{}
	notifier := &fakeNotifier{}

	uc := NewUseCase(appointmentRepo, slotRepo, &fakeReferenceRepo{}, notifier, passthroughTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, int64(7), resp.TimeSlotID)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, "Oil Change", resp.ServiceName)

	require.NotNil(t, appointmentRepo.created)
	assert.Nil(t, appointmentRepo.created.StaffID)
	assert.Equal(t, domain.StatusPending, appointmentRepo.created.Status)

	assert.Eventually(t, notifier.wasCalled, time.Second, 10*time.Millisecond)
}

func TestExecute_ReusesExistingTimeSlot(t *testing.T) {
	slotRepo := &fakeTimeSlotRepo{
		existing: &domain.TimeSlot{ID: 33, Year: 2026, Month: 9, Day: 1, Clocktime: "10:00:00"},
	}

	uc := NewUseCase(&fakeAppointmentRepo{}, slotRepo, &fakeReferenceRepo{}, &fakeNotifier{}, passthroughTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(33), resp.TimeSlotID)
	assert.Zero(t, slotRepo.inserts)
}

func TestExecute_DuplicateSlotConflictRereads(t *testing.T) {
	slotRepo := &conflictingTimeSlotRepo{}

	uc := NewUseCase(&fakeAppointmentRepo{}, slotRepo, &fakeReferenceRepo{}, &fakeNotifier{}, passthroughTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(55), resp.TimeSlotID)
	assert.Equal(t, 1, slotRepo.inserts)
}

// conflictingTimeSlotRepo имитирует проигрыш гонки вставки: первый поиск
// пуст, вставка упирается в уникальный индекс, повторный поиск находит слот
type conflictingTimeSlotRepo struct {
	finds   int
	inserts int
}

func (f *conflictingTimeSlotRepo) FindByExactDateTime(_ context.Context, _, _, _ int16, _ types.ClockTime) (*domain.TimeSlot, error) {
	f.finds++
	if f.finds == 1 {
		return nil, timeslotRepo.ErrSlotNotFound
	}
	return &domain.TimeSlot{ID: 55, Clocktime: "10:00:00"}, nil
}

func (f *conflictingTimeSlotRepo) Insert(_ context.Context, _ *domain.TimeSlot) (*domain.TimeSlot, error) {
	f.inserts++
	return nil, timeslotRepo.ErrDuplicateSlot
}

func TestExecute_SlotConflictResolvedOutsideTransaction(t *testing.T) {
	slotRepo := &txAwareTimeSlotRepo{}

	uc := NewUseCase(&fakeAppointmentRepo{}, slotRepo, &fakeReferenceRepo{}, &fakeNotifier{}, markingTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(55), resp.TimeSlotID)

	require.Len(t, slotRepo.inTx, 3)
	for i, inTx := range slotRepo.inTx {
		assert.Falsef(t, inTx, "slot call %d ran inside a transaction", i)
	}
}

// markingTxManager помечает контекст активной транзакцией так же,
// как настоящие менеджеры
type markingTxManager struct{}

func (markingTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(dbmetrics.WithTx(ctx, (*sql.Tx)(nil)))
}

func (markingTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(dbmetrics.WithTx(ctx, (*sql.Tx)(nil)))
}

func (markingTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(dbmetrics.WithTx(ctx, (*sql.Tx)(nil)))
}

// txAwareTimeSlotRepo проигрывает гонку вставки и записывает, исполнялся
// ли каждый вызов внутри транзакции. После 23505 Postgres отклоняет любые
// запросы в той же транзакции, поэтому все три обращения обязаны идти на пул
type txAwareTimeSlotRepo struct {
	finds int
	inTx  []bool
}

func (f *txAwareTimeSlotRepo) FindByExactDateTime(ctx context.Context, _, _, _ int16, _ types.ClockTime) (*domain.TimeSlot, error) {
	f.finds++
	f.inTx = append(f.inTx, dbmetrics.IsInTransaction(ctx))
	if f.finds == 1 {
		return nil, timeslotRepo.ErrSlotNotFound
	}
	return &domain.TimeSlot{ID: 55, Clocktime: "10:00:00"}, nil
}

func (f *txAwareTimeSlotRepo) Insert(ctx context.Context, _ *domain.TimeSlot) (*domain.TimeSlot, error) {
	f.inTx = append(f.inTx, dbmetrics.IsInTransaction(ctx))
	return nil, timeslotRepo.ErrDuplicateSlot
}

func TestExecute_VehicleOwnershipEnforced(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeTimeSlotRepo{}, &fakeReferenceRepo{vehicleOwner: 99}, &fakeNotifier{}, passthroughTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrVehicleNotOwned)
}

func TestExecute_TimeOutsideBusinessHours(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeTimeSlotRepo{}, &fakeReferenceRepo{}, &fakeNotifier{}, passthroughTxManager{}, nopLogger{})

	req := validRequest()
	req.StartTime = "08:00:00"
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTime)

	req.StartTime = "16:30:00"
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTime)

	// Последний допустимый слот заканчивается ровно в закрытие
	req.StartTime = "16:00:00"
	_, err = uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_ReferenceNotFound(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeTimeSlotRepo{}, &notFoundReferenceRepo{}, &fakeNotifier{}, passthroughTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

type notFoundReferenceRepo struct{}

func (notFoundReferenceRepo) FindCustomerByID(_ context.Context, _ int64) (*domain.Customer, error) {
	return nil, referenceRepo.ErrCustomerNotFound
}

func (notFoundReferenceRepo) FindVehicleByID(_ context.Context, _ int64) (*domain.Vehicle, error) {
	return nil, referenceRepo.ErrVehicleNotFound
}

func (notFoundReferenceRepo) FindServiceTypeByID(_ context.Context, _ int64) (*domain.ServiceType, error) {
	return nil, referenceRepo.ErrServiceTypeNotFound
}

func (notFoundReferenceRepo) FindOutletByID(_ context.Context, _ int64) (*domain.Outlet, error) {
	return nil, referenceRepo.ErrOutletNotFound
}
