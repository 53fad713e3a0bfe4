package confirm_appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ServicePortal/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-ServicePortal/internal/infra/storage/appointment"
	staffRepo "github.com/m04kA/SMC-ServicePortal/internal/infra/storage/staff"
	"github.com/m04kA/SMC-ServicePortal/pkg/ptr"
)

type fakeAppointmentRepo struct {
	appt    *domain.Appointment
	updated *domain.Appointment
}

func (f *fakeAppointmentRepo) GetByIDForUpdate(_ context.Context, _ int64) (*domain.Appointment, error) {
	if f.appt == nil {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return f.appt, nil
}

func (f *fakeAppointmentRepo) Update(_ context.Context, appt *domain.Appointment) error {
	f.updated = appt
	return nil
}

type fakeStaffRepo struct {
	member *domain.Staff
}

func (f *fakeStaffRepo) GetByID(_ context.Context, _ int64) (*domain.Staff, error) {
	if f.member == nil {
		return nil, staffRepo.ErrStaffNotFound
	}
	return f.member, nil
}

type fakeReferenceRepo struct{}

func (fakeReferenceRepo) FindCustomerByID(_ context.Context, id int64) (*domain.Customer, error) {
	return &domain.Customer{ID: id, Email: "alex@example.com"}, nil
}

func (fakeReferenceRepo) FindServiceTypeByID(_ context.Context, id int64) (*domain.ServiceType, error) {
	return &domain.ServiceType{ID: id, Name: "Oil Change"}, nil
}

type fakeNotifier struct{}

func (fakeNotifier) NotifyAppointmentStatusChanged(_ context.Context, _ *domain.Appointment, _ *domain.Customer, _ string) {
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

func pendingAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:         1,
		CustomerID: 2,
		ServiceID:  3,
		OutletID:   4,
		TimeSlotID: 5,
		Status:     domain.StatusPending,
		Slot:       &domain.TimeSlot{ID: 5, Clocktime: "10:00:00"},
	}
}

func newTestUseCase(appts *fakeAppointmentRepo, staff *fakeStaffRepo) *UseCase {
	return NewUseCase(appts, staff, fakeReferenceRepo{}, fakeNotifier{}, passthroughTxManager{}, nopLogger{})
}

func TestExecute_ConfirmsPendingAppointment(t *testing.T) {
	appts := &fakeAppointmentRepo{appt: pendingAppointment()}
	staff := &fakeStaffRepo{member: &domain.Staff{ID: 9, OutletID: 4}}

	uc := newTestUseCase(appts, staff)

	resp, err := uc.Execute(context.Background(), &Request{
		AppointmentID:       1,
		StaffID:             ptr.Ptr(int64(9)),
		EstimatedFinishTime: ptr.Ptr("11:30:00"),
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusScheduled), resp.Status)
	require.NotNil(t, resp.StaffID)
	assert.Equal(t, int64(9), *resp.StaffID)

	require.NotNil(t, appts.updated)
	require.NotNil(t, appts.updated.StaffID)
	assert.Equal(t, int64(9), *appts.updated.StaffID)
	require.NotNil(t, appts.updated.EstimatedFinishTime)
	assert.Equal(t, "11:30:00", appts.updated.EstimatedFinishTime.String())
}

func TestExecute_ConfirmsWithoutStaffAndFinishTime(t *testing.T) {
	appts := &fakeAppointmentRepo{appt: pendingAppointment()}

	uc := newTestUseCase(appts, &fakeStaffRepo{})

	resp, err := uc.Execute(context.Background(), &Request{AppointmentID: 1})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusScheduled), resp.Status)
	assert.Nil(t, resp.StaffID)
	assert.Nil(t, resp.EstimatedFinishTime)

	require.NotNil(t, appts.updated)
	assert.Nil(t, appts.updated.StaffID)
	assert.Nil(t, appts.updated.EstimatedFinishTime)
}

func TestExecute_RejectsNonPendingStatus(t *testing.T) {
	appt := pendingAppointment()
	appt.Status = domain.StatusScheduled

	uc := newTestUseCase(&fakeAppointmentRepo{appt: appt}, &fakeStaffRepo{member: &domain.Staff{ID: 9, OutletID: 4}})

	_, err := uc.Execute(context.Background(), &Request{
		AppointmentID:       1,
		StaffID:             ptr.Ptr(int64(9)),
		EstimatedFinishTime: ptr.Ptr("11:30:00"),
	})
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestExecute_RejectsLooseFinishTimeFormats(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{appt: pendingAppointment()}, &fakeStaffRepo{member: &domain.Staff{ID: 9, OutletID: 4}})

	for _, raw := range []string{"11:30", "1130", "11:30:00.000", "25:00:00", ""} {
		_, err := uc.Execute(context.Background(), &Request{
			AppointmentID:       1,
			StaffID:             ptr.Ptr(int64(9)),
			EstimatedFinishTime: ptr.Ptr(raw),
		})
		assert.ErrorIs(t, err, ErrInvalidFinishTime, "format %q", raw)
	}
}

func TestExecute_FinishTimeMustFollowSlotStart(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{appt: pendingAppointment()}, &fakeStaffRepo{member: &domain.Staff{ID: 9, OutletID: 4}})

	_, err := uc.Execute(context.Background(), &Request{
		AppointmentID:       1,
		StaffID:             ptr.Ptr(int64(9)),
		EstimatedFinishTime: ptr.Ptr("10:00:00"),
	})
	assert.ErrorIs(t, err, ErrInvalidFinishTime)
}

func TestExecute_StaffChecks(t *testing.T) {
	t.Run("missing staff", func(t *testing.T) {
		uc := newTestUseCase(&fakeAppointmentRepo{appt: pendingAppointment()}, &fakeStaffRepo{})

		_, err := uc.Execute(context.Background(), &Request{
			AppointmentID:       1,
			StaffID:             ptr.Ptr(int64(9)),
			EstimatedFinishTime: ptr.Ptr("11:30:00"),
		})
		assert.ErrorIs(t, err, ErrStaffNotFound)
	})

	t.Run("wrong outlet", func(t *testing.T) {
		uc := newTestUseCase(&fakeAppointmentRepo{appt: pendingAppointment()}, &fakeStaffRepo{member: &domain.Staff{ID: 9, OutletID: 77}})

		_, err := uc.Execute(context.Background(), &Request{
			AppointmentID:       1,
			StaffID:             ptr.Ptr(int64(9)),
			EstimatedFinishTime: ptr.Ptr("11:30:00"),
		})
		assert.ErrorIs(t, err, ErrStaffWrongOutlet)
	})
}

func TestExecute_AppointmentNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeStaffRepo{member: &domain.Staff{ID: 9, OutletID: 4}})

	_, err := uc.Execute(context.Background(), &Request{
		AppointmentID:       404,
		StaffID:             ptr.Ptr(int64(9)),
		EstimatedFinishTime: ptr.Ptr("11:30:00"),
	})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
