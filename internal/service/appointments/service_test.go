package appointments

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ServicePortal/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-ServicePortal/internal/infra/storage/appointment"
	staffRepo "github.com/m04kA/SMC-ServicePortal/internal/infra/storage/staff"
	"github.com/m04kA/SMC-ServicePortal/pkg/ptr"
)

type fakeAppointmentRepo struct {
	byID     map[int64]*domain.Appointment
	byOutlet map[int64][]*domain.Appointment
	byStaff  []*domain.Appointment
	updated  *domain.Appointment
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := f.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return appt, nil
}

func (f *fakeAppointmentRepo) Update(_ context.Context, appt *domain.Appointment) error {
	f.updated = appt
	return nil
}

func (f *fakeAppointmentRepo) FindByCustomer(_ context.Context, customerID int64) ([]*domain.Appointment, error) {
	var out []*domain.Appointment
	for _, appt := range f.byID {
		if appt.CustomerID == customerID {
			out = append(out, appt)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) FindByOutlet(_ context.Context, outletID int64) ([]*domain.Appointment, error) {
	return f.byOutlet[outletID], nil
}

func (f *fakeAppointmentRepo) FindByStaffAndDate(_ context.Context, _ int64, _, _, _ int16) ([]*domain.Appointment, error) {
	return f.byStaff, nil
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

type fakeNotifier struct {
	mu     sync.Mutex
	delay  time.Duration
	called bool
}

func (f *fakeNotifier) NotifyAppointmentStatusChanged(_ context.Context, _ *domain.Appointment, _ *domain.Customer, _ string) {
	time.Sleep(f.delay)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.called = true
}

func (f *fakeNotifier) wasCalled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.called
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func scheduledAppointment(id int64) *domain.Appointment {
	return &domain.Appointment{
		ID:         id,
		CustomerID: 2,
		ServiceID:  3,
		OutletID:   4,
		StaffID:    ptr.Ptr(int64(9)),
		Status:     domain.StatusScheduled,
		Slot:       &domain.TimeSlot{ID: 5, Year: 2026, Quarter: 3, Month: 9, Day: 1, Clocktime: "10:00:00"},
	}
}

func newTestService(appts *fakeAppointmentRepo, staff *fakeStaffRepo, notifier *fakeNotifier) *Service {
	return NewService(appts, staff, fakeReferenceRepo{}, notifier, nopLogger{})
}

func TestUpdateStatus_LegalTransition(t *testing.T) {
	appts := &fakeAppointmentRepo{byID: map[int64]*domain.Appointment{1: scheduledAppointment(1)}}
	notifier := &fakeNotifier{}

	svc := newTestService(appts, &fakeStaffRepo{}, notifier)

	resp, err := svc.UpdateStatus(context.Background(), 1, "IN_PROGRESS")
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusInProgress), resp.Status)
	require.NotNil(t, appts.updated)
	assert.Equal(t, domain.StatusInProgress, appts.updated.Status)

	assert.Eventually(t, notifier.wasCalled, time.Second, 10*time.Millisecond)
}

func TestWait_DrainsBackgroundNotifications(t *testing.T) {
	appts := &fakeAppointmentRepo{byID: map[int64]*domain.Appointment{1: scheduledAppointment(1)}}
	notifier := &fakeNotifier{delay: 50 * time.Millisecond}

	svc := newTestService(appts, &fakeStaffRepo{}, notifier)

	_, err := svc.UpdateStatus(context.Background(), 1, "IN_PROGRESS")
	require.NoError(t, err)

	// Wait не возвращается, пока фоновое уведомление не отправлено
	svc.Wait()
	assert.True(t, notifier.wasCalled())
}

func TestUpdateStatus_IllegalTransition(t *testing.T) {
	appt := scheduledAppointment(1)
	appt.Status = domain.StatusCompleted
	appts := &fakeAppointmentRepo{byID: map[int64]*domain.Appointment{1: appt}}

	svc := newTestService(appts, &fakeStaffRepo{}, &fakeNotifier{})

	_, err := svc.UpdateStatus(context.Background(), 1, "IN_PROGRESS")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Nil(t, appts.updated)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	appts := &fakeAppointmentRepo{byID: map[int64]*domain.Appointment{1: scheduledAppointment(1)}}

	svc := newTestService(appts, &fakeStaffRepo{}, &fakeNotifier{})

	_, err := svc.UpdateStatus(context.Background(), 1, "DONE")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestGetStaffSchedule_FiltersToActiveWork(t *testing.T) {
	scheduled := scheduledAppointment(1)
	inProgress := scheduledAppointment(2)
	inProgress.Status = domain.StatusInProgress
	completed := scheduledAppointment(3)
	completed.Status = domain.StatusCompleted
	pending := scheduledAppointment(4)
	pending.Status = domain.StatusPending

	appts := &fakeAppointmentRepo{byStaff: []*domain.Appointment{scheduled, inProgress, completed, pending}}
	staff := &fakeStaffRepo{member: &domain.Staff{ID: 9, Name: "Ivan", OutletID: 4}}

	svc := newTestService(appts, staff, &fakeNotifier{})

	resp, err := svc.GetStaffSchedule(context.Background(), 9, "2026-09-01")
	require.NoError(t, err)

	assert.Equal(t, int64(9), resp.StaffID)
	require.Len(t, resp.Appointments, 2)
	assert.Equal(t, int64(1), resp.Appointments[0].ID)
	assert.Equal(t, int64(2), resp.Appointments[1].ID)
}

func TestGetStaffSchedule_InvalidDate(t *testing.T) {
	svc := newTestService(&fakeAppointmentRepo{}, &fakeStaffRepo{member: &domain.Staff{ID: 9}}, &fakeNotifier{})

	_, err := svc.GetStaffSchedule(context.Background(), 9, "01.09.2026")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestGetStaffAppointments_ListsStaffOutlet(t *testing.T) {
	appts := &fakeAppointmentRepo{byOutlet: map[int64][]*domain.Appointment{
		4: {scheduledAppointment(1), scheduledAppointment(2)},
	}}
	staff := &fakeStaffRepo{member: &domain.Staff{ID: 9, OutletID: 4}}

	svc := newTestService(appts, staff, &fakeNotifier{})

	resp, err := svc.GetStaffAppointments(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
}

func TestGetStaffAppointments_StaffNotFound(t *testing.T) {
	svc := newTestService(&fakeAppointmentRepo{}, &fakeStaffRepo{}, &fakeNotifier{})

	_, err := svc.GetStaffAppointments(context.Background(), 9)
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newTestService(&fakeAppointmentRepo{}, &fakeStaffRepo{}, &fakeNotifier{})

	_, err := svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
