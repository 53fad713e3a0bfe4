package notifications

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ServicePortal/internal/domain"
	notificationRepo "github.com/m04kA/SMC-ServicePortal/internal/infra/storage/notification"
)

type fakeRepo struct {
	inserted []*domain.Notification
	stored   map[int64]*domain.Notification
	marked   []int64
}

func (f *fakeRepo) Insert(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
	saved := *n
	saved.ID = int64(len(f.inserted) + 1)
	f.inserted = append(f.inserted, &saved)
	return &saved, nil
}

func (f *fakeRepo) FindByID(_ context.Context, id int64) (*domain.Notification, error) {
	n, ok := f.stored[id]
	if !ok {
		return nil, notificationRepo.ErrNotificationNotFound
	}
	return n, nil
}

func (f *fakeRepo) FindByUser(_ context.Context, userID int64, userType string, onlyUnread bool) ([]*domain.Notification, error) {
	var out []*domain.Notification
	for _, n := range f.stored {
		if n.UserID != userID || n.UserType != userType {
			continue
		}
		if onlyUnread && n.Read {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func (f *fakeRepo) MarkAsRead(_ context.Context, id int64) error {
	f.marked = append(f.marked, id)
	return nil
}

type failingCache struct{}

func (failingCache) Store(context.Context, *domain.Notification) error {
	return errors.New("redis: connection refused")
}

func (failingCache) GetUserNotifications(context.Context, int64, string) ([]*domain.Notification, error) {
	return nil, errors.New("redis: connection refused")
}

func (failingCache) MarkAsRead(context.Context, int64, int64, string) error {
	return errors.New("redis: connection refused")
}

type servingCache struct {
	notifications []*domain.Notification
}

func (c *servingCache) Store(context.Context, *domain.Notification) error { return nil }

func (c *servingCache) GetUserNotifications(context.Context, int64, string) ([]*domain.Notification, error) {
	return c.notifications, nil
}

func (c *servingCache) MarkAsRead(context.Context, int64, int64, string) error { return nil }

type failingMailer struct {
	attempted bool
}

func (m *failingMailer) Send(string, string, string) error {
	m.attempted = true
	return errors.New("smtp: connection refused")
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestNotifyAppointmentBooked_SurvivesCacheAndMailFailures(t *testing.T) {
	repo := &fakeRepo{}
	mail := &failingMailer{}

	svc := NewService(repo, failingCache{}, mail, nopLogger{})

	svc.NotifyAppointmentBooked(context.Background(),
		&domain.Appointment{ID: 7, Slot: &domain.TimeSlot{Year: 2026, Month: 9, Day: 1, Clocktime: "10:00:00"}},
		&domain.Customer{ID: 2, Email: "alex@example.com"},
		"Oil Change",
	)

	require.Len(t, repo.inserted, 1)
	n := repo.inserted[0]
	assert.Equal(t, "New Appointment Booked", n.Title)
	assert.Equal(t, domain.UserTypeCustomer, n.UserType)
	assert.Equal(t, "/appointments/7", n.Link)
	assert.True(t, mail.attempted)
}

func TestNotifyAppointmentStatusChanged_TitlesFollowStatus(t *testing.T) {
	cases := []struct {
		status domain.AppointmentStatus
		title  string
	}{
		{domain.StatusScheduled, "Appointment Confirmed"},
		{domain.StatusInProgress, "Service Started"},
		{domain.StatusCompleted, "Service Completed"},
		{domain.StatusCancelled, "Appointment Cancelled"},
	}

	for _, tc := range cases {
		repo := &fakeRepo{}
		svc := NewService(repo, nil, nil, nopLogger{})

		svc.NotifyAppointmentStatusChanged(context.Background(),
			&domain.Appointment{ID: 7, Status: tc.status},
			&domain.Customer{ID: 2},
			"Oil Change",
		)

		require.Len(t, repo.inserted, 1, "status %s", tc.status)
		assert.Equal(t, tc.title, repo.inserted[0].Title, "status %s", tc.status)
	}
}

func TestGetUserNotifications_CacheFirstWithDBFallback(t *testing.T) {
	stored := map[int64]*domain.Notification{
		1: {ID: 1, UserID: 2, UserType: domain.UserTypeCustomer, Title: "from db"},
	}

	t.Run("cache hit", func(t *testing.T) {
		cache := &servingCache{notifications: []*domain.Notification{
			{ID: 1, UserID: 2, UserType: domain.UserTypeCustomer, Title: "from cache"},
		}}
		svc := NewService(&fakeRepo{stored: stored}, cache, nil, nopLogger{})

		resp, err := svc.GetUserNotifications(context.Background(), 2, domain.UserTypeCustomer, false)
		require.NoError(t, err)
		require.Len(t, resp.Notifications, 1)
		assert.Equal(t, "from cache", resp.Notifications[0].Title)
	})

	t.Run("cache error falls back to db", func(t *testing.T) {
		svc := NewService(&fakeRepo{stored: stored}, failingCache{}, nil, nopLogger{})

		resp, err := svc.GetUserNotifications(context.Background(), 2, domain.UserTypeCustomer, false)
		require.NoError(t, err)
		require.Len(t, resp.Notifications, 1)
		assert.Equal(t, "from db", resp.Notifications[0].Title)
	})

	t.Run("unread filter bypasses cache", func(t *testing.T) {
		cache := &servingCache{notifications: []*domain.Notification{
			{ID: 9, UserID: 2, UserType: domain.UserTypeCustomer, Title: "stale", Read: true},
		}}
		repo := &fakeRepo{stored: map[int64]*domain.Notification{
			1: {ID: 1, UserID: 2, UserType: domain.UserTypeCustomer, Read: false},
			2: {ID: 2, UserID: 2, UserType: domain.UserTypeCustomer, Read: true},
		}}
		svc := NewService(repo, cache, nil, nopLogger{})

		resp, err := svc.GetUserNotifications(context.Background(), 2, domain.UserTypeCustomer, true)
		require.NoError(t, err)
		require.Len(t, resp.Notifications, 1)
		assert.Equal(t, int64(1), resp.Notifications[0].ID)
	})
}

func TestMarkAsRead_OwnershipEnforced(t *testing.T) {
	repo := &fakeRepo{stored: map[int64]*domain.Notification{
		1: {ID: 1, UserID: 2, UserType: domain.UserTypeCustomer},
	}}
	svc := NewService(repo, nil, nil, nopLogger{})

	err := svc.MarkAsRead(context.Background(), 1, 99, domain.UserTypeCustomer)
	assert.ErrorIs(t, err, ErrAccessDenied)

	err = svc.MarkAsRead(context.Background(), 1, 2, domain.UserTypeStaff)
	assert.ErrorIs(t, err, ErrAccessDenied)

	err = svc.MarkAsRead(context.Background(), 1, 2, domain.UserTypeCustomer)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, repo.marked)
}

func TestMarkAsRead_NotFound(t *testing.T) {
	svc := NewService(&fakeRepo{}, nil, nil, nopLogger{})

	err := svc.MarkAsRead(context.Background(), 404, 2, domain.UserTypeCustomer)
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}
