package booking

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	bookingRepo "mechserve/database/repository/booking"
	"mechserve/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBookingRepo mimics the mongo repository semantics in memory:
// identity assignment, default status, email normalization and
// insertion-derived newest-first listing.
type fakeBookingRepo struct {
	bookings    []models.Booking
	createCalls int
	updateCalls int
	deleteCalls int
	createErr   error
}

func (f *fakeBookingRepo) Create(ctx context.Context, b models.Booking) (*models.Booking, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	b.ID = uuid.New().String()
	b.Status = models.BookingStatusPending
	b.Email = strings.ToLower(strings.TrimSpace(b.Email))
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	f.bookings = append(f.bookings, b)
	return &b, nil
}

func (f *fakeBookingRepo) List(ctx context.Context) ([]models.Booking, error) {
	out := make([]models.Booking, 0, len(f.bookings))
	for i := len(f.bookings) - 1; i >= 0; i-- {
		out = append(out, f.bookings[i])
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error) {
	f.updateCalls++
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings[i].Status = status
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, bookingRepo.ErrNotFound
}

func (f *fakeBookingRepo) Delete(ctx context.Context, id string) error {
	f.deleteCalls++
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings = append(f.bookings[:i], f.bookings[i+1:]...)
			return nil
		}
	}
	return bookingRepo.ErrNotFound
}

// recordingNotifier captures notifications and can be set to fail.
type recordingNotifier struct {
	bookings []*models.Booking
	err      error
}

func (n *recordingNotifier) NotifyBooking(ctx context.Context, b *models.Booking) error {
	n.bookings = append(n.bookings, b)
	return n.err
}

func (n *recordingNotifier) NotifyContact(ctx context.Context, c *models.Contact) error {
	return n.err
}

func newService() (*DefaultBookingService, *fakeBookingRepo, *recordingNotifier) {
	repo := &fakeBookingRepo{}
	notifier := &recordingNotifier{}
	return &DefaultBookingService{Repo: repo, Notifier: notifier}, repo, notifier
}

func validSubmission() map[string]any {
	return map[string]any{
		"name":        "A",
		"email":       "A@X.com",
		"phone":       "1",
		"location":    "Pune",
		"serviceType": "Preventive Maintenance",
	}
}

func TestCreateBooking(t *testing.T) {
	svc, repo, notifier := newService()

	created, violations, err := svc.Create(context.Background(), validSubmission())
	require.NoError(t, err)
	require.Empty(t, violations)
	require.NotNil(t, created)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.BookingStatusPending, created.Status)
	assert.Equal(t, "a@x.com", created.Email)

	// The persisted record matches the client-supplied fields.
	stored, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "A", stored.Name)
	assert.Equal(t, "Pune", stored.Location)
	assert.Equal(t, "Preventive Maintenance", stored.ServiceType)

	assert.Equal(t, 1, repo.createCalls)
	require.Len(t, notifier.bookings, 1)
	assert.Equal(t, created.ID, notifier.bookings[0].ID)
}

func TestCreateBookingRejectedNotPersisted(t *testing.T) {
	svc, repo, notifier := newService()

	for _, missing := range []string{"name", "email", "phone", "location", "serviceType"} {
		fields := validSubmission()
		delete(fields, missing)

		created, violations, err := svc.Create(context.Background(), fields)
		require.NoError(t, err)
		assert.Nil(t, created)
		require.Len(t, violations, 1, "missing %s", missing)
		assert.Equal(t, missing, violations[0].Field)
	}

	assert.Equal(t, 0, repo.createCalls)
	assert.Empty(t, repo.bookings)
	assert.Empty(t, notifier.bookings)
}

func TestCreateBookingRejectsUnknownServiceType(t *testing.T) {
	svc, repo, _ := newService()

	fields := validSubmission()
	fields["serviceType"] = "Window Cleaning"

	created, violations, err := svc.Create(context.Background(), fields)
	require.NoError(t, err)
	assert.Nil(t, created)
	require.Len(t, violations, 1)
	assert.Equal(t, "serviceType", violations[0].Field)
	assert.Equal(t, 0, repo.createCalls)
}

func TestCreateBookingSucceedsWhenNotifierFails(t *testing.T) {
	svc, repo, notifier := newService()
	notifier.err = errors.New("smtp connection refused")

	created, violations, err := svc.Create(context.Background(), validSubmission())
	require.NoError(t, err)
	require.Empty(t, violations)
	require.NotNil(t, created)
	assert.Equal(t, models.BookingStatusPending, created.Status)
	assert.Len(t, repo.bookings, 1)
}

func TestCreateBookingPersistenceFailure(t *testing.T) {
	svc, repo, notifier := newService()
	repo.createErr = errors.New("server selection timeout")

	created, violations, err := svc.Create(context.Background(), validSubmission())
	require.Error(t, err)
	assert.Nil(t, created)
	assert.Empty(t, violations)
	// No notification goes out for a record that was never written.
	assert.Empty(t, notifier.bookings)
}

func TestListBookingsNewestFirst(t *testing.T) {
	svc, _, _ := newService()

	var ids []string
	for _, name := range []string{"first", "second", "third"} {
		fields := validSubmission()
		fields["name"] = name
		created, violations, err := svc.Create(context.Background(), fields)
		require.NoError(t, err)
		require.Empty(t, violations)
		ids = append(ids, created.ID)
	}

	listed, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, ids[2], listed[0].ID)
	assert.Equal(t, ids[1], listed[1].ID)
	assert.Equal(t, ids[0], listed[2].ID)
}

func TestUpdateStatus(t *testing.T) {
	svc, _, _ := newService()
	created, _, err := svc.Create(context.Background(), validSubmission())
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), created.ID, models.BookingStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, updated.Status)
	// Other fields are untouched.
	assert.Equal(t, created.Email, updated.Email)
	assert.Equal(t, created.Location, updated.Location)
}

func TestUpdateStatusInvalidValueNeverReachesStore(t *testing.T) {
	svc, repo, _ := newService()
	created, _, err := svc.Create(context.Background(), validSubmission())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), created.ID, "shipped")
	require.ErrorIs(t, err, bookingRepo.ErrInvalidStatus)
	assert.Equal(t, 0, repo.updateCalls)

	stored, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, stored.Status)
}

func TestUpdateStatusNotFound(t *testing.T) {
	svc, _, _ := newService()
	_, err := svc.UpdateStatus(context.Background(), "missing", models.BookingStatusConfirmed)
	assert.ErrorIs(t, err, bookingRepo.ErrNotFound)
}

func TestGetByIDAbsentReturnsNil(t *testing.T) {
	svc, _, _ := newService()
	got, err := svc.GetByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDelete(t *testing.T) {
	svc, repo, _ := newService()
	created, _, err := svc.Create(context.Background(), validSubmission())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Empty(t, repo.bookings)

	// Second delete reports not found and leaves state alone.
	err = svc.Delete(context.Background(), created.ID)
	assert.ErrorIs(t, err, bookingRepo.ErrNotFound)
	assert.Empty(t, repo.bookings)
}

func TestDeleteNonexistent(t *testing.T) {
	svc, repo, _ := newService()
	err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, bookingRepo.ErrNotFound)
	assert.Empty(t, repo.bookings)
}
