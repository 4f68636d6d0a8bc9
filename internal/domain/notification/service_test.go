package notification

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/capturemoments/capture-api/internal/domain/booking"
)

type fakeNotificationRepo struct {
	mu    sync.Mutex
	items []Notification
}

func (f *fakeNotificationRepo) Create(_ context.Context, n *Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, *n)
	return nil
}

func (f *fakeNotificationRepo) ListByUser(_ context.Context, userID string, limit, offset int) ([]Notification, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Notification
	for i := range f.items {
		if f.items[i].UserID.String() == userID {
			out = append(out, f.items[i])
		}
	}
	return out, len(out), nil
}

func (f *fakeNotificationRepo) CountUnread(_ context.Context, userID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for i := range f.items {
		if f.items[i].UserID.String() == userID && !f.items[i].IsRead {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, id, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID.String() == id && f.items[i].UserID.String() == userID {
			f.items[i].IsRead = true
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeNotificationRepo) MarkAllRead(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].UserID.String() == userID {
			f.items[i].IsRead = true
		}
	}
	return nil
}

func testBooking(status string) *booking.Booking {
	return &booking.Booking{
		ID:             uuid.New(),
		ClientID:       uuid.New(),
		PhotographerID: uuid.New(),
		EventDate:      time.Date(2024, 5, 18, 0, 0, 0, 0, time.UTC),
		StartHour:      10,
		DurationHours:  2,
		EventType:      "wedding",
		Status:         status,
	}
}

func TestBookingCreatedNotifiesPhotographer(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewService(repo, nil, nil, nil)
	b := testBooking(booking.StatusPending)

	if err := svc.BookingCreated(context.Background(), b); err != nil {
		t.Fatalf("BookingCreated() error = %v", err)
	}

	if len(repo.items) != 1 {
		t.Fatalf("notifications = %d, want 1", len(repo.items))
	}
	n := repo.items[0]
	if n.UserID != b.PhotographerID {
		t.Error("notification not addressed to the photographer")
	}
	if n.Type != TypeBookingCreated {
		t.Errorf("type = %q, want %q", n.Type, TypeBookingCreated)
	}
	if n.IsRead {
		t.Error("new notification must start unread")
	}
}

func TestStatusChangeRecipients(t *testing.T) {
	t.Run("confirmation goes to client", func(t *testing.T) {
		repo := &fakeNotificationRepo{}
		svc := NewService(repo, nil, nil, nil)
		b := testBooking(booking.StatusConfirmed)

		if err := svc.BookingStatusChanged(context.Background(), b, booking.StatusPending); err != nil {
			t.Fatalf("BookingStatusChanged() error = %v", err)
		}
		if len(repo.items) != 1 || repo.items[0].UserID != b.ClientID {
			t.Errorf("expected one notification to the client, got %+v", repo.items)
		}
		if repo.items[0].Type != TypeBookingConfirmed {
			t.Errorf("type = %q, want %q", repo.items[0].Type, TypeBookingConfirmed)
		}
	})

	t.Run("cancellation goes to both sides", func(t *testing.T) {
		repo := &fakeNotificationRepo{}
		svc := NewService(repo, nil, nil, nil)
		b := testBooking(booking.StatusCancelled)

		if err := svc.BookingStatusChanged(context.Background(), b, booking.StatusConfirmed); err != nil {
			t.Fatalf("BookingStatusChanged() error = %v", err)
		}
		if len(repo.items) != 2 {
			t.Fatalf("notifications = %d, want 2", len(repo.items))
		}
		recipients := map[uuid.UUID]bool{}
		for _, n := range repo.items {
			recipients[n.UserID] = true
		}
		if !recipients[b.ClientID] || !recipients[b.PhotographerID] {
			t.Error("cancellation must notify both client and photographer")
		}
	})
}

func TestMarkReadFlow(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewService(repo, nil, nil, nil)
	b := testBooking(booking.StatusPending)

	if err := svc.BookingCreated(context.Background(), b); err != nil {
		t.Fatalf("BookingCreated() error = %v", err)
	}

	unread, err := svc.CountUnread(context.Background(), b.PhotographerID)
	if err != nil || unread != 1 {
		t.Fatalf("unread = %d (err %v), want 1", unread, err)
	}

	if err := svc.MarkRead(context.Background(), repo.items[0].ID.String(), b.PhotographerID); err != nil {
		t.Fatalf("MarkRead() error = %v", err)
	}

	unread, _ = svc.CountUnread(context.Background(), b.PhotographerID)
	if unread != 0 {
		t.Errorf("unread = %d after marking read, want 0", unread)
	}
}
