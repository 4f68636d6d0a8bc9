package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

// fakeRepo is an in-memory Repository enforcing the same conflict rule
// as the SQL conditional insert.
type fakeRepo struct {
	mu       sync.Mutex
	bookings []Booking

	// rejectInserts forces the next N InsertIfNoConflict calls to fail
	// with ErrSlotTaken without recording anything, simulating a racing
	// writer whose row is not yet visible to reads.
	rejectInserts int
	insertCalls   int
}

func (f *fakeRepo) InsertIfNoConflict(_ context.Context, b *Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.insertCalls++
	if f.rejectInserts > 0 {
		f.rejectInserts--
		return ErrSlotTaken
	}

	for i := range f.bookings {
		existing := &f.bookings[i]
		if existing.PhotographerID == b.PhotographerID &&
			existing.EventDate.Equal(b.EventDate) &&
			existing.Blocks() &&
			existing.Overlaps(b.StartHour, b.EndHour()) {
			return ErrSlotTaken
		}
	}
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeRepo) ListForDate(_ context.Context, photographerID string, date time.Time) ([]Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []Booking
	for i := range f.bookings {
		b := f.bookings[i]
		if b.PhotographerID.String() == photographerID && b.EventDate.Equal(date) && b.Blocks() {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.bookings {
		if f.bookings[i].ID.String() == id {
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRepo) ListByClient(_ context.Context, clientID string, limit, offset int) ([]Booking, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []Booking
	for i := range f.bookings {
		if f.bookings[i].ClientID.String() == clientID {
			out = append(out, f.bookings[i])
		}
	}
	return out, len(out), nil
}

func (f *fakeRepo) ListByPhotographer(_ context.Context, photographerID string, limit, offset int) ([]Booking, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []Booking
	for i := range f.bookings {
		if f.bookings[i].PhotographerID.String() == photographerID {
			out = append(out, f.bookings[i])
		}
	}
	return out, len(out), nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.bookings {
		if f.bookings[i].ID.String() == id {
			f.bookings[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeRepo) CountByStatus(_ context.Context) (map[string]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	counts := map[string]int{}
	for i := range f.bookings {
		counts[f.bookings[i].Status]++
	}
	return counts, nil
}

func newTestService(repo Repository) *Service {
	svc := NewService(repo, nil)
	svc.now = func() time.Time {
		return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func hours(n int) *int {
	return &n
}

func validRequest(photographerID uuid.UUID) CreateRequest {
	return CreateRequest{
		PhotographerID: photographerID.String(),
		EventDate:      "2024-05-18",
		StartHour:      10,
		DurationHours:  hours(2),
		EventType:      "wedding",
		Location:       "Mumbai",
	}
}

func TestSubmitValidation(t *testing.T) {
	photographerID := uuid.New()

	tests := []struct {
		name    string
		mutate  func(*CreateRequest)
		wantErr error
	}{
		{"bad date", func(r *CreateRequest) { r.EventDate = "18-05-2024" }, ErrInvalidDate},
		{"past date", func(r *CreateRequest) { r.EventDate = "2023-12-31" }, ErrPastDate},
		{"negative start", func(r *CreateRequest) { r.StartHour = -1 }, ErrInvalidStartHour},
		{"start too late", func(r *CreateRequest) { r.StartHour = 24 }, ErrInvalidStartHour},
		{"zero duration", func(r *CreateRequest) { r.DurationHours = hours(0) }, ErrInvalidDuration},
		{"duration too long", func(r *CreateRequest) { r.DurationHours = hours(13) }, ErrInvalidDuration},
		{"range past midnight", func(r *CreateRequest) { r.StartHour = 20; r.DurationHours = hours(5) }, ErrInvalidDuration},
		{"bad photographer id", func(r *CreateRequest) { r.PhotographerID = "not-a-uuid" }, ErrPhotographerNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(&fakeRepo{})
			req := validRequest(photographerID)
			tt.mutate(&req)

			_, err := svc.Submit(context.Background(), uuid.New(), req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Submit() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSubmitCreatesPendingBooking(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)
	clientID := uuid.New()

	b, err := svc.Submit(context.Background(), clientID, validRequest(uuid.New()))
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if b.Status != StatusPending {
		t.Errorf("status = %q, want %q", b.Status, StatusPending)
	}
	if b.ClientID != clientID {
		t.Errorf("client ID not recorded")
	}
	if b.EndHour() != 12 {
		t.Errorf("end hour = %d, want 12", b.EndHour())
	}
	if len(repo.bookings) != 1 {
		t.Fatalf("stored %d bookings, want 1", len(repo.bookings))
	}
}

func TestSubmitDefaultsDuration(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	req := validRequest(uuid.New())
	req.DurationHours = nil

	b, err := svc.Submit(context.Background(), uuid.New(), req)
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if b.DurationHours != 2 {
		t.Errorf("duration = %d, want the platform default 2", b.DurationHours)
	}
}

func TestSubmitConflictReportsRanges(t *testing.T) {
	photographerID := uuid.New()
	repo := &fakeRepo{}
	svc := newTestService(repo)

	if _, err := svc.Submit(context.Background(), uuid.New(), validRequest(photographerID)); err != nil {
		t.Fatalf("first Submit() error = %v", err)
	}

	req := validRequest(photographerID)
	req.StartHour = 11 // overlaps the 10-12 booking
	_, err := svc.Submit(context.Background(), uuid.New(), req)

	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("Submit() error = %v, want ConflictError", err)
	}
	if len(conflict.Conflicts) != 1 {
		t.Fatalf("conflicts = %d, want 1", len(conflict.Conflicts))
	}
	if conflict.Conflicts[0].StartHour != 10 || conflict.Conflicts[0].EndHour != 12 {
		t.Errorf("conflict range = %+v, want 10-12", conflict.Conflicts[0])
	}
}

func TestSubmitBackToBackAllowed(t *testing.T) {
	photographerID := uuid.New()
	repo := &fakeRepo{}
	svc := newTestService(repo)

	if _, err := svc.Submit(context.Background(), uuid.New(), validRequest(photographerID)); err != nil {
		t.Fatalf("first Submit() error = %v", err)
	}

	req := validRequest(photographerID)
	req.StartHour = 12 // starts exactly when the first booking ends
	if _, err := svc.Submit(context.Background(), uuid.New(), req); err != nil {
		t.Errorf("back-to-back Submit() error = %v", err)
	}
}

func TestSubmitRetriesLostRace(t *testing.T) {
	// First insert is rejected as if a concurrent writer held the slot,
	// but the day reads back empty. The service must retry and succeed.
	repo := &fakeRepo{rejectInserts: 1}
	svc := newTestService(repo)

	b, err := svc.Submit(context.Background(), uuid.New(), validRequest(uuid.New()))
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if b == nil || len(repo.bookings) != 1 {
		t.Fatal("booking not stored after retry")
	}
	if repo.insertCalls != 2 {
		t.Errorf("insert calls = %d, want 2", repo.insertCalls)
	}
}

func TestSubmitGivesUpAfterSecondLoss(t *testing.T) {
	repo := &fakeRepo{rejectInserts: 2}
	svc := newTestService(repo)

	_, err := svc.Submit(context.Background(), uuid.New(), validRequest(uuid.New()))

	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("Submit() error = %v, want ConflictError", err)
	}
	if repo.insertCalls != 2 {
		t.Errorf("insert calls = %d, want 2", repo.insertCalls)
	}
}

func TestSubmitConcurrentDoubleBooking(t *testing.T) {
	photographerID := uuid.New()
	repo := &fakeRepo{}
	svc := newTestService(repo)

	const attempts = 8
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Submit(context.Background(), uuid.New(), validRequest(photographerID))
		}(i)
	}
	wg.Wait()

	var successes, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		default:
			var conflict *ConflictError
			if !errors.As(err, &conflict) {
				t.Fatalf("unexpected error: %v", err)
			}
			conflicts++
		}
	}

	if successes != 1 {
		t.Errorf("successes = %d, want exactly 1", successes)
	}
	if conflicts != attempts-1 {
		t.Errorf("conflicts = %d, want %d", conflicts, attempts-1)
	}
	if len(repo.bookings) != 1 {
		t.Errorf("stored %d bookings, want 1", len(repo.bookings))
	}
}

func TestIsAvailable(t *testing.T) {
	photographerID := uuid.New()
	repo := &fakeRepo{}
	svc := newTestService(repo)

	if _, err := svc.Submit(context.Background(), uuid.New(), validRequest(photographerID)); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	day := date("2024-05-18")

	free, err := svc.IsAvailable(context.Background(), photographerID.String(), day, 11, 1)
	if err != nil {
		t.Fatalf("IsAvailable() error = %v", err)
	}
	if free {
		t.Error("11:00 should be occupied")
	}

	free, err = svc.IsAvailable(context.Background(), photographerID.String(), day, 14, 2)
	if err != nil {
		t.Fatalf("IsAvailable() error = %v", err)
	}
	if !free {
		t.Error("14:00 should be free")
	}
}

func TestUpdateStatusRules(t *testing.T) {
	clientID := uuid.New()
	photographerID := uuid.New()
	otherID := uuid.New()

	setup := func(status string) (*Service, string) {
		repo := &fakeRepo{}
		svc := newTestService(repo)
		b := Booking{
			ID:             uuid.New(),
			ClientID:       clientID,
			PhotographerID: photographerID,
			EventDate:      date("2024-05-18"),
			StartHour:      10,
			DurationHours:  2,
			Status:         status,
		}
		repo.bookings = append(repo.bookings, b)
		return svc, b.ID.String()
	}

	t.Run("photographer confirms pending", func(t *testing.T) {
		svc, id := setup(StatusPending)
		b, err := svc.UpdateStatus(context.Background(), id, photographerID, "photographer", StatusConfirmed)
		if err != nil {
			t.Fatalf("UpdateStatus() error = %v", err)
		}
		if b.Status != StatusConfirmed {
			t.Errorf("status = %q, want confirmed", b.Status)
		}
	})

	t.Run("client cancels own booking", func(t *testing.T) {
		svc, id := setup(StatusConfirmed)
		if _, err := svc.UpdateStatus(context.Background(), id, clientID, "client", StatusCancelled); err != nil {
			t.Errorf("UpdateStatus() error = %v", err)
		}
	})

	t.Run("client cannot confirm", func(t *testing.T) {
		svc, id := setup(StatusPending)
		_, err := svc.UpdateStatus(context.Background(), id, clientID, "client", StatusConfirmed)
		if !errors.Is(err, ErrAccessDenied) {
			t.Errorf("error = %v, want ErrAccessDenied", err)
		}
	})

	t.Run("stranger denied", func(t *testing.T) {
		svc, id := setup(StatusPending)
		_, err := svc.UpdateStatus(context.Background(), id, otherID, "client", StatusCancelled)
		if !errors.Is(err, ErrAccessDenied) {
			t.Errorf("error = %v, want ErrAccessDenied", err)
		}
	})

	t.Run("invalid transition", func(t *testing.T) {
		svc, id := setup(StatusPending)
		_, err := svc.UpdateStatus(context.Background(), id, photographerID, "photographer", StatusCompleted)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("error = %v, want ErrInvalidTransition", err)
		}
	})

	t.Run("terminal status is frozen", func(t *testing.T) {
		svc, id := setup(StatusCancelled)
		_, err := svc.UpdateStatus(context.Background(), id, photographerID, "photographer", StatusConfirmed)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("error = %v, want ErrInvalidTransition", err)
		}
	})

	t.Run("admin overrides ownership", func(t *testing.T) {
		svc, id := setup(StatusPending)
		if _, err := svc.UpdateStatus(context.Background(), id, otherID, "admin", StatusConfirmed); err != nil {
			t.Errorf("UpdateStatus() error = %v", err)
		}
	})
}

func TestGetSlotsFreesCancelled(t *testing.T) {
	photographerID := uuid.New()
	repo := &fakeRepo{}
	svc := newTestService(repo)

	b, err := svc.Submit(context.Background(), uuid.New(), validRequest(photographerID))
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if err := repo.UpdateStatus(context.Background(), b.ID.String(), StatusCancelled); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}

	slots, err := svc.GetSlots(context.Background(), photographerID.String(), "2024-05-18", 2)
	if err != nil {
		t.Fatalf("GetSlots() error = %v", err)
	}
	// Nothing blocks, so the full 2 hour catalog (starts 9..18) is open.
	if len(slots.Slots) != 10 {
		t.Errorf("open slots = %d, want 10 after cancellation", len(slots.Slots))
	}
}
