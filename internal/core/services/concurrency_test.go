package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/hotel_booking/internal/core/domain"
	"github.com/srgjo27/hotel_booking/internal/core/services"
)

// memStore keeps every entity in memory. Create and Update apply the
// capacity precondition under one lock, like a store with a row lock.
type memStore struct {
	mu       sync.Mutex
	nextID   int64
	rooms    map[int64]domain.Room
	bookings map[int64]domain.Booking
}

func newMemStore(rooms ...domain.Room) *memStore {
	s := &memStore{rooms: map[int64]domain.Room{}, bookings: map[int64]domain.Booking{}}
	for _, r := range rooms {
		s.rooms[r.ID] = r
	}
	return s
}

func (s *memStore) FindByUserID(_ context.Context, userID int64) (*domain.Enrollment, error) {
	return &domain.Enrollment{ID: userID, UserID: userID}, nil
}

func (s *memStore) FindByEnrollmentID(_ context.Context, enrollmentID int64) (*domain.Ticket, error) {
	return paidHotelTicket(enrollmentID), nil
}

func (s *memStore) FindByID(_ context.Context, roomID int64) (*domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[roomID]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (s *memStore) countLocked(roomID int64) int {
	n := 0
	for _, b := range s.bookings {
		if b.RoomID == roomID {
			n++
		}
	}
	return n
}

type memBookings struct{ *memStore }

func (s memBookings) FindByUserID(_ context.Context, userID int64) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bookings {
		if b.UserID == userID {
			b := b
			return &b, nil
		}
	}
	return nil, nil
}

func (s memBookings) FindWithRoomByUserID(ctx context.Context, userID int64) (*domain.BookingWithRoom, error) {
	b, _ := s.FindByUserID(ctx, userID)
	if b == nil {
		return nil, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return &domain.BookingWithRoom{ID: b.ID, Room: s.rooms[b.RoomID]}, nil
}

func (s memBookings) ListByRoom(_ context.Context, roomID int64) ([]domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Booking
	for _, b := range s.bookings {
		if b.RoomID == roomID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s memBookings) Create(_ context.Context, roomID, userID int64, capacity int) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.countLocked(roomID) >= capacity {
		return nil, domain.ErrRoomWithoutCapacity
	}
	s.nextID++
	b := domain.Booking{ID: s.nextID, UserID: userID, RoomID: roomID}
	s.bookings[b.ID] = b
	return &b, nil
}

func (s memBookings) Update(_ context.Context, bookingID, roomID, userID int64, capacity int) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.countLocked(roomID) >= capacity {
		return nil, domain.ErrRoomWithoutCapacity
	}
	b := domain.Booking{ID: bookingID, UserID: userID, RoomID: roomID}
	s.bookings[bookingID] = b
	return &b, nil
}

func newMemService(store *memStore) *services.BookingService {
	return services.NewBookingService(store, store, store, memBookings{store}, nil, zerolog.Nop())
}

func TestCreateBooking_ConcurrentSingleSlot(t *testing.T) {
	store := newMemStore(domain.Room{ID: 1, Name: "101", Capacity: 1})
	svc := newMemService(store)

	const callers = 32
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			_, err := svc.CreateBooking(context.Background(), userID, 1)

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				succeeded++
				return
			}
			assert.ErrorIs(t, err, domain.ErrRoomWithoutCapacity)
			rejected++
		}(int64(i + 1))
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, callers-1, rejected)

	list, err := memBookings{store}.ListByRoom(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCreateBooking_ConcurrentNeverExceedsCapacity(t *testing.T) {
	store := newMemStore(domain.Room{ID: 1, Capacity: 3})
	svc := newMemService(store)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			_, _ = svc.CreateBooking(context.Background(), userID, 1)
		}(int64(i + 1))
	}
	wg.Wait()

	list, err := memBookings{store}.ListByRoom(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestChangeBooking_RoundTrip(t *testing.T) {
	store := newMemStore(
		domain.Room{ID: 1, Name: "101", Capacity: 2},
		domain.Room{ID: 2, Name: "102", Capacity: 1},
	)
	svc := newMemService(store)
	ctx := context.Background()

	id, err := svc.CreateBooking(ctx, 7, 1)
	require.NoError(t, err)

	changed, err := svc.ChangeBooking(ctx, 7, 2, id)
	require.NoError(t, err)
	assert.Equal(t, id, changed)

	got, err := svc.GetBooking(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Room.ID)

	// Room 2 is now full with the caller's own booking.
	_, err = svc.ChangeBooking(ctx, 7, 2, id)
	assert.ErrorIs(t, err, domain.ErrRoomWithoutCapacity)
}
