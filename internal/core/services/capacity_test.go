package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/hotel_booking/internal/core/domain"
	"github.com/srgjo27/hotel_booking/internal/core/ports/mocks"
	"github.com/srgjo27/hotel_booking/internal/core/services"
)

func bookingsFor(roomID int64, n int) []domain.Booking {
	out := make([]domain.Booking, n)
	for i := range out {
		out[i] = domain.Booking{ID: int64(i + 1), UserID: int64(100 + i), RoomID: roomID}
	}
	return out
}

func TestCapacityGuard_Check(t *testing.T) {
	ctx := context.Background()
	roomID := int64(4)

	tests := []struct {
		name     string
		capacity int
		occupied int
		wantErr  error
	}{
		{name: "free slot", capacity: 3, occupied: 2},
		{name: "empty room", capacity: 1, occupied: 0},
		{name: "full room", capacity: 3, occupied: 3, wantErr: domain.ErrRoomWithoutCapacity},
		{name: "zero capacity", capacity: 0, occupied: 0, wantErr: domain.ErrRoomWithoutCapacity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRoomRepo := mocks.NewRoomRepository(t)
			mockBookingRepo := mocks.NewBookingRepository(t)

			room := &domain.Room{ID: roomID, Name: "101", Capacity: tt.capacity, HotelID: 1}
			mockRoomRepo.On("FindByID", ctx, roomID).Return(room, nil)
			mockBookingRepo.On("ListByRoom", ctx, roomID).Return(bookingsFor(roomID, tt.occupied), nil)

			got, err := services.NewCapacityGuard(mockRoomRepo, mockBookingRepo).Check(ctx, roomID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, room, got)
		})
	}
}

func TestCapacityGuard_Check_RoomNotFound(t *testing.T) {
	ctx := context.Background()
	mockRoomRepo := mocks.NewRoomRepository(t)
	mockBookingRepo := mocks.NewBookingRepository(t)

	mockRoomRepo.On("FindByID", ctx, int64(99)).Return(nil, nil)

	got, err := services.NewCapacityGuard(mockRoomRepo, mockBookingRepo).Check(ctx, 99)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, got)
	mockBookingRepo.AssertNotCalled(t, "ListByRoom", ctx, int64(99))
}
