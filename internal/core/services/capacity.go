package services

import (
	"context"
	"fmt"

	"github.com/srgjo27/hotel_booking/internal/core/domain"
	"github.com/srgjo27/hotel_booking/internal/core/ports"
)

type CapacityGuard struct {
	roomRepo    ports.RoomRepository
	bookingRepo ports.BookingRepository
}

func NewCapacityGuard(roomRepo ports.RoomRepository, bookingRepo ports.BookingRepository) *CapacityGuard {
	return &CapacityGuard{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
	}
}

// Check returns the room when it currently has a free slot. Every booking
// that references the room counts, the caller's own included.
//
// The answer is advisory: the store re-checks capacity atomically on write.
func (g *CapacityGuard) Check(ctx context.Context, roomID int64) (*domain.Room, error) {
	room, err := g.roomRepo.FindByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return nil, domain.NotFound("room not found")
	}

	bookings, err := g.bookingRepo.ListByRoom(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("list room bookings: %w", err)
	}

	if !room.HasVacancy(len(bookings)) {
		return nil, domain.RoomWithoutCapacity()
	}

	return room, nil
}
