package ports

import (
	"context"

	"github.com/srgjo27/hotel_booking/internal/core/domain"
)

// Find methods return (nil, nil) when no row matches. Infrastructure
// failures that are worth retrying come back as domain.KindTransient.

type EnrollmentRepository interface {
	FindByUserID(ctx context.Context, userID int64) (*domain.Enrollment, error)
}

type TicketRepository interface {
	FindByEnrollmentID(ctx context.Context, enrollmentID int64) (*domain.Ticket, error)
}

type RoomRepository interface {
	FindByID(ctx context.Context, roomID int64) (*domain.Room, error)
}

// BookingRepository writes are conditional: Create and Update succeed only
// while the target room holds fewer than capacity bookings, checked and
// applied atomically. Otherwise they return domain.ErrRoomWithoutCapacity.
type BookingRepository interface {
	FindByUserID(ctx context.Context, userID int64) (*domain.Booking, error)
	FindWithRoomByUserID(ctx context.Context, userID int64) (*domain.BookingWithRoom, error)
	ListByRoom(ctx context.Context, roomID int64) ([]domain.Booking, error)
	Create(ctx context.Context, roomID, userID int64, capacity int) (*domain.Booking, error)
	Update(ctx context.Context, bookingID, roomID, userID int64, capacity int) (*domain.Booking, error)
}

type SessionRepository interface {
	FindUserIDByToken(ctx context.Context, token string) (int64, bool, error)
}
