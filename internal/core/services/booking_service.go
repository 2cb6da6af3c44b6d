package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/srgjo27/hotel_booking/internal/core/domain"
	"github.com/srgjo27/hotel_booking/internal/core/ports"
)

type BookingService struct {
	eligibility *EligibilityEvaluator
	capacity    *CapacityGuard
	bookingRepo ports.BookingRepository
	publisher   ports.BookingEventPublisher
	log         zerolog.Logger
	now         func() time.Time
}

func NewBookingService(
	enrollmentRepo ports.EnrollmentRepository,
	ticketRepo ports.TicketRepository,
	roomRepo ports.RoomRepository,
	bookingRepo ports.BookingRepository,
	publisher ports.BookingEventPublisher,
	log zerolog.Logger,
) *BookingService {
	return &BookingService{
		eligibility: NewEligibilityEvaluator(enrollmentRepo, ticketRepo),
		capacity:    NewCapacityGuard(roomRepo, bookingRepo),
		bookingRepo: bookingRepo,
		publisher:   publisher,
		log:         log.With().Str("component", "booking_service").Logger(),
		now:         time.Now,
	}
}

func (s *BookingService) GetBooking(ctx context.Context, userID int64) (*domain.BookingWithRoom, error) {
	booking, err := s.bookingRepo.FindWithRoomByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, domain.NotFound("booking not found")
	}

	return booking, nil
}

// CreateBooking books roomID for userID and returns the new booking id.
func (s *BookingService) CreateBooking(ctx context.Context, userID, roomID int64) (int64, error) {
	if err := s.eligibility.Check(ctx, userID); err != nil {
		return 0, err
	}

	room, err := s.capacity.Check(ctx, roomID)
	if err != nil {
		return 0, err
	}

	booking, err := s.bookingRepo.Create(ctx, room.ID, userID, room.Capacity)
	if err != nil {
		return 0, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info().
		Int64("booking_id", booking.ID).
		Int64("user_id", userID).
		Int64("room_id", room.ID).
		Msg("booking created")

	s.publish(ctx, domain.BookingCreated, booking)

	return booking.ID, nil
}

// ChangeBooking moves the caller's booking to roomID. Eligibility is not
// re-evaluated. A move into the room the booking already occupies counts
// that booking against the room's capacity.
func (s *BookingService) ChangeBooking(ctx context.Context, userID, roomID, bookingID int64) (int64, error) {
	current, err := s.bookingRepo.FindByUserID(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("find booking: %w", err)
	}
	if current == nil {
		return 0, domain.Forbidden("user has no booking")
	}
	if current.ID != bookingID {
		return 0, domain.Forbidden("booking belongs to another user")
	}

	room, err := s.capacity.Check(ctx, roomID)
	if err != nil {
		return 0, err
	}

	booking, err := s.bookingRepo.Update(ctx, bookingID, room.ID, userID, room.Capacity)
	if err != nil {
		return 0, fmt.Errorf("update booking: %w", err)
	}

	s.log.Info().
		Int64("booking_id", booking.ID).
		Int64("user_id", userID).
		Int64("from_room_id", current.RoomID).
		Int64("to_room_id", room.ID).
		Msg("booking changed")

	s.publish(ctx, domain.BookingChanged, booking)

	return booking.ID, nil
}

func (s *BookingService) publish(ctx context.Context, eventType domain.BookingEventType, booking *domain.Booking) {
	if s.publisher == nil {
		return
	}

	event := domain.BookingEvent{
		Type:       eventType,
		BookingID:  booking.ID,
		UserID:     booking.UserID,
		RoomID:     booking.RoomID,
		OccurredAt: s.now().UTC(),
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn().Err(err).
			Str("event", string(eventType)).
			Int64("booking_id", booking.ID).
			Msg("failed to publish booking event")
	}
}
