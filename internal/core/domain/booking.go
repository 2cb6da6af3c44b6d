package domain

import (
	"time"
)

type Booking struct {
	ID        int64
	UserID    int64
	RoomID    int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookingWithRoom is the read model returned to a booking's owner.
type BookingWithRoom struct {
	ID   int64 `json:"id"`
	Room Room  `json:"Room"`
}

type BookingEventType string

const (
	BookingCreated BookingEventType = "booking.created"
	BookingChanged BookingEventType = "booking.changed"
)

type BookingEvent struct {
	Type       BookingEventType `json:"type"`
	BookingID  int64            `json:"bookingId"`
	UserID     int64            `json:"userId"`
	RoomID     int64            `json:"roomId"`
	OccurredAt time.Time        `json:"occurredAt"`
}
