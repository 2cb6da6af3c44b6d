package ports

import (
	"context"

	"github.com/srgjo27/hotel_booking/internal/core/domain"
)

type BookingEventPublisher interface {
	Publish(ctx context.Context, event domain.BookingEvent) error
}
