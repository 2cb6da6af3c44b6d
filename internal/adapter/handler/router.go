package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/srgjo27/hotel_booking/internal/core/ports"
)

func NewRouter(bookings *BookingHandler, sessions ports.SessionRepository, requestTimeout time.Duration, log zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(log))

	r.Get("/health", HealthCheck)

	r.Route("/booking", func(r chi.Router) {
		r.Use(RequestTimeout(requestTimeout))
		r.Use(Authenticate(sessions, log))

		r.Get("/", bookings.GetBooking)
		r.Post("/", bookings.CreateBooking)
		r.Put("/{bookingId}", bookings.ChangeBooking)
	})

	return r
}
