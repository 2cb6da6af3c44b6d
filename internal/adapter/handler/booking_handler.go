package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/srgjo27/hotel_booking/internal/core/domain"
)

type BookingService interface {
	GetBooking(ctx context.Context, userID int64) (*domain.BookingWithRoom, error)
	CreateBooking(ctx context.Context, userID, roomID int64) (int64, error)
	ChangeBooking(ctx context.Context, userID, roomID, bookingID int64) (int64, error)
}

type BookingRequest struct {
	RoomID int64 `json:"roomId" validate:"required,gt=0"`
}

type BookingResponse struct {
	BookingID int64 `json:"bookingId"`
}

type BookingHandler struct {
	svc BookingService
	log zerolog.Logger
}

func NewBookingHandler(svc BookingService, log zerolog.Logger) *BookingHandler {
	return &BookingHandler{svc: svc, log: log}
}

// GetBooking handles GET /booking.
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	booking, err := h.svc.GetBooking(r.Context(), userID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, booking)
}

// CreateBooking handles POST /booking.
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req BookingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	bookingID, err := h.svc.CreateBooking(r.Context(), userID, req.RoomID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, BookingResponse{BookingID: bookingID})
}

// ChangeBooking handles PUT /booking/{bookingId}.
func (h *BookingHandler) ChangeBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	bookingID, err := strconv.ParseInt(chi.URLParam(r, "bookingId"), 10, 64)
	if err != nil || bookingID <= 0 {
		writeError(w, http.StatusBadRequest, "invalid booking id")
		return
	}

	var req BookingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	changedID, err := h.svc.ChangeBooking(r.Context(), userID, req.RoomID, bookingID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, BookingResponse{BookingID: changedID})
}

func (h *BookingHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)

	switch status {
	case http.StatusInternalServerError:
		h.log.Error().Err(err).Str("request_id", middleware.GetReqID(r.Context())).Msg("booking request failed")
	case http.StatusServiceUnavailable:
		h.log.Warn().Err(err).Str("request_id", middleware.GetReqID(r.Context())).Msg("store unavailable")
	default:
		h.log.Debug().Err(err).Int("status", status).Msg("booking request rejected")
	}

	writeError(w, status, domain.PublicMessage(err))
}

func HealthCheck(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
