package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/srgjo27/hotel_booking/internal/core/domain"
)

type BookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) FindByUserID(ctx context.Context, userID int64) (*domain.Booking, error) {
	query := `
	SELECT id, user_id, room_id, created_at, updated_at
	FROM bookings
	WHERE user_id = $1
	ORDER BY id
	LIMIT 1
	`

	var booking domain.Booking
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.RoomID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("find booking", err)
	}

	return &booking, nil
}

func (r *BookingRepository) FindWithRoomByUserID(ctx context.Context, userID int64) (*domain.BookingWithRoom, error) {
	query := `
	SELECT b.id, r.id, r.name, r.capacity, r.hotel_id, r.created_at, r.updated_at
	FROM bookings b
	JOIN rooms r ON r.id = b.room_id
	WHERE b.user_id = $1
	ORDER BY b.id
	LIMIT 1
	`

	var out domain.BookingWithRoom
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&out.ID,
		&out.Room.ID,
		&out.Room.Name,
		&out.Room.Capacity,
		&out.Room.HotelID,
		&out.Room.CreatedAt,
		&out.Room.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("find booking with room", err)
	}

	return &out, nil
}

func (r *BookingRepository) ListByRoom(ctx context.Context, roomID int64) ([]domain.Booking, error) {
	query := `
	SELECT id, user_id, room_id, created_at, updated_at
	FROM bookings
	WHERE room_id = $1
	ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, roomID)
	if err != nil {
		return nil, wrapErr("list room bookings", err)
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.RoomID, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, wrapErr("scan booking", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("iterate room bookings", err)
	}

	return bookings, nil
}

// Create inserts a booking while the room row is locked, so concurrent
// writers to the same room are serialized and the count stays exact.
func (r *BookingRepository) Create(ctx context.Context, roomID, userID int64, capacity int) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, wrapErr("begin tx", err)
	}
	defer tx.Rollback()

	if err := lockRoomWithVacancy(ctx, tx, roomID, capacity); err != nil {
		return nil, err
	}

	query := `
	INSERT INTO bookings (user_id, room_id)
	VALUES ($1, $2)
	RETURNING id, user_id, room_id, created_at, updated_at
	`

	var booking domain.Booking
	err = tx.QueryRowContext(ctx, query, userID, roomID).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.RoomID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, wrapErr("insert booking", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, wrapErr("commit booking", err)
	}

	return &booking, nil
}

// Update rewrites bookingID to (roomID, userID) under the same room lock as
// Create. The booking being moved is included in the target room's count.
func (r *BookingRepository) Update(ctx context.Context, bookingID, roomID, userID int64, capacity int) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, wrapErr("begin tx", err)
	}
	defer tx.Rollback()

	if err := lockRoomWithVacancy(ctx, tx, roomID, capacity); err != nil {
		return nil, err
	}

	query := `
	UPDATE bookings
	SET room_id = $1, user_id = $2, updated_at = NOW()
	WHERE id = $3
	RETURNING id, user_id, room_id, created_at, updated_at
	`

	var booking domain.Booking
	err = tx.QueryRowContext(ctx, query, roomID, userID, bookingID).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.RoomID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, wrapErr("update booking", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, wrapErr("commit booking", err)
	}

	return &booking, nil
}

// lockRoomWithVacancy locks the room row and checks the occupancy against the
// smaller of the caller's expected capacity and the locked row's capacity.
func lockRoomWithVacancy(ctx context.Context, tx *sql.Tx, roomID int64, capacity int) error {
	var roomCapacity int
	err := tx.QueryRowContext(ctx, `SELECT capacity FROM rooms WHERE id = $1 FOR UPDATE`, roomID).Scan(&roomCapacity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return wrapErr("lock room", err)
	}

	var occupied int
	err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM bookings WHERE room_id = $1`, roomID).Scan(&occupied)
	if err != nil {
		return wrapErr("count room bookings", err)
	}

	if occupied >= min(capacity, roomCapacity) {
		return domain.ErrRoomWithoutCapacity
	}

	return nil
}
