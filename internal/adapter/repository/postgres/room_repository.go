package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/srgjo27/hotel_booking/internal/core/domain"
)

type RoomRepository struct {
	db *sql.DB
}

func NewRoomRepository(db *sql.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) FindByID(ctx context.Context, roomID int64) (*domain.Room, error) {
	query := `
	SELECT id, name, capacity, hotel_id, created_at, updated_at
	FROM rooms
	WHERE id = $1
	`

	var room domain.Room
	err := r.db.QueryRowContext(ctx, query, roomID).Scan(
		&room.ID,
		&room.Name,
		&room.Capacity,
		&room.HotelID,
		&room.CreatedAt,
		&room.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("find room", err)
	}

	return &room, nil
}
