package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/srgjo27/hotel_booking/internal/core/domain"
)

type TicketRepository struct {
	db *sql.DB
}

func NewTicketRepository(db *sql.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// FindByEnrollmentID returns the enrollment's ticket joined with its type.
// When several exist the oldest wins.
func (r *TicketRepository) FindByEnrollmentID(ctx context.Context, enrollmentID int64) (*domain.Ticket, error) {
	query := `
	SELECT t.id, t.ticket_type_id, t.enrollment_id, t.status, t.created_at, t.updated_at,
		tt.id, tt.name, tt.price, tt.is_remote, tt.includes_hotel
	FROM tickets t
	JOIN ticket_types tt ON tt.id = t.ticket_type_id
	WHERE t.enrollment_id = $1
	ORDER BY t.id
	LIMIT 1
	`

	var ticket domain.Ticket
	err := r.db.QueryRowContext(ctx, query, enrollmentID).Scan(
		&ticket.ID,
		&ticket.TicketTypeID,
		&ticket.EnrollmentID,
		&ticket.Status,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
		&ticket.TicketType.ID,
		&ticket.TicketType.Name,
		&ticket.TicketType.Price,
		&ticket.TicketType.IsRemote,
		&ticket.TicketType.IncludesHotel,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("find ticket", err)
	}

	return &ticket, nil
}
