package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/srgjo27/hotel_booking/internal/core/domain"
)

type EnrollmentRepository struct {
	db *sql.DB
}

func NewEnrollmentRepository(db *sql.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

func (r *EnrollmentRepository) FindByUserID(ctx context.Context, userID int64) (*domain.Enrollment, error) {
	query := `
	SELECT e.id, e.name, e.cpf, e.birthday, e.phone, e.user_id, e.created_at, e.updated_at,
		a.id, a.cep, a.street, a.city, a.state, a.number, a.neighborhood, a.address_detail
	FROM enrollments e
	LEFT JOIN addresses a ON a.enrollment_id = e.id
	WHERE e.user_id = $1
	`

	var enrollment domain.Enrollment
	var (
		addrID                                         sql.NullInt64
		cep, street, city, state, number, neighborhood sql.NullString
		detail                                         sql.NullString
	)

	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&enrollment.ID,
		&enrollment.Name,
		&enrollment.CPF,
		&enrollment.Birthday,
		&enrollment.Phone,
		&enrollment.UserID,
		&enrollment.CreatedAt,
		&enrollment.UpdatedAt,
		&addrID,
		&cep,
		&street,
		&city,
		&state,
		&number,
		&neighborhood,
		&detail,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("find enrollment", err)
	}

	if addrID.Valid {
		enrollment.Address = &domain.Address{
			ID:            addrID.Int64,
			CEP:           cep.String,
			Street:        street.String,
			City:          city.String,
			State:         state.String,
			Number:        number.String,
			Neighborhood:  neighborhood.String,
			AddressDetail: detail.String,
			EnrollmentID:  enrollment.ID,
		}
	}

	return &enrollment, nil
}
