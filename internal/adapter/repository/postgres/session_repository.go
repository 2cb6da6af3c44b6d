package postgres

import (
	"context"
	"database/sql"
	"errors"
)

type SessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) FindUserIDByToken(ctx context.Context, token string) (int64, bool, error) {
	var userID int64
	err := r.db.QueryRowContext(ctx, `SELECT user_id FROM sessions WHERE token = $1 LIMIT 1`, token).Scan(&userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, wrapErr("find session", err)
	}

	return userID, true, nil
}
