package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/lib/pq"

	"github.com/srgjo27/hotel_booking/internal/core/domain"
)

// wrapErr classifies err for the core. Connection loss, timeouts, server
// shutdown and serialization conflicts become transient; the rest stay as
// wrapped driver errors.
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if isTransient(err) {
		return domain.Unavailable(op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Class() {
		case "08", "53", "57":
			return true
		}
		switch pqErr.Code {
		case "40001", "40P01":
			return true
		}
		return false
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
