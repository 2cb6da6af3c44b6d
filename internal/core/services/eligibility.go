package services

import (
	"context"
	"fmt"

	"github.com/srgjo27/hotel_booking/internal/core/domain"
	"github.com/srgjo27/hotel_booking/internal/core/ports"
)

// EligibilityEvaluator decides whether a user may hold a hotel booking at all.
type EligibilityEvaluator struct {
	enrollmentRepo ports.EnrollmentRepository
	ticketRepo     ports.TicketRepository
}

func NewEligibilityEvaluator(enrollmentRepo ports.EnrollmentRepository, ticketRepo ports.TicketRepository) *EligibilityEvaluator {
	return &EligibilityEvaluator{
		enrollmentRepo: enrollmentRepo,
		ticketRepo:     ticketRepo,
	}
}

// Check runs the rules in order and stops at the first failure: the user
// needs an enrollment, a ticket on it, and that ticket must be paid, in
// person, and include a hotel stay.
func (e *EligibilityEvaluator) Check(ctx context.Context, userID int64) error {
	enrollment, err := e.enrollmentRepo.FindByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("find enrollment: %w", err)
	}
	if enrollment == nil {
		return domain.NotFound("enrollment not found")
	}

	ticket, err := e.ticketRepo.FindByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		return fmt.Errorf("find ticket: %w", err)
	}
	if ticket == nil {
		return domain.NotFound("ticket not found")
	}

	if ticket.Status == domain.TicketReserved {
		return domain.Forbidden("ticket is not paid")
	}
	if ticket.TicketType.IsRemote {
		return domain.Forbidden("ticket is remote")
	}
	if !ticket.TicketType.IncludesHotel {
		return domain.Forbidden("ticket does not include hotel")
	}

	return nil
}
