package domain

import "time"

type TicketStatus string

const (
	TicketReserved TicketStatus = "RESERVED"
	TicketPaid     TicketStatus = "PAID"
)

type TicketType struct {
	ID            int64
	Name          string
	Price         int
	IsRemote      bool
	IncludesHotel bool
}

type Ticket struct {
	ID           int64
	TicketTypeID int64
	EnrollmentID int64
	Status       TicketStatus
	TicketType   TicketType
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
