package domain

import "time"

type Room struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	HotelID   int64     `json:"hotelId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasVacancy reports whether occupied bookings leave a free slot.
// A zero-capacity room never has one.
func (r *Room) HasVacancy(occupied int) bool {
	return occupied < r.Capacity
}
