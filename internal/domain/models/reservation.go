package models

import "time"

// Reservation is a booking of Seats seats on a travel plan. It is never updated.
type Reservation struct {
	ID           int64     `db:"id" json:"id"`
	TravelPlanID int64     `db:"travel_plan_id" json:"travel_plan_id"`
	UserID       int64     `db:"user_id" json:"user_id"`
	Seats        int       `db:"seats" json:"seats"`
	TotalPrice   int64     `db:"total_price" json:"total_price"`
	IDCardNumber string    `db:"id_card_number" json:"-"`
	ReservedAt   time.Time `db:"reserved_at" json:"reserved_at"`
}

// ReservationInput is what a caller supplies to the ledger.
type ReservationInput struct {
	TravelPlanID int64
	UserID       int64
	Seats        int
	IDCardNumber string
}
