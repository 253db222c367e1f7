package models

import "bookingplan/internal/domain"

// TravelPlan is a scheduled trip with a fixed seat capacity.
type TravelPlan struct {
	ID             int64             `db:"id" json:"id"`
	AgencyID       int64             `db:"agency_id" json:"agency_id"`
	Departure      string            `db:"departure" json:"departure"`
	Destination    string            `db:"destination" json:"destination"`
	Date           string            `db:"plan_date" json:"date"`
	Time           string            `db:"plan_time" json:"time"`
	Price          int64             `db:"price" json:"price"`
	TotalSeats     int               `db:"total_seats" json:"total_seats"`
	AvailableSeats int               `db:"available_seats" json:"available_seats"`
	Status         domain.PlanStatus `db:"status" json:"status"`
}

// IsActive reports whether the plan still accepts reservations.
func (p TravelPlan) IsActive() bool {
	return p.Status == domain.PlanActive
}

// TravelPlanFilter narrows ListTravelPlans; empty fields match everything.
type TravelPlanFilter struct {
	Status      domain.PlanStatus
	Departure   string
	Destination string
	AgencyID    int64
	domain.Pagination
}
