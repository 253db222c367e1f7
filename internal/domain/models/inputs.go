package models

// TravelPlanInput is the create payload for a travel plan. Price is a
// decimal string such as "120.50".
type TravelPlanInput struct {
	AgencyID       int64  `json:"agency_id" validate:"required,gt=0"`
	Departure      string `json:"departure" validate:"required,max=100"`
	Destination    string `json:"destination" validate:"required,max=100"`
	Date           string `json:"date" validate:"required,datetime=2006-01-02"`
	Time           string `json:"time" validate:"required"`
	Price          string `json:"price" validate:"required"`
	TotalSeats     int    `json:"total_seats" validate:"gte=0"`
	AvailableSeats *int   `json:"available_seats" validate:"omitempty,gte=0"`
	Status         string `json:"status" validate:"omitempty,oneof=active complete"`
}

type RegisterInput struct {
	Username string `json:"username" validate:"required,max=150"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"omitempty,oneof=admin accommodation_receptionist agency_receptionist client"`
}

type LoginInput struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type BookingInput struct {
	AccommodationID int64  `json:"accommodation_id" validate:"required,gt=0"`
	CheckIn         string `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut        string `json:"check_out" validate:"required,datetime=2006-01-02"`
}
