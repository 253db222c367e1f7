package models

import "bookingplan/internal/domain"

type Agency struct {
	ID                 int64  `db:"id" json:"id"`
	Name               string `db:"name" json:"name" validate:"required,max=255"`
	Image              string `db:"image" json:"image" validate:"required,max=255"`
	Description        string `db:"description" json:"description" validate:"required"`
	ReceptionistUserID *int64 `db:"receptionist_user_id" json:"receptionist_user_id"`
}

type Accommodation struct {
	ID            int64                    `db:"id" json:"id"`
	Name          string                   `db:"name" json:"name" validate:"required,max=255"`
	Town          string                   `db:"town" json:"town" validate:"required,max=255"`
	Location      string                   `db:"location" json:"location" validate:"required,max=255"`
	Image         string                   `db:"image" json:"image" validate:"max=255"`
	PricePerNight int64                    `db:"price_per_night" json:"price_per_night" validate:"gte=0,lte=9999999999"`
	PhoneNumber   string                   `db:"phone_number" json:"phone_number" validate:"required,max=15"`
	Type          domain.AccommodationType `db:"type" json:"type" validate:"required,oneof=hotel apartment villa"`
	RoomType      string                   `db:"room_type" json:"room_type,omitempty" validate:"omitempty,oneof=Single Double Suite"`
}

type AccommodationFilter struct {
	Type string
	Town string
	domain.Pagination
}

type Destination struct {
	ID                 int64  `db:"id" json:"id"`
	Name               string `db:"name" json:"name" validate:"required,max=255"`
	Description        string `db:"description" json:"description" validate:"required"`
	City               string `db:"city" json:"city" validate:"required,max=100"`
	PopularAttractions string `db:"popular_attractions" json:"popular_attractions"`
	Image              string `db:"image" json:"image" validate:"required,max=255"`
}

// Booking is an accommodation stay; a user holds at most one.
type Booking struct {
	ID              int64  `db:"id" json:"id"`
	UserID          int64  `db:"user_id" json:"user_id"`
	AccommodationID int64  `db:"accommodation_id" json:"accommodation_id"`
	CheckIn         string `db:"check_in" json:"check_in"`
	CheckOut        string `db:"check_out" json:"check_out"`
	TotalPrice      int64  `db:"total_price" json:"total_price"`
}
