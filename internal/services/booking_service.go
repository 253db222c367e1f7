package services

import (
	"context"
	"fmt"

	intconfig "bookingplan/internal/config"
	intdb "bookingplan/internal/db"
	"bookingplan/internal/domain"
	"bookingplan/internal/domain/models"
	"bookingplan/internal/repositories"
	"bookingplan/internal/utils"
)

// BookingService books accommodation stays. A user holds at most one booking.
type BookingService struct {
	BookingRepo       repositories.BookingRepo
	AccommodationRepo repositories.AccommodationRepo
	RequestID         string
}

func (s BookingService) bookings() repositories.BookingRepo {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepo{DB: intconfig.DB}
}

func (s BookingService) accommodations() repositories.AccommodationRepo {
	if s.AccommodationRepo.DB != nil {
		return s.AccommodationRepo
	}
	return repositories.AccommodationRepo{DB: intconfig.DB}
}

func (s BookingService) Create(ctx context.Context, userID int64, in models.BookingInput) (models.Booking, error) {
	if err := validateStruct(in); err != nil {
		return models.Booking{}, err
	}
	checkIn, err := utils.ParseDate(in.CheckIn)
	if err != nil {
		return models.Booking{}, domain.ValidationError{Field: "check_in", Msg: "must be YYYY-MM-DD", Err: err}
	}
	checkOut, err := utils.ParseDate(in.CheckOut)
	if err != nil {
		return models.Booking{}, domain.ValidationError{Field: "check_out", Msg: "must be YYYY-MM-DD", Err: err}
	}
	nights := utils.Nights(checkIn, checkOut)
	if nights <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "check_out", Msg: "must be after check_in"}
	}

	acc, err := s.accommodations().GetByID(ctx, in.AccommodationID)
	if err != nil {
		return models.Booking{}, lookupError(err, "accommodation")
	}

	total, ok := utils.MulCents(int64(nights), acc.PricePerNight)
	if !ok {
		return models.Booking{}, domain.ValidationError{Field: "check_out", Msg: "total price out of range"}
	}

	b := models.Booking{
		UserID:          userID,
		AccommodationID: acc.ID,
		CheckIn:         utils.FormatDate(checkIn),
		CheckOut:        utils.FormatDate(checkOut),
		TotalPrice:      total,
	}
	id, err := s.bookings().Create(ctx, b)
	if err != nil {
		switch {
		case intdb.IsDuplicateKey(err):
			return models.Booking{}, domain.ConflictError{Resource: "booking", Msg: "user already has a booking", Err: err}
		case intdb.IsMissingReference(err):
			return models.Booking{}, domain.NotFoundError{Resource: "user", Err: err}
		}
		return models.Booking{}, domain.InternalError{Err: err}
	}
	b.ID = id

	utils.LogEvent(s.RequestID, "bookings", "create", fmt.Sprintf("booking_id=%d user_id=%d nights=%d", id, userID, nights))
	return b, nil
}

func (s BookingService) GetForUser(ctx context.Context, userID int64) (models.Booking, error) {
	b, err := s.bookings().GetByUserID(ctx, userID)
	if err != nil {
		return models.Booking{}, lookupError(err, "booking")
	}
	return b, nil
}
