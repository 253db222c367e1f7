package repositories

import (
	"context"
	"fmt"

	intconfig "bookingplan/internal/config"
	"bookingplan/internal/domain/models"

	"github.com/jmoiron/sqlx"
)

type BookingRepo struct {
	DB *sqlx.DB
}

func (r BookingRepo) db() *sqlx.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r BookingRepo) Create(ctx context.Context, b models.Booking) (int64, error) {
	res, err := r.db().ExecContext(ctx, `
		INSERT INTO bookings (user_id, accommodation_id, check_in, check_out, total_price)
		VALUES (?, ?, ?, ?, ?)
	`, b.UserID, b.AccommodationID, b.CheckIn, b.CheckOut, b.TotalPrice)
	if err != nil {
		return 0, fmt.Errorf("insert booking: %w", err)
	}
	return res.LastInsertId()
}

func (r BookingRepo) GetByUserID(ctx context.Context, userID int64) (models.Booking, error) {
	var b models.Booking
	err := r.db().GetContext(ctx, &b, `
		SELECT id, user_id, accommodation_id,
			DATE_FORMAT(check_in, '%Y-%m-%d') AS check_in,
			DATE_FORMAT(check_out, '%Y-%m-%d') AS check_out,
			total_price
		FROM bookings WHERE user_id = ? LIMIT 1
	`, userID)
	if err != nil {
		return models.Booking{}, fmt.Errorf("get booking for user %d: %w", userID, err)
	}
	return b, nil
}
