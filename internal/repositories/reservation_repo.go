package repositories

import (
	"context"
	"fmt"

	intconfig "bookingplan/internal/config"
	"bookingplan/internal/domain"
	"bookingplan/internal/domain/models"

	"github.com/jmoiron/sqlx"
)

const reservationColumns = `id, travel_plan_id, user_id, seats, total_price, id_card_number, reserved_at`

type ReservationRepo struct {
	DB *sqlx.DB
}

func (r ReservationRepo) db() *sqlx.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Insert stores res inside tx and returns the new id.
func (r ReservationRepo) Insert(ctx context.Context, tx *sqlx.Tx, res models.Reservation) (int64, error) {
	out, err := tx.ExecContext(ctx, `
		INSERT INTO reservations
		(travel_plan_id, user_id, seats, total_price, id_card_number, reserved_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		res.TravelPlanID,
		res.UserID,
		res.Seats,
		res.TotalPrice,
		res.IDCardNumber,
		res.ReservedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert reservation: %w", err)
	}
	return out.LastInsertId()
}

func (r ReservationRepo) GetByID(ctx context.Context, id int64) (models.Reservation, error) {
	var res models.Reservation
	err := r.db().GetContext(ctx, &res, `SELECT `+reservationColumns+` FROM reservations WHERE id = ? LIMIT 1`, id)
	if err != nil {
		return models.Reservation{}, fmt.Errorf("get reservation %d: %w", id, err)
	}
	return res, nil
}

func (r ReservationRepo) ListByUser(ctx context.Context, userID int64, page domain.Pagination) ([]models.Reservation, error) {
	return r.list(ctx, "user_id", userID, page)
}

func (r ReservationRepo) ListByPlan(ctx context.Context, planID int64, page domain.Pagination) ([]models.Reservation, error) {
	return r.list(ctx, "travel_plan_id", planID, page)
}

func (r ReservationRepo) list(ctx context.Context, col string, id int64, page domain.Pagination) ([]models.Reservation, error) {
	out := []models.Reservation{}
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE ` + col + ` = ? ORDER BY reserved_at DESC, id DESC LIMIT ? OFFSET ?`
	if err := r.db().SelectContext(ctx, &out, query, id, page.Limit(), page.Offset()); err != nil {
		return nil, fmt.Errorf("list reservations by %s: %w", col, err)
	}
	return out, nil
}
