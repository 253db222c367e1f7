package repositories

import (
	"context"
	"fmt"
	"strings"

	intconfig "bookingplan/internal/config"
	"bookingplan/internal/domain"
	"bookingplan/internal/domain/models"

	"github.com/jmoiron/sqlx"
)

const travelPlanColumns = `id, agency_id, departure, destination,
	DATE_FORMAT(plan_date, '%Y-%m-%d') AS plan_date,
	TIME_FORMAT(plan_time, '%H:%i') AS plan_time,
	price, total_seats, available_seats, status`

type TravelPlanRepo struct {
	DB *sqlx.DB
}

func (r TravelPlanRepo) db() *sqlx.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r TravelPlanRepo) GetByID(ctx context.Context, id int64) (models.TravelPlan, error) {
	var p models.TravelPlan
	err := r.db().GetContext(ctx, &p, `SELECT `+travelPlanColumns+` FROM travel_plans WHERE id = ? LIMIT 1`, id)
	if err != nil {
		return models.TravelPlan{}, fmt.Errorf("get travel plan %d: %w", id, err)
	}
	return p, nil
}

// LockByID reads the plan inside tx and holds its row lock until tx ends.
func (r TravelPlanRepo) LockByID(ctx context.Context, tx *sqlx.Tx, id int64) (models.TravelPlan, error) {
	var p models.TravelPlan
	err := tx.GetContext(ctx, &p, `SELECT `+travelPlanColumns+` FROM travel_plans WHERE id = ? FOR UPDATE`, id)
	if err != nil {
		return models.TravelPlan{}, fmt.Errorf("lock travel plan %d: %w", id, err)
	}
	return p, nil
}

// DecrementAvailable takes seats from the plan. It reports false when the
// plan no longer has that many seats, leaving the row unchanged.
func (r TravelPlanRepo) DecrementAvailable(ctx context.Context, tx *sqlx.Tx, id int64, seats int) (bool, error) {
	res, err := tx.ExecContext(ctx, `
		UPDATE travel_plans
		SET available_seats = available_seats - ?
		WHERE id = ? AND status = ? AND available_seats >= ?
	`, seats, id, domain.PlanActive, seats)
	if err != nil {
		return false, fmt.Errorf("decrement seats on plan %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r TravelPlanRepo) Create(ctx context.Context, p models.TravelPlan) (int64, error) {
	res, err := r.db().ExecContext(ctx, `
		INSERT INTO travel_plans
		(agency_id, departure, destination, plan_date, plan_time, price, total_seats, available_seats, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		p.AgencyID,
		p.Departure,
		p.Destination,
		p.Date,
		p.Time,
		p.Price,
		p.TotalSeats,
		p.AvailableSeats,
		p.Status,
	)
	if err != nil {
		return 0, fmt.Errorf("insert travel plan: %w", err)
	}
	return res.LastInsertId()
}

func (r TravelPlanRepo) List(ctx context.Context, f models.TravelPlanFilter) ([]models.TravelPlan, error) {
	where := []string{"1=1"}
	args := []any{}
	if f.Status != "" {
		where = append(where, "status = ?")
		args = append(args, f.Status)
	}
	if s := strings.TrimSpace(f.Departure); s != "" {
		where = append(where, "departure LIKE ?")
		args = append(args, "%"+s+"%")
	}
	if s := strings.TrimSpace(f.Destination); s != "" {
		where = append(where, "destination LIKE ?")
		args = append(args, "%"+s+"%")
	}
	if f.AgencyID > 0 {
		where = append(where, "agency_id = ?")
		args = append(args, f.AgencyID)
	}
	args = append(args, f.Limit(), f.Offset())

	query := `SELECT ` + travelPlanColumns + ` FROM travel_plans WHERE ` + strings.Join(where, " AND ") +
		` ORDER BY plan_date ASC, plan_time ASC, id ASC LIMIT ? OFFSET ?`

	out := []models.TravelPlan{}
	if err := r.db().SelectContext(ctx, &out, query, args...); err != nil {
		return nil, fmt.Errorf("list travel plans: %w", err)
	}
	return out, nil
}

// MarkComplete closes an active plan. It returns the number of rows changed.
func (r TravelPlanRepo) MarkComplete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db().ExecContext(ctx,
		`UPDATE travel_plans SET status = ? WHERE id = ? AND status = ?`,
		domain.PlanComplete, id, domain.PlanActive,
	)
	if err != nil {
		return 0, fmt.Errorf("complete travel plan %d: %w", id, err)
	}
	return res.RowsAffected()
}
