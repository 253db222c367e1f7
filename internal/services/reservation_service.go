package services

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	intconfig "bookingplan/internal/config"
	intdb "bookingplan/internal/db"
	"bookingplan/internal/domain"
	"bookingplan/internal/domain/models"
	"bookingplan/internal/repositories"
	"bookingplan/internal/utils"

	"github.com/jmoiron/sqlx"
)

const (
	minIDCardLength = 5
	maxIDCardLength = 50
)

// ReservationService records reservations against travel plan capacity.
type ReservationService struct {
	DB              *sqlx.DB
	PlanRepo        repositories.TravelPlanRepo
	ReservationRepo repositories.ReservationRepo
	RequestID       string
	Now             func() time.Time
}

func (s ReservationService) db() *sqlx.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s ReservationService) plans() repositories.TravelPlanRepo {
	if s.PlanRepo.DB != nil {
		return s.PlanRepo
	}
	return repositories.TravelPlanRepo{DB: s.db()}
}

func (s ReservationService) reservations() repositories.ReservationRepo {
	if s.ReservationRepo.DB != nil {
		return s.ReservationRepo
	}
	return repositories.ReservationRepo{DB: s.db()}
}

func (s ReservationService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Create validates in against the locked plan row, takes the seats and
// stores the reservation in one transaction.
func (s ReservationService) Create(ctx context.Context, in models.ReservationInput) (models.Reservation, error) {
	if in.TravelPlanID <= 0 {
		return models.Reservation{}, domain.ValidationError{Field: "travel_plan_id", Msg: "invalid id"}
	}
	if in.UserID <= 0 {
		return models.Reservation{}, domain.ValidationError{Field: "user_id", Msg: "invalid id"}
	}

	tx, err := s.db().BeginTxx(ctx, nil)
	if err != nil {
		return models.Reservation{}, domain.InternalError{Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	plan, err := s.plans().LockByID(ctx, tx, in.TravelPlanID)
	if err != nil {
		return models.Reservation{}, lookupError(err, "travel plan")
	}

	if err := CheckReservation(plan, in.Seats, in.IDCardNumber); err != nil {
		return models.Reservation{}, err
	}

	total, ok := utils.MulCents(int64(in.Seats), plan.Price)
	if !ok {
		return models.Reservation{}, domain.ValidationError{Field: "seats", Msg: "total price out of range"}
	}

	ok, err = s.plans().DecrementAvailable(ctx, tx, plan.ID, in.Seats)
	if err != nil {
		return models.Reservation{}, domain.InternalError{Err: err}
	}
	if !ok {
		return models.Reservation{}, domain.CapacityExceededError{Requested: in.Seats, Available: plan.AvailableSeats}
	}

	res := models.Reservation{
		TravelPlanID: plan.ID,
		UserID:       in.UserID,
		Seats:        in.Seats,
		TotalPrice:   total,
		IDCardNumber: in.IDCardNumber,
		ReservedAt:   s.now().UTC().Truncate(time.Second),
	}
	id, err := s.reservations().Insert(ctx, tx, res)
	if err != nil {
		if intdb.IsMissingReference(err) {
			return models.Reservation{}, domain.NotFoundError{Resource: "user", Err: err}
		}
		return models.Reservation{}, domain.InternalError{Err: err}
	}
	res.ID = id

	if err := tx.Commit(); err != nil {
		return models.Reservation{}, domain.InternalError{Err: err}
	}

	utils.LogEvent(s.RequestID, "reservations", "create", fmt.Sprintf(
		"reservation_id=%d plan_id=%d user_id=%d seats=%d remaining=%d",
		res.ID, plan.ID, res.UserID, res.Seats, plan.AvailableSeats-res.Seats,
	))
	return res, nil
}

// CheckReservation applies the reservation rules in order: plan state,
// seat count, capacity, then the identity document.
func CheckReservation(plan models.TravelPlan, seats int, idCard string) error {
	if !plan.IsActive() {
		return domain.InvalidStateError{
			Resource: "travel plan",
			State:    string(plan.Status),
			Msg:      "reservations can only be made for active travel plans",
		}
	}
	if seats <= 0 {
		return domain.ValidationError{Field: "seats", Msg: "must be greater than zero"}
	}
	if seats > plan.AvailableSeats {
		return domain.CapacityExceededError{Requested: seats, Available: plan.AvailableSeats}
	}
	if !utils.IsAlphanumeric(idCard) || utf8.RuneCountInString(idCard) < minIDCardLength {
		return domain.ValidationError{Field: "id_card_number", Msg: "must be alphanumeric and at least 5 characters long"}
	}
	if utf8.RuneCountInString(idCard) > maxIDCardLength {
		return domain.ValidationError{Field: "id_card_number", Msg: "must be at most 50 characters"}
	}
	return nil
}

// Get returns a reservation visible to rc: its owner, admins and agency staff.
func (s ReservationService) Get(ctx context.Context, id int64, rc domain.RequestContext) (models.Reservation, error) {
	if id <= 0 {
		return models.Reservation{}, domain.ValidationError{Field: "id", Msg: "invalid id"}
	}
	res, err := s.reservations().GetByID(ctx, id)
	if err != nil {
		return models.Reservation{}, lookupError(err, "reservation")
	}
	if res.UserID != rc.UserID && !rc.HasRole(domain.RoleAdmin, domain.RoleAgencyReceptionist) {
		return models.Reservation{}, domain.NotFoundError{Resource: "reservation"}
	}
	return res, nil
}

func (s ReservationService) ListForUser(ctx context.Context, userID int64, page domain.Pagination) ([]models.Reservation, error) {
	out, err := s.reservations().ListByUser(ctx, userID, page)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

func (s ReservationService) ListForPlan(ctx context.Context, planID int64, page domain.Pagination) ([]models.Reservation, error) {
	if _, err := s.plans().GetByID(ctx, planID); err != nil {
		return nil, lookupError(err, "travel plan")
	}
	out, err := s.reservations().ListByPlan(ctx, planID, page)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}
