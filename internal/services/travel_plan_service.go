package services

import (
	"context"
	"fmt"
	"strings"

	intconfig "bookingplan/internal/config"
	intdb "bookingplan/internal/db"
	"bookingplan/internal/domain"
	"bookingplan/internal/domain/models"
	"bookingplan/internal/repositories"
	"bookingplan/internal/utils"

	"github.com/jmoiron/sqlx"
)

type TravelPlanService struct {
	DB        *sqlx.DB
	PlanRepo  repositories.TravelPlanRepo
	RequestID string
}

func (s TravelPlanService) plans() repositories.TravelPlanRepo {
	if s.PlanRepo.DB != nil {
		return s.PlanRepo
	}
	if s.DB != nil {
		return repositories.TravelPlanRepo{DB: s.DB}
	}
	return repositories.TravelPlanRepo{DB: intconfig.DB}
}

func (s TravelPlanService) Create(ctx context.Context, in models.TravelPlanInput) (models.TravelPlan, error) {
	if err := validateStruct(in); err != nil {
		return models.TravelPlan{}, err
	}
	plan, err := buildTravelPlan(in)
	if err != nil {
		return models.TravelPlan{}, err
	}

	id, err := s.plans().Create(ctx, plan)
	if err != nil {
		if intdb.IsMissingReference(err) {
			return models.TravelPlan{}, domain.ValidationError{Field: "agency_id", Msg: "agency does not exist", Err: err}
		}
		return models.TravelPlan{}, domain.InternalError{Err: err}
	}
	plan.ID = id

	utils.LogEvent(s.RequestID, "travel_plans", "create", fmt.Sprintf("plan_id=%d seats=%d", id, plan.TotalSeats))
	return plan, nil
}

func buildTravelPlan(in models.TravelPlanInput) (models.TravelPlan, error) {
	clock, err := utils.ParseClock(in.Time)
	if err != nil {
		return models.TravelPlan{}, domain.ValidationError{Field: "time", Msg: "must be HH:MM", Err: err}
	}
	price, err := utils.ParseCents(in.Price)
	if err != nil {
		return models.TravelPlan{}, domain.ValidationError{Field: "price", Msg: "must be a non-negative amount with at most 2 decimals", Err: err}
	}

	available := in.TotalSeats
	if in.AvailableSeats != nil {
		available = *in.AvailableSeats
	}
	if available > in.TotalSeats {
		return models.TravelPlan{}, domain.ValidationError{Field: "available_seats", Msg: "must not exceed total_seats"}
	}

	status := domain.PlanStatus(in.Status)
	if status == "" {
		status = domain.PlanActive
	}

	return models.TravelPlan{
		AgencyID:       in.AgencyID,
		Departure:      utils.NormalizeSpace(in.Departure),
		Destination:    utils.NormalizeSpace(in.Destination),
		Date:           strings.TrimSpace(in.Date),
		Time:           clock,
		Price:          price,
		TotalSeats:     in.TotalSeats,
		AvailableSeats: available,
		Status:         status,
	}, nil
}

func (s TravelPlanService) Get(ctx context.Context, id int64) (models.TravelPlan, error) {
	if id <= 0 {
		return models.TravelPlan{}, domain.ValidationError{Field: "id", Msg: "invalid id"}
	}
	p, err := s.plans().GetByID(ctx, id)
	if err != nil {
		return models.TravelPlan{}, lookupError(err, "travel plan")
	}
	return p, nil
}

func (s TravelPlanService) List(ctx context.Context, f models.TravelPlanFilter) ([]models.TravelPlan, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, domain.ValidationError{Field: "status", Msg: "must be one of: active complete"}
	}
	out, err := s.plans().List(ctx, f)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

// Complete closes the plan to further reservations. Completing a
// complete plan is a no-op.
func (s TravelPlanService) Complete(ctx context.Context, id int64) (models.TravelPlan, error) {
	if id <= 0 {
		return models.TravelPlan{}, domain.ValidationError{Field: "id", Msg: "invalid id"}
	}
	n, err := s.plans().MarkComplete(ctx, id)
	if err != nil {
		return models.TravelPlan{}, domain.InternalError{Err: err}
	}
	p, err := s.plans().GetByID(ctx, id)
	if err != nil {
		return models.TravelPlan{}, lookupError(err, "travel plan")
	}
	if n > 0 {
		utils.LogEvent(s.RequestID, "travel_plans", "complete", fmt.Sprintf("plan_id=%d", id))
	}
	return p, nil
}
