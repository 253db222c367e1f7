package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	intconfig "bookingplan/internal/config"
	"bookingplan/internal/domain"
	"bookingplan/internal/domain/models"
	"bookingplan/internal/repositories"
	"bookingplan/internal/utils"
)

// CatalogService manages agencies, accommodations and destinations.
type CatalogService struct {
	AgencyRepo        repositories.AgencyRepo
	AccommodationRepo repositories.AccommodationRepo
	DestinationRepo   repositories.DestinationRepo
	UserRepo          repositories.UserRepo
	RequestID         string
}

func (s CatalogService) agencies() repositories.AgencyRepo {
	if s.AgencyRepo.DB != nil {
		return s.AgencyRepo
	}
	return repositories.AgencyRepo{DB: intconfig.DB}
}

func (s CatalogService) accommodations() repositories.AccommodationRepo {
	if s.AccommodationRepo.DB != nil {
		return s.AccommodationRepo
	}
	return repositories.AccommodationRepo{DB: intconfig.DB}
}

func (s CatalogService) destinations() repositories.DestinationRepo {
	if s.DestinationRepo.DB != nil {
		return s.DestinationRepo
	}
	return repositories.DestinationRepo{DB: intconfig.DB}
}

func (s CatalogService) users() repositories.UserRepo {
	if s.UserRepo.DB != nil {
		return s.UserRepo
	}
	return repositories.UserRepo{DB: intconfig.DB}
}

func (s CatalogService) CreateAgency(ctx context.Context, a models.Agency) (models.Agency, error) {
	a.Name = utils.NormalizeSpace(a.Name)
	if err := validateStruct(a); err != nil {
		return models.Agency{}, err
	}
	if a.ReceptionistUserID != nil {
		u, err := s.users().GetByID(ctx, *a.ReceptionistUserID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return models.Agency{}, domain.ValidationError{Field: "receptionist_user_id", Msg: "user does not exist"}
			}
			return models.Agency{}, domain.InternalError{Err: err}
		}
		if u.Role != domain.RoleAgencyReceptionist {
			return models.Agency{}, domain.ValidationError{Field: "receptionist_user_id", Msg: "user is not an agency receptionist"}
		}
	}

	id, err := s.agencies().Create(ctx, a)
	if err != nil {
		return models.Agency{}, domain.InternalError{Err: err}
	}
	a.ID = id
	utils.LogEvent(s.RequestID, "catalog", "create_agency", fmt.Sprintf("agency_id=%d", id))
	return a, nil
}

func (s CatalogService) GetAgency(ctx context.Context, id int64) (models.Agency, error) {
	a, err := s.agencies().GetByID(ctx, id)
	if err != nil {
		return models.Agency{}, lookupError(err, "agency")
	}
	return a, nil
}

func (s CatalogService) ListAgencies(ctx context.Context, page domain.Pagination) ([]models.Agency, error) {
	out, err := s.agencies().List(ctx, page)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

// CreateAccommodation stores a, requiring room_type exactly when a is a hotel.
func (s CatalogService) CreateAccommodation(ctx context.Context, a models.Accommodation) (models.Accommodation, error) {
	a.Type = domain.AccommodationType(strings.ToLower(strings.TrimSpace(string(a.Type))))
	a.RoomType = strings.TrimSpace(a.RoomType)
	if err := validateStruct(a); err != nil {
		return models.Accommodation{}, err
	}
	switch {
	case a.Type == domain.AccommodationHotel && a.RoomType == "":
		return models.Accommodation{}, domain.ValidationError{Field: "room_type", Msg: "is required for hotels"}
	case a.Type != domain.AccommodationHotel && a.RoomType != "":
		return models.Accommodation{}, domain.ValidationError{Field: "room_type", Msg: "only applies to hotels"}
	}

	id, err := s.accommodations().Create(ctx, a)
	if err != nil {
		return models.Accommodation{}, domain.InternalError{Err: err}
	}
	a.ID = id
	utils.LogEvent(s.RequestID, "catalog", "create_accommodation", fmt.Sprintf("accommodation_id=%d type=%s", id, a.Type))
	return a, nil
}

func (s CatalogService) GetAccommodation(ctx context.Context, id int64) (models.Accommodation, error) {
	a, err := s.accommodations().GetByID(ctx, id)
	if err != nil {
		return models.Accommodation{}, lookupError(err, "accommodation")
	}
	return a, nil
}

func (s CatalogService) ListAccommodations(ctx context.Context, f models.AccommodationFilter) ([]models.Accommodation, error) {
	out, err := s.accommodations().List(ctx, f)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

func (s CatalogService) CreateDestination(ctx context.Context, d models.Destination) (models.Destination, error) {
	d.City = utils.NormalizeSpace(d.City)
	if err := validateStruct(d); err != nil {
		return models.Destination{}, err
	}
	id, err := s.destinations().Create(ctx, d)
	if err != nil {
		return models.Destination{}, domain.InternalError{Err: err}
	}
	d.ID = id
	return d, nil
}

func (s CatalogService) GetDestination(ctx context.Context, id int64) (models.Destination, error) {
	d, err := s.destinations().GetByID(ctx, id)
	if err != nil {
		return models.Destination{}, lookupError(err, "destination")
	}
	return d, nil
}

func (s CatalogService) ListDestinations(ctx context.Context, page domain.Pagination) ([]models.Destination, error) {
	out, err := s.destinations().List(ctx, page)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}
