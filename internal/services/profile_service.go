package services

import (
	"context"
	"strings"

	intconfig "bookingplan/internal/config"
	intdb "bookingplan/internal/db"
	"bookingplan/internal/domain"
	"bookingplan/internal/domain/models"
	"bookingplan/internal/repositories"
)

type ProfileService struct {
	ProfileRepo repositories.ProfileRepo
}

func (s ProfileService) profiles() repositories.ProfileRepo {
	if s.ProfileRepo.DB != nil {
		return s.ProfileRepo
	}
	return repositories.ProfileRepo{DB: intconfig.DB}
}

func (s ProfileService) Get(ctx context.Context, userID int64) (models.Profile, error) {
	p, err := s.profiles().GetByUserID(ctx, userID)
	if err != nil {
		return models.Profile{}, lookupError(err, "profile")
	}
	return p, nil
}

// Save creates or replaces the profile owned by userID.
func (s ProfileService) Save(ctx context.Context, userID int64, p models.Profile) (models.Profile, error) {
	p.UserID = userID
	p.FullName = strings.TrimSpace(p.FullName)
	p.PhoneNumber = strings.TrimSpace(p.PhoneNumber)
	p.Address = strings.TrimSpace(p.Address)
	if err := validateStruct(p); err != nil {
		return models.Profile{}, err
	}
	if err := s.profiles().Upsert(ctx, p); err != nil {
		if intdb.IsMissingReference(err) {
			return models.Profile{}, domain.NotFoundError{Resource: "user", Err: err}
		}
		return models.Profile{}, domain.InternalError{Err: err}
	}
	return p, nil
}
