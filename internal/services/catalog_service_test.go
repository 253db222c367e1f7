package services

import (
	"context"
	"testing"
	"time"

	"bookingplan/internal/domain"
	"bookingplan/internal/domain/models"
	"bookingplan/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestCreateAccommodationRoomTypeRules(t *testing.T) {
	svc := CatalogService{}
	base := models.Accommodation{
		Name:          "Dar Yasmine",
		Town:          "Tlemcen",
		Location:      "Centre",
		PricePerNight: 5000,
		PhoneNumber:   "043000000",
	}

	hotel := base
	hotel.Type = "Hotel"
	if _, err := svc.CreateAccommodation(context.Background(), hotel); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for hotel without room type, got %v", err)
	}

	villa := base
	villa.Type = "villa"
	villa.RoomType = "Suite"
	if _, err := svc.CreateAccommodation(context.Background(), villa); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for villa with room type, got %v", err)
	}

	pricey := base
	pricey.Type = "apartment"
	pricey.PricePerNight = 10_000_000_000
	if _, err := svc.CreateAccommodation(context.Background(), pricey); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for price above the column limit, got %v", err)
	}

	bad := base
	bad.Type = "hostel"
	if _, err := svc.CreateAccommodation(context.Background(), bad); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for unknown type, got %v", err)
	}
}

func TestCreateAccommodationStoresHotel(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("INSERT INTO accommodations").
		WithArgs("Dar Yasmine", "Tlemcen", "Centre", nil, int64(5000), "043000000", "hotel", "Suite").
		WillReturnResult(sqlmock.NewResult(3, 1))

	svc := CatalogService{AccommodationRepo: repositories.AccommodationRepo{DB: db}}
	a, err := svc.CreateAccommodation(context.Background(), models.Accommodation{
		Name:          "Dar Yasmine",
		Town:          "Tlemcen",
		Location:      "Centre",
		PricePerNight: 5000,
		PhoneNumber:   "043000000",
		Type:          "HOTEL",
		RoomType:      "Suite",
	})
	if err != nil {
		t.Fatalf("CreateAccommodation returned error: %v", err)
	}
	if a.ID != 3 || a.Type != domain.AccommodationHotel {
		t.Fatalf("unexpected accommodation: %+v", a)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateAgencyRequiresReceptionistRole(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT .+ FROM users WHERE id = \?`).WithArgs(int64(8)).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(int64(8), "client1", "c@example.com", "x", "client", time.Now()))

	receptionist := int64(8)
	svc := CatalogService{
		AgencyRepo: repositories.AgencyRepo{DB: db},
		UserRepo:   repositories.UserRepo{DB: db},
	}
	_, err := svc.CreateAgency(context.Background(), models.Agency{
		Name:               "Sahara Tours",
		Image:              "image/agency/sahara.png",
		Description:        "Desert trips",
		ReceptionistUserID: &receptionist,
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateAgencyWithoutReceptionist(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("INSERT INTO agencies").
		WithArgs("Sahara Tours", "image/agency/sahara.png", "Desert trips", nil).
		WillReturnResult(sqlmock.NewResult(6, 1))

	svc := CatalogService{AgencyRepo: repositories.AgencyRepo{DB: db}}
	a, err := svc.CreateAgency(context.Background(), models.Agency{
		Name:        "Sahara  Tours",
		Image:       "image/agency/sahara.png",
		Description: "Desert trips",
	})
	if err != nil {
		t.Fatalf("CreateAgency returned error: %v", err)
	}
	if a.ID != 6 || a.Name != "Sahara Tours" {
		t.Fatalf("unexpected agency: %+v", a)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateDestinationRequiresImage(t *testing.T) {
	_, err := CatalogService{}.CreateDestination(context.Background(), models.Destination{
		Name:        "Casbah",
		Description: "Old town",
		City:        "Algiers",
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
