package repositories

import (
	"context"
	"testing"

	"bookingplan/internal/domain"
	"bookingplan/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestAccommodationListFilters(t *testing.T) {
	db, mock := newMockDB(t)
	cols := []string{"id", "name", "town", "location", "image", "price_per_night", "phone_number", "type", "room_type"}
	mock.ExpectQuery(`SELECT .+ FROM accommodations WHERE 1=1 AND type = \? AND town LIKE \? ORDER BY name ASC, id ASC LIMIT \? OFFSET \?`).
		WithArgs("hotel", "%Oran%", 10, 10).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(int64(2), "Le Royal", "Oran", "Front de mer", "", int64(12000), "041000000", "hotel", "Suite"))

	out, err := AccommodationRepo{DB: db}.List(context.Background(), models.AccommodationFilter{
		Type:       " Hotel ",
		Town:       "Oran",
		Pagination: domain.Pagination{Page: 2, PageSize: 10},
	})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(out) != 1 || out[0].RoomType != "Suite" || out[0].Type != domain.AccommodationHotel {
		t.Fatalf("unexpected accommodations: %+v", out)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReservationListByUserPages(t *testing.T) {
	db, mock := newMockDB(t)
	cols := []string{"id", "travel_plan_id", "user_id", "seats", "total_price", "id_card_number", "reserved_at"}
	mock.ExpectQuery(`SELECT .+ FROM reservations WHERE user_id = \? ORDER BY reserved_at DESC, id DESC LIMIT \? OFFSET \?`).
		WithArgs(int64(5), 100, 0).
		WillReturnRows(sqlmock.NewRows(cols))

	out, err := ReservationRepo{DB: db}.ListByUser(context.Background(), 5, domain.Pagination{PageSize: 500})
	if err != nil {
		t.Fatalf("ListByUser returned error: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected no reservations, got %d", len(out))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
