package services

import (
	"context"
	"testing"

	"bookingplan/internal/domain"
	"bookingplan/internal/domain/models"
	"bookingplan/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestProfileSaveUpsertsForCaller(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("INSERT INTO profiles .+ ON DUPLICATE KEY UPDATE").
		WithArgs(int64(5), "Amina Belkacem", "0550000000", "12 rue Didouche", nil, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := ProfileService{ProfileRepo: repositories.ProfileRepo{DB: db}}
	p, err := svc.Save(context.Background(), 5, models.Profile{
		UserID:      99,
		FullName:    " Amina Belkacem ",
		PhoneNumber: "0550000000",
		Address:     "12 rue Didouche",
	})
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if p.UserID != 5 {
		t.Fatalf("profile must belong to the caller, got user %d", p.UserID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestProfileSaveValidatesAndGetMissing(t *testing.T) {
	db, mock := newMockDB(t)
	svc := ProfileService{ProfileRepo: repositories.ProfileRepo{DB: db}}

	if _, err := svc.Save(context.Background(), 5, models.Profile{FullName: "A"}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	mock.ExpectQuery("SELECT .+ FROM profiles WHERE user_id = \\?").WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))
	if _, err := svc.Get(context.Background(), 5); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
