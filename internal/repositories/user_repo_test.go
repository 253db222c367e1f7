package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

var userColumnNames = []string{"id", "username", "email", "password_hash", "role", "created_at"}

func TestGetByLoginPicksColumnFromInput(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT .+ FROM users WHERE email = \? LIMIT 1`).
		WithArgs("amina@example.com").
		WillReturnRows(sqlmock.NewRows(userColumnNames).
			AddRow(int64(3), "amina", "amina@example.com", "hash", "client", time.Now()))
	mock.ExpectQuery(`SELECT .+ FROM users WHERE username = \? LIMIT 1`).
		WithArgs("bob@").
		WillReturnRows(sqlmock.NewRows(userColumnNames))
	mock.ExpectQuery(`SELECT .+ FROM users WHERE username = \? LIMIT 1`).
		WithArgs("amina").
		WillReturnRows(sqlmock.NewRows(userColumnNames).
			AddRow(int64(3), "amina", "amina@example.com", "hash", "client", time.Now()))

	repo := UserRepo{DB: db}
	u, err := repo.GetByLogin(context.Background(), " Amina@Example.COM ")
	if err != nil || u.ID != 3 {
		t.Fatalf("email login = %+v, %v", u, err)
	}
	if _, err := repo.GetByLogin(context.Background(), "bob@"); err == nil {
		t.Fatalf("expected no rows error")
	}
	if u, err := repo.GetByLogin(context.Background(), "amina"); err != nil || u.Username != "amina" {
		t.Fatalf("username login = %+v, %v", u, err)
	}
}
