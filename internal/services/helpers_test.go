package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

var planColumns = []string{
	"id", "agency_id", "departure", "destination", "plan_date", "plan_time",
	"price", "total_seats", "available_seats", "status",
}

func planRow(id int64, price int64, total, available int, status string) *sqlmock.Rows {
	return sqlmock.NewRows(planColumns).
		AddRow(id, int64(1), "Algiers", "Oran", "2025-07-01", "08:30", price, total, available, status)
}
