package services

import (
	"context"
	"testing"
	"time"

	"bookingplan/internal/domain"
	"bookingplan/internal/domain/models"
	"bookingplan/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"golang.org/x/crypto/bcrypt"
)

var userColumns = []string{"id", "username", "email", "password_hash", "role", "created_at"}

func TestTokenRoundTrip(t *testing.T) {
	svc := AuthService{Secret: []byte("secret"), TTL: time.Hour}
	token, err := svc.IssueToken(models.User{ID: 12, Role: domain.RoleAgencyReceptionist})
	if err != nil {
		t.Fatalf("IssueToken returned error: %v", err)
	}
	rc, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken returned error: %v", err)
	}
	if rc.UserID != 12 || rc.Role != domain.RoleAgencyReceptionist {
		t.Fatalf("unexpected request context: %+v", rc)
	}
}

func TestParseTokenRejectsExpiredAndForeignTokens(t *testing.T) {
	past := func() time.Time { return time.Now().Add(-48 * time.Hour) }
	expired, err := AuthService{Secret: []byte("secret"), TTL: time.Hour, Now: past}.
		IssueToken(models.User{ID: 1, Role: domain.RoleClient})
	if err != nil {
		t.Fatalf("IssueToken returned error: %v", err)
	}
	if _, err := (AuthService{Secret: []byte("secret")}).ParseToken(expired); !domain.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized for expired token, got %v", err)
	}

	foreign, _ := AuthService{Secret: []byte("other")}.IssueToken(models.User{ID: 1, Role: domain.RoleClient})
	if _, err := (AuthService{Secret: []byte("secret")}).ParseToken(foreign); !domain.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized for foreign token, got %v", err)
	}
	if _, err := (AuthService{Secret: []byte("secret")}).ParseToken("not-a-token"); !domain.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized for garbage, got %v", err)
	}
}

func TestIssueTokenRequiresSecret(t *testing.T) {
	if _, err := (AuthService{}).IssueToken(models.User{ID: 1, Role: domain.RoleClient}); !domain.IsInternal(err) {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	db, mock := newMockDB(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	for i := 0; i < 2; i++ {
		mock.ExpectQuery(`SELECT .+ FROM users WHERE username = \?`).
			WithArgs("amina").
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(int64(3), "amina", "amina@example.com", string(hash), "client", time.Now()))
	}
	mock.ExpectQuery(`SELECT .+ FROM users WHERE username = \?`).
		WillReturnRows(sqlmock.NewRows(userColumns))

	svc := AuthService{UserRepo: repositories.UserRepo{DB: db}, Secret: []byte("secret")}

	token, u, err := svc.Login(context.Background(), models.LoginInput{Login: " amina ", Password: "s3cret-pass"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token == "" || u.ID != 3 {
		t.Fatalf("unexpected login result: token=%q user=%+v", token, u)
	}

	if _, _, err := svc.Login(context.Background(), models.LoginInput{Login: "amina", Password: "wrong-pass"}); !domain.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized for wrong password, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), models.LoginInput{Login: "ghost", Password: "whatever"}); !domain.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized for unknown user, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRegisterForcesClientRole(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("INSERT INTO users").
		WithArgs("amina", "amina@example.com", sqlmock.AnyArg(), "client").
		WillReturnResult(sqlmock.NewResult(4, 1))

	svc := AuthService{UserRepo: repositories.UserRepo{DB: db}}
	u, err := svc.Register(context.Background(), models.RegisterInput{
		Username: "amina",
		Email:    "Amina@Example.com",
		Password: "s3cret-pass",
		Role:     "admin",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if u.Role != domain.RoleClient || u.ID != 4 {
		t.Fatalf("unexpected user: %+v", u)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret-pass")) != nil {
		t.Fatalf("password hash does not match")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateUserDuplicateIsConflict(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	svc := AuthService{UserRepo: repositories.UserRepo{DB: db}}
	_, err := svc.CreateUser(context.Background(), models.RegisterInput{
		Username: "desk",
		Email:    "desk@example.com",
		Password: "s3cret-pass",
		Role:     "agency_receptionist",
	})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestCreateUserValidatesPayload(t *testing.T) {
	svc := AuthService{}
	cases := []models.RegisterInput{
		{Username: "", Email: "a@example.com", Password: "s3cret-pass"},
		{Username: "a", Email: "not-an-email", Password: "s3cret-pass"},
		{Username: "a", Email: "a@example.com", Password: "short"},
		{Username: "a", Email: "a@example.com", Password: "s3cret-pass", Role: "superuser"},
	}
	for _, in := range cases {
		if _, err := svc.CreateUser(context.Background(), in); !domain.IsValidation(err) {
			t.Fatalf("expected validation error for %+v, got %v", in, err)
		}
	}
}
