package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	intconfig "bookingplan/internal/config"
	intdb "bookingplan/internal/db"
	"bookingplan/internal/domain"
	"bookingplan/internal/domain/models"
	"bookingplan/internal/repositories"
	"bookingplan/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var errBadCredentials = domain.UnauthorizedError{Msg: "invalid login or password"}

// AuthService registers accounts and issues HS256 tokens.
type AuthService struct {
	UserRepo  repositories.UserRepo
	Secret    []byte
	TTL       time.Duration
	RequestID string
	Now       func() time.Time
}

type Claims struct {
	UserID int64       `json:"user_id"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

func (s AuthService) users() repositories.UserRepo {
	if s.UserRepo.DB != nil {
		return s.UserRepo
	}
	return repositories.UserRepo{DB: intconfig.DB}
}

func (s AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s AuthService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return 24 * time.Hour
}

// Register creates a client account. Any role in the payload is ignored.
func (s AuthService) Register(ctx context.Context, in models.RegisterInput) (models.User, error) {
	in.Role = ""
	return s.CreateUser(ctx, in)
}

// CreateUser creates an account with the requested role, defaulting to client.
func (s AuthService) CreateUser(ctx context.Context, in models.RegisterInput) (models.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if err := validateStruct(in); err != nil {
		return models.User{}, err
	}
	role, ok := domain.ParseRole(in.Role)
	if !ok {
		return models.User{}, domain.ValidationError{Field: "role", Msg: "unknown role"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "failed to hash password", Err: err}
	}

	u := models.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    s.now().UTC().Truncate(time.Second),
	}
	id, err := s.users().Create(ctx, u)
	if err != nil {
		if intdb.IsDuplicateKey(err) {
			return models.User{}, domain.ConflictError{Resource: "user", Msg: "email or username already registered", Err: err}
		}
		return models.User{}, domain.InternalError{Err: err}
	}
	u.ID = id

	utils.LogEvent(s.RequestID, "auth", "create_user", fmt.Sprintf("user_id=%d role=%s", id, role))
	return u, nil
}

// Login checks credentials and returns a signed token for the user.
func (s AuthService) Login(ctx context.Context, in models.LoginInput) (string, models.User, error) {
	if err := validateStruct(in); err != nil {
		return "", models.User{}, err
	}
	u, err := s.users().GetByLogin(ctx, in.Login)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", models.User{}, errBadCredentials
		}
		return "", models.User{}, domain.InternalError{Err: err}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return "", models.User{}, errBadCredentials
	}

	token, err := s.IssueToken(u)
	if err != nil {
		return "", models.User{}, err
	}
	utils.LogEvent(s.RequestID, "auth", "login", fmt.Sprintf("user_id=%d", u.ID))
	return token, u, nil
}

func (s AuthService) IssueToken(u models.User) (string, error) {
	if len(s.Secret) == 0 {
		return "", domain.InternalError{Msg: "token secret not configured"}
	}
	now := s.now()
	claims := Claims{
		UserID: u.ID,
		Role:   u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", u.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl())),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
	if err != nil {
		return "", domain.InternalError{Msg: "failed to sign token", Err: err}
	}
	return signed, nil
}

// ParseToken verifies raw and returns the caller it identifies.
func (s AuthService) ParseToken(raw string) (domain.RequestContext, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return s.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.RequestContext{}, domain.UnauthorizedError{Msg: "token expired"}
		}
		return domain.RequestContext{}, domain.UnauthorizedError{Msg: "invalid token"}
	}
	if claims.UserID <= 0 || !claims.Role.Valid() {
		return domain.RequestContext{}, domain.UnauthorizedError{Msg: "invalid token"}
	}
	return domain.RequestContext{UserID: claims.UserID, Role: claims.Role}, nil
}

func (s AuthService) Me(ctx context.Context, userID int64) (models.User, error) {
	u, err := s.users().GetByID(ctx, userID)
	if err != nil {
		return models.User{}, lookupError(err, "user")
	}
	return u, nil
}
