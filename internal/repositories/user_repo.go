package repositories

import (
	"context"
	"fmt"
	"strings"

	intconfig "bookingplan/internal/config"
	intdb "bookingplan/internal/db"
	"bookingplan/internal/domain/models"

	"github.com/jmoiron/sqlx"
)

const userColumns = `id, username, email, password_hash, role, created_at`

type UserRepo struct {
	DB *sqlx.DB
}

func (r UserRepo) db() *sqlx.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r UserRepo) Create(ctx context.Context, u models.User) (int64, error) {
	res, err := r.db().ExecContext(ctx, `
		INSERT INTO users (username, email, password_hash, role, created_at)
		VALUES (?, ?, ?, ?, NOW())
	`, u.Username, u.Email, u.PasswordHash, u.Role)
	if err != nil {
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return res.LastInsertId()
}

func (r UserRepo) GetByID(ctx context.Context, id int64) (models.User, error) {
	var u models.User
	if err := r.db().GetContext(ctx, &u, `SELECT `+userColumns+` FROM users WHERE id = ? LIMIT 1`, id); err != nil {
		return models.User{}, fmt.Errorf("get user %d: %w", id, err)
	}
	return u, nil
}

// GetByLogin looks the user up by email when login contains '@', otherwise
// by username.
func (r UserRepo) GetByLogin(ctx context.Context, login string) (models.User, error) {
	login = strings.TrimSpace(login)
	query := `SELECT ` + userColumns + ` FROM users WHERE username = ? LIMIT 1`
	if strings.Contains(login, "@") {
		login = strings.ToLower(login)
		query = `SELECT ` + userColumns + ` FROM users WHERE email = ? LIMIT 1`
	}
	var u models.User
	err := r.db().GetContext(ctx, &u, query, login)
	if err != nil {
		return models.User{}, fmt.Errorf("get user by login: %w", err)
	}
	return u, nil
}

type ProfileRepo struct {
	DB *sqlx.DB
}

func (r ProfileRepo) db() *sqlx.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r ProfileRepo) GetByUserID(ctx context.Context, userID int64) (models.Profile, error) {
	var p models.Profile
	err := r.db().GetContext(ctx, &p, `
		SELECT user_id, full_name, phone_number, address,
			COALESCE(travel_preferences, '') AS travel_preferences,
			COALESCE(profile_picture, '') AS profile_picture
		FROM profiles WHERE user_id = ? LIMIT 1
	`, userID)
	if err != nil {
		return models.Profile{}, fmt.Errorf("get profile for user %d: %w", userID, err)
	}
	return p, nil
}

func (r ProfileRepo) Upsert(ctx context.Context, p models.Profile) error {
	_, err := r.db().ExecContext(ctx, `
		INSERT INTO profiles (user_id, full_name, phone_number, address, travel_preferences, profile_picture)
		VALUES (?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			full_name=VALUES(full_name),
			phone_number=VALUES(phone_number),
			address=VALUES(address),
			travel_preferences=VALUES(travel_preferences),
			profile_picture=VALUES(profile_picture)
	`,
		p.UserID,
		p.FullName,
		p.PhoneNumber,
		p.Address,
		intdb.NullIfEmpty(p.TravelPreferences),
		intdb.NullIfEmpty(p.ProfilePicture),
	)
	if err != nil {
		return fmt.Errorf("upsert profile for user %d: %w", p.UserID, err)
	}
	return nil
}
