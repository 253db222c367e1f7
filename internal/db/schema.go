package db

import (
	"context"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
)

type tableDDL struct {
	name string
	ddl  string
}

// Order matters: referenced tables come first.
var schema = []tableDDL{
	{"users", `
CREATE TABLE IF NOT EXISTS users (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	username VARCHAR(150) NOT NULL,
	email VARCHAR(254) NOT NULL,
	password_hash VARCHAR(255) NOT NULL,
	role VARCHAR(50) NOT NULL DEFAULT 'client',
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_users_username (username),
	UNIQUE KEY uniq_users_email (email)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	{"agencies", `
CREATE TABLE IF NOT EXISTS agencies (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	image VARCHAR(255) NOT NULL,
	description TEXT NOT NULL,
	receptionist_user_id BIGINT NULL,
	CONSTRAINT fk_agencies_receptionist FOREIGN KEY (receptionist_user_id)
		REFERENCES users (id) ON DELETE SET NULL
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	{"travel_plans", `
CREATE TABLE IF NOT EXISTS travel_plans (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	agency_id BIGINT NOT NULL,
	departure VARCHAR(100) NOT NULL,
	destination VARCHAR(100) NOT NULL,
	plan_date DATE NOT NULL,
	plan_time TIME NOT NULL,
	price BIGINT NOT NULL,
	total_seats INT UNSIGNED NOT NULL,
	available_seats INT UNSIGNED NOT NULL,
	status VARCHAR(10) NOT NULL DEFAULT 'active',
	KEY idx_travel_plans_status (status),
	CONSTRAINT chk_travel_plans_seats CHECK (available_seats <= total_seats),
	CONSTRAINT fk_travel_plans_agency FOREIGN KEY (agency_id)
		REFERENCES agencies (id) ON DELETE CASCADE
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	{"reservations", `
CREATE TABLE IF NOT EXISTS reservations (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	travel_plan_id BIGINT NOT NULL,
	user_id BIGINT NOT NULL,
	seats INT UNSIGNED NOT NULL,
	total_price BIGINT NOT NULL,
	id_card_number VARCHAR(50) NOT NULL,
	reserved_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	KEY idx_reservations_user (user_id),
	CONSTRAINT fk_reservations_plan FOREIGN KEY (travel_plan_id)
		REFERENCES travel_plans (id) ON DELETE CASCADE,
	CONSTRAINT fk_reservations_user FOREIGN KEY (user_id)
		REFERENCES users (id) ON DELETE CASCADE
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	{"profiles", `
CREATE TABLE IF NOT EXISTS profiles (
	user_id BIGINT PRIMARY KEY,
	full_name VARCHAR(255) NOT NULL,
	phone_number VARCHAR(15) NOT NULL,
	address VARCHAR(255) NOT NULL,
	travel_preferences TEXT NULL,
	profile_picture VARCHAR(255) NULL,
	CONSTRAINT fk_profiles_user FOREIGN KEY (user_id)
		REFERENCES users (id) ON DELETE CASCADE
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	{"destinations", `
CREATE TABLE IF NOT EXISTS destinations (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	description TEXT NOT NULL,
	city VARCHAR(100) NOT NULL,
	popular_attractions TEXT NULL,
	image VARCHAR(255) NOT NULL
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	{"accommodations", `
CREATE TABLE IF NOT EXISTS accommodations (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	town VARCHAR(255) NOT NULL,
	location VARCHAR(255) NOT NULL,
	image VARCHAR(255) NULL,
	price_per_night BIGINT NOT NULL,
	phone_number VARCHAR(15) NOT NULL,
	type VARCHAR(20) NOT NULL,
	room_type VARCHAR(50) NULL,
	KEY idx_accommodations_type (type)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	{"bookings", `
CREATE TABLE IF NOT EXISTS bookings (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	user_id BIGINT NOT NULL,
	accommodation_id BIGINT NOT NULL,
	check_in DATE NOT NULL,
	check_out DATE NOT NULL,
	total_price BIGINT NOT NULL,
	UNIQUE KEY uniq_bookings_user (user_id),
	CONSTRAINT fk_bookings_user FOREIGN KEY (user_id)
		REFERENCES users (id) ON DELETE CASCADE,
	CONSTRAINT fk_bookings_accommodation FOREIGN KEY (accommodation_id)
		REFERENCES accommodations (id) ON DELETE CASCADE
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
}

// EnsureSchema creates missing tables. Existing tables are left untouched.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if db == nil {
		return fmt.Errorf("db not available")
	}
	for _, t := range schema {
		if HasTable(ctx, db, t.name) {
			continue
		}
		if _, err := db.ExecContext(ctx, t.ddl); err != nil {
			return fmt.Errorf("create table %s: %w", t.name, err)
		}
		log.Printf("[SCHEMA] created table %s", t.name)
	}
	return nil
}
