package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

type Env struct {
	AppAddr string
	GinMode string

	DBUser     string
	DBPassword string
	DBHost     string
	DBName     string

	JWTSecret string
	JWTTTL    time.Duration

	CORSAllowedOrigins []string
}

const defaultJWTSecret = "change-me-in-production"

var errDefaultJWTSecret = errors.New("JWT_SECRET must be set when GIN_MODE=release")

var defaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://localhost:5173",
	"http://127.0.0.1:5173",
}

func LoadEnv() Env {
	ttlHours, err := strconv.Atoi(getenv("JWT_TTL_HOURS", "24"))
	if err != nil || ttlHours <= 0 {
		ttlHours = 24
	}

	origins := defaultCORSOrigins
	if raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); raw != "" {
		origins = []string{}
		for _, o := range strings.Split(raw, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				origins = append(origins, o)
			}
		}
	}

	return Env{
		AppAddr: getenv("APP_ADDR", ":8080"),
		GinMode: strings.TrimSpace(os.Getenv("GIN_MODE")),

		DBUser:     getenv("DB_USER", "root"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBHost:     getenv("DB_HOST", "127.0.0.1:3306"),
		DBName:     getenv("DB_NAME", "booking_plan"),

		JWTSecret: getenv("JWT_SECRET", defaultJWTSecret),
		JWTTTL:    time.Duration(ttlHours) * time.Hour,

		CORSAllowedOrigins: origins,
	}
}

// UsesDefaultSecret reports whether tokens would be signed with the built-in key.
func (e Env) UsesDefaultSecret() bool {
	return e.JWTSecret == defaultJWTSecret
}

// Validate rejects settings that are unsafe outside development.
func (e Env) Validate() error {
	if e.GinMode == "release" && e.UsesDefaultSecret() {
		return errDefaultJWTSecret
	}
	return nil
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}
