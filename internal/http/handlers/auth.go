package handlers

import (
	"net/http"
	"sync"
	"time"

	"bookingplan/internal/domain"
	"bookingplan/internal/domain/models"
	"bookingplan/internal/http/middleware"
	"bookingplan/internal/services"

	"github.com/gin-gonic/gin"
)

var (
	authMu     sync.RWMutex
	authSecret []byte
	authTTL    time.Duration
)

// SetAuthConfig sets the token secret and lifetime used by the auth handlers.
func SetAuthConfig(secret []byte, ttl time.Duration) {
	authMu.Lock()
	defer authMu.Unlock()
	authSecret = secret
	authTTL = ttl
}

func authService(c *gin.Context) services.AuthService {
	authMu.RLock()
	defer authMu.RUnlock()
	return services.AuthService{
		Secret:    authSecret,
		TTL:       authTTL,
		RequestID: middleware.GetRequestID(c),
	}
}

// ParseToken is the middleware.TokenParser backed by the configured secret.
func ParseToken(token string) (domain.RequestContext, error) {
	authMu.RLock()
	defer authMu.RUnlock()
	return services.AuthService{Secret: authSecret}.ParseToken(token)
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req models.RegisterInput
	if !BindJSONOrError(c, &req) {
		return
	}
	u, err := authService(c).Register(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": u.ToPublic()})
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req models.LoginInput
	if !BindJSONOrError(c, &req) {
		return
	}
	token, u, err := authService(c).Login(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  u.ToPublic(),
	})
}

// GET /api/users/me
func Me(c *gin.Context) {
	rc, ok := caller(c)
	if !ok {
		return
	}
	u, err := authService(c).Me(c.Request.Context(), rc.UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u.ToPublic()})
}

// POST /api/users (admin)
func CreateUser(c *gin.Context) {
	var req models.RegisterInput
	if !BindJSONOrError(c, &req) {
		return
	}
	u, err := authService(c).CreateUser(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": u.ToPublic()})
}
