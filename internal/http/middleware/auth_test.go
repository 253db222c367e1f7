package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookingplan/internal/domain"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func fakeParser(token string) (domain.RequestContext, error) {
	switch token {
	case "client-token":
		return domain.RequestContext{UserID: 5, Role: domain.RoleClient}, nil
	case "agent-token":
		return domain.RequestContext{UserID: 9, Role: domain.RoleAgencyReceptionist}, nil
	}
	return domain.RequestContext{}, errors.New("invalid token")
}

func newTestEngine() *gin.Engine {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/me", RequireAuth(fakeParser), func(c *gin.Context) {
		rc, _ := Caller(c)
		c.JSON(http.StatusOK, gin.H{"user_id": rc.UserID, "role": rc.Role})
	})
	r.GET("/staff", RequireAuth(fakeParser), RequireRoles(domain.RoleAdmin, domain.RoleAgencyReceptionist), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	r.GET("/open", RequireRoles(domain.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func doRequest(r http.Handler, path, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	r := newTestEngine()

	cases := []struct {
		auth string
		want int
	}{
		{"", http.StatusUnauthorized},
		{"client-token", http.StatusUnauthorized},
		{"Basic client-token", http.StatusUnauthorized},
		{"Bearer nope", http.StatusUnauthorized},
		{"Bearer client-token", http.StatusOK},
		{"bearer  client-token ", http.StatusOK},
	}
	for _, tc := range cases {
		w := doRequest(r, "/me", tc.auth)
		if w.Code != tc.want {
			t.Fatalf("auth %q: status %d, want %d (%s)", tc.auth, w.Code, tc.want, w.Body.String())
		}
		if w.Header().Get("X-Request-ID") == "" {
			t.Fatalf("missing X-Request-ID header")
		}
	}
}

func TestRequireRoles(t *testing.T) {
	r := newTestEngine()

	if w := doRequest(r, "/staff", "Bearer client-token"); w.Code != http.StatusForbidden {
		t.Fatalf("client on staff route: status %d", w.Code)
	}
	if w := doRequest(r, "/staff", "Bearer agent-token"); w.Code != http.StatusNoContent {
		t.Fatalf("agent on staff route: status %d", w.Code)
	}
	if w := doRequest(r, "/open", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("role check without auth: status %d", w.Code)
	}
}

func TestRequestIDKeepsClientValue(t *testing.T) {
	r := newTestEngine()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-ID"); got != "req-123" {
		t.Fatalf("X-Request-ID = %q", got)
	}
}
