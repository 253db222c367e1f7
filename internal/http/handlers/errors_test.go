package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookingplan/internal/domain"

	"github.com/gin-gonic/gin"
)

func TestRespondDomainError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ValidationError{Field: "seats", Msg: "must be greater than zero"}, http.StatusBadRequest, "validation_error"},
		{domain.UnauthorizedError{}, http.StatusUnauthorized, "unauthorized"},
		{domain.NotFoundError{Resource: "travel plan"}, http.StatusNotFound, "not_found"},
		{domain.InvalidStateError{Resource: "travel plan", State: "complete"}, http.StatusConflict, "invalid_state"},
		{domain.CapacityExceededError{Requested: 3, Available: 1}, http.StatusConflict, "capacity_exceeded"},
		{fmt.Errorf("wrapped: %w", domain.ConflictError{Resource: "booking"}), http.StatusConflict, "conflict"},
		{errors.New("dial tcp 10.0.0.3:3306: connection refused"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Set("request_id", "req-1")

		RespondDomainError(c, tc.err)

		if w.Code != tc.status {
			t.Fatalf("%v: status %d, want %d", tc.err, w.Code, tc.status)
		}
		body := w.Body.String()
		if !strings.Contains(body, `"code":"`+tc.code+`"`) || !strings.Contains(body, `"request_id":"req-1"`) {
			t.Fatalf("%v: unexpected body %s", tc.err, body)
		}
		if strings.Contains(body, "10.0.0.3") {
			t.Fatalf("internal error details leaked: %s", body)
		}
	}
}

func TestPathID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	for raw, ok := range map[string]bool{"7": true, "0": false, "-3": false, "x": false} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: raw}}
		if _, got := pathID(c, "id"); got != ok {
			t.Fatalf("pathID(%q) ok = %v, want %v", raw, got, ok)
		}
	}
}
