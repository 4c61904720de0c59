package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsBusinessThroughWrapping(t *testing.T) {
	err := fmt.Errorf("create booking: %w", ErrBusiness("time_conflict"))

	if !IsBusiness(err, "time_conflict") {
		t.Fatalf("wrapped business error not recognised")
	}
	if IsBusiness(err, "slot_blocked") {
		t.Fatalf("wrong code matched")
	}
	if code, ok := BusinessCode(errors.New("boom")); ok || code != "" {
		t.Fatalf("plain error reported as business: %q", code)
	}
}

func TestIsExclusionConflict(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23P01"})
	if !IsExclusionConflict(err) {
		t.Fatalf("23P01 not detected")
	}
	if IsExclusionConflict(&pgconn.PgError{Code: "23505"}) {
		t.Fatalf("unique violation reported as exclusion conflict")
	}
}

func TestFromError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err    error
		status int
		code   string
	}{
		{ErrBusiness("time_conflict"), http.StatusConflict, "time_conflict"},
		{ErrBusiness("booking_not_found"), http.StatusNotFound, "booking_not_found"},
		{ErrBusiness("invalid_transition"), http.StatusBadRequest, "invalid_transition"},
		{ErrBusiness("client_not_found"), http.StatusNotFound, "client_not_found"},
		{ErrBusiness("outside_working_hours"), http.StatusBadRequest, "outside_working_hours"},
		{errors.New("db down"), http.StatusInternalServerError, "fallback"},
	}

	for _, tt := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		FromError(c, tt.err, "fallback")

		if w.Code != tt.status {
			t.Fatalf("FromError(%v) status=%d, want %d", tt.err, w.Code, tt.status)
		}

		var body HTTPError
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.Code != tt.code {
			t.Fatalf("FromError(%v) code=%q, want %q", tt.err, body.Code, tt.code)
		}
	}
}
