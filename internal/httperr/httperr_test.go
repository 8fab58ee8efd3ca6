package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	domain "github.com/Math-l7/scheduling-modular-api/internal/domain/appointment"
	"github.com/Math-l7/scheduling-modular-api/internal/infra/lock"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"conflict", domain.ErrConflict(), http.StatusConflict, "time_conflict"},
		{"hours", domain.ErrHours(), http.StatusUnprocessableEntity, "outside_working_hours"},
		{"past", domain.ErrPastTime(), http.StatusUnprocessableEntity, "in_the_past"},
		{"duration", domain.ErrDuration(), http.StatusUnprocessableEntity, "invalid_duration"},
		{"tenant", domain.ErrTenant(), http.StatusUnprocessableEntity, "tenant_mismatch"},
		{"validation", domain.ErrValidation("staff_inactive"), http.StatusUnprocessableEntity, "staff_inactive"},
		{"not found", domain.ErrNotFound("staff"), http.StatusNotFound, "staff_not_found"},
		{"authorization", domain.ErrAuthorization(), http.StatusForbidden, "not_authorized"},
		{"state", domain.ErrState(), http.StatusConflict, "invalid_state"},
		{"wrapped", fmt.Errorf("create: %w", domain.ErrConflict()), http.StatusConflict, "time_conflict"},
		{"busy", lock.ErrBusy, http.StatusServiceUnavailable, "staff_busy"},
		{"business", ErrBusiness("name_taken"), http.StatusConflict, "name_taken"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code := Status(tt.err)
			if status != tt.status || code != tt.code {
				t.Fatalf("expected %d/%s, got %d/%s", tt.status, tt.code, status, code)
			}
		})
	}
}

func TestFromError_Envelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	FromError(c, domain.ErrHours())

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}

	var body HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Code != "outside_working_hours" || body.Message == "" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestIsBusiness(t *testing.T) {
	err := fmt.Errorf("wrap: %w", ErrBusiness("name_taken"))
	if !IsBusiness(err, "name_taken") {
		t.Fatalf("expected match")
	}
	if IsBusiness(err, "other") {
		t.Fatalf("unexpected match")
	}
}
