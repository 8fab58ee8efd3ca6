package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/Math-l7/scheduling-modular-api/internal/domain/appointment"
	"github.com/Math-l7/scheduling-modular-api/internal/infra/lock"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// ======================================================
// BUSINESS ERRORS
// ======================================================

// BusinessError is a rule enforced by a handler rather than by the scheduling
// engine, such as a duplicate name. It is answered with 409.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string { return e.Code }

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	return errors.As(err, &be) && be.Code == code
}

// ======================================================
// DOMAIN ERRORS
// ======================================================

var messages = map[domain.Kind]string{
	domain.KindConflict:      "staff member already has an appointment in this interval",
	domain.KindHours:         "appointment is outside working hours",
	domain.KindPastTime:      "appointment must start in the future",
	domain.KindDuration:      "appointment length does not match the service duration",
	domain.KindTenant:        "business, staff and service do not belong together",
	domain.KindNotFound:      "resource not found",
	domain.KindAuthorization: "not allowed to perform this action",
	domain.KindState:         "appointment is not in a state that allows this action",
	domain.KindValidation:    "invalid input",
}

// Status maps err to the HTTP status and error code sent to the client.
func Status(err error) (int, string) {
	if errors.Is(err, lock.ErrBusy) {
		return http.StatusServiceUnavailable, "staff_busy"
	}

	var be BusinessError
	if errors.As(err, &be) {
		return http.StatusConflict, be.Code
	}

	var de *domain.Error
	if !errors.As(err, &de) {
		return http.StatusInternalServerError, "internal_error"
	}

	code := de.Error()

	switch de.Kind {
	case domain.KindConflict, domain.KindState:
		return http.StatusConflict, code
	case domain.KindHours,
		domain.KindPastTime,
		domain.KindDuration,
		domain.KindTenant,
		domain.KindValidation:
		return http.StatusUnprocessableEntity, code
	case domain.KindNotFound:
		return http.StatusNotFound, code
	case domain.KindAuthorization:
		return http.StatusForbidden, code
	}

	return http.StatusInternalServerError, "internal_error"
}

// FromError writes err using the shared envelope.
func FromError(c *gin.Context, err error) {
	status, code := Status(err)

	msg := "unexpected error"
	if kind, ok := domain.KindOf(err); ok {
		msg = messages[kind]
	} else if status == http.StatusServiceUnavailable {
		msg = "staff member is busy, try again"
	} else if status == http.StatusConflict {
		msg = code
	}

	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	}

	Write(c, status, code, msg)
}
