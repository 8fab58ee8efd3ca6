package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/Math-l7/scheduling-modular-api/internal/domain/appointment"
	"github.com/Math-l7/scheduling-modular-api/internal/httperr"
	"github.com/Math-l7/scheduling-modular-api/internal/middleware"
	"github.com/Math-l7/scheduling-modular-api/internal/models"
)

// --------------------------------------------------
// Request helpers
// --------------------------------------------------

// actorOrAbort writes 401 when the auth middleware did not run.
func actorOrAbort(c *gin.Context) (domain.Actor, bool) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "authentication required")
		return domain.Actor{}, false
	}
	return actor, true
}

func idParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		httperr.BadRequest(c, "invalid_"+name, name+" must be a positive integer")
		return 0, false
	}
	return uint(v), true
}

func idQuery(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Query(name), 10, 64)
	if err != nil || v == 0 {
		httperr.BadRequest(c, "invalid_"+name, name+" must be a positive integer")
		return 0, false
	}
	return uint(v), true
}

// --------------------------------------------------
// Time in the business timezone
// --------------------------------------------------

func parseDate(loc *time.Location, date string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", date, loc)
}

func parseDateTime(loc *time.Location, date, hm string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", date+" "+hm, loc)
}

// --------------------------------------------------
// Storage helpers
// --------------------------------------------------

// notFound turns a missing row into the domain NotFound error.
func notFound(err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound(entity)
	}
	return err
}

// requireStaffOf checks that the caller is staff of the business.
func requireStaffOf(db *gorm.DB, actor domain.Actor, businessID uint) error {
	if actor.Role != domain.RoleStaff {
		return domain.ErrAuthorization()
	}

	var count int64
	if err := db.Model(&models.Staff{}).
		Where("user_id = ? AND business_id = ?", actor.ID, businessID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrAuthorization()
	}
	return nil
}
