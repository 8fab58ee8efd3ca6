package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Math-l7/scheduling-modular-api/internal/clock"
	domain "github.com/Math-l7/scheduling-modular-api/internal/domain/appointment"
	"github.com/Math-l7/scheduling-modular-api/internal/dto"
	"github.com/Math-l7/scheduling-modular-api/internal/httperr"
	"github.com/Math-l7/scheduling-modular-api/internal/httpresp"
	"github.com/Math-l7/scheduling-modular-api/internal/models"
	ucAppointment "github.com/Math-l7/scheduling-modular-api/internal/usecase/appointment"
)

type StaffHandler struct {
	db    *gorm.DB
	list  *ucAppointment.ListAppointments
	clock clock.System
}

func NewStaffHandler(db *gorm.DB, list *ucAppointment.ListAppointments, clk clock.System) *StaffHandler {
	return &StaffHandler{db: db, list: list, clock: clk}
}

type CreateStaffRequest struct {
	BusinessID uint   `json:"business_id" binding:"required"`
	UserID     uint   `json:"user_id" binding:"required"`
	PublicName string `json:"public_name" binding:"required"`
}

func (h *StaffHandler) Create(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var business models.Business
	if err := h.db.First(&business, req.BusinessID).Error; err != nil {
		httperr.FromError(c, notFound(err, "business"))
		return
	}
	if err := requireStaffOf(h.db, actor, business.ID); err != nil {
		httperr.FromError(c, err)
		return
	}

	var user models.User
	if err := h.db.First(&user, req.UserID).Error; err != nil {
		httperr.FromError(c, notFound(err, "user"))
		return
	}

	staff := models.Staff{
		BusinessID: business.ID,
		UserID:     user.ID,
		PublicName: strings.TrimSpace(req.PublicName),
		Active:     true,
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Staff{}).
			Where("user_id = ? AND business_id = ?", user.ID, business.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.ErrBusiness("already_staff_of_business")
		}

		if domain.Role(user.Role) != domain.RoleStaff {
			return domain.ErrValidation("user_is_not_staff")
		}
		if !business.Active {
			return domain.ErrValidation("business_inactive")
		}

		if err := tx.Model(&models.Staff{}).
			Where("public_name = ? AND business_id = ?", staff.PublicName, business.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.ErrBusiness("public_name_taken")
		}

		return tx.Create(&staff).Error
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, staff)
}

func (h *StaffHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var staff models.Staff
	if err := h.db.First(&staff, id).Error; err != nil {
		httperr.FromError(c, notFound(err, "staff"))
		return
	}

	c.JSON(http.StatusOK, staff)
}

func (h *StaffHandler) Activate(c *gin.Context)   { h.setActive(c, true) }
func (h *StaffHandler) Deactivate(c *gin.Context) { h.setActive(c, false) }

// setActive refuses to deactivate staff that still has upcoming bookings.
func (h *StaffHandler) setActive(c *gin.Context, active bool) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var staff models.Staff
	if err := h.db.First(&staff, id).Error; err != nil {
		httperr.FromError(c, notFound(err, "staff"))
		return
	}
	if err := requireStaffOf(h.db, actor, staff.BusinessID); err != nil {
		httperr.FromError(c, err)
		return
	}

	if !active {
		var upcoming int64
		if err := h.db.Model(&models.Appointment{}).
			Where("staff_id = ? AND status = ? AND start_time > ?", staff.ID, string(domain.StatusScheduled), h.clock.Now()).
			Count(&upcoming).Error; err != nil {
			httperr.FromError(c, err)
			return
		}
		if upcoming > 0 {
			httperr.FromError(c, httperr.ErrBusiness("staff_has_future_appointments"))
			return
		}
	}

	if err := h.db.Model(&staff).Update("active", active).Error; err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, staff)
}

// Schedule answers ?date=YYYY-MM-DD for one day or ?year=&month= for a
// whole month.
func (h *StaffHandler) Schedule(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	staffID, ok := idParam(c, "id")
	if !ok {
		return
	}

	loc := h.clock.Location()

	var from, to time.Time
	if date := c.Query("date"); date != "" {
		day, err := parseDate(loc, date)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "date must be YYYY-MM-DD")
			return
		}
		from, to = ucAppointment.DayWindow(day)
	} else {
		year, err1 := strconv.Atoi(c.Query("year"))
		month, err2 := strconv.Atoi(c.Query("month"))
		if err1 != nil || err2 != nil || month < 1 || month > 12 {
			httperr.BadRequest(c, "invalid_period", "send date or year and month")
			return
		}
		from, to = ucAppointment.MonthWindow(year, time.Month(month), loc)
	}

	aps, err := h.list.StaffSchedule(c.Request.Context(), actor, staffID, from, to)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, dto.FromAppointments(aps))
}
