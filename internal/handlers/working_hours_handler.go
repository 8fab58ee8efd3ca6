package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/Math-l7/scheduling-modular-api/internal/domain/appointment"
	"github.com/Math-l7/scheduling-modular-api/internal/httperr"
	"github.com/Math-l7/scheduling-modular-api/internal/models"
)

type WorkingHoursHandler struct {
	db *gorm.DB
}

func NewWorkingHoursHandler(db *gorm.DB) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db}
}

type WorkingDayConfig struct {
	Weekday   *int   `json:"weekday" binding:"required,min=0,max=6"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type WorkingHoursUpdateRequest struct {
	Days []WorkingDayConfig `json:"days" binding:"required,min=1,dive"`
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	businessID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var hours []models.WorkingHours
	if err := h.db.
		Where("business_id = ?", businessID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, hours)
}

// Update upserts one record per listed weekday. Weekdays not listed are
// left untouched.
func (h *WorkingHoursHandler) Update(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	businessID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var business models.Business
	if err := h.db.First(&business, businessID).Error; err != nil {
		httperr.FromError(c, notFound(err, "business"))
		return
	}
	if err := requireStaffOf(h.db, actor, business.ID); err != nil {
		httperr.FromError(c, err)
		return
	}

	rows := make([]models.WorkingHours, 0, len(req.Days))
	for _, d := range req.Days {
		start, err := domain.ParseTimeOfDay(d.StartTime)
		if err != nil {
			httperr.FromError(c, err)
			return
		}
		end, err := domain.ParseTimeOfDay(d.EndTime)
		if err != nil {
			httperr.FromError(c, err)
			return
		}
		if _, err := domain.NewWorkingHours(business.ID, time.Weekday(*d.Weekday), start, end); err != nil {
			httperr.FromError(c, err)
			return
		}

		rows = append(rows, models.WorkingHours{
			BusinessID: business.ID,
			Weekday:    *d.Weekday,
			StartTime:  start.String(),
			EndTime:    end.String(),
		})
	}

	if err := h.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "business_id"}, {Name: "weekday"}},
		DoUpdates: clause.AssignmentColumns([]string{"start_time", "end_time", "updated_at"}),
	}).Create(&rows).Error; err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}
