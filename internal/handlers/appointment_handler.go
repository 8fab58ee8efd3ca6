package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/Math-l7/scheduling-modular-api/internal/domain/appointment"
	"github.com/Math-l7/scheduling-modular-api/internal/dto"
	"github.com/Math-l7/scheduling-modular-api/internal/httperr"
	"github.com/Math-l7/scheduling-modular-api/internal/httpresp"
	ucAppointment "github.com/Math-l7/scheduling-modular-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC   *ucAppointment.CreateAppointment
	cancelUC   *ucAppointment.CancelAppointment
	completeUC *ucAppointment.CompleteAppointment
	getUC      *ucAppointment.GetAppointment
	listUC     *ucAppointment.ListAppointments
	availUC    *ucAppointment.GetAvailability
	loc        *time.Location
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	completeUC *ucAppointment.CompleteAppointment,
	getUC *ucAppointment.GetAppointment,
	listUC *ucAppointment.ListAppointments,
	availUC *ucAppointment.GetAvailability,
	loc *time.Location,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:   createUC,
		cancelUC:   cancelUC,
		completeUC: completeUC,
		getUC:      getUC,
		listUC:     listUC,
		availUC:    availUC,
		loc:        loc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	BusinessID uint   `json:"business_id" binding:"required"`
	StaffID    uint   `json:"staff_id" binding:"required"`
	ServiceID  uint   `json:"service_id" binding:"required"`
	Date       string `json:"date" binding:"required"` // YYYY-MM-DD
	Time       string `json:"time" binding:"required"` // HH:mm
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	start, err := parseDateTime(h.loc, req.Date, req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "date must be YYYY-MM-DD and time HH:mm")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), actor, ucAppointment.CreateInput{
		BusinessID: req.BusinessID,
		StaffID:    req.StaffID,
		ServiceID:  req.ServiceID,
		Start:      start,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, dto.FromAppointment(ap))
}

// ======================================================
// READ
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	ap, err := h.getUC.Execute(c.Request.Context(), actor, id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.FromAppointment(ap))
}

func (h *AppointmentHandler) ListMineAsClient(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	aps, err := h.listUC.ByClient(c.Request.Context(), actor)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, dto.FromAppointments(aps))
}

func (h *AppointmentHandler) ListMineAsStaff(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	aps, err := h.listUC.ByStaff(c.Request.Context(), actor)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, dto.FromAppointments(aps))
}

func (h *AppointmentHandler) ListByBusiness(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	businessID, ok := idParam(c, "id")
	if !ok {
		return
	}

	aps, err := h.listUC.ByBusiness(c.Request.Context(), actor, businessID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, dto.FromAppointments(aps))
}

// ======================================================
// LIFECYCLE
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, h.cancelUC.Execute)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, h.completeUC.Execute)
}

func (h *AppointmentHandler) transition(
	c *gin.Context,
	run func(ctx context.Context, actor domain.Actor, id uint) (domain.Appointment, error),
) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	ap, err := run(c.Request.Context(), actor, id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.FromAppointment(ap))
}

// ======================================================
// AVAILABILITY
// ======================================================

// Availability is public: ?staff_id=&service_id=&date=YYYY-MM-DD.
func (h *AppointmentHandler) Availability(c *gin.Context) {
	businessID, ok := idParam(c, "id")
	if !ok {
		return
	}
	staffID, ok := idQuery(c, "staff_id")
	if !ok {
		return
	}
	serviceID, ok := idQuery(c, "service_id")
	if !ok {
		return
	}

	day, err := parseDate(h.loc, c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "date must be YYYY-MM-DD")
		return
	}

	slots, err := h.availUC.Execute(c.Request.Context(), domain.AvailabilityInput{
		BusinessID: businessID,
		StaffID:    staffID,
		ServiceID:  serviceID,
		Date:       day,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  day.Format("2006-01-02"),
		"slots": slots,
	})
}
