package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	domain "github.com/Math-l7/scheduling-modular-api/internal/domain/appointment"
	"github.com/Math-l7/scheduling-modular-api/internal/httperr"
	"github.com/Math-l7/scheduling-modular-api/internal/httpresp"
	"github.com/Math-l7/scheduling-modular-api/internal/models"
)

// ServiceHandler manages the catalog of services a business offers.
type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

type CreateServiceRequest struct {
	BusinessID      uint            `json:"business_id" binding:"required"`
	Name            string          `json:"name" binding:"required"`
	DurationMinutes int             `json:"duration_minutes" binding:"required"`
	Price           decimal.Decimal `json:"price"`
}

type UpdateServiceRequest struct {
	Name            *string          `json:"name"`
	DurationMinutes *int             `json:"duration_minutes"`
	Price           *decimal.Decimal `json:"price"`
}

func (h *ServiceHandler) Create(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	var req CreateServiceRequest
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

	svc := models.Service{
		BusinessID:  business.ID,
		Name:        strings.TrimSpace(req.Name),
		DurationMin: req.DurationMinutes,
		Price:       req.Price,
		Active:      true,
	}
	if err := validateService(svc); err != nil {
		httperr.FromError(c, err)
		return
	}

	if err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := nameTaken(tx, svc.BusinessID, svc.Name, 0); err != nil {
			return err
		}
		return tx.Create(&svc).Error
	}); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, svc)
}

func (h *ServiceHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var svc models.Service
	if err := h.db.First(&svc, id).Error; err != nil {
		httperr.FromError(c, notFound(err, "service"))
		return
	}

	c.JSON(http.StatusOK, svc)
}

// ListByBusinessName is public: it lists the active services of a business.
func (h *ServiceHandler) ListByBusinessName(c *gin.Context) {
	var business models.Business
	if err := h.db.Where("name = ?", c.Param("name")).First(&business).Error; err != nil {
		httperr.FromError(c, notFound(err, "business"))
		return
	}

	var services []models.Service
	if err := h.db.
		Where("business_id = ? AND active = ?", business.ID, true).
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var svc models.Service
	if err := h.db.First(&svc, id).Error; err != nil {
		httperr.FromError(c, notFound(err, "service"))
		return
	}
	if err := requireStaffOf(h.db, actor, svc.BusinessID); err != nil {
		httperr.FromError(c, err)
		return
	}

	if req.Name != nil {
		svc.Name = strings.TrimSpace(*req.Name)
	}
	if req.DurationMinutes != nil {
		svc.DurationMin = *req.DurationMinutes
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}
	if err := validateService(svc); err != nil {
		httperr.FromError(c, err)
		return
	}

	if err := h.db.Transaction(func(tx *gorm.DB) error {
		if req.Name != nil {
			if err := nameTaken(tx, svc.BusinessID, svc.Name, svc.ID); err != nil {
				return err
			}
		}
		return tx.Model(&svc).Select("name", "duration_min", "price").Updates(&svc).Error
	}); err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, svc)
}

func (h *ServiceHandler) Activate(c *gin.Context)   { h.setActive(c, true) }
func (h *ServiceHandler) Deactivate(c *gin.Context) { h.setActive(c, false) }

// setActive refuses to deactivate a service that was ever booked.
func (h *ServiceHandler) setActive(c *gin.Context, active bool) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var svc models.Service
	if err := h.db.First(&svc, id).Error; err != nil {
		httperr.FromError(c, notFound(err, "service"))
		return
	}
	if err := requireStaffOf(h.db, actor, svc.BusinessID); err != nil {
		httperr.FromError(c, err)
		return
	}

	if !active {
		var booked int64
		if err := h.db.Model(&models.Appointment{}).Where("service_id = ?", svc.ID).Count(&booked).Error; err != nil {
			httperr.FromError(c, err)
			return
		}
		if booked > 0 {
			httperr.FromError(c, httperr.ErrBusiness("service_has_appointments"))
			return
		}
	}

	if err := h.db.Model(&svc).Update("active", active).Error; err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, svc)
}

func validateService(svc models.Service) error {
	if svc.Name == "" {
		return domain.ErrValidation("service_name_required")
	}
	return domain.Service{DurationMinutes: svc.DurationMin, Price: svc.Price}.Validate()
}

func nameTaken(tx *gorm.DB, businessID uint, name string, exceptID uint) error {
	var count int64
	if err := tx.Model(&models.Service{}).
		Where("business_id = ? AND name = ? AND id <> ?", businessID, name, exceptID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return httperr.ErrBusiness("service_name_taken")
	}
	return nil
}
