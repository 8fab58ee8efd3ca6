package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/Math-l7/scheduling-modular-api/internal/domain/appointment"
	"github.com/Math-l7/scheduling-modular-api/internal/httperr"
	"github.com/Math-l7/scheduling-modular-api/internal/models"
)

type BusinessHandler struct {
	db *gorm.DB
}

func NewBusinessHandler(db *gorm.DB) *BusinessHandler {
	return &BusinessHandler{db: db}
}

type CreateBusinessRequest struct {
	Name       string `json:"name" binding:"required"`
	Type       string `json:"type" binding:"required"`
	PublicName string `json:"public_name"`
}

// Create registers the business and enrolls the caller as its first staff
// member.
func (h *BusinessHandler) Create(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	var req CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	name := strings.TrimSpace(req.Name)
	kind := domain.BusinessType(strings.ToUpper(strings.TrimSpace(req.Type)))
	if !kind.Valid() {
		httperr.FromError(c, domain.ErrValidation("invalid_business_type"))
		return
	}

	var user models.User
	if err := h.db.First(&user, actor.ID).Error; err != nil {
		httperr.FromError(c, notFound(err, "user"))
		return
	}

	publicName := strings.TrimSpace(req.PublicName)
	if publicName == "" {
		publicName = user.Name
	}

	business := models.Business{Name: name, Type: string(kind), Active: true}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Business{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.ErrBusiness("business_name_taken")
		}

		if err := tx.Create(&business).Error; err != nil {
			return err
		}

		return tx.Create(&models.Staff{
			BusinessID: business.ID,
			UserID:     user.ID,
			PublicName: publicName,
			Active:     true,
		}).Error
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, business)
}

func (h *BusinessHandler) GetByID(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var business models.Business
	if err := h.db.First(&business, id).Error; err != nil {
		httperr.FromError(c, notFound(err, "business"))
		return
	}
	if err := requireStaffOf(h.db, actor, business.ID); err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, business)
}

func (h *BusinessHandler) GetByName(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	var business models.Business
	if err := h.db.Where("name = ?", c.Param("name")).First(&business).Error; err != nil {
		httperr.FromError(c, notFound(err, "business"))
		return
	}
	if err := requireStaffOf(h.db, actor, business.ID); err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, business)
}

func (h *BusinessHandler) Activate(c *gin.Context)   { h.setActive(c, true) }
func (h *BusinessHandler) Deactivate(c *gin.Context) { h.setActive(c, false) }

func (h *BusinessHandler) setActive(c *gin.Context, active bool) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var business models.Business
	if err := h.db.First(&business, id).Error; err != nil {
		httperr.FromError(c, notFound(err, "business"))
		return
	}
	if err := requireStaffOf(h.db, actor, business.ID); err != nil {
		httperr.FromError(c, err)
		return
	}

	if err := h.db.Model(&business).Update("active", active).Error; err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, business)
}

// ListStaff lists the active staff of a business.
func (h *BusinessHandler) ListStaff(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var business models.Business
	if err := h.db.First(&business, id).Error; err != nil {
		httperr.FromError(c, notFound(err, "business"))
		return
	}

	var staff []models.Staff
	if err := h.db.
		Where("business_id = ? AND active = ?", business.ID, true).
		Order("public_name ASC").
		Find(&staff).Error; err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, staff)
}
