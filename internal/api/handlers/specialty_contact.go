package handlers

import (
	"errors"
	"net/http"

	"oncall-directory-backend/internal/database/models"
	apperrors "oncall-directory-backend/internal/errors"
	"oncall-directory-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SpecialtyContactHandler handles HTTP requests for specialty fallback contacts
type SpecialtyContactHandler struct {
	contactService service.SpecialtyContactServiceInterface
}

// NewSpecialtyContactHandler creates a new specialty contact handler
func NewSpecialtyContactHandler(contactService service.SpecialtyContactServiceInterface) *SpecialtyContactHandler {
	return &SpecialtyContactHandler{contactService: contactService}
}

// GetContacts handles GET /specialties/:specialty/contacts
// @Summary List fallback contacts for a specialty
// @Tags contacts
// @Produce json
// @Param specialty path string true "Specialty"
// @Success 200 {array} service.SpecialtyContactResponse "Contacts"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /specialties/{specialty}/contacts [get]
func (h *SpecialtyContactHandler) GetContacts(c *gin.Context) {
	contacts, err := h.contactService.GetContacts(c.Param("specialty"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"contacts": contacts})
}

// PutContact handles PUT /specialties/:specialty/contacts/:role
// @Summary Set the fallback contact phone for a specialty role
// @Tags contacts
// @Accept json
// @Produce json
// @Param specialty path string true "Specialty"
// @Param role path string true "Contact role (pa or residency)"
// @Param contact body service.PutSpecialtyContactRequest true "Phone number"
// @Success 200 {object} service.SpecialtyContactResponse "Stored contact"
// @Failure 400 {object} map[string]interface{} "Invalid role or body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /specialties/{specialty}/contacts/{role} [put]
func (h *SpecialtyContactHandler) PutContact(c *gin.Context) {
	var req service.PutSpecialtyContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact, err := h.contactService.PutContact(c.Param("specialty"), models.ContactRole(c.Param("role")), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidContactRole) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, contact)
}

// DeleteContact handles DELETE /specialties/:specialty/contacts/:role
// @Summary Remove the fallback contact for a specialty role
// @Tags contacts
// @Produce json
// @Param specialty path string true "Specialty"
// @Param role path string true "Contact role (pa or residency)"
// @Success 204 "Deleted"
// @Failure 400 {object} map[string]interface{} "Invalid role"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /specialties/{specialty}/contacts/{role} [delete]
func (h *SpecialtyContactHandler) DeleteContact(c *gin.Context) {
	if err := h.contactService.DeleteContact(c.Param("specialty"), models.ContactRole(c.Param("role"))); err != nil {
		if errors.Is(err, apperrors.ErrInvalidContactRole) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
