package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	apperrors "oncall-directory-backend/internal/errors"
	"oncall-directory-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DirectoryHandler handles HTTP requests for directory operations
type DirectoryHandler struct {
	directoryService service.DirectoryServiceInterface
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(directoryService service.DirectoryServiceInterface) *DirectoryHandler {
	return &DirectoryHandler{directoryService: directoryService}
}

// GetDirectory handles GET /directory
// @Summary Look up or list directory entries
// @Description With names=a,b returns the matching entries; without it, a paginated listing.
// @Tags directory
// @Produce json
// @Param names query string false "Comma-separated provider names"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Success 200 {object} service.DirectoryListResponse "Entries"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /directory [get]
func (h *DirectoryHandler) GetDirectory(c *gin.Context) {
	if namesParam := c.Query("names"); namesParam != "" {
		names := strings.Split(namesParam, ",")
		for i := range names {
			names[i] = strings.TrimSpace(names[i])
		}
		entries, err := h.directoryService.Lookup(names)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"entries": entries})
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page"})
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page size"})
		return
	}

	list, err := h.directoryService.List(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

// CreateEntry handles POST /directory
// @Summary Create a directory entry
// @Tags directory
// @Accept json
// @Produce json
// @Param entry body service.CreateDirectoryEntryRequest true "Entry data"
// @Success 201 {object} service.DirectoryEntryResponse "Created entry"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Provider name already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /directory [post]
func (h *DirectoryHandler) CreateEntry(c *gin.Context) {
	var req service.CreateDirectoryEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.directoryService.Create(&req)
	if err != nil {
		if apperrors.IsAlreadyExists(err) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// UpdateEntry handles PUT /directory/:id
// @Summary Update a directory entry
// @Tags directory
// @Accept json
// @Produce json
// @Param id path string true "Entry ID (UUID)"
// @Param entry body service.UpdateDirectoryEntryRequest true "Fields to update"
// @Success 200 {object} service.DirectoryEntryResponse "Updated entry"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Entry not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /directory/{id} [put]
func (h *DirectoryHandler) UpdateEntry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry ID"})
		return
	}

	var req service.UpdateDirectoryEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.directoryService.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDirectoryEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsAlreadyExists(err) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DeleteEntry handles DELETE /directory/:id
// @Summary Delete a directory entry
// @Tags directory
// @Produce json
// @Param id path string true "Entry ID (UUID)"
// @Success 204 "Deleted"
// @Failure 400 {object} map[string]interface{} "Invalid entry ID"
// @Failure 404 {object} map[string]interface{} "Entry not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /directory/{id} [delete]
func (h *DirectoryHandler) DeleteEntry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry ID"})
		return
	}

	if err := h.directoryService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrDirectoryEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
