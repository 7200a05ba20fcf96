package handlers

import (
	"net/http"

	areaRepo "coden/database/repository/area"
	"coden/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AreaHandler exposes read access to bookable areas.
type AreaHandler struct {
	repo   areaRepo.AreaRepository
	logger *zap.Logger
}

// NewAreaHandler creates an AreaHandler.
func NewAreaHandler(repo areaRepo.AreaRepository, logger *zap.Logger) *AreaHandler {
	return &AreaHandler{repo: repo, logger: logger}
}

// List handles GET /api/areas.
func (h *AreaHandler) List(c *gin.Context) {
	areas, err := h.repo.GetAll()
	if err != nil {
		h.logger.Error("failed to list areas", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal", "unexpected error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"areas": areas})
}

// Get handles GET /api/areas/:id.
func (h *AreaHandler) Get(c *gin.Context) {
	area, err := h.repo.GetByID(c.Param("id"))
	if err != nil {
		h.logger.Error("failed to fetch area", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal", "unexpected error")
		return
	}
	if area == nil {
		utils.JSONError(c, http.StatusNotFound, "notFoundError", "area not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"area": area})
}
