package assets

import (
	"errors"

	"asset-pipeline/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for project files.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catch-all route. It must be registered after every
// other feature.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/*", h.HandleAsset)
}

// HandleAsset sends the requested file.
func (h *Handler) HandleAsset(c *fiber.Ctx) error {
	asset, err := h.service.Open(c.Path())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.ErrNotFound
		}
		logger.WithRayID(h.service.logger, c).Error("Asset read failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Type(asset.Ext)
	c.Set(fiber.HeaderCacheControl, "no-cache")
	return c.Send(asset.Content)
}
