package integrity

import (
	"asset-pipeline/core/apperror"
	"asset-pipeline/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Route is the path of the integrity report.
const Route = "/__integrity"

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get(Route, h.HandleIntegrityCheck)
}

// HandleIntegrityCheck reports missing assets. The status is 200 when everything
// referenced exists and 409 otherwise.
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.Check(c.UserContext(), "", c.QueryBool("ssr"), "")
	if err != nil {
		status := fiber.StatusInternalServerError
		if apperror.IsConfiguration(err) {
			status = fiber.StatusNotFound
		} else {
			l.Error("Integrity check failed", zap.Error(err))
		}
		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if !report.OK() {
		l.Warn("Referenced assets are missing", zap.Int("missing", len(report.Missing)))
		return c.Status(fiber.StatusConflict).JSON(report)
	}
	return c.JSON(report)
}
