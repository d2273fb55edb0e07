package orphans

import (
	"asset-pipeline/core/apperror"
	"asset-pipeline/core/logger"
	"asset-pipeline/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Route is the path of the orphan report.
const Route = "/__orphans"

// Handler handles HTTP requests for the orphan report.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the report route.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get(Route, h.HandleReport)
}

// HandleReport returns the dry-run plan. A missing manifest is a 404.
func (h *Handler) HandleReport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	plan, err := h.service.Report(c.UserContext(), c.QueryBool("ssr"))
	if err != nil {
		status := fiber.StatusInternalServerError
		if apperror.IsConfiguration(err) {
			status = fiber.StatusNotFound
		} else {
			l.Error("Orphan report failed", zap.Error(err))
		}
		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if plan.Orphans == nil {
		plan.Orphans = []reconcile.Entry{}
	}
	return c.JSON(plan)
}
