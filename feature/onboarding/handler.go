package onboarding

import (
	"errors"
	"os"
	"path/filepath"

	"school-onboarding/core/logger"
	"school-onboarding/core/workbook"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for onboarding loads.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the onboarding routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/onboarding")
	group.Post("/load", h.HandleLoad)
}

// HandleLoad accepts an onboarding workbook as a multipart upload (field
// "workbook"), runs a load pass, and returns the load report as JSON. A
// missing required sheet yields 422 with the partial report; other fatal
// failures yield 500.
func (h *Handler) HandleLoad(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	file, err := c.FormFile("workbook")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "multipart field 'workbook' is required",
		})
	}

	dir, err := os.MkdirTemp("", "onboarding-upload-")
	if err != nil {
		l.Error("Failed to create upload dir", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, filepath.Base(file.Filename))
	if err := c.SaveFile(file, path); err != nil {
		l.Error("Failed to save upload", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	report, err := h.service.Load(c.Context(), path)
	if err != nil {
		l.Error("Load pass failed", zap.Error(err))
		status := fiber.StatusInternalServerError
		if errors.Is(err, workbook.ErrSheetNotFound) {
			status = fiber.StatusUnprocessableEntity
		}
		body := fiber.Map{"error": err.Error()}
		if report != nil {
			body["report"] = report
		}
		return c.Status(status).JSON(body)
	}

	l.Info("Load pass finished",
		zap.String("run_id", report.RunID),
		zap.Int("row_failures", report.TotalFailed()),
	)
	return c.JSON(report)
}
