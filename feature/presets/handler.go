package presets

import (
	"encoding/json"
	"errors"

	"depot-planner/core/logger"
	"depot-planner/core/session"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for presets.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// PresetRequest is the body of POST and PUT requests.
type PresetRequest struct {
	Name    string          `json:"name"`
	Payload json.RawMessage `json:"payload" swaggertype:"object"`
}

// RegisterRoutes registers the preset routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/presets", requireSession)
	group.Get("/", h.HandleList)
	group.Post("/", h.HandleAdd)
	group.Put("/:index", h.HandleChange)
	group.Delete("/:index", h.HandleDelete)
}

func requireSession(c *fiber.Ctx) error {
	if session.UserID(c) == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "a session is required"})
	}
	return c.Next()
}

// HandleList lists the caller's presets.
// @Summary List Presets
// @Tags presets
// @Produce json
// @Success 200 {array} Preset
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /presets [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	list, err := h.service.List(c.Context(), session.UserID(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(list)
}

// HandleAdd creates a preset at the end of the list.
// @Summary Add Preset
// @Tags presets
// @Accept json
// @Produce json
// @Param request body PresetRequest true "Preset"
// @Success 201 {object} Preset
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /presets [post]
func (h *Handler) HandleAdd(c *fiber.Ctx) error {
	var req PresetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	p, err := h.service.Add(c.Context(), session.UserID(c), req.Name, req.Payload)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// HandleChange replaces a preset.
// @Summary Change Preset
// @Tags presets
// @Accept json
// @Produce json
// @Param index path int true "Preset index"
// @Param request body PresetRequest true "Preset"
// @Success 200 {object} Preset
// @Failure 404 {object} map[string]string "Not Found"
// @Router /presets/{index} [put]
func (h *Handler) HandleChange(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil || index < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "index must be a non-negative integer"})
	}
	var req PresetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	p, err := h.service.Change(c.Context(), session.UserID(c), index, req.Name, req.Payload)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(p)
}

// HandleDelete removes a preset and reindexes the rest.
// @Summary Delete Preset
// @Tags presets
// @Param index path int true "Preset index"
// @Success 204
// @Failure 404 {object} map[string]string "Not Found"
// @Router /presets/{index} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil || index < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "index must be a non-negative integer"})
	}
	if err := h.service.Delete(c.Context(), session.UserID(c), index); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrInvalid):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithRayID(h.service.logger, c).Error("Preset request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
