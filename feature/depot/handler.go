package depot

import (
	"errors"

	"depot-planner/core/logger"
	"depot-planner/core/session"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the depot.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// PutRequest is the body of PUT /depot.
type PutRequest struct {
	Items     []Record `json:"items"`
	Immediate bool     `json:"immediate"`
}

// InputRequest is the body of POST /depot/input.
type InputRequest struct {
	MaterialID string `json:"material_id"`
	Raw        string `json:"raw"`
}

// StepRequest is the body of POST /depot/step.
type StepRequest struct {
	MaterialID string `json:"material_id"`
	Delta      int64  `json:"delta"`
}

// ChangeResponse wraps the state after a mutation.
type ChangeResponse struct {
	Changed bool  `json:"changed"`
	State   State `json:"state"`
}

// RegisterRoutes registers the depot routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/depot")
	group.Get("/", h.HandleGet)
	group.Put("/", h.HandlePut)
	group.Post("/input", h.HandleInput)
	group.Post("/step", h.HandleStep)
	group.Post("/sync", h.HandleSync)
	group.Post("/refresh", h.HandleRefresh)
	group.Post("/reset", h.HandleReset)
}

// HandleGet returns the depot of the caller.
// @Summary Get Depot
// @Description Returns the depot, the pending changes and the sync phase of the caller. Guests get a local-only depot.
// @Tags depot
// @Produce json
// @Success 200 {object} State
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /depot [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	state, err := h.service.State(c.Context(), session.UserID(c))
	if err != nil {
		return h.fail(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(state)
}

// HandlePut applies a batch of edits.
// @Summary Put Depot Items
// @Description Stores new stock values. Unchanged items are skipped. With immediate=true the pending set is synced before responding, otherwise the debounce timer is re-armed.
// @Tags depot
// @Accept json
// @Produce json
// @Param request body PutRequest true "Edits"
// @Success 200 {object} ChangeResponse
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 502 {object} map[string]string "Remote sync failed"
// @Router /depot [put]
func (h *Handler) HandlePut(c *fiber.Ctx) error {
	var req PutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	for _, item := range req.Items {
		if item.MaterialID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "material_id is required"})
		}
	}

	changed, state, err := h.service.Put(c.Context(), session.UserID(c), req.Items, req.Immediate)
	if err != nil {
		return h.fail(c, fiber.StatusBadGateway, err)
	}
	return c.JSON(ChangeResponse{Changed: changed, State: state})
}

// HandleInput stores raw text typed into a stock field.
// @Summary Input Stock
// @Description Parses raw text into a stock. Non-numeric text is rejected and never stored.
// @Tags depot
// @Accept json
// @Produce json
// @Param request body InputRequest true "Raw input"
// @Success 200 {object} ChangeResponse
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 422 {object} map[string]string "Not a number"
// @Router /depot/input [post]
func (h *Handler) HandleInput(c *fiber.Ctx) error {
	var req InputRequest
	if err := c.BodyParser(&req); err != nil || req.MaterialID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "material_id is required"})
	}

	changed, state, err := h.service.Input(c.Context(), session.UserID(c), req.MaterialID, req.Raw)
	if errors.Is(err, ErrInvalidInput) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error(), "raw": req.Raw})
	}
	if err != nil {
		return h.fail(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(ChangeResponse{Changed: changed, State: state})
}

// HandleStep increments or decrements one stock.
// @Summary Step Stock
// @Description Adds delta to the stock of a material. The result never drops below zero.
// @Tags depot
// @Accept json
// @Produce json
// @Param request body StepRequest true "Step"
// @Success 200 {object} ChangeResponse
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /depot/step [post]
func (h *Handler) HandleStep(c *fiber.Ctx) error {
	var req StepRequest
	if err := c.BodyParser(&req); err != nil || req.MaterialID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "material_id is required"})
	}

	changed, state, err := h.service.Step(c.Context(), session.UserID(c), req.MaterialID, req.Delta)
	if err != nil {
		return h.fail(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(ChangeResponse{Changed: changed, State: state})
}

// HandleSync flushes pending changes now.
// @Summary Sync Depot
// @Description Cancels the debounce timer and pushes every pending change to the remote store.
// @Tags depot
// @Produce json
// @Success 200 {object} State
// @Failure 502 {object} map[string]string "Remote sync failed"
// @Router /depot/sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	state, err := h.service.Sync(c.Context(), session.UserID(c))
	if err != nil {
		return h.fail(c, fiber.StatusBadGateway, err)
	}
	return c.JSON(state)
}

// HandleRefresh re-arms the debounce timer.
// @Summary Refresh Debounce
// @Description Restarts the quiet window with the current pending changes.
// @Tags depot
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /depot/refresh [post]
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	refreshed, err := h.service.Refresh(c.Context(), session.UserID(c))
	if err != nil {
		return h.fail(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(fiber.Map{"refreshed": refreshed})
}

// HandleReset zeroes the depot.
// @Summary Reset Depot
// @Description Sets every stock to zero and pushes the full zeroed depot immediately.
// @Tags depot
// @Produce json
// @Success 200 {object} State
// @Failure 502 {object} map[string]string "Remote sync failed"
// @Router /depot/reset [post]
func (h *Handler) HandleReset(c *fiber.Ctx) error {
	state, err := h.service.Reset(c.Context(), session.UserID(c))
	if err != nil {
		return h.fail(c, fiber.StatusBadGateway, err)
	}
	return c.JSON(state)
}

func (h *Handler) fail(c *fiber.Ctx, status int, err error) error {
	if errors.Is(err, ErrRegistryClosed) {
		status = fiber.StatusServiceUnavailable
	}
	logger.WithRayID(h.service.logger, c).Error("Depot request failed", zap.Error(err))
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
