package roster

import (
	"strings"

	"depot-planner/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for roster filtering.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// FilterRequest is the body of POST /roster/filter.
type FilterRequest struct {
	Filters map[string][]string `json:"filters"`
	Search  string              `json:"search"`
}

// FilterResponse lists matching operators.
type FilterResponse struct {
	Count     int        `json:"count"`
	Operators []Operator `json:"operators"`
}

// RegisterRoutes registers the roster routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/roster")
	group.Get("/", h.HandleList)
	group.Post("/filter", h.HandleFilter)
}

// HandleList filters the roster by query parameters.
// @Summary List Operators
// @Description Filters the roster. Each category (class, branch, owned, elite, rarity, cn, modulecn, mastery, skilllevel, modulelevel) may be repeated; values inside a category are alternatives.
// @Tags roster
// @Produce json
// @Param search query string false "Operator name search"
// @Param class query []string false "Class" collectionFormat(multi)
// @Param elite query []string false "Elite level" collectionFormat(multi)
// @Success 200 {object} FilterResponse
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /roster [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	f := NewFilters()
	args := c.Context().QueryArgs()
	for _, cat := range Categories {
		for _, v := range args.PeekMulti(strings.ToLower(string(cat))) {
			if !f.Has(cat, string(v)) {
				f = f.Toggle(cat, string(v))
			}
		}
	}
	return h.respond(c, f, c.Query("search"))
}

// HandleFilter filters the roster by a JSON body.
// @Summary Filter Operators
// @Description Filters the roster by category values and a name search.
// @Tags roster
// @Accept json
// @Produce json
// @Param request body FilterRequest true "Filters"
// @Success 200 {object} FilterResponse
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /roster/filter [post]
func (h *Handler) HandleFilter(c *fiber.Ctx) error {
	var req FilterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	f, err := FromValues(req.Filters)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return h.respond(c, f, req.Search)
}

func (h *Handler) respond(c *fiber.Ctx, f Filters, search string) error {
	ops, err := h.service.Filter(f, search)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Roster filter failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(FilterResponse{Count: len(ops), Operators: ops})
}
