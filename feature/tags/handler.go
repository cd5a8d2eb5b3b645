package tags

import (
	"encoding/json"
	"errors"

	"home-media/core/logger"
	"home-media/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for media tags.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the tag routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/media")
	group.Get("/:type/:id/tags", h.HandleGetTags)
	group.Put("/:type/:id/tags", h.HandleUpdateTags)
}

type updateTagsRequest struct {
	Tags json.RawMessage `json:"tags"`
}

// HandleGetTags returns the tags linked to a media item.
func (h *Handler) HandleGetTags(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	mediaType, mediaID, err := mediaParams(c)
	if err != nil {
		return h.writeError(c, l, err)
	}

	list, err := h.service.ListTags(c.Context(), mediaType, mediaID)
	if err != nil {
		return h.writeError(c, l, err)
	}
	return c.JSON(fiber.Map{"tags": list})
}

// HandleUpdateTags replaces the tags of a media item with the request body list.
func (h *Handler) HandleUpdateTags(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	mediaType, mediaID, err := mediaParams(c)
	if err != nil {
		return h.writeError(c, l, err)
	}

	var req updateTagsRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return h.writeError(c, l, &ValidationError{Field: "body", Message: "request body must be a JSON object"})
	}

	desired, err := DecodeTags(req.Tags)
	if err != nil {
		return h.writeError(c, l, err)
	}

	result, err := h.service.UpdateTags(c.Context(), mediaType, mediaID, desired)
	if err != nil {
		return h.writeError(c, l, err)
	}

	return c.JSON(fiber.Map{
		"message":  "Tags updated successfully",
		"created":  result.Created,
		"linked":   result.Linked,
		"unlinked": result.Unlinked,
	})
}

func mediaParams(c *fiber.Ctx) (MediaType, uint, error) {
	mediaType, err := ParseMediaType(c.Params("type"))
	if err != nil {
		return "", 0, err
	}
	mediaID, ok := utils.ToUint(c.Params("id"))
	if !ok {
		return "", 0, &ValidationError{Field: "id", Message: "media id must be a positive integer"}
	}
	return mediaType, mediaID, nil
}

// writeError maps validation failures to 400 and store failures to 500.
func (h *Handler) writeError(c *fiber.Ctx, l *zap.Logger, err error) error {
	var ve *ValidationError
	if errors.As(err, &ve) {
		l.Warn("Invalid tag request", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ve.Error()})
	}

	l.Error("Tag request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
}
