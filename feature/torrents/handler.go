package torrents

import (
	"encoding/json"
	"errors"

	"home-media/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for torrents.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the torrent routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/torrents")
	group.Get("/", h.HandleList)
	group.Get("/search", h.HandleSearch)
	group.Post("/download", h.HandleDownload)
}

// HandleList returns the download manager listing.
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	records, err := h.service.List(c.Context())
	if err != nil {
		return h.writeError(c, l, err)
	}
	return c.JSON(fiber.Map{"torrents": records})
}

// HandleSearch proxies a search to the search API.
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	data, err := h.service.Search(c.Context(), c.Query("site"), c.Query("query"))
	if err != nil {
		return h.writeError(c, l, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(data)
}

type downloadRequest struct {
	MagnetURI string `json:"magnetUri"`
}

// HandleDownload adds a magnet link to the download manager.
func (h *Handler) HandleDownload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req downloadRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return h.writeError(c, l, &ValidationError{Field: "body", Message: "request body must be a JSON object"})
	}

	out, err := h.service.Add(c.Context(), req.MagnetURI)
	if err != nil {
		return h.writeError(c, l, err)
	}
	return c.JSON(fiber.Map{"message": "Torrent added successfully", "output": out})
}

func (h *Handler) writeError(c *fiber.Ctx, l *zap.Logger, err error) error {
	var ve *ValidationError
	if errors.As(err, &ve) {
		l.Warn("Invalid torrent request", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ve.Error()})
	}
	if errors.Is(err, ErrSearchDisabled) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}

	var ue *UpstreamError
	if errors.As(err, &ue) {
		l.Error("Search API failed", zap.Int("status", ue.StatusCode))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}

	var ce *CommandError
	if errors.As(err, &ce) {
		l.Error("Download manager failed", zap.Error(err), zap.String("stderr", ce.Output))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Download manager error"})
	}

	l.Error("Torrent request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "An unexpected error occurred"})
}
