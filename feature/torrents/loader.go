package torrents

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature wires the torrent feature from configuration.
func NewFeature(cfg Config, runner Runner, logger *zap.Logger) *Feature {
	svc := NewService(NewClient(cfg, runner), NewSearchClient(cfg, nil), logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "torrents"
}

// IsEnabled reports whether a download manager binary is configured.
func (f *Feature) IsEnabled() bool {
	return f.service.client.cfg.Binary != ""
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service returns the feature's service.
func (f *Feature) Service() *Service {
	return f.service
}
