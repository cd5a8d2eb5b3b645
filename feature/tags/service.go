package tags

import (
	"context"

	"home-media/core/reconcile"

	"go.uber.org/zap"
)

// Service handles tag operations for the HTTP and CLI surfaces.
type Service struct {
	reconciler *Reconciler
	logger     *zap.Logger
}

// NewService creates a new tag service.
func NewService(store TagStore, logger *zap.Logger) *Service {
	return &Service{
		reconciler: NewReconciler(store),
		logger:     logger,
	}
}

// UpdateTags reconciles the tags of a media item to the desired list.
func (s *Service) UpdateTags(ctx context.Context, mediaType MediaType, mediaID uint, desired []string) (*Result, error) {
	result, err := s.reconciler.Reconcile(ctx, mediaType, mediaID, desired)
	if err != nil {
		return nil, err
	}

	if result.Changed() {
		s.logger.Info("Tags reconciled",
			zap.String("media_type", string(mediaType)),
			zap.Uint("media_id", mediaID),
			zap.Strings("created", result.Created),
			zap.Strings("linked", result.Linked),
			zap.Strings("unlinked", result.Unlinked),
		)
	}
	return result, nil
}

// PreviewTags returns the plan UpdateTags would apply.
func (s *Service) PreviewTags(ctx context.Context, mediaType MediaType, mediaID uint, desired []string) (reconcile.Plan, error) {
	plan, err := s.reconciler.Plan(ctx, mediaType, mediaID, desired)
	if err != nil {
		return plan, err
	}
	summary := plan.Summary()
	s.logger.Debug("Tag plan computed",
		zap.String("media_type", string(mediaType)),
		zap.Uint("media_id", mediaID),
		zap.Int("added", summary.Added),
		zap.Int("removed", summary.Removed),
		zap.Int("kept", summary.Kept),
	)
	return plan, nil
}

// ListTags returns the tags currently linked to a media item.
func (s *Service) ListTags(ctx context.Context, mediaType MediaType, mediaID uint) ([]string, error) {
	return s.reconciler.Tags(ctx, mediaType, mediaID)
}
