package torrents

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
)

// Service exposes torrent operations to the HTTP and CLI surfaces.
type Service struct {
	client *Client
	search *SearchClient
	logger *zap.Logger
}

// NewService creates a new torrent service.
func NewService(client *Client, search *SearchClient, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{client: client, search: search, logger: logger}
}

// List returns the parsed download manager listing.
func (s *Service) List(ctx context.Context) ([]Record, error) {
	records, err := s.client.List(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("Torrents listed", zap.Int("count", len(records)))
	return records, nil
}

// Add queues a magnet link for download.
func (s *Service) Add(ctx context.Context, magnetURI string) (string, error) {
	out, err := s.client.Add(ctx, magnetURI)
	if err != nil {
		return "", err
	}
	s.logger.Info("Torrent added", zap.String("output", out))
	return out, nil
}

// Search forwards a query to the search API.
func (s *Service) Search(ctx context.Context, site, query string) (json.RawMessage, error) {
	return s.search.Search(ctx, site, query)
}

// Parse parses a listing without calling the daemon.
func (s *Service) Parse(raw string) []Record {
	return s.client.Parser().Parse(raw)
}
