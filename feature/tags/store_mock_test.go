package tags

import (
	"context"
	"sort"
	"sync"

	"github.com/stretchr/testify/mock"
)

// memStore is an in-memory TagStore enforcing the same uniqueness rules as
// the database schema.
type memStore struct {
	mu     sync.Mutex
	nextID uint
	tags   map[string]uint
	links  map[MediaTag]struct{}
	writes int
}

func newMemStore() *memStore {
	return &memStore{
		tags:  make(map[string]uint),
		links: make(map[MediaTag]struct{}),
	}
}

func (m *memStore) FindAssociations(ctx context.Context, mediaType MediaType, mediaID uint) ([]Association, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	byID := make(map[uint]string, len(m.tags))
	for text, id := range m.tags {
		byID[id] = text
	}

	var out []Association
	for link := range m.links {
		if link.MediaType == mediaType && link.MediaID == mediaID {
			out = append(out, Association{TagID: link.TagID, Text: byID[link.TagID]})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Text < out[j].Text })
	return out, nil
}

func (m *memStore) FindTagIDs(ctx context.Context, texts []string) (map[string]uint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make(map[string]uint)
	for _, text := range texts {
		if id, ok := m.tags[text]; ok {
			ids[text] = id
		}
	}
	return ids, nil
}

func (m *memStore) CreateTagsIfAbsent(ctx context.Context, texts []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.writes++
	for _, text := range texts {
		if _, ok := m.tags[text]; ok {
			continue
		}
		m.nextID++
		m.tags[text] = m.nextID
	}
	return nil
}

func (m *memStore) AddAssociations(ctx context.Context, links []MediaTag) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.writes++
	for _, link := range links {
		m.links[link] = struct{}{}
	}
	return nil
}

func (m *memStore) RemoveAssociations(ctx context.Context, mediaType MediaType, mediaID uint, tagIDs []uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.writes++
	for _, id := range tagIDs {
		delete(m.links, MediaTag{TagID: id, MediaType: mediaType, MediaID: mediaID})
	}
	return nil
}

func (m *memStore) writeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

func (m *memStore) linkCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.links)
}

// mockStore is a testify mock of TagStore for failure injection.
type mockStore struct {
	mock.Mock
}

func (m *mockStore) FindAssociations(ctx context.Context, mediaType MediaType, mediaID uint) ([]Association, error) {
	args := m.Called(ctx, mediaType, mediaID)
	if rows, ok := args.Get(0).([]Association); ok {
		return rows, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStore) FindTagIDs(ctx context.Context, texts []string) (map[string]uint, error) {
	args := m.Called(ctx, texts)
	if ids, ok := args.Get(0).(map[string]uint); ok {
		return ids, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStore) CreateTagsIfAbsent(ctx context.Context, texts []string) error {
	return m.Called(ctx, texts).Error(0)
}

func (m *mockStore) AddAssociations(ctx context.Context, links []MediaTag) error {
	return m.Called(ctx, links).Error(0)
}

func (m *mockStore) RemoveAssociations(ctx context.Context, mediaType MediaType, mediaID uint, tagIDs []uint) error {
	return m.Called(ctx, mediaType, mediaID, tagIDs).Error(0)
}
