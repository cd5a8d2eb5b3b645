package tags

import (
	"context"
	"errors"
	"fmt"

	"home-media/core/database"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore is the TagStore backed by the catalog database.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a store on top of an open connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates the tag tables. On MySQL the tag column is switched to a
// binary collation so that tag text uniqueness is case-sensitive.
func Migrate(db *gorm.DB) error {
	if err := database.Migrate(db, &Tag{}, &MediaTag{}); err != nil {
		return err
	}
	if db.Dialector.Name() == "mysql" {
		err := db.Exec("ALTER TABLE `tags` MODIFY `tag` VARCHAR(191) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin NOT NULL").Error
		if err != nil {
			return fmt.Errorf("failed to set tag collation: %w", err)
		}
	}
	return nil
}

// FindAssociations returns the tags linked to one media item, ordered by text.
func (s *GormStore) FindAssociations(ctx context.Context, mediaType MediaType, mediaID uint) ([]Association, error) {
	var rows []Association
	err := s.db.WithContext(ctx).
		Table("media_tags AS mt").
		Select("t.id AS tag_id, t.tag AS text").
		Joins("JOIN tags t ON mt.tag_id = t.id").
		Where("mt.media_type = ? AND mt.media_id = ?", string(mediaType), mediaID).
		Order("t.tag").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FindTagIDs resolves tag texts to ids in one query.
func (s *GormStore) FindTagIDs(ctx context.Context, texts []string) (map[string]uint, error) {
	ids := make(map[string]uint, len(texts))
	if len(texts) == 0 {
		return ids, nil
	}

	var found []Tag
	if err := s.db.WithContext(ctx).Where("tag IN ?", texts).Find(&found).Error; err != nil {
		return nil, err
	}
	for _, t := range found {
		ids[t.Text] = t.ID
	}
	return ids, nil
}

// FindTagID resolves a single tag text, returning ErrTagNotFound when absent.
func (s *GormStore) FindTagID(ctx context.Context, text string) (uint, error) {
	var t Tag
	err := s.db.WithContext(ctx).Where("tag = ?", text).Take(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrTagNotFound
	}
	if err != nil {
		return 0, err
	}
	return t.ID, nil
}

// CreateTagsIfAbsent batch inserts tags, ignoring duplicates
// (INSERT IGNORE semantics on MySQL, ON CONFLICT DO NOTHING on SQLite).
func (s *GormStore) CreateTagsIfAbsent(ctx context.Context, texts []string) error {
	if len(texts) == 0 {
		return nil
	}

	rows := make([]Tag, 0, len(texts))
	for _, text := range texts {
		rows = append(rows, Tag{Text: text})
	}

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}

// AddAssociations batch inserts links, ignoring links that already exist.
func (s *GormStore) AddAssociations(ctx context.Context, links []MediaTag) error {
	if len(links) == 0 {
		return nil
	}

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&links).Error
}

// RemoveAssociations deletes links using an IN clause.
func (s *GormStore) RemoveAssociations(ctx context.Context, mediaType MediaType, mediaID uint, tagIDs []uint) error {
	if len(tagIDs) == 0 {
		return nil
	}

	return s.db.WithContext(ctx).
		Where("media_type = ? AND media_id = ? AND tag_id IN ?", string(mediaType), mediaID, tagIDs).
		Delete(&MediaTag{}).Error
}

// InTx runs fn against a store bound to a single database transaction.
func (s *GormStore) InTx(ctx context.Context, fn func(store TagStore) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}
