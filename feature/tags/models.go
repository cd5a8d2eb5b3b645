package tags

import "fmt"

// MediaType discriminates which catalog entity a tag is attached to.
type MediaType string

const (
	MediaVideo   MediaType = "video"
	MediaShow    MediaType = "show"
	MediaSeason  MediaType = "season"
	MediaEpisode MediaType = "episode"
	MediaImage   MediaType = "image"
)

// ParseMediaType validates a media type coming from a path param or flag.
func ParseMediaType(s string) (MediaType, error) {
	mt := MediaType(s)
	if !mt.Valid() {
		return "", &ValidationError{Field: "type", Message: fmt.Sprintf("unknown media type %q", s)}
	}
	return mt, nil
}

// Valid reports whether the media type is one of the catalog entities.
func (m MediaType) Valid() bool {
	switch m {
	case MediaVideo, MediaShow, MediaSeason, MediaEpisode, MediaImage:
		return true
	default:
		return false
	}
}

// Tag is a globally unique, case-sensitive label.
type Tag struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Text string `gorm:"column:tag;size:191;not null;uniqueIndex" json:"text"`
}

// TableName overrides the table name used by Tag.
func (Tag) TableName() string {
	return "tags"
}

// MediaTag links a tag to one media item. The triple is the primary key,
// so a tag can be linked to the same media at most once.
type MediaTag struct {
	TagID     uint      `gorm:"primaryKey;autoIncrement:false" json:"tag_id"`
	MediaType MediaType `gorm:"primaryKey;size:32" json:"media_type"`
	MediaID   uint      `gorm:"primaryKey;autoIncrement:false;index" json:"media_id"`
}

// TableName overrides the table name used by MediaTag.
func (MediaTag) TableName() string {
	return "media_tags"
}

// Association is a tag currently linked to a media item.
type Association struct {
	TagID uint   `json:"tag_id"`
	Text  string `json:"text"`
}

// Result reports what a reconcile changed. Every set is sorted.
type Result struct {
	// Created holds tags that did not exist anywhere and were created.
	Created []string `json:"created"`
	// Linked holds tags that received a fresh association.
	Linked []string `json:"linked"`
	// Unlinked holds tags whose association was removed.
	Unlinked []string `json:"unlinked"`
}

// Changed reports whether the reconcile altered persisted state.
func (r *Result) Changed() bool {
	return len(r.Linked) > 0 || len(r.Unlinked) > 0
}
