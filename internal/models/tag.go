package models

// Tag labels posts. Names are globally unique. The post association is
// non-owning: deleting a tag removes join rows only.
type Tag struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"uniqueIndex;not null"`
	Posts []Post `json:"posts,omitempty" gorm:"many2many:post_tags;"`
}

// HasPost reports whether the post is currently associated with the tag.
func (t Tag) HasPost(postID uint) bool {
	for _, p := range t.Posts {
		if p.ID == postID {
			return true
		}
	}
	return false
}

// CreateTagRequest defines the form body for adding a new tag
type CreateTagRequest struct {
	Name string `form:"name" validate:"required"`
}

// UpdateTagRequest defines the form body for editing an existing tag
type UpdateTagRequest struct {
	Name string `form:"name" validate:"required"`
}
