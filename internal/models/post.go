package models

import "time"

// Post is a blog entry owned by exactly one user. Tags are associative:
// deleting a post removes join rows only, never the tags themselves.
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"type:text;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;index;autoCreateTime"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	User      User      `json:"-" gorm:"foreignKey:UserID"`
	Tags      []Tag     `json:"tags,omitempty" gorm:"many2many:post_tags;"`
}

// FormattedDate renders CreatedAt in the friendly form shown on pages.
func (p Post) FormattedDate() string {
	return p.CreatedAt.Format("Mon Jan 2 2006, 3:04 PM")
}

// HasTag reports whether the tag is currently attached to the post.
// Used by the edit form to pre-check the current selection.
func (p Post) HasTag(tagID uint) bool {
	for _, t := range p.Tags {
		if t.ID == tagID {
			return true
		}
	}
	return false
}

// CreatePostRequest defines the form body for adding a new post
type CreatePostRequest struct {
	Title   string `form:"title" validate:"required"`
	Content string `form:"content" validate:"required"`
}

// UpdatePostRequest defines the form body for editing an existing post
type UpdatePostRequest struct {
	Title   string `form:"title" validate:"required"`
	Content string `form:"content" validate:"required"`
}
