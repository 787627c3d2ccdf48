package models

import "strings"

// DefaultImageURL is the placeholder stored when a user submits no image.
const DefaultImageURL = "https://upload.wikimedia.org/wikipedia/commons/9/99/Sample_User_Icon.png"

// User is an author. Deleting a user deletes all of its posts.
type User struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	FirstName string `json:"first_name" gorm:"size:25;not null"`
	LastName  string `json:"last_name" gorm:"size:25;not null"`
	ImageURL  string `json:"image_url" gorm:"type:text;not null"`
	Posts     []Post `json:"posts,omitempty" gorm:"foreignKey:UserID"`
}

// FullName joins first and last name for display.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// ImageOrDefault substitutes the placeholder for a blank image URL. Applied
// on both the create and edit paths so image_url never holds an empty value.
func ImageOrDefault(url string) string {
	if strings.TrimSpace(url) == "" {
		return DefaultImageURL
	}
	return url
}

// CreateUserRequest defines the form body for adding a new user
type CreateUserRequest struct {
	FirstName string `form:"first_name" validate:"required,max=25"`
	LastName  string `form:"last_name" validate:"required,max=25"`
	ImageURL  string `form:"image_url" validate:"omitempty,url"`
}

// UpdateUserRequest defines the form body for editing an existing user
type UpdateUserRequest struct {
	FirstName string `form:"first_name" validate:"required,max=25"`
	LastName  string `form:"last_name" validate:"required,max=25"`
	ImageURL  string `form:"image_url" validate:"omitempty,url"`
}
