package repositories

import (
	"blogly/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id uint) (*models.Post, error)
	GetPosts() ([]models.Post, error)
	GetRecentPosts(limit int) ([]models.Post, error)
	GetPostsByIDs(ids []uint) ([]models.Post, error)
	UpdatePost(post *models.Post, tags []models.Tag) error
	DeletePost(id uint) error
}

// PostgresPostRepository implements PostRepository with GORM
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// CreatePost creates a new post. Any tags preset on the post are attached
// through the join table within the same insert transaction.
func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetPostByID retrieves a post with its author and tags
func (r *PostgresPostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.Preload("User").Preload("Tags").First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPosts retrieves all posts
func (r *PostgresPostRepository) GetPosts() ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// GetRecentPosts retrieves the most recently created posts, newest first,
// for the homepage feed.
func (r *PostgresPostRepository) GetRecentPosts(limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("User").Preload("Tags").
		Order("created_at DESC").Limit(limit).Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPostsByIDs retrieves the posts matching the given ids. Ids that do not
// resolve are silently dropped, never an error.
func (r *PostgresPostRepository) GetPostsByIDs(ids []uint) ([]models.Post, error) {
	posts := []models.Post{}
	if len(ids) == 0 {
		return posts, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// UpdatePost replaces the post's editable fields and its entire tag set in
// one transaction.
func (r *PostgresPostRepository) UpdatePost(post *models.Post, tags []models.Tag) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(post).Error; err != nil {
			return err
		}
		assoc := tx.Model(post).Association("Tags")
		if len(tags) == 0 {
			return assoc.Clear()
		}
		return assoc.Replace(&tags)
	})
}

// DeletePost deletes a post. Tags are associative, so only the join rows go
// with it.
func (r *PostgresPostRepository) DeletePost(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&post).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
}
