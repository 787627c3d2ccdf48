package repositories

import (
	"blogly/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TagRepository defines the interface for tag data operations
type TagRepository interface {
	CreateTag(tag *models.Tag) error
	GetTagByID(id uint) (*models.Tag, error)
	GetTags() ([]models.Tag, error)
	GetTagsByIDs(ids []uint) ([]models.Tag, error)
	UpdateTag(tag *models.Tag, posts []models.Post) error
	DeleteTag(id uint) error
}

// PostgresTagRepository implements TagRepository with GORM
type PostgresTagRepository struct {
	db *gorm.DB
}

// NewPostgresTagRepository creates a new PostgresTagRepository
func NewPostgresTagRepository(db *gorm.DB) *PostgresTagRepository {
	return &PostgresTagRepository{db: db}
}

// CreateTag creates a new tag. A duplicate name surfaces as
// gorm.ErrDuplicatedKey for the handler to turn into a conflict response.
func (r *PostgresTagRepository) CreateTag(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

// GetTagByID retrieves a tag with its posts
func (r *PostgresTagRepository) GetTagByID(id uint) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.Preload("Posts").First(&tag, id).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// GetTags retrieves all tags
func (r *PostgresTagRepository) GetTags() ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.Order("name").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// GetTagsByIDs retrieves the tags matching the given ids. Ids that do not
// resolve are silently dropped, never an error.
func (r *PostgresTagRepository) GetTagsByIDs(ids []uint) ([]models.Tag, error) {
	tags := []models.Tag{}
	if len(ids) == 0 {
		return tags, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// UpdateTag replaces the tag's name and its entire post set in one
// transaction.
func (r *PostgresTagRepository) UpdateTag(tag *models.Tag, posts []models.Post) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(tag).Error; err != nil {
			return err
		}
		assoc := tx.Model(tag).Association("Posts")
		if len(posts) == 0 {
			return assoc.Clear()
		}
		return assoc.Replace(&posts)
	})
}

// DeleteTag deletes a tag. Posts are never deleted with it, only the join
// rows.
func (r *PostgresTagRepository) DeleteTag(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var tag models.Tag
		if err := tx.First(&tag, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&tag).Association("Posts").Clear(); err != nil {
			return err
		}
		return tx.Delete(&tag).Error
	})
}
