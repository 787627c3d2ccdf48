package repositories

import (
	"blogly/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByID(id uint) (*models.User, error)
	GetUsers() ([]models.User, error)
	UpdateUser(user *models.User) error
	DeleteUser(id uint) error
}

// PostgresUserRepository implements UserRepository with GORM
type PostgresUserRepository struct {
	db *gorm.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// CreateUser creates a new user
func (r *PostgresUserRepository) CreateUser(user *models.User) error {
	return r.db.Create(user).Error
}

// GetUserByID retrieves a user with its posts, newest first
func (r *PostgresUserRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Posts", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at DESC")
	}).First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUsers retrieves all users
func (r *PostgresUserRepository) GetUsers() ([]models.User, error) {
	var users []models.User
	if err := r.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUser updates an existing user
func (r *PostgresUserRepository) UpdateUser(user *models.User) error {
	return r.db.Omit(clause.Associations).Save(user).Error
}

// DeleteUser deletes a user and its posts. The user owns its posts, so the
// delete cascades: join rows first, then posts, then the user, in one
// transaction so a failed delete leaves nothing half-removed.
func (r *PostgresUserRepository) DeleteUser(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			return err
		}
		var posts []models.Post
		if err := tx.Where("user_id = ?", id).Find(&posts).Error; err != nil {
			return err
		}
		for i := range posts {
			if err := tx.Model(&posts[i]).Association("Tags").Clear(); err != nil {
				return err
			}
		}
		if len(posts) > 0 {
			if err := tx.Where("user_id = ?", id).Delete(&models.Post{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&user).Error
	})
}
