package repositories

import (
	"context"
	"log"

	"sahay/internal/models"
	"sahay/internal/repositories/cache"

	"gorm.io/gorm"
)

type userRepository struct {
	db    *gorm.DB
	cache *cache.CacheService
}

// NewUserRepository creates a new instance of UserRepository. Both the
// database handle and the cache service are required; every read path
// goes through the cache.
func NewUserRepository(db *gorm.DB, cache *cache.CacheService) UserRepository {
	if db == nil {
		panic("database handle is required")
	}
	if cache == nil {
		panic("cache service is required")
	}
	return &userRepository{
		db:    db,
		cache: cache,
	}
}

func (r *userRepository) Create(user *models.User) error {
	if result := r.db.Create(user); result.Error != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	// Try cache first
	key := r.cache.GenerateKey("user", "id", id)
	if user, err := r.cache.GetUser(context.Background(), key); err == nil {
		return user, nil
	}

	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := r.cache.CacheUser(context.Background(), &user); err != nil {
		log.Printf("Failed to cache user %d: %v", user.ID, err)
	}

	return &user, nil
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	result := r.db.Where("email = ?", email).First(&user)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, ErrUserNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &user, nil
}

func (r *userRepository) GetByPhone(phone string) (*models.User, error) {
	var user models.User
	result := r.db.Where("phone = ?", phone).First(&user)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, ErrUserNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &user, nil
}

func (r *userRepository) GetByUpiID(upiID string) (*models.User, error) {
	var user models.User
	result := r.db.Where("upi_id = ?", upiID).First(&user)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, ErrUserNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &user, nil
}

func (r *userRepository) Update(user *models.User) error {
	if result := r.db.Save(user); result.Error != nil {
		return ErrDatabaseOperation
	}

	if err := r.cache.InvalidateUser(context.Background(), user.ID); err != nil {
		log.Printf("Warning: failed to invalidate user cache: %v", err)
	}
	return nil
}

func (r *userRepository) IncrementTokenVersion(userID uint) error {
	if err := r.db.Model(&models.User{}).Where("id = ?", userID).
		UpdateColumn("token_version", gorm.Expr("token_version + 1")).Error; err != nil {
		return ErrDatabaseOperation
	}

	if err := r.cache.InvalidateUser(context.Background(), userID); err != nil {
		log.Printf("Warning: failed to invalidate user cache: %v", err)
	}
	return nil
}

func (r *userRepository) UpdateAccountStatus(userID uint, status string) error {
	result := r.db.Model(&models.User{}).Where("id = ?", userID).
		UpdateColumn("account_status", status)
	if result.Error != nil {
		return ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	if err := r.cache.InvalidateUser(context.Background(), userID); err != nil {
		log.Printf("Warning: failed to invalidate user cache: %v", err)
	}
	return nil
}
